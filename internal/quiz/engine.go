package quiz

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// session - состояние одной попытки прохождения викторины.
type session struct {
	id        string
	questions []Question
	answers   []int
	submitted bool
	startedAt time.Time
}

func (s *session) unanswered() int {
	count := 0
	for _, answer := range s.answers {
		if answer == Unanswered {
			count++
		}
	}

	return count
}

// Engine управляет одной сессией викторины: старт, ответы, подсчет результата, перезапуск.
type Engine struct {
	session *session
	rand    *rand.Rand
	now     func() time.Time
	mu      sync.Mutex
}

// Option настраивает Engine.
type Option func(*Engine)

// WithRand задает источник случайности для выбора вопросов.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.rand = r
	}
}

// WithClock задает функцию текущего времени.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine создаёт новый Engine без активной сессии.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.rand == nil {
		e.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return e
}

// Start начинает новую сессию из k случайных вопросов банка.
// Текущая сессия, если она есть, отбрасывается.
func (e *Engine) Start(bank *Bank, k int) error {
	if bank.Len() == 0 {
		return fmt.Errorf("%w: bank is empty", ErrInvalidConfiguration)
	}

	if k < 1 || k > bank.Len() {
		return fmt.Errorf("%w: count %d must be in [1, %d]", ErrInvalidConfiguration, k, bank.Len())
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	indices := sampleIndices(e.rand, bank.Len(), k)

	questions := make([]Question, k)
	answers := make([]int, k)
	for i, idx := range indices {
		questions[i] = bank.questions[idx].clone()
		answers[i] = Unanswered
	}

	e.session = &session{
		id:        uuid.NewString(),
		questions: questions,
		answers:   answers,
		startedAt: e.now(),
	}

	slog.Debug("quiz session started", "session_id", e.session.id, "count", k, "bank_size", bank.Len())

	return nil
}

// Reset отбрасывает текущую сессию и начинает новую.
func (e *Engine) Reset(bank *Bank, k int) error {
	return e.Start(bank, k)
}

// SelectAnswer записывает ответ option на вопрос position.
// Повторный выбор перезаписывает ответ и никогда не сбрасывает его.
func (e *Engine) SelectAnswer(position, option int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return ErrNoSession
	}

	if e.session.submitted {
		return fmt.Errorf("can not select answer: %w", ErrSessionClosed)
	}

	if position < 0 || position >= len(e.session.questions) {
		return fmt.Errorf("%w: position %d", ErrOutOfRange, position)
	}

	if option < 0 || option >= len(e.session.questions[position].Options) {
		return fmt.Errorf("%w: option %d of question %d", ErrOutOfRange, option, position)
	}

	e.session.answers[position] = option

	return nil
}

// SelectAnswerByLetter записывает ответ по букве (A, B, C, ...).
func (e *Engine) SelectAnswerByLetter(position int, letter string) error {
	option, ok := LetterToIndex(strings.ToUpper(strings.TrimSpace(letter)))
	if !ok {
		return fmt.Errorf("%w: unknown letter %q", ErrOutOfRange, letter)
	}

	return e.SelectAnswer(position, option)
}

// Submit подсчитывает результат и закрывает сессию.
// Если остались вопросы без ответа, возвращает *IncompleteSubmissionError и не меняет сессию.
func (e *Engine) Submit() (*Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return nil, ErrNoSession
	}

	if e.session.submitted {
		return nil, fmt.Errorf("can not submit: %w", ErrSessionClosed)
	}

	if count := e.session.unanswered(); count > 0 {
		return nil, &IncompleteSubmissionError{Unanswered: count}
	}

	e.session.submitted = true

	breakdown, score := buildBreakdown(e.session.questions, e.session.answers)
	total := len(e.session.questions)
	percentage := Percentage(score, total)

	result := &Result{
		SessionID:  e.session.id,
		Score:      score,
		Total:      total,
		Percentage: percentage,
		Tier:       ClassifyTier(percentage),
		Breakdown:  breakdown,
		StartedAt:  e.session.startedAt,
		FinishedAt: e.now(),
	}

	slog.Debug("quiz session submitted",
		"session_id", result.SessionID,
		"score", result.Score,
		"total", result.Total,
		"tier", result.Tier,
	)

	return result, nil
}

// Questions возвращает копию вопросов текущей сессии.
func (e *Engine) Questions() []Question {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return nil
	}

	questions := make([]Question, len(e.session.questions))
	for i, question := range e.session.questions {
		questions[i] = question.clone()
	}

	return questions
}

// Answers возвращает копию выбранных ответов; Unanswered для вопросов без ответа.
func (e *Engine) Answers() []int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return nil
	}

	answers := make([]int, len(e.session.answers))
	copy(answers, e.session.answers)

	return answers
}

// Unanswered возвращает количество вопросов без ответа.
func (e *Engine) Unanswered() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return 0
	}

	return e.session.unanswered()
}

// State возвращает состояние текущей сессии.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch {
	case e.session == nil:
		return StateNone
	case e.session.submitted:
		return StateClosed
	case e.session.unanswered() > 0:
		return StateOpenPartial
	default:
		return StateOpenComplete
	}
}

// SessionID возвращает ID текущей сессии или пустую строку.
func (e *Engine) SessionID() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return ""
	}

	return e.session.id
}
