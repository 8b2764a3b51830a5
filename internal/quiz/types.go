package quiz

import (
	"errors"
	"fmt"
	"time"
)

// Question представляет вопрос викторины.
type Question struct {
	Text        string   `json:"text" yaml:"text"`
	Options     []string `json:"options" yaml:"options"`
	Correct     int      `json:"correct" yaml:"correct"`
	Explanation string   `json:"explanation" yaml:"explanation"`
}

// clone возвращает копию вопроса, не разделяющую слайс вариантов с оригиналом.
func (q Question) clone() Question {
	options := make([]string, len(q.Options))
	copy(options, q.Options)
	q.Options = options

	return q
}

// Unanswered - значение ответа для вопроса, на который еще не ответили.
const Unanswered = -1

// State - состояние текущей сессии.
type State string

const (
	StateNone         State = "none"
	StateOpenPartial  State = "open_partial"
	StateOpenComplete State = "open_complete"
	StateClosed       State = "closed"
)

// Tier - уровень, присваиваемый итоговому проценту.
type Tier string

const (
	TierExpert      Tier = "Expert"
	TierConnoisseur Tier = "Connoisseur"
	TierEnthusiast  Tier = "Enthusiast"
	TierNovice      Tier = "Novice"
)

// Result содержит результаты завершенной сессии.
type Result struct {
	SessionID  string
	Score      int
	Total      int
	Percentage int
	Tier       Tier
	Breakdown  []BreakdownItem
	StartedAt  time.Time
	FinishedAt time.Time
}

// BreakdownItem - разбор одного вопроса после подсчета.
type BreakdownItem struct {
	Position     int
	Text         string
	Options      []string
	Selected     int
	SelectedText string
	Correct      int
	CorrectText  string
	IsCorrect    bool
	Explanation  string
}

// Ошибки движка
var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrOutOfRange           = errors.New("index out of range")
	ErrIncompleteSubmission = errors.New("incomplete submission")
	ErrSessionClosed        = errors.New("session closed")
	ErrNoSession            = errors.New("no active session")
)

// IncompleteSubmissionError возвращается из Submit, если остались вопросы без ответа.
// Unanswered показывается пользователю как есть.
type IncompleteSubmissionError struct {
	Unanswered int
}

func (e *IncompleteSubmissionError) Error() string {
	return fmt.Sprintf("%s: %d question(s) unanswered", ErrIncompleteSubmission, e.Unanswered)
}

func (e *IncompleteSubmissionError) Is(target error) bool {
	return target == ErrIncompleteSubmission
}

// AnswerLetters - допустимые буквы для ответов (A-F для до 6 вариантов).
var AnswerLetters = []string{"A", "B", "C", "D", "E", "F"}

// LetterToIndex преобразует букву в индекс (A=0, B=1, ...).
func LetterToIndex(letter string) (int, bool) {
	for i, l := range AnswerLetters {
		if l == letter {
			return i, true
		}
	}

	return -1, false
}

// IndexToLetter преобразует индекс в букву (0=A, 1=B, ...).
func IndexToLetter(idx int) string {
	if idx >= 0 && idx < len(AnswerLetters) {
		return AnswerLetters[idx]
	}

	return ""
}
