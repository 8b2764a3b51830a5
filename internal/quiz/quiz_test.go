package quiz

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coffeeQuestions() []Question {
	return []Question{
		{
			Text:    "What is the ideal brewing temperature for coffee?",
			Options: []string{"80-85°C", "90-96°C", "100-105°C", "70-75°C"},
			Correct: 1,
		},
		{
			Text:    "Which country is the largest producer of coffee?",
			Options: []string{"Colombia", "Brazil", "Vietnam", "Ethiopia"},
			Correct: 1,
		},
		{
			Text:    "What is the standard dose for a single espresso shot?",
			Options: []string{"5-7g", "7-9g", "18-20g", "12-15g"},
			Correct: 1,
		},
		{
			Text:    "Which coffee brewing method uses pressure?",
			Options: []string{"French Press", "Pour Over", "Espresso", "Cold Brew"},
			Correct: 2,
		},
		{
			Text:        "What does 'crema' refer to in coffee?",
			Options:     []string{"Coffee grounds", "The golden foam on espresso", "A type of coffee bean", "Brewing time"},
			Correct:     1,
			Explanation: "Crema forms when pressurized water emulsifies coffee oils.",
		},
	}
}

func newTestBank(t *testing.T) *Bank {
	t.Helper()

	bank, err := NewBank("Coffee", coffeeQuestions())
	require.NoError(t, err)

	return bank
}

func largeBank(t *testing.T, n int) *Bank {
	t.Helper()

	questions := make([]Question, n)
	for i := range questions {
		questions[i] = Question{
			Text:    fmt.Sprintf("Q%d", i),
			Options: []string{"A", "B", "C", "D"},
			Correct: i % 4,
		}
	}

	bank, err := NewBank("Large", questions)
	require.NoError(t, err)

	return bank
}

func newTestEngine(seed int64) *Engine {
	return NewEngine(WithRand(rand.New(rand.NewSource(seed))))
}

// answerAll отвечает на все вопросы; правильно - только на первые correct позиций.
func answerAll(t *testing.T, engine *Engine, correct int) {
	t.Helper()

	for i, question := range engine.Questions() {
		option := question.Correct
		if i >= correct {
			option = (question.Correct + 1) % len(question.Options)
		}
		require.NoError(t, engine.SelectAnswer(i, option))
	}
}

func TestNewBank_Valid(t *testing.T) {
	bank := newTestBank(t)

	assert.Equal(t, "Coffee", bank.Title())
	assert.Equal(t, 5, bank.Len())

	question, ok := bank.Question(3)
	require.True(t, ok)
	assert.Equal(t, "Which coffee brewing method uses pressure?", question.Text)
	assert.Equal(t, 2, question.Correct)

	_, ok = bank.Question(5)
	assert.False(t, ok)
}

func TestNewBank_IsImmutable(t *testing.T) {
	questions := coffeeQuestions()
	bank, err := NewBank("Coffee", questions)
	require.NoError(t, err)

	questions[0].Text = "changed"
	questions[0].Options[0] = "changed"

	question, _ := bank.Question(0)
	assert.Equal(t, "What is the ideal brewing temperature for coffee?", question.Text)
	assert.Equal(t, "80-85°C", question.Options[0])

	question.Options[1] = "changed again"
	again, _ := bank.Question(0)
	assert.Equal(t, "90-96°C", again.Options[1])
}

func TestNewBank_Invalid(t *testing.T) {
	testCases := []struct {
		name      string
		questions []Question
	}{
		{
			name:      "empty bank",
			questions: nil,
		},
		{
			name:      "missing text",
			questions: []Question{{Options: []string{"A", "B"}, Correct: 0}},
		},
		{
			name:      "too few options",
			questions: []Question{{Text: "Q?", Options: []string{"A"}, Correct: 0}},
		},
		{
			name:      "too many options",
			questions: []Question{{Text: "Q?", Options: []string{"A", "B", "C", "D", "E", "F", "G"}, Correct: 0}},
		},
		{
			name:      "duplicated options",
			questions: []Question{{Text: "Q?", Options: []string{"A", "A", "C"}, Correct: 0}},
		},
		{
			name:      "empty option",
			questions: []Question{{Text: "Q?", Options: []string{"A", "", "C"}, Correct: 0}},
		},
		{
			name:      "correct index negative",
			questions: []Question{{Text: "Q?", Options: []string{"A", "B", "C"}, Correct: -1}},
		},
		{
			name:      "correct index out of range",
			questions: []Question{{Text: "Q?", Options: []string{"A", "B", "C"}, Correct: 3}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bank, err := NewBank("Broken", tc.questions)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Nil(t, bank)
		})
	}
}

func TestNewBank_ReportsEveryBrokenQuestion(t *testing.T) {
	questions := coffeeQuestions()
	questions[1].Correct = 9
	questions[3].Text = ""

	_, err := NewBank("Coffee", questions)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question 1")
	assert.Contains(t, err.Error(), "question 3")
}

func TestSampleIndices_IsPermutationPrefix(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	indices := sampleIndices(r, 10, 10)
	require.Len(t, indices, 10)

	seen := make(map[int]struct{})
	for _, idx := range indices {
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 10)
		seen[idx] = struct{}{}
	}
	assert.Len(t, seen, 10)
}

func TestSampleIndices_RoughlyUniform(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	counts := make([]int, 5)

	const draws = 5000
	for i := 0; i < draws; i++ {
		counts[sampleIndices(r, 5, 1)[0]]++
	}

	for idx, count := range counts {
		assert.InDelta(t, draws/5, count, 200, "index %d drawn %d times", idx, count)
	}
}

func TestStart_DrawsDistinctQuestions(t *testing.T) {
	bank := largeBank(t, 15)

	for k := 1; k <= bank.Len(); k++ {
		engine := newTestEngine(int64(k))
		require.NoError(t, engine.Start(bank, k))

		questions := engine.Questions()
		require.Len(t, questions, k)

		seen := make(map[string]struct{})
		for _, question := range questions {
			assert.True(t, strings.HasPrefix(question.Text, "Q"))
			seen[question.Text] = struct{}{}
		}
		assert.Len(t, seen, k, "duplicates for k=%d", k)

		answers := engine.Answers()
		require.Len(t, answers, k)
		for _, answer := range answers {
			assert.Equal(t, Unanswered, answer)
		}
		assert.Equal(t, StateOpenPartial, engine.State())
	}
}

func TestStart_RandomizesOrder(t *testing.T) {
	bank := largeBank(t, 10)
	engine := newTestEngine(7)

	inBankOrder := 0
	for i := 0; i < 20; i++ {
		require.NoError(t, engine.Start(bank, bank.Len()))

		ordered := true
		for pos, question := range engine.Questions() {
			if question.Text != fmt.Sprintf("Q%d", pos) {
				ordered = false
				break
			}
		}
		if ordered {
			inBankOrder++
		}
	}

	assert.Less(t, inBankOrder, 20)
}

func TestStart_InvalidConfiguration(t *testing.T) {
	bank := newTestBank(t)

	testCases := []struct {
		name string
		bank *Bank
		k    int
	}{
		{name: "nil bank", bank: nil, k: 1},
		{name: "zero count", bank: bank, k: 0},
		{name: "negative count", bank: bank, k: -3},
		{name: "count exceeds bank", bank: bank, k: 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			engine := newTestEngine(1)
			err := engine.Start(tc.bank, tc.k)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Equal(t, StateNone, engine.State())
		})
	}
}

func TestOperations_WithoutSession(t *testing.T) {
	engine := newTestEngine(1)

	assert.ErrorIs(t, engine.SelectAnswer(0, 0), ErrNoSession)

	result, err := engine.Submit()
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Nil(t, result)

	assert.Nil(t, engine.Questions())
	assert.Nil(t, engine.Answers())
	assert.Zero(t, engine.Unanswered())
	assert.Empty(t, engine.SessionID())
}

func TestSelectAnswer_OutOfRange(t *testing.T) {
	engine := newTestEngine(1)
	require.NoError(t, engine.Start(newTestBank(t), 5))

	testCases := []struct {
		name     string
		position int
		option   int
	}{
		{name: "negative position", position: -1, option: 0},
		{name: "position too large", position: 5, option: 0},
		{name: "negative option", position: 0, option: -1},
		{name: "option too large", position: 0, option: 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := engine.SelectAnswer(tc.position, tc.option)
			assert.ErrorIs(t, err, ErrOutOfRange)
		})
	}

	assert.Equal(t, 5, engine.Unanswered())
}

func TestSelectAnswer_SetsAndNeverToggles(t *testing.T) {
	engine := newTestEngine(1)
	require.NoError(t, engine.Start(newTestBank(t), 5))

	require.NoError(t, engine.SelectAnswer(2, 1))
	before := engine.Answers()

	require.NoError(t, engine.SelectAnswer(2, 1))
	assert.Equal(t, before, engine.Answers())

	require.NoError(t, engine.SelectAnswer(2, 3))
	after := engine.Answers()
	for i := range after {
		if i == 2 {
			assert.Equal(t, 3, after[i])
			continue
		}
		assert.Equal(t, before[i], after[i])
	}
}

func TestSelectAnswerByLetter(t *testing.T) {
	engine := newTestEngine(1)
	require.NoError(t, engine.Start(newTestBank(t), 5))

	require.NoError(t, engine.SelectAnswerByLetter(0, "C"))
	require.NoError(t, engine.SelectAnswerByLetter(1, " b "))

	answers := engine.Answers()
	assert.Equal(t, 2, answers[0])
	assert.Equal(t, 1, answers[1])

	assert.ErrorIs(t, engine.SelectAnswerByLetter(0, "Z"), ErrOutOfRange)
	assert.ErrorIs(t, engine.SelectAnswerByLetter(0, "E"), ErrOutOfRange)
}

func TestSubmit_Incomplete(t *testing.T) {
	engine := newTestEngine(3)
	bank := newTestBank(t)

	for answered := 0; answered < 5; answered++ {
		require.NoError(t, engine.Start(bank, 5))
		for i := 0; i < answered; i++ {
			require.NoError(t, engine.SelectAnswer(i, 0))
		}

		result, err := engine.Submit()
		assert.Nil(t, result)
		require.ErrorIs(t, err, ErrIncompleteSubmission)

		var incomplete *IncompleteSubmissionError
		require.True(t, errors.As(err, &incomplete))
		assert.Equal(t, 5-answered, incomplete.Unanswered)
		assert.Equal(t, StateOpenPartial, engine.State())
	}
}

func TestSubmit_IncompleteKeepsSessionOpen(t *testing.T) {
	engine := newTestEngine(3)
	require.NoError(t, engine.Start(newTestBank(t), 5))

	for i := 0; i < 3; i++ {
		require.NoError(t, engine.SelectAnswer(i, 1))
	}
	answers := engine.Answers()

	_, err := engine.Submit()
	var incomplete *IncompleteSubmissionError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, 2, incomplete.Unanswered)

	assert.Equal(t, StateOpenPartial, engine.State())
	assert.Equal(t, answers, engine.Answers())

	require.NoError(t, engine.SelectAnswer(3, 0))
	require.NoError(t, engine.SelectAnswer(4, 0))
	assert.Equal(t, StateOpenComplete, engine.State())

	_, err = engine.Submit()
	require.NoError(t, err)
	assert.Equal(t, StateClosed, engine.State())
}

func TestSubmit_AllCorrect(t *testing.T) {
	engine := newTestEngine(11)
	require.NoError(t, engine.Start(newTestBank(t), 5))

	answerAll(t, engine, 5)

	result, err := engine.Submit()
	require.NoError(t, err)
	assert.Equal(t, 5, result.Score)
	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 100, result.Percentage)
	assert.Equal(t, TierExpert, result.Tier)
	assert.Equal(t, engine.SessionID(), result.SessionID)
}

func TestSubmit_TwoOfFiveCorrect(t *testing.T) {
	engine := newTestEngine(12)
	require.NoError(t, engine.Start(newTestBank(t), 5))

	answerAll(t, engine, 2)

	result, err := engine.Submit()
	require.NoError(t, err)
	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 40, result.Percentage)
	assert.Equal(t, TierNovice, result.Tier)
}

func TestSubmit_Breakdown(t *testing.T) {
	engine := newTestEngine(5)
	require.NoError(t, engine.Start(newTestBank(t), 5))

	questions := engine.Questions()
	answerAll(t, engine, 3)

	result, err := engine.Submit()
	require.NoError(t, err)
	require.Len(t, result.Breakdown, 5)

	for i, item := range result.Breakdown {
		question := questions[i]
		assert.Equal(t, i, item.Position)
		assert.Equal(t, question.Text, item.Text)
		assert.Equal(t, question.Options, item.Options)
		assert.Equal(t, question.Options[question.Correct], item.CorrectText)
		assert.Equal(t, question.Options[item.Selected], item.SelectedText)
		assert.Equal(t, question.Explanation, item.Explanation)
		assert.Equal(t, i < 3, item.IsCorrect)
	}
}

func TestSubmit_ClosedSession(t *testing.T) {
	engine := newTestEngine(5)
	require.NoError(t, engine.Start(newTestBank(t), 5))
	answerAll(t, engine, 5)

	_, err := engine.Submit()
	require.NoError(t, err)
	answers := engine.Answers()

	assert.ErrorIs(t, engine.SelectAnswer(0, 0), ErrSessionClosed)
	assert.Equal(t, answers, engine.Answers())

	result, err := engine.Submit()
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.Nil(t, result)
	assert.Equal(t, StateClosed, engine.State())
}

func TestSubmit_Timestamps(t *testing.T) {
	started := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	clock := started
	engine := NewEngine(
		WithRand(rand.New(rand.NewSource(1))),
		WithClock(func() time.Time { return clock }),
	)

	require.NoError(t, engine.Start(newTestBank(t), 5))
	clock = started.Add(2 * time.Minute)
	answerAll(t, engine, 5)

	result, err := engine.Submit()
	require.NoError(t, err)
	assert.Equal(t, started, result.StartedAt)
	assert.Equal(t, started.Add(2*time.Minute), result.FinishedAt)
}

func TestReset_StartsFreshSession(t *testing.T) {
	bank := largeBank(t, 15)
	engine := newTestEngine(21)

	require.NoError(t, engine.Start(bank, 10))
	firstID := engine.SessionID()
	answerAll(t, engine, 10)
	_, err := engine.Submit()
	require.NoError(t, err)

	require.NoError(t, engine.Reset(bank, 10))
	assert.NotEqual(t, firstID, engine.SessionID())
	assert.Equal(t, StateOpenPartial, engine.State())
	assert.Equal(t, 10, engine.Unanswered())

	questions := engine.Questions()
	require.Len(t, questions, 10)
	seen := make(map[string]struct{})
	for _, question := range questions {
		seen[question.Text] = struct{}{}
	}
	assert.Len(t, seen, 10)

	for _, answer := range engine.Answers() {
		assert.Equal(t, Unanswered, answer)
	}
}

func TestReset_WithDifferentCount(t *testing.T) {
	bank := largeBank(t, 15)
	engine := newTestEngine(2)

	require.NoError(t, engine.Start(bank, 10))
	require.NoError(t, engine.SelectAnswer(0, 0))

	require.NoError(t, engine.Reset(bank, 5))
	assert.Len(t, engine.Questions(), 5)
	assert.Equal(t, 5, engine.Unanswered())

	assert.ErrorIs(t, engine.Reset(bank, 16), ErrInvalidConfiguration)
}

func TestQuestions_ReturnsCopies(t *testing.T) {
	engine := newTestEngine(1)
	require.NoError(t, engine.Start(newTestBank(t), 5))

	questions := engine.Questions()
	original := questions[0].Options[0]
	questions[0].Options[0] = "changed"

	answers := engine.Answers()
	answers[0] = 3

	assert.Equal(t, original, engine.Questions()[0].Options[0])
	assert.Equal(t, Unanswered, engine.Answers()[0])
}

func TestPercentage(t *testing.T) {
	testCases := []struct {
		score, total, want int
	}{
		{score: 0, total: 5, want: 0},
		{score: 2, total: 5, want: 40},
		{score: 5, total: 5, want: 100},
		{score: 2, total: 3, want: 67},
		{score: 1, total: 3, want: 33},
		{score: 1, total: 8, want: 13},
		{score: 7, total: 10, want: 70},
		{score: 0, total: 0, want: 0},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, Percentage(tc.score, tc.total), "%d/%d", tc.score, tc.total)
	}
}

func TestClassifyTier(t *testing.T) {
	testCases := []struct {
		percentage int
		want       Tier
	}{
		{percentage: 100, want: TierExpert},
		{percentage: 90, want: TierExpert},
		{percentage: 89, want: TierConnoisseur},
		{percentage: 70, want: TierConnoisseur},
		{percentage: 69, want: TierEnthusiast},
		{percentage: 50, want: TierEnthusiast},
		{percentage: 49, want: TierNovice},
		{percentage: 0, want: TierNovice},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, ClassifyTier(tc.percentage), "percentage %d", tc.percentage)
	}
}

func TestLetters(t *testing.T) {
	idx, ok := LetterToIndex("D")
	assert.True(t, ok)
	assert.Equal(t, 3, idx)

	_, ok = LetterToIndex("d")
	assert.False(t, ok)

	assert.Equal(t, "B", IndexToLetter(1))
	assert.Empty(t, IndexToLetter(6))
}

func TestExportCSV(t *testing.T) {
	engine := newTestEngine(4)
	require.NoError(t, engine.Start(newTestBank(t), 5))
	answerAll(t, engine, 4)

	result, err := engine.Submit()
	require.NoError(t, err)

	data, err := ExportCSV(result)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)

	assert.Equal(t, []string{"Position", "Question", "Selected", "Correct", "IsCorrect", "Explanation"}, records[0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, result.Breakdown[0].Text, records[1][1])
	assert.Equal(t, "true", records[1][4])
	assert.Equal(t, "false", records[5][4])

	for _, record := range records[1:] {
		assert.Len(t, record, len(records[0]))
		assert.NotEqual(t, "Total", record[0])
	}
}

func TestExportCSV_NilResult(t *testing.T) {
	data, err := ExportCSV(nil)
	assert.Error(t, err)
	assert.Nil(t, data)
}
