package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/letsssgooo/coffeequiz/internal/domain/models"
	"github.com/letsssgooo/coffeequiz/internal/quiz"
)

// Storage определяет интерфейс для хранения истории попыток.
type Storage interface {
	// SaveResult сохраняет результат завершенной попытки.
	SaveResult(ctx context.Context, result *quiz.Result) error

	// ListResults возвращает до limit последних попыток, новые первыми.
	// limit <= 0 означает все попытки.
	ListResults(ctx context.Context, limit int) ([]*models.AttemptModel, error)
}

// ErrNilResult возвращается при попытке сохранить nil.
var ErrNilResult = errors.New("result object is nil")

// NewAttempt собирает модель для хранения из результата викторины.
func NewAttempt(result *quiz.Result) (*models.AttemptModel, error) {
	if result == nil {
		return nil, ErrNilResult
	}

	attempt := &models.AttemptModel{
		ID:         uuid.NewString(),
		SessionID:  result.SessionID,
		Questions:  make([]string, 0, len(result.Breakdown)),
		Answers:    make([]string, 0, len(result.Breakdown)),
		Correct:    make([]string, 0, len(result.Breakdown)),
		Score:      result.Score,
		Total:      result.Total,
		Percentage: result.Percentage,
		Tier:       string(result.Tier),
		StartedAt:  result.StartedAt,
		FinishedAt: result.FinishedAt,
	}

	for _, item := range result.Breakdown {
		attempt.Questions = append(attempt.Questions, item.Text)
		attempt.Answers = append(attempt.Answers, item.SelectedText)
		attempt.Correct = append(attempt.Correct, item.CorrectText)
	}

	return attempt, nil
}
