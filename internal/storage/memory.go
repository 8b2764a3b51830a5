package storage

import (
	"context"
	"sync"

	"github.com/letsssgooo/coffeequiz/internal/domain/models"
	"github.com/letsssgooo/coffeequiz/internal/quiz"
)

var _ Storage = (*MemoryStorage)(nil)

// MemoryStorage реализует Storage в памяти.
type MemoryStorage struct {
	attempts []*models.AttemptModel
	mu       sync.Mutex
}

// NewMemoryStorage создаёт новый MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// SaveResult сохраняет результат попытки.
func (s *MemoryStorage) SaveResult(ctx context.Context, result *quiz.Result) error {
	attempt, err := NewAttempt(result)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.attempts = append(s.attempts, attempt)

	return nil
}

// ListResults возвращает последние попытки, новые первыми.
func (s *MemoryStorage) ListResults(ctx context.Context, limit int) ([]*models.AttemptModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.attempts) {
		limit = len(s.attempts)
	}

	attempts := make([]*models.AttemptModel, 0, limit)
	for i := len(s.attempts) - 1; i >= 0 && len(attempts) < limit; i-- {
		attempt := *s.attempts[i]
		attempts = append(attempts, &attempt)
	}

	return attempts, nil
}
