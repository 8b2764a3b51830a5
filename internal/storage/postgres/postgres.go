package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/letsssgooo/coffeequiz/internal/domain/models"
	"github.com/letsssgooo/coffeequiz/internal/quiz"
	"github.com/letsssgooo/coffeequiz/internal/storage"
)

// Storage реализует storage.Storage в PostgreSQL.
type Storage struct {
	pool *pgxpool.Pool
}

var _ storage.Storage = (*Storage)(nil)

func NewStorage(ctx context.Context, dsn string) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

// Close закрывает пул соединений.
func (s *Storage) Close() {
	s.pool.Close()
}

// Migrate создает таблицу попыток, если ее еще нет.
func (s *Storage) Migrate(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS quiz_attempts (
		id          UUID PRIMARY KEY,
		session_id  UUID NOT NULL,
		questions   TEXT[] NOT NULL,
		answers     TEXT[] NOT NULL,
		correct     TEXT[] NOT NULL,
		score       INTEGER NOT NULL,
		total       INTEGER NOT NULL,
		percentage  INTEGER NOT NULL,
		tier        TEXT NOT NULL,
		started_at  TIMESTAMPTZ NOT NULL,
		finished_at TIMESTAMPTZ NOT NULL
	)
	`

	_, err := s.pool.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("migrate quiz_attempts: %w", err)
	}

	return nil
}

func (s *Storage) SaveResult(ctx context.Context, result *quiz.Result) error {
	attempt, err := storage.NewAttempt(result)
	if err != nil {
		return err
	}

	query := `
	INSERT INTO quiz_attempts (
		id, session_id, questions, answers, correct, score, total, percentage, tier, started_at, finished_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = s.pool.Exec(ctx, query,
		attempt.ID,
		attempt.SessionID,
		attempt.Questions,
		attempt.Answers,
		attempt.Correct,
		attempt.Score,
		attempt.Total,
		attempt.Percentage,
		attempt.Tier,
		attempt.StartedAt,
		attempt.FinishedAt,
	)

	return err
}

func (s *Storage) ListResults(ctx context.Context, limit int) ([]*models.AttemptModel, error) {
	query := `
	SELECT id::text, session_id::text, questions, answers, correct, score, total, percentage, tier, started_at, finished_at
	FROM quiz_attempts
	ORDER BY finished_at DESC
	`

	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []*models.AttemptModel
	for rows.Next() {
		attempt := &models.AttemptModel{}
		err = rows.Scan(
			&attempt.ID,
			&attempt.SessionID,
			&attempt.Questions,
			&attempt.Answers,
			&attempt.Correct,
			&attempt.Score,
			&attempt.Total,
			&attempt.Percentage,
			&attempt.Tier,
			&attempt.StartedAt,
			&attempt.FinishedAt,
		)
		if err != nil {
			return nil, err
		}

		attempts = append(attempts, attempt)
	}

	return attempts, rows.Err()
}
