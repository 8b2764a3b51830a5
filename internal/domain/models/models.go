package models

import (
	"time"
)

// Файл для работы с моделями для базы данных, которые доступны извне.
// Хранилище заполняет модели из результатов викторины и отдает их обратно при чтении истории.

// AttemptModel определяет модель для таблицы с результатами попыток
type AttemptModel struct {
	ID         string
	SessionID  string
	Questions  []string
	Answers    []string
	Correct    []string
	Score      int
	Total      int
	Percentage int
	Tier       string
	StartedAt  time.Time
	FinishedAt time.Time
}
