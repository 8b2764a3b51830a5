package quiz

import "fmt"

// Bank - неизменяемый набор вопросов, из которого выбираются вопросы сессии.
type Bank struct {
	title     string
	questions []Question
}

// NewBank проверяет вопросы и создает банк.
// Банк хранит собственную копию вопросов, поэтому изменение входного слайса на него не влияет.
func NewBank(title string, questions []Question) (*Bank, error) {
	if err := isCorrectBank(questions); err != nil {
		return nil, fmt.Errorf("can not create bank: %w", err)
	}

	copied := make([]Question, len(questions))
	for i, question := range questions {
		copied[i] = question.clone()
	}

	return &Bank{title: title, questions: copied}, nil
}

// Title возвращает название банка.
func (b *Bank) Title() string {
	return b.title
}

// Len возвращает количество вопросов в банке.
func (b *Bank) Len() int {
	if b == nil {
		return 0
	}

	return len(b.questions)
}

// Question возвращает копию вопроса с индексом idx.
func (b *Bank) Question(idx int) (Question, bool) {
	if idx < 0 || idx >= b.Len() {
		return Question{}, false
	}

	return b.questions[idx].clone(), true
}

