package quiz

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// isCorrectBank проверяет все вопросы и собирает все найденные ошибки.
func isCorrectBank(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: need at least one question", ErrInvalidConfiguration)
	}

	var result *multierror.Error
	for i, question := range questions {
		if err := isCorrectQuestion(question); err != nil {
			result = multierror.Append(result, fmt.Errorf("question %d: %w", i, err))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	return nil
}

func isCorrectQuestion(question Question) error {
	if question.Text == "" {
		return fmt.Errorf("missing field text")
	}

	if len(question.Options) < 2 {
		return fmt.Errorf("amount of options must be at least two")
	}

	if len(question.Options) > len(AnswerLetters) {
		return fmt.Errorf("amount of options must be at most %d", len(AnswerLetters))
	}

	seen := make(map[string]struct{}, len(question.Options))
	for j, option := range question.Options {
		if option == "" {
			return fmt.Errorf("option %d is empty", j)
		}

		if _, ok := seen[option]; ok {
			return fmt.Errorf("option %q is duplicated", option)
		}
		seen[option] = struct{}{}
	}

	if question.Correct < 0 {
		return fmt.Errorf("index of correct answer must not be negative")
	}

	if question.Correct >= len(question.Options) {
		return fmt.Errorf("index of correct answer is out of range")
	}

	return nil
}
