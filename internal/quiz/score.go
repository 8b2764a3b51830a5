package quiz

import "math"

// Percentage возвращает round(100*score/total); половина округляется вверх.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}

	return int(math.Round(100 * float64(score) / float64(total)))
}

// ClassifyTier определяет уровень по проценту. Первое совпадение побеждает.
func ClassifyTier(percentage int) Tier {
	switch {
	case percentage >= 90:
		return TierExpert
	case percentage >= 70:
		return TierConnoisseur
	case percentage >= 50:
		return TierEnthusiast
	default:
		return TierNovice
	}
}

func buildBreakdown(questions []Question, answers []int) ([]BreakdownItem, int) {
	breakdown := make([]BreakdownItem, len(questions))
	score := 0

	for i, question := range questions {
		selected := answers[i]
		isCorrect := selected == question.Correct
		if isCorrect {
			score++
		}

		breakdown[i] = BreakdownItem{
			Position:     i,
			Text:         question.Text,
			Options:      question.clone().Options,
			Selected:     selected,
			SelectedText: question.Options[selected],
			Correct:      question.Correct,
			CorrectText:  question.Options[question.Correct],
			IsCorrect:    isCorrect,
			Explanation:  question.Explanation,
		}
	}

	return breakdown, score
}
