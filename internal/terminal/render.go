package terminal

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/letsssgooo/coffeequiz/internal/domain/models"
	"github.com/letsssgooo/coffeequiz/internal/quiz"
)

var (
	titleColor    = color.New(color.FgYellow, color.Bold)
	selectedColor = color.New(color.FgCyan, color.Bold)
	correctColor  = color.New(color.FgGreen)
	wrongColor    = color.New(color.FgRed)
	errorColor    = color.New(color.FgRed)
	dimColor      = color.New(color.Faint)
)

// Headline возвращает заголовок результата для уровня.
func Headline(tier quiz.Tier) string {
	switch tier {
	case quiz.TierExpert:
		return "Coffee Expert! ☕"
	case quiz.TierConnoisseur:
		return "Coffee Connoisseur!"
	case quiz.TierEnthusiast:
		return "Coffee Enthusiast!"
	default:
		return "Coffee Novice"
	}
}

// Feedback возвращает напутствие по проценту.
func Feedback(percentage int) string {
	if percentage >= 70 {
		return "Great job! You know your coffee well."
	}

	return "Keep learning about coffee - it's a wonderful journey!"
}

func (u *UI) println(text string) {
	_, _ = fmt.Fprintln(u.out, text)
}

func (u *UI) printError(text string) {
	_, _ = errorColor.Fprintln(u.out, text)
}

func (u *UI) printPrompt() {
	_, _ = fmt.Fprint(u.out, "> ")
}

func (u *UI) printTitle() {
	_, _ = titleColor.Fprintln(u.out, u.bank.Title())
}

func (u *UI) printHelp() {
	u.println(strings.Join([]string{
		"Commands:",
		"  <n> <letter>  answer question n, e.g. '3 B'",
		"  list          show the questions again",
		"  submit        check your answers",
		"  restart       start a new quiz",
		"  history       show recent attempts",
		"  quit          exit",
	}, "\n"))
}

func (u *UI) printQuestions() {
	answers := u.engine.Answers()

	for i, question := range u.engine.Questions() {
		u.println("")
		u.println(fmt.Sprintf("%d. %s", i+1, question.Text))

		for j, option := range question.Options {
			line := fmt.Sprintf("   %s) %s", quiz.IndexToLetter(j), option)
			if answers[i] == j {
				_, _ = selectedColor.Fprintln(u.out, line+"  ◀")
				continue
			}
			u.println(line)
		}
	}
	u.println("")
}

func (u *UI) printSelection(position int) {
	question := u.engine.Questions()[position]
	option := u.engine.Answers()[position]

	_, _ = selectedColor.Fprintf(u.out, "Question %d: %s) %s\n",
		position+1, quiz.IndexToLetter(option), question.Options[option])

	if remaining := u.engine.Unanswered(); remaining > 0 {
		_, _ = dimColor.Fprintf(u.out, "%d question(s) left\n", remaining)
		return
	}

	u.println("All questions answered. Type 'submit' to check your answers.")
}

func (u *UI) printResult(result *quiz.Result) {
	u.println("")
	_, _ = titleColor.Fprintln(u.out, "Quiz Complete!")
	u.println(fmt.Sprintf("%d/%d", result.Score, result.Total))
	u.println(fmt.Sprintf("%d%%", result.Percentage))
	u.println(Headline(result.Tier))
	u.println(Feedback(result.Percentage))
	u.println("")
	u.println("Your Answers:")

	for _, item := range result.Breakdown {
		mark := wrongColor
		if item.IsCorrect {
			mark = correctColor
		}

		_, _ = mark.Fprintf(u.out, "%d. %s\n", item.Position+1, item.Text)
		u.println("   You selected: " + item.SelectedText)
		if !item.IsCorrect {
			u.println("   Correct answer: " + item.CorrectText)
		}
		if item.Explanation != "" {
			_, _ = dimColor.Fprintln(u.out, "   "+item.Explanation)
		}
	}

	u.println("")
	u.println("Type 'restart' to try again.")
}

func (u *UI) printHistory(attempts []*models.AttemptModel) {
	if len(attempts) == 0 {
		u.println("No attempts yet.")
		return
	}

	u.println("Recent attempts:")
	for _, attempt := range attempts {
		u.println(fmt.Sprintf("  %s  %d/%d  %d%%  %s",
			attempt.FinishedAt.Format("2006-01-02 15:04"),
			attempt.Score,
			attempt.Total,
			attempt.Percentage,
			attempt.Tier,
		))
	}
}
