package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/letsssgooo/coffeequiz/internal/quiz"
	"github.com/letsssgooo/coffeequiz/internal/storage"
)

// Engine - операции движка, которые использует терминальный интерфейс.
type Engine interface {
	Start(bank *quiz.Bank, k int) error
	Reset(bank *quiz.Bank, k int) error
	SelectAnswerByLetter(position int, letter string) error
	Submit() (*quiz.Result, error)
	Questions() []quiz.Question
	Answers() []int
	Unanswered() int
}

// historyLimit - сколько последних попыток показывает команда history.
const historyLimit = 5

// UI - терминальный интерфейс викторины: показывает вопросы и передает действия пользователя в движок.
type UI struct {
	engine     Engine
	bank       *quiz.Bank
	count      int
	in         *bufio.Scanner
	out        io.Writer
	store      storage.Storage
	exportPath string
}

// Option настраивает UI.
type Option func(*UI)

// WithStorage сохраняет каждую завершенную попытку в st и включает команду history.
func WithStorage(st storage.Storage) Option {
	return func(u *UI) {
		u.store = st
	}
}

// WithExportPath записывает разбор последней завершенной попытки в CSV файл path.
// Файл перезаписывается при каждой отправке.
func WithExportPath(path string) Option {
	return func(u *UI) {
		u.exportPath = path
	}
}

// NewUI создает терминальный интерфейс.
func NewUI(engine Engine, bank *quiz.Bank, count int, in io.Reader, out io.Writer, opts ...Option) *UI {
	u := &UI{
		engine: engine,
		bank:   bank,
		count:  count,
		in:     bufio.NewScanner(in),
		out:    out,
	}
	for _, opt := range opts {
		opt(u)
	}

	return u
}

// Run запускает викторину и обрабатывает команды до quit, конца ввода или отмены ctx.
func (u *UI) Run(ctx context.Context) error {
	if err := u.engine.Start(u.bank, u.count); err != nil {
		return fmt.Errorf("can not start quiz: %w", err)
	}

	u.printTitle()
	u.printQuestions()
	u.printHelp()

	lines, errc := u.readLines(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		u.printPrompt()

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-errc
			}
			line = l
		}

		quit, err := u.handle(ctx, line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// readLines читает ввод в отдельной горутине. После закрытия lines в errc
// лежит ровно одно значение: ошибка чтения, ctx.Err() или nil в конце ввода.
func (u *UI) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)

		for u.in.Scan() {
			select {
			case lines <- u.in.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- u.in.Err()
	}()

	return lines, errc
}

// handle выполняет одну команду. Возвращает true, если нужно выйти.
func (u *UI) handle(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return false, nil
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "q", "exit":
		u.println("Bye! ☕")
		return true, nil
	case "help", "?":
		u.printHelp()
	case "list", "l":
		u.printQuestions()
	case "submit", "s":
		u.submit(ctx)
	case "restart", "r":
		if err := u.engine.Reset(u.bank, u.count); err != nil {
			return false, fmt.Errorf("can not restart quiz: %w", err)
		}
		u.println("New quiz started.")
		u.printQuestions()
	case "history", "h":
		u.history(ctx)
	default:
		u.selectAnswer(fields)
	}

	return false, nil
}

func (u *UI) selectAnswer(fields []string) {
	if len(fields) != 2 {
		u.printError("Unknown command. Type 'help' for the list of commands.")
		return
	}

	number, err := strconv.Atoi(fields[0])
	if err != nil {
		u.printError("Unknown command. Type 'help' for the list of commands.")
		return
	}

	err = u.engine.SelectAnswerByLetter(number-1, fields[1])
	switch {
	case errors.Is(err, quiz.ErrSessionClosed):
		u.printError("The quiz is finished. Type 'restart' to try again.")
	case errors.Is(err, quiz.ErrOutOfRange):
		u.printError(fmt.Sprintf("There is no option %q for question %s.", fields[1], fields[0]))
	case err != nil:
		u.printError(err.Error())
	default:
		u.printSelection(number - 1)
	}
}

func (u *UI) submit(ctx context.Context) {
	result, err := u.engine.Submit()

	var incomplete *quiz.IncompleteSubmissionError
	switch {
	case errors.As(err, &incomplete):
		u.printError(fmt.Sprintf(
			"Please answer all %d remaining question(s) before submitting.",
			incomplete.Unanswered,
		))
		return
	case errors.Is(err, quiz.ErrSessionClosed):
		u.printError("The quiz is finished. Type 'restart' to try again.")
		return
	case err != nil:
		u.printError(err.Error())
		return
	}

	u.printResult(result)

	if u.store != nil {
		if err = u.store.SaveResult(ctx, result); err != nil {
			slog.Error("failed to save quiz result", "session_id", result.SessionID, "err", err)
		}
	}

	if u.exportPath != "" {
		if err = exportResult(u.exportPath, result); err != nil {
			slog.Error("failed to export quiz result", "path", u.exportPath, "err", err)
		}
	}
}

func (u *UI) history(ctx context.Context) {
	if u.store == nil {
		u.printError("History is not available.")
		return
	}

	attempts, err := u.store.ListResults(ctx, historyLimit)
	if err != nil {
		slog.Error("failed to list quiz results", "err", err)
		u.printError("Can not load history.")
		return
	}

	u.printHistory(attempts)
}

func exportResult(path string, result *quiz.Result) error {
	data, err := quiz.ExportCSV(result)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
