package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/letsssgooo/coffeequiz/internal/bank"
)

// Config содержит параметры запуска викторины.
type Config struct {
	BankPath   string
	Count      int
	Seed       int64
	DSN        string
	ExportPath string
	Debug      bool

	// CountSet - задан ли --count явно.
	CountSet bool
}

// ErrValidation возвращается для некорректных параметров.
var ErrValidation = errors.New("validation error")

// Load разбирает аргументы командной строки и проверяет их.
func Load(args []string, output io.Writer) (Config, error) {
	var cfg Config

	flags := pflag.NewFlagSet("coffeequiz", pflag.ContinueOnError)
	flags.SetOutput(output)

	flags.StringVar(&cfg.BankPath, "bank", "", "path to a JSON or YAML question bank (built-in coffee bank if empty)")
	flags.IntVarP(&cfg.Count, "count", "n", bank.DefaultCount, "number of questions per attempt (must not exceed the bank size; the default shrinks to fit)")
	flags.Int64Var(&cfg.Seed, "seed", 0, "random seed for question selection (time based if 0)")
	flags.StringVar(&cfg.DSN, "dsn", "", "PostgreSQL DSN for attempt history (in memory if empty)")
	flags.StringVar(&cfg.ExportPath, "export", "", "write the breakdown of the last finished attempt to this CSV file (overwritten on each submit)")
	flags.BoolVar(&cfg.Debug, "debug", false, "enable debug logging")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.CountSet = flags.Changed("count")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// QuestionCount возвращает число вопросов для банка из bankSize вопросов.
// Значение по умолчанию уменьшается до размера банка, явно заданное больше банка - ошибка.
func (c Config) QuestionCount(bankSize int) (int, error) {
	if c.Count <= bankSize {
		return c.Count, nil
	}

	if !c.CountSet && bankSize > 0 {
		return bankSize, nil
	}

	return 0, fmt.Errorf("%w: count %d exceeds the %d question(s) in the bank", ErrValidation, c.Count, bankSize)
}

// Validate проверяет конфигурацию.
func (c Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("%w: count must be at least 1, got %d", ErrValidation, c.Count)
	}

	if c.BankPath != "" {
		if _, err := bank.FormatFromPath(c.BankPath); err != nil {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	return nil
}
