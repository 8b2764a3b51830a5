package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/letsssgooo/coffeequiz/internal/bank"
	"github.com/letsssgooo/coffeequiz/internal/config"
	"github.com/letsssgooo/coffeequiz/internal/lib/slogcustom"
	"github.com/letsssgooo/coffeequiz/internal/quiz"
	"github.com/letsssgooo/coffeequiz/internal/storage"
	"github.com/letsssgooo/coffeequiz/internal/storage/postgres"
	"github.com/letsssgooo/coffeequiz/internal/terminal"
)

// Таймаут подключения к БД
const timeoutConnect = 5 * time.Second

func main() {
	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}

	level := &slog.LevelVar{}
	slog.SetDefault(setupLogger(level))

	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	if cfg.Debug {
		level.Set(slog.LevelDebug)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("coffee quiz stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	questionBank := bank.Default()
	if cfg.BankPath != "" {
		loaded, err := bank.Load(cfg.BankPath)
		if err != nil {
			return err
		}
		questionBank = loaded
	}

	count, err := cfg.QuestionCount(questionBank.Len())
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine := quiz.NewEngine(quiz.WithRand(rand.New(rand.NewSource(seed))))

	st, closeStorage, err := setupStorage(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer closeStorage()

	slog.Debug("starting coffee quiz",
		"bank", questionBank.Title(),
		"bank_size", questionBank.Len(),
		"count", count,
		"seed", seed,
	)

	opts := []terminal.Option{terminal.WithStorage(st)}
	if cfg.ExportPath != "" {
		opts = append(opts, terminal.WithExportPath(cfg.ExportPath))
	}

	ui := terminal.NewUI(engine, questionBank, count, os.Stdin, os.Stdout, opts...)

	return ui.Run(ctx)
}

func setupStorage(ctx context.Context, dsn string) (storage.Storage, func(), error) {
	if dsn == "" {
		return storage.NewMemoryStorage(), func() {}, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeoutConnect)
	defer cancel()

	st, err := postgres.NewStorage(connectCtx, dsn)
	if err != nil {
		return nil, nil, err
	}

	if err = st.Migrate(connectCtx); err != nil {
		st.Close()
		return nil, nil, err
	}

	return st, st.Close, nil
}

func setupLogger(level slog.Leveler) *slog.Logger {
	return slog.New(slogcustom.NewCustomHandler(os.Stderr, level))
}
