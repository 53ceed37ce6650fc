package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shamanshetty/TradeCraft/internal/app"
	"github.com/shamanshetty/TradeCraft/internal/command"
	"github.com/shamanshetty/TradeCraft/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Setup logger
	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := run(ctx); err != nil {
		logger.ErrorContext(ctx, "skill re-embedding failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "skill re-embedding completed successfully")
}

func run(ctx context.Context) error {
	services, err := app.SetupServices(ctx)
	if err != nil {
		return err
	}
	defer services.Close()

	cmds, err := app.SetupCommands(ctx, services)
	if err != nil {
		return err
	}

	// Batches repeat until the store has nothing stale left, or a whole batch fails.
	for {
		resp, err := cmds.ReembedSkills.Execute(ctx, command.ReembedSkillsRequest{})
		if err != nil {
			return err
		}
		if resp.Reembedded == 0 {
			if resp.Failed > 0 {
				return fmt.Errorf("%d skills could not be re-embedded", resp.Failed)
			}
			return nil
		}
	}
}
