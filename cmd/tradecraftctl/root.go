package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shamanshetty/TradeCraft/cmd/tradecraftctl/client"
	"github.com/shamanshetty/TradeCraft/internal/domain"
	"github.com/spf13/cobra"
)

var (
	flagAPIURL     string
	flagAPITimeout time.Duration
	flagLogLevel   string
)

var rootCmd = &cobra.Command{
	Use:          "tradecraftctl",
	Short:        "Operate a TradeCraft skill-exchange matching deployment",
	SilenceUsage: true,
	Long: `tradecraftctl talks to a running TradeCraft API to manage skills and inspect
matches, and runs maintenance jobs (migrations, re-embedding) directly against
the store configured in the environment.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", envOr("TRADECRAFT_API_URL", "http://localhost:8080"),
		"Base URL of the TradeCraft API")
	rootCmd.PersistentFlags().DurationVar(&flagAPITimeout, "timeout", 60*time.Second, "HTTP timeout for API calls")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", envOr("LOG_LEVEL", "warn"),
		"Log level for local jobs (debug, info, warn, error)")
}

// Execute is called by main.go.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func apiClient() *client.Client {
	return client.NewClient(flagAPIURL, flagAPITimeout)
}

// commandContext returns the command's context with a stderr logger attached.
func commandContext(cmd *cobra.Command) (context.Context, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(flagLogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level [%s]: %w", flagLogLevel, err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return domain.ContextWithLogger(ctx, logger), nil
}
