package main

import (
	"fmt"

	"github.com/shamanshetty/TradeCraft/internal/app"
	"github.com/shamanshetty/TradeCraft/internal/command"
	"github.com/spf13/cobra"
)

var flagReembedBatch int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the schema in the store selected by STORE_DRIVER",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

var reembedCmd = &cobra.Command{
	Use:   "reembed",
	Short: "Embed one batch of skills that are missing an embedding or use an old model",
	Args:  cobra.NoArgs,
	RunE:  runReembed,
}

func init() {
	reembedCmd.Flags().IntVar(&flagReembedBatch, "batch", 0, "Batch size (0 uses REEMBED_BATCH_SIZE or the default)")
	rootCmd.AddCommand(migrateCmd, reembedCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx, err := commandContext(cmd)
	if err != nil {
		return err
	}

	services, err := app.SetupServices(ctx)
	if err != nil {
		return err
	}
	defer services.Close()

	if err := services.Migrate(ctx); err != nil {
		return fmt.Errorf("migrating store: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")
	return nil
}

func runReembed(cmd *cobra.Command, _ []string) error {
	ctx, err := commandContext(cmd)
	if err != nil {
		return err
	}

	services, err := app.SetupServices(ctx)
	if err != nil {
		return err
	}
	defer services.Close()

	cmds, err := app.SetupCommands(ctx, services)
	if err != nil {
		return err
	}

	resp, err := cmds.ReembedSkills.Execute(ctx, command.ReembedSkillsRequest{BatchSize: flagReembedBatch})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Re-embedded %d skills, %d failed.\n", resp.Reembedded, resp.Failed)
	return nil
}
