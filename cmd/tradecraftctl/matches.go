package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	flagMatchesLimit   int
	flagMatchesExplain bool
	flagMatchesJSON    bool
)

var matchesCmd = &cobra.Command{
	Use:   "matches <user_id>",
	Short: "Show ranked skill-exchange matches for a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatches,
}

func init() {
	matchesCmd.Flags().IntVar(&flagMatchesLimit, "limit", 10, "Number of matches to return (1-50)")
	matchesCmd.Flags().BoolVar(&flagMatchesExplain, "explain", false, "Request a natural-language explanation per match")
	matchesCmd.Flags().BoolVar(&flagMatchesJSON, "json", false, "Print the raw JSON response")
	rootCmd.AddCommand(matchesCmd)
}

func runMatches(cmd *cobra.Command, args []string) error {
	ctx, err := commandContext(cmd)
	if err != nil {
		return err
	}

	resp, err := apiClient().GetMatches(ctx, args[0], flagMatchesLimit, flagMatchesExplain)
	if err != nil {
		return fmt.Errorf("fetching matches: %w", err)
	}

	out := cmd.OutOrStdout()
	if flagMatchesJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	if len(resp.Data) == 0 {
		_, _ = fmt.Fprintln(out, "No matches found.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "RANK\tPARTNER\tTOTAL\tSEMANTIC\tRECIPROCITY\tAVAILABILITY\tPREFERENCE")
	for i, m := range resp.Data {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			i+1, m.User2ID, m.TotalScore, m.SemanticScore, m.ReciprocityScore, m.AvailabilityScore, m.PreferenceScore)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if flagMatchesExplain {
		_, _ = fmt.Fprintln(out)
		for i, m := range resp.Data {
			_, _ = fmt.Fprintf(out, "%d. %s\n", i+1, m.Explanation)
		}
	}

	if resp.Metadata.Stats.Interrupted {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "warning: matching was interrupted, results may be incomplete")
	}
	return nil
}
