package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shamanshetty/TradeCraft/cmd/tradecraftctl/client"
	"github.com/shamanshetty/TradeCraft/internal/domain"
	"github.com/spf13/cobra"
)

var (
	flagSkillID           string
	flagSkillMode         string
	flagSkillLevel        int
	flagSkillAvailability []string
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Create, replace or delete a user's skills",
}

var skillPutCmd = &cobra.Command{
	Use:   "put <user_id> <name>",
	Short: "Create a skill, or replace it when --id is given",
	Args:  cobra.ExactArgs(2),
	RunE:  runSkillPut,
}

var skillDeleteCmd = &cobra.Command{
	Use:   "delete <user_id> <skill_id>",
	Short: "Delete a skill",
	Args:  cobra.ExactArgs(2),
	RunE:  runSkillDelete,
}

func init() {
	skillPutCmd.Flags().StringVar(&flagSkillID, "id", "", "ID of the skill to replace")
	skillPutCmd.Flags().StringVar(&flagSkillMode, "mode", string(domain.SkillModeTeach), "teach or learn")
	skillPutCmd.Flags().IntVar(&flagSkillLevel, "level", 3, "Proficiency level (1-5)")
	skillPutCmd.Flags().StringSliceVar(&flagSkillAvailability, "availability", nil,
		"Availability slots as day:time, e.g. mon:evening,sat:morning")

	skillCmd.AddCommand(skillPutCmd, skillDeleteCmd)
	rootCmd.AddCommand(skillCmd)
}

func runSkillPut(cmd *cobra.Command, args []string) error {
	ctx, err := commandContext(cmd)
	if err != nil {
		return err
	}

	slots, err := parseAvailability(flagSkillAvailability)
	if err != nil {
		return err
	}

	skill, err := apiClient().PutSkill(ctx, args[0], flagSkillID, client.SkillInput{
		Mode:         domain.SkillMode(flagSkillMode),
		Name:         args[1],
		Level:        flagSkillLevel,
		Availability: slots,
	})
	if err != nil {
		return fmt.Errorf("storing skill: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(skill)
}

func runSkillDelete(cmd *cobra.Command, args []string) error {
	ctx, err := commandContext(cmd)
	if err != nil {
		return err
	}

	if err := apiClient().DeleteSkill(ctx, args[0], args[1]); err != nil {
		return fmt.Errorf("deleting skill: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted skill %s\n", args[1])
	return nil
}

func parseAvailability(values []string) ([]domain.AvailabilitySlot, error) {
	slots := make([]domain.AvailabilitySlot, 0, len(values))
	for _, v := range values {
		day, t, ok := strings.Cut(v, ":")
		if !ok || day == "" || t == "" {
			return nil, fmt.Errorf("invalid availability slot [%s], expected day:time", v)
		}
		slots = append(slots, domain.AvailabilitySlot{Day: day, Time: t})
	}
	return slots, nil
}
