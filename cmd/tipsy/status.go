// ABOUTME: CLI command showing remaining units, BAC estimate, and time to sober.
// ABOUTME: Combines session segmentation, pace analysis, and the Widmark model.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/tipsy/internal/alcohol"
	"github.com/harperreed/tipsy/internal/models"
	"github.com/harperreed/tipsy/internal/session"
	"github.com/spf13/cobra"
)

var statusUser string

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show current BAC status",
	Long: `Show the current alcohol status: remaining standard units in the
body, estimated blood and breath alcohol, drinking pace, and the
estimated time until fully sober.

The estimate uses the body profile when one is set (tipsy profile set)
and population defaults otherwise. Fast or binge-paced drinking
inflates the estimate via a pace factor.

EXAMPLES:

  tipsy status
  tipsy status --user alice`,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := statusUser
		if userID == "" {
			userID = defaultUser
		}

		drinks, err := repo.ListDrinks(nil, false, 0)
		if err != nil {
			return fmt.Errorf("failed to list drinks: %w", err)
		}
		samples, err := repo.ListActivitySamples(nil, 0)
		if err != nil {
			return fmt.Errorf("failed to list activity samples: %w", err)
		}
		profile, err := repo.GetProfile(userID)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		own := session.DrinksWithActivity(drinks, samples, userID)
		pace := alcohol.AnalyzePace(own)
		remaining := alcohol.RemainingUnits(own, time.Now())
		est := alcohol.EstimateAdvanced(remaining, profile)

		blood := models.Round2(est.BloodAlcohol * pace.SpeedFactor)
		breath := models.Round2(blood * 0.5)

		if remaining == 0 {
			color.Green("✓ Sober")
			fmt.Println("  no alcohol remaining")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("Remaining: %.2f units (%d drinks this session)\n", remaining, len(own))
		fmt.Printf("Blood:     %.2f g/L\n", blood)
		fmt.Printf("Breath:    %.2f mg/L\n", breath)
		fmt.Printf("Pace:      %s (factor %.2f)\n", pace.Pattern, pace.SpeedFactor)
		fmt.Printf("Sober in:  %.1f hours\n", est.TimeToSoberHours)
		fmt.Printf("  %s\n", faint.Sprintf("elimination %.3f u/h, widmark %.3f",
			est.EliminationRate, est.WidmarkFactor))

		return nil
	},
}

func init() {
	statusCmd.Flags().StringVarP(&statusUser, "user", "u", "", "subject id (default from config)")
	rootCmd.AddCommand(statusCmd)
}
