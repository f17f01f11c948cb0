// ABOUTME: CLI command for logging step-counter activity samples.
// ABOUTME: Samples feed sleep detection for sleep-aware session splitting.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/tipsy/internal/models"
	"github.com/spf13/cobra"
)

var activityAt string

var activityCmd = &cobra.Command{
	Use:   "activity <walking_steps> [dancing_steps]",
	Short: "Log a step-counter activity sample",
	Long: `Log a step-counter activity sample.

Samples represent steps taken in a sampling interval (typically 10
minutes) and feed the sleep detector: a long run of low-activity
samples is treated as sleep, which splits drinking sessions when
'tipsy session --sleep-aware' is used.

EXAMPLES:

  tipsy activity 120                            # 120 walking steps
  tipsy activity 40 200                         # walking plus dancing steps
  tipsy activity 0 --at "2026-08-31 03:00"      # backfill a quiet interval`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		walking, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid walking steps: %s", args[0])
		}

		var dancing float64
		if len(args) == 2 {
			dancing, err = strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid dancing steps: %s", args[1])
			}
		}

		a := models.NewActivitySample(walking, dancing)

		if activityAt != "" {
			t, err := parseTime(activityAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", activityAt)
			}
			a.WithRecordedAt(t)
		}

		if err := repo.CreateActivitySample(a); err != nil {
			return fmt.Errorf("failed to create activity sample: %w", err)
		}

		color.Green("✓ Logged activity")
		fmt.Printf("  %s %.0f steps\n",
			color.New(color.Faint).Sprint(a.ID.String()[:8]),
			a.Steps.Total)

		return nil
	},
}

func init() {
	activityCmd.Flags().StringVar(&activityAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	rootCmd.AddCommand(activityCmd)
}
