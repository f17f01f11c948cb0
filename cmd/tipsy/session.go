// ABOUTME: CLI command showing the current drinking session.
// ABOUTME: Supports sleep-aware splitting from step-counter samples.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/tipsy/internal/alcohol"
	"github.com/harperreed/tipsy/internal/models"
	"github.com/harperreed/tipsy/internal/session"
	"github.com/spf13/cobra"
)

var (
	sessionUser       string
	sessionSleepAware bool
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Show the current drinking session",
	Long: `Show the drinks in the current session with pace classification.

A gap of more than 4 hours between drinks starts a new session. With
--sleep-aware, a detected sleep period (3+ hours of near-zero step
activity) also starts a new session even when the gap is shorter.

PACE CLASSIFICATION:

  binge      average gap under 15 minutes
  fast       average gap 15-30 minutes
  moderate   average gap 30-60 minutes
  slow       average gap over an hour

EXAMPLES:

  tipsy session
  tipsy session --sleep-aware
  tipsy session --user alice`,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := sessionUser
		if userID == "" {
			userID = defaultUser
		}

		drinks, err := repo.ListDrinks(nil, false, 0)
		if err != nil {
			return fmt.Errorf("failed to list drinks: %w", err)
		}

		var own []*models.DrinkEvent
		if sessionSleepAware {
			samples, err := repo.ListActivitySamples(nil, 0)
			if err != nil {
				return fmt.Errorf("failed to list activity samples: %w", err)
			}
			own = session.DrinksWithActivity(drinks, samples, userID)
		} else {
			own = session.Drinks(drinks, userID)
		}

		if len(own) == 0 {
			fmt.Println("No drinks in the current session.")
			return nil
		}

		pace := alcohol.AnalyzePace(own)

		var units float64
		faint := color.New(color.Faint)
		for _, d := range own {
			units += d.Units
			fmt.Printf("%s %s %s %.2fu\n",
				faint.Sprint(d.ID.String()[:8]),
				faint.Sprint(d.ConsumedAt.Format("15:04")),
				padRight(string(d.Category), 10),
				d.Units)
		}

		fmt.Printf("\n%d drinks, %.2f units since %s\n",
			len(own), models.Round2(units), own[0].ConsumedAt.Format("15:04"))
		fmt.Printf("Pace: %s (avg gap %.0f min)\n", pace.Pattern, pace.AverageGapMinutes)

		return nil
	},
}

func init() {
	sessionCmd.Flags().StringVarP(&sessionUser, "user", "u", "", "subject id (default from config)")
	sessionCmd.Flags().BoolVar(&sessionSleepAware, "sleep-aware", false, "split sessions on detected sleep")
	rootCmd.AddCommand(sessionCmd)
}
