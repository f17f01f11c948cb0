// ABOUTME: CLI command for logging drinks.
// ABOUTME: Handles category default servings and explicit volume/strength.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/tipsy/internal/models"
	"github.com/spf13/cobra"
)

var (
	addAt       string
	addNotes    string
	addUser     string
	addTemplate bool
)

var addCmd = &cobra.Command{
	Use:     "add <category> [volume_cl] [strength_pct]",
	Aliases: []string{"a"},
	Short:   "Log a drink",
	Long: `Log a drink. Without volume and strength, the category's standard
serving is used.

STANDARD SERVINGS:

  beer       33cl at 4.7%
  wine       15cl at 12.5%
  cocktail   25cl at 10%
  shot       4cl at 40%
  champagne  12cl at 12%
  soft       33cl at 0%
  other      25cl at 5%

Examples:
  tipsy add beer
  tipsy add wine 12.5 12
  tipsy add beer 33 4.5 --at "2026-08-30 21:00"
  tipsy add shot --notes "tequila round"`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := args[0]
		if !models.IsValidCategory(category) {
			return fmt.Errorf("unknown drink category: %s\nValid categories: beer, wine, cocktail, shot, champagne, soft, other", category)
		}

		serving := models.DefaultServings[models.Category(category)]
		volume, strength := serving.VolumeCl, serving.StrengthPercent

		if len(args) >= 2 {
			v, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid volume: %s", args[1])
			}
			volume = v
		}
		if len(args) == 3 {
			s, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid strength: %s", args[2])
			}
			strength = s
		}

		userID := addUser
		if userID == "" {
			userID = defaultUser
		}

		d := models.NewDrink(userID, models.Category(category), volume, strength)

		// Handle --at flag
		if addAt != "" {
			t, err := parseTime(addAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", addAt)
			}
			d.WithConsumedAt(t)
		}

		// Handle --notes flag
		if addNotes != "" {
			d.WithNotes(addNotes)
		}

		if addTemplate {
			d.AsTemplate()
		}

		if err := repo.CreateDrink(d); err != nil {
			return fmt.Errorf("failed to create drink: %w", err)
		}

		color.Green("✓ Logged %s", category)
		fmt.Printf("  %s %.1fcl at %.1f%% = %.2f units\n",
			color.New(color.Faint).Sprint(d.ID.String()[:8]),
			d.VolumeCl, d.StrengthPercent, d.Units)

		return nil
	},
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func init() {
	addCmd.Flags().StringVar(&addAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "notes for the drink")
	addCmd.Flags().StringVarP(&addUser, "user", "u", "", "subject id (default from config)")
	addCmd.Flags().BoolVar(&addTemplate, "template", false, "save as a reusable template, excluded from estimates")
	rootCmd.AddCommand(addCmd)
}
