// ABOUTME: CLI command for deleting drinks.
// ABOUTME: Supports deletion by full ID or ID prefix.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a drink",
	Long: `Delete a drink by its ID or ID prefix.

You can use either the full UUID or just the first few characters (prefix).
The ID prefix is shown in the first column of 'tipsy list' output.

EXAMPLES:

  tipsy delete abc12345                    # Delete by 8-char prefix
  tipsy delete abc12345-1234-1234-...      # Delete by full UUID
  tipsy rm abc1                            # Short prefix (if unique)

CAUTION:

  This permanently deletes the drink. There is no undo.
  If the prefix matches multiple drinks, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idOrPrefix := args[0]

		// First, try to get the drink to show what we're deleting
		drink, err := repo.GetDrink(idOrPrefix)
		if err != nil {
			return fmt.Errorf("drink not found: %s", idOrPrefix)
		}

		if err := repo.DeleteDrink(idOrPrefix); err != nil {
			return fmt.Errorf("failed to delete drink: %w", err)
		}

		color.Yellow("✗ Deleted %s", drink.Category)
		fmt.Printf("  %s %.1fcl at %.1f%% = %.2f units\n",
			color.New(color.Faint).Sprint(drink.ID.String()[:8]),
			drink.VolumeCl, drink.StrengthPercent, drink.Units)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
