// ABOUTME: CLI command for listing drinks.
// ABOUTME: Supports filtering by user, including templates, and limiting results.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	listUser      string
	listLimit     int
	listTemplates bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List drinks",
	Long: `List recent drinks from your drink log.

OUTPUT FORMAT:

  Each line shows: ID  TIMESTAMP  CATEGORY  VOLUME  STRENGTH  UNITS  (NOTES)

  The ID is an 8-character prefix you can use with the delete command.

EXAMPLES:

  tipsy list                     # Show last 20 drinks
  tipsy list -n 50               # Show last 50 drinks
  tipsy list --user alice        # Show alice's drinks
  tipsy list --templates         # Include saved templates`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var userID *string
		if listUser != "" {
			userID = &listUser
		}

		drinks, err := repo.ListDrinks(userID, listTemplates, listLimit)
		if err != nil {
			return fmt.Errorf("failed to list drinks: %w", err)
		}

		if len(drinks) == 0 {
			fmt.Println("No drinks found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, d := range drinks {
			notes := ""
			if d.Notes != nil && *d.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(*d.Notes, 30))
			}
			marker := ""
			if d.IsTemplate {
				marker = faint.Sprint(" [template]")
			}
			fmt.Printf("%s %s %s %5.1fcl %4.1f%% %.2fu%s%s\n",
				faint.Sprint(d.ID.String()[:8]),
				faint.Sprint(d.ConsumedAt.Format("2006-01-02 15:04")),
				padRight(string(d.Category), 10),
				d.VolumeCl,
				d.StrengthPercent,
				d.Units,
				marker,
				notes)
		}

		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().StringVarP(&listUser, "user", "u", "", "filter by subject id")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")
	listCmd.Flags().BoolVar(&listTemplates, "templates", false, "include saved templates")
	rootCmd.AddCommand(listCmd)
}
