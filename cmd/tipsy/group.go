// ABOUTME: CLI command for group round statistics.
// ABOUTME: Aggregates per-member session drinks and a group-wide average.
package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/harperreed/tipsy/internal/session"
	"github.com/spf13/cobra"
)

var groupCmd = &cobra.Command{
	Use:   "group <member> [member...]",
	Short: "Show group session statistics",
	Long: `Show session statistics for a group of members.

Each member's current session drinks and units are listed, along with
a group average. Members with no session drinks still count toward
the average denominator.

EXAMPLES:

  tipsy group alice bob
  tipsy group alice bob carol dave`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		drinks, err := repo.ListDrinks(nil, false, 0)
		if err != nil {
			return fmt.Errorf("failed to list drinks: %w", err)
		}

		stats := session.GroupSessionStats(drinks, args)

		if len(stats.SessionMemberStats) == 0 {
			fmt.Println("No session drinks for any member.")
			return nil
		}

		members := make([]string, 0, len(stats.SessionMemberStats))
		for id := range stats.SessionMemberStats {
			members = append(members, id)
		}
		sort.Strings(members)

		faint := color.New(color.Faint)
		for _, id := range members {
			m := stats.SessionMemberStats[id]
			fmt.Printf("%s %d drinks, %.2f units\n", padRight(id, 16), m.Drinks, m.Units)
		}

		fmt.Printf("\nGroup average: %.2f units across %d members\n",
			stats.SessionGroupAverage, len(args))
		if !stats.SessionStartTime.IsZero() {
			fmt.Printf("  %s\n", faint.Sprintf("session started %s",
				stats.SessionStartTime.Format("2006-01-02 15:04")))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(groupCmd)
}
