// ABOUTME: Root Cobra command for tipsy CLI.
// ABOUTME: Handles config load and storage backend lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/tipsy/internal/config"
	"github.com/harperreed/tipsy/internal/storage"
	"github.com/spf13/cobra"
)

var (
	repo        storage.Repository
	defaultUser string
)

var rootCmd = &cobra.Command{
	Use:   "tipsy",
	Short: "Personal drink and blood alcohol tracker",
	Long: `Tipsy is a CLI tool for tracking drinks and estimating blood alcohol.

WHAT IT TRACKS:

  Drinks       beer, wine, cocktail, shot, champagne, soft, other
  Activity     step-counter samples (walking and dancing), used for sleep detection
  Profile      age, gender, height, weight, activity level for personalized estimates

QUICK START:

  $ tipsy add beer                       # Log a standard beer (33cl, 4.7%)
  $ tipsy add wine 12.5 12               # Log 12.5cl of 12% wine
  $ tipsy add shot --notes "tequila"     # Log a shot with notes
  $ tipsy list                           # See recent drinks
  $ tipsy status                         # Remaining units, BAC, time to sober

SESSIONS:

  Drinks are grouped into sessions: a gap of more than 4 hours (or a
  detected sleep period with --sleep-aware) starts a new session. The
  session view also classifies drinking pace (slow / moderate / fast /
  binge) from the average gap between drinks.

  $ tipsy session                        # Current session with pace
  $ tipsy session --sleep-aware          # Split on detected sleep too
  $ tipsy group alice bob carol          # Group round statistics

PROFILES:

  $ tipsy profile set --weight 70 --gender male --age 30
  $ tipsy profile show

  Without a profile, estimates fall back to population defaults
  (70 kg, 170 cm, 30 years, male, moderate activity).

MCP INTEGRATION:

  Run 'tipsy mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "tipsy": { "command": "tipsy", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Drinks are stored in SQLite at ~/.local/share/tipsy/tipsy.db by default.
  Set "backend": "charm" in ~/.config/tipsy/config.json to sync across
  devices with Charm Cloud (E2E encrypted with your SSH key).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		defaultUser = cfg.GetDefaultUser()

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
