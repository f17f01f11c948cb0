// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/tipsy/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your drink data through
a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "tipsy": {
        "command": "tipsy",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  log_drink       Log a consumed drink
  list_drinks     List recent drinks
  delete_drink    Delete a drink by ID
  log_activity    Log a step-counter sample
  set_profile     Set the body profile
  get_status      Remaining units, BAC, time to sober
  get_session     Current session with pace classification
  group_round     Group session statistics

AVAILABLE RESOURCES:

  tipsy://status      Current BAC status
  tipsy://session     Current drinking session
  tipsy://recent      Recent drinks`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, defaultUser)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
