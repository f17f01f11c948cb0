// ABOUTME: CLI commands for exporting and importing tipsy data.
// ABOUTME: Supports JSON and YAML formats for backup and restore.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/tipsy/internal/storage"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export drink data",
	Long: `Export all tipsy data in the requested format.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)

OPTIONS:

  --output, -o   Write to file instead of stdout

EXAMPLES:

  tipsy export json                # Export all data as JSON
  tipsy export json -o backup.json # Save to file
  tipsy export yaml                # Export as YAML`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		export, err := repo.GetAllData()
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		data, err := storage.MarshalExport(export, format)
		if err != nil {
			return err
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import drink data from a backup",
	Long: `Import tipsy data from a previously exported JSON or YAML file.

Duplicate entries (same ID) will cause an error.

EXAMPLES:

  tipsy import backup.json               # Import from file`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		raw, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		data, err := storage.UnmarshalExport(raw)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		if err := repo.ImportData(data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
