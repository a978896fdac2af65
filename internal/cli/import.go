package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tanaythan/avalon-tracker/internal/wire"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import a file of recorded games",
		Long: `Import a YAML file of completed games into the tracker database.

Each game lists its players with their roles, the quests in play order,
and the end result. The whole file is validated before anything is
stored: a single malformed game rejects the import.

Example:
  avalon import games.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			document, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			if err := wire.GameAdapter().Import(context.Background(), document); err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			return nil
		},
	}
}
