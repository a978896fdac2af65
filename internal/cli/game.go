package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tanaythan/avalon-tracker/internal/wire"
)

// GameCmd returns the game command
func GameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Inspect recorded games",
		Long:  `Show, list, and export games recorded in the tracker database.`,
	}

	cmd.AddCommand(gameShowCmd())
	cmd.AddCommand(gameListCmd())
	cmd.AddCommand(gameExportCmd())

	return cmd
}

func gameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [game-id]",
		Short: "Show one recorded game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.GameAdapter().Show(context.Background(), args[0])
		},
	}
}

func gameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all recorded games",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.GameAdapter().List(context.Background())
		},
	}
}

func gameExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export all recorded games as an importable document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.GameAdapter().Export(context.Background())
		},
	}
}
