package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tanaythan/avalon-tracker/internal/wire"
)

// StandingsCmd returns the standings command
func StandingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Show ranked win/loss standings over all recorded games",
		Long: `Compute and display cumulative per-player standings.

Players are ranked by wins, then by win percentage, then by name. With
--by-alignment, separate tables are shown for the games each player
spent on the good and evil sides.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			byAlignment, _ := cmd.Flags().GetBool("by-alignment")

			ctx := context.Background()
			if byAlignment {
				return wire.StandingsAdapter().ShowByAlignment(ctx)
			}
			return wire.StandingsAdapter().Show(ctx)
		},
	}

	cmd.Flags().Bool("by-alignment", false, "Partition standings by the alignment each player held")

	return cmd
}
