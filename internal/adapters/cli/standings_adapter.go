package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/tanaythan/avalon-tracker/internal/core/game"
	"github.com/tanaythan/avalon-tracker/internal/core/standings"
	"github.com/tanaythan/avalon-tracker/internal/ports/primary"
)

// StandingsAdapter renders ranked standings tables for the CLI.
type StandingsAdapter struct {
	service primary.GameService
	out     io.Writer
}

// NewStandingsAdapter creates a new StandingsAdapter with the given service.
func NewStandingsAdapter(service primary.GameService, out io.Writer) *StandingsAdapter {
	return &StandingsAdapter{
		service: service,
		out:     out,
	}
}

// Show renders the overall standings table.
func (a *StandingsAdapter) Show(ctx context.Context) error {
	s, err := a.service.Standings(ctx)
	if err != nil {
		return err
	}

	a.renderTable("Standings", s)
	return nil
}

// ShowByAlignment renders one standings table per alignment, good first.
func (a *StandingsAdapter) ShowByAlignment(ctx context.Context) error {
	byAlignment, err := a.service.StandingsByAlignment(ctx)
	if err != nil {
		return err
	}

	a.renderTable("Good standings", byAlignment[game.AlignmentGood])
	a.renderTable("Evil standings", byAlignment[game.AlignmentEvil])
	return nil
}

// renderTable emits a header line, one ranked row per player, and a
// trailing separator.
func (a *StandingsAdapter) renderTable(title string, s standings.Standings) {
	fmt.Fprintln(a.out, color.New(color.Bold).Sprint(title))
	fmt.Fprintf(a.out, "%-15s %4s %4s %7s\n", "NAME", "W", "L", "WIN%")

	for _, entry := range s.Ranked() {
		fmt.Fprintf(a.out, "%-15s %4d %4d %7.2f\n",
			entry.Name,
			entry.Record.Wins,
			entry.Record.Losses,
			entry.Record.WinPercentage(),
		)
	}

	fmt.Fprintln(a.out, "---------")
}
