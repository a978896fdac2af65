// Package cli provides thin CLI adapters that translate between CLI
// concerns and application services. Adapters handle output formatting but
// delegate all semantics to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/tanaythan/avalon-tracker/internal/core/game"
	"github.com/tanaythan/avalon-tracker/internal/ports/primary"
)

// GameAdapter is a thin adapter that translates CLI operations to
// GameService calls. It depends only on the GameService interface, enabling
// easy testing with mocks.
type GameAdapter struct {
	service primary.GameService
	out     io.Writer
}

// NewGameAdapter creates a new GameAdapter with the given service.
func NewGameAdapter(service primary.GameService, out io.Writer) *GameAdapter {
	return &GameAdapter{
		service: service,
		out:     out,
	}
}

// Import stores every game in the document and prints the assigned ids.
func (a *GameAdapter) Import(ctx context.Context, document []byte) error {
	resp, err := a.service.ImportGames(ctx, primary.ImportGamesRequest{
		Document: document,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Imported %d game(s)\n", len(resp.GameIDs))
	for _, id := range resp.GameIDs {
		fmt.Fprintf(a.out, "  %s\n", id)
	}
	return nil
}

// Show displays one stored game: roles, quests in play order, and result.
func (a *GameAdapter) Show(ctx context.Context, gameID string) error {
	g, err := a.service.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nGame: %s\n", gameID)
	fmt.Fprintf(a.out, "Winner: %s (%s)\n", string(g.Result.Winner), string(g.Result.Type))

	fmt.Fprintf(a.out, "\n%-15s %-15s %s\n", "PLAYER", "ROLE", "ALIGNMENT")
	for _, name := range g.AllPlayers() {
		role := g.Players[name]
		alignment, err := role.Alignment()
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%-15s %-15s %s\n", name, string(role), string(alignment))
	}

	if len(g.Quests) > 0 {
		fmt.Fprintf(a.out, "\n%-7s %-10s %-6s %s\n", "QUEST", "STATUS", "FAILS", "PARTICIPANTS")
		for i, q := range g.Quests {
			status := string(q.Status)
			if q.Status == game.QuestFail {
				status = color.New(color.FgRed).Sprint(status)
			} else {
				status = color.New(color.FgGreen).Sprint(status)
			}
			fmt.Fprintf(a.out, "%-7d %-10s %-6d %s\n", i+1, status, q.Fails, strings.Join(q.Participants, ", "))
		}
	}
	fmt.Fprintln(a.out)

	return nil
}

// List prints one line per stored game, in storage order.
func (a *GameAdapter) List(ctx context.Context) error {
	summaries, err := a.service.ListGames(ctx)
	if err != nil {
		return fmt.Errorf("failed to list games: %w", err)
	}

	if len(summaries) == 0 {
		fmt.Fprintln(a.out, "No games recorded")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-38s %-6s %-15s %-8s %-7s %s\n", "ID", "WINNER", "VICTORY", "PLAYERS", "QUESTS", "RECORDED")
	for _, s := range summaries {
		fmt.Fprintf(a.out, "%-38s %-6s %-15s %-8d %-7d %s\n",
			s.ID, s.Winner, s.VictoryType, s.PlayerCount, s.QuestCount, s.CreatedAt)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Export writes every stored game as an importable document.
func (a *GameAdapter) Export(ctx context.Context) error {
	document, err := a.service.ExportGames(ctx)
	if err != nil {
		return err
	}

	_, err = a.out.Write(document)
	return err
}
