// Package primary defines the primary ports (driving interfaces) for the
// application. CLI adapters depend on these interfaces, never on the
// service implementations.
package primary

import (
	"context"

	"github.com/tanaythan/avalon-tracker/internal/core/game"
	"github.com/tanaythan/avalon-tracker/internal/core/standings"
)

// GameService is the primary port for recording games and deriving
// standings from them.
type GameService interface {
	// ImportGames decodes a game document and stores every game it
	// contains. Decoding failures reject the whole document before
	// anything is stored.
	ImportGames(ctx context.Context, req ImportGamesRequest) (*ImportGamesResponse, error)

	// GetGame loads one stored game by id.
	GetGame(ctx context.Context, gameID string) (*game.Game, error)

	// ListGames returns summaries of every stored game in storage order.
	ListGames(ctx context.Context) ([]*GameSummary, error)

	// ExportGames re-serializes every stored game into an importable
	// document.
	ExportGames(ctx context.Context) ([]byte, error)

	// Standings computes cumulative per-player records over all stored
	// games.
	Standings(ctx context.Context) (standings.Standings, error)

	// StandingsByAlignment computes per-player records partitioned by the
	// alignment each player held.
	StandingsByAlignment(ctx context.Context) (map[game.Alignment]standings.Standings, error)
}

// ImportGamesRequest carries the raw document to import.
type ImportGamesRequest struct {
	Document []byte
}

// ImportGamesResponse reports the ids assigned to the stored games, in
// document order.
type ImportGamesResponse struct {
	GameIDs []string
}

// GameSummary describes one stored game for listings.
type GameSummary struct {
	ID          string
	Winner      string
	VictoryType string
	PlayerCount int
	QuestCount  int
	CreatedAt   string
}
