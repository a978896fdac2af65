// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import (
	"context"
	"errors"

	"github.com/tanaythan/avalon-tracker/internal/core/game"
)

// ErrNotFound reports a requested game id that does not exist in storage.
// Repository errors for missing ids wrap this sentinel.
var ErrNotFound = errors.New("game not found")

// GameRepository defines the secondary port for game persistence. A stored
// game is a single atomic unit: its role assignments, quests, and quest
// participants are either all visible or none are.
type GameRepository interface {
	// Create durably records a game and returns its fresh unique id.
	Create(ctx context.Context, g *game.Game) (string, error)

	// GetByID reconstructs a previously stored game exactly as stored.
	// Unknown ids fail with an error wrapping ErrNotFound.
	GetByID(ctx context.Context, id string) (*game.Game, error)

	// List returns every stored game in storage order.
	List(ctx context.Context) ([]*game.Game, error)

	// ListSummaries returns one summary per stored game, in storage order.
	ListSummaries(ctx context.Context) ([]*GameSummary, error)
}

// GameSummary is the stored-game header used by listings: the id plus the
// fields that identify a game without loading its full quest history.
type GameSummary struct {
	ID          string
	Winner      string
	VictoryType string
	PlayerCount int
	QuestCount  int
	CreatedAt   string
}
