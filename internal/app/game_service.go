// Package app contains the application services implementing the primary
// ports. Services orchestrate the functional core and the repositories;
// they hold no state of their own.
package app

import (
	"context"
	"fmt"

	"github.com/tanaythan/avalon-tracker/internal/core/game"
	"github.com/tanaythan/avalon-tracker/internal/core/standings"
	"github.com/tanaythan/avalon-tracker/internal/ingest"
	"github.com/tanaythan/avalon-tracker/internal/ports/primary"
	"github.com/tanaythan/avalon-tracker/internal/ports/secondary"
)

// GameServiceImpl implements the GameService interface.
type GameServiceImpl struct {
	gameRepo secondary.GameRepository
}

// NewGameService creates a new GameService with injected dependencies.
func NewGameService(gameRepo secondary.GameRepository) *GameServiceImpl {
	return &GameServiceImpl{
		gameRepo: gameRepo,
	}
}

// ImportGames decodes the document and stores every game it contains. The
// whole document is decoded before the first store, so a decoding failure
// rejects the import without partial acceptance.
func (s *GameServiceImpl) ImportGames(ctx context.Context, req primary.ImportGamesRequest) (*primary.ImportGamesResponse, error) {
	games, err := ingest.ParseGames(req.Document)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(games))
	for i, g := range games {
		id, err := s.gameRepo.Create(ctx, g)
		if err != nil {
			return nil, fmt.Errorf("failed to store game %d: %w", i+1, err)
		}
		ids = append(ids, id)
	}

	return &primary.ImportGamesResponse{GameIDs: ids}, nil
}

// GetGame loads one stored game by id.
func (s *GameServiceImpl) GetGame(ctx context.Context, gameID string) (*game.Game, error) {
	return s.gameRepo.GetByID(ctx, gameID)
}

// ListGames returns summaries of every stored game in storage order.
func (s *GameServiceImpl) ListGames(ctx context.Context) ([]*primary.GameSummary, error) {
	records, err := s.gameRepo.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	summaries := make([]*primary.GameSummary, len(records))
	for i, r := range records {
		summaries[i] = &primary.GameSummary{
			ID:          r.ID,
			Winner:      r.Winner,
			VictoryType: r.VictoryType,
			PlayerCount: r.PlayerCount,
			QuestCount:  r.QuestCount,
			CreatedAt:   r.CreatedAt,
		}
	}
	return summaries, nil
}

// ExportGames re-serializes every stored game into an importable document.
func (s *GameServiceImpl) ExportGames(ctx context.Context) ([]byte, error) {
	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load games: %w", err)
	}
	return ingest.EncodeGames(games)
}

// Standings computes cumulative per-player records over all stored games.
func (s *GameServiceImpl) Standings(ctx context.Context) (standings.Standings, error) {
	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load games: %w", err)
	}
	return standings.Compute(games), nil
}

// StandingsByAlignment computes per-player records partitioned by the
// alignment each player held.
func (s *GameServiceImpl) StandingsByAlignment(ctx context.Context) (map[game.Alignment]standings.Standings, error) {
	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load games: %w", err)
	}
	return standings.ComputeByAlignment(games), nil
}

// Ensure GameServiceImpl implements the interface.
var _ primary.GameService = (*GameServiceImpl)(nil)
