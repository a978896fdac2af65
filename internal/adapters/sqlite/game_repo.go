// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/tanaythan/avalon-tracker/internal/core/game"
	"github.com/tanaythan/avalon-tracker/internal/ports/secondary"
)

// GameRepository implements secondary.GameRepository with SQLite.
type GameRepository struct {
	db *sql.DB
}

// NewGameRepository creates a new SQLite game repository.
func NewGameRepository(db *sql.DB) *GameRepository {
	return &GameRepository{db: db}
}

// Create persists a game in a single transaction: the game header, role
// assignments, quests, and quest participants commit together or not at
// all. Every stored field is written verbatim from the domain value.
func (r *GameRepository) Create(ctx context.Context, g *game.Game) (string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	gameID := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		"INSERT INTO games (id, winner, victory_type) VALUES (?, ?, ?)",
		gameID, string(g.Result.Winner), string(g.Result.Type),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert game: %w", err)
	}

	for name, role := range g.Players {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO player_roles (game_id, name, role) VALUES (?, ?, ?)",
			gameID, name, string(role),
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert role for %s: %w", name, err)
		}
	}

	for position, q := range g.Quests {
		questID := uuid.NewString()
		_, err = tx.ExecContext(ctx,
			"INSERT INTO quests (id, game_id, position, fails, status) VALUES (?, ?, ?, ?, ?)",
			questID, gameID, position, q.Fails, string(q.Status),
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert quest %d: %w", position+1, err)
		}

		for _, participant := range q.Participants {
			_, err = tx.ExecContext(ctx,
				"INSERT INTO quest_participants (quest_id, name) VALUES (?, ?)",
				questID, participant,
			)
			if err != nil {
				return "", fmt.Errorf("failed to insert participant for quest %d: %w", position+1, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit game: %w", err)
	}

	return gameID, nil
}

// GetByID reconstructs a stored game. Stored enum strings go back through
// the domain decoders, so a corrupted row surfaces as a DecodeError rather
// than a silently defaulted value.
func (r *GameRepository) GetByID(ctx context.Context, id string) (*game.Game, error) {
	var rawWinner, rawVictory string
	err := r.db.QueryRowContext(ctx,
		"SELECT winner, victory_type FROM games WHERE id = ?", id,
	).Scan(&rawWinner, &rawVictory)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("game %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	winner, err := game.ParseAlignment(rawWinner)
	if err != nil {
		return nil, err
	}
	victory, err := game.ParseVictoryType(rawVictory)
	if err != nil {
		return nil, err
	}

	players, err := r.loadPlayers(ctx, id)
	if err != nil {
		return nil, err
	}

	quests, err := r.loadQuests(ctx, id)
	if err != nil {
		return nil, err
	}

	return game.NewGame(players, quests, game.EndResult{Winner: winner, Type: victory})
}

func (r *GameRepository) loadPlayers(ctx context.Context, gameID string) (map[string]game.Role, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT name, role FROM player_roles WHERE game_id = ?", gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}
	defer rows.Close()

	players := make(map[string]game.Role)
	for rows.Next() {
		var name, rawRole string
		if err := rows.Scan(&name, &rawRole); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		role, err := game.ParseRole(rawRole)
		if err != nil {
			return nil, err
		}
		players[name] = role
	}
	return players, rows.Err()
}

func (r *GameRepository) loadQuests(ctx context.Context, gameID string) ([]game.Quest, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, fails, status FROM quests WHERE game_id = ? ORDER BY position", gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load quests: %w", err)
	}
	defer rows.Close()

	type questRow struct {
		id     string
		fails  int
		status string
	}
	var questRows []questRow
	for rows.Next() {
		var q questRow
		if err := rows.Scan(&q.id, &q.fails, &q.status); err != nil {
			return nil, fmt.Errorf("failed to scan quest: %w", err)
		}
		questRows = append(questRows, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var quests []game.Quest
	for _, q := range questRows {
		status, err := game.ParseQuestStatus(q.status)
		if err != nil {
			return nil, err
		}
		participants, err := r.loadParticipants(ctx, q.id)
		if err != nil {
			return nil, err
		}
		quests = append(quests, game.Quest{
			Status:       status,
			Fails:        q.fails,
			Participants: participants,
		})
	}
	return quests, nil
}

func (r *GameRepository) loadParticipants(ctx context.Context, questID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT name FROM quest_participants WHERE quest_id = ? ORDER BY name", questID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// List retrieves every stored game in storage order.
func (r *GameRepository) List(ctx context.Context) ([]*game.Game, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id FROM games ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan game id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	games := make([]*game.Game, 0, len(ids))
	for _, id := range ids {
		g, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// ListSummaries retrieves per-game headers with player and quest counts, in
// storage order.
func (r *GameRepository) ListSummaries(ctx context.Context) ([]*secondary.GameSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT g.id, g.winner, g.victory_type, g.created_at,
			(SELECT COUNT(*) FROM player_roles p WHERE p.game_id = g.id),
			(SELECT COUNT(*) FROM quests q WHERE q.game_id = g.id)
		FROM games g ORDER BY g.rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list game summaries: %w", err)
	}
	defer rows.Close()

	var summaries []*secondary.GameSummary
	for rows.Next() {
		s := &secondary.GameSummary{}
		if err := rows.Scan(&s.ID, &s.Winner, &s.VictoryType, &s.CreatedAt, &s.PlayerCount, &s.QuestCount); err != nil {
			return nil, fmt.Errorf("failed to scan game summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// Ensure GameRepository implements the interface
var _ secondary.GameRepository = (*GameRepository)(nil)
