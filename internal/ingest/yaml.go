// Package ingest decodes structured game documents into validated domain
// values, and encodes them back. The document format is a YAML list of
// games, each with players, quests, and result fields using the lowercase
// enum strings of the domain model.
package ingest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tanaythan/avalon-tracker/internal/core/game"
)

type gameDoc struct {
	Players map[string]string `yaml:"players"`
	Quests  []questDoc        `yaml:"quests"`
	Result  *resultDoc        `yaml:"result"`
}

type questDoc struct {
	Status       string   `yaml:"status"`
	Fails        *int     `yaml:"fails,omitempty"`
	Participants []string `yaml:"participants"`
}

type resultDoc struct {
	Winner string `yaml:"winner"`
	Type   string `yaml:"type"`
}

// ParseGames decodes a YAML document into a sequence of validated games.
// Any schema violation - malformed YAML, duplicate player name, unknown
// enum string, missing field, or a participant outside the player set -
// fails the whole document with a DecodeError; there are no partial
// results.
func ParseGames(data []byte) ([]*game.Game, error) {
	var docs []gameDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, &game.DecodeError{Detail: fmt.Sprintf("malformed document: %v", err)}
	}

	games := make([]*game.Game, 0, len(docs))
	for i, doc := range docs {
		g, err := decodeGame(doc)
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", i+1, err)
		}
		games = append(games, g)
	}
	return games, nil
}

func decodeGame(doc gameDoc) (*game.Game, error) {
	if doc.Players == nil {
		return nil, &game.DecodeError{Detail: "missing players"}
	}
	if doc.Result == nil {
		return nil, &game.DecodeError{Detail: "missing result"}
	}

	players := make(map[string]game.Role, len(doc.Players))
	for name, rawRole := range doc.Players {
		role, err := game.ParseRole(rawRole)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", name, err)
		}
		players[name] = role
	}

	quests := make([]game.Quest, 0, len(doc.Quests))
	for i, q := range doc.Quests {
		if q.Status == "" {
			return nil, &game.DecodeError{Detail: fmt.Sprintf("quest %d: missing status", i+1)}
		}
		status, err := game.ParseQuestStatus(q.Status)
		if err != nil {
			return nil, fmt.Errorf("quest %d: %w", i+1, err)
		}
		fails := 0
		if q.Fails != nil {
			fails = *q.Fails
		}
		quests = append(quests, game.Quest{
			Status:       status,
			Fails:        fails,
			Participants: q.Participants,
		})
	}

	if doc.Result.Winner == "" {
		return nil, &game.DecodeError{Detail: "missing result winner"}
	}
	if doc.Result.Type == "" {
		return nil, &game.DecodeError{Detail: "missing result type"}
	}
	winner, err := game.ParseAlignment(doc.Result.Winner)
	if err != nil {
		return nil, err
	}
	victory, err := game.ParseVictoryType(doc.Result.Type)
	if err != nil {
		return nil, err
	}

	return game.NewGame(players, quests, game.EndResult{Winner: winner, Type: victory})
}

// EncodeGames is the inverse of ParseGames: it serializes games into a
// document that ParseGames decodes back to equal values.
func EncodeGames(games []*game.Game) ([]byte, error) {
	docs := make([]gameDoc, 0, len(games))
	for _, g := range games {
		players := make(map[string]string, len(g.Players))
		for name, role := range g.Players {
			players[name] = string(role)
		}

		quests := make([]questDoc, 0, len(g.Quests))
		for _, q := range g.Quests {
			fails := q.Fails
			quests = append(quests, questDoc{
				Status:       string(q.Status),
				Fails:        &fails,
				Participants: q.Participants,
			})
		}

		docs = append(docs, gameDoc{
			Players: players,
			Quests:  quests,
			Result: &resultDoc{
				Winner: string(g.Result.Winner),
				Type:   string(g.Result.Type),
			},
		})
	}

	out, err := yaml.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode games: %w", err)
	}
	return out, nil
}
