// Package game contains the domain model for recorded Avalon games.
// This is part of the functional core - no I/O, only pure values and functions.
package game

import "fmt"

// Role is one of the nine character roles a player can hold.
type Role string

const (
	RoleAssassin      Role = "assassin"
	RoleMerlin        Role = "merlin"
	RoleMinion        Role = "minion"
	RoleMordred       Role = "mordred"
	RoleMorgana       Role = "morgana"
	RoleOberon        Role = "oberon"
	RolePercival      Role = "percival"
	RoleReverseOberon Role = "reverseoberon"
	RoleServant       Role = "servant"
)

// Alignment is the faction a role belongs to.
type Alignment string

const (
	AlignmentGood Alignment = "good"
	AlignmentEvil Alignment = "evil"
)

// QuestStatus is the outcome of a single quest.
type QuestStatus string

const (
	QuestSuccess QuestStatus = "success"
	QuestFail    QuestStatus = "fail"
)

// VictoryType describes how the winning side achieved victory.
type VictoryType string

const (
	VictoryAssassination VictoryType = "assassination"
	VictoryQuest         VictoryType = "quest"
)

// roleAlignments is the fixed role-to-faction table.
var roleAlignments = map[Role]Alignment{
	RoleAssassin:      AlignmentEvil,
	RoleMorgana:       AlignmentEvil,
	RoleMinion:        AlignmentEvil,
	RoleMordred:       AlignmentEvil,
	RoleOberon:        AlignmentEvil,
	RoleMerlin:        AlignmentGood,
	RolePercival:      AlignmentGood,
	RoleReverseOberon: AlignmentGood,
	RoleServant:       AlignmentGood,
}

// Alignment returns the faction the role belongs to. Unknown roles fail
// with a DecodeError rather than defaulting to either side.
func (r Role) Alignment() (Alignment, error) {
	a, ok := roleAlignments[r]
	if !ok {
		return "", &DecodeError{Detail: "unknown role " + string(r)}
	}
	return a, nil
}

// Quest is one mission attempt: its outcome, the number of sabotage votes,
// and the participating players. Participants reference names in the owning
// game's player map.
type Quest struct {
	Status       QuestStatus
	Fails        int
	Participants []string
}

// EndResult is the declared winner of a game plus how they won.
type EndResult struct {
	Winner Alignment
	Type   VictoryType
}

// Game is a completed game: who played which role, the quests in play
// order, and the end result. Games are constructed whole via NewGame and
// never mutated afterwards.
type Game struct {
	Players map[string]Role
	Quests  []Quest
	Result  EndResult
}

// NewGame builds a validated Game. It enforces the construction invariants:
// player names are non-empty, every role and enum value is known, fail
// counts are non-negative, and every quest participant is drawn from the
// player map. Violations are reported as DecodeError.
func NewGame(players map[string]Role, quests []Quest, result EndResult) (*Game, error) {
	g := &Game{
		Players: players,
		Quests:  quests,
		Result:  result,
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) validate() error {
	for name, role := range g.Players {
		if name == "" {
			return &DecodeError{Detail: "empty player name"}
		}
		if _, err := role.Alignment(); err != nil {
			return err
		}
	}
	for i, q := range g.Quests {
		if q.Status != QuestSuccess && q.Status != QuestFail {
			return &DecodeError{Detail: fmt.Sprintf("quest %d: unknown status %q", i+1, q.Status)}
		}
		if q.Fails < 0 {
			return &DecodeError{Detail: fmt.Sprintf("quest %d: negative fail count %d", i+1, q.Fails)}
		}
		for _, p := range q.Participants {
			if _, ok := g.Players[p]; !ok {
				return &DecodeError{Detail: fmt.Sprintf("quest %d: participant %q is not in the player set", i+1, p)}
			}
		}
	}
	if _, err := ParseAlignment(string(g.Result.Winner)); err != nil {
		return err
	}
	if _, err := ParseVictoryType(string(g.Result.Type)); err != nil {
		return err
	}
	return nil
}
