package standings

import (
	"math"
	"reflect"
	"testing"

	"github.com/tanaythan/avalon-tracker/internal/core/game"
)

func mustGame(t *testing.T, players map[string]game.Role, winner game.Alignment) *game.Game {
	t.Helper()
	g, err := game.NewGame(players, nil, game.EndResult{Winner: winner, Type: game.VictoryQuest})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// twoGameSeries reproduces the canonical scenario: the same five players,
// evil wins the first game, good wins the second.
func twoGameSeries(t *testing.T) []*game.Game {
	t.Helper()
	players := map[string]game.Role{
		"player1": game.RoleMerlin,
		"player2": game.RoleMorgana,
		"player3": game.RolePercival,
		"player4": game.RoleServant,
		"player5": game.RoleAssassin,
	}
	return []*game.Game{
		mustGame(t, players, game.AlignmentEvil),
		mustGame(t, players, game.AlignmentGood),
	}
}

func TestComputeSplitSeries(t *testing.T) {
	s := Compute(twoGameSeries(t))

	for _, name := range []string{"player1", "player2", "player3", "player4", "player5"} {
		record, ok := s[name]
		if !ok {
			t.Fatalf("no record for %s", name)
		}
		if record.Wins != 1 || record.Losses != 1 {
			t.Errorf("%s record = %+v, want 1 win 1 loss", name, record)
		}
	}
}

func TestComputeSweep(t *testing.T) {
	players := map[string]game.Role{
		"player1": game.RoleMerlin,
		"player2": game.RoleMorgana,
	}
	games := []*game.Game{
		mustGame(t, players, game.AlignmentEvil),
		mustGame(t, players, game.AlignmentEvil),
	}

	s := Compute(games)
	if got := s["player2"]; got != (Record{Wins: 2, Losses: 0}) {
		t.Errorf("player2 record = %+v, want 2 wins 0 losses", got)
	}
	if got := s["player1"]; got != (Record{Wins: 0, Losses: 2}) {
		t.Errorf("player1 record = %+v, want 0 wins 2 losses", got)
	}
}

func TestComputeSumCheck(t *testing.T) {
	games := twoGameSeries(t)
	games = append(games, mustGame(t, map[string]game.Role{
		"player1": game.RoleServant,
		"player6": game.RoleMinion,
	}, game.AlignmentGood))

	appearances := make(map[string]int)
	for _, g := range games {
		for _, name := range g.AllPlayers() {
			appearances[name]++
		}
	}

	s := Compute(games)
	if len(s) != len(appearances) {
		t.Fatalf("standings has %d players, want %d", len(s), len(appearances))
	}
	for name, record := range s {
		if record.Wins+record.Losses != appearances[name] {
			t.Errorf("%s: wins+losses = %d, appeared in %d games", name, record.Wins+record.Losses, appearances[name])
		}
	}
}

func TestComputeEmptyInput(t *testing.T) {
	if s := Compute(nil); len(s) != 0 {
		t.Errorf("Compute(nil) = %v, want empty", s)
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	games := twoGameSeries(t)

	first := Compute(games)
	second := Compute(games)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Compute differs: %v vs %v", first, second)
	}
}

func TestComputeByAlignment(t *testing.T) {
	games := twoGameSeries(t)
	byAlignment := ComputeByAlignment(games)

	good := byAlignment[game.AlignmentGood]
	evil := byAlignment[game.AlignmentEvil]

	// player1 held merlin in both games: one good win, one good loss.
	if got := good["player1"]; got != (Record{Wins: 1, Losses: 1}) {
		t.Errorf("good record for player1 = %+v, want 1-1", got)
	}
	if _, ok := evil["player1"]; ok {
		t.Error("player1 has an evil record but never played evil")
	}
	if got := evil["player2"]; got != (Record{Wins: 1, Losses: 1}) {
		t.Errorf("evil record for player2 = %+v, want 1-1", got)
	}
}

func TestComputeByAlignmentSideSwitch(t *testing.T) {
	first := mustGame(t, map[string]game.Role{
		"alice": game.RoleServant,
		"bob":   game.RoleMinion,
	}, game.AlignmentGood)
	second := mustGame(t, map[string]game.Role{
		"alice": game.RoleAssassin,
		"bob":   game.RoleMerlin,
	}, game.AlignmentEvil)

	byAlignment := ComputeByAlignment([]*game.Game{first, second})

	if got := byAlignment[game.AlignmentGood]["alice"]; got != (Record{Wins: 1, Losses: 0}) {
		t.Errorf("alice good record = %+v, want 1-0", got)
	}
	if got := byAlignment[game.AlignmentEvil]["alice"]; got != (Record{Wins: 1, Losses: 0}) {
		t.Errorf("alice evil record = %+v, want 1-0", got)
	}
}

func TestWinPercentage(t *testing.T) {
	if got := (Record{Wins: 1, Losses: 1}).WinPercentage(); got != 0.5 {
		t.Errorf("WinPercentage(1-1) = %v, want 0.5", got)
	}
	if got := (Record{Wins: 3, Losses: 0}).WinPercentage(); got != 1.0 {
		t.Errorf("WinPercentage(3-0) = %v, want 1.0", got)
	}
	if got := (Record{}).WinPercentage(); !math.IsNaN(got) {
		t.Errorf("WinPercentage(0-0) = %v, want NaN", got)
	}
}

func TestRankedOrder(t *testing.T) {
	s := Standings{
		"carol": {Wins: 2, Losses: 0},
		"alice": {Wins: 2, Losses: 2},
		"bob":   {Wins: 1, Losses: 0},
		"dave":  {Wins: 2, Losses: 2},
	}

	got := s.Ranked()
	want := []string{"carol", "alice", "dave", "bob"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("rank %d = %s, want %s (full order: %v)", i, got[i].Name, name, got)
		}
	}
}

func TestRankedTieBreakByName(t *testing.T) {
	// Equal wins and equal percentage: ascending name decides.
	s := Standings{
		"zoe": {Wins: 1, Losses: 1},
		"amy": {Wins: 1, Losses: 1},
	}

	got := s.Ranked()
	if got[0].Name != "amy" || got[1].Name != "zoe" {
		t.Errorf("Ranked() = [%s %s], want [amy zoe]", got[0].Name, got[1].Name)
	}
}
