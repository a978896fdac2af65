package game

import "sort"

// Winners returns the names of every player whose role's alignment matches
// the declared winner. The result is sorted for deterministic iteration.
func (g *Game) Winners() []string {
	return g.PlayersWithAlignment(g.Result.Winner)
}

// AllPlayers returns every player name in the game, sorted.
func (g *Game) AllPlayers() []string {
	names := make([]string, 0, len(g.Players))
	for name := range g.Players {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PlayersWithAlignment returns the names of every player on the given side,
// independent of who won. A role that fails alignment lookup matches neither
// side; validated games never contain one.
func (g *Game) PlayersWithAlignment(alignment Alignment) []string {
	var names []string
	for name, role := range g.Players {
		a, err := role.Alignment()
		if err != nil {
			continue
		}
		if a == alignment {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
