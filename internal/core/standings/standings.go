// Package standings folds recorded games into per-player win/loss records
// and orders them for display. All functions are pure: each call builds a
// fresh accumulator, so computing standings is reentrant and idempotent.
package standings

import (
	"math"
	"sort"

	"github.com/tanaythan/avalon-tracker/internal/core/game"
)

// Record is a player's cumulative win/loss count. Records are derived values
// recomputed from the game list on every request and never persisted.
type Record struct {
	Wins   int
	Losses int
}

// WinPercentage returns wins over games played, or NaN for an empty record.
func (r Record) WinPercentage() float64 {
	total := r.Wins + r.Losses
	if total == 0 {
		return math.NaN()
	}
	return float64(r.Wins) / float64(total)
}

// Standings maps player names to their cumulative records.
type Standings map[string]Record

// Entry is one ranked row of a standings table.
type Entry struct {
	Name   string
	Record Record
}

// Compute folds the given games into per-player records. A player gains a
// win for each game they appear in on the winning side and a loss
// otherwise; players who never appear have no entry.
func Compute(games []*game.Game) Standings {
	s := make(Standings)
	for _, g := range games {
		winners := toSet(g.Winners())
		for _, name := range g.AllPlayers() {
			record := s[name]
			if winners[name] {
				record.Wins++
			} else {
				record.Losses++
			}
			s[name] = record
		}
	}
	return s
}

// ComputeByAlignment folds the given games into one standings table per
// alignment. A player's record under an alignment covers only the games in
// which they held that alignment, so a player who switches sides across
// games accumulates separate entries in each bucket.
func ComputeByAlignment(games []*game.Game) map[game.Alignment]Standings {
	byAlignment := map[game.Alignment]Standings{
		game.AlignmentGood: make(Standings),
		game.AlignmentEvil: make(Standings),
	}
	for _, g := range games {
		winners := toSet(g.Winners())
		for alignment, s := range byAlignment {
			for _, name := range g.PlayersWithAlignment(alignment) {
				record := s[name]
				if winners[name] {
					record.Wins++
				} else {
					record.Losses++
				}
				s[name] = record
			}
		}
	}
	return byAlignment
}

// Ranked returns the standings as a sorted slice: descending wins, ties
// broken by descending win percentage, remaining ties by ascending name.
// The order is total, so equal inputs always render identically.
func (s Standings) Ranked() []Entry {
	entries := make([]Entry, 0, len(s))
	for name, record := range s {
		entries = append(entries, Entry{Name: name, Record: record})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Record.Wins != b.Record.Wins {
			return a.Record.Wins > b.Record.Wins
		}
		ap, bp := a.Record.WinPercentage(), b.Record.WinPercentage()
		if ap != bp && !math.IsNaN(ap) && !math.IsNaN(bp) {
			return ap > bp
		}
		return a.Name < b.Name
	})
	return entries
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}
