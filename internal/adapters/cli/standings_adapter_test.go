package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tanaythan/avalon-tracker/internal/core/game"
	"github.com/tanaythan/avalon-tracker/internal/core/standings"
)

func TestStandingsAdapterShow(t *testing.T) {
	var buf bytes.Buffer
	service := &mockGameService{
		standingsFn: func(ctx context.Context) (standings.Standings, error) {
			return standings.Standings{
				"alice": {Wins: 2, Losses: 0},
				"bob":   {Wins: 1, Losses: 1},
			}, nil
		},
	}
	adapter := NewStandingsAdapter(service, &buf)

	if err := adapter.Show(context.Background()); err != nil {
		t.Fatalf("Show: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Standings") {
		t.Errorf("output missing title:\n%s", out)
	}
	if !strings.Contains(out, "1.00") || !strings.Contains(out, "0.50") {
		t.Errorf("output missing two-decimal percentages:\n%s", out)
	}
	if !strings.HasSuffix(out, "---------\n") {
		t.Errorf("output missing trailing separator:\n%s", out)
	}

	// alice (2 wins) ranks above bob (1 win).
	if strings.Index(out, "alice") > strings.Index(out, "bob") {
		t.Errorf("alice should rank above bob:\n%s", out)
	}
}

func TestStandingsAdapterShowDeterministicTies(t *testing.T) {
	service := &mockGameService{
		standingsFn: func(ctx context.Context) (standings.Standings, error) {
			return standings.Standings{
				"zoe": {Wins: 1, Losses: 1},
				"amy": {Wins: 1, Losses: 1},
			}, nil
		},
	}

	var first bytes.Buffer
	if err := NewStandingsAdapter(service, &first).Show(context.Background()); err != nil {
		t.Fatalf("Show: %v", err)
	}
	var second bytes.Buffer
	if err := NewStandingsAdapter(service, &second).Show(context.Background()); err != nil {
		t.Fatalf("Show: %v", err)
	}

	if first.String() != second.String() {
		t.Error("equal standings rendered differently across calls")
	}
	if strings.Index(first.String(), "amy") > strings.Index(first.String(), "zoe") {
		t.Errorf("tied players not in ascending name order:\n%s", first.String())
	}
}

func TestStandingsAdapterShowByAlignment(t *testing.T) {
	var buf bytes.Buffer
	service := &mockGameService{
		standingsByAlignmentFn: func(ctx context.Context) (map[game.Alignment]standings.Standings, error) {
			return map[game.Alignment]standings.Standings{
				game.AlignmentGood: {"alice": {Wins: 1, Losses: 0}},
				game.AlignmentEvil: {"bob": {Wins: 0, Losses: 1}},
			}, nil
		},
	}
	adapter := NewStandingsAdapter(service, &buf)

	if err := adapter.ShowByAlignment(context.Background()); err != nil {
		t.Fatalf("ShowByAlignment: %v", err)
	}

	out := buf.String()
	goodIdx := strings.Index(out, "Good standings")
	evilIdx := strings.Index(out, "Evil standings")
	if goodIdx < 0 || evilIdx < 0 {
		t.Fatalf("output missing per-alignment titles:\n%s", out)
	}
	if goodIdx > evilIdx {
		t.Errorf("good table should render before evil:\n%s", out)
	}
	if !strings.Contains(out, "alice") || !strings.Contains(out, "bob") {
		t.Errorf("output missing players:\n%s", out)
	}
}

func TestStandingsAdapterServiceError(t *testing.T) {
	var buf bytes.Buffer
	wantErr := errors.New("db closed")
	service := &mockGameService{
		standingsFn: func(ctx context.Context) (standings.Standings, error) {
			return nil, wantErr
		},
	}
	adapter := NewStandingsAdapter(service, &buf)

	if err := adapter.Show(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("Show error = %v, want %v", err, wantErr)
	}
	if buf.Len() != 0 {
		t.Errorf("adapter wrote output on failure: %q", buf.String())
	}
}
