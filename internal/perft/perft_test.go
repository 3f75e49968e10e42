package perft

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/hashing"
)

func TestCountStartPosition(t *testing.T) {
	tests := []struct {
		depth int
		want  uint64
	}{
		{0, 1},
		{1, 20},
		{2, 400},
		{3, 8902},
	}

	for _, tt := range tests {
		got, err := Count(engine.NewMatch(), tt.depth)
		if err != nil {
			t.Fatalf("Count(depth %d) error: %v", tt.depth, err)
		}
		if got != tt.want {
			t.Errorf("Count(depth %d) = %d, want %d", tt.depth, got, tt.want)
		}
	}
}

func TestCountLeavesMatchUnchanged(t *testing.T) {
	m := engine.NewMatch()
	before := m.Pieces()
	if _, err := Count(m, 2); err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if diff := cmp.Diff(before, m.Pieces()); diff != "" {
		t.Errorf("board changed during Count (-before +after):\n%s", diff)
	}
	if m.Turn() != 1 {
		t.Errorf("Turn() = %d, want 1", m.Turn())
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	m := engine.NewMatch()
	seq, err := Count(m, 3)
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}

	for _, workers := range []int{1, 4, 0} {
		res, err := Parallel(context.Background(), m, 3, workers, nil)
		if err != nil {
			t.Fatalf("Parallel(workers %d) error: %v", workers, err)
		}
		if res.Nodes != seq {
			t.Errorf("Parallel(workers %d).Nodes = %d, want %d", workers, res.Nodes, seq)
		}
		if len(res.Divide) != 20 {
			t.Errorf("Parallel(workers %d) divide has %d root moves, want 20", workers, len(res.Divide))
		}
	}
}

func TestParallelDivide(t *testing.T) {
	res, err := Parallel(context.Background(), engine.NewMatch(), 2, 2, nil)
	if err != nil {
		t.Fatalf("Parallel() error: %v", err)
	}
	for _, mv := range res.Moves() {
		if res.Divide[mv] != 20 {
			t.Errorf("Divide[%s] = %d, want 20", mv, res.Divide[mv])
		}
	}
	moves := res.Moves()
	if len(moves) == 0 || moves[0] != "a2a3" {
		t.Errorf("Moves()[0] = %v, want a2a3", moves)
	}
}

func TestParallelDepthZero(t *testing.T) {
	res, err := Parallel(context.Background(), engine.NewMatch(), 0, 4, nil)
	if err != nil {
		t.Fatalf("Parallel() error: %v", err)
	}
	if res.Nodes != 1 {
		t.Errorf("Nodes = %d, want 1", res.Nodes)
	}
}

func TestCountAfterCheckmate(t *testing.T) {
	m := engine.NewMatch()
	for _, mv := range [][2]string{{"f2", "f3"}, {"e7", "e5"}, {"g2", "g4"}, {"d8", "h4"}} {
		if _, err := m.PerformMove(chess.MustParseSquare(mv[0]), chess.MustParseSquare(mv[1])); err != nil {
			t.Fatalf("PerformMove(%s%s) error: %v", mv[0], mv[1], err)
		}
	}
	got, err := Count(m, 1)
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if got != 0 {
		t.Errorf("Count(depth 1) after mate = %d, want 0", got)
	}
}

func TestCountCached(t *testing.T) {
	table := hashing.NewTable(0)
	got, err := CountCached(engine.NewMatch(), 4, table)
	if err != nil {
		t.Fatalf("CountCached() error: %v", err)
	}
	if got != 197281 {
		t.Errorf("CountCached(depth 4) = %d, want 197281", got)
	}
	if hits, _ := table.Stats(); hits == 0 {
		t.Error("expected transpositions to hit the table at depth 4")
	}

	// A warm table gives the same answer.
	again, err := CountCached(engine.NewMatch(), 4, table)
	if err != nil {
		t.Fatalf("CountCached() error: %v", err)
	}
	if again != got {
		t.Errorf("CountCached() with warm table = %d, want %d", again, got)
	}
}

func TestParallelWithTable(t *testing.T) {
	table := hashing.NewTable(1000)
	res, err := Parallel(context.Background(), engine.NewMatch(), 3, 4, table)
	if err != nil {
		t.Fatalf("Parallel() error: %v", err)
	}
	if res.Nodes != 8902 {
		t.Errorf("Parallel(depth 3).Nodes = %d, want 8902", res.Nodes)
	}
	if table.Len() == 0 || table.Len() > 1000 {
		t.Errorf("table.Len() = %d, want 1..1000", table.Len())
	}
}

func TestParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Parallel(ctx, engine.NewMatch(), 3, 2, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Parallel(cancelled) error = %v, want context.Canceled", err)
	}
}
