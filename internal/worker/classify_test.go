package worker

import (
	"context"
	"testing"

	"github.com/lgbarn/chessmoves-go/internal/engine"
	"github.com/lgbarn/chessmoves-go/internal/errors"
	"github.com/lgbarn/chessmoves-go/internal/testutil"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		outcome   engine.Outcome
		inCheck   bool
		moveCount int
	}{
		{"starting position", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", engine.Normal, false, 20},
		{"checkmate", "6k1/b7/8/8/5p2/7p/7P/r6K w - - 0 54", engine.Checkmate, true, 0},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", engine.Stalemate, false, 0},
		{"check with escapes", "4k3/8/8/8/8/8/4Q3/4K3 b - - 0 1", engine.Normal, true, 4},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(WorkItem{FEN: tt.fen, Index: i}, engine.Edges())
			testutil.AssertNoError(t, got.Error)
			testutil.AssertEqual(t, got, ProcessResult{
				FEN:       tt.fen,
				Index:     i,
				Outcome:   tt.outcome,
				InCheck:   tt.inCheck,
				MoveCount: tt.moveCount,
			})
		})
	}
}

func TestClassify_BadFEN(t *testing.T) {
	got := Classify(WorkItem{FEN: "not a position", Index: 7}, engine.Edges())
	testutil.AssertErrorIs(t, got.Error, errors.ErrInvalidFEN)
	testutil.AssertEqual(t, got.Index, 7)
}

func TestCollectOrdered(t *testing.T) {
	fens := []string{
		"6k1/b7/8/8/5p2/7p/7P/r6K w - - 0 54",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"bad",
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
	}

	pool := NewPoolWithOptions(Classify, WithWorkers(3), WithBufferSize(len(fens)))
	pool.Start()
	for i, fen := range fens {
		testutil.AssertNoError(t, pool.Submit(context.Background(), WorkItem{FEN: fen, Index: i}))
	}
	go pool.Close()

	results := CollectOrdered(pool)
	if len(results) != len(fens) {
		t.Fatalf("got %d results, want %d", len(results), len(fens))
	}
	for i, r := range results {
		testutil.AssertEqual(t, r.Index, i)
		testutil.AssertEqual(t, r.FEN, fens[i])
	}
	testutil.AssertEqual(t, results[0].Outcome, engine.Checkmate)
	testutil.AssertEqual(t, results[1].Outcome, engine.Stalemate)
	testutil.AssertError(t, results[2].Error)
	testutil.AssertEqual(t, results[3].Outcome, engine.Normal)
}

func TestPoolRun_Classify(t *testing.T) {
	items := []WorkItem{
		{FEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", Index: 3},
		{FEN: "bad", Index: 1},
		{FEN: "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Index: 2},
	}

	pool := NewPoolWithOptions(Classify, WithWorkers(2))
	results := pool.Run(context.Background(), items)

	indexes := make([]int, 0, len(results))
	for _, r := range results {
		indexes = append(indexes, r.Index)
	}
	testutil.AssertEqual(t, indexes, []int{1, 2, 3})
	testutil.AssertEqual(t, results[2].MoveCount, 20)

	classified, rejected := pool.Stats()
	testutil.AssertEqual(t, classified, 2)
	testutil.AssertEqual(t, rejected, 1)
}
