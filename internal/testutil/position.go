package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/notation"
)

// MustPosition decodes a FEN string and calls t.Fatal if it is invalid.
func MustPosition(tb testing.TB, fen string) chess.Position {
	tb.Helper()
	pos, err := notation.DecodeFEN(fen)
	if err != nil {
		tb.Fatalf("DecodeFEN(%q): %v", fen, err)
	}
	return pos
}

// MustSquare parses an algebraic square and calls t.Fatal if it is invalid.
func MustSquare(tb testing.TB, name string) chess.Square {
	tb.Helper()
	sq, err := notation.ParseSquare(name)
	if err != nil {
		tb.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return sq
}

// Targets returns the sorted algebraic names of the targets of the moves
// starting on from.
func Targets(moves []chess.Move, from chess.Square) []string {
	var out []string
	for _, m := range moves {
		if m.Start == from {
			out = append(out, m.Target.String())
		}
	}
	sort.Strings(out)
	return out
}

// MoveStrings renders moves in long algebraic notation, keeping their order.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out
}
