package engine

import (
	"testing"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/notation"
	"github.com/lgbarn/chessmoves-go/internal/testutil"
)

func TestFindPinnedPieces(t *testing.T) {
	sq := func(name string) chess.Square {
		s, err := notation.ParseSquare(name)
		if err != nil {
			panic(err)
		}
		return s
	}

	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   []Pin
	}{
		{
			name:   "rook pins bishop to king",
			fen:    "3k4/8/8/3b4/8/8/8/3RK3 w - - 0 1",
			colour: chess.White,
			want: []Pin{{
				Direction: North,
				Kind:      chess.Bishop,
				Colour:    chess.Black,
				Square:    sq("d5"),
				Line:      chess.Move{Start: sq("d1"), Target: sq("d8"), Type: chess.Piercing},
			}},
		},
		{
			name:   "second piece on the line cancels the pin",
			fen:    "3k4/3n4/8/3b4/8/8/8/3RK3 w - - 0 1",
			colour: chess.White,
			want:   nil,
		},
		{
			name:   "friendly blocker hides the line",
			fen:    "3k4/8/8/3b4/8/8/3P4/3RK3 w - - 0 1",
			colour: chess.White,
			want:   nil,
		},
		{
			name:   "queen pins knight on a diagonal",
			fen:    "3k4/2n5/8/Q7/8/8/8/4K3 w - - 0 1",
			colour: chess.White,
			want: []Pin{{
				Direction: NorthEast,
				Kind:      chess.Knight,
				Colour:    chess.Black,
				Square:    sq("c7"),
				Line:      chess.Move{Start: sq("a5"), Target: sq("d8"), Type: chess.Piercing},
			}},
		},
		{
			name:   "bishop does not pin along a file",
			fen:    "3k4/8/8/3n4/8/8/8/3BK3 w - - 0 1",
			colour: chess.White,
			want:   nil,
		},
		{
			name:   "black rook pins white pawn",
			fen:    "4r1k1/8/8/8/8/8/4P3/4K3 b - - 0 1",
			colour: chess.Black,
			want: []Pin{{
				Direction: South,
				Kind:      chess.Pawn,
				Colour:    chess.White,
				Square:    sq("e2"),
				Line:      chess.Move{Start: sq("e8"), Target: sq("e1"), Type: chess.Piercing},
			}},
		},
		{
			name:   "direct check is not a pin",
			fen:    "3k4/8/8/8/8/8/8/3RK3 w - - 0 1",
			colour: chess.White,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustPosition(t, tt.fen)
			_, moves := GenerateMoves(&pos, tt.colour, Edges())
			got := FindPinnedPieces(&pos.Board, moves, Edges())
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestFindPinnedPieces_LineIsNotPlayable(t *testing.T) {
	pos := testutil.MustPosition(t, "3k4/8/8/3b4/8/8/8/3RK3 w - - 0 1")
	_, moves := GenerateMoves(&pos, chess.White, Edges())
	pins := FindPinnedPieces(&pos.Board, moves, Edges())
	if len(pins) != 1 {
		t.Fatalf("got %d pins, want 1", len(pins))
	}

	line := pins[0].Line
	if line.Playable() {
		t.Error("piercing line reported as playable")
	}
	for _, m := range moves {
		if m.Type == chess.Piercing {
			t.Errorf("generator emitted piercing move %v", m)
		}
	}
}
