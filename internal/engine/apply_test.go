package engine

import (
	"testing"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/errors"
	"github.com/lgbarn/chessmoves-go/internal/notation"
	"github.com/lgbarn/chessmoves-go/internal/testutil"
)

var applyFENs = []string{
	notation.InitialFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
	"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1",
	"4k2r/8/8/8/8/8/8/4K2R w Kk - 3 20",
}

func TestApply_PlaysMove(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		move  string
		after string
	}{
		{
			name:  "double push sets en passant",
			fen:   notation.InitialFEN,
			move:  "e2e4",
			after: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:  "black reply advances move number",
			fen:   "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			move:  "e7e5",
			after: "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		},
		{
			name:  "knight move bumps halfmove clock",
			fen:   notation.InitialFEN,
			move:  "g1f3",
			after: "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		},
		{
			name:  "en passant removes the passed pawn",
			fen:   "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
			move:  "e5d6",
			after: "4k3/8/3P4/8/8/8/8/4K3 b - - 0 2",
		},
		{
			name:  "kingside castle moves the rook",
			fen:   "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			move:  "e1g1",
			after: "4k3/8/8/8/8/8/8/R4RK1 b - - 1 1",
		},
		{
			name:  "queenside castle moves the rook",
			fen:   "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			move:  "e1c1",
			after: "4k3/8/8/8/8/8/8/2KR3R b - - 1 1",
		},
		{
			name:  "black castles",
			fen:   "r3k2r/8/8/8/8/8/8/4K3 b kq - 5 9",
			move:  "e8g8",
			after: "r4rk1/8/8/8/8/8/8/4K3 w - - 6 10",
		},
		{
			name:  "rook move clears one right",
			fen:   "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			move:  "h1h2",
			after: "4k3/8/8/8/8/8/7R/R3K3 b Q - 1 1",
		},
		{
			name:  "rook capture clears both corners",
			fen:   "4k2r/8/8/8/8/8/8/4K2R w Kk - 3 20",
			move:  "h1h8",
			after: "4k2R/8/8/8/8/8/8/4K3 b - - 0 20",
		},
		{
			name:  "promotion leaves the pawn in place",
			fen:   "4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			move:  "a7a8",
			after: "P3k3/8/8/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name:  "capturing the king is applied like any capture",
			fen:   "4k3/8/8/8/8/8/4Q3/4K3 w - - 0 1",
			move:  "e2e8",
			after: "4Q3/8/8/8/8/8/8/4K3 b - - 0 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustPosition(t, tt.fen)
			_, moves := GenerateSideToMove(&pos)
			start, target, err := notation.ParseMove(tt.move)
			testutil.AssertNoError(t, err)

			next, err := Apply(&pos, moves, start, target)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, notation.EncodeFEN(&next), tt.after)
			testutil.AssertEqual(t, notation.EncodeFEN(&pos), tt.fen, "input position modified")
		})
	}
}

func TestApply_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		moves   []chess.Move // nil means generate for the side to move
		move    string
		wantErr error
	}{
		{
			name:    "move not generated",
			fen:     notation.InitialFEN,
			move:    "e2e5",
			wantErr: errors.ErrIllegalMove,
		},
		{
			name:    "pawn push onto an occupied square",
			fen:     "4k3/8/8/8/8/4p3/4P3/4K3 w - - 0 1",
			moves:   []chess.Move{moveOf("e2e3", chess.NoCapture)},
			move:    "e2e3",
			wantErr: errors.ErrIllegalMove,
		},
		{
			name:    "piercing moves are not playable",
			fen:     "3k4/8/8/3b4/8/8/8/3RK3 w - - 0 1",
			moves:   []chess.Move{moveOf("d1d8", chess.Piercing)},
			move:    "d1d8",
			wantErr: errors.ErrIllegalMove,
		},
		{
			name:    "empty start square",
			fen:     "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			moves:   []chess.Move{moveOf("d4d5", chess.Normal)},
			move:    "d4d5",
			wantErr: errors.ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustPosition(t, tt.fen)
			moves := tt.moves
			if moves == nil {
				_, moves = GenerateSideToMove(&pos)
			}
			start, target, err := notation.ParseMove(tt.move)
			testutil.AssertNoError(t, err)

			before := pos
			_, err = Apply(&pos, moves, start, target)
			testutil.AssertErrorIs(t, err, tt.wantErr)
			testutil.AssertEqual(t, pos, before, "position changed by a rejected move")

			var moveErr *errors.MoveError
			if !errors.As(err, &moveErr) {
				t.Fatalf("error %v is not a *MoveError", err)
			}
			testutil.AssertEqual(t, moveErr.Start+moveErr.Target, tt.move)
		})
	}
}

// Putting a piece on the target of any generated pawn push turns it into a
// move the applier must refuse.
func TestApply_NoCaptureOntoOccupiedSquare(t *testing.T) {
	for _, fen := range applyFENs {
		pos := testutil.MustPosition(t, fen)
		_, moves := GenerateSideToMove(&pos)
		for _, m := range moves {
			if m.Type != chess.NoCapture {
				continue
			}
			blocked := pos
			blocked.Board[m.Target] = chess.MakePiece(pos.ToMove.Opposite(), chess.Knight)
			_, err := Apply(&blocked, moves, m.Start, m.Target)
			if !errors.Is(err, errors.ErrIllegalMove) {
				t.Errorf("%s: %v onto occupied square: err = %v, want ErrIllegalMove", fen, m, err)
			}
		}
	}
}

// Applying then unmaking any generated move gives back the exact position.
func TestMakeUnmake_RoundTrip(t *testing.T) {
	for _, fen := range applyFENs {
		t.Run(fen, func(t *testing.T) {
			pos := testutil.MustPosition(t, fen)
			for _, colour := range []chess.Colour{chess.White, chess.Black} {
				_, moves := GenerateMoves(&pos, colour, Edges())
				for _, m := range moves {
					next, undo, err := MakeMove(&pos, moves, m.Start, m.Target)
					if err != nil {
						t.Fatalf("MakeMove(%v): %v", m, err)
					}
					back, err := Unmake(&next, undo)
					if err != nil {
						t.Fatalf("Unmake(%v): %v", m, err)
					}
					if back != pos {
						t.Fatalf("%v: unmake gave %s, want %s", m, notation.EncodeFEN(&back), fen)
					}
				}
			}
		})
	}
}

func TestUnmake_OutOfBounds(t *testing.T) {
	pos := testutil.MustPosition(t, notation.InitialFEN)

	tests := []struct {
		name string
		undo Undo
	}{
		{"start off the board", Undo{Move: chess.Move{Start: 64, Target: 3}, CaptureSquare: 3}},
		{"negative target", Undo{Move: chess.Move{Start: 12, Target: -9}, CaptureSquare: 20}},
		{"capture square off the board", Undo{Move: chess.Move{Start: 12, Target: 20}, CaptureSquare: chess.NoSquare}},
		{"castle without rook squares", Undo{
			Move:          chess.Move{Start: 4, Target: 6, Type: chess.Castle},
			CaptureSquare: 6,
			RookFrom:      chess.NoSquare,
			RookTo:        chess.NoSquare,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unmake(&pos, tt.undo)
			testutil.AssertErrorIs(t, err, errors.ErrOutOfBounds)
			testutil.AssertEqual(t, got, pos)
		})
	}
}

func TestMakeMove_UndoRecord(t *testing.T) {
	pos := testutil.MustPosition(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2")
	_, moves := GenerateSideToMove(&pos)

	_, undo, err := MakeMove(&pos, moves, testutil.MustSquare(t, "e5"), testutil.MustSquare(t, "d6"))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, undo.Move.Type, chess.EnPassant)
	testutil.AssertEqual(t, undo.Moved, chess.W(chess.Pawn))
	testutil.AssertEqual(t, undo.Captured, chess.B(chess.Pawn))
	testutil.AssertEqual(t, undo.CaptureSquare, testutil.MustSquare(t, "d5"))
	testutil.AssertEqual(t, undo.EnPassant, testutil.MustSquare(t, "d6"))
	testutil.AssertEqual(t, undo.RookFrom, chess.NoSquare)
}
