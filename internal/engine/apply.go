package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// Undo records everything MakeMove changed so Unmake can restore it.
type Undo struct {
	Move chess.Move

	// The piece that moved and the piece it captured (NoPiece if none).
	Moved    chess.Piece
	Captured chess.Piece

	// Where the captured piece stood; differs from the target for en passant.
	CaptureSquare chess.Square

	// Rook relocation of a castle, NoSquare otherwise.
	RookFrom chess.Square
	RookTo   chess.Square

	// Side state of the position before the move.
	ToMove        chess.Colour
	Castling      chess.CastleRights
	EnPassant     chess.Square
	HalfmoveClock uint
	MoveNumber    uint
}

// Apply plays the move (start, target) found in moves and returns the new
// position. pos is never modified.
func Apply(pos *chess.Position, moves []chess.Move, start, target chess.Square) (chess.Position, error) {
	next, _, err := MakeMove(pos, moves, start, target)
	return next, err
}

// MakeMove is Apply that also returns the record needed by Unmake.
func MakeMove(pos *chess.Position, moves []chess.Move, start, target chess.Square) (chess.Position, Undo, error) {
	i := slices.IndexFunc(moves, func(m chess.Move) bool {
		return m.Start == start && m.Target == target && m.Playable()
	})
	if i < 0 {
		return *pos, Undo{}, moveError(errors.ErrIllegalMove, start, target, "not among the generated moves")
	}
	move := moves[i]

	moved := pos.Board.At(start)
	if moved.IsEmpty() {
		return *pos, Undo{}, moveError(errors.ErrInvalidState, start, target, "no piece on the start square")
	}
	if move.Type == chess.NoCapture && !pos.Board.At(target).IsEmpty() {
		return *pos, Undo{}, moveError(errors.ErrIllegalMove, start, target, "a pawn push cannot capture")
	}

	undo := Undo{
		Move:          move,
		Moved:         moved,
		CaptureSquare: target,
		RookFrom:      chess.NoSquare,
		RookTo:        chess.NoSquare,
		ToMove:        pos.ToMove,
		Castling:      pos.Castling,
		EnPassant:     pos.EnPassant,
		HalfmoveClock: pos.HalfmoveClock,
		MoveNumber:    pos.MoveNumber,
	}
	if move.Type == chess.EnPassant {
		undo.CaptureSquare = chess.MakeSquare(target.File(), start.Rank())
	}
	undo.Captured = pos.Board.At(undo.CaptureSquare)

	next := *pos
	next.Board[undo.CaptureSquare] = chess.NoPiece
	next.Board[start] = chess.NoPiece
	next.Board[target] = moved

	if move.Type == chess.Castle {
		rank := start.Rank()
		if target > start {
			undo.RookFrom, undo.RookTo = chess.MakeSquare(chess.BoardSize-1, rank), target-1
		} else {
			undo.RookFrom, undo.RookTo = chess.MakeSquare(0, rank), target+1
		}
		next.Board[undo.RookTo] = next.Board[undo.RookFrom]
		next.Board[undo.RookFrom] = chess.NoPiece
	}

	updateCastlingRights(&next.Castling, moved, start, undo.Captured, undo.CaptureSquare)

	next.EnPassant = chess.NoSquare
	if moved.Kind == chess.Pawn && abs(int(target)-int(start)) == 2*chess.BoardSize {
		next.EnPassant = (start + target) / 2
	}

	if moved.Kind == chess.Pawn || !undo.Captured.IsEmpty() {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}
	if moved.Colour == chess.Black {
		next.MoveNumber++
	}
	next.ToMove = moved.Colour.Opposite()

	return next, undo, nil
}

// Unmake returns the position before the move recorded in undo.
// pos is never modified.
func Unmake(pos *chess.Position, undo Undo) (chess.Position, error) {
	m := undo.Move
	if !m.Start.Valid() || !m.Target.Valid() || !undo.CaptureSquare.Valid() {
		return *pos, moveError(errors.ErrOutOfBounds, m.Start, m.Target, "cannot unmake")
	}
	if m.Type == chess.Castle && (!undo.RookFrom.Valid() || !undo.RookTo.Valid()) {
		return *pos, moveError(errors.ErrOutOfBounds, m.Start, m.Target, "cannot unmake castle")
	}

	prev := *pos
	if m.Type == chess.Castle {
		prev.Board[undo.RookFrom] = prev.Board[undo.RookTo]
		prev.Board[undo.RookTo] = chess.NoPiece
	}
	prev.Board[m.Target] = chess.NoPiece
	prev.Board[undo.CaptureSquare] = undo.Captured
	prev.Board[m.Start] = undo.Moved

	prev.ToMove = undo.ToMove
	prev.Castling = undo.Castling
	prev.EnPassant = undo.EnPassant
	prev.HalfmoveClock = undo.HalfmoveClock
	prev.MoveNumber = undo.MoveNumber

	return prev, nil
}

// updateCastlingRights removes rights when a king moves, or a rook leaves or
// is captured on its corner.
func updateCastlingRights(rights *chess.CastleRights, moved chess.Piece, from chess.Square, captured chess.Piece, at chess.Square) {
	switch moved.Kind {
	case chess.King:
		rights.Clear(moved.Colour)
	case chess.Rook:
		rights.ClearCorner(from)
	}
	if captured.Kind == chess.Rook {
		rights.ClearCorner(at)
	}
}

func moveError(err error, start, target chess.Square, reason string) error {
	return &errors.MoveError{
		Err:    err,
		Start:  start.String(),
		Target: target.String(),
		Reason: reason,
	}
}
