package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// Outcome classifies a position for the side to move.
type Outcome int

const (
	Normal Outcome = iota
	Checkmate
	Stalemate
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Normal"
	}
}

// Terminal reports whether the game is over.
func (o Outcome) Terminal() bool {
	return o != Normal
}

// Classify plays every pseudo-legal move of the side to move on a copy of
// pos and regenerates the replies. If no move leaves the mover's king
// unattacked the position is Checkmate when the king is attacked now and
// Stalemate otherwise. A move the applier refuses never counts as an escape.
func Classify(pos *chess.Position, edges *EdgeTable) Outcome {
	mover := pos.ToMove
	friendly, moves := GenerateMoves(pos, mover, edges)
	_, replies := GenerateMoves(pos, mover.Opposite(), edges)
	inCheck := IsInCheck(friendly, replies)

	if hasEscape(pos, moves, edges) {
		return Normal
	}
	if inCheck {
		return Checkmate
	}
	return Stalemate
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	return Classify(pos, Edges()) == Checkmate
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	return Classify(pos, Edges()) == Stalemate
}
