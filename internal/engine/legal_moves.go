package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// HasLegalMoves returns true if the side to move has at least one move that
// does not leave its own king attacked.
func HasLegalMoves(pos *chess.Position, edges *EdgeTable) bool {
	_, moves := GenerateMoves(pos, pos.ToMove, edges)
	return hasEscape(pos, moves, edges)
}

// hasEscape reports whether any of moves leaves the mover's king safe.
func hasEscape(pos *chess.Position, moves []chess.Move, edges *EdgeTable) bool {
	for _, m := range moves {
		if LeavesKingSafe(pos, moves, m, edges) {
			return true
		}
	}
	return false
}

// LeavesKingSafe makes m on a copy of pos and reports whether the mover's
// king is not attacked afterwards. It is false when the move cannot be applied.
func LeavesKingSafe(pos *chess.Position, moves []chess.Move, m chess.Move, edges *EdgeTable) bool {
	mover := pos.Board.At(m.Start).Colour
	next, err := Apply(pos, moves, m.Start, m.Target)
	if err != nil {
		return false
	}
	return !SideInCheck(&next, mover, edges)
}
