package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// kingHomeFile is the file both kings start on.
const kingHomeFile = 4

// GenerateKingMoves appends the king's steps and, when the rights and the
// back rank allow it, its castles. Castles do not consider attacked squares.
func GenerateKingMoves(origin chess.Square, board *chess.Board, rights chess.CastleRights, moves []chess.Move) []chess.Move {
	moves = appendLeaps(origin, board, kingSteps, moves)

	colour := board[origin].Colour
	if origin != chess.MakeSquare(kingHomeFile, chess.HomeRank(colour)) {
		return moves
	}

	kingside, queenside := rights.Side(colour)
	if kingside && castlePathClear(board, origin, East, colour) {
		moves = append(moves, chess.Move{Start: origin, Target: origin + 2, Type: chess.Castle})
	}
	if queenside && castlePathClear(board, origin, West, colour) {
		moves = append(moves, chess.Move{Start: origin, Target: origin - 2, Type: chess.Castle})
	}
	return moves
}

// castlePathClear walks from the king toward the corner: every square in
// between must be empty and the corner must hold a friendly rook.
func castlePathClear(board *chess.Board, origin chess.Square, dir Direction, colour chess.Colour) bool {
	steps := origin.File()
	if dir == East {
		steps = chess.BoardSize - 1 - origin.File()
	}
	for n := 1; n < steps; n++ {
		if !board[origin+chess.Square(dir.Offset()*n)].IsEmpty() {
			return false
		}
	}
	corner := origin + chess.Square(dir.Offset()*steps)
	return board[corner] == chess.MakePiece(colour, chess.Rook)
}
