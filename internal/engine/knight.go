package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// knightLeaps are (file, rank) deltas of a knight move.
var knightLeaps = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

// kingSteps are (file, rank) deltas of a king step.
var kingSteps = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

// appendLeaps appends a Normal move for every delta that lands on the board
// on a square not held by a friendly piece.
func appendLeaps(origin chess.Square, board *chess.Board, deltas [][2]int, moves []chess.Move) []chess.Move {
	colour := board[origin].Colour
	file, rank := origin.File(), origin.Rank()

	for _, d := range deltas {
		f, r := file+d[0], rank+d[1]
		if f < 0 || f >= chess.BoardSize || r < 0 || r >= chess.BoardSize {
			continue
		}
		target := chess.MakeSquare(f, r)
		if board[target].Is(colour) {
			continue
		}
		moves = append(moves, chess.Move{Start: origin, Target: target, Type: chess.Normal})
	}
	return moves
}

// GenerateKnightMoves appends the moves of the knight on origin.
func GenerateKnightMoves(origin chess.Square, board *chess.Board, moves []chess.Move) []chess.Move {
	return appendLeaps(origin, board, knightLeaps, moves)
}
