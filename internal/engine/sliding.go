package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// slidingDirections returns the direction range [first, last) a slider walks.
func slidingDirections(kind chess.Kind) (first, last Direction) {
	switch kind {
	case chess.Rook:
		return North, NorthWest
	case chess.Bishop:
		return NorthWest, NumDirections
	default:
		return North, NumDirections
	}
}

// GenerateSlidingMoves appends the moves of the bishop, rook or queen on
// origin. Each ray stops at the first occupied square, which is included
// only when it holds an enemy piece.
func GenerateSlidingMoves(origin chess.Square, board *chess.Board, edges *EdgeTable, moves []chess.Move) []chess.Move {
	piece := board[origin]
	first, last := slidingDirections(piece.Kind)

	for dir := first; dir < last; dir++ {
		offset := dir.Offset()
		for n := 1; n <= edges.Steps(origin, dir); n++ {
			target := origin + chess.Square(offset*n)
			occupant := board[target]

			if occupant.Is(piece.Colour) {
				break
			}

			moves = append(moves, chess.Move{Start: origin, Target: target, Type: chess.Normal})

			if !occupant.IsEmpty() {
				break
			}
		}
	}
	return moves
}
