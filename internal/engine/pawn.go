package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// GeneratePawnMoves appends the pushes and captures of the pawn on origin.
// Pushes are tagged NoCapture; a diagonal onto the en-passant target is
// tagged EnPassant; anything reaching the last rank is tagged Promotion.
func GeneratePawnMoves(origin chess.Square, board *chess.Board, colour chess.Colour, enPassant chess.Square, moves []chess.Move) []chess.Move {
	if colour == chess.NoColour {
		return moves
	}
	dir := chess.ColourOffset(colour)
	file := origin.File()
	forward := origin.Rank() + dir
	if forward < 0 || forward >= chess.BoardSize {
		return moves
	}

	tag := func(target chess.Square, base chess.MoveType) chess.Move {
		if target.Rank() == chess.PromotionRank(colour) {
			base = chess.Promotion
		}
		return chess.Move{Start: origin, Target: target, Type: base}
	}

	// Pushes
	push := chess.MakeSquare(file, forward)
	if board[push].IsEmpty() {
		moves = append(moves, tag(push, chess.NoCapture))

		if origin.Rank() == chess.PawnRank(colour) {
			double := chess.MakeSquare(file, forward+dir)
			if board[double].IsEmpty() {
				moves = append(moves, tag(double, chess.NoCapture))
			}
		}
	}

	// Captures; a diagonal that would wrap around the board edge is skipped
	for _, df := range [2]int{-1, 1} {
		f := file + df
		if f < 0 || f >= chess.BoardSize {
			continue
		}
		target := chess.MakeSquare(f, forward)
		switch {
		case board[target].IsEnemyOf(colour):
			moves = append(moves, tag(target, chess.Normal))
		case target == enPassant && board[target].IsEmpty():
			moves = append(moves, chess.Move{Start: origin, Target: target, Type: chess.EnPassant})
		}
	}
	return moves
}
