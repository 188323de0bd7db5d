package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// pieceGenerator appends the moves of the piece standing on origin.
type pieceGenerator func(origin chess.Square, pos *chess.Position, colour chess.Colour, edges *EdgeTable, moves []chess.Move) []chess.Move

// generators is the fixed dispatch table, one handler per piece kind.
var generators = [chess.NumKinds]pieceGenerator{
	chess.King: func(origin chess.Square, pos *chess.Position, _ chess.Colour, _ *EdgeTable, moves []chess.Move) []chess.Move {
		return GenerateKingMoves(origin, &pos.Board, pos.Castling, moves)
	},
	chess.Queen:  generateSliding,
	chess.Rook:   generateSliding,
	chess.Bishop: generateSliding,
	chess.Knight: func(origin chess.Square, pos *chess.Position, _ chess.Colour, _ *EdgeTable, moves []chess.Move) []chess.Move {
		return GenerateKnightMoves(origin, &pos.Board, moves)
	},
	chess.Pawn: func(origin chess.Square, pos *chess.Position, colour chess.Colour, _ *EdgeTable, moves []chess.Move) []chess.Move {
		return GeneratePawnMoves(origin, &pos.Board, colour, pos.EnPassant, moves)
	},
}

func generateSliding(origin chess.Square, pos *chess.Position, _ chess.Colour, edges *EdgeTable, moves []chess.Move) []chess.Move {
	return GenerateSlidingMoves(origin, &pos.Board, edges, moves)
}

// GenerateMoves scans the board in ascending square order and returns the
// locations of colour's pieces together with all their pseudo-legal moves.
// The order of both results is deterministic.
func GenerateMoves(pos *chess.Position, colour chess.Colour, edges *EdgeTable) ([]chess.PieceLocation, []chess.Move) {
	locations := make([]chess.PieceLocation, 0, 16)
	moves := make([]chess.Move, 0, 64)

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.Board[sq]
		if !piece.Is(colour) {
			continue
		}
		locations = append(locations, chess.PieceLocation{Kind: piece.Kind, Square: sq})
		if gen := generators[piece.Kind]; gen != nil {
			moves = gen(sq, pos, colour, edges, moves)
		}
	}
	return locations, moves
}

// GenerateSideToMove is GenerateMoves for pos.ToMove using the shared edge table.
func GenerateSideToMove(pos *chess.Position) ([]chess.PieceLocation, []chess.Move) {
	return GenerateMoves(pos, pos.ToMove, Edges())
}
