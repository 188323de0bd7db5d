package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessmoves-go/internal/chess"
)

// Pin describes an enemy piece held in front of its own king by a slider.
type Pin struct {
	Direction Direction    // Ray direction from the pinner toward the king
	Kind      chess.Kind   // Kind of the pinned piece
	Colour    chess.Colour // Colour of the pinned piece
	Square    chess.Square // Where the pinned piece stands
	Line      chess.Move   // Piercing move from the pinner to the king
}

// FindPinnedPieces ray-casts from the origin of every slider among moves and
// reports each enemy piece that is the only piece between that slider and
// the enemy king.
func FindPinnedPieces(board *chess.Board, moves []chess.Move, edges *EdgeTable) []Pin {
	var pins []Pin
	var seen []chess.Square

	for _, m := range moves {
		if !board.At(m.Start).Kind.IsSlider() || slices.Contains(seen, m.Start) {
			continue
		}
		seen = append(seen, m.Start)
		pins = append(pins, findPinsFrom(board, m.Start, edges)...)
	}
	return pins
}

// findPinsFrom walks every ray of the slider on origin past its first blocker.
func findPinsFrom(board *chess.Board, origin chess.Square, edges *EdgeTable) []Pin {
	slider := board[origin]
	enemyKing := chess.MakePiece(slider.Colour.Opposite(), chess.King)
	first, last := slidingDirections(slider.Kind)

	var pins []Pin
	for dir := first; dir < last; dir++ {
		blocker := chess.NoSquare
		for n := 1; n <= edges.Steps(origin, dir); n++ {
			sq := origin + chess.Square(dir.Offset()*n)
			occupant := board[sq]
			if occupant.IsEmpty() {
				continue
			}
			if blocker == chess.NoSquare {
				// A friendly blocker or the king itself ends the ray.
				if !occupant.IsEnemyOf(slider.Colour) || occupant == enemyKing {
					break
				}
				blocker = sq
				continue
			}
			if occupant == enemyKing {
				pinned := board[blocker]
				pins = append(pins, Pin{
					Direction: dir,
					Kind:      pinned.Kind,
					Colour:    pinned.Colour,
					Square:    blocker,
					Line:      chess.Move{Start: origin, Target: sq, Type: chess.Piercing},
				})
			}
			break
		}
	}
	return pins
}
