package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessmoves-go/internal/chess"
)

// IsInCheck returns true if any enemy move targets the friendly king.
// Both arguments must come from the same position; with no king among the
// friendly locations the answer is false.
func IsInCheck(friendly []chess.PieceLocation, enemyMoves []chess.Move) bool {
	i := slices.IndexFunc(friendly, func(loc chess.PieceLocation) bool {
		return loc.Kind == chess.King
	})
	if i < 0 {
		return false
	}
	king := friendly[i].Square

	return slices.ContainsFunc(enemyMoves, func(m chess.Move) bool {
		return m.Target == king
	})
}

// SideInCheck reports whether colour's king is attacked in pos.
func SideInCheck(pos *chess.Position, colour chess.Colour, edges *EdgeTable) bool {
	friendly, _ := GenerateMoves(pos, colour, edges)
	_, replies := GenerateMoves(pos, colour.Opposite(), edges)
	return IsInCheck(friendly, replies)
}
