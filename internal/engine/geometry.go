// Package engine provides pseudo-legal move generation, check and pin
// detection, move application and checkmate/stalemate classification.
package engine

import (
	"sync"

	"github.com/lgbarn/chessmoves-go/internal/chess"
)

// Direction indexes the eight ray directions of the edge table.
type Direction int

const (
	North Direction = iota
	South
	West
	East
	NorthWest
	SouthEast
	NorthEast
	SouthWest
	NumDirections
)

// directionOffsets are the mailbox steps for each Direction.
var directionOffsets = [NumDirections]int{8, -8, -1, 1, 7, -7, 9, -9}

// Offset returns the square delta of one step in the direction.
func (d Direction) Offset() int {
	return directionOffsets[d]
}

// String returns the compass name of the direction.
func (d Direction) String() string {
	names := []string{"N", "S", "W", "E", "NW", "SE", "NE", "SW"}
	if d >= 0 && int(d) < len(names) {
		return names[d]
	}
	return "?"
}

// EdgeTable holds, for every square and direction, the number of steps to
// the board edge. It is never modified after construction.
type EdgeTable [chess.NumSquares][NumDirections]int

// PrecomputeEdgeDistances builds a fresh edge table.
func PrecomputeEdgeDistances() *EdgeTable {
	var table EdgeTable
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			north := 7 - rank
			south := rank
			west := file
			east := 7 - file

			table[chess.MakeSquare(file, rank)] = [NumDirections]int{
				north, south, west, east,
				min(north, west), min(south, east),
				min(north, east), min(south, west),
			}
		}
	}
	return &table
}

// Steps returns the distance from sq to the edge in direction d.
func (t *EdgeTable) Steps(sq chess.Square, d Direction) int {
	return t[sq][d]
}

var (
	edgesOnce sync.Once
	edges     *EdgeTable
)

// Edges returns the shared edge table, computing it on first use.
func Edges() *EdgeTable {
	edgesOnce.Do(func() {
		edges = PrecomputeEdgeDistances()
	})
	return edges
}
