// Package hashing provides position hashing and duplicate detection for
// batches of positions.
package hashing

import (
	"math/rand"
	"sync"

	"github.com/lgbarn/chessmoves-go/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable between runs.
const zobristSeed = 0x5eed_c4e5

type zobristKeys struct {
	pieces    [chess.NumSquares][2][chess.NumKinds]uint64
	blackMove uint64
	castling  [4]uint64
	enPassant [chess.BoardSize]uint64
}

var (
	keys     zobristKeys
	keysOnce sync.Once
)

func zobrist() *zobristKeys {
	keysOnce.Do(func() {
		r := rand.New(rand.NewSource(zobristSeed)) //nolint:gosec // G404: not security sensitive
		for sq := range keys.pieces {
			for c := range keys.pieces[sq] {
				for k := range keys.pieces[sq][c] {
					keys.pieces[sq][c][k] = r.Uint64()
				}
			}
		}
		keys.blackMove = r.Uint64()
		for i := range keys.castling {
			keys.castling[i] = r.Uint64()
		}
		for i := range keys.enPassant {
			keys.enPassant[i] = r.Uint64()
		}
	})
	return &keys
}

// GenerateZobristHash hashes the parts of pos that decide which moves are
// available: placement, side to move, castling rights and the en-passant
// file. The clocks are ignored.
func GenerateZobristHash(pos *chess.Position) uint64 {
	z := zobrist()
	var hash uint64

	for sq, piece := range pos.Board {
		if piece.IsEmpty() {
			continue
		}
		hash ^= z.pieces[sq][colourIndex(piece.Colour)][piece.Kind]
	}

	if pos.ToMove == chess.Black {
		hash ^= z.blackMove
	}

	rights := []bool{
		pos.Castling.WhiteKingside, pos.Castling.WhiteQueenside,
		pos.Castling.BlackKingside, pos.Castling.BlackQueenside,
	}
	for i, ok := range rights {
		if ok {
			hash ^= z.castling[i]
		}
	}

	if pos.EnPassant.Valid() {
		hash ^= z.enPassant[pos.EnPassant.File()]
	}
	return hash
}

func colourIndex(c chess.Colour) int {
	if c == chess.Black {
		return 1
	}
	return 0
}

// WeakHash is a cheap order-dependent sum over the occupied squares.
// It is used as a second check when Zobrist hashes collide.
func WeakHash(pos *chess.Position) uint32 {
	var hash uint32
	for sq, piece := range pos.Board {
		if piece.IsEmpty() {
			continue
		}
		hash = hash*31 + uint32(sq)<<8 + uint32(piece.Letter())
	}
	return hash
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
	// MoveNumber is the full-move number the position was seen at
	MoveNumber uint
}

// DuplicateDetector tracks seen positions for duplicate detection.
type DuplicateDetector struct {
	// hashTable stores seen hash codes
	hashTable map[uint64][]PositionSignature
	// useExactMatch also requires the move numbers to agree
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]PositionSignature),
		useExactMatch: exactMatch,
	}
}

// CheckAndAdd checks if a position is a duplicate and adds it to the hash table.
// Returns true if the position is a duplicate.
func (d *DuplicateDetector) CheckAndAdd(pos *chess.Position) bool {
	if pos == nil {
		return false
	}

	sig := PositionSignature{
		Hash:       GenerateZobristHash(pos),
		WeakHash:   WeakHash(pos),
		MoveNumber: pos.MoveNumber,
	}

	if existing, ok := d.hashTable[sig.Hash]; ok {
		for _, existingSig := range existing {
			if d.signaturesMatch(sig, existingSig) {
				d.duplicateCount++
				return true
			}
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return false
}

// signaturesMatch checks if two position signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b PositionSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.MoveNumber != b.MoveNumber {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.duplicateCount = 0
}
