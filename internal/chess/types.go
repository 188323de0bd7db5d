// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	NoColour Colour = iota // Colour of an empty square
	White
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColour
	}
}

// Kind represents a chess piece type.
type Kind int

const (
	Empty Kind = iota // Empty square
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'K', 'Q', 'R', 'B', 'N', 'P'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsSlider reports whether the kind moves along rays.
func (k Kind) IsSlider() bool {
	return k == Queen || k == Rook || k == Bishop
}

// Piece is a coloured piece. The zero value is the empty square.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece is the content of an empty square.
var NoPiece = Piece{}

// MakePiece creates a coloured piece value.
// Asking for an Empty kind always yields NoPiece.
func MakePiece(colour Colour, kind Kind) Piece {
	if kind == Empty || colour == NoColour {
		return NoPiece
	}
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// IsEmpty reports whether the square holding p is empty.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Is reports whether p is a piece of the given colour.
func (p Piece) Is(colour Colour) bool {
	return p.Kind != Empty && p.Colour == colour
}

// IsEnemyOf reports whether p belongs to the side opposing colour.
func (p Piece) IsEnemyOf(colour Colour) bool {
	return p.Kind != Empty && colour != NoColour && p.Colour == colour.Opposite()
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black,
// a space for an empty square.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight" or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	FileBase = 'a'
)

// Square is a mailbox index 0..63; a1 is 0, h1 is 7, a8 is 56.
type Square int

// NoSquare marks an absent square, such as a missing en-passant target.
const NoSquare Square = -1

// MakeSquare builds a square from 0-based file and rank.
func MakeSquare(file, rank int) Square {
	return Square(rank*BoardSize + file)
}

// Rank returns the 0-based rank of the square.
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// File returns the 0-based file of the square.
func (s Square) File() int {
	return int(s) % BoardSize
}

// Valid reports whether s lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// String returns the algebraic name of the square ("e4"), or "-" when the
// square is off the board.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File()), byte(RankBase + s.Rank())})
}

// HomeRank returns the 0-based back rank of the colour.
func HomeRank(colour Colour) int {
	if colour == Black {
		return BoardSize - 1
	}
	return 0
}

// PawnRank returns the 0-based rank pawns of the colour start on.
func PawnRank(colour Colour) int {
	if colour == Black {
		return BoardSize - 2
	}
	return 1
}

// PromotionRank returns the 0-based rank on which pawns of the colour promote.
func PromotionRank(colour Colour) int {
	if colour == Black {
		return 0
	}
	return BoardSize - 1
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == Black {
		return -1
	}
	return 1
}
