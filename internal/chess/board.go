package chess

// Board is a mailbox of 64 squares indexed by Square.
type Board [NumSquares]Piece

// At returns the piece on the square, or NoPiece when the square is off the board.
func (b *Board) At(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b[sq]
}

// Put places a piece on the square. Squares off the board are ignored.
func (b *Board) Put(sq Square, piece Piece) {
	if sq.Valid() {
		b[sq] = piece
	}
}

// Find returns the first square (ascending) holding the piece, or NoSquare.
func (b *Board) Find(piece Piece) Square {
	for sq := Square(0); sq < NumSquares; sq++ {
		if b[sq] == piece {
			return sq
		}
	}
	return NoSquare
}

// CastleRights records which castles each side may still perform.
type CastleRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// Side returns the kingside and queenside rights of one colour.
func (c CastleRights) Side(colour Colour) (kingside, queenside bool) {
	switch colour {
	case White:
		return c.WhiteKingside, c.WhiteQueenside
	case Black:
		return c.BlackKingside, c.BlackQueenside
	}
	return false, false
}

// Clear removes both rights of one colour.
func (c *CastleRights) Clear(colour Colour) {
	switch colour {
	case White:
		c.WhiteKingside, c.WhiteQueenside = false, false
	case Black:
		c.BlackKingside, c.BlackQueenside = false, false
	}
}

// ClearCorner removes the right tied to the rook corner sq, if any.
func (c *CastleRights) ClearCorner(sq Square) {
	switch sq {
	case MakeSquare(0, 0):
		c.WhiteQueenside = false
	case MakeSquare(7, 0):
		c.WhiteKingside = false
	case MakeSquare(0, 7):
		c.BlackQueenside = false
	case MakeSquare(7, 7):
		c.BlackKingside = false
	}
}

// Any reports whether any castling right remains.
func (c CastleRights) Any() bool {
	return c.WhiteKingside || c.WhiteQueenside || c.BlackKingside || c.BlackQueenside
}

// Position is the complete rules state of a game at one ply.
// It is a value: assigning a Position copies the board.
type Position struct {
	Board Board

	// Who has the next move.
	ToMove Colour

	Castling CastleRights

	// Square a pawn skipped on the previous ply, or NoSquare.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number.
	MoveNumber uint
}

// NewPosition returns an empty board with White to move.
func NewPosition() Position {
	return Position{
		ToMove:     White,
		EnPassant:  NoSquare,
		MoveNumber: 1,
	}
}

// SetupInitialPosition returns the standard chess starting position.
func SetupInitialPosition() Position {
	pos := NewPosition()
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		pos.Board[MakeSquare(file, 0)] = W(backRank[file])
		pos.Board[MakeSquare(file, 1)] = W(Pawn)
		pos.Board[MakeSquare(file, 6)] = B(Pawn)
		pos.Board[MakeSquare(file, 7)] = B(backRank[file])
	}
	pos.Castling = CastleRights{
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}
	return pos
}

// KingSquare returns the square of the colour's king, or NoSquare.
func (p *Position) KingSquare(colour Colour) Square {
	return p.Board.Find(MakePiece(colour, King))
}
