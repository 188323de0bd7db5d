// Package notation converts between text and the core chess types: FEN
// positions, algebraic squares and long algebraic moves.
package notation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c byte) chess.Kind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// DecodeFEN creates a position from a FEN string. Only the piece placement
// is mandatory; missing fields default to White to move, no castling, no
// en-passant target and clocks of 0 and 1.
func DecodeFEN(fen string) (chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return chess.Position{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pos := chess.NewPosition()

	if err := parsePiecePositions(&pos.Board, parts[0]); err != nil {
		return chess.Position{}, err
	}
	if err := parseSideToMove(&pos, parts); err != nil {
		return chess.Position{}, err
	}
	if err := parseCastlingRights(&pos, parts); err != nil {
		return chess.Position{}, err
	}
	if err := parseEnPassant(&pos, parts); err != nil {
		return chess.Position{}, err
	}
	if err := parseClocks(&pos, parts); err != nil {
		return chess.Position{}, err
	}

	return pos, nil
}

// MustDecodeFEN is DecodeFEN for trusted constants; it panics on error.
func MustDecodeFEN(fen string) chess.Position {
	pos, err := DecodeFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, placement string) error {
	rank := chess.BoardSize - 1
	file := 0

	for i, c := range placement {
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return placementError(i, "short rank")
			}
			rank--
			file = 0
			if rank < 0 {
				return placementError(i, "too many ranks")
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return placementError(i, string(c))
			}
		default:
			kind := ConvertFENCharToKind(byte(c))
			if kind == chess.Empty || c > unicode.MaxASCII {
				return placementError(i, string(c))
			}
			if file >= chess.BoardSize {
				return placementError(i, string(c))
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			board[chess.MakeSquare(file, rank)] = chess.MakePiece(colour, kind)
			file++
		}
	}
	if rank != 0 || file != chess.BoardSize {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Got: placement}
	}
	return nil
}

func placementError(index int, got string) error {
	return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Column: index + 1, Got: got}
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w", "W":
		pos.ToMove = chess.White
	case "b", "B":
		pos.ToMove = chess.Black
	default:
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "side to move", Got: parts[1]}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for i, c := range parts[2] {
		switch c {
		case 'K':
			pos.Castling.WhiteKingside = true
		case 'Q':
			pos.Castling.WhiteQueenside = true
		case 'k':
			pos.Castling.BlackKingside = true
		case 'q':
			pos.Castling.BlackQueenside = true
		default:
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "castling", Column: i + 1, Got: string(c)}
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := ParseSquare(parts[3])
	if err != nil {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "en passant", Got: parts[3]}
	}
	pos.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "halfmove clock", Got: parts[4]}
		}
		pos.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "move number", Got: parts[5]}
		}
		pos.MoveNumber = uint(n)
	}
	return nil
}

// EncodeFEN converts a position to a FEN string.
func EncodeFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, &pos.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos.Castling)
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board[chess.MakeSquare(file, rank)]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, pos *chess.Position) {
	if pos.ToMove == chess.Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, rights chess.CastleRights) {
	if !rights.Any() {
		sb.WriteByte('-')
		return
	}
	if rights.WhiteKingside {
		sb.WriteByte('K')
	}
	if rights.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if rights.BlackKingside {
		sb.WriteByte('k')
	}
	if rights.BlackQueenside {
		sb.WriteByte('q')
	}
}
