package notation

import (
	"strings"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// ParseSquare converts an algebraic square ("e4") to a chess.Square.
// Files may be upper or lower case.
func ParseSquare(s string) (chess.Square, error) {
	if len(s) != 2 {
		return chess.NoSquare, errors.Wrapf(errors.ErrInvalidNotation, "square %q", s)
	}
	file := int(toLowerASCII(s[0]) - chess.FileBase)
	rank := int(s[1]) - chess.RankBase
	if file < 0 || file >= chess.BoardSize || rank < 0 || rank >= chess.BoardSize {
		return chess.NoSquare, errors.Wrapf(errors.ErrInvalidNotation, "square %q", s)
	}
	return chess.MakeSquare(file, rank), nil
}

// ParseMove decodes long algebraic text such as "e2e4" into its start and
// target squares. Surrounding whitespace is ignored; a trailing promotion
// letter ("e7e8q") is accepted and dropped.
func ParseMove(text string) (start, target chess.Square, err error) {
	s := strings.TrimSpace(text)
	if len(s) == 5 && ConvertFENCharToKind(s[4]) != chess.Empty {
		s = s[:4]
	}
	if len(s) != 4 {
		return chess.NoSquare, chess.NoSquare, &errors.MoveError{
			Err:      errors.ErrInvalidNotation,
			MoveText: text,
			Reason:   "expected four characters like e2e4",
		}
	}

	if start, err = ParseSquare(s[:2]); err != nil {
		return chess.NoSquare, chess.NoSquare, &errors.MoveError{Err: err, MoveText: text}
	}
	if target, err = ParseSquare(s[2:]); err != nil {
		return chess.NoSquare, chess.NoSquare, &errors.MoveError{Err: err, MoveText: text}
	}
	return start, target, nil
}

func toLowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
