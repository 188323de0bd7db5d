// Package output renders positions, move lists, pins and classification
// results as text.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/engine"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// RenderBoard writes the board with rank 8 at the top. Each cell is
// "[mP]" where P is the piece letter (blank when empty) and m is '*' when
// some move in moves targets the square.
func RenderBoard(w io.Writer, pos *chess.Position, moves []chess.Move) error {
	var targeted [chess.NumSquares]bool
	for _, m := range moves {
		if m.Target.Valid() {
			targeted[m.Target] = true
		}
	}

	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte(chess.RankBase + rank))
		sb.WriteByte(' ')
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.MakeSquare(file, rank)
			marker := byte(' ')
			if targeted[sq] {
				marker = '*'
			}
			sb.WriteByte('[')
			sb.WriteByte(marker)
			sb.WriteByte(pos.Board[sq].Letter())
			sb.WriteByte(']')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for file := 0; file < chess.BoardSize; file++ {
		sb.WriteString("  ")
		sb.WriteByte(byte(chess.FileBase + file))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatMove renders a move in long algebraic notation, with the move type
// in parentheses for castles, en passant, promotions and piercing lines.
func FormatMove(m chess.Move) string {
	switch m.Type {
	case chess.Normal, chess.NoCapture:
		return m.String()
	default:
		return m.String() + "(" + m.Type.String() + ")"
	}
}

// WriteMoves writes the moves separated by spaces, wrapping lines at
// maxLineLength (80 when not positive).
func WriteMoves(w io.Writer, moves []chess.Move, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)
	for _, m := range moves {
		ow.Write(FormatMove(m))
	}
	ow.NewLine()
}

// WritePins writes one line per pin.
func WritePins(w io.Writer, pins []engine.Pin) {
	for _, p := range pins {
		fmt.Fprintf(w, "%s %s on %v pinned by %v along %v against %v\n",
			p.Colour, p.Kind, p.Square, p.Line.Start, p.Direction, p.Line.Target)
	}
}
