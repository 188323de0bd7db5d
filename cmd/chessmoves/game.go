package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/config"
	"github.com/lgbarn/chessmoves-go/internal/engine"
	"github.com/lgbarn/chessmoves-go/internal/notation"
	"github.com/lgbarn/chessmoves-go/internal/output"
	"github.com/lgbarn/chessmoves-go/internal/processing"
)

// Session is one interactive game: it owns the current position and
// alternates between the two sides until the game ends.
type Session struct {
	cfg     *config.Config
	pos     chess.Position
	edges   *engine.EdgeTable
	in      *bufio.Scanner
	plies   int
	history *processing.History
}

// NewSession starts a game from cfg.StartFEN reading moves from r. The
// moves of cfg.StartLine are played first.
func NewSession(cfg *config.Config, r io.Reader) (*Session, error) {
	pos, err := notation.DecodeFEN(cfg.StartFEN)
	if err != nil {
		return nil, err
	}
	analysis, err := processing.ReplayLine(&pos, strings.Fields(cfg.StartLine))
	if err != nil {
		return nil, fmt.Errorf("start line: %w", err)
	}
	return &Session{
		cfg:     cfg,
		pos:     analysis.FinalPosition,
		edges:   engine.Edges(),
		in:      bufio.NewScanner(r),
		plies:   analysis.Plies,
		history: analysis.History,
	}, nil
}

// Position returns the current position.
func (s *Session) Position() chess.Position {
	return s.pos
}

// Run plays until the game ends, "quit" or the end of input and returns
// the final classification. A game drawn by rule ends as Normal. Only
// input errors are returned.
func (s *Session) Run() (engine.Outcome, error) {
	for {
		outcome, moves := s.beginPly()
		if outcome.Terminal() {
			fmt.Fprintln(s.cfg.OutputFile, resultMessage(outcome, s.pos.ToMove))
			return outcome, nil
		}
		draw := s.history.Status(&s.pos)
		if draw.Automatic() {
			fmt.Fprintf(s.cfg.OutputFile, "Draw: %s\n", draw.Reason())
			return outcome, nil
		}
		if draw.Claimable() {
			fmt.Fprintf(s.cfg.OutputFile, "A draw may be claimed: %s\n", draw.Reason())
		}

		for {
			fmt.Fprintf(s.cfg.OutputFile, "%s> ", s.pos.ToMove)
			if !s.in.Scan() {
				fmt.Fprintln(s.cfg.OutputFile)
				return outcome, s.in.Err()
			}
			line := strings.TrimSpace(s.in.Text())
			if strings.EqualFold(line, "quit") {
				return outcome, nil
			}
			if line == "" {
				continue
			}

			if err := s.Play(line, moves); err != nil {
				fmt.Fprintf(s.cfg.OutputFile, "Error: %v\n", err)
				continue
			}
			break
		}
	}
}

// beginPly scans the position, prints what the configuration asks for and
// classifies it for the side to move.
func (s *Session) beginPly() (engine.Outcome, []chess.Move) {
	mover := s.pos.ToMove
	friendly, moves := engine.GenerateMoves(&s.pos, mover, s.edges)
	_, replies := engine.GenerateMoves(&s.pos, mover.Opposite(), s.edges)
	inCheck := engine.IsInCheck(friendly, replies)

	w := s.cfg.OutputFile
	if s.cfg.Output.ShowBoard {
		output.RenderBoard(w, &s.pos, moves) //nolint:errcheck,gosec // G104: best-effort display
	}
	status := fmt.Sprintf("%s to move (move %d)", mover, s.pos.MoveNumber)
	if inCheck {
		status += ", in check"
	}
	fmt.Fprintln(w, status)

	if s.cfg.Output.ShowMoves {
		output.WriteMoves(w, moves, s.cfg.Output.MaxLineLength)
	}
	if s.cfg.Output.ShowPins {
		output.WritePins(w, engine.FindPinnedPieces(&s.pos.Board, replies, s.edges))
	}

	outcome := engine.Classify(&s.pos, s.edges)
	if s.cfg.Verbosity > 0 {
		fmt.Fprintf(s.cfg.LogFile, "ply %d: %s, %d pseudo-legal moves, check=%v, %s\n",
			s.plies, mover, len(moves), inCheck, outcome)
	}
	return outcome, moves
}

// Play decodes text and applies it to the current position. A move that
// leaves the mover's own king attacked is refused and the position is
// unchanged.
func (s *Session) Play(text string, moves []chess.Move) error {
	next, err := processing.PlayMove(&s.pos, moves, text, s.edges)
	if err != nil {
		return err
	}

	if s.cfg.Verbosity > 1 {
		fmt.Fprintf(s.cfg.LogFile, "%s plays %s: %s\n", s.pos.ToMove, text, notation.EncodeFEN(&next))
	}
	s.pos = next
	s.plies++
	s.history.Record(&s.pos)
	return nil
}

func resultMessage(outcome engine.Outcome, toMove chess.Colour) string {
	switch outcome {
	case engine.Checkmate:
		return fmt.Sprintf("Checkmate: %s wins", toMove.Opposite())
	case engine.Stalemate:
		return "Stalemate: draw"
	}
	return outcome.String()
}
