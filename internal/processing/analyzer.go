// Package processing replays move lines and tracks the draw conditions that
// move generation does not look at: the move clocks, repetition and
// insufficient material.
package processing

import (
	"fmt"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/engine"
	"github.com/lgbarn/chessmoves-go/internal/errors"
	"github.com/lgbarn/chessmoves-go/internal/hashing"
	"github.com/lgbarn/chessmoves-go/internal/notation"
)

// History counts the positions of one game by Zobrist hash.
type History struct {
	positions []uint64
	counts    map[uint64]int
}

// NewHistory starts a history at start.
func NewHistory(start *chess.Position) *History {
	h := &History{counts: make(map[uint64]int)}
	h.Record(start)
	return h
}

// Record adds pos and returns how often it has now occurred.
func (h *History) Record(pos *chess.Position) int {
	hash := hashing.GenerateZobristHash(pos)
	h.positions = append(h.positions, hash)
	h.counts[hash]++
	return h.counts[hash]
}

// Count returns how often pos has occurred.
func (h *History) Count(pos *chess.Position) int {
	return h.counts[hashing.GenerateZobristHash(pos)]
}

// Positions returns the recorded hashes in game order.
func (h *History) Positions() []uint64 {
	return append([]uint64(nil), h.positions...)
}

// DrawStatus lists the draw rules pos meets. FiftyMove and Threefold only
// allow a claim; the other three end the game.
type DrawStatus struct {
	FiftyMove            bool
	SeventyFiveMove      bool
	Threefold            bool
	Fivefold             bool
	InsufficientMaterial bool
}

// Status reports the draw rules met by pos, which must be the last
// recorded position.
func (h *History) Status(pos *chess.Position) DrawStatus {
	seen := h.Count(pos)
	return DrawStatus{
		FiftyMove:            pos.HalfmoveClock >= 100,
		SeventyFiveMove:      pos.HalfmoveClock >= 150,
		Threefold:            seen >= 3,
		Fivefold:             seen >= 5,
		InsufficientMaterial: HasInsufficientMaterial(pos),
	}
}

// Automatic reports whether the game is drawn without a claim.
func (d DrawStatus) Automatic() bool {
	return d.SeventyFiveMove || d.Fivefold || d.InsufficientMaterial
}

// Claimable reports whether the side to move may claim a draw.
func (d DrawStatus) Claimable() bool {
	return d.FiftyMove || d.Threefold
}

// Reason names the strongest rule met, or "" when none is.
func (d DrawStatus) Reason() string {
	switch {
	case d.InsufficientMaterial:
		return "insufficient material"
	case d.Fivefold:
		return "fivefold repetition"
	case d.SeventyFiveMove:
		return "seventy-five-move rule"
	case d.Threefold:
		return "threefold repetition"
	case d.FiftyMove:
		return "fifty-move rule"
	}
	return ""
}

// HasInsufficientMaterial reports whether neither side can mate: bare
// kings, a single minor piece, or only bishops all on one square colour.
func HasInsufficientMaterial(pos *chess.Position) bool {
	minors := 0
	bishopColours := [2]int{}
	knights := 0

	for sq, piece := range pos.Board {
		switch piece.Kind {
		case chess.Empty, chess.King:
		case chess.Knight:
			minors++
			knights++
		case chess.Bishop:
			minors++
			s := chess.Square(sq)
			bishopColours[(s.File()+s.Rank())%2]++
		default:
			return false
		}
	}

	if minors <= 1 {
		return true
	}
	return knights == 0 && (bishopColours[0] == 0 || bishopColours[1] == 0)
}

// PlayMove decodes text, applies it with moves, the pseudo-legal moves of
// pos, and refuses a move that leaves the mover's king attacked.
func PlayMove(pos *chess.Position, moves []chess.Move, text string, edges *engine.EdgeTable) (chess.Position, error) {
	start, target, err := notation.ParseMove(text)
	if err != nil {
		return *pos, err
	}

	next, err := engine.Apply(pos, moves, start, target)
	if err != nil {
		return *pos, err
	}
	if engine.SideInCheck(&next, pos.ToMove, edges) {
		return *pos, &errors.MoveError{
			Err:    errors.ErrIllegalMove,
			Start:  start.String(),
			Target: target.String(),
			Reason: "leaves the king in check",
		}
	}
	return next, nil
}

// LineAnalysis holds the results of replaying a line of moves.
type LineAnalysis struct {
	FinalPosition chess.Position
	History       *History
	Plies         int
	Outcome       engine.Outcome

	HasFiftyMoveRule        bool
	Has75MoveRule           bool
	HasRepetition           bool
	Has5FoldRepetition      bool
	HasInsufficientMaterial bool
}

// FiftyMoveTriggered returns true if the line reached the fifty-move rule.
func (la *LineAnalysis) FiftyMoveTriggered() bool {
	return la.HasFiftyMoveRule
}

// RepetitionDetected returns true if a position occurred three times.
func (la *LineAnalysis) RepetitionDetected() bool {
	return la.HasRepetition
}

// ReplayLine plays line, moves in long algebraic notation, from start and
// analyses it. The first refused move stops the replay; its error names
// the ply. A line that reaches checkmate or stalemate must end there.
func ReplayLine(start *chess.Position, line []string) (*LineAnalysis, error) {
	edges := engine.Edges()
	pos := *start
	analysis := &LineAnalysis{History: NewHistory(&pos)}

	for i, text := range line {
		ply := i + 1
		if engine.Classify(&pos, edges).Terminal() {
			return analysis, fmt.Errorf("ply %d: %q after the game ended: %w", ply, text, errors.ErrIllegalMove)
		}

		_, moves := engine.GenerateMoves(&pos, pos.ToMove, edges)
		next, err := PlayMove(&pos, moves, text, edges)
		if err != nil {
			return analysis, fmt.Errorf("ply %d: %w", ply, err)
		}
		pos = next
		analysis.Plies = ply

		if pos.HalfmoveClock >= 100 {
			analysis.HasFiftyMoveRule = true
		}
		if pos.HalfmoveClock >= 150 {
			analysis.Has75MoveRule = true
		}

		seen := analysis.History.Record(&pos)
		if seen >= 3 {
			analysis.HasRepetition = true
		}
		if seen >= 5 {
			analysis.Has5FoldRepetition = true
		}
	}

	analysis.HasInsufficientMaterial = HasInsufficientMaterial(&pos)
	analysis.Outcome = engine.Classify(&pos, edges)
	analysis.FinalPosition = pos
	return analysis, nil
}

// ValidationResult holds the result of line validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	ErrorMsg string
}

// ValidateLine reports whether every move of line can be played from start.
func ValidateLine(start *chess.Position, line []string) *ValidationResult {
	analysis, err := ReplayLine(start, line)
	if err != nil {
		return &ValidationResult{
			ErrorPly: analysis.Plies + 1,
			ErrorMsg: err.Error(),
		}
	}
	return &ValidationResult{Valid: true}
}
