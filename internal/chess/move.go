package chess

// MoveType categorizes the special semantics of a generated move.
type MoveType int

const (
	Normal    MoveType = iota // Ordinary move or capture
	NoCapture                 // Pawn push; illegal onto an occupied square
	Castle                    // King two-square move; the rook follows
	EnPassant                 // Pawn capture onto the en-passant target
	Promotion                 // Pawn reaching the last rank
	Piercing                  // Slider ray through to the enemy king; not playable
)

// String returns the string representation of a move type.
func (t MoveType) String() string {
	names := []string{"normal", "nocapture", "castle", "enpassant", "promotion", "piercing"}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "unknown"
}

// Move is a candidate move. It is only meaningful relative to the
// Position it was generated from.
type Move struct {
	Start  Square
	Target Square
	Type   MoveType
}

// String returns the move in long algebraic notation (e.g. "e2e4").
func (m Move) String() string {
	return m.Start.String() + m.Target.String()
}

// Playable reports whether the move may be handed to the applier.
func (m Move) Playable() bool {
	return m.Type != Piercing
}

// PieceLocation pairs a piece kind with the square it stands on.
type PieceLocation struct {
	Kind   Kind
	Square Square
}
