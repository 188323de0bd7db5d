package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// ShowBoard prints the board with move targets before each ply
	ShowBoard bool

	// ShowMoves prints the pseudo-legal move list before each ply
	ShowMoves bool

	// ShowPins prints the pieces pinned by the side to move
	ShowPins bool

	// MaxLineLength is the wrap column for move lists (0 means 80)
	MaxLineLength int

	// JSONFormat writes batch results as JSON instead of tab-separated text
	JSONFormat bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard:     true,
		MaxLineLength: 80,
	}
}
