package config

// DisplayConfig holds settings related to board rendering.
type DisplayConfig struct {
	// Colour enables ANSI colours for squares and pieces
	Colour bool

	// Unicode draws pieces with chess glyphs instead of letters
	Unicode bool

	// Flip draws the board from Black's side
	Flip bool

	// ShowMoves highlights the destinations of the last queried piece
	ShowMoves bool

	// ShowCaptured prints the captured pieces under the board
	ShowCaptured bool

	// JSON writes match state as JSON documents instead of a drawn board
	JSON bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Colour:       true,
		ShowMoves:    true,
		ShowCaptured: true,
	}
}
