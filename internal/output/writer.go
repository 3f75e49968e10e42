package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
)

// MatchWriter is the interface for writing match state to output.
// Implementations differ in format (text board, JSON).
type MatchWriter interface {
	// WriteMatch writes the current state, highlighting the given squares if non-nil.
	WriteMatch(view MatchView, highlight *chess.MoveMatrix) error

	// WriteMessage writes a line of feedback such as an error or prompt.
	WriteMessage(msg string) error
}

// TextWriter draws the board for a human at a terminal.
type TextWriter struct {
	w        io.Writer
	renderer *Renderer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, display config.DisplayConfig) *TextWriter {
	return &TextWriter{w: w, renderer: NewRenderer(w, display)}
}

// WriteMatch draws the board and status.
func (tw *TextWriter) WriteMatch(view MatchView, highlight *chess.MoveMatrix) error {
	tw.renderer.RenderMatch(view, highlight)
	return nil
}

// WriteMessage writes msg on its own line.
func (tw *TextWriter) WriteMessage(msg string) error {
	_, err := fmt.Fprintln(tw.w, msg)
	return err
}

// JSONWriter writes one JSON document per state.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteMatch writes the state as a JSON object.
func (jw *JSONWriter) WriteMatch(view MatchView, highlight *chess.MoveMatrix) error {
	return OutputMatchJSON(jw.w, view, highlight)
}

// WriteMessage writes msg as a JSON object with a single "message" field.
func (jw *JSONWriter) WriteMessage(msg string) error {
	return writeJSONMessage(jw.w, msg)
}

// NewMatchWriter selects a writer for the configured format.
func NewMatchWriter(cfg *config.Config) MatchWriter {
	if cfg.Display.JSON {
		return NewJSONWriter(cfg.OutputFile)
	}
	return NewTextWriter(cfg.OutputFile, cfg.Display)
}
