// Package output renders match state for the console front end.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
)

// MatchView is the read-only match state a renderer needs.
type MatchView interface {
	Pieces() chess.Grid
	Captured(colour chess.Colour) []*chess.Piece
	Turn() int
	CurrentPlayer() chess.Colour
	Check() bool
	CheckMate() bool
	Promoted() *chess.Piece
}

// Square and piece colours.
var (
	lightSquare     = color.BgHiBlack
	darkSquare      = color.BgBlack
	highlightSquare = color.BgBlue
	captureSquare   = color.BgRed
	whitePiece      = color.FgHiWhite
	blackPiece      = color.FgYellow
)

// Renderer draws boards and status lines to a writer.
type Renderer struct {
	w       io.Writer
	display config.DisplayConfig
}

// NewRenderer creates a renderer with the given display settings.
func NewRenderer(w io.Writer, display config.DisplayConfig) *Renderer {
	return &Renderer{w: w, display: display}
}

// RenderMatch draws the board, the captured pieces and the status lines.
// highlight may be nil.
func (r *Renderer) RenderMatch(view MatchView, highlight *chess.MoveMatrix) {
	r.RenderBoard(view.Pieces(), highlight)
	if r.display.ShowCaptured {
		r.RenderCaptured(view)
	}
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, Status(view))
}

// RenderBoard draws the grid with rank and file labels.
func (r *Renderer) RenderBoard(grid chess.Grid, highlight *chess.MoveMatrix) {
	if !r.display.ShowMoves {
		highlight = nil
	}

	header := r.fileLabels()
	fmt.Fprintln(r.w, header)
	for _, row := range r.rows() {
		rank := chess.BoardSize - row
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d ", rank)
		for _, col := range r.cols() {
			sb.WriteString(r.cell(grid[row][col], chess.Pos(row, col), highlight))
		}
		fmt.Fprintf(&sb, " %d", rank)
		fmt.Fprintln(r.w, sb.String())
	}
	fmt.Fprintln(r.w, header)
}

// RenderCaptured lists each side's captured pieces.
func (r *Renderer) RenderCaptured(view MatchView) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "Captured pieces:")
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		var names []string
		for _, p := range view.Captured(colour) {
			names = append(names, r.symbol(p))
		}
		fmt.Fprintf(r.w, "%s: [%s]\n", colour, strings.Join(names, ", "))
	}
}

// Status describes the turn, check and promotion state of a match.
func Status(view MatchView) string {
	var sb strings.Builder
	if view.CheckMate() {
		fmt.Fprintf(&sb, "CHECKMATE!\nWinner: %s", view.CurrentPlayer())
	} else {
		fmt.Fprintf(&sb, "Turn: %d\nWaiting player: %s", view.Turn(), view.CurrentPlayer())
		if view.Check() {
			sb.WriteString("\nCHECK!")
		}
	}
	if p := view.Promoted(); p != nil {
		fmt.Fprintf(&sb, "\n%s pawn promoted to %s on %s (promote B, N, R or Q to change)", p.Colour, p.Kind, p.Pos)
	}
	return sb.String()
}

func (r *Renderer) rows() []int {
	return ordered(r.display.Flip)
}

func (r *Renderer) cols() []int {
	return ordered(r.display.Flip)
}

// ordered returns 0..7, reversed when flipped.
func ordered(reverse bool) []int {
	out := make([]int, chess.BoardSize)
	for i := range out {
		if reverse {
			out[i] = chess.BoardSize - 1 - i
		} else {
			out[i] = i
		}
	}
	return out
}

func (r *Renderer) fileLabels() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for _, col := range r.cols() {
		fmt.Fprintf(&sb, " %c ", chess.ColBase+col)
	}
	return sb.String()
}

// cell draws one three-character square.
func (r *Renderer) cell(piece *chess.Piece, p chess.Position, highlight *chess.MoveMatrix) string {
	text := " " + r.symbol(piece) + " "

	bg := lightSquare
	if (p.Row+p.Col)%2 == 1 {
		bg = darkSquare
	}
	if highlight != nil && highlight.Has(p) {
		bg = highlightSquare
		if piece != nil {
			bg = captureSquare
		} else if !r.display.Colour {
			text = " * "
		}
	}

	fg := whitePiece
	if piece != nil && piece.Colour == chess.Black {
		fg = blackPiece
	}

	c := color.New(bg, fg, color.Bold)
	if r.display.Colour {
		c.EnableColor()
	} else {
		c.DisableColor()
		if bg == captureSquare {
			text = "(" + r.symbol(piece) + ")"
		}
	}
	return c.Sprint(text)
}

// symbol returns the piece letter or glyph, or "." for an empty square.
func (r *Renderer) symbol(piece *chess.Piece) string {
	if piece == nil {
		return "."
	}
	if r.display.Unicode {
		return string(piece.Glyph())
	}
	return piece.String()
}
