package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Position is a zero-based (row, column) pair. Row 0 is rank 8 and
// column 0 is file 'a'.
type Position struct {
	Row int
	Col int
}

// Constants for the algebraic coordinate layer.
const (
	ColBase  = 'a'
	RankBase = '1'
	FirstCol = ColBase
	LastCol  = ColBase + BoardSize - 1
)

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Valid reports whether p lies on a standard board.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Offset returns p moved by dr rows and dc columns.
func (p Position) Offset(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Rank returns the algebraic rank (1-8) of p.
func (p Position) Rank() int {
	return BoardSize - p.Row
}

// File returns the algebraic file letter of p.
func (p Position) File() byte {
	return byte(ColBase + p.Col)
}

// String returns the algebraic notation for p, e.g. "e4".
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", p.File(), p.Rank())
}

// FromAlgebraic converts a file letter and rank number to an internal position.
func FromAlgebraic(file byte, rank int) (Position, error) {
	if file < FirstCol || file > LastCol || rank < 1 || rank > BoardSize {
		return Position{}, fmt.Errorf("%c%d: %w", file, rank, errors.ErrInvalidSquare)
	}
	return Position{Row: BoardSize - rank, Col: int(file - ColBase)}, nil
}

// ParseSquare parses algebraic notation such as "e4" (case-insensitive).
func ParseSquare(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 || s[1] < RankBase || s[1] > RankBase+BoardSize-1 {
		return Position{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return FromAlgebraic(s[0], int(s[1]-RankBase)+1)
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for fixed layouts and tests.
func MustParseSquare(s string) Position {
	p, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return p
}
