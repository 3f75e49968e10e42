package chess

import "strings"

// MoveMatrix marks the squares a piece may move to, indexed [row][col].
type MoveMatrix [BoardSize][BoardSize]bool

// Set marks p as a destination. Off-board positions are ignored.
func (m *MoveMatrix) Set(p Position) {
	if p.Valid() {
		m[p.Row][p.Col] = true
	}
}

// Has reports whether p is marked.
func (m *MoveMatrix) Has(p Position) bool {
	return p.Valid() && m[p.Row][p.Col]
}

// Any reports whether at least one square is marked.
func (m *MoveMatrix) Any() bool {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if m[r][c] {
				return true
			}
		}
	}
	return false
}

// Count returns the number of marked squares.
func (m *MoveMatrix) Count() int {
	n := 0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if m[r][c] {
				n++
			}
		}
	}
	return n
}

// Squares returns the marked positions in row-major order.
func (m *MoveMatrix) Squares() []Position {
	var out []Position
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if m[r][c] {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}
	return out
}

// String lists the marked squares in algebraic notation, e.g. "e3 e4".
func (m *MoveMatrix) String() string {
	squares := m.Squares()
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return strings.Join(names, " ")
}

// Move is a source-destination pair.
type Move struct {
	From Position
	To   Position
}

// String returns the move in coordinate notation, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
