package chess

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Grid is a full-board view of piece occupancy, indexed [row][col].
type Grid [BoardSize][BoardSize]*Piece

// Board is the cell storage for a match: each square is either empty or
// holds one piece. It knows nothing about chess rules.
type Board struct {
	squares Grid
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return BoardSize
}

// Columns returns the number of columns.
func (b *Board) Columns() int {
	return BoardSize
}

// PositionExists reports whether p lies on the board.
func (b *Board) PositionExists(p Position) bool {
	return p.Row >= 0 && p.Row < b.Rows() && p.Col >= 0 && p.Col < b.Columns()
}

// PieceAt returns the piece at p, or nil if the square is empty or off the board.
func (b *Board) PieceAt(p Position) *Piece {
	if !b.PositionExists(p) {
		return nil
	}
	return b.squares[p.Row][p.Col]
}

// IsOccupied reports whether a piece stands on p.
func (b *Board) IsOccupied(p Position) bool {
	return b.PieceAt(p) != nil
}

// PlacePiece puts piece on p and records the square on the piece.
func (b *Board) PlacePiece(piece *Piece, p Position) error {
	if !b.PositionExists(p) {
		return fmt.Errorf("place at %s: %w", p, errors.ErrOffBoard)
	}
	if b.squares[p.Row][p.Col] != nil {
		return fmt.Errorf("place at %s: %w", p, errors.ErrSquareOccupied)
	}
	b.squares[p.Row][p.Col] = piece
	piece.Pos = p
	return nil
}

// RemovePiece clears p and returns the piece that stood there, if any.
// The removed piece keeps p as its last known position.
func (b *Board) RemovePiece(p Position) *Piece {
	if !b.PositionExists(p) {
		return nil
	}
	piece := b.squares[p.Row][p.Col]
	b.squares[p.Row][p.Col] = nil
	return piece
}

// Snapshot returns a grid of piece copies that callers may keep or modify
// without affecting the board.
func (b *Board) Snapshot() Grid {
	var g Grid
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if p := b.squares[r][c]; p != nil {
				g[r][c] = p.Copy()
			}
		}
	}
	return g
}
