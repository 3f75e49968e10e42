package engine

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Placement describes one piece of a custom starting layout.
type Placement struct {
	Square    string // Algebraic square, e.g. "e1"
	Kind      chess.Kind
	Colour    chess.Colour
	MoveCount int // Lets a layout mark kings and rooks as already moved
}

// backRank is the piece order on ranks 1 and 8, files a to h.
var backRank = []chess.Kind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// StandardSetup returns the placements of the standard starting position.
func StandardSetup() []Placement {
	placements := make([]Placement, 0, 4*chess.BoardSize)
	for i, kind := range backRank {
		file := string(rune(chess.ColBase + i))
		placements = append(placements,
			Placement{Square: file + "1", Kind: kind, Colour: chess.White},
			Placement{Square: file + "2", Kind: chess.Pawn, Colour: chess.White},
			Placement{Square: file + "8", Kind: kind, Colour: chess.Black},
			Placement{Square: file + "7", Kind: chess.Pawn, Colour: chess.Black},
		)
	}
	return placements
}

// initialSetup places the sixteen pieces of each side.
func (m *Match) initialSetup() {
	for _, pl := range StandardSetup() {
		if err := m.placeNewPiece(pl); err != nil {
			panic(fmt.Sprintf("standard setup: %v", err))
		}
	}
}

// placeNewPiece creates a piece, puts it on the board and registers it as live.
func (m *Match) placeNewPiece(pl Placement) error {
	pos, err := chess.ParseSquare(pl.Square)
	if err != nil {
		return err
	}
	if pl.Kind == chess.NoKind {
		return fmt.Errorf("placement at %s has no piece kind: %w", pl.Square, errors.ErrInvalidConfig)
	}
	piece := chess.NewPiece(pl.Kind, pl.Colour)
	piece.MoveCount = pl.MoveCount
	if err := m.board.PlacePiece(piece, pos); err != nil {
		return err
	}
	m.piecesOnBoard = append(m.piecesOnBoard, piece)
	return nil
}

// countKind counts colour's live pieces of the given kind.
func (m *Match) countKind(colour chess.Colour, kind chess.Kind) int {
	n := 0
	for _, p := range m.piecesOnBoard {
		if p.Colour == colour && p.Kind == kind {
			n++
		}
	}
	return n
}
