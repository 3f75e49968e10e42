package engine

import (
	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// ResolvePromotion replaces the piece from the last promotion with the kind
// named by code ("B", "N" or "H", "R", "Q") and returns a copy of the new
// piece. An unrecognised code keeps the current piece, which stays pending.
// Check and checkmate are re-evaluated for the replacement.
func (m *Match) ResolvePromotion(code string) (*chess.Piece, error) {
	if m.promoted == nil {
		return nil, errors.Wrap(errors.ErrNoPendingPromotion, "there is no piece to be promoted")
	}

	kind, ok := chess.ParseKind(code)
	if !ok || !chess.IsPromotionKind(kind) {
		return m.promoted.Copy(), nil
	}

	piece := m.replacePromotedPiece(kind)
	m.promoted = nil
	m.conclude(piece.Colour)
	return piece.Copy(), nil
}

// replacePromotedPiece swaps the pending piece for a new piece of kind with a
// zero move count. The old piece leaves the match entirely.
func (m *Match) replacePromotedPiece(kind chess.Kind) *chess.Piece {
	pos := m.promoted.Pos
	old := m.board.RemovePiece(pos)
	m.piecesOnBoard = deletePiece(m.piecesOnBoard, old)

	piece := chess.NewPiece(kind, old.Colour)
	m.place(piece, pos)
	m.piecesOnBoard = append(m.piecesOnBoard, piece)
	return piece
}

// defaultPromotion returns the configured default, falling back to a queen.
func (m *Match) defaultPromotion() chess.Kind {
	if chess.IsPromotionKind(m.rules.DefaultPromotion) {
		return m.rules.DefaultPromotion
	}
	return chess.Queen
}
