package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// IsInCheck returns true if any opponent piece can move onto colour's king.
// It panics if colour has no king.
func (m *Match) IsInCheck(colour chess.Colour) bool {
	return m.isSquareAttacked(m.king(colour).Pos, colour.Opposite())
}

// isSquareAttacked returns true if a live piece of byColour has p among its raw moves.
func (m *Match) isSquareAttacked(p chess.Position, byColour chess.Colour) bool {
	ctx := m.attackContext()
	for _, piece := range m.piecesOf(byColour) {
		moves := PieceMoves(m.board, piece, ctx)
		if moves.Has(p) {
			return true
		}
	}
	return false
}
