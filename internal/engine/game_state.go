package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// IsCheckmate returns true if colour is in check and no move of any of its
// pieces resolves the check. Every candidate is applied, tested and undone,
// so the match is unchanged when it returns.
func (m *Match) IsCheckmate(colour chess.Colour) bool {
	if !m.IsInCheck(colour) {
		return false
	}

	ctx := MoveContext{
		EnPassant:          m.enPassantVulnerable,
		KingInCheck:        true,
		RequireUnmovedRook: m.rules.RequireUnmovedRook,
	}
	for _, piece := range m.piecesOf(colour) {
		source := piece.Pos
		moves := PieceMoves(m.board, piece, ctx)
		for _, target := range moves.Squares() {
			captured := m.apply(source, target)
			stillInCheck := m.IsInCheck(colour)
			m.undo(source, target, captured)
			if !stillInCheck {
				return false
			}
		}
	}
	return true
}
