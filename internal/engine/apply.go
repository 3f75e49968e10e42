package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// apply moves the piece on source to target and returns the piece it
// captured, if any. Castling also moves the rook and en passant removes the
// pawn behind the target. The move is fully reversible with undo.
func (m *Match) apply(source, target chess.Position) *chess.Piece {
	moving := m.board.RemovePiece(source)
	moving.MoveCount++
	captured := m.board.RemovePiece(target)
	m.place(moving, target)
	if captured != nil {
		m.capture(captured)
	}

	if rookFrom, rookTo, ok := castleRookSquares(moving, source, target); ok {
		if rook := m.board.RemovePiece(rookFrom); rook != nil {
			m.place(rook, rookTo)
			rook.MoveCount++
		}
	}

	if isEnPassant(moving, source, target, captured) {
		victimSq := target.Offset(-chess.Forward(moving.Colour), 0)
		if victim := m.board.RemovePiece(victimSq); victim != nil {
			captured = victim
			m.capture(captured)
		}
	}

	return captured
}

// undo reverses apply(source, target) given the piece apply returned.
func (m *Match) undo(source, target chess.Position, captured *chess.Piece) {
	moving := m.board.RemovePiece(target)
	moving.MoveCount--
	m.place(moving, source)

	if rookFrom, rookTo, ok := castleRookSquares(moving, source, target); ok {
		if rook := m.board.RemovePiece(rookTo); rook != nil {
			m.place(rook, rookFrom)
			rook.MoveCount--
		}
	}

	if captured != nil {
		// A captured piece keeps the square it was taken on: the target for a
		// normal capture, the square beside the source for en passant.
		m.place(captured, captured.Pos)
		m.release(captured)
	}
}
