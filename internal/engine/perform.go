package engine

import (
	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// PossibleMoves returns the raw destinations of the piece on source. The
// result is not filtered for self-check; PerformMove does that.
func (m *Match) PossibleMoves(source chess.Position) (chess.MoveMatrix, error) {
	piece := m.board.PieceAt(source)
	if piece == nil {
		return chess.MoveMatrix{}, m.moveError(errors.ErrInvalidSelection, source, nil, "there is no piece on source position")
	}
	return m.movesFor(piece), nil
}

// PerformMove validates and plays a move for the current player and returns
// a copy of the captured piece, if any. A rejected move leaves the match unchanged.
func (m *Match) PerformMove(source, target chess.Position) (*chess.Piece, error) {
	if m.checkMate {
		return nil, m.moveError(errors.ErrGameOver, source, &target, "the game ended in checkmate")
	}
	if err := m.validateSourcePosition(source); err != nil {
		return nil, err
	}
	if err := m.validateTargetPosition(source, target); err != nil {
		return nil, err
	}

	mover := m.currentPlayer
	captured := m.apply(source, target)
	if m.IsInCheck(mover) {
		m.undo(source, target, captured)
		return nil, m.moveError(errors.ErrIllegalSelfCheck, source, &target, "you can't put yourself in check")
	}

	moved := m.board.PieceAt(target)

	m.promoted = nil
	if moved.Kind == chess.Pawn && target.Row == chess.LastRow(moved.Colour) {
		m.promoted = moved
		m.promoted = m.replacePromotedPiece(m.defaultPromotion())
	}

	// Set before concluding so the opponent's checkmate search sees the en passant reply.
	if isDoublePush(moved, source, target) {
		m.enPassantVulnerable = moved
	} else {
		m.enPassantVulnerable = nil
	}

	m.moveTurn = m.turn
	m.conclude(mover)

	if captured != nil {
		return captured.Copy(), nil
	}
	return nil, nil
}

// conclude records the opponent's check status and either ends the game or
// passes the turn. It only depends on the turn the last move was played in,
// so it may run again after a promotion choice changes the position.
func (m *Match) conclude(mover chess.Colour) {
	opponent := mover.Opposite()
	m.check = m.IsInCheck(opponent)
	if m.IsCheckmate(opponent) {
		m.checkMate = true
		m.turn = m.moveTurn
		m.currentPlayer = mover
		return
	}
	m.checkMate = false
	m.turn = m.moveTurn + 1
	m.currentPlayer = opponent
}

func (m *Match) validateSourcePosition(source chess.Position) error {
	piece := m.board.PieceAt(source)
	if piece == nil {
		return m.moveError(errors.ErrInvalidSelection, source, nil, "there is no piece on source position")
	}
	if piece.Colour != m.currentPlayer {
		return m.moveError(errors.ErrInvalidSelection, source, nil, "the chosen piece is not yours")
	}
	moves := m.movesFor(piece)
	if !moves.Any() {
		return m.moveError(errors.ErrInvalidSelection, source, nil, "there is no possible move for the chosen piece")
	}
	return nil
}

func (m *Match) validateTargetPosition(source, target chess.Position) error {
	moves := m.movesFor(m.board.PieceAt(source))
	if !moves.Has(target) {
		return m.moveError(errors.ErrInvalidSelection, source, &target, "the chosen piece can't move to target position")
	}
	return nil
}
