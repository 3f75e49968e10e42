package engine

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// movesFor generates the piece's raw moves with the current match context.
func (m *Match) movesFor(piece *chess.Piece) chess.MoveMatrix {
	ctx := MoveContext{
		EnPassant:          m.enPassantVulnerable,
		RequireUnmovedRook: m.rules.RequireUnmovedRook,
	}
	if piece.Kind == chess.King {
		ctx.KingInCheck = m.IsInCheck(piece.Colour)
	}
	return PieceMoves(m.board, piece, ctx)
}

// attackContext is used when generating moves only to find attacked squares.
// Castling never lands on an occupied square, so it is switched off.
func (m *Match) attackContext() MoveContext {
	return MoveContext{EnPassant: m.enPassantVulnerable, KingInCheck: true}
}

// piecesOf returns colour's live pieces. The slice is a copy, so callers may
// apply and undo moves while ranging over it.
func (m *Match) piecesOf(colour chess.Colour) []*chess.Piece {
	return filterColour(m.piecesOnBoard, colour)
}

// king returns colour's king. A missing king means the match state is corrupt.
func (m *Match) king(colour chess.Colour) *chess.Piece {
	for _, p := range m.piecesOnBoard {
		if p.Colour == colour && p.Kind == chess.King {
			return p
		}
	}
	panic(fmt.Sprintf("there is no %v king on the board", colour))
}

// place puts a piece on the board; the controller only places on squares it has just vacated.
func (m *Match) place(piece *chess.Piece, p chess.Position) {
	if err := m.board.PlacePiece(piece, p); err != nil {
		panic(fmt.Sprintf("placing %v: %v", piece, err))
	}
}

// capture moves a piece from the live collection to the captured collection.
func (m *Match) capture(piece *chess.Piece) {
	m.piecesOnBoard = deletePiece(m.piecesOnBoard, piece)
	m.capturedPieces = append(m.capturedPieces, piece)
}

// release moves a piece from the captured collection back to the live collection.
func (m *Match) release(piece *chess.Piece) {
	m.capturedPieces = deletePiece(m.capturedPieces, piece)
	m.piecesOnBoard = append(m.piecesOnBoard, piece)
}

// deletePiece deletes piece from pieces, keeping the order of the rest.
func deletePiece(pieces []*chess.Piece, piece *chess.Piece) []*chess.Piece {
	for i, p := range pieces {
		if p == piece {
			return append(pieces[:i], pieces[i+1:]...)
		}
	}
	return pieces
}

// moveError builds a MoveError with the match's turn context.
func (m *Match) moveError(err error, from chess.Position, to *chess.Position, reason string) *errors.MoveError {
	me := &errors.MoveError{
		Err:    err,
		From:   from.String(),
		Turn:   m.turn,
		Player: m.currentPlayer.String(),
		Reason: reason,
	}
	if to != nil {
		me.To = to.String()
	}
	return me
}
