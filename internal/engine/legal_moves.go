// Package engine implements the chess rules engine: per-piece move generation,
// the match controller, reversible move application and check detection.
package engine

import (
	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// MoveContext carries the match state a move-generation rule may read.
type MoveContext struct {
	// EnPassant is the pawn that advanced two rows on the previous move, if any.
	EnPassant *chess.Piece

	// KingInCheck disables castling for the king being generated.
	KingInCheck bool

	// RequireUnmovedRook additionally gates castling on the rook's move count.
	RequireUnmovedRook bool
}

// PieceMoves returns the destinations a piece may reach by its own movement
// rule. It does not consider whether the move leaves the mover's king in
// check, and it never modifies the board.
func PieceMoves(board *chess.Board, piece *chess.Piece, ctx MoveContext) chess.MoveMatrix {
	var m chess.MoveMatrix

	switch piece.Kind {
	case chess.Pawn:
		pawnMoves(board, piece, ctx, &m)

	case chess.Knight:
		step(board, piece, knightJumps, &m)

	case chess.Bishop:
		slide(board, piece, diagonalDirs, &m)

	case chess.Rook:
		slide(board, piece, straightDirs, &m)

	case chess.Queen:
		slide(board, piece, allDirs, &m)

	case chess.King:
		step(board, piece, allDirs, &m)
		castlingMoves(board, piece, ctx, &m)
	}

	return m
}

// LegalMoves returns the destinations of the piece on source that do not
// leave its own king in check.
func (m *Match) LegalMoves(source chess.Position) (chess.MoveMatrix, error) {
	piece := m.board.PieceAt(source)
	if piece == nil {
		return chess.MoveMatrix{}, m.moveError(errors.ErrInvalidSelection, source, nil, "there is no piece on source position")
	}
	return m.legalMovesFor(piece), nil
}

// legalMovesFor filters the piece's raw moves by trying each one.
func (m *Match) legalMovesFor(piece *chess.Piece) chess.MoveMatrix {
	var legal chess.MoveMatrix
	raw := m.movesFor(piece)
	source := piece.Pos
	for _, target := range raw.Squares() {
		captured := m.apply(source, target)
		exposed := m.IsInCheck(piece.Colour)
		m.undo(source, target, captured)
		if !exposed {
			legal.Set(target)
		}
	}
	return legal
}

// AllLegalMoves returns every legal move available to colour.
func (m *Match) AllLegalMoves(colour chess.Colour) []chess.Move {
	if m.checkMate {
		return nil
	}
	var moves []chess.Move
	for _, piece := range m.piecesOf(colour) {
		legal := m.legalMovesFor(piece)
		for _, target := range legal.Squares() {
			moves = append(moves, chess.Move{From: piece.Pos, To: target})
		}
	}
	return moves
}

// HasLegalMoves returns true if colour has at least one legal move.
func (m *Match) HasLegalMoves(colour chess.Colour) bool {
	for _, piece := range m.piecesOf(colour) {
		legal := m.legalMovesFor(piece)
		if legal.Any() {
			return true
		}
	}
	return false
}
