package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// pawnMoves marks the pawn's forward pushes, diagonal captures and en passant captures.
func pawnMoves(board *chess.Board, pawn *chess.Piece, ctx MoveContext, m *chess.MoveMatrix) {
	dir := chess.Forward(pawn.Colour)

	// Single push, then double push from the starting row
	one := pawn.Pos.Offset(dir, 0)
	if board.PositionExists(one) && !board.IsOccupied(one) {
		m.Set(one)
		two := one.Offset(dir, 0)
		if pawn.Pos.Row == chess.HomeRow(pawn.Colour) && board.PositionExists(two) && !board.IsOccupied(two) {
			m.Set(two)
		}
	}

	// Captures
	for _, dc := range []int{-1, 1} {
		diag := pawn.Pos.Offset(dir, dc)
		if board.PositionExists(diag) && pawn.IsOpponent(board.PieceAt(diag)) {
			m.Set(diag)
		}
	}

	// En passant
	if ctx.EnPassant == nil || pawn.Pos.Row != enPassantRow(pawn.Colour) {
		return
	}
	for _, dc := range []int{-1, 1} {
		side := pawn.Pos.Offset(0, dc)
		if !board.PositionExists(side) {
			continue
		}
		victim := board.PieceAt(side)
		if victim == ctx.EnPassant && pawn.IsOpponent(victim) {
			m.Set(side.Offset(dir, 0))
		}
	}
}

// enPassantRow returns the row a pawn must stand on to capture en passant:
// row 3 (rank 5) for White, row 4 (rank 4) for Black.
func enPassantRow(colour chess.Colour) int {
	return chess.HomeRow(colour.Opposite()) + 2*chess.Forward(colour.Opposite())
}

// isDoublePush reports whether a pawn move from source to target advanced two rows.
func isDoublePush(piece *chess.Piece, source, target chess.Position) bool {
	return piece.Kind == chess.Pawn && target.Row-source.Row == 2*chess.Forward(piece.Colour)
}

// isEnPassant reports whether a pawn move changed column without landing on a piece.
func isEnPassant(piece *chess.Piece, source, target chess.Position, capturedOnTarget *chess.Piece) bool {
	return piece.Kind == chess.Pawn && source.Col != target.Col && capturedOnTarget == nil
}
