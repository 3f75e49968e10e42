package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// Column offsets from the king for the two castling options.
const (
	kingsideRookOffset  = 3
	queensideRookOffset = -4
)

// castlingMoves marks the king-side (column+2) and queen-side (column-2)
// castling targets. Castling needs an unmoved king that is not in check, a
// same-colour rook at the expected square and empty squares between them.
// The rook's own move count is only consulted when ctx.RequireUnmovedRook is set.
func castlingMoves(board *chess.Board, king *chess.Piece, ctx MoveContext, m *chess.MoveMatrix) {
	if king.MoveCount != 0 || ctx.KingInCheck {
		return
	}

	row, col := king.Pos.Row, king.Pos.Col
	for _, offset := range []int{kingsideRookOffset, queensideRookOffset} {
		rookSq := chess.Pos(row, col+offset)
		if !isCastlingRook(board.PieceAt(rookSq), king, ctx) {
			continue
		}
		if isRowClear(board, row, col, rookSq.Col) {
			m.Set(chess.Pos(row, col+2*sign(offset)))
		}
	}
}

// isCastlingRook reports whether p is a rook the king may castle with.
func isCastlingRook(p *chess.Piece, king *chess.Piece, ctx MoveContext) bool {
	if p == nil || p.Kind != chess.Rook || p.Colour != king.Colour {
		return false
	}
	return !ctx.RequireUnmovedRook || p.MoveCount == 0
}

// castleRookSquares returns the rook's squares for a king move from source to
// target, and false when the move is not a castling move.
func castleRookSquares(piece *chess.Piece, source, target chess.Position) (from, to chess.Position, ok bool) {
	if piece.Kind != chess.King {
		return from, to, false
	}
	switch target.Col - source.Col {
	case 2:
		return chess.Pos(source.Row, source.Col+kingsideRookOffset), chess.Pos(source.Row, source.Col+1), true
	case -2:
		return chess.Pos(source.Row, source.Col+queensideRookOffset), chess.Pos(source.Row, source.Col-1), true
	}
	return from, to, false
}
