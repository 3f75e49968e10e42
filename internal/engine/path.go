package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// Direction tables as {row, col} steps.
var (
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	allDirs      = append(append([][2]int{}, straightDirs...), diagonalDirs...)
	knightJumps  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// slide marks every square along each direction until the board edge,
// an own piece (excluded) or an opponent piece (included as a capture).
func slide(board *chess.Board, piece *chess.Piece, dirs [][2]int, m *chess.MoveMatrix) {
	for _, dir := range dirs {
		p := piece.Pos.Offset(dir[0], dir[1])
		for board.PositionExists(p) {
			target := board.PieceAt(p)
			if target != nil {
				if piece.IsOpponent(target) {
					m.Set(p)
				}
				break // Blocked
			}
			m.Set(p)
			p = p.Offset(dir[0], dir[1])
		}
	}
}

// step marks each single offset that lands on the board on an empty or opponent square.
func step(board *chess.Board, piece *chess.Piece, offsets [][2]int, m *chess.MoveMatrix) {
	for _, off := range offsets {
		p := piece.Pos.Offset(off[0], off[1])
		if board.PositionExists(p) && canMove(board, piece, p) {
			m.Set(p)
		}
	}
}

// canMove reports whether p is empty or held by an opponent.
func canMove(board *chess.Board, piece *chess.Piece, p chess.Position) bool {
	target := board.PieceAt(p)
	return target == nil || piece.IsOpponent(target)
}

// isRowClear reports whether every square on row strictly between columns from and to is empty.
func isRowClear(board *chess.Board, row, from, to int) bool {
	dir := sign(to - from)
	for c := from + dir; c != to; c += dir {
		if board.IsOccupied(chess.Pos(row, c)) {
			return false
		}
	}
	return true
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
