// Package hashing provides Zobrist position keys and a shared table of
// perft counts keyed by position and depth.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// Position is the match state that determines the legal move tree below it.
type Position interface {
	Pieces() chess.Grid
	CurrentPlayer() chess.Colour
	EnPassantVulnerable() *chess.Piece
}

const numSquares = chess.BoardSize * chess.BoardSize

// Zobrist keys, filled from a fixed seed so a position always hashes the same.
var (
	pieceKeys     [2][chess.King + 1][numSquares]uint64
	unmovedKeys   [numSquares]uint64 // Kings and rooks with a zero move count
	enPassantKeys [numSquares]uint64
	blackToMove   uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x5eed0fc4e55))
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = rng.Uint64()
			}
		}
	}
	for sq := 0; sq < numSquares; sq++ {
		unmovedKeys[sq] = rng.Uint64()
		enPassantKeys[sq] = rng.Uint64()
	}
	blackToMove = rng.Uint64()
}

// Hash computes the Zobrist key of a position. Move counts only contribute
// for kings and rooks, and only as moved or unmoved, since that is all
// castling reads.
func Hash(pos Position) uint64 {
	var h uint64

	grid := pos.Pieces()
	for row := range grid {
		for col, p := range grid[row] {
			if p == nil {
				continue
			}
			sq := squareIndex(chess.Pos(row, col))
			h ^= pieceKeys[p.Colour][p.Kind][sq]
			if (p.Kind == chess.King || p.Kind == chess.Rook) && p.MoveCount == 0 {
				h ^= unmovedKeys[sq]
			}
		}
	}

	if ep := pos.EnPassantVulnerable(); ep != nil {
		h ^= enPassantKeys[squareIndex(ep.Pos)]
	}

	if pos.CurrentPlayer() == chess.Black {
		h ^= blackToMove
	}

	return h
}

func squareIndex(p chess.Position) int {
	return p.Row*chess.BoardSize + p.Col
}
