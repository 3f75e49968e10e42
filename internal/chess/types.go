// Package chess provides core chess types: colours, piece kinds, piece records,
// board positions and the board that holds them.
package chess

import "strings"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row step a pawn of the colour advances by.
// Row 0 is rank 8, so White moves toward decreasing rows.
func Forward(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// HomeRow returns the row a colour's pawns start on.
func HomeRow(colour Colour) int {
	if colour == White {
		return BoardSize - 2
	}
	return 1
}

// LastRow returns the row on which a pawn of the colour promotes.
func LastRow(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// ParseKind converts a piece code to a Kind. Both "N" and "H" name a knight.
func ParseKind(code string) (Kind, bool) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "P":
		return Pawn, true
	case "N", "H":
		return Knight, true
	case "B":
		return Bishop, true
	case "R":
		return Rook, true
	case "Q":
		return Queen, true
	case "K":
		return King, true
	}
	return NoKind, false
}

// IsPromotionKind reports whether a pawn may promote to k.
func IsPromotionKind(k Kind) bool {
	switch k {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// BoardSize is the number of rows and columns of a standard board.
const BoardSize = 8
