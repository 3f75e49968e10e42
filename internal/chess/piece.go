package chess

import "unicode"

// Piece is the record kept for every piece in a match. Kind and Colour never
// change; Pos and MoveCount are maintained by the match controller.
// Pos keeps the last square a piece stood on after it is captured.
type Piece struct {
	Kind      Kind
	Colour    Colour
	Pos       Position
	MoveCount int
}

// NewPiece creates an unplaced piece with a zero move count.
func NewPiece(kind Kind, colour Colour) *Piece {
	return &Piece{Kind: kind, Colour: colour}
}

// IsOpponent reports whether other belongs to the opposing side.
func (p *Piece) IsOpponent(other *Piece) bool {
	return other != nil && other.Colour != p.Colour
}

// Letter returns the piece letter, uppercase for White and lowercase for Black.
func (p *Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black {
		return byte(unicode.ToLower(rune(l)))
	}
	return l
}

// String returns the piece letter.
func (p *Piece) String() string {
	if p == nil {
		return "-"
	}
	return string(p.Letter())
}

// Glyph returns the Unicode chess symbol for the piece.
func (p *Piece) Glyph() rune {
	white := []rune{' ', '♙', '♘', '♗', '♖', '♕', '♔'}
	black := []rune{' ', '♟', '♞', '♝', '♜', '♛', '♚'}
	if p.Kind < 0 || int(p.Kind) >= len(white) {
		return '?'
	}
	if p.Colour == White {
		return white[p.Kind]
	}
	return black[p.Kind]
}

// Copy returns an independent copy of the piece record.
func (p *Piece) Copy() *Piece {
	c := *p
	return &c
}
