package engine

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// boardWith places pieces written as "Kd4" (White) or "kd4" (Black).
func boardWith(t *testing.T, codes ...string) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for _, s := range codes {
		p := parsePiece(t, s)
		if err := b.PlacePiece(p, chess.MustParseSquare(s[1:])); err != nil {
			t.Fatalf("PlacePiece(%s) error: %v", s, err)
		}
	}
	return b
}

func parsePiece(t *testing.T, s string) *chess.Piece {
	t.Helper()
	kind, ok := chess.ParseKind(s[:1])
	if !ok {
		t.Fatalf("bad piece code %q", s)
	}
	colour := chess.White
	if s[0] >= 'a' && s[0] <= 'z' {
		colour = chess.Black
	}
	return chess.NewPiece(kind, colour)
}

func squareNames(m chess.MoveMatrix) []string {
	var out []string
	for _, p := range m.Squares() {
		out = append(out, p.String())
	}
	sort.Strings(out)
	return out
}

func sorted(s ...string) []string {
	sort.Strings(s)
	return s
}

func TestPieceMoves_EmptyBoardCounts(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"Rd4", 14},
		{"Ra1", 14},
		{"Bd4", 13},
		{"Ba1", 7},
		{"Qd4", 27},
		{"Qa1", 21},
		{"Nd4", 8},
		{"Na1", 2},
		{"Nb1", 3},
		{"Kd4", 8},
		{"Ka1", 3},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			b := boardWith(t, tt.code)
			piece := b.PieceAt(chess.MustParseSquare(tt.code[1:]))
			moves := PieceMoves(b, piece, MoveContext{})
			if got := moves.Count(); got != tt.want {
				t.Errorf("PieceMoves(%s).Count() = %d, want %d (%s)", tt.code, got, tt.want, moves.String())
			}
		})
	}
}

func TestPieceMoves_Sliding(t *testing.T) {
	tests := []struct {
		name   string
		pieces []string
		from   string
		want   []string
	}{
		{
			name:   "rook stops before own piece and on opponent",
			pieces: []string{"Rd4", "Pd6", "nf4"},
			from:   "d4",
			want:   sorted("d5", "d3", "d2", "d1", "e4", "f4", "c4", "b4", "a4"),
		},
		{
			name:   "bishop blocked on every diagonal",
			pieces: []string{"Bc1", "Pb2", "Pd2"},
			from:   "c1",
			want:   nil,
		},
		{
			name:   "queen captures adjacent opponents only",
			pieces: []string{"qe5", "Pe4", "Pe6", "Pd5", "Pf5", "Pd4", "Pf4", "Pd6", "Pf6"},
			from:   "e5",
			want:   sorted("e4", "e6", "d5", "f5", "d4", "f4", "d6", "f6"),
		},
		{
			name:   "knight jumps over pieces",
			pieces: []string{"Nb1", "Pa2", "Pb2", "Pc2", "Pd2", "pa3"},
			from:   "b1",
			want:   sorted("a3", "c3"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(t, tt.pieces...)
			got := squareNames(PieceMoves(b, b.PieceAt(chess.MustParseSquare(tt.from)), MoveContext{}))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PieceMoves(%s) mismatch (-want +got):\n%s", tt.from, diff)
			}
		})
	}
}

func TestPieceMoves_Pawn(t *testing.T) {
	tests := []struct {
		name   string
		pieces []string
		from   string
		want   []string
	}{
		{"white double push from home row", []string{"Pe2"}, "e2", sorted("e3", "e4")},
		{"white single push off home row", []string{"Pe3"}, "e3", []string{"e4"}},
		{"black double push from home row", []string{"pd7"}, "d7", sorted("d6", "d5")},
		{"blocked directly", []string{"Pe2", "pe3"}, "e2", nil},
		{"double push blocked", []string{"Pe2", "ne4"}, "e2", []string{"e3"}},
		{"captures diagonally", []string{"Pe4", "pd5", "Pf5", "pe5"}, "e4", []string{"d5"}},
		{"black captures toward rank 1", []string{"pe5", "Nd4", "Nf4"}, "e5", sorted("d4", "e4", "f4")},
		{"edge file", []string{"Pa2", "pb3"}, "a2", sorted("a3", "a4", "b3")},
		{"last row has no moves", []string{"Pa8"}, "a8", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(t, tt.pieces...)
			got := squareNames(PieceMoves(b, b.PieceAt(chess.MustParseSquare(tt.from)), MoveContext{}))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("pawn moves from %s mismatch (-want +got):\n%s", tt.from, diff)
			}
		})
	}
}

func TestPieceMoves_EnPassant(t *testing.T) {
	b := boardWith(t, "Pe5", "pd5", "pf5")
	pawn := b.PieceAt(chess.MustParseSquare("e5"))
	victim := b.PieceAt(chess.MustParseSquare("d5"))

	got := squareNames(PieceMoves(b, pawn, MoveContext{EnPassant: victim}))
	if diff := cmp.Diff(sorted("d6", "e6"), got); diff != "" {
		t.Errorf("en passant mismatch (-want +got):\n%s", diff)
	}

	got = squareNames(PieceMoves(b, pawn, MoveContext{}))
	if diff := cmp.Diff([]string{"e6"}, got); diff != "" {
		t.Errorf("no vulnerable pawn mismatch (-want +got):\n%s", diff)
	}

	// A vulnerable pawn beside a pawn on the wrong row is not capturable.
	b = boardWith(t, "Pe4", "pd4")
	pawn = b.PieceAt(chess.MustParseSquare("e4"))
	victim = b.PieceAt(chess.MustParseSquare("d4"))
	got = squareNames(PieceMoves(b, pawn, MoveContext{EnPassant: victim}))
	if diff := cmp.Diff([]string{"e5"}, got); diff != "" {
		t.Errorf("wrong row mismatch (-want +got):\n%s", diff)
	}
}

func TestPieceMoves_Castling(t *testing.T) {
	tests := []struct {
		name   string
		pieces []string
		ctx    MoveContext
		moved  string // square of a piece to mark as moved
		want   []string
	}{
		{
			name:   "both sides open",
			pieces: []string{"Ke1", "Ra1", "Rh1"},
			want:   sorted("d1", "d2", "e2", "f2", "f1", "g1", "c1"),
		},
		{
			name:   "king in check",
			pieces: []string{"Ke1", "Ra1", "Rh1"},
			ctx:    MoveContext{KingInCheck: true},
			want:   sorted("d1", "d2", "e2", "f2", "f1"),
		},
		{
			name:   "queen side blocked by knight on b1",
			pieces: []string{"Ke1", "Ra1", "Rh1", "Nb1"},
			want:   sorted("d1", "d2", "e2", "f2", "f1", "g1"),
		},
		{
			name:   "king has moved",
			pieces: []string{"Ke1", "Ra1", "Rh1"},
			moved:  "e1",
			want:   sorted("d1", "d2", "e2", "f2", "f1"),
		},
		{
			name:   "moved rook allowed by default",
			pieces: []string{"Ke1", "Ra1", "Rh1"},
			moved:  "h1",
			want:   sorted("d1", "d2", "e2", "f2", "f1", "g1", "c1"),
		},
		{
			name:   "moved rook rejected when required unmoved",
			pieces: []string{"Ke1", "Ra1", "Rh1"},
			ctx:    MoveContext{RequireUnmovedRook: true},
			moved:  "h1",
			want:   sorted("d1", "d2", "e2", "f2", "f1", "c1"),
		},
		{
			name:   "opponent rook does not count",
			pieces: []string{"ke8", "ra8", "Rh8"},
			want:   sorted("d8", "d7", "e7", "f7", "f8", "c8"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(t, tt.pieces...)
			if tt.moved != "" {
				b.PieceAt(chess.MustParseSquare(tt.moved)).MoveCount = 1
			}
			king := b.PieceAt(chess.MustParseSquare(tt.pieces[0][1:]))
			got := squareNames(PieceMoves(b, king, tt.ctx))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("king moves mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPieceMoves_DoesNotModifyBoard(t *testing.T) {
	b := boardWith(t, "Ke1", "Ra1", "Rh1", "Pe2", "pd3", "Qd1")
	before := b.Snapshot()
	for _, sq := range []string{"e1", "a1", "h1", "e2", "d3", "d1"} {
		PieceMoves(b, b.PieceAt(chess.MustParseSquare(sq)), MoveContext{})
	}
	if diff := cmp.Diff(before, b.Snapshot()); diff != "" {
		t.Errorf("board changed (-before +after):\n%s", diff)
	}
}
