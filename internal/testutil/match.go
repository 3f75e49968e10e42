package testutil

import (
	"sort"
	"strconv"
	"strings"
	"testing"
	"unicode"

	"github.com/davecgh/go-spew/spew"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/engine"
)

// dumper prints match state deterministically for failure messages.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

// Dump returns a readable, address-free rendering of v.
func Dump(v interface{}) string {
	return dumper.Sdump(v)
}

// matchSummary is the part of a match worth printing when a test fails.
type matchSummary struct {
	Turn          int
	CurrentPlayer string
	Check         bool
	CheckMate     bool
	EnPassant     string
	Promoted      string
	Board         map[string]string // square -> piece, e.g. "e1" -> "White King #0"
	Captured      []string
}

// DumpMatch renders the state of m for a failure message.
func DumpMatch(m *engine.Match) string {
	sum := matchSummary{
		Turn:          m.Turn(),
		CurrentPlayer: m.CurrentPlayer().String(),
		Check:         m.Check(),
		CheckMate:     m.CheckMate(),
		Board:         make(map[string]string),
	}
	if p := m.EnPassantVulnerable(); p != nil {
		sum.EnPassant = p.Pos.String()
	}
	if p := m.Promoted(); p != nil {
		sum.Promoted = p.Pos.String()
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range m.OnBoard(colour) {
			sum.Board[p.Pos.String()] = describe(p)
		}
		for _, p := range m.Captured(colour) {
			sum.Captured = append(sum.Captured, describe(p))
		}
	}
	sort.Strings(sum.Captured)
	return Dump(sum)
}

func describe(p *chess.Piece) string {
	return p.Colour.String() + " " + p.Kind.String() + " #" + strconv.Itoa(p.MoveCount)
}

// ParseMove parses coordinate notation such as "e2e4" into a move.
func ParseMove(s string) (chess.Move, bool) {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return chess.Move{}, false
	}
	from, err := chess.ParseSquare(s[:2])
	if err != nil {
		return chess.Move{}, false
	}
	to, err := chess.ParseSquare(s[2:])
	if err != nil {
		return chess.Move{}, false
	}
	return chess.Move{From: from, To: to}, true
}

// MustPlay performs each move in coordinate notation in order.
// It calls t.Fatal on the first malformed or rejected move.
func MustPlay(t *testing.T, m *engine.Match, moves ...string) {
	t.Helper()
	for i, s := range moves {
		mv, ok := ParseMove(s)
		if !ok {
			t.Fatalf("move %d: malformed move %q", i+1, s)
		}
		if _, err := m.PerformMove(mv.From, mv.To); err != nil {
			t.Fatalf("move %d (%s): %v\nmatch:\n%s", i+1, s, err, DumpMatch(m))
		}
	}
}

// Diagram converts eight rows of text, rank 8 first, into placements.
// Uppercase letters are White, lowercase Black, and '.' an empty square.
// Spaces are ignored, so rows may be written "r . . . k . . r".
func Diagram(rows ...string) []engine.Placement {
	if len(rows) != chess.BoardSize {
		panic("testutil: a diagram needs 8 rows")
	}
	var placements []engine.Placement
	for r, row := range rows {
		col := 0
		for _, ch := range row {
			if ch == ' ' {
				continue
			}
			if ch != '.' {
				kind, ok := chess.ParseKind(string(ch))
				if !ok {
					panic("testutil: unknown piece letter " + string(ch))
				}
				colour := chess.White
				if unicode.IsLower(ch) {
					colour = chess.Black
				}
				placements = append(placements, engine.Placement{
					Square: chess.Pos(r, col).String(),
					Kind:   kind,
					Colour: colour,
				})
			}
			col++
		}
		if col != chess.BoardSize {
			panic("testutil: diagram row " + row + " does not have 8 squares")
		}
	}
	return placements
}

// MustNewMatch builds a match from a diagram, calling t.Fatal if the layout is rejected.
func MustNewMatch(t *testing.T, rows []string, opts ...engine.Option) *engine.Match {
	t.Helper()
	m, err := engine.NewMatchFromSetup(Diagram(rows...), opts...)
	if err != nil {
		t.Fatalf("NewMatchFromSetup() error: %v", err)
	}
	return m
}

// Squares returns the sorted algebraic names of the squares marked in mm.
func Squares(mm chess.MoveMatrix) []string {
	var out []string
	for _, p := range mm.Squares() {
		out = append(out, p.String())
	}
	sort.Strings(out)
	return out
}
