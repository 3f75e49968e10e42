package processing

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	chesserrors "github.com/lgbarn/chessmatch-go/internal/errors"
)

func mustScript(t *testing.T, text string) []ScriptMove {
	t.Helper()
	moves, err := ReadScript(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ReadScript() error: %v", err)
	}
	return moves
}

func TestParseScriptMove(t *testing.T) {
	tests := []struct {
		line      string
		from, to  string
		promotion string
		wantErr   bool
	}{
		{"e2e4", "e2", "e4", "", false},
		{"e2 e4", "e2", "e4", "", false},
		{"  G1  F3 ", "g1", "f3", "", false},
		{"b7b8=N", "b7", "b8", "n", false},
		{"b7 b8 q", "b7", "b8", "q", false},
		{"b7b8h", "b7", "b8", "h", false},
		{"e2", "", "", "", true},
		{"z2e4", "", "", "", true},
		{"e2e9", "", "", "", true},
		{"b7b8=K", "", "", "", true},
		{"b7b8x", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseScriptMove(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseScriptMove(%q) = %+v, want error", tt.line, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseScriptMove(%q) error: %v", tt.line, err)
			}
			if got.From.String() != tt.from || got.To.String() != tt.to {
				t.Errorf("ParseScriptMove(%q) = %v-%v, want %s-%s", tt.line, got.From, got.To, tt.from, tt.to)
			}
			if got.Promotion != tt.promotion {
				t.Errorf("ParseScriptMove(%q).Promotion = %q, want %q", tt.line, got.Promotion, tt.promotion)
			}
		})
	}
}

func TestReadScript(t *testing.T) {
	text := "# opening\ne2e4\n\n  e7 e5\n# reply\ng1f3\n"
	moves := mustScript(t, text)
	if len(moves) != 3 {
		t.Fatalf("ReadScript() = %d moves, want 3", len(moves))
	}
	if moves[1].Text != "e7 e5" {
		t.Errorf("moves[1].Text = %q, want %q", moves[1].Text, "e7 e5")
	}

	_, err := ReadScript(strings.NewReader("e2e4\nnonsense\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("ReadScript() error = %v, want line 2 error", err)
	}
	if !stderrors.Is(err, chesserrors.ErrInvalidSquare) {
		t.Errorf("ReadScript() error = %v, want ErrInvalidSquare", err)
	}
}

func TestReplayFoolsMate(t *testing.T) {
	m := engine.NewMatch()
	result := Replay(m, mustScript(t, "f2f3\ne7e5\ng2g4\nd8h4\n"))

	if !result.Valid {
		t.Fatalf("Replay() invalid: %s", result.ErrorMsg)
	}
	if result.Plies != 4 {
		t.Errorf("Plies = %d, want 4", result.Plies)
	}
	if !result.CheckMate || !m.CheckMate() {
		t.Error("Replay() should end in checkmate")
	}
	if result.Checks != 1 {
		t.Errorf("Checks = %d, want 1", result.Checks)
	}
}

func TestReplayIllegalMove(t *testing.T) {
	m := engine.NewMatch()
	result := Replay(m, mustScript(t, "e2e4\ne7e5\ne1e3\nd7d5\n"))

	if result.Valid {
		t.Fatal("Replay() should reject e1e3")
	}
	if result.ErrorPly != 3 || result.Plies != 2 {
		t.Errorf("ErrorPly = %d, Plies = %d, want 3 and 2", result.ErrorPly, result.Plies)
	}
	if !stderrors.Is(result.Err, chesserrors.ErrInvalidSelection) {
		t.Errorf("Err = %v, want ErrInvalidSelection", result.Err)
	}
	if !strings.Contains(result.ErrorMsg, "ply 3") || !strings.Contains(result.ErrorMsg, "e1e3") {
		t.Errorf("ErrorMsg = %q", result.ErrorMsg)
	}
	if m.CurrentPlayer() != chess.White || m.Turn() != 3 {
		t.Errorf("match after rejected move: player %v turn %d, want White turn 3", m.CurrentPlayer(), m.Turn())
	}
}

func TestReplayCapturesAndPromotion(t *testing.T) {
	m := engine.NewMatch()
	script := `
a2a4
b7b5
a4b5
a7a6
b5a6
c8b7
a6b7
h7h6
b7a8=N
`
	result := Replay(m, mustScript(t, script))
	if !result.Valid {
		t.Fatalf("Replay() invalid: %s", result.ErrorMsg)
	}
	if result.Captures != 4 {
		t.Errorf("Captures = %d, want 4", result.Captures)
	}
	if result.Promotions != 1 {
		t.Errorf("Promotions = %d, want 1", result.Promotions)
	}
	piece := m.PieceAt(chess.MustParseSquare("a8"))
	if piece == nil || piece.Kind != chess.Knight || piece.Colour != chess.White {
		t.Errorf("a8 = %v, want white knight", piece)
	}
	if m.Promoted() != nil {
		t.Errorf("Promoted() = %v, want nil after choice", m.Promoted())
	}
}

func TestReplayPendingPromotion(t *testing.T) {
	m := engine.NewMatch()
	result := Replay(m, mustScript(t, "a2a4\nb7b5\na4b5\na7a6\nb5a6\nc8b7\na6b7\nh7h6\nb7a8\n"))
	if !result.Valid {
		t.Fatalf("Replay() invalid: %s", result.ErrorMsg)
	}
	p := m.Promoted()
	if p == nil || p.Kind != chess.Queen {
		t.Errorf("Promoted() = %v, want pending queen", p)
	}
}
