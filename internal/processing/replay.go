// Package processing replays and validates scripted move lists against a match.
package processing

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/engine"
)

// ScriptMove is one line of a move script: a source and target square and
// an optional promotion code.
type ScriptMove struct {
	Text      string // Line as written, for error messages
	From, To  chess.Position
	Promotion string
}

// ValidationResult holds the result of replaying a move script.
type ValidationResult struct {
	Valid    bool
	Plies    int // Moves played before an error or the end of the script
	ErrorPly int
	ErrorMsg string
	Err      error

	Captures   int
	Promotions int
	Checks     int
	CheckMate  bool
}

// ReadScript reads a move script. Each non-blank line holds one move such as
// "e2e4", "e2 e4", "b7b8=N" or "b7 b8 N". Lines starting with '#' are comments.
func ReadScript(r io.Reader) ([]ScriptMove, error) {
	var moves []ScriptMove
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		mv, err := ParseScriptMove(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		moves = append(moves, mv)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return moves, nil
}

// ParseScriptMove parses a single script line.
func ParseScriptMove(line string) (ScriptMove, error) {
	compact := strings.ToLower(strings.Join(strings.Fields(line), ""))
	if len(compact) < 4 {
		return ScriptMove{}, fmt.Errorf("move %q: want source and target squares", line)
	}

	from, err := chess.ParseSquare(compact[:2])
	if err != nil {
		return ScriptMove{}, err
	}
	to, err := chess.ParseSquare(compact[2:4])
	if err != nil {
		return ScriptMove{}, err
	}

	promo := strings.TrimPrefix(compact[4:], "=")
	if promo != "" {
		if kind, ok := chess.ParseKind(promo); !ok || !chess.IsPromotionKind(kind) {
			return ScriptMove{}, fmt.Errorf("move %q: bad promotion code %q", line, promo)
		}
	}
	return ScriptMove{Text: line, From: from, To: to, Promotion: promo}, nil
}

// Replay plays moves on m in order and stops at the first rejected move.
// A promotion code is applied with ResolvePromotion right after its move.
func Replay(m *engine.Match, moves []ScriptMove) *ValidationResult {
	result := &ValidationResult{Valid: true}

	for i, mv := range moves {
		ply := i + 1
		promoting := isPromotion(m.PieceAt(mv.From), mv.To)
		captured, err := m.PerformMove(mv.From, mv.To)
		if err != nil {
			result.fail(ply, mv, err)
			return result
		}

		if mv.Promotion != "" {
			if _, err := m.ResolvePromotion(mv.Promotion); err != nil {
				result.fail(ply, mv, err)
				return result
			}
		}
		if promoting {
			result.Promotions++
		}
		if captured != nil {
			result.Captures++
		}
		if m.Check() {
			result.Checks++
		}
		result.Plies = ply
	}

	result.CheckMate = m.CheckMate()
	return result
}

func isPromotion(piece *chess.Piece, target chess.Position) bool {
	return piece != nil && piece.Kind == chess.Pawn && target.Row == chess.LastRow(piece.Colour)
}

func (r *ValidationResult) fail(ply int, mv ScriptMove, err error) {
	r.Valid = false
	r.ErrorPly = ply
	r.Err = err
	r.ErrorMsg = fmt.Sprintf("illegal move at ply %d: %s (%v)", ply, mv.Text, err)
}
