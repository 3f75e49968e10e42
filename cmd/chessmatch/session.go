package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/output"
	"github.com/lgbarn/chessmatch-go/internal/processing"
)

const helpText = `  <from> <to>     move a piece, e.g. "e2 e4" or "e2e4"; add a code to promote, e.g. "b7b8=N"
  moves <square>  show the legal destinations of a piece
  promote <code>  change the last promotion: Q, R, B, N (or H)
  board           draw the board again
  help            show this text
  quit            leave the match
`

// commandKind identifies a console command.
type commandKind int

const (
	cmdNone commandKind = iota
	cmdMove
	cmdMoves
	cmdPromote
	cmdBoard
	cmdHelp
	cmdQuit
	cmdUnknown
)

// command is one parsed console line.
type command struct {
	kind     commandKind
	from, to chess.Position
	arg      string
}

// parseCommand parses a console line. Squares are validated here so the
// match only ever sees on-board positions.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{kind: cmdNone}, nil
	}

	switch fields[0] {
	case "quit", "exit":
		return command{kind: cmdQuit}, nil
	case "board":
		return command{kind: cmdBoard}, nil
	case "help", "?":
		return command{kind: cmdHelp}, nil
	case "promote":
		if len(fields) != 2 {
			return command{}, fmt.Errorf("usage: promote <Q|R|B|N>")
		}
		return command{kind: cmdPromote, arg: fields[1]}, nil
	case "moves":
		if len(fields) != 2 {
			return command{}, fmt.Errorf("usage: moves <square>")
		}
		from, err := chess.ParseSquare(fields[1])
		if err != nil {
			return command{}, err
		}
		return command{kind: cmdMoves, from: from}, nil
	}

	if !looksLikeMove(fields[0]) {
		return command{kind: cmdUnknown, arg: line}, nil
	}
	mv, err := processing.ParseScriptMove(line)
	if err != nil {
		return command{}, err
	}
	return command{kind: cmdMove, from: mv.From, to: mv.To, arg: mv.Promotion}, nil
}

// looksLikeMove reports whether a word starts like a square, e.g. "e2" or "z9".
func looksLikeMove(word string) bool {
	return len(word) >= 2 && word[0] >= 'a' && word[0] <= 'z' && word[1] >= '0' && word[1] <= '9'
}

// session drives one match from console input.
type session struct {
	cfg   *config.Config
	match *engine.Match
	out   output.MatchWriter
	name  string
}

func newSession(cfg *config.Config, m *engine.Match, name string) *session {
	return &session{
		cfg:   cfg,
		match: m,
		out:   output.NewMatchWriter(cfg),
		name:  name,
	}
}

// run reads commands until quit, checkmate or end of input. A checkmate
// delivered by a promotion waits for the promotion choice.
func (s *session) run() error {
	s.logf(1, "Match %s started\n", s.name)
	if err := s.out.WriteMatch(s.match, nil); err != nil {
		return err
	}

	scanner := bufio.NewScanner(s.cfg.InputFile)
	for scanner.Scan() {
		done, err := s.execute(scanner.Text())
		if err != nil {
			return err
		}
		if done {
			break
		}
		if s.gameOver() {
			s.logf(1, "Match %s: checkmate, %s wins\n", s.name, s.match.CurrentPlayer())
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}

	s.logf(1, "Match %s ended on turn %d\n", s.name, s.match.Turn())
	return nil
}

// execute handles one line and reports whether the session is over.
// Rejected commands are reported to the player; only output failures are returned.
func (s *session) execute(line string) (bool, error) {
	cmd, err := parseCommand(line)
	if err != nil {
		return false, s.out.WriteMessage("Error: " + err.Error())
	}

	switch cmd.kind {
	case cmdNone:
		return false, nil
	case cmdQuit:
		return true, nil
	case cmdHelp:
		return false, s.out.WriteMessage(strings.TrimRight(helpText, "\n"))
	case cmdBoard:
		return false, s.out.WriteMatch(s.match, nil)
	case cmdMoves:
		return false, s.showMoves(cmd.from)
	case cmdPromote:
		return false, s.promote(cmd.arg)
	case cmdMove:
		return s.move(cmd.from, cmd.to, cmd.arg)
	}
	return false, s.out.WriteMessage(fmt.Sprintf("Unknown command %q, type help for a list", strings.TrimSpace(cmd.arg)))
}

func (s *session) showMoves(from chess.Position) error {
	moves, err := s.match.LegalMoves(from)
	if err != nil {
		return s.out.WriteMessage("Error: " + err.Error())
	}
	return s.out.WriteMatch(s.match, &moves)
}

func (s *session) promote(code string) error {
	piece, err := s.match.ResolvePromotion(code)
	if err != nil {
		return s.out.WriteMessage("Error: " + err.Error())
	}
	if s.match.Promoted() != nil {
		return s.out.WriteMessage(fmt.Sprintf("Invalid promotion code %q, keeping %s", code, piece.Kind))
	}
	s.logf(2, "Match %s: promoted to %s on %s\n", s.name, piece.Kind, piece.Pos)
	return s.out.WriteMatch(s.match, nil)
}

// move plays a move. A promotion code given with the move is applied straight away.
func (s *session) move(from, to chess.Position, promotion string) (bool, error) {
	mover := s.match.CurrentPlayer()
	captured, err := s.match.PerformMove(from, to)
	if err != nil {
		return false, s.out.WriteMessage("Error: " + err.Error())
	}
	s.logf(2, "Match %s: %s played %s%s\n", s.name, mover, from, to)
	if captured != nil {
		s.logf(2, "Match %s: %s captured on %s\n", s.name, captured.Kind, captured.Pos)
	}
	if promotion != "" && s.match.Promoted() != nil {
		return false, s.promote(promotion)
	}

	return false, s.out.WriteMatch(s.match, nil)
}

// gameOver reports a checkmate that a promotion choice can no longer change.
func (s *session) gameOver() bool {
	return s.match.CheckMate() && s.match.Promoted() == nil
}

// logf writes to the log when the configured verbosity is at least level.
func (s *session) logf(level int, format string, args ...interface{}) {
	if s.cfg.Verbosity >= level {
		fmt.Fprintf(s.cfg.LogFile, format, args...)
	}
}
