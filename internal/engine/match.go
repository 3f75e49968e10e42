package engine

import (
	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Match owns the board, every piece and the turn state of one game. It is
// the only mutator of the board, the piece collections and piece records.
// A Match is not safe for concurrent use; use Clone to hand a copy to
// another goroutine.
type Match struct {
	board *chess.Board
	rules config.RulesConfig

	turn          int
	currentPlayer chess.Colour
	check         bool
	checkMate     bool

	// Pawn that advanced two rows on the last move, capturable en passant.
	enPassantVulnerable *chess.Piece

	// Piece produced by the last promotion, replaceable by ResolvePromotion.
	promoted *chess.Piece

	// Turn number at which the last committed move was played.
	moveTurn int

	piecesOnBoard  []*chess.Piece
	capturedPieces []*chess.Piece
}

// Option configures a Match.
type Option func(*Match)

// WithRules sets the rule variations for the match.
func WithRules(rules config.RulesConfig) Option {
	return func(m *Match) {
		m.rules = rules
	}
}

// WithCurrentPlayer sets the side to move first.
func WithCurrentPlayer(colour chess.Colour) Option {
	return func(m *Match) {
		m.currentPlayer = colour
	}
}

// NewMatch creates a match with the standard starting position, White to move on turn 1.
func NewMatch(opts ...Option) *Match {
	m := newMatch(opts...)
	m.initialSetup()
	return m
}

// NewMatchFromSetup creates a match with a custom layout. The layout must
// hold exactly one king of each colour.
func NewMatchFromSetup(placements []Placement, opts ...Option) (*Match, error) {
	m := newMatch(opts...)
	for _, pl := range placements {
		if err := m.placeNewPiece(pl); err != nil {
			return nil, err
		}
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := m.countKind(colour, chess.King); n != 1 {
			return nil, errors.Wrapf(errors.ErrInvalidConfig, "setup has %d %v kings", n, colour)
		}
	}
	m.check = m.IsInCheck(m.currentPlayer)
	return m, nil
}

func newMatch(opts ...Option) *Match {
	m := &Match{
		board:         chess.NewBoard(),
		rules:         *config.NewRulesConfig(),
		turn:          1,
		currentPlayer: chess.White,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Turn returns the current turn number, starting at 1.
func (m *Match) Turn() int {
	return m.turn
}

// CurrentPlayer returns the side to move. After checkmate it is the winner.
func (m *Match) CurrentPlayer() chess.Colour {
	return m.currentPlayer
}

// Check reports whether the last move put the opponent in check.
func (m *Match) Check() bool {
	return m.check
}

// CheckMate reports whether the game has ended in checkmate.
func (m *Match) CheckMate() bool {
	return m.checkMate
}

// EnPassantVulnerable returns a copy of the pawn capturable en passant, or nil.
func (m *Match) EnPassantVulnerable() *chess.Piece {
	if m.enPassantVulnerable == nil {
		return nil
	}
	return m.enPassantVulnerable.Copy()
}

// Promoted returns a copy of the piece awaiting a promotion choice, or nil.
func (m *Match) Promoted() *chess.Piece {
	if m.promoted == nil {
		return nil
	}
	return m.promoted.Copy()
}

// Rules returns the rule variations in force.
func (m *Match) Rules() config.RulesConfig {
	return m.rules
}

// Pieces returns a read-only snapshot of the board for rendering.
func (m *Match) Pieces() chess.Grid {
	return m.board.Snapshot()
}

// PieceAt returns a copy of the piece on p, or nil.
func (m *Match) PieceAt(p chess.Position) *chess.Piece {
	if piece := m.board.PieceAt(p); piece != nil {
		return piece.Copy()
	}
	return nil
}

// OnBoard returns copies of colour's live pieces.
func (m *Match) OnBoard(colour chess.Colour) []*chess.Piece {
	return copyPieces(filterColour(m.piecesOnBoard, colour))
}

// Captured returns copies of colour's captured pieces.
func (m *Match) Captured(colour chess.Colour) []*chess.Piece {
	return copyPieces(filterColour(m.capturedPieces, colour))
}

// Clone returns a deep copy of the match that shares no state with m.
func (m *Match) Clone() *Match {
	c := &Match{
		board:         chess.NewBoard(),
		rules:         m.rules,
		turn:          m.turn,
		currentPlayer: m.currentPlayer,
		check:         m.check,
		checkMate:     m.checkMate,
		moveTurn:      m.moveTurn,
	}

	copies := make(map[*chess.Piece]*chess.Piece, len(m.piecesOnBoard)+len(m.capturedPieces))
	for _, p := range m.piecesOnBoard {
		cp := p.Copy()
		copies[p] = cp
		c.piecesOnBoard = append(c.piecesOnBoard, cp)
		c.place(cp, p.Pos)
	}
	for _, p := range m.capturedPieces {
		cp := p.Copy()
		copies[p] = cp
		c.capturedPieces = append(c.capturedPieces, cp)
	}
	c.enPassantVulnerable = copies[m.enPassantVulnerable]
	c.promoted = copies[m.promoted]
	return c
}

func filterColour(pieces []*chess.Piece, colour chess.Colour) []*chess.Piece {
	var out []*chess.Piece
	for _, p := range pieces {
		if p.Colour == colour {
			out = append(out, p)
		}
	}
	return out
}

func copyPieces(pieces []*chess.Piece) []*chess.Piece {
	out := make([]*chess.Piece, len(pieces))
	for i, p := range pieces {
		out[i] = p.Copy()
	}
	return out
}
