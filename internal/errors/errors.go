// Package errors provides sentinel errors and error types for the chess match engine.
// It defines the conditions a caller can branch on and a structured error type
// that preserves move context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSelection indicates a bad source or target square: no piece there,
	// a piece of the wrong colour, a piece with no moves, or an unreachable target.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrIllegalSelfCheck indicates a move that would leave the mover's own king attacked.
	ErrIllegalSelfCheck = errors.New("move leaves own king in check")

	// ErrNoPendingPromotion indicates a promotion was resolved with no pawn awaiting it.
	ErrNoPendingPromotion = errors.New("no pending promotion")

	// ErrGameOver indicates a move was attempted after checkmate.
	ErrGameOver = errors.New("game is over")

	// ErrSquareOccupied indicates a piece was placed on an occupied square.
	ErrSquareOccupied = errors.New("square already occupied")

	// ErrOffBoard indicates a position outside the board.
	ErrOffBoard = errors.New("position not on the board")

	// ErrInvalidSquare indicates malformed algebraic notation.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the squares involved, the turn
// and the player attempting the move. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	From   string // Source square in algebraic notation (if known)
	To     string // Target square in algebraic notation (if known)
	Turn   int    // Turn number when the error occurred (0 if not applicable)
	Player string // Player to move
	Reason string // Short human-readable detail
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Turn > 0 {
		parts = append(parts, fmt.Sprintf("turn %d", e.Turn))
	}
	if e.Player != "" {
		parts = append(parts, e.Player)
	}

	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	case e.From != "":
		parts = append(parts, fmt.Sprintf("square %s", e.From))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
