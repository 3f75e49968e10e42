package config

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// RulesConfig holds the rule variations a match can be played under.
type RulesConfig struct {
	// RequireUnmovedRook additionally requires the castling rook to have a
	// zero move count. When false only the king's move count is checked.
	RequireUnmovedRook bool

	// DefaultPromotion is the piece a pawn becomes before an explicit
	// promotion choice is made.
	DefaultPromotion chess.Kind
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		DefaultPromotion: chess.Queen,
	}
}

// Validate checks that the rules configuration is valid.
func (r *RulesConfig) Validate() error {
	if !chess.IsPromotionKind(r.DefaultPromotion) {
		return fmt.Errorf("default promotion %v: %w", r.DefaultPromotion, errors.ErrInvalidConfig)
	}
	return nil
}
