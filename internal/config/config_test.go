package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	chesserrors "github.com/lgbarn/chessmatch-go/internal/errors"
)

// TestRulesConfig_Defaults verifies RulesConfig reproduces the classic rules by default
func TestRulesConfig_Defaults(t *testing.T) {
	cfg := NewRulesConfig()

	if cfg.RequireUnmovedRook {
		t.Error("RequireUnmovedRook should be false by default")
	}
	if cfg.DefaultPromotion != chess.Queen {
		t.Errorf("DefaultPromotion = %v, want Queen", cfg.DefaultPromotion)
	}
}

// TestRulesConfig_Validate verifies promotion kind validation
func TestRulesConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		kind    chess.Kind
		wantErr bool
	}{
		{"queen", chess.Queen, false},
		{"rook", chess.Rook, false},
		{"bishop", chess.Bishop, false},
		{"knight", chess.Knight, false},
		{"king", chess.King, true},
		{"pawn", chess.Pawn, true},
		{"none", chess.NoKind, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := RulesConfig{DefaultPromotion: tt.kind}
			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidConfig) {
					t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
				}
			} else if err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

// TestDisplayConfig_Defaults verifies DisplayConfig has sensible defaults
func TestDisplayConfig_Defaults(t *testing.T) {
	cfg := NewDisplayConfig()

	if !cfg.Colour {
		t.Error("Colour should be true by default")
	}
	if cfg.Unicode {
		t.Error("Unicode should be false by default")
	}
	if cfg.Flip {
		t.Error("Flip should be false by default")
	}
	if !cfg.ShowMoves {
		t.Error("ShowMoves should be true by default")
	}
}

// TestNewConfig verifies the aggregate defaults
func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil || cfg.InputFile == nil {
		t.Error("default streams should be set")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

// TestConfigBuilder verifies the fluent builder
func TestConfigBuilder(t *testing.T) {
	var out, log bytes.Buffer
	in := bytes.NewBufferString("e2 e4\n")

	cfg := NewConfigBuilder().
		WithStrictCastling(true).
		WithDefaultPromotion(chess.Knight).
		WithColour(false).
		WithUnicode(true).
		WithFlip(true).
		WithJSON(true).
		WithInput(in).
		WithOutput(&out).
		WithLog(&log).
		WithVerbosity(2).
		Build()

	if !cfg.Rules.RequireUnmovedRook {
		t.Error("RequireUnmovedRook should be true")
	}
	if cfg.Rules.DefaultPromotion != chess.Knight {
		t.Errorf("DefaultPromotion = %v, want Knight", cfg.Rules.DefaultPromotion)
	}
	if cfg.Display.Colour || !cfg.Display.Unicode || !cfg.Display.Flip {
		t.Errorf("Display = %+v, want colour off, unicode on, flipped", cfg.Display)
	}
	if !cfg.Display.JSON {
		t.Error("JSON should be true")
	}
	if cfg.InputFile != in || cfg.OutputFile != &out || cfg.LogFile != &log {
		t.Error("streams not set by builder")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
}
