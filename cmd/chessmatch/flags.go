// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write log messages to this file (default: stderr)")
	verbosity  = flag.Int("v", 1, "Log verbosity: 0 silent, 1 game events, 2 every move")
	jsonOutput = flag.Bool("J", false, "Write match state as JSON instead of drawing the board")

	// Display options
	noColour     = flag.Bool("nocolour", false, "Disable coloured squares and pieces")
	unicode      = flag.Bool("unicode", false, "Draw pieces with Unicode chess glyphs")
	flip         = flag.Bool("flip", false, "Draw the board from Black's side")
	noHighlights = flag.Bool("nohighlight", false, "Don't highlight destinations for the moves command")
	noCaptured   = flag.Bool("nocaptured", false, "Don't list captured pieces under the board")

	// Rule options
	strictCastling   = flag.Bool("strict-castling", false, "Require the castling rook to be unmoved")
	defaultPromotion = flag.String("promote", "Q", "Piece a pawn promotes to before a choice is made: Q, R, B, N")

	// Perft mode
	perftDepth   = flag.Int("perft", 0, "Count legal move tree leaves to depth N from the start and exit")
	perftWorkers = flag.Int("workers", 0, "Worker goroutines for -perft (0 = one per CPU)")
	perftHash    = flag.Int("hash", 1<<20, "Entries in the -perft transposition table (0 = no table)")

	// Replay mode
	replayFile = flag.String("replay", "", "Play the moves in this file, show the final position and exit")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags maps command-line flags onto cfg.
func applyFlags(cfg *config.Config) {
	applyDisplayFlags(cfg)
	applyRuleFlags(cfg)
	cfg.Verbosity = *verbosity
}

// applyDisplayFlags configures board rendering.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.Colour = !*noColour
	cfg.Display.Unicode = *unicode
	cfg.Display.Flip = *flip
	cfg.Display.ShowMoves = !*noHighlights
	cfg.Display.ShowCaptured = !*noCaptured
	cfg.Display.JSON = *jsonOutput
}

// applyRuleFlags configures rule variations. An unknown promotion code is
// left for Validate to reject.
func applyRuleFlags(cfg *config.Config) {
	cfg.Rules.RequireUnmovedRook = *strictCastling
	if kind, ok := chess.ParseKind(strings.TrimSpace(*defaultPromotion)); ok {
		cfg.Rules.DefaultPromotion = kind
	} else {
		cfg.Rules.DefaultPromotion = chess.NoKind
	}
}
