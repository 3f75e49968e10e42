// chessmatch is a console front end for playing a two-player chess match.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/term"

	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/hashing"
	"github.com/lgbarn/chessmatch-go/internal/output"
	"github.com/lgbarn/chessmatch-go/internal/perft"
	"github.com/lgbarn/chessmatch-go/internal/processing"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessmatch version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	detectColour(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *perftDepth > 0 {
		if err := runPerft(cfg, *perftDepth, *perftWorkers, *perftHash); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *replayFile != "" {
		ok, err := runReplayFile(cfg, *replayFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			os.Exit(1)
		}
		return
	}

	name := petname.Generate(2, "-")
	s := newSession(cfg, engine.NewMatch(engine.WithRules(cfg.Rules)), name)
	if err := s.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// detectColour turns colour off unless the output is a terminal.
func detectColour(cfg *config.Config) {
	f, ok := cfg.OutputFile.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		cfg.Display.Colour = false
	}
}

// runPerft prints the per-move breakdown and total for the start position.
func runPerft(cfg *config.Config, depth, workers, hashEntries int) error {
	var table *hashing.Table
	if hashEntries > 0 {
		table = hashing.NewTable(hashEntries)
	}

	m := engine.NewMatch(engine.WithRules(cfg.Rules))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := perft.Parallel(ctx, m, depth, workers, table)
	if err != nil {
		return err
	}
	if table != nil && cfg.Verbosity > 1 {
		hits, misses := table.Stats()
		fmt.Fprintf(cfg.LogFile, "Transposition table: %d entries, %d hits, %d misses\n", table.Len(), hits, misses)
	}
	for _, mv := range res.Moves() {
		fmt.Fprintf(cfg.OutputFile, "%s: %d\n", mv, res.Divide[mv])
	}
	fmt.Fprintf(cfg.OutputFile, "\nNodes searched: %d\n", res.Nodes)
	return nil
}

// runReplayFile replays the move script in path.
func runReplayFile(cfg *config.Config, path string) (bool, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is a user-supplied script
	if err != nil {
		return false, err
	}
	defer f.Close()

	moves, err := processing.ReadScript(f)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	return runReplay(cfg, moves)
}

// runReplay plays moves on a new match and writes the final position. It
// reports false when a move was rejected.
func runReplay(cfg *config.Config, moves []processing.ScriptMove) (bool, error) {
	m := engine.NewMatch(engine.WithRules(cfg.Rules))
	result := processing.Replay(m, moves)

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "Replayed %d of %d moves: %d captures, %d checks, %d promotions\n",
			result.Plies, len(moves), result.Captures, result.Checks, result.Promotions)
	}

	out := output.NewMatchWriter(cfg)
	if err := out.WriteMatch(m, nil); err != nil {
		return false, err
	}
	if !result.Valid {
		return false, out.WriteMessage(result.ErrorMsg)
	}
	return true, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessmatch [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play a chess match between two players at one console.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprint(os.Stderr, helpText)
}
