package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/color-quest/internal/core"
	"github.com/vovakirdan/color-quest/internal/feedback"
	"github.com/vovakirdan/color-quest/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal.

Controls:
  Enter            - Submit name / pick tile / continue
  Arrows, hjkl     - Move the cursor
  1-9              - Pick a tile directly
  [ / ]            - Switch level during a game (saves the score)
  Tab              - History (from the name screen)
  Esc/B            - Back home (saves the score)
  Q/Ctrl+C         - Quit

Examples:
  colorquest play
  colorquest play --seed 42
  colorquest play --config ./my-colorquest.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file
	var logOut io.Writer = io.Discard
	if f, logErr := openLogFile(cfg.Log.File); logErr == nil {
		defer f.Close()
		logOut = f
	} else {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", logErr)
	}
	logger := newLogger(logOut, cfg.Log.Level)

	runtime := core.DefaultConfig()
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	opts, err := navigatorOptions(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Bells share the renderer's output so they never split a frame
	out := tui.NewLockedOutput(os.Stdout)

	var cues feedback.Multi
	if cfg.Feedback.Bell {
		cues = append(cues, feedback.NewBell(out, logger))
	}
	if cfg.Feedback.Speech {
		cues = append(cues, feedback.NewSpeaker(cfg.Feedback.SpeechCommand, cfg.Feedback.SpeechArgs, logger))
	}
	opts.Announcer = cues

	backend, closeBackend := openBackend(logger)
	store := historyStore(backend, cfg, cfg.History.Key, logger)

	logger.Info("game started", "seed", runtime.Seed, "db", flagDBPath)
	runErr := tui.Run(store, runtime, opts, out)

	// Close store before potential exit
	closeBackend()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
