package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/goaty-loaty/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Goaty Loaty in the terminal.

Controls:
  Left/A, Right/D  - Move
  Space/Up/W       - Jump
  Enter            - Start / play again
  Ctrl+S           - Save a text screenshot to ~/.goaty/screenshots
  Q/Esc/Ctrl+C     - Quit

Logs are discarded unless --log-file is given, since the game takes over the screen.

Examples:
  goaty play
  goaty play --seed 42
  goaty play --config ./my-goaty.yaml --log-file goaty.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	s, err := newSession(nil, width, height)
	if err != nil {
		fail("%v", err)
	}

	runErr := tui.Run(s.game, tui.Options{
		Runtime: s.runtime,
		Audio:   s.audio,
		Logger:  s.logger,
	})
	s.close()

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
