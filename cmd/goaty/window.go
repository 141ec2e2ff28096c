package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/goaty-loaty/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play Goaty Loaty in an 800x400 desktop window.

Sprites are drawn as colored blocks unless --assets points at a directory
containing images/{background,player,cactus,coin}.png and
sounds/{background,jump,coin_collect,win,wasted}.{wav,mp3}.
Every file must be present when --assets is given.

Controls:
  Left/A, Right/D  - Move
  Space/Up/W       - Jump
  Enter            - Start / play again
  F11              - Toggle fullscreen
  Q/Esc            - Quit

Examples:
  goaty window
  goaty window --assets ./assets`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	bundle := window.PlaceholderBundle()
	if flagAssets != "" {
		// Checked before the session so a bad directory fails before audio opens.
		if err := window.CheckAssets(flagAssets); err != nil {
			fail("%v", err)
		}
	}

	s, err := newSession(os.Stderr, 0, 0)
	if err != nil {
		fail("%v", err)
	}

	if flagAssets != "" {
		bundle, err = window.LoadBundle(flagAssets)
		if err != nil {
			s.close()
			fail("%v", err)
		}
		s.logger.Info("loaded sprites", "dir", flagAssets)
	}

	runErr := window.Run(s.game, window.Options{
		TickRate: s.runtime.TickRate,
		Bundle:   bundle,
		Audio:    s.audio,
		Logger:   s.logger,
	})
	s.close()

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
