package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/goaty-loaty/internal/audio"
	"github.com/vovakirdan/goaty-loaty/internal/config"
	"github.com/vovakirdan/goaty-loaty/internal/core"
	"github.com/vovakirdan/goaty-loaty/internal/games/goaty"
)

// session is everything a front end needs to run the game.
type session struct {
	game    *goaty.Game
	runtime core.RuntimeConfig
	audio   core.AudioSink
	logger  *log.Logger
	closers []func()
}

// newLogger creates the logger. Logs go to --log-file when set, otherwise to
// fallback; a nil fallback discards them.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "goaty",
	})
	return logger, closeFn, nil
}

// newSession loads configuration and builds the game and audio.
// screenW and screenH are the terminal size, or zero for a window.
func newSession(logWriter io.Writer, screenW, screenH int) (*session, error) {
	logger, closeLog, err := newLogger(logWriter)
	if err != nil {
		return nil, err
	}
	s := &session{logger: logger, closers: []func(){closeLog}}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		s.close()
		return nil, err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tickRate := flagFPS
	if tickRate <= 0 {
		tickRate = cfg.Session.TickRate
	}
	s.runtime = core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: tickRate,
		Seed:     seed,
	}

	var opts []goaty.Option
	if flagRealtime {
		opts = append(opts, goaty.WithClock(core.NewWallClock()))
	}
	s.game = goaty.New(cfg, s.runtime, opts...)

	if err := s.setupAudio(); err != nil {
		s.close()
		return nil, err
	}

	logger.Info("session ready", "seed", seed, "tick_rate", tickRate, "realtime", flagRealtime)
	return s, nil
}

// setupAudio opens the speaker. Missing sound files are fatal when --assets
// is set; a missing audio device only disables sound.
func (s *session) setupAudio() error {
	if flagMute {
		s.audio = audio.Nop{}
		return nil
	}

	sm := audio.NewSoundManager(s.logger)
	if flagAssets != "" {
		if err := sm.LoadDir(filepath.Join(flagAssets, "sounds")); err != nil {
			return err
		}
	}

	if err := sm.Initialize(); err != nil {
		s.logger.Warn("audio disabled", "error", err)
		s.audio = audio.Nop{}
		return nil
	}

	s.audio = sm
	s.closers = append(s.closers, sm.Cleanup)
	return nil
}

// close releases resources in reverse order.
func (s *session) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}
