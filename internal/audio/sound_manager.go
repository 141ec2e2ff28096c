// Package audio plays the game's sound effects and background music through
// the system speaker.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/goaty-loaty/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)

	// MusicName is the base name of the background music file.
	MusicName = "background"
)

// format is the in-memory format all buffers are stored in.
var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// sounds lists every effect the game can trigger.
var sounds = []core.Sound{core.SoundJump, core.SoundCoin, core.SoundWin, core.SoundLose}

// ErrNotFound is returned when a sound file is missing from the assets directory.
var ErrNotFound = errors.New("sound file not found")

// SoundManager is the speaker-backed audio sink.
// Every method is safe to call before Initialize or after Cleanup; they do nothing.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	effects     map[core.Sound]*beep.Buffer
	music       *beep.Buffer
	musicCtrl   *beep.Ctrl
	initialized bool
	logger      *log.Logger
}

// NewSoundManager creates a sound manager loaded with synthesized sounds.
func NewSoundManager(logger *log.Logger) *SoundManager {
	sm := &SoundManager{
		mixer:   &beep.Mixer{},
		effects: make(map[core.Sound]*beep.Buffer, len(sounds)),
		logger:  logger,
	}

	sm.effects[core.SoundJump] = render(synthJump(sampleRate))
	sm.effects[core.SoundCoin] = render(synthCoin(sampleRate))
	sm.effects[core.SoundWin] = render(synthWin(sampleRate))
	sm.effects[core.SoundLose] = render(synthLose(sampleRate))
	sm.music = render(synthMusic(sampleRate))

	return sm
}

// render drains a finite stream into a buffer.
func render(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return buf
}

// LoadDir replaces the synthesized sounds with files from dir.
// Each sound is looked up as <name>.wav, then <name>.mp3. All sounds must be present.
func (sm *SoundManager) LoadDir(dir string) error {
	loaded := make(map[core.Sound]*beep.Buffer, len(sounds))
	for _, s := range sounds {
		buf, err := loadSound(dir, s.String())
		if err != nil {
			return err
		}
		loaded[s] = buf
	}

	music, err := loadSound(dir, MusicName)
	if err != nil {
		return err
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.effects = loaded
	sm.music = music
	sm.logger.Info("loaded sounds", "dir", dir)
	return nil
}

// loadSound decodes the first existing file for name into a buffer.
func loadSound(dir, name string) (*beep.Buffer, error) {
	for _, ext := range []string{".wav", ".mp3"} {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		buf, err := decodeFile(path)
		if err != nil {
			return nil, fmt.Errorf("audio: %w", err)
		}
		return buf, nil
	}
	return nil, fmt.Errorf("audio: %s in %s: %w", name, dir, ErrNotFound)
}

func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	var (
		stream     beep.StreamSeekCloser
		fileFormat beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stream, fileFormat, err = wav.Decode(f)
	case ".mp3":
		stream, fileFormat, err = mp3.Decode(f)
	default:
		err = errors.New("unsupported format")
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer stream.Close()

	var s beep.Streamer = stream
	if fileFormat.SampleRate != sampleRate {
		s = beep.Resample(4, fileFormat.SampleRate, sampleRate, stream)
	}
	return render(s), nil
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.musicCtrl != nil {
		sm.musicCtrl.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.musicCtrl = nil
	sm.initialized = false
}

// Play starts a one-shot effect. Overlapping effects mix.
func (sm *SoundManager) Play(s core.Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	buf, ok := sm.effects[s]
	if !ok {
		return
	}

	speaker.Lock()
	sm.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// StartMusic starts the background loop from the beginning.
// A loop that is already playing is restarted.
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if sm.musicCtrl != nil {
		sm.musicCtrl.Paused = true
		sm.musicCtrl.Streamer = nil
	}
	loop := beep.Loop(-1, sm.music.Streamer(0, sm.music.Len()))
	sm.musicCtrl = &beep.Ctrl{Streamer: loop}
	sm.mixer.Add(sm.musicCtrl)
}

// StopMusic stops the background loop.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.musicCtrl == nil {
		return
	}

	speaker.Lock()
	sm.musicCtrl.Paused = true
	sm.musicCtrl.Streamer = nil // A nil streamer drains out of the mixer
	speaker.Unlock()

	sm.musicCtrl = nil
}

// MusicPlaying reports whether the background loop is active.
func (sm *SoundManager) MusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.musicCtrl != nil
}
