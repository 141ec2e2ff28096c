package audio

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/goaty-loaty/internal/core"
)

type recordingSink struct {
	calls []string
}

func (r *recordingSink) Play(s core.Sound) { r.calls = append(r.calls, "play:"+s.String()) }
func (r *recordingSink) StartMusic()       { r.calls = append(r.calls, "music:start") }
func (r *recordingSink) StopMusic()        { r.calls = append(r.calls, "music:stop") }

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestDispatchOrder(t *testing.T) {
	sink := &recordingSink{}
	Dispatch(sink, []core.Event{
		{Kind: core.EventMusicStart},
		core.PlaySound(core.SoundCoin),
		core.PlaySound(core.SoundCoin),
		{Kind: core.EventMusicStop},
		core.PlaySound(core.SoundLose),
	})

	want := []string{"music:start", "play:coin_collect", "play:coin_collect", "music:stop", "play:wasted"}
	if len(sink.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", sink.calls, want)
	}
	for i := range want {
		if sink.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, sink.calls[i], want[i])
		}
	}
}

func TestDispatchNop(t *testing.T) {
	// Nop must satisfy the sink interface and swallow everything.
	var sink core.AudioSink = Nop{}
	Dispatch(sink, []core.Event{{Kind: core.EventMusicStart}, core.PlaySound(core.SoundJump)})
}

func TestSynthesizedSoundsAreNotEmpty(t *testing.T) {
	sm := NewSoundManager(testLogger())

	for _, s := range sounds {
		if buf := sm.effects[s]; buf == nil || buf.Len() == 0 {
			t.Errorf("synthesized %s is empty", s)
		}
	}
	if sm.music.Len() < sampleRate.N(time.Second) {
		t.Errorf("music loop is %d samples, want at least a second", sm.music.Len())
	}
}

func TestSoundManagerWithoutInit(t *testing.T) {
	sm := NewSoundManager(testLogger())

	sm.Play(core.SoundJump)
	sm.StartMusic()
	if sm.MusicPlaying() {
		t.Error("music should not start before Initialize")
	}
	sm.StopMusic()
	sm.Cleanup()

	if sm.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers, want 0", sm.mixer.Len())
	}
}

func TestSoundManagerMixing(t *testing.T) {
	sm := NewSoundManager(testLogger())
	sm.initialized = true // Skip the speaker; the mixer is drained by hand below.

	sm.Play(core.SoundJump)
	sm.Play(core.SoundCoin)
	if sm.mixer.Len() != 2 {
		t.Fatalf("mixer has %d streamers, want 2", sm.mixer.Len())
	}

	sm.StartMusic()
	if !sm.MusicPlaying() {
		t.Fatal("music should be playing")
	}

	// Drain the one-shot effects; the loop keeps going.
	samples := make([][2]float64, 512)
	for i := 0; i < sampleRate.N(2*time.Second)/len(samples); i++ {
		sm.mixer.Stream(samples)
	}
	if sm.mixer.Len() != 1 {
		t.Errorf("mixer has %d streamers after effects ended, want only the music", sm.mixer.Len())
	}

	sm.StopMusic()
	sm.mixer.Stream(samples)
	if sm.MusicPlaying() || sm.mixer.Len() != 0 {
		t.Errorf("music should be gone, playing=%v mixer=%d", sm.MusicPlaying(), sm.mixer.Len())
	}
}

// writeTone writes a short wav file.
func writeTone(t *testing.T, path string, rate beep.SampleRate) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	tone := newOscillator(440, 100*time.Millisecond, WaveSine, rate)
	err = wav.Encode(f, tone, beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	if err != nil {
		t.Fatal(err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	for _, s := range sounds {
		writeTone(t, filepath.Join(dir, s.String()+".wav"), sampleRate)
	}
	writeTone(t, filepath.Join(dir, MusicName+".wav"), 22050)

	sm := NewSoundManager(testLogger())
	if err := sm.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	want := sampleRate.N(100 * time.Millisecond)
	if got := sm.effects[core.SoundJump].Len(); got != want {
		t.Errorf("jump length = %d samples, want %d", got, want)
	}
	// Resampled from 22050 Hz, so roughly the same duration.
	if got := sm.music.Len(); got < want*9/10 || got > want*11/10 {
		t.Errorf("music length = %d samples, want about %d", got, want)
	}
}

func TestLoadDirMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeTone(t, filepath.Join(dir, "jump.wav"), sampleRate)

	sm := NewSoundManager(testLogger())
	before := sm.effects[core.SoundJump]

	err := sm.LoadDir(dir)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if sm.effects[core.SoundJump] != before {
		t.Error("a failed load should keep the previous sounds")
	}
}
