package window

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/goaty-loaty/internal/config"
	"github.com/vovakirdan/goaty-loaty/internal/core"
	"github.com/vovakirdan/goaty-loaty/internal/games/goaty"
)

func keysDown(keys ...ebiten.Key) func(ebiten.Key) bool {
	down := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		down[k] = true
	}
	return func(k ebiten.Key) bool { return down[k] }
}

func TestPollInput(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want []core.Action
	}{
		{"nothing", nil, nil},
		{"arrow left", []ebiten.Key{ebiten.KeyArrowLeft}, []core.Action{core.ActionLeft}},
		{"wasd", []ebiten.Key{ebiten.KeyD, ebiten.KeyW}, []core.Action{core.ActionRight, core.ActionJump}},
		{"both jump keys", []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp}, []core.Action{core.ActionJump}},
		{"enter", []ebiten.Key{ebiten.KeyEnter}, []core.Action{core.ActionConfirm}},
		{"escape", []ebiten.Key{ebiten.KeyEscape}, []core.Action{core.ActionQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := pollInput(keysDown(tt.keys...))
			if len(frame.Actions) != len(tt.want) {
				t.Fatalf("actions = %v, want %v", frame.Actions, tt.want)
			}
			for _, a := range tt.want {
				if !frame.Has(a) {
					t.Errorf("missing %v", a)
				}
			}
		})
	}
}

func TestCheckAssets(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "images"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, s := range []core.Sprite{core.SpriteBackground, core.SpritePlayer, core.SpriteCoin} {
		if err := os.WriteFile(SpritePath(dir, s), []byte("png"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	err := CheckAssets(dir)
	if !errors.Is(err, ErrMissingAsset) {
		t.Fatalf("err = %v, want ErrMissingAsset", err)
	}
	if want := SpritePath(dir, core.SpriteObstacle); !strings.Contains(err.Error(), want) {
		t.Errorf("error %q should name %s", err, want)
	}

	if err := os.WriteFile(SpritePath(dir, core.SpriteObstacle), []byte("png"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := CheckAssets(dir); err != nil {
		t.Errorf("complete directory reported %v", err)
	}
}

func TestSpritePath(t *testing.T) {
	if got := SpritePath("assets", core.SpriteObstacle); got != filepath.Join("assets", "images", "cactus.png") {
		t.Errorf("SpritePath = %q", got)
	}
}

func TestRunnerStepQuit(t *testing.T) {
	g := goaty.New(config.DefaultGoatyConfig(), core.RuntimeConfig{TickRate: 60, Seed: 1})
	r := NewRunner(g, Options{})

	if err := r.step(core.NewInputFrame(core.ActionConfirm)); err != nil {
		t.Fatalf("step: %v", err)
	}
	if r.mode != core.ModeRunning {
		t.Errorf("mode = %v, want running", r.mode)
	}

	if err := r.step(core.NewInputFrame(core.ActionQuit)); !errors.Is(err, ebiten.Termination) {
		t.Errorf("quit step = %v, want ebiten.Termination", err)
	}
}

func TestRunnerLayout(t *testing.T) {
	g := goaty.New(config.DefaultGoatyConfig(), core.RuntimeConfig{TickRate: 60})
	r := NewRunner(g, Options{})

	if w, h := r.Layout(1920, 1080); w != 800 || h != 400 {
		t.Errorf("Layout = %dx%d, want 800x400", w, h)
	}
}

func TestTextWidth(t *testing.T) {
	if got := textWidth("Score: 10"); got != 9*glyphW {
		t.Errorf("textWidth = %d", got)
	}
	if rgba(core.Color(200)) != rgba(core.ColorDefault) {
		t.Error("unknown colors should fall back to the default")
	}
}
