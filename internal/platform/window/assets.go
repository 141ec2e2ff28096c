package window

import (
	"errors"
	"fmt"
	_ "image/png" // PNG decoder for sprite files
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/goaty-loaty/internal/core"
)

// ErrMissingAsset is returned when an assets directory lacks a sprite file.
var ErrMissingAsset = errors.New("missing asset")

// sprites lists every image the game draws.
var sprites = []core.Sprite{core.SpriteBackground, core.SpritePlayer, core.SpriteObstacle, core.SpriteCoin}

// Bundle holds the sprite images. A sprite without an image is drawn as a placeholder.
type Bundle struct {
	images map[core.Sprite]*ebiten.Image
}

// PlaceholderBundle returns a bundle without images.
func PlaceholderBundle() *Bundle {
	return &Bundle{images: make(map[core.Sprite]*ebiten.Image)}
}

// SpritePath returns where a sprite image lives inside an assets directory.
func SpritePath(dir string, s core.Sprite) string {
	return filepath.Join(dir, "images", s.String()+".png")
}

// CheckAssets reports every sprite file missing from dir.
func CheckAssets(dir string) error {
	var errs []error
	for _, s := range sprites {
		path := SpritePath(dir, s)
		if _, err := os.Stat(path); err != nil {
			errs = append(errs, fmt.Errorf("window: %s: %w", path, ErrMissingAsset))
		}
	}
	return errors.Join(errs...)
}

// LoadBundle loads every sprite from dir. All files must exist.
func LoadBundle(dir string) (*Bundle, error) {
	if err := CheckAssets(dir); err != nil {
		return nil, err
	}

	b := PlaceholderBundle()
	for _, s := range sprites {
		img, _, err := ebitenutil.NewImageFromFile(SpritePath(dir, s))
		if err != nil {
			return nil, fmt.Errorf("window: load %s: %w", s, err)
		}
		b.images[s] = img
	}
	return b, nil
}

// Image returns the image for a sprite, or nil for a placeholder.
func (b *Bundle) Image(s core.Sprite) *ebiten.Image {
	return b.images[s]
}
