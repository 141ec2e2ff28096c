package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/goaty-loaty/internal/core"
)

// keyBindings maps each action to the keys that trigger it.
var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionJump:    {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.ActionQuit:    {ebiten.KeyEscape, ebiten.KeyQ},
}

// pollInput builds the frame for this tick from the keys currently down.
// Windows report real key state, so held keys need no emulation here.
func pollInput(pressed func(ebiten.Key) bool) core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range keyBindings {
		for _, k := range keys {
			if pressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	return frame
}
