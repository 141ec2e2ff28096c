package audio

import "github.com/vovakirdan/goaty-loaty/internal/core"

// Dispatch routes the events of one tick to sink, in order.
func Dispatch(sink core.AudioSink, events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventSound:
			sink.Play(e.Sound)
		case core.EventMusicStart:
			sink.StartMusic()
		case core.EventMusicStop:
			sink.StopMusic()
		}
	}
}

// Nop is an audio sink that discards everything. Used with --mute.
type Nop struct{}

func (Nop) Play(core.Sound) {}
func (Nop) StartMusic()     {}
func (Nop) StopMusic()      {}
