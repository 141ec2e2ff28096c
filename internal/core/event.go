package core

// Sound identifies a one-shot sound effect.
type Sound int

const (
	SoundJump Sound = iota
	SoundCoin
	SoundWin
	SoundLose
)

// String returns the sound name; it doubles as the asset base name.
func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundCoin:
		return "coin_collect"
	case SoundWin:
		return "win"
	case SoundLose:
		return "wasted"
	default:
		return "unknown"
	}
}

// EventKind distinguishes sound triggers from music control.
type EventKind int

const (
	EventSound EventKind = iota
	EventMusicStart
	EventMusicStop
)

// Event is an audio trigger raised by the simulation during a tick.
type Event struct {
	Kind  EventKind
	Sound Sound // Only meaningful for EventSound
}

// PlaySound builds a sound trigger event.
func PlaySound(s Sound) Event {
	return Event{Kind: EventSound, Sound: s}
}

// AudioSink consumes sound triggers and background music control.
type AudioSink interface {
	Play(s Sound)
	StartMusic()
	StopMusic()
}
