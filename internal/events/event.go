package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Kind tells Input events from Tick events.
type Kind int

const (
	KindInput Kind = iota
	KindTick
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindTick:
		return "tick"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is one item of the merged stream. Key is only meaningful for
// KindInput.
type Event struct {
	Kind Kind
	Key  tea.Key
}

// Input wraps a decoded key.
func Input(k tea.Key) Event {
	return Event{Kind: KindInput, Key: k}
}

// Tick returns a tick event.
func Tick() Event {
	return Event{Kind: KindTick}
}

// IsInput reports whether the event carries a key.
func (e Event) IsInput() bool {
	return e.Kind == KindInput
}

func (e Event) String() string {
	if e.Kind == KindInput {
		return "input(" + e.Key.String() + ")"
	}
	return e.Kind.String()
}

// Effect is the outcome of handling one event.
type Effect int

const (
	// EffectNone means the event was consumed; redraw and keep going.
	EffectNone Effect = iota
	// EffectBubble means the scope did not own the event and its parent
	// should interpret it.
	EffectBubble
	// EffectQuit ends the dispatch loop.
	EffectQuit
	// EffectRefresh asks the dispatch loop to replace the Mux and re-read
	// terminal geometry.
	EffectRefresh
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectBubble:
		return "bubble"
	case EffectQuit:
		return "quit"
	case EffectRefresh:
		return "refresh"
	default:
		return fmt.Sprintf("Effect(%d)", int(e))
	}
}
