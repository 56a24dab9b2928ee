package tui

import "github.com/vovakirdan/runngun/internal/core"

// DefaultHoldTicks is how long a key counts as held after its last event.
const DefaultHoldTicks = 30

// KeyState turns terminal key events into per-tick input frames.
//
// Terminals report presses and auto-repeats but never releases, so a key is
// treated as down while its most recent event is less than holdTicks old.
// An action is reported as pressed on the tick it goes from up to down.
type KeyState struct {
	holdTicks uint64
	tick      uint64
	lastSeen  map[core.Action]uint64
	down      map[core.Action]bool
}

// NewKeyState creates an input source. Non-positive holdTicks uses the default.
func NewKeyState(holdTicks int) *KeyState {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyState{
		holdTicks: uint64(holdTicks),
		lastSeen:  make(map[core.Action]uint64),
		down:      make(map[core.Action]bool),
	}
}

// Press records a key event for the tick about to be simulated.
func (k *KeyState) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	k.lastSeen[a] = k.tick
}

// Frame builds the input frame for the next tick and advances the source.
func (k *KeyState) Frame() core.InputFrame {
	in := core.NewInputFrame()
	for a, seen := range k.lastSeen {
		isDown := k.tick-seen < k.holdTicks
		if isDown {
			in.Hold(a)
			if !k.down[a] {
				in.Set(a)
			}
		} else {
			delete(k.lastSeen, a)
		}
		k.down[a] = isDown
	}
	k.tick++
	return in
}

// Reset releases every key.
func (k *KeyState) Reset() {
	clear(k.lastSeen)
	clear(k.down)
}
