// Package keytracker turns level-triggered key state into press edges.
package keytracker

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// KeyStateTracker tracks the previous state of a key.
type KeyStateTracker struct {
	Key         ebiten.Key
	prevPressed bool
}

// Observe records this frame's state and reports whether the key went
// down since the previous frame.
func (k *KeyStateTracker) Observe(pressed bool) bool {
	justPressed := pressed && !k.prevPressed
	k.prevPressed = pressed
	return justPressed
}

// JustPressedIn checks the tracked key against the keys held this frame.
func (k *KeyStateTracker) JustPressedIn(held []ebiten.Key) bool {
	return k.Observe(slices.Contains(held, k.Key))
}
