// Package input turns window events and polled key state into updates of
// the shared program state.
package input

// Edge reports whether a key went from released (prev) to pressed (down).
func Edge(prev, down bool) bool {
	return down && !prev
}

// Latch remembers the last polled state of one key so a toggle bound to it
// fires once per physical press, however many frames the key is held.
type Latch struct {
	down bool
}

// Update records the current state and reports whether this is a new press.
func (l *Latch) Update(down bool) bool {
	fired := Edge(l.down, down)
	l.down = down
	return fired
}

// Down reports the last recorded state.
func (l *Latch) Down() bool {
	return l.down
}
