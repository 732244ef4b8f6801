package core

// Tracker remembers the last observed value of something that is drawn and
// reports whether it changed. Update paths use it to skip draw calls when
// nothing visible moved since the previous tick.
type Tracker[T comparable] struct {
	last   T
	primed bool
}

// Changed records v and returns true if it differs from the previous value,
// or if no value has been recorded since the last Reset.
func (t *Tracker[T]) Changed(v T) bool {
	if t.primed && t.last == v {
		return false
	}
	t.last = v
	t.primed = true
	return true
}

// Last returns the most recently recorded value.
func (t *Tracker[T]) Last() T {
	return t.last
}

// Reset forgets the recorded value so the next Changed call returns true.
func (t *Tracker[T]) Reset() {
	var zero T
	t.last = zero
	t.primed = false
}
