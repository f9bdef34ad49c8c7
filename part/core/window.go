package core

import "iter"

// Cursor is an independently advanced position into a materialized entry
// sequence. Several cursors may range over the same sequence; each tracks
// its own position and never observes another cursor's progress.
type Cursor[K comparable, V any] struct {
	entries []Entry[K, V]
	pos     int
}

// NewCursor returns a cursor positioned at the start of entries.
// The cursor aliases the slice; callers must not mutate it afterwards.
func NewCursor[K comparable, V any](entries []Entry[K, V]) *Cursor[K, V] {
	return &Cursor[K, V]{entries: entries}
}

// Pos reports how many entries the cursor has consumed so far.
func (c *Cursor[K, V]) Pos() int { return c.pos }

// Remaining reports how many entries are left ahead of the cursor.
func (c *Cursor[K, V]) Remaining() int { return len(c.entries) - c.pos }

// take advances the cursor by up to n entries and returns the consumed
// window as a subslice of the backing sequence.
func (c *Cursor[K, V]) take(n int) []Entry[K, V] {
	if n < 0 {
		n = 0
	}
	if r := c.Remaining(); n > r {
		n = r
	}
	window := c.entries[c.pos : c.pos+n]
	c.pos += n
	return window
}

// Window consumes at most n entries from cur and returns them as a lazy
// sequence mapped through mapFn. If fewer than n entries remain the window
// stops at exhaustion. The cursor is advanced by the window size when
// Window returns, so the window is the sole consumer of the positions it
// covers; the returned sequence itself is replayable.
func Window[K comparable, V any, T any](cur *Cursor[K, V], mapFn func(Entry[K, V]) T, n int) iter.Seq[T] {
	window := cur.take(n)
	return func(yield func(T) bool) {
		for _, e := range window {
			if !yield(mapFn(e)) {
				return
			}
		}
	}
}
