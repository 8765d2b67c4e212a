package set

import "github.com/denismitr/dll"

type order uint8

const (
	descOrder order = iota
	ascOrder
)

// walk is the traversal primitive shared by Cursor and PairCursor.
//
// The anchor is resolved lazily: until the first step, a walk created
// without an explicit anchor only carries a direction, and resolves to
// the list's head or tail when stepped. Reversing before that first
// step therefore re-defaults the anchor to the opposite endpoint,
// which makes Values().Reverse() behave exactly like Reversed().
type walk[T comparable] struct {
	set      *Set[T]
	curr     *dll.Element[T]
	ord      order
	anchored bool
}

func (w *walk[T]) next() (T, bool) {
	if !w.anchored {
		w.anchored = true
		if w.ord == ascOrder {
			w.curr = w.set.list.Head()
		} else {
			w.curr = w.set.list.Tail()
		}
	}

	if w.curr == nil {
		var zero T
		return zero, false
	}

	v := w.curr.Value()
	if w.ord == ascOrder {
		w.curr = w.curr.Next()
	} else {
		w.curr = w.curr.Prev()
	}
	return v, true
}

func (w *walk[T]) reverse() {
	if w.anchored && w.curr == nil {
		// exhausted is terminal
		return
	}

	if w.ord == ascOrder {
		w.ord = descOrder
	} else {
		w.ord = ascOrder
	}
}

// Cursor is a single-use traversal over the set's elements. Its
// position is internal mutable state; to traverse again, request a
// fresh cursor from the set.
//
// A cursor observes the set live. Structural mutation of the set while
// a cursor is mid-walk — in particular removing the element the cursor
// is anchored at — leaves the cursor's subsequent steps undefined.
type Cursor[T comparable] struct {
	w walk[T]
}

// Next yields the element at the cursor's current position and
// advances in the cursor's direction. Once the walk falls off the end
// of the set, Next returns the zero value and false, and keeps doing
// so on every later call.
func (c *Cursor[T]) Next() (T, bool) {
	return c.w.next()
}

// Reverse flips the cursor's remaining traversal to the opposite
// direction, continuing from the cursor's current position rather
// than from the opposite end of the set. Reversing an exhausted
// cursor leaves it exhausted. Returns the cursor for chaining.
func (c *Cursor[T]) Reverse() *Cursor[T] {
	c.w.reverse()
	return c
}

// PairCursor is a Cursor that yields each element as a Pair with the
// element in both slots. It follows the same single-use, live-view
// contract as Cursor.
type PairCursor[T comparable] struct {
	w walk[T]
}

// Next yields the pair at the cursor's current position and advances.
// After exhaustion it returns the zero Pair and false forever.
func (p *PairCursor[T]) Next() (Pair[T], bool) {
	v, ok := p.w.next()
	if !ok {
		return Pair[T]{}, false
	}
	return Pair[T]{Key: v, Value: v}, true
}

// Reverse flips the remaining traversal from the current position.
// Returns the cursor for chaining.
func (p *PairCursor[T]) Reverse() *PairCursor[T] {
	p.w.reverse()
	return p
}
