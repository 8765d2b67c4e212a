// Package set implements an insertion-ordered set that can be iterated
// in both directions, including from an arbitrary existing element.
//
// Elements keep the position of their first insertion. Lookups, inserts
// and removals are O(1): a map indexes every element to its node in a
// doubly linked list that records insertion order.
//
// The set is not safe for concurrent use.
package set

import (
	"iter"

	"github.com/denismitr/dll"
)

// TypeTag is the stable identity label of the set type, returned by
// String regardless of contents. It never changes between releases.
const TypeTag = "ReverseIterableSet"

// Set is an insertion-ordered collection of unique elements.
type Set[T comparable] struct {
	m    map[T]*dll.Element[T]
	list *dll.DoublyLinkedList[T]
}

// New creates a Set seeded with items, appended in the given order.
// Duplicates are dropped; the first occurrence decides the position.
func New[T comparable](items ...T) *Set[T] {
	s := &Set[T]{
		m:    make(map[T]*dll.Element[T], len(items)),
		list: dll.New[T](),
	}
	return s.AddSlice(items)
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return len(s.m)
}

// Has reports whether item is in the set.
func (s *Set[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

// Add appends item to the end of the set and returns the set for
// chaining. If item is already present nothing happens: its existing
// position is kept.
func (s *Set[T]) Add(item T) *Set[T] {
	if _, found := s.m[item]; !found {
		el := dll.NewElement(item)
		s.m[item] = el
		s.list.PushTail(el)
	}
	return s
}

// AddFirst prepends item to the front of the set and returns the set
// for chaining.
//
// If item is already present nothing happens — in particular the item
// is NOT moved to the front; its existing position is kept. This
// mirrors Add and is the specified contract, even though a mover
// semantic is easy to assume.
func (s *Set[T]) AddFirst(item T) *Set[T] {
	if _, found := s.m[item]; !found {
		el := dll.NewElement(item)
		s.m[item] = el
		s.list.PushHead(el)
	}
	return s
}

// AddSlice appends every element of items in order, skipping those
// already present, and returns the set for chaining.
func (s *Set[T]) AddSlice(items []T) *Set[T] {
	for i := range items {
		s.Add(items[i])
	}
	return s
}

// Remove deletes item from the set, preserving the relative order of
// the remaining elements. It returns true if item was present.
//
// Removing an element invalidates any live cursor currently anchored
// at it; such a cursor's subsequent steps are undefined.
func (s *Set[T]) Remove(item T) bool {
	el, found := s.m[item]
	if !found {
		return false
	}
	delete(s.m, item)
	s.list.Remove(el)
	return true
}

// Clear removes all elements from the set.
func (s *Set[T]) Clear() {
	s.m = make(map[T]*dll.Element[T])
	s.list = dll.New[T]()
}

// Items returns all elements in insertion order as a fresh slice.
func (s *Set[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	for curr := s.list.Head(); curr != nil; curr = curr.Next() {
		items = append(items, curr.Value())
	}
	return items
}

// All returns a forward iterator over the elements for use with range.
// It is equivalent to draining Values.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for curr := s.list.Head(); curr != nil; curr = curr.Next() {
			if !yield(curr.Value()) {
				return
			}
		}
	}
}

// Values returns a cursor over the elements, forward from the first.
func (s *Set[T]) Values() *Cursor[T] {
	return &Cursor[T]{w: walk[T]{set: s, ord: ascOrder}}
}

// Reversed returns a cursor over the elements, backward from the last.
// It is equivalent to Values().Reverse() on a cursor that has not yet
// been stepped.
func (s *Set[T]) Reversed() *Cursor[T] {
	return &Cursor[T]{w: walk[T]{set: s, ord: descOrder}}
}

// From returns a forward cursor anchored at item, so that the first
// step yields item itself. If item is not in the set the cursor is
// already exhausted; that is defined behavior, not an error.
func (s *Set[T]) From(item T) *Cursor[T] {
	return &Cursor[T]{w: walk[T]{set: s, curr: s.m[item], ord: ascOrder, anchored: true}}
}

// Pairs returns a cursor of (element, element) pairs, forward from the
// first element.
func (s *Set[T]) Pairs() *PairCursor[T] {
	return &PairCursor[T]{w: walk[T]{set: s, ord: ascOrder}}
}

// String returns TypeTag. The label identifies the type, not the
// contents, so it is stable across mutations.
func (s *Set[T]) String() string {
	return TypeTag
}
