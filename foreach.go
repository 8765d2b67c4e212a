package set

type (
	// ForEachFn receives each element (twice, mirroring the pairs
	// view) together with the set being iterated.
	ForEachFn[T comparable] func(value T, valueAgain T, s *Set[T])

	// BoundForEachFn additionally receives an explicit receiver
	// value, standing in for implicit callback binding.
	BoundForEachFn[T comparable, C any] func(recv C, value T, valueAgain T, s *Set[T])
)

// ForEach calls fn once per element, in insertion order.
func (s *Set[T]) ForEach(fn ForEachFn[T]) {
	for curr := s.list.Head(); curr != nil; curr = curr.Next() {
		fn(curr.Value(), curr.Value(), s)
	}
}

// ForEachReverse calls fn once per element, in reverse insertion
// order.
func (s *Set[T]) ForEachReverse(fn ForEachFn[T]) {
	for curr := s.list.Tail(); curr != nil; curr = curr.Prev() {
		fn(curr.Value(), curr.Value(), s)
	}
}

// ForEachBound calls fn once per element in insertion order, passing
// recv as the first argument of every call. Methods cannot introduce
// their own type parameter, hence the package-level form.
func ForEachBound[T comparable, C any](s *Set[T], recv C, fn BoundForEachFn[T, C]) {
	s.ForEach(func(value T, valueAgain T, s *Set[T]) {
		fn(recv, value, valueAgain, s)
	})
}

// ForEachReverseBound is ForEachBound in reverse insertion order.
func ForEachReverseBound[T comparable, C any](s *Set[T], recv C, fn BoundForEachFn[T, C]) {
	s.ForEachReverse(func(value T, valueAgain T, s *Set[T]) {
		fn(recv, value, valueAgain, s)
	})
}
