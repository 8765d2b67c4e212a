package set

// Pair is one step of the pairs view. Both fields hold the same
// element, keeping the pairs view shape-compatible with key/value
// collections whose entries are (key, value).
type Pair[T comparable] struct {
	Key   T
	Value T
}
