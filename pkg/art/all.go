package art

import "iter"

// All returns a range-over-func view of the whole tree in ascending key
// order.
func (t *Tree[T]) All() iter.Seq2[[]byte, T] {
	return func(yield func([]byte, T) bool) {
		drain(t.Iter(), yield)
	}
}

// AllRange returns a range-over-func view of the entries between start and
// end.
func (t *Tree[T]) AllRange(start, end Bound) iter.Seq2[[]byte, T] {
	return func(yield func([]byte, T) bool) {
		drain(t.Range(start, end), yield)
	}
}

// AllPrefix returns a range-over-func view of the entries whose keys start
// with prefix.
func (t *Tree[T]) AllPrefix(prefix []byte) iter.Seq2[[]byte, T] {
	return func(yield func([]byte, T) bool) {
		drain(t.PrefixIter(prefix), yield)
	}
}

// All returns a range-over-func view of the whole tree in ascending key
// order.
func (v *Versioned[T]) All() iter.Seq2[[]byte, T] {
	return func(yield func([]byte, T) bool) {
		drain(v.Iter(), yield)
	}
}

// AllRange returns a range-over-func view of the entries between start and
// end.
func (v *Versioned[T]) AllRange(start, end Bound) iter.Seq2[[]byte, T] {
	return func(yield func([]byte, T) bool) {
		drain(v.Range(start, end), yield)
	}
}

// AllPrefix returns a range-over-func view of the entries whose keys start
// with prefix.
func (v *Versioned[T]) AllPrefix(prefix []byte) iter.Seq2[[]byte, T] {
	return func(yield func([]byte, T) bool) {
		drain(v.PrefixIter(prefix), yield)
	}
}

func drain[T any](it *Iterator[T], yield func([]byte, T) bool) {
	for it.Next() {
		if !yield(it.Key(), it.Value()) {
			return
		}
	}
}
