package optic

// Traversal is a total accessor for zero or more occurrences of A inside S.
// GetAll returns occurrences in a fixed document order; Modify applies a
// function to every occurrence and never changes their count or order.
type Traversal[S, A any] struct {
	getAll func(S) []A
	modify func(S, func(A) A) S
}

// NewTraversal builds a traversal from a getAll and a modify function. The
// pair must agree on which occurrences they visit and in what order; like
// the lens laws, this is a construction-site obligation.
func NewTraversal[S, A any](getAll func(S) []A, modify func(S, func(A) A) S) Traversal[S, A] {
	return Traversal[S, A]{getAll: getAll, modify: modify}
}

// GetAll returns every focused occurrence in document order.
func (t Traversal[S, A]) GetAll(s S) []A {
	return t.getAll(s)
}

// Modify returns a copy of s with fn applied to every occurrence,
// preserving occurrence count and order.
func (t Traversal[S, A]) Modify(s S, fn func(A) A) S {
	return t.modify(s, fn)
}

// FromLens promotes a lens to a traversal with exactly one occurrence.
func FromLens[S, A any](l Lens[S, A]) Traversal[S, A] {
	return Traversal[S, A]{
		getAll: func(s S) []A {
			return []A{l.get(s)}
		},
		modify: func(s S, fn func(A) A) S {
			return l.Modify(s, fn)
		},
	}
}

// Each traverses every element of a slice in index order. Modify copies
// the slice before rewriting it; nil slices stay nil so that a no-op
// modify returns a value deep-equal to its input.
func Each[T any]() Traversal[[]T, T] {
	return Traversal[[]T, T]{
		getAll: func(s []T) []T {
			if s == nil {
				return nil
			}
			out := make([]T, len(s))
			copy(out, s)
			return out
		},
		modify: func(s []T, fn func(T) T) []T {
			if s == nil {
				return nil
			}
			out := make([]T, len(s))
			for i, v := range s {
				out[i] = fn(v)
			}
			return out
		},
	}
}
