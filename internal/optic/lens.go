// Package optic provides generic lenses and traversals for reading and
// updating parts of nested immutable values, plus the composition algebra
// that joins them. Every operation is a pure function: modifying through an
// accessor returns a fresh value and never mutates its input.
package optic

// Lens is a total accessor for exactly one field of S. The get/set pair
// supplied at construction must satisfy the lens laws:
//
//	Get(Set(s, a)) == a
//	Set(s, Get(s)) == s
//	Set(Set(s, a1), a2) == Set(s, a2)
//
// The laws are a caller obligation; they cannot be checked at construction
// time and a law-breaking pair silently produces wrong results.
type Lens[S, A any] struct {
	get func(S) A
	set func(S, A) S
}

// NewLens builds a lens from a get and a set function.
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

// Get retrieves the focused value.
func (l Lens[S, A]) Get(s S) A {
	return l.get(s)
}

// Set returns a copy of s with the focused value replaced by a.
func (l Lens[S, A]) Set(s S, a A) S {
	return l.set(s, a)
}

// Modify returns a copy of s with fn applied to the focused value.
func (l Lens[S, A]) Modify(s S, fn func(A) A) S {
	return l.set(s, fn(l.get(s)))
}

// Identity is the lens that focuses the whole value.
func Identity[S any]() Lens[S, S] {
	return Lens[S, S]{
		get: func(s S) S { return s },
		set: func(_ S, s S) S { return s },
	}
}

// Index focuses the element at position i of a slice. Get and Set panic if
// i is out of range for the slice they are applied to: an index lens is
// only meaningful for slices long enough to hold it. Set copies the slice
// before writing.
func Index[T any](i int) Lens[[]T, T] {
	return Lens[[]T, T]{
		get: func(s []T) T {
			return s[i]
		},
		set: func(s []T, v T) []T {
			out := make([]T, len(s))
			copy(out, s)
			out[i] = v
			return out
		},
	}
}

// Thread applies steps to s strictly in order, each step receiving the
// previous step's result. It is plain left-to-right function sequencing
// for callers chaining several modifications.
func Thread[S any](s S, steps ...func(S) S) S {
	for _, step := range steps {
		s = step(s)
	}
	return s
}
