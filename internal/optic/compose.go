package optic

// Compose joins two lenses into a lens focusing deeper: the result reads
// through outer then inner, and writes by rewriting the outer focus with
// the inner update applied.
func Compose[S, B, A any](outer Lens[S, B], inner Lens[B, A]) Lens[S, A] {
	return Lens[S, A]{
		get: func(s S) A {
			return inner.get(outer.get(s))
		},
		set: func(s S, a A) S {
			return outer.set(s, inner.set(outer.get(s), a))
		},
	}
}

// ComposeTT joins two traversals. GetAll concatenates the inner results of
// each outer occurrence in outer-then-inner order; Modify threads the
// inner modify through every outer occurrence. Composition is associative:
// regrouping a chain of compositions cannot change observable behavior.
func ComposeTT[S, B, A any](outer Traversal[S, B], inner Traversal[B, A]) Traversal[S, A] {
	return Traversal[S, A]{
		getAll: func(s S) []A {
			var all []A
			for _, b := range outer.getAll(s) {
				all = append(all, inner.getAll(b)...)
			}
			return all
		},
		modify: func(s S, fn func(A) A) S {
			return outer.modify(s, func(b B) B {
				return inner.modify(b, fn)
			})
		},
	}
}

// ComposeLT joins a lens with a traversal. Anything involving a traversal
// yields a traversal, so the lens side is promoted with FromLens.
func ComposeLT[S, B, A any](outer Lens[S, B], inner Traversal[B, A]) Traversal[S, A] {
	return ComposeTT(FromLens(outer), inner)
}

// ComposeTL joins a traversal with a lens.
func ComposeTL[S, B, A any](outer Traversal[S, B], inner Lens[B, A]) Traversal[S, A] {
	return ComposeTT(outer, FromLens(inner))
}
