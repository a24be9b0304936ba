// Package schema declares the capability descriptors that expose a record
// type's structure to generic logic. A concrete record type becomes usable
// by the report package by implementing one of these interfaces; a missing
// accessor is a compile error, never a runtime lookup failure.
package schema

import "optica/internal/optic"

// University describes a record type S with a name, a community fund and a
// collection of budgeted departments of type D, reached through a
// structural traversal.
type University[S, D any] interface {
	// Name focuses the record's display name.
	Name() optic.Lens[S, string]
	// Community focuses the community fund amount.
	Community() optic.Lens[S, int]
	// Departments traverses every department in document order.
	Departments() optic.Traversal[S, D]
	// Budget focuses a single department's budget.
	Budget() optic.Lens[D, int]
}

// IndexedUniversity is the dynamic-nexus variant of University: instead of
// a structural traversal, DepartmentLenses rebuilds, from the current
// value, one index-bound lens per department.
//
// Each returned lens re-derives the department list from whatever value it
// is later applied to and addresses its position in that list. The lens is
// only valid against the value it was derived from, or a value produced
// from it by applying the list's lenses in order; implementations must
// reject (not silently misread) a value whose department count has changed.
type IndexedUniversity[S, D any] interface {
	// Name focuses the record's display name.
	Name() optic.Lens[S, string]
	// Community focuses the community fund amount.
	Community() optic.Lens[S, int]
	// DepartmentLenses returns one lens per department of s, in document
	// order, each bound to its position at derivation time.
	DepartmentLenses(s S) []optic.Lens[S, D]
	// Budget focuses a single department's budget.
	Budget() optic.Lens[D, int]
}
