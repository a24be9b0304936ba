// Package report holds the generic logic of the module: read and update
// operations written once over abstract record types and reused for any
// concrete type that supplies a schema descriptor. The descriptor is
// injected at construction; nothing here knows a concrete record shape.
package report

import (
	"strings"

	"optica/internal/optic"
	"optica/internal/schema"
)

// Reporter runs the standard operations against records described by a
// structural schema.University descriptor.
type Reporter[S, D any] struct {
	sch schema.University[S, D]
}

// NewReporter builds a Reporter around the given descriptor.
func NewReporter[S, D any](sch schema.University[S, D]) Reporter[S, D] {
	return Reporter[S, D]{sch: sch}
}

// ReadName returns the record's name.
func (r Reporter[S, D]) ReadName(s S) string {
	return r.sch.Name().Get(s)
}

// UpperName returns a copy of s with its name uppercased.
func (r Reporter[S, D]) UpperName(s S) S {
	return r.sch.Name().Modify(s, strings.ToUpper)
}

// budgets is the composed accessor reaching every department budget.
func (r Reporter[S, D]) budgets() optic.Traversal[S, int] {
	return optic.ComposeTL(r.sch.Departments(), r.sch.Budget())
}

// TotalBudget sums every department budget.
func (r Reporter[S, D]) TotalBudget(s S) int {
	total := 0
	for _, b := range r.budgets().GetAll(s) {
		total += b
	}
	return total
}

// DoubleBudgets returns a copy of s with every department budget doubled.
func (r Reporter[S, D]) DoubleBudgets(s S) S {
	return r.budgets().Modify(s, func(b int) int { return b * 2 })
}

// TotalFunds sums the community fund and every department budget.
func (r Reporter[S, D]) TotalFunds(s S) int {
	return r.sch.Community().Get(s) + r.TotalBudget(s)
}

// IndexedReporter runs the same operations as Reporter against records
// described by a dynamic-nexus descriptor. The operation set and results
// are identical; only how the department accessors are obtained differs.
type IndexedReporter[S, D any] struct {
	sch schema.IndexedUniversity[S, D]
}

// NewIndexedReporter builds an IndexedReporter around the given descriptor.
func NewIndexedReporter[S, D any](sch schema.IndexedUniversity[S, D]) IndexedReporter[S, D] {
	return IndexedReporter[S, D]{sch: sch}
}

// ReadName returns the record's name.
func (r IndexedReporter[S, D]) ReadName(s S) string {
	return r.sch.Name().Get(s)
}

// UpperName returns a copy of s with its name uppercased.
func (r IndexedReporter[S, D]) UpperName(s S) S {
	return r.sch.Name().Modify(s, strings.ToUpper)
}

// TotalBudget sums every department budget through the lenses derived from
// s itself. Reads do not change the value, so every lens in the list stays
// valid against s.
func (r IndexedReporter[S, D]) TotalBudget(s S) int {
	total := 0
	for _, dep := range r.sch.DepartmentLenses(s) {
		total += optic.Compose(dep, r.sch.Budget()).Get(s)
	}
	return total
}

// DoubleBudgets doubles every department budget by applying each derived
// lens to the running value, in list order. Applying a step to the
// original s instead would hand later lenses a value they were not derived
// from; the sequential threading is what keeps each lens's index binding
// valid, because the rebuild-and-replace write preserves positions.
func (r IndexedReporter[S, D]) DoubleBudgets(s S) S {
	for _, dep := range r.sch.DepartmentLenses(s) {
		budget := optic.Compose(dep, r.sch.Budget())
		s = budget.Modify(s, func(b int) int { return b * 2 })
	}
	return s
}

// TotalFunds sums the community fund and every department budget.
func (r IndexedReporter[S, D]) TotalFunds(s S) int {
	return r.sch.Community().Get(s) + r.TotalBudget(s)
}
