// Package university supplies the concrete record types the generic report
// logic is demonstrated against, together with their schema descriptors.
// The record types are plain value structs: every accessor built here
// copies on write and never mutates its input.
package university

import (
	"fmt"

	"optica/internal/optic"
	"optica/internal/schema"
)

// The descriptor contract is compile-time: dropping an accessor from
// Schema or IndexedSchema breaks these assertions, not a runtime lookup.
var (
	_ schema.University[University, Department]        = Schema{}
	_ schema.IndexedUniversity[University, Department] = IndexedSchema{}
)

// Department is a budgeted sub-unit of a University.
type Department struct {
	Budget int `yaml:"budget"`
}

// University is the worked example's root record.
type University struct {
	Name        string       `yaml:"name"`
	Community   int          `yaml:"community"`
	Departments []Department `yaml:"departments"`
}

// NameLens focuses University.Name.
func NameLens() optic.Lens[University, string] {
	return optic.NewLens(
		func(u University) string { return u.Name },
		func(u University, name string) University {
			u.Name = name
			return u
		},
	)
}

// CommunityLens focuses University.Community.
func CommunityLens() optic.Lens[University, int] {
	return optic.NewLens(
		func(u University) int { return u.Community },
		func(u University, comm int) University {
			u.Community = comm
			return u
		},
	)
}

// DepartmentsLens focuses the whole department slice. Set installs a copy
// so the new value shares no backing array with the caller's slice; a nil
// slice stays nil to keep set-get deep-equal to the input.
func DepartmentsLens() optic.Lens[University, []Department] {
	return optic.NewLens(
		func(u University) []Department { return u.Departments },
		func(u University, deps []Department) University {
			if deps == nil {
				u.Departments = nil
				return u
			}
			out := make([]Department, len(deps))
			copy(out, deps)
			u.Departments = out
			return u
		},
	)
}

// BudgetLens focuses Department.Budget.
func BudgetLens() optic.Lens[Department, int] {
	return optic.NewLens(
		func(d Department) int { return d.Budget },
		func(d Department, budget int) Department {
			d.Budget = budget
			return d
		},
	)
}

// DepartmentsTraversal traverses every department in slice order: the
// departments lens composed with an element traversal.
func DepartmentsTraversal() optic.Traversal[University, Department] {
	return optic.ComposeLT(DepartmentsLens(), optic.Each[Department]())
}

// DepartmentLenses builds the dynamic nexus for u: one lens per department,
// bound to its position. Each lens re-derives the department list from the
// value it is applied to, so it stays valid across modifications that
// preserve positions (any write made through a lens from the same list).
//
// A lens applied to a value whose department count differs from u's count
// at derivation time panics: such use is a stale-accessor contract
// violation and must not silently address the wrong department.
func DepartmentLenses(u University) []optic.Lens[University, Department] {
	n := len(u.Departments)
	lenses := make([]optic.Lens[University, Department], n)
	for i := 0; i < n; i++ {
		lenses[i] = optic.NewLens(
			func(u University) Department {
				checkCount(u, n)
				return u.Departments[i]
			},
			func(u University, d Department) University {
				checkCount(u, n)
				out := make([]Department, len(u.Departments))
				copy(out, u.Departments)
				out[i] = d
				u.Departments = out
				return u
			},
		)
	}
	return lenses
}

func checkCount(u University, n int) {
	if len(u.Departments) != n {
		panic(fmt.Sprintf(
			"university: stale department lens: derived from a %d-department value, applied to a %d-department value",
			n, len(u.Departments)))
	}
}

// Schema is the structural descriptor for University records. It
// implements schema.University[University, Department].
type Schema struct{}

func (Schema) Name() optic.Lens[University, string] { return NameLens() }

func (Schema) Community() optic.Lens[University, int] { return CommunityLens() }

func (Schema) Departments() optic.Traversal[University, Department] {
	return DepartmentsTraversal()
}

func (Schema) Budget() optic.Lens[Department, int] { return BudgetLens() }

// IndexedSchema is the dynamic-nexus descriptor for University records. It
// implements schema.IndexedUniversity[University, Department].
type IndexedSchema struct{}

func (IndexedSchema) Name() optic.Lens[University, string] { return NameLens() }

func (IndexedSchema) Community() optic.Lens[University, int] { return CommunityLens() }

func (IndexedSchema) DepartmentLenses(u University) []optic.Lens[University, Department] {
	return DepartmentLenses(u)
}

func (IndexedSchema) Budget() optic.Lens[Department, int] { return BudgetLens() }
