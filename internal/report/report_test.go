package report

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optica/internal/university"
)

func urjc() university.University {
	return university.Sample()
}

func randomUniversity(rng *rand.Rand) university.University {
	deps := make([]university.Department, rng.Intn(8))
	for i := range deps {
		deps[i] = university.Department{Budget: rng.Intn(200000)}
	}
	return university.University{
		Name:        "u",
		Community:   rng.Intn(10000),
		Departments: deps,
	}
}

func TestReporter(t *testing.T) {
	r := NewReporter[university.University, university.Department](university.Schema{})
	u := urjc()

	t.Run("readName", func(t *testing.T) {
		assert.Equal(t, "urjc", r.ReadName(u))
	})

	t.Run("upperName", func(t *testing.T) {
		got := r.UpperName(u)
		assert.Equal(t, "URJC", got.Name)
		assert.Equal(t, 7500, got.Community)
		assert.Equal(t, u.Departments, got.Departments)
	})

	t.Run("totalBudget", func(t *testing.T) {
		assert.Equal(t, 180000, r.TotalBudget(u))
	})

	t.Run("doubleBudgets", func(t *testing.T) {
		got := r.DoubleBudgets(u)
		assert.Equal(t, []university.Department{{Budget: 160000}, {Budget: 200000}}, got.Departments)
		assert.Equal(t, 7500, got.Community, "community must be unchanged")
		assert.Equal(t, "urjc", got.Name, "name must be unchanged")
	})

	t.Run("totalBudget after doubling", func(t *testing.T) {
		assert.Equal(t, 360000, r.TotalBudget(r.DoubleBudgets(u)))
	})

	t.Run("doubling twice quadruples", func(t *testing.T) {
		got := r.DoubleBudgets(r.DoubleBudgets(u))
		assert.Equal(t, []university.Department{{Budget: 320000}, {Budget: 400000}}, got.Departments)
	})

	t.Run("totalFunds includes the community fund", func(t *testing.T) {
		assert.Equal(t, 187500, r.TotalFunds(u))
	})

	t.Run("no departments", func(t *testing.T) {
		empty := university.University{Name: "e"}
		assert.Equal(t, 0, r.TotalBudget(empty))
		assert.Equal(t, empty, r.DoubleBudgets(empty))
	})
}

func TestIndexedReporter(t *testing.T) {
	r := NewIndexedReporter[university.University, university.Department](university.IndexedSchema{})
	u := urjc()

	t.Run("readName", func(t *testing.T) {
		assert.Equal(t, "urjc", r.ReadName(u))
	})

	t.Run("upperName", func(t *testing.T) {
		assert.Equal(t, "URJC", r.UpperName(u).Name)
	})

	t.Run("totalBudget", func(t *testing.T) {
		assert.Equal(t, 180000, r.TotalBudget(u))
	})

	t.Run("doubleBudgets threads the running value", func(t *testing.T) {
		got := r.DoubleBudgets(u)
		assert.Equal(t, []university.Department{{Budget: 160000}, {Budget: 200000}}, got.Departments)
		assert.Equal(t, 7500, got.Community)
		assert.Equal(t, "urjc", got.Name)
	})

	t.Run("doubling twice quadruples", func(t *testing.T) {
		got := r.DoubleBudgets(r.DoubleBudgets(u))
		assert.Equal(t, []university.Department{{Budget: 320000}, {Budget: 400000}}, got.Departments)
	})
}

// Both variants must be observationally identical for every operation and
// every valid input, not just the worked example.
func TestCrossVariantEquivalence(t *testing.T) {
	structural := NewReporter[university.University, university.Department](university.Schema{})
	indexed := NewIndexedReporter[university.University, university.Department](university.IndexedSchema{})

	t.Run("urjc results are identical", func(t *testing.T) {
		u := urjc()
		require.Equal(t, structural.ReadName(u), indexed.ReadName(u))
		require.Equal(t, structural.TotalBudget(u), indexed.TotalBudget(u))
		require.Equal(t, structural.TotalFunds(u), indexed.TotalFunds(u))
		if diff := cmp.Diff(structural.UpperName(u), indexed.UpperName(u)); diff != "" {
			t.Fatalf("upperName differs (-structural +indexed):\n%s", diff)
		}
		if diff := cmp.Diff(structural.DoubleBudgets(u), indexed.DoubleBudgets(u)); diff != "" {
			t.Fatalf("doubleBudgets differs (-structural +indexed):\n%s", diff)
		}
	})

	t.Run("random universities agree", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2026))
		for i := 0; i < 200; i++ {
			u := randomUniversity(rng)
			assert.Equal(t, structural.TotalBudget(u), indexed.TotalBudget(u))
			if diff := cmp.Diff(structural.DoubleBudgets(u), indexed.DoubleBudgets(u)); diff != "" {
				t.Fatalf("doubleBudgets differs for %+v (-structural +indexed):\n%s", u, diff)
			}
		}
	})

	t.Run("doubling commutes with totalling in both variants", func(t *testing.T) {
		u := urjc()
		assert.Equal(t, 2*structural.TotalBudget(u), structural.TotalBudget(structural.DoubleBudgets(u)))
		assert.Equal(t, 2*indexed.TotalBudget(u), indexed.TotalBudget(indexed.DoubleBudgets(u)))
	})
}
