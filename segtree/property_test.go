package segtree

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/complib/monoid"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./segtree -run TestRandomizedQueryEqualsFold -count=1
//   - Fuzz test for this file:
//     go test ./segtree -run '^$' -fuzz FuzzQueryEqualsFold -fuzztime=10s

// affine is a function x ↦ a·x + b. Composition of affine functions is
// associative but not commutative, which makes it a good probe for the
// combination order of queries.
type affine struct{ a, b int64 }

var compose = monoid.Of(affine{a: 1, b: 0}, func(f, g affine) affine {
	// apply f first, then g
	return affine{a: g.a * f.a, b: g.a*f.b + g.b}
})

func randomAffine(r *rand.Rand) affine {
	return affine{a: int64(r.Intn(7) - 3), b: int64(r.Intn(21) - 10)}
}

func assertQueriesMatchModel[T comparable](t *testing.T, tree *Tree[T], model []T, m monoid.Monoid[T]) {
	t.Helper()
	for start := 0; start <= tree.LeafCount(); start++ {
		for end := start; end <= tree.LeafCount(); end++ {
			got, err := tree.Query(start, end)
			if err != nil {
				t.Fatalf("query [%d,%d) failed: %v", start, end, err)
			}
			want := m.Zero()
			for k := start; k < end && k < len(model); k++ {
				want = m.Add(want, model[k])
			}
			if got != want {
				t.Fatalf("query [%d,%d): got %v, want %v (model %v)", start, end, got, want, model)
			}
		}
	}
}

func TestRandomizedQueryEqualsFold(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for round := 0; round < 40; round++ {
		n := r.Intn(33)
		model := make([]affine, n)
		for i := range model {
			model[i] = randomAffine(r)
		}
		tree, err := From(Config[affine]{Monoid: compose}, model)
		if err != nil {
			t.Fatal(err)
		}
		assertQueriesMatchModel(t, tree, model, compose)
		for step := 0; step < 10 && n > 0; step++ {
			i := r.Intn(n)
			model[i] = randomAffine(r)
			tree.MustUpdate(i, model[i])
			if err := tree.Check(); err != nil {
				t.Fatalf("round %d, step %d: %v", round, step, err)
			}
		}
		assertQueriesMatchModel(t, tree, model, compose)
	}
}

func TestRandomizedMaxAndMin(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		n := r.Intn(99) + 1
		model := make([]int64, n)
		for i := range model {
			model[i] = int64(r.Intn(200) - 100)
		}
		maxT, err := From(Config[int64]{Monoid: monoid.Max[int64]{}}, model)
		if err != nil {
			t.Fatal(err)
		}
		minT, err := From(Config[int64]{Monoid: monoid.Min[int64]{}}, model)
		if err != nil {
			t.Fatal(err)
		}
		assertQueriesMatchModel[int64](t, maxT, model, monoid.Max[int64]{})
		assertQueriesMatchModel[int64](t, minT, model, monoid.Min[int64]{})
	}
}

func FuzzQueryEqualsFold(f *testing.F) {
	f.Add([]byte{3, 1, 4, 1, 5, 9, 2, 6}, uint8(1), uint8(4))
	f.Add([]byte{}, uint8(0), uint8(0))
	f.Add([]byte{255, 0, 128}, uint8(2), uint8(2))
	f.Fuzz(func(t *testing.T, data []byte, s, e uint8) {
		values := make([]uint64, len(data))
		for i, b := range data {
			values[i] = uint64(b)
		}
		m := monoid.GCD[uint64]{}
		tree, err := From[uint64](Config[uint64]{Monoid: m}, values)
		if err != nil {
			t.Fatal(err)
		}
		start, end := int(s), int(e)
		got, err := tree.Query(start, end)
		if start > end || end > tree.LeafCount() {
			if err == nil {
				t.Fatalf("expected error for range [%d,%d), leaf count %d", start, end, tree.LeafCount())
			}
			return
		}
		if err != nil {
			t.Fatalf("query [%d,%d) failed: %v", start, end, err)
		}
		var want uint64
		for k := start; k < end && k < len(values); k++ {
			want = m.Add(want, values[k])
		}
		if got != want {
			t.Fatalf("query [%d,%d): got %d, want %d", start, end, got, want)
		}
	})
}
