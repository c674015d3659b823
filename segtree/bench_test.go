package segtree

import (
	"testing"

	"github.com/npillmayer/complib/monoid"
)

func BenchmarkUpdateAndQuery(b *testing.B) {
	const n = 1 << 16
	values := make([]int64, n)
	for i := range values {
		values[i] = int64(i * 7 % 1013)
	}
	tree, err := From(Config[int64]{Monoid: monoid.Max[int64]{}}, values)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := i % n
		tree.MustUpdate(k, int64(i))
		_ = tree.MustQuery(k/2, k+1)
	}
}
