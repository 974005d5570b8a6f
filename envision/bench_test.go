package envision_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/envision/builder"
	"github.com/katalvlaran/envision/envision"
	"github.com/katalvlaran/envision/quantity"
)

func chainModel(b *testing.B, n int) *quantity.Model {
	b.Helper()
	m, err := builder.BuildModel(fmt.Sprintf("chain%d", n), nil, builder.Chain(n))
	if err != nil {
		b.Fatal(err)
	}
	return m
}

// BenchmarkBuild_Chain measures full envisionment of container chains; chain5
// enumerates 6·9⁴ = 39366 candidates.
func BenchmarkBuild_Chain(b *testing.B) {
	for _, n := range []int{3, 4, 5} {
		m := chainModel(b, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for b.Loop() {
				if _, err := envision.Build(context.Background(), m); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkBuild_Workers compares shard counts on the same chain.
func BenchmarkBuild_Workers(b *testing.B) {
	m := chainModel(b, 5)
	for _, w := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			for b.Loop() {
				if _, err := envision.Build(context.Background(), m, envision.WithWorkers(w)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
