package simgo

import (
	"fmt"
	"testing"

	"github.com/hupe1980/simgo/testutil"
)

func benchmarkEngine(b *testing.B, entries int) *Engine[int] {
	b.Helper()

	rng := testutil.NewRNG(1)

	engine, err := New[int]()
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < entries; i++ {
		engine.Insert(i, rng.Phrase(4, 3, 10))
	}

	return engine
}

func BenchmarkInsert(b *testing.B) {
	rng := testutil.NewRNG(1)
	contents := make([]string, 1024)
	for i := range contents {
		contents[i] = rng.Phrase(4, 3, 10)
	}

	engine, err := New[int]()
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.Insert(i, contents[i%len(contents)])
	}
}

func BenchmarkSearch(b *testing.B) {
	for _, entries := range []int{100, 1000, 10000} {
		b.Run(fmt.Sprintf("entries=%d", entries), func(b *testing.B) {
			engine := benchmarkEngine(b, entries)

			rng := testutil.NewRNG(2)
			queries := make([]string, 64)
			for i := range queries {
				queries[i] = rng.Typo(rng.Phrase(2, 3, 10))
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				engine.Search(queries[i%len(queries)])
			}
		})
	}
}

func BenchmarkDeleteInsert(b *testing.B) {
	engine := benchmarkEngine(b, 1000)

	rng := testutil.NewRNG(3)
	contents := make([]string, 64)
	for i := range contents {
		contents[i] = rng.Phrase(4, 3, 10)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.Insert(i%1000, contents[i%len(contents)])
	}
}
