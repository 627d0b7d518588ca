package core_test

import (
	"fmt"
	"testing"

	"github.com/luk036/xnetgo/core"
)

// buildChain links n nodes into a path.
func buildChain(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i+1 < n; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", i+1))
	}

	return g
}

func BenchmarkAddEdge(b *testing.B) {
	ids := make([]string, 1024)
	for i := range ids {
		ids[i] = fmt.Sprintf("n%d", i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := core.NewGraph()
		for j := 0; j+1 < len(ids); j++ {
			_, _ = g.AddEdge(ids[j], ids[j+1])
		}
	}
}

func BenchmarkHasEdge(b *testing.B) {
	g := buildChain(1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.HasEdge("n500", "n501")
		g.HasEdge("n500", "n999")
	}
}

func BenchmarkEdgeIteration(b *testing.B) {
	g := buildChain(1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var count int
		for range g.Edges().All() {
			count++
		}
		if count != 1023 {
			b.Fatalf("unexpected edge count %d", count)
		}
	}
}

func BenchmarkCopy(b *testing.B) {
	g := buildChain(1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Copy()
	}
}

func BenchmarkDegreeAll(b *testing.B) {
	g := buildChain(1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum float64
		for _, d := range g.Degree().All() {
			sum += d
		}
		_ = sum
	}
}
