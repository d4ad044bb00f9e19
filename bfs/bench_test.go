package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/builder"
)

func BenchmarkBFS_Grid100(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	start := builder.GridID(0, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, start)
	}
}
