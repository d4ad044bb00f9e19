package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
)

func TestTopologyCounts(t *testing.T) {
	cases := []struct {
		name         string
		con          builder.Constructor
		nodes, edges int
	}{
		{"path", builder.Path(5), 5, 4},
		{"cycle", builder.Cycle(5), 5, 5},
		{"star", builder.Star(5), 5, 8},
		{"grid", builder.Grid(3, 4), 12, 2 * (3*3 + 2*4)},
		{"grid-1x1", builder.Grid(1, 1), 1, 0},
		{"complete", builder.Complete(4), 4, 12},
		{"sparse-p0", builder.RandomSparse(6, 0), 6, 0},
		{"sparse-p1", builder.RandomSparse(6, 1), 6, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.con)
			require.NoError(t, err)
			require.Equal(t, tc.nodes, g.NodeCount())
			require.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestValidation(t *testing.T) {
	cases := []struct {
		con  builder.Constructor
		want error
	}{
		{builder.Path(1), builder.ErrTooFewVertices},
		{builder.Cycle(2), builder.ErrTooFewVertices},
		{builder.Star(1), builder.ErrTooFewVertices},
		{builder.Grid(0, 3), builder.ErrTooFewVertices},
		{builder.Complete(0), builder.ErrTooFewVertices},
		{builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		_, err := builder.BuildGraph(nil, nil, tc.con)
		require.ErrorIs(t, err, tc.want)
	}
}

func TestComposeIsIdempotent(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(5), builder.Cycle(5), builder.Path(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.NodeCount())
	require.Equal(t, 5, g.EdgeCount())
	require.True(t, g.ContainsEdge("4", "0"))
}

func TestSeedDeterminism(t *testing.T) {
	build := func(seed int64) []core.Edge[string, float64] {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithNodeCapacity(4)},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformIntWeight(0, 9)},
			builder.RandomSparse(20, 0.2),
		)
		require.NoError(t, err)
		return g.Edges()
	}

	a, b := build(7), build(7)
	require.NotEmpty(t, a)
	require.ElementsMatch(t, a, b)
	for _, e := range a {
		require.GreaterOrEqual(t, e.Weight, 0.0)
		require.LessOrEqual(t, e.Weight, 9.0)
		require.Equal(t, float64(int(e.Weight)), e.Weight)
	}
}

func TestIDSchemes(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn)},
		builder.Path(3))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"A", "B", "C"}, g.AllNodes())

	require.Equal(t, "0", builder.DefaultIDFn(0))
	require.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	require.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	require.Equal(t, "2,3", builder.GridID(2, 3))
	require.Panics(t, func() { builder.SymbolIDFn(26) })
	require.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
}

func TestWeightFns(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	require.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	require.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(rng))
	require.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(3, 4)(nil))
	require.Equal(t, 3.0, builder.UniformWeightFn(3, 3)(rng))
	for i := 0; i < 100; i++ {
		w := builder.UniformWeightFn(3, 4)(rng)
		require.True(t, w >= 3 && w < 4, w)
	}

	require.Panics(t, func() { builder.ConstantWeightFn(-1) })
	require.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	require.Panics(t, func() { builder.UniformIntWeightFn(-1, 4) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
}

func TestConstantWeightOption(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithConstantWeight(7)}, builder.Star(3))
	require.NoError(t, err)
	w, err := g.GetEdge(builder.CenterVertexID, "1")
	require.NoError(t, err)
	require.Equal(t, 7.0, w)
}
