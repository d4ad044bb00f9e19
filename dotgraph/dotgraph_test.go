package dotgraph_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dotgraph"
	"github.com/katalvlaran/lvroute/hashmap"
)

// CampusSuite loads the same campus map from both formats.
type CampusSuite struct {
	suite.Suite
}

func (s *CampusSuite) assertCampus(g *dotgraph.Graph) {
	r := s.Require()
	r.Equal(7, g.NodeCount())
	r.Equal(8, g.EdgeCount())
	r.True(g.ContainsNode("Picnic Point"))

	w, err := g.GetEdge("Memorial Union", "Science Hall")
	r.NoError(err)
	r.Equal(105.8, w)
	w, err = g.GetEdge("Bascom Hall", "Computer Sciences")
	r.NoError(err)
	r.Equal(300.5, w)
	r.True(g.ContainsEdge("Computer Sciences", "Union South"))
	r.False(g.ContainsEdge("Science Hall", "Memorial Union"))
}

func (s *CampusSuite) TestDOT() {
	g := core.NewStringGraph[float64]()
	s.Require().NoError(dotgraph.LoadFile("testdata/campus.dot", dotgraph.FormatAuto, g))
	s.assertCampus(g)
}

func (s *CampusSuite) TestYAML() {
	g := core.NewStringGraph[float64]()
	s.Require().NoError(dotgraph.LoadFile("testdata/campus.yaml", "", g))
	s.assertCampus(g)
}

func (s *CampusSuite) TestExplicitFormatOverridesExtension() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "campus.txt")
	data, err := os.ReadFile("testdata/campus.dot")
	s.Require().NoError(err)
	s.Require().NoError(os.WriteFile(path, data, 0o600))

	g := core.NewStringGraph[float64]()
	s.Require().ErrorIs(dotgraph.LoadFile(path, dotgraph.FormatAuto, g), dotgraph.ErrUnknownFormat)
	s.Require().NoError(dotgraph.LoadFile(path, dotgraph.FormatDOT, g))
	s.assertCampus(g)
}

func TestCampusSuite(t *testing.T) {
	suite.Run(t, new(CampusSuite))
}

func TestDetectFormat(t *testing.T) {
	for path, want := range map[string]string{
		"a.dot":      dotgraph.FormatDOT,
		"maps/b.GV":  dotgraph.FormatDOT,
		"c.yaml":     dotgraph.FormatYAML,
		"/tmp/d.yml": dotgraph.FormatYAML,
	} {
		got, err := dotgraph.DetectFormat(path)
		require.NoError(t, err, path)
		require.Equal(t, want, got, path)
	}
	_, err := dotgraph.DetectFormat("graph.json")
	require.ErrorIs(t, err, dotgraph.ErrUnknownFormat)
}

func TestMissingFile(t *testing.T) {
	g := core.NewStringGraph[float64]()
	err := dotgraph.LoadFile(filepath.Join(t.TempDir(), "nope.dot"), dotgraph.FormatAuto, g)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReadUnknownFormat(t *testing.T) {
	err := dotgraph.Read(strings.NewReader(""), "xml", core.NewStringGraph[float64]())
	require.ErrorIs(t, err, dotgraph.ErrUnknownFormat)
}

func TestDOTChainsAndUndirected(t *testing.T) {
	g := core.NewStringGraph[float64]()
	require.NoError(t, dotgraph.ReadDOT(strings.NewReader(`
digraph {
	node [shape=box];
	A -> B -> C [w=2];
	E;
}`), g))

	require.ElementsMatch(t, []string{"A", "B", "C", "E"}, g.AllNodes())
	require.Equal(t, 2, g.EdgeCount())
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}} {
		w, err := g.GetEdge(e[0], e[1])
		require.NoError(t, err)
		require.Equal(t, 2.0, w)
	}
	require.False(t, g.ContainsEdge("A", "C"))

	// undirected edges go both ways
	u := core.NewStringGraph[float64]()
	require.NoError(t, dotgraph.ReadDOT(strings.NewReader(`graph { "C" -- "D" [seconds="1.5"]; }`), u))
	require.Equal(t, 2, u.EdgeCount())
	w, err := u.GetEdge("D", "C")
	require.NoError(t, err)
	require.Equal(t, 1.5, w)
	require.True(t, u.ContainsEdge("C", "D"))
}

func TestDOTErrors(t *testing.T) {
	cases := map[string]string{
		"no weight":  `digraph { "A" -> "B"; }`,
		"bad weight": `digraph { "A" -> "B" [seconds=fast]; }`,
		"syntax":     `digraph { "A" -> ; `,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			err := dotgraph.ReadDOT(strings.NewReader(src), core.NewStringGraph[float64]())
			require.ErrorIs(t, err, dotgraph.ErrSyntax)
		})
	}
}

func TestDuplicateEdgeRejected(t *testing.T) {
	g := core.NewStringGraph[float64]()
	err := dotgraph.ReadDOT(strings.NewReader(`digraph {
	"A" -> "B" [seconds=1];
	"A" -> "B" [seconds=2];
}`), g)
	require.ErrorIs(t, err, core.ErrDuplicateEdge)
	require.ErrorIs(t, err, hashmap.ErrDuplicateKey)
}

func TestYAMLErrors(t *testing.T) {
	cases := map[string]string{
		"unknown field": "nodes: [A]\nvertices: [B]\n",
		"missing to":    "edges:\n  - {from: A, weight: 1}\n",
		"bad weight":    "edges:\n  - {from: A, to: B, weight: slow}\n",
		"empty node":    "nodes: [\"\"]\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			err := dotgraph.ReadYAML(strings.NewReader(src), core.NewStringGraph[float64]())
			require.ErrorIs(t, err, dotgraph.ErrSyntax)
		})
	}
}

func TestEmptyYAML(t *testing.T) {
	g := core.NewStringGraph[float64]()
	require.NoError(t, dotgraph.ReadYAML(strings.NewReader(""), g))
	require.Zero(t, g.NodeCount())
}
