package dotgraph

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/graph/formats/dot"
	"gonum.org/v1/gonum/graph/formats/dot/ast"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/core"
)

// Supported formats.
const (
	FormatAuto = "auto"
	FormatDOT  = "dot"
	FormatYAML = "yaml"
)

var (
	// ErrUnknownFormat is returned for an unsupported format name or extension.
	ErrUnknownFormat = errors.New("dotgraph: unknown format")

	// ErrSyntax wraps every malformed-content failure.
	ErrSyntax = errors.New("dotgraph: syntax error")
)

// Graph is the concrete graph type produced by the loaders.
type Graph = core.Graph[string, float64]

// DetectFormat maps a file extension to a format.
func DetectFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dot", ".gv":
		return FormatDOT, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: extension of %q", ErrUnknownFormat, path)
}

// LoadFile reads path into g. format may be FormatAuto.
// A missing file yields an error wrapping fs.ErrNotExist.
func LoadFile(path, format string, g *Graph) error {
	if format == "" || format == FormatAuto {
		var err error
		if format, err = DetectFormat(path); err != nil {
			return err
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("dotgraph: open: %w", err)
	}
	defer f.Close()

	if err := Read(f, format, g); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// Read parses r in the given format (FormatDOT or FormatYAML) into g.
func Read(r io.Reader, format string, g *Graph) error {
	switch format {
	case FormatDOT:
		return ReadDOT(r, g)
	case FormatYAML:
		return ReadYAML(r, g)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// ReadDOT parses a DOT document from r into g.
func ReadDOT(r io.Reader, g *Graph) error {
	file, err := dot.Parse(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	for _, dg := range file.Graphs {
		if err := addStmts(g, dg.Stmts); err != nil {
			return err
		}
	}

	return nil
}

func addStmts(g *Graph, stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.NodeStmt:
			if err := ensureNode(g, unquote(s.Node.ID)); err != nil {
				return err
			}
		case *ast.EdgeStmt:
			if err := addEdgeStmt(g, s); err != nil {
				return err
			}
		case *ast.Subgraph:
			if err := addStmts(g, s.Stmts); err != nil {
				return err
			}
		}
	}

	return nil
}

// addEdgeStmt handles chains such as a -> b -> c; every hop gets the same weight.
func addEdgeStmt(g *Graph, s *ast.EdgeStmt) error {
	from, err := vertexID(s.From)
	if err != nil {
		return err
	}
	if len(s.Attrs) == 0 {
		return fmt.Errorf("%w: edge from %q has no weight attribute", ErrSyntax, from)
	}
	raw := unquote(s.Attrs[0].Val)
	w, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("%w: edge from %q: weight %q is not a number", ErrSyntax, from, raw)
	}

	for hop := s.To; hop != nil; hop = hop.To {
		to, err := vertexID(hop.Vertex)
		if err != nil {
			return err
		}
		if err := addEdge(g, from, to, w); err != nil {
			return err
		}
		if !hop.Directed {
			if err := addEdge(g, to, from, w); err != nil {
				return err
			}
		}
		from = to
	}

	return nil
}

func vertexID(v ast.Vertex) (string, error) {
	n, ok := v.(*ast.Node)
	if !ok {
		return "", fmt.Errorf("%w: subgraph edge endpoints are not supported", ErrSyntax)
	}

	return unquote(n.ID), nil
}

// unquote strips DOT string quoting; bare IDs are returned as is.
func unquote(id string) string {
	if len(id) >= 2 && id[0] == '"' && id[len(id)-1] == '"' {
		if s, err := strconv.Unquote(id); err == nil {
			return s
		}
		return id[1 : len(id)-1]
	}

	return id
}

// yamlGraph is the YAML document shape.
type yamlGraph struct {
	Nodes []string   `yaml:"nodes"`
	Edges []yamlEdge `yaml:"edges"`
}

type yamlEdge struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// ReadYAML parses a YAML document from r into g.
func ReadYAML(r io.Reader, g *Graph) error {
	var doc yamlGraph
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	for _, id := range doc.Nodes {
		if err := ensureNode(g, id); err != nil {
			return err
		}
	}
	for i, e := range doc.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("%w: edges[%d] needs from and to", ErrSyntax, i)
		}
		if err := addEdge(g, e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("edges[%d]: %w", i, err)
		}
	}

	return nil
}

// ensureNode inserts id unless it is already present.
func ensureNode(g *Graph, id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty node name", ErrSyntax)
	}
	if g.ContainsNode(id) {
		return nil
	}

	return g.InsertNode(id)
}

// addEdge inserts both endpoints (when new), then the edge.
func addEdge(g *Graph, from, to string, w float64) error {
	if err := ensureNode(g, from); err != nil {
		return err
	}
	if err := ensureNode(g, to); err != nil {
		return err
	}

	return g.InsertEdge(from, to, w)
}
