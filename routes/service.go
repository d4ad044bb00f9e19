package routes

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/dotgraph"
	"github.com/katalvlaran/lvroute/hashmap"
	"github.com/katalvlaran/lvroute/logging"
	"github.com/katalvlaran/lvroute/metrics"
)

// ErrNoSource is returned by Reload before any successful Load.
var ErrNoSource = errors.New("routes: no graph file loaded")

// Operation names used in metrics labels.
const (
	OpLocations = "locations"
	OpPath      = "path"
	OpCost      = "cost"
	OpTimes     = "times"
	OpFurthest  = "furthest"
	OpStops     = "stops"
)

// Route is a shortest path with its per-segment times.
// len(Times) == len(Stops)-1 and Total is their sum.
type Route struct {
	Stops []string  `json:"stops"`
	Times []float64 `json:"times"`
	Total float64   `json:"total"`
}

// Furthest is the result of a furthest-destination query.
// Destination is "" when nothing else is reachable from Start.
type Furthest struct {
	Start       string   `json:"start"`
	Destination string   `json:"destination"`
	Cost        float64  `json:"cost"`
	Stops       []string `json:"stops"`
}

// snapshot is one published graph with its engine.
type snapshot struct {
	g        *dotgraph.Graph
	eng      *dijkstra.Engine[string, float64]
	loadedAt time.Time
}

// Service serves route queries. Safe for concurrent use.
type Service struct {
	mu       sync.RWMutex
	cur      *snapshot
	path     string
	format   string
	capacity int
	metrics  *metrics.Metrics
}

// Option configures a Service.
type Option func(*Service)

// WithMetrics records query and reload metrics on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithCapacity sets the initial node registry capacity of every loaded graph.
// Panics if n <= 0.
func WithCapacity(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("routes: WithCapacity(%d): %v", n, hashmap.ErrBadCapacity))
	}

	return func(s *Service) { s.capacity = n }
}

// NewService returns a Service serving an empty graph.
func NewService(opts ...Option) *Service {
	s := &Service{capacity: hashmap.DefaultCapacity}
	for _, opt := range opts {
		opt(s)
	}
	s.cur = s.build(core.NewStringGraph[float64](core.WithNodeCapacity(s.capacity)))

	return s
}

func (s *Service) build(g *dotgraph.Graph) *snapshot {
	// New only fails on a nil graph.
	eng, _ := dijkstra.New(g)

	return &snapshot{g: g, eng: eng, loadedAt: time.Now()}
}

func (s *Service) snap() *snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cur
}

// Load replaces the served graph with the contents of path and remembers the
// file for Reload. On error the previous graph stays in place.
func (s *Service) Load(path, format string) error {
	start := time.Now()
	g := core.NewStringGraph[float64](core.WithNodeCapacity(s.capacity))
	err := dotgraph.LoadFile(path, format, g)
	if err == nil {
		s.mu.Lock()
		s.path, s.format = path, format
		s.mu.Unlock()
	}

	return s.publish(g, err, start, "path", path)
}

// LoadReader replaces the served graph with a document read from r.
// format must be dotgraph.FormatDOT or dotgraph.FormatYAML.
func (s *Service) LoadReader(r io.Reader, format string) error {
	start := time.Now()
	g := core.NewStringGraph[float64](core.WithNodeCapacity(s.capacity))
	err := dotgraph.Read(r, format, g)

	return s.publish(g, err, start, "format", format)
}

// Reload re-reads the file given to the last successful Load.
func (s *Service) Reload() error {
	s.mu.RLock()
	path, format := s.path, s.format
	s.mu.RUnlock()
	if path == "" {
		return ErrNoSource
	}

	return s.Load(path, format)
}

func (s *Service) publish(g *dotgraph.Graph, err error, start time.Time, srcKey, src string) error {
	if s.metrics != nil {
		s.metrics.ObserveReload(err)
	}
	if err != nil {
		logging.Warn("graph load failed", srcKey, src, "error", err)
		return err
	}

	next := s.build(g)
	s.mu.Lock()
	s.cur = next
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.SetGraphSize(g.NodeCount(), g.EdgeCount())
	}
	logging.Info("graph loaded",
		srcKey, src,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"durationMs", time.Since(start).Milliseconds(),
	)

	return nil
}

// Stats reports the size of the served graph and when it was loaded.
func (s *Service) Stats() (nodes, edges int, loadedAt time.Time) {
	cur := s.snap()

	return cur.g.NodeCount(), cur.g.EdgeCount(), cur.loadedAt
}

func (s *Service) observe(op string, start time.Time, err error) {
	if s.metrics != nil {
		s.metrics.ObserveQuery(op, start, err)
	}
}

// Locations returns every location in the graph, sorted.
func (s *Service) Locations() []string {
	start := time.Now()
	names := s.snap().g.AllNodes()
	sort.Strings(names)
	s.observe(OpLocations, start, nil)

	return names
}

// PathLocations returns the stops of the shortest path from start to end.
// Errors: dijkstra.ErrEndpointNotFound, dijkstra.ErrNoPath.
func (s *Service) PathLocations(start, end string) (stops []string, err error) {
	defer func(t time.Time) { s.observe(OpPath, t, err) }(time.Now())

	return s.snap().eng.ShortestPathData(start, end)
}

// PathCost returns the total travel time of the shortest path.
// Errors: same as PathLocations.
func (s *Service) PathCost(start, end string) (cost float64, err error) {
	defer func(t time.Time) { s.observe(OpCost, t, err) }(time.Now())

	return s.snap().eng.ShortestPathCost(start, end)
}

// PathTimes returns the travel time of every segment along the shortest path,
// in path order. A start == end query yields an empty, non-nil slice.
// Errors: same as PathLocations.
func (s *Service) PathTimes(start, end string) (times []float64, err error) {
	defer func(t time.Time) { s.observe(OpTimes, t, err) }(time.Now())

	r, err := routeOn(s.snap(), start, end)
	if err != nil {
		return nil, err
	}

	return r.Times, nil
}

// Route returns the stops, segment times and total of the shortest path in
// one engine run.
func (s *Service) Route(start, end string) (r Route, err error) {
	defer func(t time.Time) { s.observe(OpPath, t, err) }(time.Now())

	return routeOn(s.snap(), start, end)
}

func routeOn(cur *snapshot, start, end string) (Route, error) {
	p, err := cur.eng.ShortestPath(start, end)
	if err != nil {
		return Route{}, err
	}

	return segments(cur.g, p.Nodes)
}

// FewestStops returns the route from start to end with the fewest segments,
// regardless of travel time. Among equal-length routes the one found first
// in edge insertion order wins.
// Errors: dijkstra.ErrEndpointNotFound, dijkstra.ErrNoPath.
func (s *Service) FewestStops(start, end string) (r Route, err error) {
	defer func(t time.Time) { s.observe(OpStops, t, err) }(time.Now())

	cur := s.snap()
	if !cur.g.ContainsNode(end) {
		return Route{}, fmt.Errorf("%w: end %s", dijkstra.ErrEndpointNotFound, end)
	}
	res, err := bfs.BFS(cur.g, start)
	if errors.Is(err, bfs.ErrStartVertexNotFound) {
		return Route{}, fmt.Errorf("%w: start %s", dijkstra.ErrEndpointNotFound, start)
	}
	if err != nil {
		return Route{}, err
	}
	stops, err := res.PathTo(end)
	if err != nil {
		return Route{}, fmt.Errorf("%w: %s→%s", dijkstra.ErrNoPath, start, end)
	}

	return segments(cur.g, stops)
}

// segments looks up the weight of every hop along stops and sums them.
func segments(g *dotgraph.Graph, stops []string) (Route, error) {
	r := Route{Stops: stops, Times: make([]float64, 0, len(stops)-1)}
	for i := 0; i+1 < len(stops); i++ {
		w, err := g.GetEdge(stops[i], stops[i+1])
		if err != nil {
			return Route{}, fmt.Errorf("routes: segment %s→%s: %w", stops[i], stops[i+1], err)
		}
		r.Times = append(r.Times, w)
		r.Total += w
	}

	return r, nil
}

// FurthestFrom returns the location whose shortest-path time from start is
// largest. Unreachable locations are skipped; on equal times the location
// seen first wins. The result is "" when no other location is reachable.
// Errors: dijkstra.ErrEndpointNotFound.
func (s *Service) FurthestFrom(start string) (dest string, err error) {
	f, err := s.Furthest(start)

	return f.Destination, err
}

// Furthest is FurthestFrom with the cost and stops of the winning path.
func (s *Service) Furthest(start string) (f Furthest, err error) {
	defer func(t time.Time) { s.observe(OpFurthest, t, err) }(time.Now())

	cur := s.snap()
	tree, err := cur.eng.Tree(start)
	if err != nil {
		return Furthest{}, err
	}

	f = Furthest{Start: start, Cost: -1}
	for _, loc := range cur.g.AllNodes() {
		if loc == start {
			continue
		}
		cost, err := tree.Cost(loc)
		if errors.Is(err, dijkstra.ErrNoPath) {
			continue
		}
		if err != nil {
			return Furthest{}, err
		}
		if cost > f.Cost {
			f.Cost, f.Destination = cost, loc
		}
	}
	if f.Destination == "" {
		return Furthest{Start: start}, nil
	}
	if f.Stops, err = tree.Path(f.Destination); err != nil {
		return Furthest{}, err
	}

	return f, nil
}
