package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/hashmap"
)

// noPredecessor marks the start search node.
const noPredecessor = -1

// Engine runs shortest-path queries against one graph.
// It holds no per-query state; every query allocates its own runner.
type Engine[N any, W core.Weight] struct {
	g       *core.Graph[N, W]
	options Options
}

// New creates an Engine over g.
// Errors: ErrNilGraph.
func New[N any, W core.Weight](g *core.Graph[N, W], opts ...Option) (*Engine[N, W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine[N, W]{g: g, options: cfg}, nil
}

// Graph returns the graph this engine queries.
func (e *Engine[N, W]) Graph() *core.Graph[N, W] { return e.g }

// ShortestPathData returns the node sequence of the cheapest path from start
// to end, both inclusive. start == end yields a one-element path.
//
// Errors: ErrEndpointNotFound, ErrNoPath, ErrNegativeWeight. On error the
// returned slice is nil.
func (e *Engine[N, W]) ShortestPathData(start, end N) ([]N, error) {
	p, err := e.ShortestPath(start, end)
	if err != nil {
		return nil, err
	}

	return p.Nodes, nil
}

// ShortestPathCost returns the total weight of the cheapest path from start to end.
// Errors: same as ShortestPathData.
func (e *Engine[N, W]) ShortestPathCost(start, end N) (float64, error) {
	p, err := e.ShortestPath(start, end)
	if err != nil {
		return 0, err
	}

	return p.Cost, nil
}

// ShortestPath computes both the node sequence and its cost in one run.
//
// Validation order: start, then end (ErrEndpointNotFound names which one).
func (e *Engine[N, W]) ShortestPath(start, end N) (Path[N], error) {
	if err := e.validate(start, "start"); err != nil {
		return Path[N]{}, err
	}
	if err := e.validate(end, "end"); err != nil {
		return Path[N]{}, err
	}

	r := e.newRunner(start)
	r.target, r.hasTarget = end, true
	if err := r.process(); err != nil {
		return Path[N]{}, err
	}
	if r.result == noPredecessor {
		return Path[N]{}, fmt.Errorf("%w: %v→%v", ErrNoPath, start, end)
	}

	return Path[N]{Nodes: r.walk(r.result), Cost: r.arena[r.result].cost}, nil
}

// Tree settles every node reachable from start and returns the resulting
// shortest-path tree. WithMaxCost still applies; WithFullDrain is implied.
// Errors: ErrEndpointNotFound, ErrNegativeWeight.
func (e *Engine[N, W]) Tree(start N) (*Tree[N, W], error) {
	if err := e.validate(start, "start"); err != nil {
		return nil, err
	}
	r := e.newRunner(start)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Tree[N, W]{g: e.g, start: start, r: r}, nil
}

func (e *Engine[N, W]) validate(id N, role string) error {
	if !e.g.ContainsNode(id) {
		return fmt.Errorf("%w: %s %v", ErrEndpointNotFound, role, id)
	}

	return nil
}

// newRunner builds the per-query state and seeds the frontier with start.
func (e *Engine[N, W]) newRunner(start N) *runner[N, W] {
	r := &runner[N, W]{
		g:       e.g,
		options: e.options,
		arena:   make([]searchNode[N], 0, e.g.NodeCount()),
		pq:      make(frontier, 0, e.g.NodeCount()),
		settled: hashmap.New[N, int](e.g.Hasher(), hashmap.WithCapacity(e.options.SettledCapacity)),
		result:  noPredecessor,
	}
	r.init(start)

	return r
}

// searchNode is one candidate path endpoint: the node reached, the cumulative
// cost from start, and the arena index of the predecessor (noPredecessor for start).
type searchNode[N any] struct {
	id   N
	cost float64
	pred int
}

// runner holds the mutable state for a single query.
type runner[N any, W core.Weight] struct {
	g         *core.Graph[N, W]    // read-only within a query
	options   Options              // engine configuration
	arena     []searchNode[N]      // every search node created by this query
	pq        frontier             // min-heap of arena indices by cost
	settled   *hashmap.Map[N, int] // node → arena index of its settling search node
	target    N                    // end node for single-pair queries
	hasTarget bool                 // false for Tree queries
	result    int                  // arena index of the settled target, or noPredecessor
}

// init pushes the start search node at cost 0.
func (r *runner[N, W]) init(start N) {
	heap.Init(&r.pq)
	r.push(searchNode[N]{id: start, cost: 0, pred: noPredecessor})
}

// push appends sn to the arena and enqueues its index.
func (r *runner[N, W]) push(sn searchNode[N]) {
	r.arena = append(r.arena, sn)
	heap.Push(&r.pq, frontierItem{cost: sn.cost, idx: len(r.arena) - 1})
}

// process is the relax loop.
//
// Loop termination conditions:
//
//   - The frontier is empty.
//   - The target was settled and FullDrain is off.
//   - The cheapest frontier entry exceeds MaxCost.
func (r *runner[N, W]) process() error {
	equal := r.g.Hasher().Equal
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest entry.
		item := heap.Pop(&r.pq).(frontierItem)
		cur := r.arena[item.idx]

		// 2) Stale entry: this node was settled by a cheaper pop.
		if r.settled.ContainsKey(cur.id) {
			continue
		}

		// 3) Everything left costs more than the cap.
		if cur.cost > r.options.MaxCost {
			break
		}

		// 4) Settle. Its cost is now final.
		if err := r.settled.Put(cur.id, item.idx); err != nil {
			return fmt.Errorf("dijkstra: settle %v: %w", cur.id, err)
		}

		// 5) First settle of the target carries the shortest cost.
		if r.hasTarget && equal(cur.id, r.target) {
			r.result = item.idx
			if !r.options.FullDrain {
				return nil
			}
		}

		// 6) Relax outgoing edges.
		if err := r.relax(cur, item.idx); err != nil {
			return err
		}
	}

	return nil
}

// relax pushes a search node for every unsettled successor of cur.
// Neighbors already waiting in the frontier at a lower cost are still pushed;
// the settle-time check discards the dearer copy.
func (r *runner[N, W]) relax(cur searchNode[N], idx int) error {
	var relaxErr error
	err := r.g.RangeSuccessors(cur.id, func(to N, w W) bool {
		cost := float64(w)
		if cost < 0 {
			relaxErr = fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, cur.id, to, w)
			return false
		}
		if r.settled.ContainsKey(to) {
			return true
		}
		r.push(searchNode[N]{id: to, cost: cur.cost + cost, pred: idx})
		return true
	})
	if err != nil {
		return fmt.Errorf("dijkstra: successors of %v: %w", cur.id, err)
	}

	return relaxErr
}

// walk follows predecessor links from idx back to start and returns the
// identifiers in start→end order.
func (r *runner[N, W]) walk(idx int) []N {
	var path []N
	for i := idx; i != noPredecessor; i = r.arena[i].pred {
		path = append(path, r.arena[i].id)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// frontierItem is one frontier entry: an arena index and its cost.
type frontierItem struct {
	cost float64
	idx  int
}

// frontier is a min-heap of frontierItem ordered by cost ascending.
type frontier []frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq frontier) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type frontierItem.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(frontierItem)) }

// Pop removes and returns the last element after heap reordering.
// Called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
