package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/hashmap"
)

// noParent marks the start item.
const noParent = -1

// item is one visited node: its depth from start and the index of its parent item.
type item[N any] struct {
	id     N
	depth  int
	parent int
}

// Result holds the outcome of a BFS traversal.
// Order lists visited nodes in visit sequence.
type Result[N any] struct {
	Order []N
	items []item[N]
	index *hashmap.Map[N, int] // node → position in items
}

// Reached reports whether id was visited.
func (r *Result[N]) Reached(id N) bool { return r.index.ContainsKey(id) }

// Depth returns the edge count from start to id.
// Errors: ErrNotReached.
func (r *Result[N]) Depth(id N) (int, error) {
	i, err := r.lookup(id)
	if err != nil {
		return 0, err
	}

	return r.items[i].depth, nil
}

// PathTo reconstructs the fewest-edge path from the start node to dest.
// Errors: ErrNotReached.
func (r *Result[N]) PathTo(dest N) ([]N, error) {
	i, err := r.lookup(dest)
	if err != nil {
		return nil, err
	}
	path := make([]N, 0, r.items[i].depth+1)
	for ; i != noParent; i = r.items[i].parent {
		path = append(path, r.items[i].id)
	}
	// reverse to get start → dest
	for a, b := 0, len(path)-1; a < b; a, b = a+1, b-1 {
		path[a], path[b] = path[b], path[a]
	}

	return path, nil
}

func (r *Result[N]) lookup(id N) (int, error) {
	i, err := r.index.Get(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotReached, id)
	}

	return i, nil
}

// walker encapsulates mutable BFS state.
type walker[N any, W core.Weight] struct {
	graph *core.Graph[N, W]
	opts  Options[N]
	head  int // next item to dequeue; items doubles as the queue
	res   *Result[N]
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any OnVisit error.
func BFS[N any, W core.Weight](g *core.Graph[N, W], start N, opts ...Option[N]) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.ContainsNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	n := g.NodeCount()
	w := &walker[N, W]{
		graph: g,
		opts:  o,
		res: &Result[N]{
			Order: make([]N, 0, n),
			items: make([]item[N], 0, n),
			index: hashmap.New[N, int](g.Hasher(), hashmap.WithCapacity(n+1)),
		},
	}
	w.enqueue(start, 0, noParent)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d and appends it to the queue.
func (w *walker[N, W]) enqueue(id N, d, parent int) {
	_ = w.res.index.Put(id, len(w.res.items))
	w.res.items = append(w.res.items, item[N]{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N, W]) loop() error {
	for w.head < len(w.res.items) {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		idx := w.head
		w.head++
		cur := w.res.items[idx]
		w.res.Order = append(w.res.Order, cur.id)
		if err := w.opts.OnVisit(cur.id, cur.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", cur.id, err)
		}
		if err := w.enqueueNeighbors(cur, idx); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen successor.
func (w *walker[N, W]) enqueueNeighbors(cur item[N], idx int) error {
	next := cur.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}

	return w.graph.RangeSuccessors(cur.id, func(to N, _ W) bool {
		if !w.opts.FilterNeighbor(cur.id, to) || w.res.index.ContainsKey(to) {
			return true
		}
		w.enqueue(to, next, idx)
		return true
	})
}
