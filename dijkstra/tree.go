package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Tree is the single-source result of Engine.Tree: every node settled from
// start together with its final cost and predecessor chain.
// Costs are final once computed; a Tree must not be queried after the graph
// it was built from is mutated.
type Tree[N any, W core.Weight] struct {
	g     *core.Graph[N, W]
	start N
	r     *runner[N, W]
}

// Start returns the source node of the tree.
func (t *Tree[N, W]) Start() N { return t.start }

// Cost returns the shortest-path cost from start to to.
// Errors: ErrEndpointNotFound if to is not a node, ErrNoPath if it was not reached.
func (t *Tree[N, W]) Cost(to N) (float64, error) {
	idx, err := t.settledIndex(to)
	if err != nil {
		return 0, err
	}

	return t.r.arena[idx].cost, nil
}

// Path returns the node sequence from start to to.
// Errors: same as Cost.
func (t *Tree[N, W]) Path(to N) ([]N, error) {
	idx, err := t.settledIndex(to)
	if err != nil {
		return nil, err
	}

	return t.r.walk(idx), nil
}

// Reachable returns every settled node, start included, in settled-set bucket order.
func (t *Tree[N, W]) Reachable() []N {
	return t.r.settled.Keys()
}

// Len returns the number of settled nodes, start included.
func (t *Tree[N, W]) Len() int { return t.r.settled.Size() }

func (t *Tree[N, W]) settledIndex(to N) (int, error) {
	if !t.g.ContainsNode(to) {
		return 0, fmt.Errorf("%w: end %v", ErrEndpointNotFound, to)
	}
	idx, err := t.r.settled.Get(to)
	if err != nil {
		return 0, fmt.Errorf("%w: %v→%v", ErrNoPath, t.start, to)
	}

	return idx, nil
}
