package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bfsroute/core"
)

// walker holds the state of one full traversal. It shares Node and
// Frontier with Search but marks vertices on enqueue and has no goal.
type walker struct {
	graph    *core.Graph
	opts     BFSOptions
	ctx      context.Context
	frontier *Frontier
	res      *BFSResult
}

// BFS traverses everything reachable from startID, ignoring weights, and
// returns the visit order, hop depth and BFS-tree parent of each vertex.
//
// Unlike Search, BFS insists that startID is a vertex of g
// (ErrStartVertexNotFound). Other errors: ErrGraphNil, ErrOptionViolation,
// ctx.Err() on cancellation, or a wrapped OnVisit error; in the last two
// cases the partial result is returned alongside the error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:    g,
		opts:     o,
		ctx:      o.Ctx,
		frontier: NewFrontier(),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.mark(newRoot(startID))

	return w.res, w.loop()
}

// mark records node in the tree and queues it.
func (w *walker) mark(node *Node) {
	w.res.Depth[node.State] = node.Depth
	if node.Parent != nil {
		w.res.Parent[node.State] = node.Parent.State
	}
	w.opts.OnEnqueue(node.State, node.Depth)
	w.frontier.Push(node)
}

func (w *walker) loop() error {
	for {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		node, ok := w.frontier.Pop()
		if !ok {
			return nil
		}
		w.opts.OnDequeue(node.State, node.Depth)
		w.res.Order = append(w.res.Order, node.State)
		if err := w.opts.OnVisit(node.State, node.Depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", node.State, err)
		}
		w.spread(node)
	}
}

// spread queues every unmarked, unfiltered neighbor of node within MaxDepth.
func (w *walker) spread(node *Node) {
	if w.opts.MaxDepth > 0 && node.Depth >= w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.Neighbors(node.State) {
		if !w.opts.FilterNeighbor(node.State, e.To) {
			continue
		}
		if _, marked := w.res.Depth[e.To]; marked {
			continue
		}
		w.mark(node.child(e.To))
	}
}
