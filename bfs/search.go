package bfs

import (
	"fmt"

	"github.com/katalvlaran/bfsroute/core"
)

// searcher encapsulates mutable state of one goal-directed search.
type searcher struct {
	graph    *core.Graph
	problem  Problem
	opts     BFSOptions
	frontier *Frontier
	reached  map[string]float64
	expanded int
}

// Search runs breadth-first search on g for problem and returns the first
// path found to a goal state together with its accumulated edge weight.
//
// The search expands states level by level, children in the graph's listed
// edge order, and stops as soon as a generated child passes the goal test.
// A state is recorded in the reached set the first time it is generated and
// is never re-expanded or relaxed afterwards. The returned path therefore
// has the minimum number of edges, while Result.Cost is simply the weight of
// that path.
//
// An unreachable goal is not an error: the Result has a nil Path and a Cost
// of +Inf. The initial state need not be a vertex of g; an unknown state has
// no neighbors.
//
// Errors: ErrGraphNil, ErrOptionViolation, the context's error on
// cancellation, or a wrapped OnVisit hook error.
func Search(g *core.Graph, problem Problem, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	root := newRoot(problem.Initial)
	if problem.IsGoal(root.State) {
		return &Result{
			Path:    root.Path(),
			Cost:    0,
			Reached: map[string]float64{root.State: 0},
		}, nil
	}

	s := &searcher{
		graph:    g,
		problem:  problem,
		opts:     o,
		frontier: NewFrontier(),
		reached:  map[string]float64{root.State: 0},
	}
	s.push(root)

	return s.loop()
}

// push enqueues n and fires OnEnqueue.
func (s *searcher) push(n *Node) {
	s.opts.OnEnqueue(n.State, n.Depth)
	s.frontier.Push(n)
}

// loop drains the frontier until a goal is generated, the frontier is
// exhausted, or the search is aborted.
func (s *searcher) loop() (*Result, error) {
	for !s.frontier.Empty() {
		select {
		case <-s.opts.Ctx.Done():
			return nil, s.opts.Ctx.Err()
		default:
		}

		node, _ := s.frontier.Pop()
		s.opts.OnDequeue(node.State, node.Depth)
		s.expanded++
		if err := s.opts.OnVisit(node.State, node.Depth); err != nil {
			return nil, fmt.Errorf("bfs: OnVisit error at %q: %w", node.State, err)
		}

		if res := s.expand(node); res != nil {
			return res, nil
		}
	}

	return failure(s.reached, s.expanded), nil
}

// expand generates the children of node. It returns a Result when one of
// them is a goal, nil otherwise.
func (s *searcher) expand(node *Node) *Result {
	if s.opts.MaxDepth > 0 && node.Depth >= s.opts.MaxDepth {
		return nil
	}
	base := s.reached[node.State]
	for _, e := range s.graph.Neighbors(node.State) {
		if !s.opts.FilterNeighbor(node.State, e.To) {
			continue
		}

		child := node.child(e.To)
		if s.problem.IsGoal(child.State) {
			cost := base + e.Weight
			s.reached[child.State] = cost

			return &Result{
				Path:     child.Path(),
				Cost:     cost,
				Reached:  s.reached,
				Expanded: s.expanded,
			}
		}
		if _, seen := s.reached[child.State]; seen {
			continue
		}
		s.reached[child.State] = base + e.Weight
		s.push(child)
	}

	return nil
}

// PathCost sums the weights of consecutive edges along path in g, using the
// first listed edge for each hop.
//
// A path of zero or one state costs 0. A hop with no edge yields a wrapped
// core.ErrEdgeNotFound naming the hop index.
func PathCost(g *core.Graph, path []string) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	var total float64
	for i := 1; i < len(path); i++ {
		w, err := g.Weight(path[i-1], path[i])
		if err != nil {
			return 0, fmt.Errorf("bfs: hop %d: %w", i, err)
		}
		total += w
	}

	return total, nil
}
