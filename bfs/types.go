package bfs

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrStartVertexNotFound: BFS was asked to start at a vertex the graph
	// does not hold. Search treats such a start as a state with no roads.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil: a nil *core.Graph was passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation: an Option carried a value out of range.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Problem describes one search: where it starts and what counts as done.
type Problem struct {
	// Initial is the start state.
	Initial string

	// Goal is the target state, used when GoalTest is nil.
	Goal string

	// GoalTest, if set, replaces the equality check against Goal.
	GoalTest func(state string) bool
}

// IsGoal reports whether state satisfies the problem's goal test.
func (p Problem) IsGoal(state string) bool {
	if p.GoalTest != nil {
		return p.GoalTest(state)
	}

	return state == p.Goal
}

// Result is the outcome of Search.
//
// A failed search is a valid result, not an error: Path is nil and Cost is
// +Inf. Callers must check Found before using Path.
type Result struct {
	// Path runs from the initial state to the goal, both inclusive.
	Path []string

	// Cost is the sum of edge weights along Path. It is the weight of the
	// minimum-hop path found, not necessarily the minimum-weight path.
	Cost float64

	// Reached maps every discovered state to its discovery cost.
	Reached map[string]float64

	// Expanded counts dequeued nodes.
	Expanded int
}

// Found reports whether a path to the goal was found.
func (r *Result) Found() bool { return r.Path != nil }

// Hops returns the number of edges in Path, or -1 on failure.
func (r *Result) Hops() int { return len(r.Path) - 1 }

// failure builds the "no path" result.
func failure(reached map[string]float64, expanded int) *Result {
	return &Result{Cost: math.Inf(1), Reached: reached, Expanded: expanded}
}

// BFSResult is the BFS tree of one traversal.
type BFSResult struct {
	// Order lists vertices as they were dequeued.
	Order []string
	// Depth is the hop count from the start.
	Depth map[string]int
	// Parent links every non-root vertex to the vertex that discovered it.
	Parent map[string]string
}

// PathTo walks Parent links back from dest and returns the fewest-hop
// path start..dest. It fails if dest was never reached.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := []string{dest}
	for prev, ok := r.Parent[dest]; ok; prev, ok = r.Parent[prev] {
		path = append(path, prev)
	}
	reverse(path)

	return path, nil
}

// reverse flips s in place.
func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
