// File: methods.go
// Role: Graph mutation: AddVertex, AddEdge.
// Concurrency:
//   - All mutations hold mu for writing.
//   - Validation that needs no state runs before the lock is taken.

package core

import "math"

// AddVertex ensures a vertex with the given id exists.
// Adding an existing vertex is a no-op.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// AddEdge appends the edge from→to with weight w to from's neighbor list,
// creating missing endpoints. In undirected graphs the mirror to→from is
// appended to to's list as well (loops are stored once).
//
// Steps:
//  1. Validate IDs, weight, loops (no lock needed).
//  2. Lock, check the multi-edge constraint.
//  3. Append to adjacency[from], mirror when undirected.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrNegativeWeight,
//     ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized, O(deg(from)) when multi-edges are disabled.
func (g *Graph) AddEdge(from, to string, w float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if err := g.checkWeight(w); err != nil {
		return err
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return ErrMultiEdgeNotAllowed
	}

	g.ensureVertex(from)
	g.ensureVertex(to)
	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: w})
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], Edge{From: to, To: from, Weight: w})
	}
	g.edgeCount++

	return nil
}

// checkWeight applies the graph's weight policy to w.
func (g *Graph) checkWeight(w float64) error {
	switch {
	case math.IsNaN(w) || math.IsInf(w, 0):
		return ErrBadWeight
	case w < 0:
		return ErrNegativeWeight
	case !g.weighted && w != 0:
		return ErrBadWeight
	}

	return nil
}

// ensureVertex registers id with an empty neighbor list. Caller holds mu.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}
}

// hasEdgeLocked reports whether from→to is recorded. Caller holds mu.
func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return true
		}
	}

	return false
}
