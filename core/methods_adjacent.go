// File: methods_adjacent.go
// Role: Neighborhood reads: Neighbors, Weight, HasEdge.
// Determinism:
//   - Neighbors() returns edges in insertion order.
//   - Weight() resolves parallel edges to the first one listed.
// Concurrency:
//   - All reads hold mu for reading; returned slices are copies.

package core

import "fmt"

// Neighbors returns the ordered outgoing edges of id.
//
// Unknown IDs have no neighbors: the result is empty, never an error.
// The returned slice is a copy; callers may keep or modify it freely.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src := g.adjacency[id]
	if len(src) == 0 {
		return nil
	}
	out := make([]Edge, len(src))
	copy(out, src)

	return out
}

// Weight returns the weight of the first edge from→to in from's list.
//
// Errors:
//   - ErrEdgeNotFound (wrapped with both endpoints) if no such edge exists.
//
// Complexity: O(deg(from)).
func (g *Graph) Weight(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.adjacency[from] {
		if e.To == to {
			return e.Weight, nil
		}
	}

	return 0, fmt.Errorf("%w: %q→%q", ErrEdgeNotFound, from, to)
}

// HasEdge reports whether an edge from→to is recorded.
// In undirected graphs HasEdge(a,b) == HasEdge(b,a).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(from, to)
}
