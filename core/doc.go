// Package core provides a small, thread-safe in-memory Graph: an adjacency
// structure mapping each vertex ID to the ordered list of its outgoing
// (neighbor, weight) pairs.
//
// What makes it fit for textbook searches:
//
//   - Ordered adjacency: Neighbors(id) returns edges in the order they were
//     added, so a breadth-first search expands children exactly as listed.
//   - Total accessor: Neighbors of an unknown ID is empty, never an error.
//   - Explicit weight lookup: Weight(from,to) returns ErrEdgeNotFound instead
//     of assuming the edge exists.
//   - Non-negative, finite weights are enforced at insertion time.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(bool)
//	    true stores only from→to; false (default) mirrors to→from as well.
//
//	– WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
//	– WithMultiEdges()
//	    Allows parallel edges; otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops; otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	AddVertex(id string) error                 // O(1)
//	AddEdge(from, to string, w float64) error  // O(1)† amortized
//	Neighbors(id string) []Edge                // O(d), insertion order
//	Weight(from, to string) (float64, error)   // O(d)
//	HasVertex(id string) bool                  // O(1)
//	HasEdge(from, to string) bool              // O(d)
//	Vertices() []string                        // O(V log V), sorted
//	Edges() []Edge                             // O(V log V + E)
//
//	† O(d) when multi-edges are disabled (duplicate check).
//
// Concurrency: a single sync.RWMutex guards the adjacency map. A Graph is
// typically built once and then only read, so many searches may run on the
// same Graph from different goroutines.
package core
