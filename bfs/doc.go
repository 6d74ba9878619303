// Package bfs provides breadth-first search over a core.Graph: a
// goal-directed Search that returns the first path found together with its
// accumulated edge weight, and a full traversal BFS that records visit
// order, hop depths and parent links.
//
// What
//
//   - Search(g, Problem{Initial, Goal}) expands states level by level, children
//     in the graph's listed edge order, and stops as soon as a generated child
//     passes the goal test.
//   - Returns a Result containing:
//   - Path: states from Initial to the goal, both inclusive
//   - Cost: sum of edge weights along Path
//   - Reached: discovery cost of every generated state
//   - An unreachable goal yields Path == nil and Cost == +Inf; it is a valid
//     result, not an error.
//   - BFS(g, start) explores every reachable vertex and returns a BFSResult
//     with Order, Depth and Parent; PathTo rebuilds any fewest-hop path.
//
// Cost semantics
//
//	Search guarantees the fewest edges, not the least weight. A state keeps
//	the cost of the path that discovered it first and is never relaxed, so
//	Result.Cost is the weight of the minimum-hop path Search returned. On
//	unweighted or uniformly weighted graphs the two coincide. Use PathCost to
//	recompute the weight of any explicit path.
//
// Building blocks
//
//   - Node: a state plus a parent link; Node.Path walks back to the root.
//   - Frontier: a FIFO queue; Push appends to the tail, Pop removes the head.
//   - Problem: initial state and goal test (Goal equality, or GoalTest).
//
// Options (shared by Search and BFS)
//
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip edges for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):           hook before a vertex is enqueued.
//   - WithOnDequeue(fn):           hook immediately before visiting a vertex.
//   - WithOnVisit(fn):             hook during visit; returning error aborts.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each state enqueued at most once)
//   - Memory: O(V)       (frontier, reached set, search tree)
//
// Usage
//
//	res, err := bfs.Search(g, bfs.Problem{Initial: "1", Goal: "11"})
//	if err != nil {
//	    // ErrGraphNil, ErrOptionViolation, ctx error, or hook error
//	}
//	if !res.Found() {
//	    // no path; res.Cost is +Inf
//	}
//	fmt.Println(res.Path, res.Cost)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if BFS is started at an absent vertex.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
