package bfs

// Node is a search-tree node: a graph state plus a link to the node it was
// expanded from. The root has a nil Parent.
//
// Parents are always created before their children, so following Parent
// links always ends at the root; the links form a tree, never a cycle.
type Node struct {
	State  string
	Parent *Node
	Depth  int
}

// newRoot wraps the initial state.
func newRoot(state string) *Node {
	return &Node{State: state}
}

// child creates the node reached from n by one edge to state.
func (n *Node) child(state string) *Node {
	return &Node{State: state, Parent: n, Depth: n.Depth + 1}
}

// Path returns the states from the root to n, both inclusive.
// Each call walks the parent links afresh and returns a new slice.
func (n *Node) Path() []string {
	if n == nil {
		return nil
	}
	path := make([]string, 0, n.Depth+1)
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur.State)
	}
	reverse(path)

	return path
}
