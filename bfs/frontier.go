package bfs

// Frontier is a first-in-first-out queue of search nodes awaiting expansion.
// The zero value is an empty, ready-to-use queue.
type Frontier struct {
	items []*Node
}

// NewFrontier returns a queue holding initial in order.
func NewFrontier(initial ...*Node) *Frontier {
	f := &Frontier{items: make([]*Node, 0, len(initial))}
	f.items = append(f.items, initial...)

	return f
}

// Push appends n to the tail.
func (f *Frontier) Push(n *Node) {
	f.items = append(f.items, n)
}

// Pop removes and returns the earliest pushed node.
// It returns (nil, false) when the queue is empty.
func (f *Frontier) Pop() (*Node, bool) {
	if len(f.items) == 0 {
		return nil, false
	}
	n := f.items[0]
	f.items[0] = nil // release for GC
	f.items = f.items[1:]

	return n, true
}

// Len returns the number of queued nodes.
func (f *Frontier) Len() int { return len(f.items) }

// Empty reports whether no nodes remain.
func (f *Frontier) Empty() bool { return len(f.items) == 0 }
