// Package core defines the Graph and Edge types used by every search in this
// module, and the thread-safe primitives for building and reading them.
//
// This file declares Edge, Graph, GraphOption, sentinel errors and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrEdgeNotFound        - no edge from→to is recorded.
//	ErrBadWeight           - non-zero weight on an unweighted graph, or NaN/±Inf.
//	ErrNegativeWeight      - weight below zero.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrEdgeNotFound indicates a lookup referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a weight the graph cannot store: non-zero on an
	// unweighted graph, or not a finite number.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrNegativeWeight indicates a weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a single outgoing connection From→To with a non-negative Weight.
//
// Undirected graphs store each edge twice: once in From's list and once,
// mirrored, in To's list.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of traversing the edge. Always finite and >= 0.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether new edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory adjacency structure mapping each vertex ID to the
// ordered sequence of its outgoing edges.
//
// The order of each sequence is the order in which edges were added; every
// search in this module expands neighbors in exactly that order.
// mu guards all fields below the configuration flags.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags, immutable after NewGraph.
	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool

	// adjacency[from] = outgoing edges in insertion order.
	adjacency map[string][]Edge
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string][]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
