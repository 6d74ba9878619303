// Package bfsroute is a breadth-first route finder over a small, static,
// weighted graph of cities.
//
// It answers one question: starting from a city, which route reaches the
// goal through the fewest roads, and how long is that route?
//
//	    [1]──219──[2]──365──[7]──214──[11]
//	     │                   │
//	    ...                 ...
//
// For the built-in data, 1 → 11 is [1 2 7 11] with length 798.
//
// The length reported is the length of the fewest-hop route. It is not a
// shortest-distance search: a route with more roads but less distance is
// never preferred.
//
// Packages:
//
//	core/       — Graph and Edge: ordered adjacency, explicit weight lookup
//	bfs/        — Node, Frontier, Problem, Search (goal search) and BFS (full traversal)
//	dataset/    — the 21-city example graph and its default start/goal
//	components/ — weakly connected components (union-find)
//	render/     — DOT export and Graphviz rendering with the route highlighted
//	config/     — YAML + environment configuration for the driver
//	cmd/bfsroute — the command-line driver
//
//	go run ./cmd/bfsroute
package bfsroute
