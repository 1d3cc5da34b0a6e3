// SPDX-License-Identifier: MIT

// Package core is the graph store behind walkview.
//
// What
//
//   - Graph holds nodes and undirected, weighted edges in insertion order.
//   - AddNode hands out decimal IDs ("0", "1", ...) that are never reused.
//   - AddEdge requires both endpoints to exist; otherwise it returns
//     ErrNodeNotFound and leaves the store untouched.
//   - BuildAdjacency derives a neighbor mapping from a snapshot. It is
//     recomputed per call and treats every edge as bidirectional.
//
// Determinism
//
//	Nodes(), Edges() and Snapshot() return insertion order. BuildAdjacency
//	lists neighbors in edge insertion order, so traversals built on top of it
//	are reproducible for a given sequence of mutations.
//
// Concurrency
//
//	All methods are safe for concurrent use. Snapshot() copies nodes and edges
//	under one read lock so the pair is always consistent.
//
// Errors
//
//   - ErrEmptyNodeID   an edge endpoint is the empty string.
//   - ErrNodeNotFound  an edge endpoint does not name an existing node.
//
// Usage
//
//	g := core.NewGraph()
//	a, b := g.AddNode(), g.AddNode()
//	if _, err := g.AddEdge(a.ID, b.ID, "1"); err != nil {
//		// errors.Is(err, core.ErrNodeNotFound)
//	}
//	adj := g.Adjacency() // map[0:[1] 1:[0]]
package core
