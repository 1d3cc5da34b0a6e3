// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge creation and queries.
//
// Determinism:
//   - Edge IDs are "e" + edge count at insertion ("e0", "e1", ...).
//   - Edges() returns edges in insertion order.
//
// Concurrency:
//   - Endpoint validation and insertion happen under one write lock, so an
//     edge can never reference a node that was not present at creation.
package core

import (
	"fmt"
	"strconv"
)

// edgeIDPrefix is the textual prefix of every edge identifier.
const edgeIDPrefix = "e"

// AddEdge connects source and target with an undirected edge carrying weight.
//
// Implementation:
//   - Stage 1: Reject empty endpoints (ErrEmptyNodeID).
//   - Stage 2: Under the write lock, verify both endpoints exist (ErrNodeNotFound).
//   - Stage 3: Derive the ID from the current edge count and append.
//
// Behavior highlights:
//   - On any error the edge list is untouched.
//   - Self-loops and parallel edges are accepted as given.
//   - weight is stored verbatim; it may be empty or non-numeric.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(source, target, weight string) (Edge, error) {
	if source == "" || target == "" {
		return Edge{}, ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.index[source]; !ok {
		return Edge{}, fmt.Errorf("AddEdge(%s→%s): source %q: %w", source, target, source, ErrNodeNotFound)
	}
	if _, ok := g.index[target]; !ok {
		return Edge{}, fmt.Errorf("AddEdge(%s→%s): target %q: %w", source, target, target, ErrNodeNotFound)
	}

	e := Edge{
		ID:         edgeIDPrefix + strconv.Itoa(len(g.edges)),
		Source:     source,
		Target:     target,
		Weight:     weight,
		Undirected: true,
	}
	g.edges = append(g.edges, e)

	return e, nil
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
