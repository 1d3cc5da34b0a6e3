// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge and Graph declarations, sentinel errors, NewGraph.
//
// Concurrency:
//   - Graph guards its node catalog and edge list with a single sync.RWMutex.
//   - Snapshots returned by readers are copies; callers may keep them.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph store operations.
var (
	// ErrNodeNotFound indicates an edge endpoint that is not a known node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEmptyNodeID indicates an empty node ID was supplied as an endpoint.
	ErrEmptyNodeID = errors.New("core: node ID is empty")
)

// Node is a vertex of the graph.
//
// ID is a decimal, monotonically increasing identifier assigned by the Graph.
// Label mirrors ID; it is what a surface prints inside the node.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// DefaultWeight is the weight input layers use when the user gives none.
const DefaultWeight = "1"

// Edge connects two existing nodes.
//
// Weight is kept verbatim; traversals never read it.
// Undirected only affects how a surface draws the edge. Adjacency treats
// every edge as bidirectional.
type Edge struct {
	ID         string `json:"id"`
	Source     string `json:"source"`
	Target     string `json:"target"`
	Weight     string `json:"weight"`
	Undirected bool   `json:"undirected"`
}

// Graph is the in-memory graph store.
//
// Nodes and edges are append-only. Both are kept in insertion order, which is
// the order BuildAdjacency relies on for deterministic neighbor lists.
type Graph struct {
	mu sync.RWMutex // guards everything below

	nextNodeID uint64         // next node ID to hand out; never reused
	nodes      []Node         // insertion order
	index      map[string]int // node ID -> position in nodes
	edges      []Edge         // insertion order
}

// NewGraph returns an empty graph store.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
	}
}
