// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade: consistent snapshots and stats.

package core

// Snapshot returns copies of the node and edge lists taken under a single
// read lock, so every edge's endpoints are present in the returned nodes.
// Complexity: O(V + E).
func (g *Graph) Snapshot() ([]Node, []Edge) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nodes := make([]Node, len(g.nodes))
	copy(nodes, g.nodes)
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)

	return nodes, edges
}

// Adjacency builds a fresh adjacency mapping from the current contents.
// Nothing is cached; each call reflects every mutation made before it.
// Complexity: O(V + E).
func (g *Graph) Adjacency() Adjacency {
	return BuildAdjacency(g.Snapshot())
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	NodeCount int `json:"nodes"`
	EdgeCount int `json:"edges"`
}

// Stats returns node and edge counts observed under one read lock.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return GraphStats{NodeCount: len(g.nodes), EdgeCount: len(g.edges)}
}
