// SPDX-License-Identifier: MIT
//
// File: adjacency_list.go
// Role: Undirected adjacency derivation from a node/edge snapshot.
//
// Determinism:
//   - Neighbor lists follow edge insertion order. For a node, the list is the
//     union of edges where it is source or target, in the order those edges
//     were inserted.
//   - Parallel edges produce repeated neighbors; no dedup at this layer.

package core

// Adjacency maps a node ID to its ordered neighbor IDs.
type Adjacency map[string][]string

// BuildAdjacency derives an undirected adjacency mapping.
//
// Implementation:
//   - Stage 1: Seed an empty (non-nil) list for every node so isolated nodes
//     are present.
//   - Stage 2: For each edge in order, append target to source's list and
//     source to target's list. The Undirected flag is not consulted.
//
// Behavior highlights:
//   - Pure: inputs are not modified and nothing is retained.
//   - Empty inputs yield an empty, non-nil mapping.
//   - A self-loop (u,u) lists u twice under u.
//
// Complexity: O(V + E) time and space.
func BuildAdjacency(nodes []Node, edges []Edge) Adjacency {
	adj := make(Adjacency, len(nodes))
	for _, n := range nodes {
		adj[n.ID] = []string{}
	}
	for _, e := range edges {
		adj[e.Source] = append(adj[e.Source], e.Target)
		adj[e.Target] = append(adj[e.Target], e.Source)
	}

	return adj
}

// Neighbors returns the neighbor list of id, or nil when id has no entry.
// The returned slice is shared with the mapping; do not modify it.
func (a Adjacency) Neighbors(id string) []string {
	return a[id]
}

// Has reports whether id has an entry in the mapping.
func (a Adjacency) Has(id string) bool {
	_, ok := a[id]

	return ok
}
