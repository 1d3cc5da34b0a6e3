// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node creation and queries.
//
// Determinism:
//   - Node IDs are "0", "1", "2", ... in creation order.
//   - Nodes() returns nodes in creation order.
package core

import "strconv"

// AddNode creates a node with the next free ID and returns it.
//
// Implementation:
//   - Stage 1: Under the write lock, format nextNodeID as a decimal string.
//   - Stage 2: Append the node, index it, bump the counter.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode() Node {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := strconv.FormatUint(g.nextNodeID, 10)
	n := Node{ID: id, Label: id}
	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.nextNodeID++

	return n
}

// HasNode reports whether id names an existing node (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Nodes returns a copy of all nodes in creation order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}
