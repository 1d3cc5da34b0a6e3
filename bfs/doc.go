// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over an undirected adjacency
// mapping produced by core.BuildAdjacency.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a node is queued and marked visited)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Neighbors are enqueued in adjacency order, i.e. edge insertion order, so
//	the visit sequence is reproducible. For 0-1, 0-2, 1-3 from 0 the order is
//	0 1 2 3.
//
// Degenerate start
//
//	A start ID with no adjacency entry is visited on its own; the order is
//	[start]. This is not an error.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - context errors          when WithContext's ctx is done.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
