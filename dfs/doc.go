// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search over an undirected adjacency
// mapping produced by core.BuildAdjacency.
//
// What:
//
//   - DFS explores as far as possible along each branch before backtracking.
//     The result Order is pre-order: a node is appended the moment it is
//     first reached.
//   - Neighbors are tried in adjacency order, which is edge insertion order.
//     For the graph 0-1, 0-2, 1-3 started at 0 the order is 0 1 3 2.
//   - A start ID with no adjacency entry is not an error; it is treated as
//     an isolated node and the order is [start].
//   - Nodes unreachable from the start do not appear.
//
// Options:
//
//   - WithContext(ctx)    allows cancellation via context.Context.
//   - WithOnVisit(fn)     pre-order hook; an error aborts traversal.
//   - WithMaxDepth(limit) stops descending beyond the given depth (>=0).
//
// Errors:
//
//   - context.Canceled / context.DeadlineExceeded when ctx is done.
//   - ErrHook wrapping any error returned by OnVisit.
//
// Complexity:
//
//   - Time O(V+E), Memory O(V).
package dfs
