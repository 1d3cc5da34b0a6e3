// SPDX-License-Identifier: MIT

// Package dfs implements pre-order depth-first search over core.Adjacency.
//
// Key features:
//   - DFS(adj, startID, opts...): visitation order from a single root
//   - Neighbors explored in adjacency (edge insertion) order
//   - Start absent from adj: a node with no neighbors, order == [start]
//   - Hooks: OnVisit (pre-order) with error aborts
//   - Cancellation via context.Context, depth limiting via MaxDepth
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for recursion stack and metadata maps.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/walkview/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	adj  core.Adjacency // neighbor lists
	opts DFSOptions     // traversal options
	res  *DFSResult     // result collector
}

// DFS performs depth-first search over adj from startID and returns the
// discovery order together with depth and parent links.
//
// startID does not have to be a key of adj; such a start is visited and has no
// neighbors. The only errors are context cancellation and OnVisit failures,
// in which case the partial result is returned alongside the error.
func DFS(adj core.Adjacency, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 2. Initialize result with capacity hint
	n := len(adj)
	res := &DFSResult{
		Order:   make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}

	// 3. Traverse from the single root
	walker := &dfsWalker{adj: adj, opts: dopts, res: res}
	if err := walker.traverse(startID, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits id at the given depth and recurses into unvisited neighbors.
func (w *dfsWalker) traverse(id string, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record pre-order position
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("%w: OnVisit(%q): %w", ErrHook, id, err)
		}
	}

	// 4. Depth limit: do not descend past MaxDepth
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return nil
	}

	// 5. Explore neighbors in insertion order; missing key ⇒ no neighbors
	for _, nid := range w.adj[id] {
		if w.res.Visited[nid] {
			continue
		}
		w.res.Parent[nid] = id
		if err := w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	return nil
}
