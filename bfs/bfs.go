// SPDX-License-Identifier: MIT
//
// File: bfs.go
// Role: FIFO walker over a core.Adjacency snapshot.
//
// Invariants:
//   - A node is marked when enqueued, so it is queued at most once.
//   - Neighbors are enqueued in adjacency order.

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/walkview/core"
)

type queueItem struct {
	id    string
	depth int
}

type walker struct {
	adj   core.Adjacency
	ctx   context.Context
	hooks Hooks
	limit int
	queue []queueItem
	head  int
	res   *BFSResult
}

// BFS searches adj breadth-first from startID. startID need not have an
// entry in adj; it is then the only node visited. On a hook error or
// cancellation the partial result is returned with the error.
func BFS(adj core.Adjacency, startID string, opts ...Option) (*BFSResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := len(adj)
	w := &walker{
		adj:   adj,
		ctx:   o.Ctx,
		hooks: o.Hooks,
		limit: o.MaxDepth,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.discover(startID, 0, "")

	return w.res, w.run()
}

func (w *walker) discover(id string, depth int, parent string) {
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	if w.hooks.OnEnqueue != nil {
		w.hooks.OnEnqueue(id, depth)
	}
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

func (w *walker) run() error {
	for w.head < len(w.queue) {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		item := w.queue[w.head]
		w.head++
		if w.hooks.OnDequeue != nil {
			w.hooks.OnDequeue(item.id, item.depth)
		}

		w.res.Order = append(w.res.Order, item.id)
		if w.hooks.OnVisit != nil {
			if err := w.hooks.OnVisit(item.id, item.depth); err != nil {
				return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
			}
		}

		next := item.depth + 1
		if w.limit > 0 && next > w.limit {
			continue
		}
		for _, nbr := range w.adj[item.id] {
			if !w.res.Reached(nbr) {
				w.discover(nbr, next, item.id)
			}
		}
	}

	return nil
}
