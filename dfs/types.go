// SPDX-License-Identifier: MIT

// Package dfs defines options and results for depth-first traversal over a
// core.Adjacency mapping.
package dfs

import (
	"context"
	"errors"
)

// ErrHook marks an error returned by a user-supplied OnVisit hook.
var ErrHook = errors.New("dfs: hook aborted traversal")

// Option configures optional behavior of DFS traversal.
// Use with DFS(adj, startID, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is first discovered
	// (pre-order), with its depth from the start.
	// Returning an error aborts traversal with that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if non-negative, stops descending past the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-order hook
//   - No depth limit (MaxDepth = -1)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		OnVisit:  nil,
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A negative limit disables the limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records nodes in the sequence they were discovered (pre-order).
	Order []string

	// Depth maps each visited node ID to its tree depth from the start.
	Depth map[string]int

	// Parent maps each visited node ID to the node it was discovered from.
	// The start node has no entry.
	Parent map[string]string

	// Visited flags which nodes were reached.
	Visited map[string]bool
}
