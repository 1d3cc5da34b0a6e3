// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: BFS options, hooks, result and path reconstruction.

package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrOptionViolation reports an option value BFS cannot honor.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath reports a PathTo target the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Hooks observe a search. Nil hooks are skipped.
type Hooks struct {
	// OnEnqueue fires when a node is discovered and marked.
	OnEnqueue func(id string, depth int)
	// OnDequeue fires when a node leaves the queue, before OnVisit.
	OnDequeue func(id string, depth int)
	// OnVisit fires as the node is appended to Order; an error aborts.
	OnVisit func(id string, depth int) error
}

// Options tune one BFS call.
type Options struct {
	Ctx   context.Context
	Hooks Hooks
	// MaxDepth > 0 caps exploration depth; 0 means unlimited.
	MaxDepth int

	err error
}

// Option mutates Options. An invalid value is kept and reported by BFS as
// ErrOptionViolation.
type Option func(*Options)

// DefaultOptions is a background context, no hooks and no depth cap.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext makes the search stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue installs Hooks.OnEnqueue.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) { o.Hooks.OnEnqueue = fn }
}

// WithOnDequeue installs Hooks.OnDequeue.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *Options) { o.Hooks.OnDequeue = fn }
}

// WithOnVisit installs Hooks.OnVisit.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) { o.Hooks.OnVisit = fn }
}

// WithMaxDepth caps how far from the start BFS explores. Negative values
// are rejected.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// BFSResult is what a search produced.
type BFSResult struct {
	// Order lists nodes in dequeue sequence.
	Order []string
	// Depth is the hop distance of every reached node.
	Depth map[string]int
	// Parent links each reached node, except the start, to its discoverer.
	Parent map[string]string
}

// Reached reports whether id was discovered.
func (r *BFSResult) Reached(id string) bool {
	_, ok := r.Depth[id]

	return ok
}

// PathTo returns the fewest-hop path start..dest, or ErrNoPath.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	path := []string{dest}
	for cur, ok := r.Parent[dest]; ok; cur, ok = r.Parent[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
