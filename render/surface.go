// SPDX-License-Identifier: MIT

// Package render holds rendering surfaces: the collaborators that display
// the graph and the per-node visual tags applied during playback.
//
// A Surface is an explicitly owned handle. The caller acquires it with
// Initialize, feeds it full-graph syncs and tag mutations, and releases it
// with Teardown. Writes that arrive while a surface is not initialized are
// dropped, so a late step can never repaint a torn-down view.
//
// Three surfaces are provided:
//
//   - Memory keeps the scene in memory (tests, headless runs).
//   - Writer prints one line per mutation to an io.Writer.
//   - Hub streams the scene to websocket clients as JSON messages.
package render

import (
	"errors"

	"github.com/katalvlaran/walkview/core"
	"github.com/katalvlaran/walkview/layout"
	"github.com/katalvlaran/walkview/playback"
)

// Sentinel errors for surface lifecycle misuse.
var (
	ErrEmptyContainer     = errors.New("render: container name is empty")
	ErrAlreadyInitialized = errors.New("render: surface already initialized")
	ErrNotInitialized     = errors.New("render: surface not initialized")
)

// Surface is the rendering collaborator contract.
type Surface interface {
	playback.Sink

	// Initialize acquires the surface for the named container.
	Initialize(container string) error
	// SyncGraph replaces every displayed element and recomputes the layout.
	// Visual tags are reset, since the elements carrying them are replaced.
	SyncGraph(nodes []core.Node, edges []core.Edge)
	// Teardown releases the surface. It is safe to call on every exit path;
	// a second call reports ErrNotInitialized.
	Teardown() error
}

// Scene is a point-in-time copy of what a surface displays.
type Scene struct {
	Nodes     []core.Node                `json:"nodes"`
	Edges     []core.Edge                `json:"edges"`
	Positions map[string]layout.Position `json:"positions"`
	Tags      map[string]playback.Tag    `json:"tags"`
}

// links converts edges into layout input.
func links(edges []core.Edge) []layout.Link {
	out := make([]layout.Link, len(edges))
	for i, e := range edges {
		out[i] = layout.Link{Source: e.Source, Target: e.Target}
	}

	return out
}

// nodeIDs returns node IDs in display order.
func nodeIDs(nodes []core.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}

	return out
}
