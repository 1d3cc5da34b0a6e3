// SPDX-License-Identifier: MIT
//
// File: memory.go
// Role: In-memory Surface; also the scene store behind Writer and Hub.
//
// Concurrency:
//   - All fields are guarded by mu; readers receive copies.

package render

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/katalvlaran/walkview/core"
	"github.com/katalvlaran/walkview/layout"
	"github.com/katalvlaran/walkview/playback"
)

// Memory is a Surface that keeps its scene in memory.
type Memory struct {
	mu sync.RWMutex

	layout    layout.Layout
	container string // non-empty while initialized
	nodes     []core.Node
	index     map[string]struct{}
	edges     []core.Edge
	positions map[string]layout.Position
	tags      map[string]playback.Tag
	syncs     int
}

// NewMemory returns an uninitialized in-memory surface. A nil layout selects
// the default force-directed layout.
func NewMemory(l layout.Layout) *Memory {
	if l == nil {
		l = layout.NewForceDirected(layout.DefaultConfig())
	}

	return &Memory{
		layout:    l,
		index:     make(map[string]struct{}),
		positions: make(map[string]layout.Position),
		tags:      make(map[string]playback.Tag),
	}
}

// Initialize binds the surface to container.
func (m *Memory) Initialize(container string) error {
	if container == "" {
		return ErrEmptyContainer
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.container != "" {
		return fmt.Errorf("%w: %q", ErrAlreadyInitialized, m.container)
	}
	m.container = container

	return nil
}

// Teardown drops the scene and releases the container.
func (m *Memory) Teardown() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.container == "" {
		return ErrNotInitialized
	}
	m.container = ""
	m.nodes, m.edges = nil, nil
	clear(m.index)
	clear(m.positions)
	clear(m.tags)

	return nil
}

// Container returns the bound container name, or "" when not initialized.
func (m *Memory) Container() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.container
}

// SyncGraph replaces the scene and recomputes positions.
func (m *Memory) SyncGraph(nodes []core.Node, edges []core.Edge) {
	m.sync(nodes, edges)
}

// sync applies SyncGraph and returns the resulting scene; ok is false when
// the surface is not initialized.
func (m *Memory) sync(nodes []core.Node, edges []core.Edge) (scene Scene, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.container == "" {
		return Scene{}, false
	}
	m.nodes = slices.Clone(nodes)
	m.edges = slices.Clone(edges)
	clear(m.index)
	for _, n := range nodes {
		m.index[n.ID] = struct{}{}
	}
	m.positions = m.layout.Compute(nodeIDs(nodes), links(edges))
	clear(m.tags)
	m.syncs++

	return m.sceneLocked(), true
}

// SetVisualState tags a displayed node. Unknown IDs are ignored, as is
// every write while the surface is not initialized. TagNone removes the tag.
func (m *Memory) SetVisualState(id string, tag playback.Tag) {
	m.set(id, tag)
}

// set applies a tag and reports whether it was accepted.
func (m *Memory) set(id string, tag playback.Tag) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.container == "" {
		return false
	}
	if _, ok := m.index[id]; !ok {
		return false
	}
	if tag == playback.TagNone {
		delete(m.tags, id)
	} else {
		m.tags[id] = tag
	}

	return true
}

// ClearAllVisualState removes every tag.
func (m *Memory) ClearAllVisualState() {
	m.clearTags()
}

func (m *Memory) clearTags() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.container == "" {
		return false
	}
	clear(m.tags)

	return true
}

// HasNode reports whether id is currently displayed.
func (m *Memory) HasNode(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.index[id]

	return ok
}

// Tags returns a copy of the current visual tags.
func (m *Memory) Tags() map[string]playback.Tag {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return maps.Clone(m.tags)
}

// Positions returns a copy of the last computed layout.
func (m *Memory) Positions() map[string]layout.Position {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return maps.Clone(m.positions)
}

// Syncs returns how many SyncGraph calls were applied.
func (m *Memory) Syncs() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.syncs
}

// Snapshot returns a copy of the whole scene.
func (m *Memory) Snapshot() Scene {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.sceneLocked()
}

func (m *Memory) sceneLocked() Scene {
	return Scene{
		Nodes:     append([]core.Node{}, m.nodes...),
		Edges:     append([]core.Edge{}, m.edges...),
		Positions: maps.Clone(m.positions),
		Tags:      maps.Clone(m.tags),
	}
}
