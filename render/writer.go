// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/katalvlaran/walkview/core"
	"github.com/katalvlaran/walkview/layout"
	"github.com/katalvlaran/walkview/playback"
)

// Writer is a Surface that prints one line per accepted mutation:
//
//	init <container>
//	sync nodes=[0 1 2] edges=[0-1 1-2]
//	clear
//	tag 1 frontier
//	teardown
//
// The first write error is kept and returned by Teardown; later writes are
// skipped.
type Writer struct {
	mu    sync.Mutex // serializes scene updates with their output line
	scene *Memory
	w     io.Writer
	err   error
}

// NewWriter returns a Writer surface printing to w.
func NewWriter(w io.Writer, l layout.Layout) *Writer {
	return &Writer{scene: NewMemory(l), w: w}
}

// Scene returns the scene backing the writer.
func (wr *Writer) Scene() *Memory { return wr.scene }

// Initialize binds the surface and prints an init line.
func (wr *Writer) Initialize(container string) error {
	wr.mu.Lock()
	defer wr.mu.Unlock()
	if err := wr.scene.Initialize(container); err != nil {
		return err
	}
	wr.printf("init %s\n", container)

	return nil
}

// SyncGraph replaces the scene and prints a sync line.
func (wr *Writer) SyncGraph(nodes []core.Node, edges []core.Edge) {
	wr.mu.Lock()
	defer wr.mu.Unlock()
	if _, ok := wr.scene.sync(nodes, edges); !ok {
		return
	}
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = e.Source + "-" + e.Target
	}
	wr.printf("sync nodes=%v edges=[%s]\n", nodeIDs(nodes), strings.Join(parts, " "))
}

// SetVisualState tags a node and prints a tag line.
func (wr *Writer) SetVisualState(id string, tag playback.Tag) {
	wr.mu.Lock()
	defer wr.mu.Unlock()
	if wr.scene.set(id, tag) {
		wr.printf("tag %s %s\n", id, tag)
	}
}

// ClearAllVisualState removes every tag and prints a clear line.
func (wr *Writer) ClearAllVisualState() {
	wr.mu.Lock()
	defer wr.mu.Unlock()
	if wr.scene.clearTags() {
		wr.printf("clear\n")
	}
}

// Teardown releases the scene and returns the first write error, if any.
func (wr *Writer) Teardown() error {
	wr.mu.Lock()
	defer wr.mu.Unlock()
	if err := wr.scene.Teardown(); err != nil {
		return err
	}
	wr.printf("teardown\n")

	return wr.err
}

// printf writes one line unless an earlier write failed. Caller holds mu.
func (wr *Writer) printf(format string, args ...any) {
	if wr.err != nil {
		return
	}
	if _, err := fmt.Fprintf(wr.w, format, args...); err != nil {
		wr.err = fmt.Errorf("render: write: %w", err)
	}
}
