// SPDX-License-Identifier: MIT

// Package layout computes 2D node positions for a rendering surface.
//
// Two algorithms are provided:
//
//   - Grid: row-major cells, the surface's initial arrangement.
//   - ForceDirected: Fruchterman–Reingold spring embedding, recomputed on
//     every graph sync. A fixed seed makes it deterministic.
package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLayout is returned by New for an unsupported algorithm name.
var ErrUnknownLayout = errors.New("layout: unknown layout")

// Layout names.
const (
	NameGrid  = "grid"
	NameForce = "force"
)

// Position is a 2D coordinate on the canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Link is an undirected connection considered by the layout.
type Link struct {
	Source string
	Target string
}

// Config configures layout parameters.
type Config struct {
	Width      float64 // canvas width
	Height     float64 // canvas height
	Iterations int     // force-directed iterations
	Padding    float64 // margin kept free on every side
	Seed       int64   // initial placement seed
}

// Default layout parameters.
const (
	DefaultWidth      = 800.0
	DefaultHeight     = 600.0
	DefaultIterations = 300
	DefaultPadding    = 30.0
	DefaultSeed       = 1
)

// DefaultConfig returns an 800×600 canvas with 300 iterations and seed 1.
func DefaultConfig() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Iterations: DefaultIterations,
		Padding:    DefaultPadding,
		Seed:       DefaultSeed,
	}
}

// normalized fills zero or negative fields from DefaultConfig.
func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.Iterations <= 0 {
		c.Iterations = d.Iterations
	}
	if c.Padding < 0 || 2*c.Padding >= c.Width || 2*c.Padding >= c.Height {
		c.Padding = 0
	}

	return c
}

// Layout computes a position for every node ID.
type Layout interface {
	Name() string
	Compute(nodes []string, links []Link) map[string]Position
}

// New returns the layout registered under name ("grid" or "force").
func New(name string, cfg Config) (Layout, error) {
	switch strings.ToLower(name) {
	case NameGrid:
		return NewGrid(cfg), nil
	case NameForce, "cose", "force-directed":
		return NewForceDirected(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
}
