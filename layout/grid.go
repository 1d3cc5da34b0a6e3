// SPDX-License-Identifier: MIT

package layout

import "math"

// Grid places nodes row-major in a near-square grid of equal cells.
type Grid struct {
	cfg Config
}

// NewGrid returns a Grid layout.
func NewGrid(cfg Config) *Grid {
	return &Grid{cfg: cfg.normalized()}
}

// Name returns "grid".
func (g *Grid) Name() string { return NameGrid }

// Compute centers node i in cell (i / cols, i % cols). Links are ignored.
func (g *Grid) Compute(nodes []string, _ []Link) map[string]Position {
	out := make(map[string]Position, len(nodes))
	n := len(nodes)
	if n == 0 {
		return out
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := (n + cols - 1) / cols
	cellW := (g.cfg.Width - 2*g.cfg.Padding) / float64(cols)
	cellH := (g.cfg.Height - 2*g.cfg.Padding) / float64(rows)
	for i, id := range nodes {
		r, c := i/cols, i%cols
		out[id] = Position{
			X: g.cfg.Padding + cellW*(float64(c)+0.5),
			Y: g.cfg.Padding + cellH*(float64(r)+0.5),
		}
	}

	return out
}
