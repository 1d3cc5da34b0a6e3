// SPDX-License-Identifier: MIT
//
// File: force.go
// Role: Fruchterman–Reingold force-directed layout.
//
// Determinism:
//   - Initial positions come from math/rand seeded with Config.Seed, drawn in
//     node order. Same nodes, links and seed ⇒ same positions.
//
// Complexity:
//   - Time O(I·(V² + E)) for I iterations, Space O(V).

package layout

import (
	"math"
	"math/rand"
)

// minDistance keeps the repulsion finite for coincident nodes.
const minDistance = 0.01

// ForceDirected is a spring-electrical layout: every pair of nodes repels,
// every link attracts, and the step size cools linearly to zero.
type ForceDirected struct {
	cfg Config
}

// NewForceDirected returns a ForceDirected layout.
func NewForceDirected(cfg Config) *ForceDirected {
	return &ForceDirected{cfg: cfg.normalized()}
}

// Name returns "force".
func (f *ForceDirected) Name() string { return NameForce }

// Compute runs cfg.Iterations rounds and returns positions clamped to the
// padded canvas. Links whose endpoints are not in nodes are skipped, as are
// self-loops.
func (f *ForceDirected) Compute(nodes []string, links []Link) map[string]Position {
	n := len(nodes)
	out := make(map[string]Position, n)
	if n == 0 {
		return out
	}
	cx, cy := f.cfg.Width/2, f.cfg.Height/2
	if n == 1 {
		out[nodes[0]] = Position{X: cx, Y: cy}
		return out
	}

	minX, maxX := f.cfg.Padding, f.cfg.Width-f.cfg.Padding
	minY, maxY := f.cfg.Padding, f.cfg.Height-f.cfg.Padding

	index := make(map[string]int, n)
	for i, id := range nodes {
		index[id] = i
	}
	type pair struct{ u, v int }
	springs := make([]pair, 0, len(links))
	for _, l := range links {
		u, okU := index[l.Source]
		v, okV := index[l.Target]
		if !okU || !okV || u == v {
			continue
		}
		springs = append(springs, pair{u, v})
	}

	rng := rand.New(rand.NewSource(f.cfg.Seed))
	pos := make([]Position, n)
	for i := range pos {
		pos[i] = Position{
			X: minX + rng.Float64()*(maxX-minX),
			Y: minY + rng.Float64()*(maxY-minY),
		}
	}

	k := math.Sqrt((maxX - minX) * (maxY - minY) / float64(n))
	temp0 := (maxX - minX) / 10
	disp := make([]Position, n)

	for iter := 0; iter < f.cfg.Iterations; iter++ {
		for i := range disp {
			disp[i] = Position{}
		}

		// Repulsion: k²/d between every pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx, dy := pos[i].X-pos[j].X, pos[i].Y-pos[j].Y
				d := math.Max(math.Hypot(dx, dy), minDistance)
				force := k * k / d
				fx, fy := dx/d*force, dy/d*force
				disp[i].X += fx
				disp[i].Y += fy
				disp[j].X -= fx
				disp[j].Y -= fy
			}
		}

		// Attraction: d²/k along each link.
		for _, s := range springs {
			dx, dy := pos[s.u].X-pos[s.v].X, pos[s.u].Y-pos[s.v].Y
			d := math.Max(math.Hypot(dx, dy), minDistance)
			force := d * d / k
			fx, fy := dx/d*force, dy/d*force
			disp[s.u].X -= fx
			disp[s.u].Y -= fy
			disp[s.v].X += fx
			disp[s.v].Y += fy
		}

		// Move, capped by the current temperature.
		temp := temp0 * (1 - float64(iter)/float64(f.cfg.Iterations))
		for i := range pos {
			l := math.Hypot(disp[i].X, disp[i].Y)
			if l < minDistance {
				continue
			}
			step := math.Min(l, temp)
			pos[i].X = clamp(pos[i].X+disp[i].X/l*step, minX, maxX)
			pos[i].Y = clamp(pos[i].Y+disp[i].Y/l*step, minY, maxY)
		}
	}

	for i, id := range nodes {
		out[id] = pos[i]
	}

	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
