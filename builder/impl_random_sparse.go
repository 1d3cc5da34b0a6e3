// SPDX-License-Identifier: MIT
//
// File: impl_random_sparse.go
// Role: RandomSparse(n, p) constructor (Erdős–Rényi G(n,p)).
//
// Contract:
//   - n ≥ 1, 0 ≤ p ≤ 1.
//   - An RNG is required only when 0 < p < 1; p=0 and p=1 are deterministic.
//
// Determinism:
//   - Trials run over unordered pairs (i, j), i < j, i then j ascending, so a
//     fixed seed yields the same edge set and weights.
//
// Complexity:
//   - Time O(n²) trials, Space O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/walkview/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor sampling each of the n(n-1)/2 possible
// edges independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := addNodes(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				switch {
				case p == probMax:
					keep = true
				case p == probMin:
					keep = false
				default:
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
