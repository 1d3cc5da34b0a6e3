// SPDX-License-Identifier: MIT
//
// File: impl_ring.go
// Role: Path(n) and Cycle(n) constructors.
//
// Determinism:
//   - Nodes are allocated in index order 0..n-1 (relative to the store).
//   - Edges are emitted i→i+1 ascending; Cycle closes with (n-1)→0.
//
// Complexity:
//   - Time O(n), Space O(n) for the allocated ID list.

package builder

import (
	"fmt"

	"github.com/katalvlaran/walkview/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor for the simple path P_n (n ≥ 2).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := addNodes(g, n)
		for i := 0; i+1 < n; i++ {
			if err := link(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the simple cycle C_n (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := addNodes(g, n)
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
