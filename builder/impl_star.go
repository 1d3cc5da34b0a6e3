// SPDX-License-Identifier: MIT
//
// File: impl_star.go
// Role: Star(n) and Wheel(n) constructors.
//
// Determinism:
//   - Star allocates the hub first, then n-1 leaves; spokes hub→leaf ascending.
//   - Wheel allocates the n rim nodes first, then the hub; ring edges are
//     emitted before spokes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/walkview/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 3
)

// Star returns a Constructor for a star with n nodes: one hub and n-1
// leaves (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids := addNodes(g, n)
		hub := ids[0]
		for _, leaf := range ids[1:] {
			if err := link(g, cfg, methodStar, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor for a rim cycle of n nodes plus a hub joined
// to every rim node (n ≥ 3): n+1 nodes, 2n edges.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		rim := addNodes(g, n)
		hub := g.AddNode().ID
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodWheel, rim[i], rim[(i+1)%n]); err != nil {
				return err
			}
		}
		for _, r := range rim {
			if err := link(g, cfg, methodWheel, hub, r); err != nil {
				return err
			}
		}

		return nil
	}
}
