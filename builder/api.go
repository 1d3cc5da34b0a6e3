// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: public entry points BuildGraph and Apply.
//
// Contract:
//   - Constructors run in order against one graph and one resolved config.
//   - Validation happens before any mutation, so an invalid parameter leaves
//     the graph untouched. A store error mid-construction is returned as is;
//     the store is append-only, so there is no rollback.

package builder

import (
	"fmt"

	"github.com/katalvlaran/walkview/core"
)

// Constructor applies a deterministic topology to g using cfg.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new graph and applies cons in order.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply appends the topologies built by cons to an existing graph.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// addNodes allocates n fresh nodes and returns their IDs in order.
func addNodes(g *core.Graph, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = g.AddNode().ID
	}

	return ids
}

// link adds one weighted edge, wrapping store errors with method context.
func link(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weight()
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%s): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}
