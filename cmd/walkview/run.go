// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/walkview/builder"
	"github.com/katalvlaran/walkview/core"
	"github.com/katalvlaran/walkview/render"
	"github.com/katalvlaran/walkview/session"
	"github.com/katalvlaran/walkview/traverse"
)

// edgeSpec is one --edge value: "u-v" or "u-v:weight". The weight defaults
// to core.DefaultWeight.
type edgeSpec struct {
	u, v, weight string
}

func parseEdge(s string) (edgeSpec, error) {
	ends, weight, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		weight = core.DefaultWeight
	}
	u, v, ok := strings.Cut(ends, "-")
	if !ok || u == "" || v == "" {
		return edgeSpec{}, fmt.Errorf("edge %q: want u-v or u-v:weight", s)
	}

	return edgeSpec{u: u, v: v, weight: weight}, nil
}

func newRunCmd(root *rootOptions) *cobra.Command {
	var (
		nodes   int
		edges   []string
		preset  string
		seed    int64
		kind    string
		start   string
		animate bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build a graph and print a traversal order, optionally animated",
		Example: `  walkview run --nodes 4 --edge 0-1 --edge 0-2 --edge 1-3 --kind dfs --start 0
  walkview run --preset grid:3x3 --kind bfs --start 4 --animate`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, logger := root.cfg, root.logger
			k, err := traverse.ParseKind(kind)
			if err != nil {
				return err
			}
			specs := make([]edgeSpec, 0, len(edges))
			for _, e := range edges {
				es, err := parseEdge(e)
				if err != nil {
					return err
				}
				specs = append(specs, es)
			}
			lay, err := cfg.Layout.Build()
			if err != nil {
				return err
			}

			// Animated runs print every surface mutation; plain runs only
			// print the log line.
			var surface render.Surface = render.NewMemory(lay)
			if animate {
				surface = render.NewWriter(cmd.OutOrStdout(), lay)
			}
			sess := session.New(surface,
				session.WithContainer("terminal"),
				session.WithInterval(cfg.Playback.Interval),
				session.WithLogger(logger),
			)
			ctx := cmd.Context()
			if err := sess.Open(ctx); err != nil {
				return err
			}
			defer func() { err = errors.Join(err, sess.Close()) }()

			if preset != "" {
				ctor, err := builder.Parse(preset)
				if err != nil {
					return err
				}
				if err := sess.ApplyPreset(ctx, []builder.BuilderOption{builder.WithSeed(seed)}, ctor); err != nil {
					return err
				}
			}
			for range nodes {
				if _, err := sess.AddNode(ctx); err != nil {
					return err
				}
			}
			for _, es := range specs {
				if _, err := sess.AddEdge(ctx, es.u, es.v, es.weight); err != nil {
					return fmt.Errorf("edge %s-%s: %w", es.u, es.v, err)
				}
			}

			tr, err := sess.RunTraversal(ctx, k, start)
			if err != nil {
				return err
			}
			if animate {
				if _, err := tr.Run.Wait(ctx); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tr.Log())

			return err
		},
	}
	cmd.Flags().IntVar(&nodes, "nodes", 0, "number of nodes to add (IDs continue after any preset)")
	cmd.Flags().StringArrayVar(&edges, "edge", nil, "edge as u-v or u-v:weight (repeatable)")
	cmd.Flags().StringVar(&preset, "preset", "", `preset graph, e.g. "path:5", "grid:3x4", "random:10:0.3"`)
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for random presets")
	cmd.Flags().StringVar(&kind, "kind", "dfs", "traversal kind: dfs or bfs")
	cmd.Flags().StringVar(&start, "start", "0", "start node ID")
	cmd.Flags().BoolVar(&animate, "animate", false, "print each playback step at the configured interval")

	return cmd
}
