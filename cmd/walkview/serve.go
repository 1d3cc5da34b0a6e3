// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/walkview/builder"
	"github.com/katalvlaran/walkview/render"
	"github.com/katalvlaran/walkview/server"
	"github.com/katalvlaran/walkview/session"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var (
		addr   string
		preset string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API and the websocket surface feed",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, logger := root.cfg, root.logger
			if addr != "" {
				cfg.Server.Addr = addr
			}
			lay, err := cfg.Layout.Build()
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			hub := render.NewHub(lay, render.WithHubLogger(logger))
			sess := session.New(hub,
				session.WithInterval(cfg.Playback.Interval),
				session.WithLogger(logger),
				session.WithMetrics(session.NewMetrics(reg)),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := sess.Open(ctx); err != nil {
				return err
			}
			defer func() { err = errors.Join(err, sess.Close()) }()

			if preset != "" {
				ctor, err := builder.Parse(preset)
				if err != nil {
					return err
				}
				if err := sess.ApplyPreset(ctx, []builder.BuilderOption{builder.WithSeed(cfg.Layout.Seed)}, ctor); err != nil {
					return err
				}
			}

			logger.Info("walkview server starting", "addr", cfg.Server.Addr, "session", sess.ID(),
				"interval", cfg.Playback.Interval, "layout", lay.Name())
			srv := server.New(sess, server.WithHub(hub), server.WithGatherer(reg), server.WithLogger(logger))

			return srv.Run(ctx, cfg.Server.Addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&preset, "preset", "", `initial graph, e.g. "cycle:6" or "grid:3x4"`)

	return cmd
}
