// SPDX-License-Identifier: MIT
//
// File: session.go
// Role: One interactive graph-building session: store, surface, animator.
//
// Ordering:
//   - User operations are serialized by Session.mu, mirroring a single
//     event loop.
//   - A successful structural mutation cancels any in-flight playback
//     before the surface is resynced. A rejected edge changes nothing,
//     playback included.
//   - RunTraversal cancels the previous playback (inside Animator.Play)
//     before the new run clears tags and shows its first step.
//
// The surface is owned by the session between Open and Close; Close tears
// it down on every path, even when cancelling playback reports nothing.

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/walkview/builder"
	"github.com/katalvlaran/walkview/core"
	"github.com/katalvlaran/walkview/playback"
	"github.com/katalvlaran/walkview/render"
	"github.com/katalvlaran/walkview/traverse"
)

// Sentinel errors for session lifecycle misuse.
var (
	ErrNotOpen     = errors.New("session: not open")
	ErrAlreadyOpen = errors.New("session: already open")
)

// DefaultContainer is the surface container used when none is configured.
const DefaultContainer = "cy"

const tracerName = "github.com/katalvlaran/walkview/session"

// Traversal is the outcome of RunTraversal: the computed order and the
// playback run animating it.
type Traversal struct {
	traverse.Result
	Run *playback.Run
}

// Session couples one graph store with one rendering surface.
type Session struct {
	mu sync.Mutex

	id        string
	container string
	graph     *core.Graph
	surface   render.Surface
	anim      *playback.Animator
	logger    *slog.Logger
	metrics   *Metrics
	tracer    trace.Tracer

	// playback runs derive from ctx so Close stops them even when the
	// request that started them is long gone.
	ctx    context.Context
	cancel context.CancelFunc
	open   bool
	last   *traverse.Result
}

// Option configures a Session.
type Option func(*settings)

type settings struct {
	container string
	graph     *core.Graph
	logger    *slog.Logger
	metrics   *Metrics
	tracer    trace.Tracer
	animOpts  []playback.Option
}

// WithContainer sets the surface container name.
func WithContainer(name string) Option {
	return func(s *settings) { s.container = name }
}

// WithGraph starts the session from an existing store (e.g. a preset).
func WithGraph(g *core.Graph) Option {
	return func(s *settings) { s.graph = g }
}

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics enables Prometheus collection.
func WithMetrics(m *Metrics) Option {
	return func(s *settings) { s.metrics = m }
}

// WithTracer overrides the otel tracer (global provider by default).
func WithTracer(t trace.Tracer) Option {
	return func(s *settings) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithInterval sets the playback step delay.
func WithInterval(d time.Duration) Option {
	return func(s *settings) { s.animOpts = append(s.animOpts, playback.WithInterval(d)) }
}

// WithTicker replaces the playback ticker factory.
func WithTicker(fn playback.TickerFunc) Option {
	return func(s *settings) { s.animOpts = append(s.animOpts, playback.WithTicker(fn)) }
}

// New returns a closed session rendering onto surface.
func New(surface render.Surface, opts ...Option) *Session {
	st := settings{
		container: DefaultContainer,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&st)
	}
	if st.graph == nil {
		st.graph = core.NewGraph()
	}
	if st.tracer == nil {
		st.tracer = otel.Tracer(tracerName)
	}

	id := uuid.NewString()
	logger := st.logger.With("session", id)
	m := st.metrics
	animOpts := append([]playback.Option{
		playback.WithLogger(logger),
		playback.WithOnStep(m.step),
		playback.WithOnFinish(m.finish),
	}, st.animOpts...)

	s := &Session{
		id:        id,
		container: st.container,
		graph:     st.graph,
		surface:   surface,
		anim:      playback.NewAnimator(animOpts...),
		logger:    logger,
		metrics:   m,
		tracer:    st.tracer,
	}
	m.graph(s.graph.Stats())

	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Animator returns the playback animator.
func (s *Session) Animator() *playback.Animator { return s.anim }

// Open initializes the surface and shows the current graph.
func (s *Session) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open {
		return ErrAlreadyOpen
	}
	if err := s.surface.Initialize(s.container); err != nil {
		return fmt.Errorf("session: initialize surface: %w", err)
	}
	s.ctx, s.cancel = context.WithCancel(context.WithoutCancel(ctx))
	s.open = true
	s.syncLocked()
	s.logger.Info("session opened", "container", s.container)

	return nil
}

// Close stops playback and tears the surface down.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return ErrNotOpen
	}
	s.open = false
	s.anim.Cancel()
	s.cancel()
	err := s.surface.Teardown()
	if err != nil {
		err = fmt.Errorf("session: teardown surface: %w", err)
	}
	s.logger.Info("session closed", "err", err)

	return err
}

// AddNode allocates the next node and resyncs the surface.
func (s *Session) AddNode(ctx context.Context) (core.Node, error) {
	_, span := s.tracer.Start(ctx, "session.AddNode")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return core.Node{}, fail(span, ErrNotOpen)
	}
	n := s.graph.AddNode()
	s.mutatedLocked()
	span.SetAttributes(attribute.String("walkview.node", n.ID))
	s.logger.Info("node added", "node", n.ID)

	return n, nil
}

// AddEdge connects two existing nodes and resyncs the surface. An unknown
// endpoint is reported as core.ErrNodeNotFound and changes nothing.
func (s *Session) AddEdge(ctx context.Context, u, v, weight string) (core.Edge, error) {
	_, span := s.tracer.Start(ctx, "session.AddEdge", trace.WithAttributes(
		attribute.String("walkview.source", u),
		attribute.String("walkview.target", v),
	))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return core.Edge{}, fail(span, ErrNotOpen)
	}
	e, err := s.graph.AddEdge(u, v, weight)
	if err != nil {
		s.metrics.edgeRejected()
		s.logger.Warn("edge rejected", "source", u, "target", v, "err", err)
		return core.Edge{}, fail(span, err)
	}
	s.mutatedLocked()
	span.SetAttributes(attribute.String("walkview.edge", e.ID))
	s.logger.Info("edge added", "edge", e.ID, "source", u, "target", v, "weight", weight)

	return e, nil
}

// ApplyPreset appends preset topologies to the store and resyncs once.
func (s *Session) ApplyPreset(ctx context.Context, bopts []builder.BuilderOption, cons ...builder.Constructor) error {
	_, span := s.tracer.Start(ctx, "session.ApplyPreset")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return fail(span, ErrNotOpen)
	}
	before := s.graph.Stats()
	err := builder.Apply(s.graph, bopts, cons...)
	if after := s.graph.Stats(); after != before {
		s.mutatedLocked()
	}
	if err != nil {
		return fail(span, err)
	}
	s.logger.Info("preset applied", "nodes", s.graph.NodeCount(), "edges", s.graph.EdgeCount())

	return nil
}

// RunTraversal computes the visitation order of kind from start over a
// fresh adjacency snapshot and starts animating it. A start that names no
// node yields the order [start].
func (s *Session) RunTraversal(ctx context.Context, kind traverse.Kind, start string) (*Traversal, error) {
	ctx, span := s.tracer.Start(ctx, "session.RunTraversal", trace.WithAttributes(
		attribute.String("walkview.kind", string(kind)),
		attribute.String("walkview.start", start),
	))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return nil, fail(span, ErrNotOpen)
	}
	res, err := traverse.Run(ctx, kind, s.graph.Adjacency(), start)
	if err != nil {
		return nil, fail(span, err)
	}
	s.last = &res
	s.metrics.traversal(res)

	run := s.anim.Play(s.ctx, res.Order, s.surface)
	span.SetAttributes(
		attribute.Int("walkview.order_length", len(res.Order)),
		attribute.String("walkview.run", run.ID()),
	)
	s.logger.Info("traversal started", "kind", kind, "start", start, "run", run.ID(), "log", res.Log())

	return &Traversal{Result: res, Run: run}, nil
}

// Snapshot returns the store's nodes and edges.
func (s *Session) Snapshot() ([]core.Node, []core.Edge) {
	return s.graph.Snapshot()
}

// Stats returns the store's node and edge counts.
func (s *Session) Stats() core.GraphStats {
	return s.graph.Stats()
}

// Log returns the last traversal's log line, or "" before the first one.
func (s *Session) Log() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return ""
	}

	return s.last.Log()
}

// mutatedLocked cancels playback, resyncs the surface and updates gauges.
// Caller holds s.mu.
func (s *Session) mutatedLocked() {
	if s.anim.Cancel() {
		s.logger.Debug("playback cancelled by graph change")
	}
	s.syncLocked()
}

func (s *Session) syncLocked() {
	nodes, edges := s.graph.Snapshot()
	s.surface.SyncGraph(nodes, edges)
	s.metrics.graph(core.GraphStats{NodeCount: len(nodes), EdgeCount: len(edges)})
}

// fail records err on span and returns it.
func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}
