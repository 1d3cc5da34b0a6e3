// SPDX-License-Identifier: MIT
//
// File: animator.go
// Role: Drives a Machine on a fixed interval, one run at a time.
//
// Concurrency:
//   - Every sink write happens under Animator.mu, from Play (step 0) or from
//     the run's tick goroutine (later steps).
//   - A tick applies only if its run is still the current one and running.
//     Play and Cancel flip the previous run to Cancelled under the same lock,
//     so a superseded run can never write after its successor started.
//   - Hooks (OnStep, OnFinish) run after the lock is released.
//   - Run.done closes only after OnFinish returned, so Wait observes the
//     finish hook's effects.

package playback

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Animator plays visitation orders onto a Sink.
type Animator struct {
	mu sync.Mutex

	interval  time.Duration
	newTicker TickerFunc
	logger    *slog.Logger
	onStep    func(StepEvent)
	onFinish  func(runID string, status Status)

	current *Run // run owning the sink; nil when idle
}

// Option configures an Animator.
type Option func(*Animator)

// WithInterval sets the delay between steps. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(a *Animator) {
		if d > 0 {
			a.interval = d
		}
	}
}

// WithTicker replaces the ticker factory (time.NewTicker by default).
func WithTicker(fn TickerFunc) Option {
	return func(a *Animator) {
		if fn != nil {
			a.newTicker = fn
		}
	}
}

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(a *Animator) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithOnStep registers a callback invoked after each applied step.
func WithOnStep(fn func(StepEvent)) Option {
	return func(a *Animator) { a.onStep = fn }
}

// WithOnFinish registers a callback invoked once per run when it reaches
// StatusDone or StatusCancelled.
func WithOnFinish(fn func(runID string, status Status)) Option {
	return func(a *Animator) { a.onFinish = fn }
}

// NewAnimator returns an idle animator stepping every DefaultInterval.
func NewAnimator(opts ...Option) *Animator {
	a := &Animator{
		interval:  DefaultInterval,
		newTicker: NewTimeTicker,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Interval returns the configured step delay.
func (a *Animator) Interval() time.Duration { return a.interval }

// Run is one playback of one order onto one sink.
type Run struct {
	id      string
	anim    *Animator
	machine *Machine
	sink    Sink
	cancel  context.CancelFunc
	done    chan struct{}
	closing sync.Once
}

// ID returns the run identifier.
func (r *Run) ID() string { return r.id }

// Done is closed once the run reached StatusDone or StatusCancelled and the
// OnFinish hook has returned.
func (r *Run) Done() <-chan struct{} { return r.done }

// Status returns the run's current lifecycle state.
func (r *Run) Status() Status {
	r.anim.mu.Lock()
	defer r.anim.mu.Unlock()

	return r.machine.Status()
}

// Wait blocks until the run finishes or ctx is done.
func (r *Run) Wait(ctx context.Context) (Status, error) {
	select {
	case <-r.done:
		return r.Status(), nil
	case <-ctx.Done():
		return r.Status(), ctx.Err()
	}
}

// Play cancels any run in progress, clears every tag on sink and shows
// order[0] as frontier before returning. The remaining steps fire one per
// interval on a background goroutine. Cancelling ctx cancels the run.
func (a *Animator) Play(ctx context.Context, order []string, sink Sink) *Run {
	runCtx, cancel := context.WithCancel(ctx)
	run := &Run{
		id:      uuid.NewString(),
		anim:    a,
		machine: NewMachine(order),
		sink:    sink,
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	a.mu.Lock()
	prev := a.cancelLocked()
	a.current = run
	more := run.machine.Start(sink)
	if !more {
		a.detachLocked(run)
	}
	a.mu.Unlock()

	if prev != nil {
		a.finished(prev, StatusCancelled)
	}
	a.logger.Info("playback started", "run", run.id, "nodes", len(order))
	if len(order) > 0 {
		a.stepped(StepEvent{RunID: run.id, Index: 0, NodeID: order[0]})
	}
	if !more {
		cancel()
		a.finished(run, StatusDone)
		return run
	}

	go a.drive(runCtx, run)

	return run
}

// Cancel stops the run in progress, if any. Tags already applied stay.
// It reports whether a run was cancelled.
func (a *Animator) Cancel() bool {
	a.mu.Lock()
	prev := a.cancelLocked()
	a.mu.Unlock()

	if prev == nil {
		return false
	}
	a.finished(prev, StatusCancelled)

	return true
}

// Current returns the run in progress, or nil.
func (a *Animator) Current() *Run {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.current
}

// drive applies one step per tick until the run ends or is cancelled.
func (a *Animator) drive(ctx context.Context, run *Run) {
	t := a.newTicker(a.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			a.abort(run)
			return
		case <-t.C():
			if !a.tick(run) {
				return
			}
		}
	}
}

// tick applies the next step of run if it still owns the sink.
func (a *Animator) tick(run *Run) bool {
	a.mu.Lock()
	if a.current != run || run.machine.Status() != StatusRunning {
		a.mu.Unlock()
		return false
	}
	idx := run.machine.Cursor()
	ev := StepEvent{
		RunID:    run.id,
		Index:    idx,
		NodeID:   run.machine.NodeAt(idx),
		Previous: run.machine.NodeAt(idx - 1),
	}
	more := run.machine.Advance(run.sink)
	if !more {
		a.detachLocked(run)
	}
	a.mu.Unlock()

	a.stepped(ev)
	if !more {
		run.cancel()
		a.finished(run, StatusDone)
	}

	return more
}

// abort handles cancellation of the run's own context (parent ctx done).
func (a *Animator) abort(run *Run) {
	a.mu.Lock()
	if a.current != run || !run.machine.Cancel() {
		a.mu.Unlock()
		return
	}
	a.detachLocked(run)
	a.mu.Unlock()

	a.finished(run, StatusCancelled)
}

// cancelLocked marks the current run cancelled and detaches it.
// Caller holds a.mu.
func (a *Animator) cancelLocked() *Run {
	run := a.current
	if run == nil {
		return nil
	}
	run.machine.Cancel()
	run.cancel()
	a.detachLocked(run)

	return run
}

// detachLocked releases the sink held by run. Caller holds a.mu; the caller
// that detached the run owes it one finished call.
func (a *Animator) detachLocked(run *Run) {
	if a.current == run {
		a.current = nil
	}
}

func (a *Animator) stepped(ev StepEvent) {
	a.logger.Debug("playback step", "run", ev.RunID, "index", ev.Index, "node", ev.NodeID)
	if a.onStep != nil {
		a.onStep(ev)
	}
}

func (a *Animator) finished(run *Run, status Status) {
	a.logger.Info("playback finished", "run", run.id, "status", status.String())
	if a.onFinish != nil {
		a.onFinish(run.id, status)
	}
	run.closing.Do(func() { close(run.done) })
}
