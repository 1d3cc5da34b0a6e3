// SPDX-License-Identifier: MIT

package playback_test

import (
	"maps"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/walkview/playback"
)

// recordingSink keeps the current tag of every node and a call log.
type recordingSink struct {
	mu    sync.Mutex
	tags  map[string]playback.Tag
	calls []string
}

func newRecordingSink() *recordingSink {
	return &recordingSink{tags: make(map[string]playback.Tag)}
}

func (s *recordingSink) SetVisualState(id string, tag playback.Tag) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tag == playback.TagNone {
		delete(s.tags, id)
	} else {
		s.tags[id] = tag
	}
	s.calls = append(s.calls, "set "+id+" "+tag.String())
}

func (s *recordingSink) ClearAllVisualState() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.tags)
	s.calls = append(s.calls, "clear")
}

func (s *recordingSink) Tags() map[string]playback.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()

	return maps.Clone(s.tags)
}

func (s *recordingSink) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.calls...)
}

// manualTicker fires only when the test sends on ch.
type manualTicker struct {
	ch      chan time.Time
	stopped atomic.Bool
}

func (m *manualTicker) C() <-chan time.Time { return m.ch }
func (m *manualTicker) Stop()               { m.stopped.Store(true) }

// manualClock hands out manualTickers and publishes each one on created.
type manualClock struct {
	created chan *manualTicker
}

func newManualClock() *manualClock {
	return &manualClock{created: make(chan *manualTicker, 8)}
}

func (c *manualClock) NewTicker(time.Duration) playback.Ticker {
	t := &manualTicker{ch: make(chan time.Time)}
	c.created <- t

	return t
}
