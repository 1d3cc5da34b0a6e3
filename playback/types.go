// SPDX-License-Identifier: MIT

// Package playback declares visual-state tags, the sink contract and run
// status values shared by Machine and Animator.
package playback

import (
	"errors"
	"fmt"
	"time"
)

// DefaultInterval is the fixed delay between two playback steps.
const DefaultInterval = 450 * time.Millisecond

// ErrUnknownTag is returned when decoding an unrecognized tag name.
var ErrUnknownTag = errors.New("playback: unknown visual tag")

// Tag is the visual state of one node.
type Tag uint8

// Visual states. TagNone is the zero value.
const (
	TagNone     Tag = iota // not yet reached in this run
	TagFrontier            // the node currently being shown
	TagVisited             // shown earlier in this run
)

var tagNames = [...]string{"none", "frontier", "visited"}

// String returns "none", "frontier" or "visited".
func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}

	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// MarshalText encodes the tag by name.
func (t Tag) MarshalText() ([]byte, error) {
	if int(t) >= len(tagNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTag, uint8(t))
	}

	return []byte(tagNames[t]), nil
}

// UnmarshalText decodes a tag name.
func (t *Tag) UnmarshalText(b []byte) error {
	for i, name := range tagNames {
		if string(b) == name {
			*t = Tag(i)
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownTag, b)
}

// Sink receives visual-state mutations. render.Surface implementations
// satisfy it; playback never talks to a surface through anything else.
type Sink interface {
	// SetVisualState replaces the tag of one node.
	SetVisualState(id string, tag Tag)
	// ClearAllVisualState resets every node to TagNone.
	ClearAllVisualState()
}

// Status is the lifecycle state of a playback run.
type Status uint8

// Run lifecycle: Idle → Running → (Done | Cancelled). Idle may also go
// straight to Cancelled.
const (
	StatusIdle Status = iota
	StatusRunning
	StatusCancelled
	StatusDone
)

var statusNames = [...]string{"idle", "running", "cancelled", "done"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}

	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Terminal reports whether no further steps can be applied.
func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusDone
}

// StepEvent describes one applied step.
type StepEvent struct {
	RunID    string // run that applied the step
	Index    int    // position in the order
	NodeID   string // node tagged frontier
	Previous string // node promoted to visited; empty on step 0
}
