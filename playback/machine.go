// SPDX-License-Identifier: MIT
//
// File: machine.go
// Role: Timer-free playback state machine (order, cursor, status).
//
// Invariants:
//   - At most one node is frontier: a step promotes the previous frontier to
//     visited before tagging the next one.
//   - The last node stays frontier; there is no terminal demotion step.
//   - Steps apply only while status == StatusRunning.

package playback

// Machine steps through a visitation order one node at a time.
// It is not safe for concurrent use; Animator serializes access.
type Machine struct {
	order  []string
	cursor int // index of the next node to show
	status Status
}

// NewMachine returns an idle machine over a private copy of order.
func NewMachine(order []string) *Machine {
	cp := make([]string, len(order))
	copy(cp, order)

	return &Machine{order: cp}
}

// Start clears every tag on sink, moves to Running and applies step 0.
// It reports whether more steps remain. An empty order finishes at once.
// Start on a non-idle machine is a no-op returning false.
func (m *Machine) Start(sink Sink) bool {
	if m.status != StatusIdle {
		return false
	}
	sink.ClearAllVisualState()
	m.status = StatusRunning
	if len(m.order) == 0 {
		m.status = StatusDone
		return false
	}

	return m.Advance(sink)
}

// Advance applies the step at the cursor and reports whether more remain.
//
//	step 0:   order[0] → frontier
//	step i>0: order[i-1] → visited, order[i] → frontier
func (m *Machine) Advance(sink Sink) bool {
	if m.status != StatusRunning {
		return false
	}
	i := m.cursor
	if i > 0 {
		sink.SetVisualState(m.order[i-1], TagVisited)
	}
	sink.SetVisualState(m.order[i], TagFrontier)
	m.cursor++
	if m.cursor >= len(m.order) {
		m.status = StatusDone
		return false
	}

	return true
}

// Cancel stops an idle or running machine. It reports whether the status
// changed; finished machines stay as they are.
func (m *Machine) Cancel() bool {
	if m.status.Terminal() {
		return false
	}
	m.status = StatusCancelled

	return true
}

// Status returns the lifecycle state.
func (m *Machine) Status() Status { return m.status }

// Cursor returns the index of the next node to show.
func (m *Machine) Cursor() int { return m.cursor }

// Len returns the number of nodes in the order.
func (m *Machine) Len() int { return len(m.order) }

// NodeAt returns order[i], or "" when i is out of range.
func (m *Machine) NodeAt(i int) string {
	if i < 0 || i >= len(m.order) {
		return ""
	}

	return m.order[i]
}
