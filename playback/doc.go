// SPDX-License-Identifier: MIT

// Package playback animates a visitation order onto a visual-state Sink.
//
// Machine is the timer-free core: it owns the order, a cursor and a status
// (idle, running, cancelled, done). Start clears all tags and shows the first
// node as frontier; each Advance promotes the previous frontier to visited
// and tags the next node. After the last node is shown the machine is done
// and that node stays frontier.
//
// Animator drives one Machine at a time with a fixed-interval ticker. Play
// supersedes any run in progress: the old run is cancelled under the same
// lock that guards sink writes, so its pending ticks are dropped instead of
// landing on the new run's tags.
//
//	a := playback.NewAnimator(playback.WithInterval(450 * time.Millisecond))
//	run := a.Play(ctx, []string{"0", "1", "3", "2"}, surface)
//	status, _ := run.Wait(ctx) // StatusDone, or StatusCancelled if superseded
package playback
