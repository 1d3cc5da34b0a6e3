// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/walkview/bfs"
	"github.com/katalvlaran/walkview/core"
)

// buildGraph creates n nodes and the given undirected edges.
func buildGraph(t testing.TB, n int, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode()
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], "1")
		require.NoError(t, err)
	}

	return g
}

func referenceGraph(t testing.TB) *core.Graph {
	return buildGraph(t, 4, [2]string{"0", "1"}, [2]string{"0", "2"}, [2]string{"1", "3"})
}

// TestBFS_Errors verifies that invalid options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(referenceGraph(t).Adjacency(), "0", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_ReferenceGraph checks level order on 0-1, 0-2, 1-3.
func TestBFS_ReferenceGraph(t *testing.T) {
	res, err := bfs.BFS(referenceGraph(t).Adjacency(), "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3"}, res.Order)
	assert.Equal(t, map[string]int{"0": 0, "1": 1, "2": 1, "3": 2}, res.Depth)
}

// TestBFS_StartNotInGraph checks the degenerate single-node order.
func TestBFS_StartNotInGraph(t *testing.T) {
	res, err := bfs.BFS(referenceGraph(t).Adjacency(), "99")
	require.NoError(t, err)
	assert.Equal(t, []string{"99"}, res.Order)
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	// 0–1–2–3–0 cycle
	g := buildGraph(t, 4,
		[2]string{"0", "1"}, [2]string{"1", "2"},
		[2]string{"2", "3"}, [2]string{"3", "0"},
	)
	res, err := bfs.BFS(g.Adjacency(), "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "3", "2"}, res.Order)
	assert.Equal(t, 2, res.Depth["2"])
	assert.Equal(t, "1", res.Parent["2"], "2 is first reached from 1")
}

// TestBFS_Disconnected ensures BFS only explores the component of the start node.
func TestBFS_Disconnected(t *testing.T) {
	g := buildGraph(t, 4, [2]string{"0", "1"}, [2]string{"2", "3"})
	res, err := bfs.BFS(g.Adjacency(), "3")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "2"}, res.Order)
}

// TestBFS_SelfLoopAndParallelDedup ensures loops and parallel edges do not enqueue twice.
func TestBFS_SelfLoopAndParallelDedup(t *testing.T) {
	g := buildGraph(t, 2, [2]string{"0", "0"}, [2]string{"0", "1"}, [2]string{"0", "1"})
	var enqueued []string
	res, err := bfs.BFS(g.Adjacency(), "0", bfs.WithOnEnqueue(func(id string, _ int) {
		enqueued = append(enqueued, id)
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, res.Order)
	assert.Equal(t, []string{"0", "1"}, enqueued)
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := buildGraph(t, 3, [2]string{"0", "1"}, [2]string{"1", "2"})
	for _, tc := range []struct {
		depth int
		want  []string
	}{
		{1, []string{"0", "1"}},
		{0, []string{"0", "1", "2"}},
		{10, []string{"0", "1", "2"}},
	} {
		res, err := bfs.BFS(g.Adjacency(), "0", bfs.WithMaxDepth(tc.depth))
		require.NoError(t, err)
		assert.Equal(t, tc.want, res.Order, "MaxDepth=%d", tc.depth)
	}
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence.
func TestBFS_Hooks(t *testing.T) {
	g := buildGraph(t, 3, [2]string{"0", "1"}, [2]string{"1", "2"})

	var enq, deq, vis []string
	entry := func(id string, d int) string { return id + "@" + strconv.Itoa(d) }

	_, err := bfs.BFS(g.Adjacency(), "0",
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, entry(id, d)) }),
		bfs.WithOnDequeue(func(id string, d int) { deq = append(deq, entry(id, d)) }),
		bfs.WithOnVisit(func(id string, d int) error { vis = append(vis, entry(id, d)); return nil }),
	)
	require.NoError(t, err)

	want := []string{"0@0", "1@1", "2@2"}
	assert.Equal(t, want, enq)
	assert.Equal(t, want, deq)
	assert.Equal(t, want, vis)
}

// TestBFS_OnVisitAbort checks a hook error stops traversal.
func TestBFS_OnVisitAbort(t *testing.T) {
	boom := errors.New("boom")
	res, err := bfs.BFS(referenceGraph(t).Adjacency(), "0", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "2" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"0", "1", "2"}, res.Order)
}

// TestBFS_PathTo covers reachable, trivial and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	res, err := bfs.BFS(referenceGraph(t).Adjacency(), "0")
	require.NoError(t, err)

	path, err := res.PathTo("3")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "3"}, path)

	path, err = res.PathTo("0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0"}, path)

	_, err = res.PathTo("42")
	require.ErrorIs(t, err, bfs.ErrNoPath)
	assert.True(t, strings.Contains(err.Error(), "42"))
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(referenceGraph(t).Adjacency(), "0", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
