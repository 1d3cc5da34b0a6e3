// SPDX-License-Identifier: MIT

package core_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/walkview/core"
)

// TestGraph_ConcurrentMutation hammers AddNode/AddEdge/Snapshot from many
// goroutines and then checks IDs stay unique and endpoints stay valid.
func TestGraph_ConcurrentMutation(t *testing.T) {
	const workers, perWorker = 8, 50
	g := core.NewGraph()
	g.AddNode()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				n := g.AddNode()
				_, _ = g.AddEdge("0", n.ID, strconv.Itoa(i))
				nodes, edges := g.Snapshot()
				_ = core.BuildAdjacency(nodes, edges)
			}
		}()
	}
	wg.Wait()

	nodes, edges := g.Snapshot()
	assert.Len(t, nodes, workers*perWorker+1)
	assert.Len(t, edges, workers*perWorker)

	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		assert.False(t, seen[n.ID], "duplicate node ID %s", n.ID)
		seen[n.ID] = true
	}
	for i, e := range edges {
		assert.Equal(t, "e"+strconv.Itoa(i), e.ID)
		assert.True(t, seen[e.Target])
	}
}
