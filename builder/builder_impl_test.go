// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/walkview/builder"
	"github.com/katalvlaran/walkview/core"
)

// pairs lists edges as "u-v" in insertion order.
func pairs(g *core.Graph) []string {
	var out []string
	for _, e := range g.Edges() {
		out = append(out, e.Source+"-"+e.Target)
	}

	return out
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		want  []string
	}{
		{"Path(4)", builder.Path(4), 4, []string{"0-1", "1-2", "2-3"}},
		{"Cycle(4)", builder.Cycle(4), 4, []string{"0-1", "1-2", "2-3", "3-0"}},
		{"Star(4)", builder.Star(4), 4, []string{"0-1", "0-2", "0-3"}},
		{"Wheel(3)", builder.Wheel(3), 4, []string{"0-1", "1-2", "2-0", "3-0", "3-1", "3-2"}},
		{"Complete(4)", builder.Complete(4), 4, []string{"0-1", "0-2", "0-3", "1-2", "1-3", "2-3"}},
		{"Complete(1)", builder.Complete(1), 1, nil},
		{"Grid(2,3)", builder.Grid(2, 3), 6, []string{"0-1", "0-3", "1-2", "1-4", "2-5", "3-4", "4-5"}},
		{"RandomSparse(4,1)", builder.RandomSparse(4, 1), 4, []string{"0-1", "0-2", "0-3", "1-2", "1-3", "2-3"}},
		{"RandomSparse(4,0)", builder.RandomSparse(4, 0), 4, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.want, pairs(g))
			for _, e := range g.Edges() {
				assert.Equal(t, "1", e.Weight)
			}
		})
	}
}

func TestBuilders_TooFew(t *testing.T) {
	t.Parallel()
	for name, ctor := range map[string]builder.Constructor{
		"Path(1)":     builder.Path(1),
		"Cycle(2)":    builder.Cycle(2),
		"Star(1)":     builder.Star(1),
		"Wheel(2)":    builder.Wheel(2),
		"Complete(0)": builder.Complete(0),
		"Grid(0,3)":   builder.Grid(0, 3),
		"Random(0)":   builder.RandomSparse(0, 0.5),
	} {
		g := core.NewGraph()
		err := builder.Apply(g, nil, ctor)
		require.ErrorIs(t, err, builder.ErrTooFewVertices, name)
		assert.Zero(t, g.NodeCount(), "%s mutated the graph", name)
	}
}

func TestRandomSparse_Validation(t *testing.T) {
	t.Parallel()
	_, err := builder.BuildGraph(nil, builder.RandomSparse(5, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, builder.RandomSparse(5, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()
	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformIntWeightFn(1, 9))}
	a, err := builder.BuildGraph(opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	opts = []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(42))), builder.WithWeightFn(builder.UniformIntWeightFn(1, 9))}
	b, err := builder.BuildGraph(opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)

	assert.Equal(t, a.Edges(), b.Edges())
	for _, e := range a.Edges() {
		assert.Contains(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, e.Weight)
	}
}

// TestApply_ContinuesIDs appends a preset to a graph that already has nodes.
func TestApply_ContinuesIDs(t *testing.T) {
	t.Parallel()
	g := core.NewGraph()
	g.AddNode()
	g.AddNode()

	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(2.5))},
		builder.Path(3), builder.Star(2)))
	assert.Equal(t, 7, g.NodeCount())
	assert.Equal(t, []string{"2-3", "3-4", "5-6"}, pairs(g))
	assert.Equal(t, "2.5", g.Edges()[0].Weight)
}

func TestApply_NilConstructor(t *testing.T) {
	t.Parallel()
	_, err := builder.BuildGraph(nil, builder.Path(2), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestParse(t *testing.T) {
	t.Parallel()
	valid := map[string]int{
		"path:3": 3, "Cycle:5": 5, "star:4": 4, "wheel:4": 5, "complete:3": 3,
		"grid:2x2": 4, "random:6:0": 6, " path:2 ": 2,
	}
	for expr, wantV := range valid {
		ctor, err := builder.Parse(expr)
		require.NoError(t, err, expr)
		g, err := builder.BuildGraph(nil, ctor)
		require.NoError(t, err, expr)
		assert.Equal(t, wantV, g.NodeCount(), expr)
	}

	for _, expr := range []string{"", "path", "path:x", "grid:3", "grid:ax2", "random:5", "random:5:x", "torus:3"} {
		_, err := builder.Parse(expr)
		require.ErrorIs(t, err, builder.ErrUnknownPreset, expr)
	}
}

func TestWeightFn_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformIntWeightFn(5, 1) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Equal(t, float64(1), builder.UniformIntWeightFn(3, 4)(nil))
}
