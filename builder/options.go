// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options and the resolved builderConfig.
//
// Contract:
//   - Option constructors panic on nil inputs (programmer error).
//     Constructors themselves never panic.
//   - Determinism is explicit: randomness only comes from WithSeed/WithRand.

package builder

import "math/rand"

// BuilderOption customizes construction by mutating builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	rng      *rand.Rand // nil means no randomness
	weightFn WeightFn
}

// newBuilderConfig applies opts over deterministic defaults, in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a new RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// weight draws and formats one edge weight.
func (c builderConfig) weight() string {
	return formatWeight(c.weightFn(c.rng))
}
