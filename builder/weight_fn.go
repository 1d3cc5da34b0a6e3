// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
)

// DefaultEdgeWeight is the weight used when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn yielding value. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformIntWeightFn returns a WeightFn drawing integers uniformly in
// [min, max]. Panics unless 0 ≤ min ≤ max. A nil RNG yields DefaultEdgeWeight.
func UniformIntWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformIntWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// formatWeight renders w the way a user would type it: "1", "2.5".
// NaN and infinities fall back to DefaultEdgeWeight.
func formatWeight(w float64) string {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		w = DefaultEdgeWeight
	}

	return strconv.FormatFloat(w, 'f', -1, 64)
}
