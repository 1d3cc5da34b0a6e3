// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w, e.g. "Cycle: n=2 < min=3: ...".

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the store rejected a mutation during
// construction, or a nil constructor was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownPreset indicates Parse could not recognize a preset expression.
var ErrUnknownPreset = errors.New("builder: unknown preset")
