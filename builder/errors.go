// SPDX-License-Identifier: MIT
// Package: opcount/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach context via builderErrorf / %w, never panic.
//   • Option constructors (WithX) panic on meaningless input instead.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates n is below the minimum of the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that RandomConnected was asked for 0 < p < 1
// without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf prefixes a wrapped sentinel with the constructor name:
// "<method>: <message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
