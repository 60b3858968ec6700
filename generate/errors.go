// SPDX-License-Identifier: MIT
// Package: isofix/generate
//
// errors.go — sentinel errors for fixture generation.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is.
//   - Implementations attach context with %w wrapping; sentinels carry no
//     parameter values themselves.

package generate

import "errors"

// ErrBadParameter indicates an invalid option value outside the more
// specific classes below (negative pair counts, empty output directory,
// non-positive attempt budget).
var ErrBadParameter = errors.New("generate: invalid parameter")

// ErrTooFewVertices indicates a vertex count too small for the requested
// work: below 1, equal to 1 without loops (no edge can exist), or below 2
// when subgraph-positive pairs were requested.
var ErrTooFewVertices = errors.New("generate: too few vertices")

// ErrBadMultiplicity indicates a maximum edge multiplicity below 1.
var ErrBadMultiplicity = errors.New("generate: max multiplicity must be at least 1")

// ErrNoPairsRequested indicates that every pair count is zero.
var ErrNoPairsRequested = errors.New("generate: no pairs requested")

// ErrBadFormat indicates an unrecognized graph file format.
var ErrBadFormat = errors.New("generate: unknown output format")

// ErrPoolExhausted indicates the attempt budget ran out before the pool
// reached the requested number of unique canonical forms. Relax the
// parameters: increase max multiplicity or the vertex count.
var ErrPoolExhausted = errors.New("generate: unique graph pool exhausted")

// ErrNeedTwoSignatures indicates that non-isomorphic pairs were requested
// but fewer than two distinct canonical forms exist in the pool.
var ErrNeedTwoSignatures = errors.New("generate: need two distinct canonical forms")
