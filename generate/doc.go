// SPDX-License-Identifier: MIT
// Package: isofix/generate
//
// Package generate builds labeled-free multigraph pair fixtures: a pool
// of pairwise-non-isomorphic random multigraphs (deduplicated by
// canonical signature), assembled into declared pairs and emitted as one
// graph file per side plus a metadata descriptor.
//
// Pair kinds:
//
//   - isomorphic: a pool member and a uniformly random relabeling of it;
//     the relabeling is recorded as the pair's permutation.
//   - non-isomorphic: two pool members with distinct canonical
//     signatures, picked by index cycling with a random distinct-
//     signature substitute when cycling collides.
//   - subgraph_isomorphic: a pool member as target and the induced
//     subgraph on all-but-one of its vertices as pattern; the kept-index
//     list is recorded as an embedding.
//   - not_subgraph_isomorphic: a pool member as target and a copy with
//     one extra unit of multiplicity as pattern, so the pattern's edge
//     demand provably exceeds the target's supply.
//
// Determinism:
//
//   - All sampling flows through a single *rand.Rand seeded from
//     Options.Seed, so a seed fully reproduces a run. Seed 0 is a
//     legitimate value and is used verbatim, never replaced by a clock.
//   - The pool preserves insertion order (linkedhashmap), so index
//     cycling is stable across runs.
//
// Failure classes:
//
//   - Parameter errors (Options.Validate) abort before any work.
//   - Pool exhaustion (ErrPoolExhausted, ErrNeedTwoSignatures) aborts the
//     run with guidance to relax vertices or max multiplicity.
package generate
