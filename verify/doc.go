// SPDX-License-Identifier: MIT
// Package: isofix/verify
//
// Package verify cross-checks a fixture metadata document against the
// graph files it references: counts, canonical signatures, and the
// declared isomorphism / subgraph relations are all recomputed from
// scratch and compared claim by claim.
//
// Failure model (graceful degradation):
//
//   - A metadata document that cannot be loaded aborts the run — there is
//     nothing to check.
//   - A graph file that cannot be loaded fails that pair with a single
//     check and short-circuits the pair's remaining checks; other pairs
//     are unaffected.
//   - Every recomputed-vs-declared mismatch is one failed Check in the
//     aggregated Result; nothing below the load level is fatal.
//
// Optional metadata fields are checked only when present. Declared
// permutations are translated from original-id space into index space via
// the target's original-id table before being validated against the
// matching predicate and (for isomorphic pairs) against the full
// enumerated set.
package verify
