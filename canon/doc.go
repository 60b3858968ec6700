// Package canon computes canonical signatures for unlabeled undirected
// multigraphs by exhaustive permutation search.
//
// What:
//
//   - Signature enumerates every relabeling of the vertex index set (all
//     n! orderings), flattens the adjacency matrix row-major under each,
//     and keeps the lexicographically smallest sequence.
//
// Why:
//
//   - Two multigraphs of equal order are isomorphic exactly when their
//     signatures are equal, which turns isomorphism into byte-for-byte
//     comparison — the property the fixture generator needs to
//     deduplicate its pool and the verifier needs to re-check claims.
//
// Complexity:
//
//   - O(n! · n²) time, O(n²) space. Factorial blowup is an accepted
//     tradeoff: fixtures are a handful of vertices by construction, and a
//     partition-refinement canonical labeler would defeat the point of an
//     obviously-correct reference. There is no guard against large inputs.
//
// Errors:
//
//   - ErrEmptyMatrix: order-0 input; no meaningful signature exists.
//   - ErrNotSquare: ragged or non-square input.
package canon
