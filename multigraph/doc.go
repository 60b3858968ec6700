// Package multigraph models an unlabeled undirected multigraph as an
// immutable symmetric adjacency matrix of non-negative edge multiplicities.
//
// What:
//
//   - Multigraph wraps a validated square [][]int adjacency matrix.
//   - Diagonal entries count self-loops; off-diagonal entries count
//     parallel edges between a vertex pair.
//   - Order reports the vertex count; Size reports the total number of
//     edges counting multiplicity (each loop counted once).
//   - Permute produces a relabeled copy; the receiver is never mutated.
//   - CanonicalSignature lazily computes and caches the permutation-
//     invariant fingerprint (see package canon).
//
// Why:
//
//   - Isomorphism test fixtures need a representation where structural
//     equality is decidable by exhaustive search and where instances can
//     be relabeled without aliasing surprises.
//
// Invariants:
//
//   - adjacency[i][j] == adjacency[j][i] for all i, j.
//   - No entry is negative.
//   - A constructed Multigraph never changes; every transformation
//     returns a new instance.
//
// Errors:
//
//   - ErrNotSquare: the input matrix is ragged or non-square.
//   - ErrAsymmetric: adjacency[i][j] != adjacency[j][i] for some pair.
//   - ErrNegativeMultiplicity: a negative entry was supplied.
//   - ErrBadPermutation: Permute received a map that is not a bijection
//     over the vertex index set.
//
// Concurrency: instances are safe for concurrent reads only after
// CanonicalSignature has been computed once; the lazy cache itself is not
// synchronized. The fixture tooling is single-threaded by design.
package multigraph
