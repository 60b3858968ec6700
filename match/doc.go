// Package match enumerates isomorphisms and subgraph embeddings between
// two unlabeled undirected multigraphs by brute force.
//
// What:
//
//   - Isomorphisms lists every vertex bijection under which the two
//     adjacency matrices agree exactly (multiplicities equal).
//   - SubgraphEmbeddings lists every injective vertex map from pattern to
//     target under which every pattern multiplicity is covered (target
//     multiplicity at least as large) — subgraph, not induced-subgraph,
//     semantics.
//   - IsIsomorphism / IsSubgraphEmbedding are the underlying predicates,
//     usable on externally supplied mappings (e.g. from fixture
//     metadata); malformed mappings answer false rather than erroring.
//
// Why:
//
//   - Fixture verification needs ground truth it can trust more than the
//     algorithm under test; exhaustive enumeration over a few vertices is
//     the simplest artifact that provides it.
//
// Determinism:
//
//   - Results are emitted in lexicographic order over index tuples; equal
//     inputs always produce identical output slices.
//
// Complexity:
//
//   - Isomorphisms: O(n! · n²). SubgraphEmbeddings: O(nᵏ-ish · k²) over
//     k-permutations of n target vertices. Both are pure functions with
//     no shared state beyond the local results slice.
package match
