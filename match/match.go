package match

import (
	"github.com/katalvlaran/isofix/multigraph"
)

// Isomorphisms returns every bijection p of the vertex index set such that
// pattern[i][j] == target[p[i]][p[j]] for all ordered pairs (i, j).
//
// A cheap pre-filter answers nil immediately when orders or total edge
// counts differ. Results appear in lexicographic order over index tuples;
// an empty result means the graphs are not isomorphic.
// Complexity: O(n! · n²) time.
func Isomorphisms(pattern, target *multigraph.Multigraph) [][]int {
	if pattern.Order() != target.Order() || pattern.Size() != target.Size() {
		return nil
	}

	var matches [][]int
	forEachKPermutation(target.Order(), pattern.Order(), func(perm []int) {
		if IsIsomorphism(pattern, target, perm) {
			matches = append(matches, append([]int(nil), perm...))
		}
	})

	return matches
}

// SubgraphEmbeddings returns every injective map from pattern's vertex set
// into target's vertex set under which each pattern edge multiplicity is
// met or exceeded by the target multiplicity at the mapped pair (loops
// included). Results appear in lexicographic order over index tuples.
//
// A pattern of order 0 embeds trivially: the result is a single empty map.
// Complexity: O(P(n,k) · k²) time, with P(n,k) the number of k-permutations.
func SubgraphEmbeddings(pattern, target *multigraph.Multigraph) [][]int {
	var matches [][]int
	forEachKPermutation(target.Order(), pattern.Order(), func(perm []int) {
		if IsSubgraphEmbedding(pattern, target, perm) {
			matches = append(matches, append([]int(nil), perm...))
		}
	})

	return matches
}

// IsIsomorphism reports whether mapping realizes an exact isomorphism of
// pattern onto target: mapping must be a bijection-sized injective map of
// length pattern.Order() into target's index range, with equal
// multiplicities at every mapped pair. Wrong length, out-of-range values,
// or repeated values answer false.
// Complexity: O(n²).
func IsIsomorphism(pattern, target *multigraph.Multigraph, mapping []int) bool {
	n := pattern.Order()
	if !injective(mapping, n, target.Order()) {
		return false
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if pattern.At(i, j) != target.At(mapping[i], mapping[j]) {
				return false
			}
		}
	}

	return true
}

// IsSubgraphEmbedding reports whether mapping realizes a subgraph
// embedding of pattern into target: for every unordered pattern pair
// {u,v} with multiplicity m > 0 (loops as {u,u}), the target multiplicity
// at the mapped pair is at least m. Malformed mappings answer false.
// Complexity: O(k²).
func IsSubgraphEmbedding(pattern, target *multigraph.Multigraph, mapping []int) bool {
	n := pattern.Order()
	if !injective(mapping, n, target.Order()) {
		return false
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if m := pattern.At(i, j); m > 0 && target.At(mapping[i], mapping[j]) < m {
				return false
			}
		}
	}

	return true
}

// injective reports whether mapping has exactly length want, stays inside
// 0..limit-1, and repeats no value.
func injective(mapping []int, want, limit int) bool {
	if len(mapping) != want {
		return false
	}
	seen := make([]bool, limit)
	for _, v := range mapping {
		if v < 0 || v >= limit || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// forEachKPermutation invokes fn once per k-permutation of 0..n-1, in
// lexicographic order. k == n yields full permutations; k == 0 yields one
// empty tuple; k > n yields nothing. The slice passed to fn is reused
// between calls; fn must copy it to retain the values.
// Complexity: O(P(n,k)) invocations, O(n) extra space.
func forEachKPermutation(n, k int, fn func(perm []int)) {
	if k > n {
		return
	}

	perm := make([]int, k)
	used := make([]bool, n)

	var build func(depth int)
	build = func(depth int) {
		if depth == k {
			fn(perm)
			return
		}
		for v := 0; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			perm[depth] = v
			build(depth + 1)
			used[v] = false
		}
	}
	build(0)
}
