package canon

import (
	"errors"
	"fmt"
)

// Sentinel errors for canonical-signature computation.
var (
	// ErrEmptyMatrix indicates an order-0 adjacency matrix.
	ErrEmptyMatrix = errors.New("canon: empty adjacency matrix")

	// ErrNotSquare indicates a ragged or non-square adjacency matrix.
	ErrNotSquare = errors.New("canon: adjacency matrix is not square")
)

// Signature returns the canonical signature of adjacency: the
// lexicographically smallest row-major flattening over all n! vertex
// relabelings. The result has length n·n and is independent of the input
// labeling, so equal signatures (plus equal order) mean isomorphic graphs.
//
// Signature is a pure function; it never mutates adjacency.
// Complexity: O(n! · n²) time, O(n²) space.
func Signature(adjacency [][]int) ([]int, error) {
	n := len(adjacency)
	if n == 0 {
		return nil, fmt.Errorf("Signature: %w", ErrEmptyMatrix)
	}
	for i, row := range adjacency {
		if len(row) != n {
			return nil, fmt.Errorf("Signature: row %d has %d entries, want %d: %w", i, len(row), n, ErrNotSquare)
		}
	}

	var (
		best      []int // smallest flattening seen so far; nil until first candidate
		candidate = make([]int, n*n)
	)
	forEachPermutation(n, func(perm []int) {
		// Flatten row-major under perm: position k holds the original
		// vertex perm[k].
		idx := 0
		for _, i := range perm {
			row := adjacency[i]
			for _, j := range perm {
				candidate[idx] = row[j]
				idx++
			}
		}
		if best == nil || lexLess(candidate, best) {
			best = append(best[:0], candidate...)
		}
	})

	return best, nil
}

// lexLess reports whether a precedes b lexicographically.
// Both slices have equal length by construction.
func lexLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// forEachPermutation invokes fn once per permutation of 0..n-1, in
// lexicographic order. The slice passed to fn is reused between calls;
// fn must copy it if it needs to retain the values.
// Complexity: O(n!) invocations, O(n) extra space.
func forEachPermutation(n int, fn func(perm []int)) {
	perm := make([]int, n)
	used := make([]bool, n)

	var build func(depth int)
	build = func(depth int) {
		if depth == n {
			fn(perm)
			return
		}
		// Ascending candidate order yields lexicographic emission.
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
