package multigraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/isofix/canon"
)

// Sentinel errors for multigraph construction and transformation.
var (
	// ErrNotSquare indicates a ragged or non-square adjacency matrix.
	ErrNotSquare = errors.New("multigraph: adjacency matrix is not square")

	// ErrAsymmetric indicates adjacency[i][j] != adjacency[j][i].
	ErrAsymmetric = errors.New("multigraph: adjacency matrix is not symmetric")

	// ErrNegativeMultiplicity indicates a negative matrix entry.
	ErrNegativeMultiplicity = errors.New("multigraph: negative edge multiplicity")

	// ErrBadPermutation indicates a vertex relabeling that is not a
	// bijection over 0..Order()-1.
	ErrBadPermutation = errors.New("multigraph: invalid vertex permutation")
)

// Multigraph is an immutable unlabeled undirected multigraph.
//
// The zero value is not useful; construct instances with New.
type Multigraph struct {
	adj [][]int // symmetric, non-negative; owned, never exposed directly
	sig []int   // canonical signature cache; nil until first computed
}

// New validates and deep-copies adjacency into a fresh Multigraph.
//
// Validation order: squareness, then negativity, then symmetry; the first
// violation wins. An empty matrix (order 0) is accepted.
// Complexity: O(n²) time and space.
func New(adjacency [][]int) (*Multigraph, error) {
	n := len(adjacency)

	adj := make([][]int, n)
	for i, row := range adjacency {
		if len(row) != n {
			return nil, fmt.Errorf("New: row %d has %d entries, want %d: %w", i, len(row), n, ErrNotSquare)
		}
		adj[i] = make([]int, n)
		copy(adj[i], row)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if adj[i][j] < 0 {
				return nil, fmt.Errorf("New: entry (%d,%d)=%d: %w", i, j, adj[i][j], ErrNegativeMultiplicity)
			}
			if adj[i][j] != adj[j][i] {
				return nil, fmt.Errorf("New: entry (%d,%d)=%d vs (%d,%d)=%d: %w",
					i, j, adj[i][j], j, i, adj[j][i], ErrAsymmetric)
			}
		}
	}

	return &Multigraph{adj: adj}, nil
}

// Order returns the number of vertices.
// Complexity: O(1).
func (m *Multigraph) Order() int {
	return len(m.adj)
}

// Size returns the total number of edges counting multiplicities.
// Parallel edges contribute once per unit of multiplicity; each loop is
// counted once (the diagonal is not halved).
// Complexity: O(n²).
func (m *Multigraph) Size() int {
	edges := 0
	for i := range m.adj {
		for j := i; j < len(m.adj); j++ {
			edges += m.adj[i][j]
		}
	}

	return edges
}

// At returns the multiplicity of the edge {i,j} (loop count when i == j).
// Indices outside 0..Order()-1 panic, as with any slice access.
// Complexity: O(1).
func (m *Multigraph) At(i, j int) int {
	return m.adj[i][j]
}

// Adjacency returns a deep copy of the adjacency matrix.
// Complexity: O(n²).
func (m *Multigraph) Adjacency() [][]int {
	out := make([][]int, len(m.adj))
	for i, row := range m.adj {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}

	return out
}

// Permute returns a new Multigraph relabeled by perm, where perm maps an
// original vertex index to its new index: out[perm[i]][perm[j]] = adj[i][j].
//
// perm must be a bijection over 0..Order()-1; anything else returns
// ErrBadPermutation. The receiver is unchanged.
// Complexity: O(n²).
func (m *Multigraph) Permute(perm []int) (*Multigraph, error) {
	n := len(m.adj)
	if len(perm) != n {
		return nil, fmt.Errorf("Permute: got %d indices, want %d: %w", len(perm), n, ErrBadPermutation)
	}

	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, fmt.Errorf("Permute: %v is not a bijection over 0..%d: %w", perm, n-1, ErrBadPermutation)
		}
		seen[p] = true
	}

	out := make([][]int, n)
	for i := range out {
		out[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[perm[i]][perm[j]] = m.adj[i][j]
		}
	}

	return &Multigraph{adj: out}, nil
}

// CanonicalSignature returns the lexicographically smallest row-major
// flattening of the adjacency matrix over all vertex relabelings.
//
// The result is memoized on the instance after the first call; a defensive
// copy is returned each time. Order-0 graphs yield canon.ErrEmptyMatrix.
// Complexity: O(n! · n²) on the first call, O(n²) afterwards.
func (m *Multigraph) CanonicalSignature() ([]int, error) {
	if m.sig == nil {
		sig, err := canon.Signature(m.adj)
		if err != nil {
			return nil, fmt.Errorf("CanonicalSignature: %w", err)
		}
		m.sig = sig
	}

	out := make([]int, len(m.sig))
	copy(out, m.sig)

	return out, nil
}
