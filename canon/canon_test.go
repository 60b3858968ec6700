package canon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isofix/canon"
)

// TestSignature_Empty verifies the degenerate order-0 case fails with
// ErrEmptyMatrix.
func TestSignature_Empty(t *testing.T) {
	_, err := canon.Signature([][]int{})
	assert.ErrorIs(t, err, canon.ErrEmptyMatrix)
}

// TestSignature_NotSquare rejects ragged input.
func TestSignature_NotSquare(t *testing.T) {
	_, err := canon.Signature([][]int{{0, 1}, {1}})
	assert.ErrorIs(t, err, canon.ErrNotSquare)
}

// TestSignature_SingleVertex covers the trivial one-permutation case.
func TestSignature_SingleVertex(t *testing.T) {
	sig, err := canon.Signature([][]int{{3}})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, sig)
}

// TestSignature_KnownValues pins the canonical flattening on hand-checked
// graphs: a 2-vertex double edge and the 3-vertex path.
func TestSignature_KnownValues(t *testing.T) {
	sig, err := canon.Signature([][]int{{0, 2}, {2, 0}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 2, 0}, sig)

	// Path 0-1-2: the minimum places the two endpoints first.
	sig, err = canon.Signature([][]int{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 0, 0, 1, 1, 1, 0}, sig)
}

// TestSignature_Invariance verifies equal signatures across every
// relabeling of the same structure.
func TestSignature_Invariance(t *testing.T) {
	// Path written with the center at index 0.
	variant := [][]int{
		{0, 1, 1},
		{1, 0, 0},
		{1, 0, 0},
	}
	want := []int{0, 0, 1, 0, 0, 1, 1, 1, 0}

	sig, err := canon.Signature(variant)
	require.NoError(t, err)
	assert.Equal(t, want, sig)
}

// TestSignature_Discrimination distinguishes same-order graphs with
// different structure: the 3-path vs the triangle.
func TestSignature_Discrimination(t *testing.T) {
	path, err := canon.Signature([][]int{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	})
	require.NoError(t, err)

	triangle, err := canon.Signature([][]int{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 1, 1, 0, 1, 1, 1, 0}, triangle, "triangle is permutation-fixed")
	assert.NotEqual(t, path, triangle)
}

// TestSignature_DoesNotMutateInput ensures Signature is pure.
func TestSignature_DoesNotMutateInput(t *testing.T) {
	adj := [][]int{
		{0, 2, 1},
		{2, 0, 0},
		{1, 0, 0},
	}
	_, err := canon.Signature(adj)
	require.NoError(t, err)

	assert.Equal(t, [][]int{
		{0, 2, 1},
		{2, 0, 0},
		{1, 0, 0},
	}, adj)
}
