// SPDX-License-Identifier: MIT
// Package: isofix/verify

package verify_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isofix/fixture"
	"github.com/katalvlaran/isofix/generate"
	"github.com/katalvlaran/isofix/gxl"
	"github.com/katalvlaran/isofix/multigraph"
	"github.com/katalvlaran/isofix/verify"
)

// generateFixtures runs a small GXL generation and returns the output
// dir plus the metadata path.
func generateFixtures(t *testing.T, mutate func(*generate.Options)) (string, string) {
	t.Helper()
	dir := t.TempDir()
	opts := generate.DefaultOptions(dir)
	opts.Positive, opts.Negative = 2, 2
	opts.Seed = 42
	opts.Format = generate.FormatGXL
	if mutate != nil {
		mutate(&opts)
	}

	_, err := generate.Run(opts)
	require.NoError(t, err)

	return dir, filepath.Join(dir, "metadata.json")
}

// writeGraph persists g as GXL under dir and returns the file name.
func writeGraph(t *testing.T, dir, name string, adj [][]int) string {
	t.Helper()
	g, err := multigraph.New(adj)
	require.NoError(t, err)
	require.NoError(t, gxl.WriteFile(filepath.Join(dir, name), g))

	return name
}

// TestVerify_RoundTrip checks that a fresh generation run passes every
// check, subgraph kinds included.
func TestVerify_RoundTrip(t *testing.T) {
	_, metaPath := generateFixtures(t, func(o *generate.Options) {
		o.SubgraphPositive, o.SubgraphNegative = 1, 1
	})

	result, err := verify.Verify(metaPath, verify.Options{})
	require.NoError(t, err)
	assert.True(t, result.OK(), "failures: %v", result.Failures())
	assert.Equal(t, 6, result.Pairs)
	assert.Contains(t, result.Summary(), "Verified 6 pair(s)")
	assert.NotEmpty(t, result.Checks)
}

// TestVerify_BaseDirOverride resolves graph files against an explicit
// base directory instead of the metadata location.
func TestVerify_BaseDirOverride(t *testing.T) {
	dir, metaPath := generateFixtures(t, nil)

	// Move the metadata elsewhere; only BaseDir knows where graphs live.
	md, err := fixture.Load(metaPath)
	require.NoError(t, err)
	otherPath := filepath.Join(t.TempDir(), "metadata.json")
	require.NoError(t, fixture.Save(otherPath, md))

	result, err := verify.Verify(otherPath, verify.Options{BaseDir: dir})
	require.NoError(t, err)
	assert.True(t, result.OK(), "failures: %v", result.Failures())

	// Without the override the graphs are missing and every pair fails
	// to load.
	result, err = verify.Verify(otherPath, verify.Options{})
	require.NoError(t, err)
	assert.False(t, result.OK())
	for _, c := range result.Failures() {
		assert.Equal(t, "pattern_graph_loaded", c.Name)
	}
}

// TestVerify_MetadataLoadFailure is the only hard error path.
func TestVerify_MetadataLoadFailure(t *testing.T) {
	_, err := verify.Verify(filepath.Join(t.TempDir(), "absent.json"), verify.Options{})
	assert.Error(t, err)
}

// TestVerify_TamperedEdgeCount fails exactly the edge-count check when
// the declared count is off by one.
func TestVerify_TamperedEdgeCount(t *testing.T) {
	_, metaPath := generateFixtures(t, nil)

	md, err := fixture.Load(metaPath)
	require.NoError(t, err)
	require.NotNil(t, md.Pairs[0].EdgeCount)
	*md.Pairs[0].EdgeCount++
	require.NoError(t, fixture.Save(metaPath, md))

	result, err := verify.Verify(metaPath, verify.Options{})
	require.NoError(t, err)
	failures := result.Failures()
	require.Len(t, failures, 2, "shared edge_count constrains both sides")
	assert.Equal(t, "pattern_edge_count", failures[0].Name)
	assert.Equal(t, "target_edge_count", failures[1].Name)
	assert.Contains(t, failures[0].Details, "expected")
}

// TestVerify_UnknownType degrades an unrecognized relationship to a
// failed recognised_type check instead of an error.
func TestVerify_UnknownType(t *testing.T) {
	dir := t.TempDir()
	pattern := writeGraph(t, dir, "p.gxl", [][]int{{0, 1}, {1, 0}})
	target := writeGraph(t, dir, "t.gxl", [][]int{{0, 1}, {1, 0}})

	metaPath := filepath.Join(dir, "metadata.json")
	require.NoError(t, fixture.Save(metaPath, &fixture.Metadata{
		Parameters: fixture.Parameters{Vertices: 2},
		Pairs: []fixture.Pair{
			{ID: "pair_000", Type: "homeomorphic", Pattern: pattern, Target: target},
		},
	}))

	result, err := verify.Verify(metaPath, verify.Options{})
	require.NoError(t, err)
	failures := result.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, "recognised_type", failures[0].Name)
	assert.Contains(t, failures[0].Details, `unsupported type "homeomorphic"`)
}

// TestVerify_FalseIsomorphismClaim catches a pair declared isomorphic
// whose graphs are not, and the missing permutation alongside it.
func TestVerify_FalseIsomorphismClaim(t *testing.T) {
	dir := t.TempDir()
	pattern := writeGraph(t, dir, "p.gxl", [][]int{{0, 2}, {2, 0}})
	target := writeGraph(t, dir, "t.gxl", [][]int{{0, 1}, {1, 0}})

	metaPath := filepath.Join(dir, "metadata.json")
	require.NoError(t, fixture.Save(metaPath, &fixture.Metadata{
		Parameters: fixture.Parameters{Vertices: 2},
		Pairs: []fixture.Pair{
			{ID: "pair_000", Type: "isomorphic", Pattern: pattern, Target: target},
		},
	}))

	result, err := verify.Verify(metaPath, verify.Options{})
	require.NoError(t, err)

	byName := map[string]verify.Check{}
	for _, c := range result.Checks {
		byName[c.Name] = c
	}
	assert.False(t, byName["declared_isomorphic"].OK)
	assert.Contains(t, byName["declared_isomorphic"].Details, "found 0 isomorphism(s)")
	assert.False(t, byName["metadata_permutations_present"].OK)
}

// TestVerify_PermutationTranslation validates declared permutations in
// original-id space, including a wrong one.
func TestVerify_PermutationTranslation(t *testing.T) {
	dir := t.TempDir()
	// Pattern is P3 with center at index 1, target P3 with center at 0.
	pattern := writeGraph(t, dir, "p.gxl", [][]int{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	})
	target := writeGraph(t, dir, "t.gxl", [][]int{
		{0, 1, 1},
		{1, 0, 0},
		{1, 0, 0},
	})

	newMeta := func(perm []int) *fixture.Metadata {
		return &fixture.Metadata{
			Parameters: fixture.Parameters{Vertices: 3},
			Pairs: []fixture.Pair{
				{ID: "pair_000", Type: "isomorphic", Pattern: pattern, Target: target, Permutation: perm},
			},
		}
	}
	metaPath := filepath.Join(dir, "metadata.json")

	// Pattern vertex 1 is the center and must land on target vertex 0.
	require.NoError(t, fixture.Save(metaPath, newMeta([]int{1, 0, 2})))
	result, err := verify.Verify(metaPath, verify.Options{})
	require.NoError(t, err)
	assert.True(t, result.OK(), "failures: %v", result.Failures())

	// An identity permutation maps center onto a leaf and must fail.
	require.NoError(t, fixture.Save(metaPath, newMeta([]int{0, 1, 2})))
	result, err = verify.Verify(metaPath, verify.Options{})
	require.NoError(t, err)
	byName := map[string]verify.Check{}
	for _, c := range result.Checks {
		byName[c.Name] = c
	}
	assert.False(t, byName["metadata_permutations_valid"].OK)
	assert.True(t, byName["metadata_permutations_subset"].OK, "vacuous when validity already failed")

	// A permutation naming an absent original id fails translation.
	require.NoError(t, fixture.Save(metaPath, newMeta([]int{0, 9, 2})))
	result, err = verify.Verify(metaPath, verify.Options{})
	require.NoError(t, err)
	byName = map[string]verify.Check{}
	for _, c := range result.Checks {
		byName[c.Name] = c
	}
	assert.False(t, byName["metadata_permutations_valid"].OK)
	assert.Contains(t, byName["metadata_permutations_valid"].Details, "original id 9")
}

// TestVerify_ParameterMismatch cross-checks declared totals against the
// actual pair list.
func TestVerify_ParameterMismatch(t *testing.T) {
	_, metaPath := generateFixtures(t, nil)

	md, err := fixture.Load(metaPath)
	require.NoError(t, err)
	md.Parameters.PositivePairs = fixture.Int(5)
	require.NoError(t, fixture.Save(metaPath, md))

	result, err := verify.Verify(metaPath, verify.Options{})
	require.NoError(t, err)
	failures := result.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, "parameters", failures[0].Subject)
	assert.Equal(t, "positive_pairs", failures[0].Name)
	assert.Equal(t, "expected 5, actual 2", failures[0].Details)
}

// TestResult_Print covers the quiet and verbose report forms.
func TestResult_Print(t *testing.T) {
	result := &verify.Result{
		Pairs: 1,
		Checks: []verify.Check{
			{Subject: "pair_000", Name: "declared_isomorphic", OK: true, Details: "found 2 isomorphism(s)"},
		},
	}

	var out, errOut bytes.Buffer
	result.Print(&out, &errOut, false)
	assert.Equal(t, "Verified 1 pair(s) with 1 check(s).\n", out.String())
	assert.Empty(t, errOut.String())

	out.Reset()
	result.Print(&out, &errOut, true)
	assert.Equal(t, "[pair_000] declared_isomorphic: OK (found 2 isomorphism(s))\n", out.String())
	assert.Empty(t, errOut.String())

	failing := &verify.Result{
		Pairs: 1,
		Checks: []verify.Check{
			{Subject: "pair_000", Name: "target_edge_count", OK: false, Details: "expected 3, actual 2"},
		},
	}
	out.Reset()
	failing.Print(&out, &errOut, false)
	assert.Empty(t, out.String())
	assert.Equal(t,
		"[pair_000] target_edge_count: FAIL (expected 3, actual 2)\nVerified 1 pair(s) with 1 check(s).\n",
		errOut.String())
}
