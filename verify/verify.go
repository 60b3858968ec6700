// SPDX-License-Identifier: MIT
// Package: isofix/verify
//
// verify.go — pair loading, per-claim checks, relation dispatch, and
// report printing.

package verify

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"github.com/katalvlaran/isofix/fixture"
	"github.com/katalvlaran/isofix/gxl"
	"github.com/katalvlaran/isofix/match"
)

// Options configures a verification run.
type Options struct {
	// BaseDir resolves pattern/target file names; empty means the
	// metadata document's own directory.
	BaseDir string
}

// Check is a single verification outcome: Subject names the pair (or
// "parameters"), Name the claim, Details the expected-vs-actual context.
type Check struct {
	Subject string
	Name    string
	OK      bool
	Details string
}

// Result aggregates every check of a run.
type Result struct {
	// Pairs is the number of pair descriptors examined.
	Pairs int

	// Checks lists every outcome in evaluation order.
	Checks []Check
}

// Failures returns the failed checks, in order.
func (r *Result) Failures() []Check {
	var out []Check
	for _, c := range r.Checks {
		if !c.OK {
			out = append(out, c)
		}
	}

	return out
}

// OK reports whether every check passed.
func (r *Result) OK() bool {
	return len(r.Failures()) == 0
}

// Summary renders the one-line run summary.
func (r *Result) Summary() string {
	return fmt.Sprintf("Verified %d pair(s) with %d check(s).", r.Pairs, len(r.Checks))
}

// Print writes the report: every check to out when verbose, otherwise
// only failures to errOut. The summary goes to out on success and to
// errOut when anything failed.
func (r *Result) Print(out, errOut io.Writer, verbose bool) {
	if verbose {
		for _, c := range r.Checks {
			status := "OK"
			if !c.OK {
				status = "FAIL"
			}
			fmt.Fprintf(out, "[%s] %s: %s%s\n", c.Subject, c.Name, status, details(c.Details))
		}
	} else {
		for _, c := range r.Failures() {
			fmt.Fprintf(errOut, "[%s] %s: FAIL%s\n", c.Subject, c.Name, details(c.Details))
		}
	}

	if r.OK() {
		if !verbose {
			fmt.Fprintln(out, r.Summary())
		}
	} else {
		fmt.Fprintln(errOut, r.Summary())
	}
}

// details renders the optional parenthesized suffix.
func details(s string) string {
	if s == "" {
		return ""
	}

	return " (" + s + ")"
}

// Verify loads the metadata document at metadataPath and checks every
// pair and parameter claim. Only a metadata load failure is returned as
// an error; everything else degrades to failed checks in the Result.
func Verify(metadataPath string, opts Options) (*Result, error) {
	md, err := fixture.Load(metadataPath)
	if err != nil {
		return nil, fmt.Errorf("Verify: %w", err)
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		abs, absErr := filepath.Abs(metadataPath)
		if absErr != nil {
			return nil, fmt.Errorf("Verify: %w", absErr)
		}
		baseDir = filepath.Dir(abs)
	}

	result := &Result{Pairs: len(md.Pairs)}
	for i := range md.Pairs {
		result.Checks = append(result.Checks, checkPair(&md.Pairs[i], baseDir)...)
	}
	result.Checks = append(result.Checks, checkParameters(md)...)

	return result, nil
}

// checkPair recomputes every claim of one pair descriptor. A graph that
// fails to load yields a single failed check and short-circuits the pair.
func checkPair(pair *fixture.Pair, baseDir string) []Check {
	subject := pair.ID
	if subject == "" {
		subject = "<unknown>"
	}
	var checks []Check
	add := func(name string, ok bool, detail string) {
		checks = append(checks, Check{Subject: subject, Name: name, OK: ok, Details: detail})
	}

	pattern, err := gxl.ReadFile(filepath.Join(baseDir, pair.Pattern))
	if err != nil {
		add("pattern_graph_loaded", false, err.Error())
		return checks
	}
	target, err := gxl.ReadFile(filepath.Join(baseDir, pair.Target))
	if err != nil {
		add("target_graph_loaded", false, err.Error())
		return checks
	}

	checkCounts(pair, pattern, target, add)
	checkSignatures(pair, pattern, target, add)
	checkRelation(pair, pattern, target, add)

	return checks
}

// checkCounts validates whichever vertex/edge count fields are present.
// A shared field (vertex_count, edge_count) constrains both sides; the
// pattern_/target_ variants constrain one side each.
func checkCounts(pair *fixture.Pair, pattern, target *gxl.Graph, add func(string, bool, string)) {
	expect := func(name string, want, got int) {
		add(name, got == want, fmt.Sprintf("expected %d, actual %d", want, got))
	}

	if pair.VertexCount != nil {
		expect("pattern_vertex_count", *pair.VertexCount, pattern.Multigraph.Order())
		expect("target_vertex_count", *pair.VertexCount, target.Multigraph.Order())
	} else {
		if pair.PatternVertexCount != nil {
			expect("pattern_vertex_count", *pair.PatternVertexCount, pattern.Multigraph.Order())
		}
		if pair.TargetVertexCount != nil {
			expect("target_vertex_count", *pair.TargetVertexCount, target.Multigraph.Order())
		}
	}

	if pair.EdgeCount != nil {
		expect("pattern_edge_count", *pair.EdgeCount, pattern.Multigraph.Size())
		expect("target_edge_count", *pair.EdgeCount, target.Multigraph.Size())
	} else {
		if pair.PatternEdgeCount != nil {
			expect("pattern_edge_count", *pair.PatternEdgeCount, pattern.Multigraph.Size())
		}
		if pair.TargetEdgeCount != nil {
			expect("target_edge_count", *pair.TargetEdgeCount, target.Multigraph.Size())
		}
	}
}

// checkSignatures recomputes canonical signatures for whichever signature
// fields are present.
func checkSignatures(pair *fixture.Pair, pattern, target *gxl.Graph, add func(string, bool, string)) {
	expect := func(name string, want []int, g *gxl.Graph) {
		got, err := g.Multigraph.CanonicalSignature()
		if err != nil {
			add(name, false, err.Error())
			return
		}
		add(name, slices.Equal(got, want), fmt.Sprintf("expected %v, actual %v", want, got))
	}

	if pair.CanonicalSignature != nil {
		expect("pattern_canonical_signature", pair.CanonicalSignature, pattern)
		expect("target_canonical_signature", pair.CanonicalSignature, target)
	} else {
		if pair.PatternCanonicalSignature != nil {
			expect("pattern_canonical_signature", pair.PatternCanonicalSignature, pattern)
		}
		if pair.TargetCanonicalSignature != nil {
			expect("target_canonical_signature", pair.TargetCanonicalSignature, target)
		}
	}
}

// checkRelation dispatches on the declared relationship over the closed
// fixture.Relation set; anything unparseable is an unrecognized-type
// failure.
func checkRelation(pair *fixture.Pair, pattern, target *gxl.Graph, add func(string, bool, string)) {
	rel, err := pair.Relation()
	if err != nil {
		add("recognised_type", false, fmt.Sprintf("unsupported type %q", pair.Type))
		return
	}

	switch rel {
	case fixture.Isomorphic:
		isos := match.Isomorphisms(pattern.Multigraph, target.Multigraph)
		add("declared_isomorphic", len(isos) > 0, fmt.Sprintf("found %d isomorphism(s)", len(isos)))
		checkDeclaredMappings(pair, pattern, target, isos, true, add)

	case fixture.NonIsomorphic:
		isos := match.Isomorphisms(pattern.Multigraph, target.Multigraph)
		add("declared_non_isomorphic", len(isos) == 0, fmt.Sprintf("found %d isomorphism(s)", len(isos)))

	case fixture.SubgraphIsomorphic:
		embeddings := match.SubgraphEmbeddings(pattern.Multigraph, target.Multigraph)
		add("declared_subgraph_isomorphic", len(embeddings) > 0, fmt.Sprintf("found %d embedding(s)", len(embeddings)))
		checkDeclaredMappings(pair, pattern, target, nil, false, add)

	case fixture.NotSubgraphIsomorphic:
		embeddings := match.SubgraphEmbeddings(pattern.Multigraph, target.Multigraph)
		add("declared_not_subgraph_isomorphic", len(embeddings) == 0, fmt.Sprintf("found %d embedding(s)", len(embeddings)))
	}
}

// checkDeclaredMappings validates metadata-supplied permutations: each is
// translated from original-id space into index space, tested against the
// matching predicate, and — for exact isomorphisms — confirmed to lie in
// the enumerated set. Missing permutations are themselves a failure.
func checkDeclaredMappings(pair *fixture.Pair, pattern, target *gxl.Graph, enumerated [][]int, exact bool, add func(string, bool, string)) {
	declared := pair.Permutations
	if declared == nil && exact && pair.Permutation != nil {
		declared = [][]int{pair.Permutation}
	}
	if len(declared) == 0 {
		add("metadata_permutations_present", false, "no permutations supplied")
		return
	}

	converted := make([][]int, 0, len(declared))
	for _, perm := range declared {
		mapped, err := translatePermutation(perm, pattern, target)
		if err != nil {
			add("metadata_permutations_valid", false, err.Error())
			return
		}
		converted = append(converted, mapped)
	}

	valid := true
	for _, mapping := range converted {
		ok := false
		if exact {
			ok = match.IsIsomorphism(pattern.Multigraph, target.Multigraph, mapping)
		} else {
			ok = match.IsSubgraphEmbedding(pattern.Multigraph, target.Multigraph, mapping)
		}
		if !ok {
			valid = false
			break
		}
	}
	add("metadata_permutations_valid", valid, fmt.Sprintf("permutations=%v", declared))

	if exact {
		subset := true
		if valid {
			for _, mapping := range converted {
				if !containsMapping(enumerated, mapping) {
					subset = false
					break
				}
			}
		}
		add("metadata_permutations_subset", subset, fmt.Sprintf("permutations=%v", declared))
	}
}

// translatePermutation maps a declared permutation (pattern original id →
// target original id, positional by pattern index) into target index
// space via the target's original-id table.
func translatePermutation(perm []int, pattern, target *gxl.Graph) ([]int, error) {
	if len(perm) != pattern.Multigraph.Order() {
		return nil, fmt.Errorf("permutation length %d does not match pattern vertex count %d",
			len(perm), pattern.Multigraph.Order())
	}

	lookup := target.OrigToIndex()
	mapped := make([]int, 0, len(perm))
	for _, origID := range perm {
		idx, ok := lookup[origID]
		if !ok {
			return nil, fmt.Errorf("target original id %d is not present in the target graph", origID)
		}
		mapped = append(mapped, idx)
	}

	return mapped, nil
}

// containsMapping reports whether mapping appears in the enumerated set.
func containsMapping(enumerated [][]int, mapping []int) bool {
	for _, m := range enumerated {
		if slices.Equal(m, mapping) {
			return true
		}
	}

	return false
}

// checkParameters cross-checks declared per-type pair totals against the
// actual counts by declared type. Only present parameter fields are
// checked.
func checkParameters(md *fixture.Metadata) []Check {
	counts := make(map[string]int)
	for i := range md.Pairs {
		counts[md.Pairs[i].Type]++
	}

	expected := []struct {
		name     string
		declared *int
		relation fixture.Relation
	}{
		{"positive_pairs", md.Parameters.PositivePairs, fixture.Isomorphic},
		{"negative_pairs", md.Parameters.NegativePairs, fixture.NonIsomorphic},
		{"subgraph_positive_pairs", md.Parameters.SubgraphPositivePairs, fixture.SubgraphIsomorphic},
		{"subgraph_negative_pairs", md.Parameters.SubgraphNegativePairs, fixture.NotSubgraphIsomorphic},
	}

	var checks []Check
	for _, e := range expected {
		if e.declared == nil {
			continue
		}
		actual := counts[e.relation.String()]
		checks = append(checks, Check{
			Subject: "parameters",
			Name:    e.name,
			OK:      *e.declared == actual,
			Details: fmt.Sprintf("expected %d, actual %d", *e.declared, actual),
		})
	}

	return checks
}
