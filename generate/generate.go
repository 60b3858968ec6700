// SPDX-License-Identifier: MIT
// Package: isofix/generate
//
// generate.go — the generation state machine: pool filling, pair
// assembly, file and metadata emission. Single pass; the only retry loop
// is the bounded pool-filling budget.

package generate

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/katalvlaran/isofix/fixture"
	"github.com/katalvlaran/isofix/gml"
	"github.com/katalvlaran/isofix/gxl"
	"github.com/katalvlaran/isofix/multigraph"
)

// defaultDescription is echoed into every metadata document.
const defaultDescription = "Automatically generated unlabeled multigraph pairs for graph isomorphism testing."

// pairIDFormat yields pair_000, pair_001, ...
const pairIDFormat = "pair_%03d"

// poolEntry pairs a base graph with its canonical signature.
type poolEntry struct {
	sig   []int
	graph *multigraph.Multigraph
}

// Run executes a full generation: validates opts, fills the unique-graph
// pool, assembles every requested pair, writes one file per graph side
// into opts.OutputDir plus metadata.json, and returns the metadata.
//
// Failure modes: parameter errors before any work; ErrPoolExhausted or
// ErrNeedTwoSignatures when the parameter space cannot satisfy the
// request; file-system errors during emission.
func Run(opts Options) (*fixture.Metadata, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	// The pool must cover every pair; negative pairs additionally need
	// two distinct canonical forms to draw from.
	required := opts.Positive + opts.Negative + opts.SubgraphPositive + opts.SubgraphNegative
	if opts.Negative > 0 && required < 2 {
		required = 2
	}

	entries, err := buildPool(required, opts, rng)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	md := &fixture.Metadata{
		Description: defaultDescription,
		Parameters:  echoParameters(opts),
	}

	b := &pairBuilder{opts: opts, rng: rng, entries: entries, md: md}
	if err = b.isomorphicPairs(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if err = b.nonIsomorphicPairs(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if err = b.subgraphPositivePairs(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if err = b.subgraphNegativePairs(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	if err = fixture.Save(filepath.Join(opts.OutputDir, "metadata.json"), md); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	return md, nil
}

// echoParameters mirrors opts into the metadata parameter block. Subgraph
// totals are echoed only when requested, matching the field-presence
// contract of verification.
func echoParameters(opts Options) fixture.Parameters {
	params := fixture.Parameters{
		Vertices:        opts.Vertices,
		MaxMultiplicity: fixture.Int(opts.MaxMultiplicity),
		AllowLoops:      fixture.Bool(opts.AllowLoops),
		Seed:            fixture.Int64(opts.Seed),
		PositivePairs:   fixture.Int(opts.Positive),
		NegativePairs:   fixture.Int(opts.Negative),
	}
	if opts.SubgraphPositive > 0 {
		params.SubgraphPositivePairs = fixture.Int(opts.SubgraphPositive)
	}
	if opts.SubgraphNegative > 0 {
		params.SubgraphNegativePairs = fixture.Int(opts.SubgraphNegative)
	}

	return params
}

// buildPool samples random multigraphs until count distinct canonical
// signatures are collected or the attempt budget runs out. Insertion
// order is preserved so downstream index cycling is reproducible.
func buildPool(count int, opts Options, rng *rand.Rand) ([]poolEntry, error) {
	pool := linkedhashmap.New()

	for attempts := 0; pool.Size() < count && attempts < opts.MaxAttempts; attempts++ {
		g, err := multigraph.New(randomAdjacency(opts, rng))
		if err != nil {
			// Sampling always produces a symmetric non-negative matrix.
			return nil, fmt.Errorf("buildPool: %w", err)
		}
		sig, err := g.CanonicalSignature()
		if err != nil {
			return nil, fmt.Errorf("buildPool: %w", err)
		}
		key := sigKey(sig)
		if _, found := pool.Get(key); !found {
			pool.Put(key, poolEntry{sig: sig, graph: g})
		}
	}

	if pool.Size() < count {
		return nil, fmt.Errorf(
			"buildPool: %d unique multigraphs within %d attempts, want %d (relax max-multiplicity or vertices): %w",
			pool.Size(), opts.MaxAttempts, count, ErrPoolExhausted)
	}

	entries := make([]poolEntry, 0, pool.Size())
	pool.Each(func(_ interface{}, value interface{}) {
		entries = append(entries, value.(poolEntry))
	})

	return entries, nil
}

// randomAdjacency samples a symmetric adjacency matrix: every unordered
// vertex pair draws a multiplicity in [0, MaxMultiplicity], the diagonal
// only when loops are allowed. A fully edgeless draw is repaired with one
// forced random edge (or loop), so every graph has at least one edge.
func randomAdjacency(opts Options, rng *rand.Rand) [][]int {
	n := opts.Vertices
	adj := make([][]int, n)
	for i := range adj {
		adj[i] = make([]int, n)
	}

	edgeless := true
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if i == j && !opts.AllowLoops {
				continue
			}
			m := rng.Intn(opts.MaxMultiplicity + 1)
			if m == 0 {
				continue
			}
			adj[i][j] = m
			adj[j][i] = m
			edgeless = false
		}
	}

	if edgeless {
		if opts.AllowLoops {
			idx := rng.Intn(n)
			adj[idx][idx] = 1
		} else {
			// Two distinct endpoints; Validate guarantees n >= 2 here.
			i := rng.Intn(n)
			j := rng.Intn(n - 1)
			if j >= i {
				j++
			}
			adj[i][j], adj[j][i] = 1, 1
		}
	}

	return adj
}

// sigKey renders a signature as a compact comparable map key.
func sigKey(sig []int) string {
	var b strings.Builder
	for i, v := range sig {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// pairBuilder accumulates pairs into the metadata document, numbering
// them consecutively across all four kinds.
type pairBuilder struct {
	opts    Options
	rng     *rand.Rand
	entries []poolEntry
	md      *fixture.Metadata
	next    int // next pair index
}

// emit writes the two graph files for one pair and returns the pair id
// plus both file names.
func (b *pairBuilder) emit(pattern, target *multigraph.Multigraph) (id, patternName, targetName string, err error) {
	id = fmt.Sprintf(pairIDFormat, b.next)
	b.next++
	patternName = id + "_pattern" + b.opts.Format.Ext()
	targetName = id + "_target" + b.opts.Format.Ext()

	if err = b.writeGraph(filepath.Join(b.opts.OutputDir, patternName), pattern); err != nil {
		return "", "", "", err
	}
	if err = b.writeGraph(filepath.Join(b.opts.OutputDir, targetName), target); err != nil {
		return "", "", "", err
	}

	return id, patternName, targetName, nil
}

// writeGraph dispatches on the configured file format.
func (b *pairBuilder) writeGraph(path string, g *multigraph.Multigraph) error {
	switch b.opts.Format {
	case FormatGXL:
		return gxl.WriteFile(path, g)
	default:
		return gml.WriteFile(path, g)
	}
}

// isomorphicPairs cycles through the pool, pairing each base graph with a
// uniformly random relabeling of itself and recording the relabeling as
// the permutation (original vertex index → new index).
func (b *pairBuilder) isomorphicPairs() error {
	if b.opts.Positive > 0 && len(b.entries) == 1 && b.entries[0].graph.Order() < 2 {
		return fmt.Errorf("isomorphicPairs: cannot permute a single 1-vertex base graph: %w", ErrTooFewVertices)
	}

	for idx := 0; idx < b.opts.Positive; idx++ {
		base := b.entries[idx%len(b.entries)]
		perm := b.rng.Perm(base.graph.Order())
		target, err := base.graph.Permute(perm)
		if err != nil {
			return fmt.Errorf("isomorphicPairs: %w", err)
		}

		id, patternName, targetName, err := b.emit(base.graph, target)
		if err != nil {
			return fmt.Errorf("isomorphicPairs: %w", err)
		}
		b.md.Pairs = append(b.md.Pairs, fixture.Pair{
			ID:                 id,
			Type:               fixture.Isomorphic.String(),
			Pattern:            patternName,
			Target:             targetName,
			VertexCount:        fixture.Int(base.graph.Order()),
			EdgeCount:          fixture.Int(base.graph.Size()),
			CanonicalSignature: base.sig,
			Permutation:        perm,
		})
	}

	return nil
}

// nonIsomorphicPairs pairs pool members by index cycling; when cycling
// lands on two equal signatures the right side is replaced by a random
// pool member with a different signature. Selection stays reproducible
// per seed because the rng is the single seeded stream and the pool is
// insertion-ordered.
func (b *pairBuilder) nonIsomorphicPairs() error {
	if b.opts.Negative > 0 && len(b.entries) < 2 {
		return fmt.Errorf("nonIsomorphicPairs: %w", ErrNeedTwoSignatures)
	}

	for idx := 0; idx < b.opts.Negative; idx++ {
		left := b.entries[(b.opts.Positive+2*idx)%len(b.entries)]
		right := b.entries[(b.opts.Positive+2*idx+1)%len(b.entries)]
		if sigEqual(left.sig, right.sig) {
			var candidates []poolEntry
			for _, e := range b.entries {
				if !sigEqual(e.sig, left.sig) {
					candidates = append(candidates, e)
				}
			}
			if len(candidates) == 0 {
				return fmt.Errorf("nonIsomorphicPairs: %w", ErrNeedTwoSignatures)
			}
			right = candidates[b.rng.Intn(len(candidates))]
		}

		id, patternName, targetName, err := b.emit(left.graph, right.graph)
		if err != nil {
			return fmt.Errorf("nonIsomorphicPairs: %w", err)
		}
		b.md.Pairs = append(b.md.Pairs, fixture.Pair{
			ID:                        id,
			Type:                      fixture.NonIsomorphic.String(),
			Pattern:                   patternName,
			Target:                    targetName,
			VertexCount:               fixture.Int(left.graph.Order()),
			PatternEdgeCount:          fixture.Int(left.graph.Size()),
			TargetEdgeCount:           fixture.Int(right.graph.Size()),
			PatternCanonicalSignature: left.sig,
			TargetCanonicalSignature:  right.sig,
		})
	}

	return nil
}

// subgraphPositivePairs takes a pool member as target and the induced
// subgraph on all but one randomly chosen vertex as pattern. The kept
// target indices, in ascending order, form a guaranteed embedding and are
// recorded as the pair's permutation (pattern index → target original id).
func (b *pairBuilder) subgraphPositivePairs() error {
	for idx := 0; idx < b.opts.SubgraphPositive; idx++ {
		base := b.entries[idx%len(b.entries)]
		target := base.graph

		drop := b.rng.Intn(target.Order())
		kept := make([]int, 0, target.Order()-1)
		for v := 0; v < target.Order(); v++ {
			if v != drop {
				kept = append(kept, v)
			}
		}

		pattern, err := inducedSubgraph(target, kept)
		if err != nil {
			return fmt.Errorf("subgraphPositivePairs: %w", err)
		}
		patternSig, err := pattern.CanonicalSignature()
		if err != nil {
			return fmt.Errorf("subgraphPositivePairs: %w", err)
		}

		id, patternName, targetName, err := b.emit(pattern, target)
		if err != nil {
			return fmt.Errorf("subgraphPositivePairs: %w", err)
		}
		b.md.Pairs = append(b.md.Pairs, fixture.Pair{
			ID:                        id,
			Type:                      fixture.SubgraphIsomorphic.String(),
			Pattern:                   patternName,
			Target:                    targetName,
			PatternVertexCount:        fixture.Int(pattern.Order()),
			TargetVertexCount:         fixture.Int(target.Order()),
			PatternEdgeCount:          fixture.Int(pattern.Size()),
			TargetEdgeCount:           fixture.Int(target.Size()),
			PatternCanonicalSignature: patternSig,
			TargetCanonicalSignature:  base.sig,
			Permutations:              [][]int{kept},
		})
	}

	return nil
}

// subgraphNegativePairs takes a pool member as target and a copy with one
// extra unit of multiplicity as pattern: the pattern's total edge count
// exceeds the target's, so no embedding can cover it.
func (b *pairBuilder) subgraphNegativePairs() error {
	for idx := 0; idx < b.opts.SubgraphNegative; idx++ {
		base := b.entries[idx%len(b.entries)]
		target := base.graph

		pattern, err := addRandomEdge(target, b.opts.AllowLoops, b.rng)
		if err != nil {
			return fmt.Errorf("subgraphNegativePairs: %w", err)
		}
		patternSig, err := pattern.CanonicalSignature()
		if err != nil {
			return fmt.Errorf("subgraphNegativePairs: %w", err)
		}

		id, patternName, targetName, err := b.emit(pattern, target)
		if err != nil {
			return fmt.Errorf("subgraphNegativePairs: %w", err)
		}
		b.md.Pairs = append(b.md.Pairs, fixture.Pair{
			ID:                        id,
			Type:                      fixture.NotSubgraphIsomorphic.String(),
			Pattern:                   patternName,
			Target:                    targetName,
			PatternVertexCount:        fixture.Int(pattern.Order()),
			TargetVertexCount:         fixture.Int(target.Order()),
			PatternEdgeCount:          fixture.Int(pattern.Size()),
			TargetEdgeCount:           fixture.Int(target.Size()),
			PatternCanonicalSignature: patternSig,
			TargetCanonicalSignature:  base.sig,
		})
	}

	return nil
}

// inducedSubgraph restricts g to the given vertex indices, in order.
func inducedSubgraph(g *multigraph.Multigraph, kept []int) (*multigraph.Multigraph, error) {
	adj := make([][]int, len(kept))
	for i, u := range kept {
		adj[i] = make([]int, len(kept))
		for j, v := range kept {
			adj[i][j] = g.At(u, v)
		}
	}

	return multigraph.New(adj)
}

// addRandomEdge returns a copy of g with one extra unit of multiplicity
// on a random vertex pair (a loop only when allowed).
func addRandomEdge(g *multigraph.Multigraph, allowLoops bool, rng *rand.Rand) (*multigraph.Multigraph, error) {
	n := g.Order()
	adj := g.Adjacency()

	if allowLoops && (n == 1 || rng.Intn(n+1) == 0) {
		idx := rng.Intn(n)
		adj[idx][idx]++
	} else {
		i := rng.Intn(n)
		j := rng.Intn(n - 1)
		if j >= i {
			j++
		}
		adj[i][j]++
		adj[j][i]++
	}

	return multigraph.New(adj)
}

// sigEqual reports whether two signatures are identical.
func sigEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
