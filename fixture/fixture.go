// Package fixture defines the metadata document describing generated
// graph pairs: the closed set of pair relationships, per-pair descriptors,
// echoed generation parameters, and JSON persistence.
//
// A Pair is created once by the generator and consumed read-only by the
// verifier; optional fields are pointers (or nil-able slices) so that
// absence survives a JSON round trip — the verifier checks only fields
// that are present.
package fixture

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
)

// ErrRelation indicates an unrecognized relationship name.
var ErrRelation = errors.New("fixture: unknown pair relation")

// Relation enumerates the supported pair relationships. The set is
// closed: verification dispatches exhaustively over these four values,
// with anything else reported as an unrecognized type.
type Relation int

const (
	// Isomorphic declares pattern and target structurally identical up to
	// a vertex relabeling.
	Isomorphic Relation = iota

	// NonIsomorphic declares that no relabeling maps pattern onto target.
	NonIsomorphic

	// SubgraphIsomorphic declares that pattern embeds into target with
	// every edge multiplicity covered.
	SubgraphIsomorphic

	// NotSubgraphIsomorphic declares that no injective vertex map embeds
	// pattern into target.
	NotSubgraphIsomorphic
)

// relationNames holds the wire spellings, indexed by Relation.
var relationNames = [...]string{
	Isomorphic:            "isomorphic",
	NonIsomorphic:         "non-isomorphic",
	SubgraphIsomorphic:    "subgraph_isomorphic",
	NotSubgraphIsomorphic: "not_subgraph_isomorphic",
}

// String returns the wire spelling of r.
func (r Relation) String() string {
	if r < 0 || int(r) >= len(relationNames) {
		return fmt.Sprintf("relation(%d)", int(r))
	}

	return relationNames[r]
}

// ParseRelation maps a wire spelling onto its Relation. Unknown spellings
// return ErrRelation; callers typically downgrade that to a per-pair
// failed check rather than aborting.
func ParseRelation(s string) (Relation, error) {
	for r, name := range relationNames {
		if s == name {
			return Relation(r), nil
		}
	}

	return 0, fmt.Errorf("ParseRelation: %q: %w", s, ErrRelation)
}

// Pair describes one generated graph pair. Pattern and Target are file
// names relative to the metadata document's directory. Count and
// signature fields are optional; Permutation maps pattern original vertex
// id → target original vertex id for isomorphic pairs, and Permutations
// lists such maps for subgraph pairs.
type Pair struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Pattern string `json:"pattern"`
	Target  string `json:"target"`

	VertexCount        *int `json:"vertex_count,omitempty"`
	EdgeCount          *int `json:"edge_count,omitempty"`
	PatternVertexCount *int `json:"pattern_vertex_count,omitempty"`
	TargetVertexCount  *int `json:"target_vertex_count,omitempty"`
	PatternEdgeCount   *int `json:"pattern_edge_count,omitempty"`
	TargetEdgeCount    *int `json:"target_edge_count,omitempty"`

	CanonicalSignature        []int `json:"canonical_signature,omitempty"`
	PatternCanonicalSignature []int `json:"pattern_canonical_signature,omitempty"`
	TargetCanonicalSignature  []int `json:"target_canonical_signature,omitempty"`

	Permutation  []int   `json:"permutation,omitempty"`
	Permutations [][]int `json:"permutations,omitempty"`
}

// Relation parses the pair's declared type.
func (p *Pair) Relation() (Relation, error) {
	return ParseRelation(p.Type)
}

// Parameters echoes the generation parameters. Expected per-type pair
// totals are optional; the verifier cross-checks only present ones.
type Parameters struct {
	Vertices              int    `json:"vertices"`
	MaxMultiplicity       *int   `json:"max_multiplicity,omitempty"`
	AllowLoops            *bool  `json:"allow_loops,omitempty"`
	Seed                  *int64 `json:"seed,omitempty"`
	PositivePairs         *int   `json:"positive_pairs,omitempty"`
	NegativePairs         *int   `json:"negative_pairs,omitempty"`
	SubgraphPositivePairs *int   `json:"subgraph_positive_pairs,omitempty"`
	SubgraphNegativePairs *int   `json:"subgraph_negative_pairs,omitempty"`
}

// Metadata is the top-level fixture descriptor persisted as metadata.json.
type Metadata struct {
	Description string     `json:"description"`
	Parameters  Parameters `json:"parameters"`
	Pairs       []Pair     `json:"pairs"`
}

// Int returns a pointer to v, for filling optional descriptor fields.
func Int(v int) *int { return &v }

// Int64 returns a pointer to v, for filling optional descriptor fields.
func Int64(v int64) *int64 { return &v }

// Bool returns a pointer to v, for filling optional descriptor fields.
func Bool(v bool) *bool { return &v }

// Save writes md to path as indented JSON with a trailing newline,
// creating parent directories as needed.
func Save(path string, md *Metadata) error {
	out, err := sonic.MarshalIndent(md, "", "  ")
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("Save: %w", err)
		}
	}
	if err = os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	return nil
}

// Load reads and decodes the metadata document at path.
func Load(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	var md Metadata
	if err = sonic.Unmarshal(data, &md); err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}

	return &md, nil
}
