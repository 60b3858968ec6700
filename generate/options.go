// SPDX-License-Identifier: MIT
// Package: isofix/generate
//
// options.go — generation options with deterministic defaults and strict
// validation. Defaults mirror the fixture tooling this package replaces:
// 4 vertices, multiplicity up to 2, five positive and five negative
// pairs, a 20000-attempt pool budget, GML output.

package generate

import "fmt"

// Format selects the on-disk graph file format.
type Format int

const (
	// FormatGML emits the GML block dialect (package gml).
	FormatGML Format = iota

	// FormatGXL emits the GXL XML dialect (package gxl), directly
	// consumable by the verifier.
	FormatGXL
)

// formatNames holds wire spellings and file extensions, indexed by Format.
var formatNames = [...]string{
	FormatGML: "gml",
	FormatGXL: "gxl",
}

// String returns the format's wire spelling ("gml" or "gxl").
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("format(%d)", int(f))
	}

	return formatNames[f]
}

// Ext returns the format's file extension, dot included.
func (f Format) Ext() string { return "." + f.String() }

// ParseFormat maps a wire spelling onto its Format.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if s == name {
			return Format(f), nil
		}
	}

	return 0, fmt.Errorf("ParseFormat: %q: %w", s, ErrBadFormat)
}

// Options configures a generation run. Construct with DefaultOptions and
// override; Run validates before any work begins.
type Options struct {
	// OutputDir receives the graph files and metadata.json.
	OutputDir string

	// Vertices is the vertex count of every generated graph (≥ 1; ≥ 2
	// unless loops are allowed, since every graph must carry an edge).
	Vertices int

	// MaxMultiplicity bounds each sampled edge multiplicity (≥ 1).
	MaxMultiplicity int

	// AllowLoops enables sampling of self-loops (diagonal entries).
	AllowLoops bool

	// Positive is the number of isomorphic pairs to build.
	Positive int

	// Negative is the number of non-isomorphic pairs to build.
	Negative int

	// SubgraphPositive is the number of subgraph_isomorphic pairs.
	SubgraphPositive int

	// SubgraphNegative is the number of not_subgraph_isomorphic pairs.
	SubgraphNegative int

	// Seed drives all sampling; equal seeds reproduce runs exactly.
	// Zero is a legitimate seed, not a sentinel.
	Seed int64

	// MaxAttempts bounds the random draws spent filling the unique pool.
	MaxAttempts int

	// Format selects the graph file dialect.
	Format Format
}

// Default option values, mirrored from the original fixture tooling.
const (
	DefaultVertices        = 4
	DefaultMaxMultiplicity = 2
	DefaultPositive        = 5
	DefaultNegative        = 5
	DefaultMaxAttempts     = 20000
)

// DefaultOptions returns the deterministic defaults for outputDir.
func DefaultOptions(outputDir string) Options {
	return Options{
		OutputDir:       outputDir,
		Vertices:        DefaultVertices,
		MaxMultiplicity: DefaultMaxMultiplicity,
		Positive:        DefaultPositive,
		Negative:        DefaultNegative,
		MaxAttempts:     DefaultMaxAttempts,
		Format:          FormatGML,
	}
}

// Validate checks o and returns the first violated sentinel.
// Order: output dir, vertex domain, multiplicity, pair counts, attempt
// budget, format.
func (o *Options) Validate() error {
	if o.OutputDir == "" {
		return fmt.Errorf("Validate: output directory is empty: %w", ErrBadParameter)
	}
	if o.Vertices < 1 {
		return fmt.Errorf("Validate: vertices=%d: %w", o.Vertices, ErrTooFewVertices)
	}
	if o.Vertices == 1 && !o.AllowLoops {
		return fmt.Errorf("Validate: a 1-vertex graph without loops cannot carry an edge: %w", ErrTooFewVertices)
	}
	if o.MaxMultiplicity < 1 {
		return fmt.Errorf("Validate: max multiplicity=%d: %w", o.MaxMultiplicity, ErrBadMultiplicity)
	}
	if o.Positive < 0 || o.Negative < 0 || o.SubgraphPositive < 0 || o.SubgraphNegative < 0 {
		return fmt.Errorf("Validate: pair counts must be non-negative: %w", ErrBadParameter)
	}
	if o.Positive+o.Negative+o.SubgraphPositive+o.SubgraphNegative == 0 {
		return fmt.Errorf("Validate: %w", ErrNoPairsRequested)
	}
	if o.SubgraphPositive > 0 && o.Vertices < 2 {
		return fmt.Errorf("Validate: subgraph patterns drop one vertex, need at least 2: %w", ErrTooFewVertices)
	}
	if o.MaxAttempts < 1 {
		return fmt.Errorf("Validate: max attempts=%d: %w", o.MaxAttempts, ErrBadParameter)
	}
	if o.Format != FormatGML && o.Format != FormatGXL {
		return fmt.Errorf("Validate: %w", ErrBadFormat)
	}

	return nil
}
