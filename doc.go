// Package isofix generates and verifies labeled-free test fixtures for
// graph and subgraph isomorphism: pairs of unlabeled undirected
// multigraphs with a declared relationship, persisted alongside a
// machine-checkable metadata document.
//
// 🚀 What is isofix?
//
//	A deterministic fixture toolkit that brings together:
//		• Multigraph model: immutable symmetric adjacency with multiplicities
//		• Canonical signatures: exact, permutation-exhaustive normal forms
//		• Brute-force matching: isomorphism sets & subgraph embeddings
//		• Generation: seeded pools of pairwise-distinct random multigraphs
//		• Verification: every metadata claim recomputed from the files
//		• Formats: GML, GXL and plain adjacency-matrix pair codecs
//
// ✨ Why choose isofix?
//
//   - Reproducible – one seed drives every random draw, runs replay exactly
//   - Exact – exhaustive search, no heuristics, no false verdicts
//   - Self-checking – the verifier trusts nothing the generator wrote
//
// Under the hood, everything is organized per concern:
//
//	multigraph/ — the immutable adjacency-matrix multigraph type
//	canon/      — canonical signature over raw adjacency matrices
//	match/      — isomorphism and subgraph-embedding enumeration
//	gml/        — GML block dialect reader/writer
//	gxl/        — GXL XML dialect reader/writer with original-id tables
//	matrixpair/ — plain-text adjacency-matrix pair codec
//	fixture/    — the metadata document: pairs, parameters, persistence
//	generate/   — seeded pair generation into a fixture directory
//	verify/     — claim-by-claim fixture verification and reporting
//	cmd/isofix/ — the generate/verify command-line surface
//
// Quick ASCII example:
//
//	    0═══1          0───1
//	    │   ║    vs    │   │
//	    2───3          2───3
//
//	a double edge on one side makes the pair non-isomorphic even though
//	vertex counts agree.
//
// Exhaustive canonicalization is factorial in the vertex count; fixtures
// are meant to stay small (a handful of vertices) and exact.
//
//	go get github.com/katalvlaran/isofix
package isofix
