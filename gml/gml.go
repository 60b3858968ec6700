// Package gml reads and writes unlabeled undirected multigraphs in the
// GML block format the fixture generator emits.
//
// The dialect is deliberately small: a single `graph [ ... ]` block with
// `directed 0`, one `node [ id N ]` block per vertex (ids 0..n-1), and one
// `edge [ source I target J ]` block per unit of multiplicity. A
// multiplicity-k edge therefore appears as k separate edge blocks, and a
// self-loop as an edge block with source == target. The reader accepts
// blocks in any order and ignores unknown keys.
//
// Errors:
//
//   - ErrMalformed: structurally broken input (unbalanced blocks, bad
//     numbers, missing graph block).
//   - ErrDirectedGraph: the input declares `directed 1`.
//   - ErrNodeID: duplicate node ids, or ids not forming 0..n-1.
//   - ErrEdgeEndpoint: an edge references an unknown node id.
package gml

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/isofix/multigraph"
)

// Sentinel errors for GML encoding and decoding.
var (
	// ErrMalformed indicates structurally invalid GML input.
	ErrMalformed = errors.New("gml: malformed input")

	// ErrDirectedGraph indicates the input declares a directed graph.
	ErrDirectedGraph = errors.New("gml: directed graphs are not supported")

	// ErrNodeID indicates duplicate node ids or ids not covering 0..n-1.
	ErrNodeID = errors.New("gml: invalid node id set")

	// ErrEdgeEndpoint indicates an edge referencing an unknown node id.
	ErrEdgeEndpoint = errors.New("gml: edge references unknown node")
)

// Encode writes g to w in the fixture GML dialect: nodes in ascending id
// order, then edge blocks in upper-triangle order, one block per unit of
// multiplicity (loops included).
// Complexity: O(n² + E) output size.
func Encode(w io.Writer, g *multigraph.Multigraph) error {
	bw := bufio.NewWriter(w)

	mustWrite := func(s string) {
		// bufio defers errors to Flush; ignore intermediate results.
		_, _ = bw.WriteString(s)
	}

	mustWrite("graph [\n")
	mustWrite("  directed 0\n")
	n := g.Order()
	for id := 0; id < n; id++ {
		mustWrite("  node [\n")
		mustWrite(fmt.Sprintf("    id %d\n", id))
		mustWrite("  ]\n")
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			for k := 0; k < g.At(i, j); k++ {
				mustWrite("  edge [\n")
				mustWrite(fmt.Sprintf("    source %d\n", i))
				mustWrite(fmt.Sprintf("    target %d\n", j))
				mustWrite("  ]\n")
			}
		}
	}
	mustWrite("]\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return nil
}

// WriteFile encodes g into path, creating parent directories as needed.
func WriteFile(path string, g *multigraph.Multigraph) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("WriteFile: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	if err = Encode(f, g); err != nil {
		_ = f.Close()
		return fmt.Errorf("WriteFile: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}

	return nil
}

// Decode parses the fixture GML dialect from r into a Multigraph.
// Node ids must form exactly 0..n-1; each edge block adds one unit of
// multiplicity (a loop block adds one loop, not two).
func Decode(r io.Reader) (*multigraph.Multigraph, error) {
	var (
		inGraph   bool
		sawGraph  bool
		block     string // "", "node" or "edge" while inside a sub-block
		nodeID    = -1
		src, dst  = -1, -1
		nodeIDs   []int
		edges     [][2]int
		lineCount int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineCount++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		key := fields[0]

		switch {
		case key == "graph":
			if inGraph {
				return nil, fmt.Errorf("Decode: line %d: nested graph block: %w", lineCount, ErrMalformed)
			}
			inGraph, sawGraph = true, true

		case key == "node" && inGraph && block == "":
			block, nodeID = "node", -1

		case key == "edge" && inGraph && block == "":
			block, src, dst = "edge", -1, -1

		case key == "]":
			switch block {
			case "node":
				if nodeID < 0 {
					return nil, fmt.Errorf("Decode: line %d: node block without id: %w", lineCount, ErrMalformed)
				}
				nodeIDs = append(nodeIDs, nodeID)
				block = ""
			case "edge":
				if src < 0 || dst < 0 {
					return nil, fmt.Errorf("Decode: line %d: edge block without source/target: %w", lineCount, ErrMalformed)
				}
				edges = append(edges, [2]int{src, dst})
				block = ""
			default:
				if !inGraph {
					return nil, fmt.Errorf("Decode: line %d: unbalanced ']': %w", lineCount, ErrMalformed)
				}
				inGraph = false
			}

		case key == "directed" && inGraph:
			if len(fields) > 1 && fields[1] != "0" {
				return nil, fmt.Errorf("Decode: %w", ErrDirectedGraph)
			}

		case key == "id" && block == "node":
			v, err := strconv.Atoi(fields[len(fields)-1])
			if err != nil {
				return nil, fmt.Errorf("Decode: line %d: bad node id: %w", lineCount, ErrMalformed)
			}
			nodeID = v

		case key == "source" && block == "edge":
			v, err := strconv.Atoi(fields[len(fields)-1])
			if err != nil {
				return nil, fmt.Errorf("Decode: line %d: bad edge source: %w", lineCount, ErrMalformed)
			}
			src = v

		case key == "target" && block == "edge":
			v, err := strconv.Atoi(fields[len(fields)-1])
			if err != nil {
				return nil, fmt.Errorf("Decode: line %d: bad edge target: %w", lineCount, ErrMalformed)
			}
			dst = v

		default:
			// Unknown keys are ignored for forward compatibility.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}
	if !sawGraph || inGraph || block != "" {
		return nil, fmt.Errorf("Decode: missing or unterminated graph block: %w", ErrMalformed)
	}

	// Node ids must be exactly 0..n-1, without duplicates.
	n := len(nodeIDs)
	seen := make([]bool, n)
	for _, id := range nodeIDs {
		if id < 0 || id >= n || seen[id] {
			return nil, fmt.Errorf("Decode: node ids must cover 0..%d exactly once: %w", n-1, ErrNodeID)
		}
		seen[id] = true
	}

	adj := make([][]int, n)
	for i := range adj {
		adj[i] = make([]int, n)
	}
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("Decode: edge (%d,%d) out of range: %w", u, v, ErrEdgeEndpoint)
		}
		adj[u][v]++
		if u != v {
			adj[v][u]++
		}
	}

	g, err := multigraph.New(adj)
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}

	return g, nil
}

// ReadFile decodes the GML file at path.
func ReadFile(path string) (*multigraph.Multigraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer func() { _ = f.Close() }()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("ReadFile %s: %w", path, err)
	}

	return g, nil
}
