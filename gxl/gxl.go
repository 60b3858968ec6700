// Package gxl reads and writes unlabeled undirected multigraphs in the
// GXL (Graph eXchange Language) XML dialect the fixture verifier consumes.
//
// A graph is a <gxl><graph> element with <node> children carrying an id
// attribute plus an optional original_id string attribute, and <edge>
// children with from/to references; multiplicity is represented by
// repeated <edge> elements between the same node pair. When original_id
// is absent the reader falls back to stripping a non-numeric prefix from
// the node id ("n12" → 12). Vertices are indexed by ascending original
// id, so a Graph keeps the original-id table alongside its adjacency
// structure for translating metadata permutations into index space.
//
// Errors:
//
//   - ErrMissingGraph: no <graph> element.
//   - ErrNodeID: a node without id, an unparseable original id, or a
//     duplicate original id.
//   - ErrEdgeEndpoint: an edge without from/to, or referencing an
//     unknown node.
package gxl

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/isofix/multigraph"
)

// Sentinel errors for GXL encoding and decoding.
var (
	// ErrMissingGraph indicates the document has no <graph> element.
	ErrMissingGraph = errors.New("gxl: missing graph element")

	// ErrNodeID indicates a missing, unparseable, or duplicate node id.
	ErrNodeID = errors.New("gxl: invalid node id")

	// ErrEdgeEndpoint indicates an edge with missing or unknown endpoints.
	ErrEdgeEndpoint = errors.New("gxl: edge references unknown node")
)

// Graph couples a decoded Multigraph with the original vertex ids from the
// GXL document. OrigIDs[i] is the original id of the vertex at matrix
// index i; indices follow ascending original-id order.
type Graph struct {
	Multigraph *multigraph.Multigraph
	OrigIDs    []int
}

// OrigToIndex returns the lookup from original vertex id to matrix index.
// Complexity: O(n).
func (g *Graph) OrigToIndex() map[int]int {
	out := make(map[int]int, len(g.OrigIDs))
	for idx, orig := range g.OrigIDs {
		out[orig] = idx
	}

	return out
}

// Wire types for encoding/xml; unexported, schema-shaped.

type xmlDocument struct {
	XMLName xml.Name  `xml:"gxl"`
	Graph   *xmlGraph `xml:"graph"`
}

type xmlGraph struct {
	ID       string    `xml:"id,attr"`
	EdgeIDs  string    `xml:"edgeids,attr,omitempty"`
	EdgeMode string    `xml:"edgemode,attr,omitempty"`
	Nodes    []xmlNode `xml:"node"`
	Edges    []xmlEdge `xml:"edge"`
}

type xmlNode struct {
	ID    string    `xml:"id,attr"`
	Attrs []xmlAttr `xml:"attr"`
}

type xmlAttr struct {
	Name   string `xml:"name,attr"`
	String string `xml:"string"`
}

type xmlEdge struct {
	From string `xml:"from,attr"`
	To   string `xml:"to,attr"`
}

// Encode writes g to w as a GXL document with graph id graphID. Nodes are
// emitted as n0..n{k-1} with explicit original_id attributes; edges follow
// in upper-triangle order, one element per unit of multiplicity.
func Encode(w io.Writer, g *multigraph.Multigraph, graphID string) error {
	n := g.Order()
	doc := xmlDocument{Graph: &xmlGraph{
		ID:       graphID,
		EdgeIDs:  "false",
		EdgeMode: "undirected",
	}}

	for id := 0; id < n; id++ {
		doc.Graph.Nodes = append(doc.Graph.Nodes, xmlNode{
			ID:    fmt.Sprintf("n%d", id),
			Attrs: []xmlAttr{{Name: "original_id", String: strconv.Itoa(id)}},
		})
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			for k := 0; k < g.At(i, j); k++ {
				doc.Graph.Edges = append(doc.Graph.Edges, xmlEdge{
					From: fmt.Sprintf("n%d", i),
					To:   fmt.Sprintf("n%d", j),
				})
			}
		}
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	if _, err = io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	if _, err = w.Write(append(out, '\n')); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return nil
}

// WriteFile encodes g into path, creating parent directories as needed.
// The graph id defaults to the file name without extension.
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
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if err = Encode(f, g, base); err != nil {
		_ = f.Close()
		return fmt.Errorf("WriteFile: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}

	return nil
}

// Decode parses a GXL document from r. Each <edge> element adds one unit
// of multiplicity; a loop element adds one loop. Vertices are ordered by
// ascending original id.
func Decode(r io.Reader) (*Graph, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}
	if doc.Graph == nil {
		return nil, fmt.Errorf("Decode: %w", ErrMissingGraph)
	}

	type nodeRec struct {
		xmlID string
		orig  int
	}
	nodes := make([]nodeRec, 0, len(doc.Graph.Nodes))
	for _, nd := range doc.Graph.Nodes {
		if nd.ID == "" {
			return nil, fmt.Errorf("Decode: node without id attribute: %w", ErrNodeID)
		}
		orig, err := originalID(nd)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, nodeRec{xmlID: nd.ID, orig: orig})
	}

	sort.Slice(nodes, func(i, j int) bool { return nodes[i].orig < nodes[j].orig })

	n := len(nodes)
	origIDs := make([]int, n)
	xmlToIndex := make(map[string]int, n)
	for idx, nd := range nodes {
		if idx > 0 && nodes[idx-1].orig == nd.orig {
			return nil, fmt.Errorf("Decode: duplicate original id %d: %w", nd.orig, ErrNodeID)
		}
		origIDs[idx] = nd.orig
		xmlToIndex[nd.xmlID] = idx
	}

	adj := make([][]int, n)
	for i := range adj {
		adj[i] = make([]int, n)
	}
	for _, e := range doc.Graph.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("Decode: edge without from/to attributes: %w", ErrEdgeEndpoint)
		}
		u, okU := xmlToIndex[e.From]
		v, okV := xmlToIndex[e.To]
		if !okU || !okV {
			return nil, fmt.Errorf("Decode: edge %q->%q: %w", e.From, e.To, ErrEdgeEndpoint)
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

	return &Graph{Multigraph: g, OrigIDs: origIDs}, nil
}

// ReadFile decodes the GXL file at path.
func ReadFile(path string) (*Graph, error) {
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

// originalID resolves a node's original vertex id: the original_id string
// attribute when present, otherwise the node id with its non-numeric
// prefix stripped ("n12" → 12).
func originalID(nd xmlNode) (int, error) {
	for _, attr := range nd.Attrs {
		if attr.Name == "original_id" {
			v, err := strconv.Atoi(strings.TrimSpace(attr.String))
			if err != nil {
				return 0, fmt.Errorf("originalID: node %q: bad original_id %q: %w", nd.ID, attr.String, ErrNodeID)
			}

			return v, nil
		}
	}

	trimmed := strings.TrimLeftFunc(nd.ID, func(r rune) bool { return r < '0' || r > '9' })
	if trimmed == "" {
		return 0, fmt.Errorf("originalID: cannot infer original id for node %q: %w", nd.ID, ErrNodeID)
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("originalID: cannot infer original id for node %q: %w", nd.ID, ErrNodeID)
	}

	return v, nil
}
