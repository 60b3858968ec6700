package gxl_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isofix/gxl"
	"github.com/katalvlaran/isofix/multigraph"
)

// mustGraph builds a Multigraph or fails the test.
func mustGraph(t *testing.T, adj [][]int) *multigraph.Multigraph {
	t.Helper()
	g, err := multigraph.New(adj)
	require.NoError(t, err)

	return g
}

// TestEncode_WireShape checks the emitted document structure for a
// single edge plus a loop.
func TestEncode_WireShape(t *testing.T) {
	g := mustGraph(t, [][]int{
		{1, 1},
		{1, 0},
	})

	var buf bytes.Buffer
	require.NoError(t, gxl.Encode(&buf, g, "pair_000_pattern"))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `<graph id="pair_000_pattern" edgeids="false" edgemode="undirected">`)
	assert.Contains(t, out, `<node id="n0">`)
	assert.Contains(t, out, `<attr name="original_id">`)
	assert.Contains(t, out, `<edge from="n0" to="n0">`)
	assert.Contains(t, out, `<edge from="n0" to="n1">`)
}

// TestRoundTrip re-reads an encoded graph and compares adjacency and
// original ids.
func TestRoundTrip(t *testing.T) {
	g := mustGraph(t, [][]int{
		{0, 2, 0},
		{2, 1, 1},
		{0, 1, 0},
	})

	var buf bytes.Buffer
	require.NoError(t, gxl.Encode(&buf, g, "g"))

	back, err := gxl.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Adjacency(), back.Multigraph.Adjacency())
	assert.Equal(t, []int{0, 1, 2}, back.OrigIDs)
}

// TestRoundTrip_File exercises WriteFile/ReadFile and the file-name
// derived graph id.
func TestRoundTrip_File(t *testing.T) {
	g := mustGraph(t, [][]int{{0, 1}, {1, 0}})
	path := filepath.Join(t.TempDir(), "out", "pair_001_target.gxl")

	require.NoError(t, gxl.WriteFile(path, g))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `id="pair_001_target"`)

	back, err := gxl.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, g.Adjacency(), back.Multigraph.Adjacency())
}

// TestDecode_OriginalIDOrdering sorts vertices by original id even when
// document order and xml ids disagree.
func TestDecode_OriginalIDOrdering(t *testing.T) {
	const in = `<?xml version="1.0"?>
<gxl>
  <graph id="g" edgemode="undirected">
    <node id="a"><attr name="original_id"><string>2</string></attr></node>
    <node id="b"><attr name="original_id"><string>0</string></attr></node>
    <node id="c"><attr name="original_id"><string>1</string></attr></node>
    <edge from="a" to="b"/>
  </graph>
</gxl>`

	g, err := gxl.Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, g.OrigIDs)
	// a has original id 2 (index 2), b has 0 (index 0).
	assert.Equal(t, 1, g.Multigraph.At(0, 2))
	assert.Equal(t, 0, g.Multigraph.At(0, 1))

	lookup := g.OrigToIndex()
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 2}, lookup)
}

// TestDecode_PrefixFallback infers original ids from node ids like "n12"
// when the attribute is absent.
func TestDecode_PrefixFallback(t *testing.T) {
	const in = `<gxl>
  <graph id="g">
    <node id="n1"/>
    <node id="n0"/>
    <edge from="n0" to="n1"/>
  </graph>
</gxl>`

	g, err := gxl.Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, g.OrigIDs)
	assert.Equal(t, 1, g.Multigraph.At(0, 1))
}

// TestDecode_LoopCountedOnce checks a self-loop edge adds one unit to
// the diagonal.
func TestDecode_LoopCountedOnce(t *testing.T) {
	const in = `<gxl>
  <graph id="g">
    <node id="n0"/>
    <edge from="n0" to="n0"/>
  </graph>
</gxl>`

	g, err := gxl.Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1, g.Multigraph.At(0, 0))
	assert.Equal(t, 1, g.Multigraph.Size())
}

// TestDecode_Errors maps malformed documents onto their sentinels.
func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{
			name: "missing graph element",
			in:   "<gxl></gxl>",
			want: gxl.ErrMissingGraph,
		},
		{
			name: "node without id",
			in:   `<gxl><graph id="g"><node/></graph></gxl>`,
			want: gxl.ErrNodeID,
		},
		{
			name: "bad original_id attr",
			in:   `<gxl><graph id="g"><node id="n0"><attr name="original_id"><string>zero</string></attr></node></graph></gxl>`,
			want: gxl.ErrNodeID,
		},
		{
			name: "non-numeric node id without attr",
			in:   `<gxl><graph id="g"><node id="alpha"/></graph></gxl>`,
			want: gxl.ErrNodeID,
		},
		{
			name: "duplicate original ids",
			in:   `<gxl><graph id="g"><node id="n0"/><node id="x0"/></graph></gxl>`,
			want: gxl.ErrNodeID,
		},
		{
			name: "edge to unknown node",
			in:   `<gxl><graph id="g"><node id="n0"/><edge from="n0" to="n9"/></graph></gxl>`,
			want: gxl.ErrEdgeEndpoint,
		},
		{
			name: "edge without endpoints",
			in:   `<gxl><graph id="g"><node id="n0"/><edge/></graph></gxl>`,
			want: gxl.ErrEdgeEndpoint,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gxl.Decode(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
