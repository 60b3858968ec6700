// Package matrixpair reads and writes graph pairs as plain-text adjacency
// matrices: a vertex-count line followed by that many whitespace-separated
// matrix rows, once for the pattern graph and once for the target graph.
// Entries are non-negative edge multiplicities, so the format carries full
// multigraph structure; blank lines are skipped.
//
// Errors:
//
//   - ErrTruncated: the input ends before both matrices are complete.
//   - ErrBadValue: a vertex count or matrix entry fails to parse, or a
//     vertex count is not positive.
//   - ErrRowWidth: a matrix row has the wrong number of entries.
package matrixpair

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/isofix/multigraph"
)

// Sentinel errors for the adjacency-matrix pair codec.
var (
	// ErrTruncated indicates the input ended mid-matrix.
	ErrTruncated = errors.New("matrixpair: unexpected end of input")

	// ErrBadValue indicates an unparseable or out-of-range value.
	ErrBadValue = errors.New("matrixpair: invalid value")

	// ErrRowWidth indicates a row with the wrong number of entries.
	ErrRowWidth = errors.New("matrixpair: wrong row width")
)

// Encode writes pattern then target to w, each as a vertex-count line
// followed by space-separated adjacency rows.
func Encode(w io.Writer, pattern, target *multigraph.Multigraph) error {
	bw := bufio.NewWriter(w)
	for _, g := range []*multigraph.Multigraph{pattern, target} {
		n := g.Order()
		if _, err := fmt.Fprintf(bw, "%d\n", n); err != nil {
			return fmt.Errorf("Encode: %w", err)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				sep := " "
				if j == 0 {
					sep = ""
				}
				if _, err := fmt.Fprintf(bw, "%s%d", sep, g.At(i, j)); err != nil {
					return fmt.Errorf("Encode: %w", err)
				}
			}
			if _, err := fmt.Fprintln(bw); err != nil {
				return fmt.Errorf("Encode: %w", err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return nil
}

// Decode parses two consecutive adjacency matrices from r and returns the
// pattern and target graphs. Symmetry and non-negativity are enforced by
// multigraph.New.
func Decode(r io.Reader) (pattern, target *multigraph.Multigraph, err error) {
	lines, err := nonEmptyLines(r)
	if err != nil {
		return nil, nil, fmt.Errorf("Decode: %w", err)
	}

	pattern, rest, err := parseOne(lines, "pattern")
	if err != nil {
		return nil, nil, fmt.Errorf("Decode: %w", err)
	}
	target, _, err = parseOne(rest, "target")
	if err != nil {
		return nil, nil, fmt.Errorf("Decode: %w", err)
	}

	return pattern, target, nil
}

// nonEmptyLines reads r into trimmed lines, dropping blank ones.
func nonEmptyLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// parseOne consumes one vertex-count line plus n matrix rows from lines
// and returns the graph and the remaining lines. side names the graph in
// error context ("pattern" or "target").
func parseOne(lines []string, side string) (*multigraph.Multigraph, []string, error) {
	if len(lines) == 0 {
		return nil, nil, fmt.Errorf("%s graph: missing vertex count: %w", side, ErrTruncated)
	}

	n, err := strconv.Atoi(lines[0])
	if err != nil || n <= 0 {
		return nil, nil, fmt.Errorf("%s graph: vertex count %q: %w", side, lines[0], ErrBadValue)
	}
	if len(lines) < 1+n {
		return nil, nil, fmt.Errorf("%s graph: %d matrix rows after count, want %d: %w",
			side, len(lines)-1, n, ErrTruncated)
	}

	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		fields := strings.Fields(lines[1+i])
		if len(fields) != n {
			return nil, nil, fmt.Errorf("%s graph: row %d has %d values, want %d: %w",
				side, i+1, len(fields), n, ErrRowWidth)
		}
		adj[i] = make([]int, n)
		for j, field := range fields {
			v, convErr := strconv.Atoi(field)
			if convErr != nil {
				return nil, nil, fmt.Errorf("%s graph: value %q at (%d,%d): %w", side, field, i+1, j+1, ErrBadValue)
			}
			adj[i][j] = v
		}
	}

	g, err := multigraph.New(adj)
	if err != nil {
		return nil, nil, fmt.Errorf("%s graph: %w", side, err)
	}

	return g, lines[1+n:], nil
}
