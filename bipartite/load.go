package bipartite

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads a two-column edge list from r and builds a Graph.
// Each non-blank, non-comment line contributes one edge: the first column
// is the left node ID, the second the right node ID (reversed when
// opts.Swap is set). Extra trailing columns (timestamps, weights) are
// ignored. Lines with fewer than two columns fail with ErrBadEdgeLine,
// annotated with the line number.
// Complexity: O(E) time, O(V + E) memory.
func Load(r io.Reader, opts LoadOptions) (*Graph, error) {
	g := New()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if opts.Comment != "" && strings.HasPrefix(line, opts.Comment) {
			continue
		}

		left, right, err := splitEdgeLine(line, opts.Delimiter)
		if err != nil {
			return nil, fmt.Errorf("bipartite: line %d: %w", lineNo, err)
		}
		if opts.Swap {
			left, right = right, left
		}
		if err = g.AddEdge(left, right); err != nil {
			return nil, fmt.Errorf("bipartite: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("bipartite: read edge list: %w", err)
	}

	return g, nil
}

// splitEdgeLine extracts the first two column values of an edge line.
// An empty delimiter splits on any whitespace run; otherwise columns are
// split on the delimiter and trimmed.
func splitEdgeLine(line, delimiter string) (left, right string, err error) {
	var fields []string
	if delimiter == "" {
		fields = strings.Fields(line)
	} else {
		for _, f := range strings.Split(line, delimiter) {
			fields = append(fields, strings.TrimSpace(f))
		}
	}
	if len(fields) < 2 || fields[0] == "" || fields[1] == "" {
		return "", "", ErrBadEdgeLine
	}

	return fields[0], fields[1], nil
}

// LoadFile opens path and delegates to Load.
// Complexity: O(E) time, O(V + E) memory.
func LoadFile(path string, opts LoadOptions) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bipartite: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, opts)
}
