// Package bipartite defines core types, options, and sentinel errors
// for the bipartite subpackage of github.com/sabsconstantino/bipmotif.
package bipartite

import (
	"errors"
)

// Sentinel errors for bipartite graph operations.
var (
	// ErrEmptyNodeID indicates a node ID is the empty string.
	ErrEmptyNodeID = errors.New("bipartite: node ID is empty")
	// ErrNodeNotFound indicates an operation referenced a node that does not exist.
	ErrNodeNotFound = errors.New("bipartite: node not found")
	// ErrSideConflict indicates a node was used on both sides of the graph.
	ErrSideConflict = errors.New("bipartite: node used on both sides")
	// ErrBadEdgeLine indicates an edge-list line with fewer than two columns.
	ErrBadEdgeLine = errors.New("bipartite: malformed edge line")
	// ErrBadPartSize indicates a generator was asked for an empty partition.
	ErrBadPartSize = errors.New("bipartite: partition size must be at least 1")
	// ErrBadProbability indicates an edge probability outside [0,1].
	ErrBadProbability = errors.New("bipartite: edge probability must be in [0,1]")
)

// Side labels a node's class: Left or Right.
// Edges connect a Left node to a Right node, never two of the same side.
type Side int

const (
	// Left is the first node class (e.g. users).
	Left Side = iota
	// Right is the second node class (e.g. objects).
	Right
)

// String returns "left" or "right".
func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// LoadOptions contains tunable parameters for edge-list ingestion.
type LoadOptions struct {
	// Comment marks lines to skip when a line starts with this prefix.
	// Empty disables comment skipping.
	Comment string
	// Delimiter splits each line into columns.
	// Empty splits on any run of whitespace.
	Delimiter string
	// Swap treats the first column as the right side and the second as the left.
	Swap bool
}

// DefaultLoadOptions returns a LoadOptions with default settings:
// Comment="#", whitespace-delimited columns, no swapping.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Comment:   "#",
		Delimiter: "",
		Swap:      false,
	}
}
