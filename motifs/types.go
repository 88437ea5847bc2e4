// Package motifs defines the count vector, slot constants, options,
// and sentinel errors for the motif counter.
package motifs

import (
	"errors"
	"fmt"
)

// Sentinel errors for motif counting.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("motifs: graph is nil")
	// ErrPartitionUnknown is returned when a node's side cannot be resolved
	// from the supplied partition lists.
	ErrPartitionUnknown = errors.New("motifs: node partition unresolvable")
	// ErrPartitionConflict is returned when the partition lists place a
	// node on both sides.
	ErrPartitionConflict = errors.New("motifs: conflicting partition")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("motifs: invalid option supplied")
)

// NumSlots is the number of motif counts in a Vector.
const NumSlots = 8

// Slot indexes one motif count within a Vector. The layout is fixed.
type Slot int

// The eight motifs, in Vector order.
const (
	// RightWedge counts r-l-r paths: two right nodes sharing a left neighbor.
	RightWedge Slot = iota
	// LeftWedge counts l-r-l paths: two left nodes sharing a right neighbor.
	LeftWedge
	// WedgePlusLeft counts co-occurring right pairs together with a left
	// node adjacent to neither member of the pair.
	WedgePlusLeft
	// ThreePath counts four-node alternating paths l-r-l-r.
	ThreePath
	// Square counts 4-cycles: two left and two right nodes, fully crossed.
	Square
	// SquarePlusLeft counts squares plus a left node adjacent to exactly
	// one of the square's right nodes.
	SquarePlusLeft
	// SquarePlusRight counts squares plus a right node adjacent to exactly
	// one of the square's left nodes.
	SquarePlusRight
	// K32 counts three left nodes all adjacent to the same two right nodes.
	K32
)

// slotNames backs Slot.String, in Vector order.
var slotNames = [NumSlots]string{
	"right-wedge",
	"left-wedge",
	"wedge+left",
	"three-path",
	"square",
	"square+left",
	"square+right",
	"k32",
}

// String returns a short stable name for the slot, e.g. "right-wedge".
func (s Slot) String() string {
	if s < 0 || s >= NumSlots {
		return fmt.Sprintf("slot(%d)", int(s))
	}
	return slotNames[s]
}

// Vector holds the eight motif counts produced by Count, indexed by the
// Slot constants. Counts are int64 because realistic sparse graphs reach
// totals on the order of 1e10.
type Vector [NumSlots]int64

// Option configures counting via functional arguments. If an Option is
// invalid, it is recorded internally and surfaced as ErrOptionViolation
// when Count is invoked.
type Option func(*CountOptions)

// CountOptions holds parameters customizing a Count call.
type CountOptions struct {
	// Left and Right, when supplied, classify every node of the graph
	// explicitly, overriding the sides recorded on it. Every graph node
	// must appear in exactly one of the two lists.
	Left  []string
	Right []string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a CountOptions that trusts the sides recorded on
// the graph and has no error recorded.
func DefaultOptions() CountOptions {
	return CountOptions{}
}

// WithPartition supplies explicit left/right node identity lists. Each
// listed node is classified with that side for the duration of the call;
// nodes the lists leave unclassified make Count fail with
// ErrPartitionUnknown. Supplying two empty lists is an option violation.
func WithPartition(left, right []string) Option {
	return func(o *CountOptions) {
		if len(left) == 0 && len(right) == 0 {
			o.err = fmt.Errorf("%w: empty partition lists", ErrOptionViolation)
			return
		}
		o.Left = left
		o.Right = right
	}
}
