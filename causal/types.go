// File: types.go
// Role: NodeSet, functional options and error definitions shared by the
// causal algorithms.

package causal

import (
	"errors"
	"fmt"
	"sort"
)

// Default edge type names, matching the conventional layer naming of
// acyclic directed mixed graphs.
const (
	// DirectedEdgeType is the default name of the directed layer.
	DirectedEdgeType = "directed"

	// BidirectedEdgeType is the default name of the bidirected layer.
	BidirectedEdgeType = "bidirected"
)

// Sentinel errors for the causal algorithms.
var (
	// ErrNilGraph is returned if a nil mixed graph pointer is passed.
	ErrNilGraph = errors.New("causal: graph is nil")

	// ErrMissingEdgeType is returned when the graph does not declare a
	// layer the algorithm requires.
	ErrMissingEdgeType = errors.New("causal: required edge type not present")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("causal: invalid option supplied")
)

// NodeSet is a set of node identifiers. The zero value (nil) is a valid
// empty set for read-only use.
type NodeSet map[string]struct{}

// NewNodeSet builds a NodeSet from the given IDs.
func NewNodeSet(ids ...string) NodeSet {
	s := make(NodeSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Contains reports whether id is a member of the set.
func (s NodeSet) Contains(id string) bool {
	_, ok := s[id]

	return ok
}

// Union returns a fresh set holding the members of s and all others;
// none of the inputs is mutated.
func (s NodeSet) Union(others ...NodeSet) NodeSet {
	out := make(NodeSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	for _, o := range others {
		for id := range o {
			out[id] = struct{}{}
		}
	}

	return out
}

// Sorted returns the members as a sorted slice.
func (s NodeSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Option configures the edge type names an algorithm resolves against
// the graph. Invalid values are recorded and surfaced as
// ErrOptionViolation when the algorithm runs.
type Option func(*Options)

// Options holds the resolved algorithm parameters.
type Options struct {
	// DirectedName is the edge type of the directed layer.
	DirectedName string

	// BidirectedName is the edge type of the bidirected layer.
	BidirectedName string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the conventional layer names.
func DefaultOptions() Options {
	return Options{
		DirectedName:   DirectedEdgeType,
		BidirectedName: BidirectedEdgeType,
	}
}

// WithDirectedEdgeType overrides the name of the directed layer.
// An empty name is an option violation.
func WithDirectedEdgeType(name string) Option {
	return func(o *Options) {
		if name == "" {
			o.err = fmt.Errorf("%w: directed edge type name is empty", ErrOptionViolation)

			return
		}
		o.DirectedName = name
	}
}

// WithBidirectedEdgeType overrides the name of the bidirected layer.
// An empty name is an option violation.
func WithBidirectedEdgeType(name string) Option {
	return func(o *Options) {
		if name == "" {
			o.err = fmt.Errorf("%w: bidirected edge type name is empty", ErrOptionViolation)

			return
		}
		o.BidirectedName = name
	}
}

// buildOptions folds the option list over the defaults and reports the
// first recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
