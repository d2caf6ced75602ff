// SPDX-License-Identifier: MIT
// Package: bipartite
//
// types.go declares ID, Side, sentinel errors, Option and the Graph type.
//
// Contract:
//   - NIL (0) is never a real vertex; every valid ID satisfies 0 < id < IDBound.
//   - A vertex belongs to exactly one side for its whole lifetime.
//   - adj[a] and adj[b] mirror each other: b ∈ adj[a] iff a ∈ adj[b].

package bipartite

import (
	"errors"
	"fmt"
	"sync"
)

// ID identifies a vertex. Valid identifiers are positive and below the
// graph's IDBound.
type ID int

// NIL is the reserved "no vertex" identifier.
const NIL ID = 0

// Side names one of the two independent sets of the graph.
type Side uint8

const (
	// SideNone marks an unregistered slot.
	SideNone Side = iota
	// SideA is the first independent set (location A).
	SideA
	// SideB is the second independent set (location B).
	SideB
)

// String returns "A", "B" or "none".
func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "none"
	}
}

// Opposite returns the other side; SideNone maps to itself.
func (s Side) Opposite() Side {
	switch s {
	case SideA:
		return SideB
	case SideB:
		return SideA
	default:
		return SideNone
	}
}

// Default bounds, matching the reference problem size: at most 2000
// employees, with identifiers below 3000.
const (
	DefaultMaxVertices = 2000
	DefaultIDBound     = 3000
)

// Sentinel errors for graph construction.
var (
	// ErrOptionViolation is returned by New when an Option carries an invalid value.
	ErrOptionViolation = errors.New("bipartite: invalid option supplied")

	// ErrTooFewVertices is returned by generators asked for an empty side.
	ErrTooFewVertices = errors.New("bipartite: too few vertices")

	// ErrDoesNotFit is returned by generators whose output exceeds the graph bounds.
	ErrDoesNotFit = errors.New("bipartite: generated graph exceeds bounds")
)

// Option configures a Graph before creation.
type Option func(*config)

// config collects option values; err records the first invalid option.
type config struct {
	maxVertices int
	idBound     int
	err         error
}

func defaultConfig() config {
	return config{maxVertices: DefaultMaxVertices, idBound: DefaultIDBound}
}

// WithMaxVertices caps the number of vertices the graph accepts (n > 0).
func WithMaxVertices(n int) Option {
	return func(c *config) {
		if n <= 0 {
			c.record(fmt.Errorf("%w: max vertices must be positive (%d)", ErrOptionViolation, n))
			return
		}
		c.maxVertices = n
	}
}

// WithIDBound sets the exclusive upper bound on vertex identifiers (n > 1).
func WithIDBound(n int) Option {
	return func(c *config) {
		if n <= 1 {
			c.record(fmt.Errorf("%w: id bound must exceed 1 (%d)", ErrOptionViolation, n))
			return
		}
		c.idBound = n
	}
}

func (c *config) record(err error) {
	if c.err == nil {
		c.err = err
	}
}

// Graph is a bounded bipartite adjacency store.
//
// side[id] is SideNone for unregistered ids; adj[id] holds neighbors in
// insertion order; order lists registered ids in registration order.
type Graph struct {
	mu sync.RWMutex

	maxVertices int
	idBound     int

	side  []Side
	adj   [][]ID
	order []ID
	edges int
}

// New creates an empty Graph. It returns ErrOptionViolation (wrapped) when
// any option is invalid.
// Complexity: O(IDBound).
func New(opts ...Option) (*Graph, error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if c.err != nil {
		return nil, c.err
	}

	return newGraph(c.maxVertices, c.idBound), nil
}

// MustNew is like New but panics on invalid options. Intended for tests,
// examples and package-level literals with constant options.
func MustNew(opts ...Option) *Graph {
	g, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return g
}

func newGraph(maxVertices, idBound int) *Graph {
	return &Graph{
		maxVertices: maxVertices,
		idBound:     idBound,
		side:        make([]Side, idBound),
		adj:         make([][]ID, idBound),
		order:       make([]ID, 0, min(maxVertices, idBound)),
	}
}

// Edge is an (A, B) pair stored in the graph.
type Edge struct {
	A, B ID
}
