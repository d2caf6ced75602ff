package matching

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/teamcover/bipartite"
)

// Sentinel errors for matching.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrBoundMismatch indicates a Matching sized for a different id bound than the graph.
	ErrBoundMismatch = errors.New("matching: id bound mismatch")

	// ErrNotAnEdge indicates a matched pair that is not an edge of the graph.
	ErrNotAnEdge = errors.New("matching: matched pair is not an edge")
)

// Less reports whether x should be tried before y during augmentation.
// It must be a strict weak order; elements it considers equal keep their
// original relative order.
type Less func(x, y bipartite.ID) bool

// Priority returns the Less that puts v ahead of every other vertex and
// leaves all remaining vertices tied.
func Priority(v bipartite.ID) Less {
	return func(x, y bipartite.ID) bool {
		return x == v && y != v
	}
}

// Option configures HopcroftKarp.
type Option func(*Options)

// Options holds tie-break, hook and logging settings.
type Options struct {
	// Order, if non-nil, sorts neighbor lists and free roots before the run.
	Order Less

	// OnPhase is called after each augmenting phase with the 1-based phase
	// number and the number of paths augmented in it.
	OnPhase func(phase, augmented int)

	// Logger receives one debug entry per phase.
	Logger *logrus.Entry
}

// DefaultOptions returns options with adjacency-order tie-breaks, a no-op
// phase hook and an output-discarding logger.
func DefaultOptions() Options {
	return Options{
		Order:   nil,
		OnPhase: func(int, int) {},
		Logger:  logrus.NewEntry(&logrus.Logger{Out: io.Discard}),
	}
}

// WithOrder sets the tie-break comparator. A nil less keeps adjacency order.
func WithOrder(less Less) Option {
	return func(o *Options) {
		o.Order = less
	}
}

// WithPriority biases the search toward v; see Priority.
// NIL disables the bias.
func WithPriority(v bipartite.ID) Option {
	return func(o *Options) {
		if v == bipartite.NIL {
			o.Order = nil
			return
		}
		o.Order = Priority(v)
	}
}

// WithOnPhase registers a per-phase hook.
func WithOnPhase(fn func(phase, augmented int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPhase = fn
		}
	}
}

// WithLogger sets the logger; nil keeps the discarding default.
func WithLogger(l *logrus.Entry) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of HopcroftKarp.
type Result struct {
	// Matching is a maximum matching of the input graph.
	Matching *Matching

	// Phases counts layering rounds that found at least one augmenting path.
	Phases int
}

// Size returns the cardinality of the matching.
func (r *Result) Size() int {
	return r.Matching.Size()
}
