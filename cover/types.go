package cover

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/teamcover/bipartite"
)

// Sentinel errors for cover extraction.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("cover: graph is nil")

	// ErrMatchingNil is returned when a nil matching is passed to Konig.
	ErrMatchingNil = errors.New("cover: matching is nil")

	// ErrNotMaximum indicates the matching admits an augmenting path.
	ErrNotMaximum = errors.New("cover: matching is not maximum")

	// ErrSizeMismatch indicates the cover size differs from the matching size.
	ErrSizeMismatch = errors.New("cover: cover size differs from matching size")

	// ErrUncovered indicates an edge with neither endpoint in the cover.
	ErrUncovered = errors.New("cover: edge not covered")
)

// Option configures MinimumVertexCover.
type Option func(*Options)

// Options holds the extraction settings.
type Options struct {
	// Priority biases the matching search toward this vertex; NIL disables it.
	Priority bipartite.ID

	// Include requests a minimum cover containing this vertex when one exists.
	Include bipartite.ID

	// Logger receives progress entries.
	Logger *logrus.Entry
}

// DefaultOptions returns options with no bias, no pinned vertex and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Logger: logrus.NewEntry(&logrus.Logger{Out: io.Discard}),
	}
}

// WithPriority forwards a tie-break bias to the matching engine.
func WithPriority(v bipartite.ID) Option {
	return func(o *Options) { o.Priority = v }
}

// WithInclude pins v into the cover when some minimum cover contains it.
// It also biases the matching toward v.
func WithInclude(v bipartite.ID) Option {
	return func(o *Options) { o.Include = v }
}

// WithLogger sets the logger; nil keeps the discarding default.
func WithLogger(l *logrus.Entry) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of MinimumVertexCover.
type Result struct {
	// Vertices is the cover in ascending id order.
	Vertices []bipartite.ID

	// MatchingSize is ν(G); it always equals len(Vertices).
	MatchingSize int

	// Phases is the number of Hopcroft–Karp phases of the main run.
	Phases int

	// Included reports whether the pinned vertex is in Vertices.
	// False when no vertex was pinned.
	Included bool
}

// Size returns the number of vertices in the cover.
func (r *Result) Size() int {
	return len(r.Vertices)
}

// Contains reports whether id is in the cover.
func (r *Result) Contains(id bipartite.ID) bool {
	for _, v := range r.Vertices {
		if v == id {
			return true
		}
	}

	return false
}
