package teams

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/teamcover/bipartite"
)

// Sentinel errors for parsing and building.
var (
	// ErrMalformed indicates a non-integer token or a team count that is
	// negative or above the limit.
	ErrMalformed = errors.New("teams: malformed input")

	// ErrTruncated indicates fewer pairs than the announced count.
	ErrTruncated = errors.New("teams: truncated input")

	// ErrInvalidID indicates 0, a negative id, or an id at or above the bound.
	ErrInvalidID = errors.New("teams: invalid employee id")

	// ErrSideConflict indicates an id used on both locations.
	ErrSideConflict = errors.New("teams: employee on both sides")

	// ErrCapacity indicates more distinct employees than the graph accepts.
	ErrCapacity = errors.New("teams: too many employees")
)

// DefaultMaxTeams is the largest team count Parse accepts by default.
const DefaultMaxTeams = 10000

// Option configures Parse.
type Option func(*parseConfig)

type parseConfig struct {
	maxTeams int
}

// WithMaxTeams sets the largest accepted team count. Values below 1 keep
// DefaultMaxTeams.
func WithMaxTeams(n int) Option {
	return func(c *parseConfig) {
		if n > 0 {
			c.maxTeams = n
		}
	}
}

// Team pairs one Side-A and one Side-B employee.
type Team struct {
	A, B bipartite.ID
}

// Parse reads a team count followed by that many id pairs. Tokens after the
// last announced pair are ignored.
//
// Bounds: the count must not exceed the team limit (DefaultMaxTeams unless
// WithMaxTeams says otherwise) and every id must satisfy 0 < id < idBound.
// The number of distinct employees is checked later by Build against the
// graph's MaxVertices.
func Parse(r io.Reader, idBound int, opts ...Option) ([]Team, error) {
	c := parseConfig{maxTeams: DefaultMaxTeams}
	for _, opt := range opts {
		opt(&c)
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	// next returns the following integer; ok is false at end of input.
	next := func() (n int, ok bool, err error) {
		if !sc.Scan() {
			return 0, false, sc.Err()
		}
		n, err = strconv.Atoi(sc.Text())
		if err != nil {
			return 0, true, fmt.Errorf("%w: token %q", ErrMalformed, sc.Text())
		}

		return n, true, nil
	}

	count, ok, err := next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: missing team count", ErrTruncated)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative team count %d", ErrMalformed, count)
	}
	if count > c.maxTeams {
		return nil, fmt.Errorf("%w: team count %d exceeds limit %d", ErrMalformed, count, c.maxTeams)
	}

	var invalid error
	// preallocation stays bounded whatever the configured limit
	out := make([]Team, 0, min(count, DefaultMaxTeams))
	for i := 0; i < count; i++ {
		var pair [2]int
		for k := range pair {
			pair[k], ok, err = next()
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, fmt.Errorf("%w: %d of %d teams read", ErrTruncated, i, count)
			}
			if pair[k] <= 0 || pair[k] >= idBound {
				invalid = multierror.Append(invalid,
					fmt.Errorf("%w: team %d has id %d (want 0 < id < %d)", ErrInvalidID, i+1, pair[k], idBound))
			}
		}
		out = append(out, Team{A: bipartite.ID(pair[0]), B: bipartite.ID(pair[1])})
	}
	if invalid != nil {
		return nil, invalid
	}

	return out, nil
}

// Build registers both employees of every team (A on SideA, B on SideB)
// and adds the team as an edge. Repeated employees and repeated teams are
// accepted silently.
func Build(teams []Team, opts ...bipartite.Option) (*bipartite.Graph, error) {
	g, err := bipartite.New(opts...)
	if err != nil {
		return nil, err
	}
	for i, t := range teams {
		if err = register(g, t.A, bipartite.SideA); err != nil {
			return nil, fmt.Errorf("team %d: %w", i+1, err)
		}
		if err = register(g, t.B, bipartite.SideB); err != nil {
			return nil, fmt.Errorf("team %d: %w", i+1, err)
		}
		g.AddEdge(t.A, t.B)
	}

	return g, nil
}

// register adds id on side, translating the store's false into an error
// unless id is already present on that side.
func register(g *bipartite.Graph, id bipartite.ID, side bipartite.Side) error {
	if g.AddVertex(id, side) {
		return nil
	}
	switch existing := g.SideOf(id); {
	case existing == side:
		return nil
	case existing != bipartite.SideNone:
		return fmt.Errorf("%w: %d is on side %s, wanted %s", ErrSideConflict, id, existing, side)
	case int(id) <= 0 || int(id) >= g.IDBound():
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	default:
		return fmt.Errorf("%w: limit is %d", ErrCapacity, g.MaxVertices())
	}
}

// WriteCover prints the number of attendees and then one id per line.
func WriteCover(w io.Writer, ids []bipartite.ID) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, len(ids)); err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := fmt.Fprintln(bw, id); err != nil {
			return err
		}
	}

	return bw.Flush()
}
