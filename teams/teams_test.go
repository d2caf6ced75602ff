package teams_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/teamcover/bipartite"
	"github.com/katalvlaran/teamcover/teams"
)

func TestParse(t *testing.T) {
	got, err := teams.Parse(strings.NewReader("3\n1009 2000\n1009 2001\n1002 2002\n"), 3000)
	require.NoError(t, err)
	assert.Equal(t, []teams.Team{{A: 1009, B: 2000}, {A: 1009, B: 2001}, {A: 1002, B: 2002}}, got)

	got, err = teams.Parse(strings.NewReader("0"), 3000)
	require.NoError(t, err)
	assert.Empty(t, got)

	// layout is free-form and trailing tokens are ignored
	got, err = teams.Parse(strings.NewReader("  2 1 2\t3\n\n4 99 junk"), 3000)
	require.NoError(t, err)
	assert.Equal(t, []teams.Team{{A: 1, B: 2}, {A: 3, B: 4}}, got)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", teams.ErrTruncated},
		{"blank", "  \n ", teams.ErrTruncated},
		{"negative count", "-1", teams.ErrMalformed},
		{"word count", "two", teams.ErrMalformed},
		{"word id", "1\n1 x", teams.ErrMalformed},
		{"missing pair", "2\n1 2", teams.ErrTruncated},
		{"half pair", "1\n1", teams.ErrTruncated},
		{"zero id", "1\n0 2", teams.ErrInvalidID},
		{"negative id", "1\n1 -2", teams.ErrInvalidID},
		{"id at bound", "1\n1 3000", teams.ErrInvalidID},
		{"count above limit", "10001\n1 2", teams.ErrMalformed},
		{"huge count", "1099511627776\n1 2\n", teams.ErrMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := teams.Parse(strings.NewReader(tc.input), 3000)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_MaxTeams(t *testing.T) {
	input := "3\n1 10\n2 11\n3 12\n"

	_, err := teams.Parse(strings.NewReader(input), 3000, teams.WithMaxTeams(2))
	require.ErrorIs(t, err, teams.ErrMalformed)
	assert.Contains(t, err.Error(), "exceeds limit 2")

	got, err := teams.Parse(strings.NewReader(input), 3000, teams.WithMaxTeams(3))
	require.NoError(t, err)
	assert.Len(t, got, 3)

	// non-positive limits keep the default
	got, err = teams.Parse(strings.NewReader(input), 3000, teams.WithMaxTeams(0))
	require.NoError(t, err)
	assert.Len(t, got, 3)

	// a raised limit only lets the count through; a short input is still truncated
	require.NotPanics(t, func() {
		_, err = teams.Parse(strings.NewReader("1099511627776\n1 2\n"), 3000, teams.WithMaxTeams(math.MaxInt))
	})
	assert.ErrorIs(t, err, teams.ErrTruncated)
}

func TestParse_ReportsEveryInvalidID(t *testing.T) {
	_, err := teams.Parse(strings.NewReader("3\n0 1\n5 5000\n7 -1"), 3000)
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 3)
	for _, e := range merr.Errors {
		assert.ErrorIs(t, e, teams.ErrInvalidID)
	}
}

func TestBuild(t *testing.T) {
	g, err := teams.Build([]teams.Team{{A: 1, B: 10}, {A: 2, B: 10}, {A: 1, B: 11}, {A: 1, B: 10}})
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, bipartite.SideA, g.SideOf(2))
	assert.Equal(t, bipartite.SideB, g.SideOf(11))
	assert.Equal(t, []bipartite.ID{1, 2}, g.Neighbors(10))

	empty, err := teams.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.VertexCount())
}

func TestBuild_Errors(t *testing.T) {
	_, err := teams.Build([]teams.Team{{A: 1, B: 10}, {A: 10, B: 2}})
	assert.ErrorIs(t, err, teams.ErrSideConflict)

	_, err = teams.Build([]teams.Team{{A: 1, B: 10}, {A: 2, B: 11}}, bipartite.WithMaxVertices(3))
	assert.ErrorIs(t, err, teams.ErrCapacity)

	_, err = teams.Build([]teams.Team{{A: 1, B: 50}}, bipartite.WithIDBound(20))
	assert.ErrorIs(t, err, teams.ErrInvalidID)

	_, err = teams.Build(nil, bipartite.WithIDBound(0))
	assert.ErrorIs(t, err, bipartite.ErrOptionViolation)
}

func TestWriteCover(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, teams.WriteCover(&buf, []bipartite.ID{1009, 2001}))
	assert.Equal(t, "2\n1009\n2001\n", buf.String())

	buf.Reset()
	require.NoError(t, teams.WriteCover(&buf, nil))
	assert.Equal(t, "0\n", buf.String())
}
