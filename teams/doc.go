// Package teams reads team lists and writes attendee lists: the input and
// output collaborators around the cover computation.
//
// Input format (whitespace separated integers):
//
//	m
//	a1 b1
//	...
//	am bm
//
// where every (ai, bi) is a team of one location-A and one location-B
// employee. Output format:
//
//	k
//	v1
//	...
//	vk
//
// Parse rejects non-integer tokens, negative counts, counts above the team
// limit (DefaultMaxTeams unless WithMaxTeams is given), truncated input and
// identifiers outside (0, idBound). All invalid identifiers are reported
// together in one multierror. Build turns the parsed teams into a
// bipartite.Graph, first column on SideA.
package teams
