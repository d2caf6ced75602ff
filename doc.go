// Package teamcover picks the fewest employees to invite so that every
// two-person team, one member per location, has someone at the table.
//
// 🚀 What is teamcover?
//
//	Teams form a bipartite graph: location-A employees on one side,
//	location-B employees on the other, one edge per team. The smallest
//	representative set is a minimum vertex cover, and by König's theorem
//	its size equals the size of a maximum matching.
//
//		• bipartite/   array-indexed two-sided graph store, generators
//		• matching/    Hopcroft–Karp maximum matching with tie-break hooks
//		• cover/       König construction, preferred-employee inclusion, checks
//		• teams/       input parsing, graph building, output formatting
//		• converters/  gonum graph/simple interop
//		• config/      YAML settings
//		• cmd/teamcover  the command-line tool
//
// Quick ASCII example:
//
//	    A side      B side
//	     1009 ───── 2011
//	     1017 ────╯
//
//	Both teams include 2011, so inviting 2011 alone covers them.
//
// Typical use:
//
//	g, _ := teams.Build([]teams.Team{{A: 1009, B: 2011}, {A: 1017, B: 2011}})
//	res, _ := cover.MinimumVertexCover(g, cover.WithInclude(1009))
//	fmt.Println(res.Vertices) // [2011]
//
// Run the CLI with:
//
//	teamcover teams.txt --verify
package teamcover
