package lowmatch

import (
	"github.com/typesig/apisearch/equation"
	"github.com/typesig/apisearch/types"
)

// testAbbreviation matches a TypeAbbreviation transparently against
// its original form. It tries the shallower comparison first (the
// abbreviated forms, as written) before paying to unwrap to the
// original form. Each unwrap that isn't mirrored on the other side
// costs +1 distance; unwrapping
// both sides of a TypeAbbreviation-vs-TypeAbbreviation comparison is
// charged once, not twice, since the relaxation is symmetric there.
func testAbbreviation(a, b types.LowType, ctx equation.Context) equation.MatchingResult {
	switch {
	case a.Kind == types.TypeAbbreviationKind && b.Kind == types.TypeAbbreviationKind:
		if shallow := Test(*a.Abbreviation, *b.Abbreviation, ctx); shallow.IsMatched() {
			return shallow
		}
		return Test(*a.Original, *b.Original, ctx.WithDistance(1))
	case a.Kind == types.TypeAbbreviationKind:
		return Test(*a.Original, b, ctx.WithDistance(1))
	default:
		return Test(a, *b.Original, ctx.WithDistance(1))
	}
}
