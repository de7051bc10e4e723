package lowmatch

import (
	"github.com/typesig/apisearch/equation"
	"github.com/typesig/apisearch/types"
)

// testChoice implements dispatch rule 9: a Choice matches if any
// alternative matches the other side, under lowest-incremental-distance
// tie-break toward the earliest alternative. A Choice on both sides
// falls out of the recursion naturally: each alternative of the first
// Choice is tested against the whole second Choice, which in turn tries
// each of its own alternatives.
func testChoice(a, b types.LowType, ctx equation.Context) equation.MatchingResult {
	choice, other := a, b
	if a.Kind != types.ChoiceKind {
		choice, other = b, a
	}

	var best equation.MatchingResult
	bestDistance := -1
	for _, alt := range choice.Elements {
		r := Test(alt, other, ctx)
		if !r.IsMatched() {
			continue
		}
		c, _ := r.Context()
		if bestDistance == -1 || c.Distance < bestDistance {
			bestDistance = c.Distance
			best = r
		}
	}
	if bestDistance == -1 {
		return equation.Failure()
	}
	return best
}
