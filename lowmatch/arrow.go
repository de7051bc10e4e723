package lowmatch

import (
	"github.com/typesig/apisearch/equation"
	"github.com/typesig/apisearch/query"
	"github.com/typesig/apisearch/types"
)

// testArrowArrow matches two Arrow-kind LowTypes. Equal-length arrows
// zip elementwise or, within SwapOrderDepth, after a bounded number of
// adjacent-parameter transpositions; the return type (the final
// element) never takes part in a swap. Unequal lengths are reconciled
// either by dropping the longer arrow's trailing optional parameters
// (ComplementDepth-bounded) or, when IgnoreParameterStyle is enabled,
// by splitting a leading tuple argument into the curried form's extra
// segments.
func testArrowArrow(a, b types.LowType, ctx equation.Context) equation.MatchingResult {
	if len(a.Elements) == len(b.Elements) {
		return trySwapOrders(a.Elements, b.Elements, ctx, ctx.Options.SwapOrderDepth, 1)
	}
	if r := testArrowComplement(a, b, ctx); r.IsMatched() {
		return r
	}
	if ctx.Options.IgnoreParameterStyle == query.Enabled {
		return testTupleSplitReshape(a, b, ctx)
	}
	return equation.Failure()
}

// testArrowReshape handles an Arrow matched against a non-Arrow. A
// function type never unifies with a genuinely non-function one; the
// curried/tupled reshaping testArrowArrow performs is between two
// Arrow-kind LowTypes of different lengths, not between an Arrow and
// a non-Arrow kind.
func testArrowReshape(a, b types.LowType, ctx equation.Context) equation.MatchingResult {
	return equation.Failure()
}

func zipArrow(as, bs []types.LowType, ctx equation.Context) equation.MatchingResult {
	result := equation.Matched(ctx)
	for i := range as {
		elemA, elemB := as[i], bs[i]
		result = result.Then(func(c equation.Context) equation.MatchingResult {
			return Test(elemA, elemB, c)
		})
	}
	return result
}

// testArrowComplement tries to reconcile a length mismatch by dropping
// the longer arrow's trailing optional parameter segments (those
// immediately before its return type) to match the shorter arrow's
// length, charging +1 distance per dropped segment, bounded by
// ComplementDepth.
func testArrowComplement(a, b types.LowType, ctx equation.Context) equation.MatchingResult {
	longer, shorter := a, b
	if len(b.Elements) > len(a.Elements) {
		longer, shorter = b, a
	}
	diff := len(longer.Elements) - len(shorter.Elements)
	if diff <= 0 || diff > ctx.Options.ComplementDepth {
		return equation.Failure()
	}

	n := len(longer.Elements)
	dropFrom := n - 1 - diff
	if dropFrom < 0 {
		return equation.Failure()
	}
	for i := dropFrom; i < n-1; i++ {
		if longer.ArrowOptional == nil || i >= len(longer.ArrowOptional) || !longer.ArrowOptional[i] {
			return equation.Failure()
		}
	}

	kept := make([]types.LowType, 0, len(shorter.Elements))
	kept = append(kept, longer.Elements[:dropFrom]...)
	kept = append(kept, longer.Elements[n-1])
	if len(kept) != len(shorter.Elements) {
		return equation.Failure()
	}
	return zipArrow(kept, shorter.Elements, ctx.WithDistance(diff))
}

// testTupleSplitReshape matches a non-curried arrow (one combined
// tuple-shaped parameter segment, Elements = [Tuple(...), ret]) against
// its curried equivalent (Elements = [p1, p2, ..., ret]), splitting the
// leading Tuple into the curried form's positional segments.
func testTupleSplitReshape(a, b types.LowType, ctx equation.Context) equation.MatchingResult {
	tupled, curried := a, b
	if len(b.Elements) < len(a.Elements) {
		tupled, curried = b, a
	}
	if len(tupled.Elements) != 2 || len(curried.Elements) < 2 {
		return equation.Failure()
	}
	head := tupled.Elements[0]
	if head.Kind != types.TupleKind {
		return equation.Failure()
	}
	wantSplit := len(curried.Elements) - 1
	if len(head.Elements) != wantSplit {
		return equation.Failure()
	}

	split := make([]types.LowType, 0, len(curried.Elements))
	split = append(split, head.Elements...)
	split = append(split, tupled.Elements[1])
	return zipArrow(split, curried.Elements, ctx.WithDistance(1))
}
