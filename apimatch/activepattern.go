package apimatch

import (
	"github.com/typesig/apisearch/api"
	"github.com/typesig/apisearch/equation"
	"github.com/typesig/apisearch/query"
	"github.com/typesig/apisearch/types"
)

// ActivePatternMatcher applies when the query method is ByActivePattern.
// It compares the query's arrow shape against the target active
// pattern's arrow shape, honoring an AnyParameter wildcard prefix that
// absorbs any number of the target's leading parameters.
type ActivePatternMatcher struct{}

// Name identifies this matcher for diagnostics.
func (ActivePatternMatcher) Name() string { return "active-pattern" }

// Test implements Matcher.
func (ActivePatternMatcher) Test(low LowTypeMatcher, dict *api.Dictionary, method query.Method, target api.Api, ctx equation.Context) equation.MatchingResult {
	if method.Kind != query.ByActivePattern {
		return equation.Matched(ctx)
	}
	if target.Signature.Kind != api.ActivePatternSignature {
		return equation.Failure()
	}
	targetShape := target.Signature.Function.SignatureLowType()
	queryShape := method.ActivePattern.Signature
	if !method.ActivePattern.AnyParameterPrefix {
		return low(queryShape, targetShape, ctx)
	}
	return matchWithAnyPrefix(low, queryShape, targetShape, ctx)
}

// matchWithAnyPrefix skips exactly the leading target parameters in
// excess of the query's own parameter count, then matches the aligned
// tail (remaining parameters plus the return type) against queryShape.
func matchWithAnyPrefix(low LowTypeMatcher, queryShape, targetShape types.LowType, ctx equation.Context) equation.MatchingResult {
	queryParams := arrowParams(queryShape)
	targetParams := arrowParams(targetShape)
	if len(queryParams) > len(targetParams) {
		return equation.Failure()
	}
	skip := len(targetParams) - len(queryParams)
	tail := make([]types.LowType, 0, len(targetParams)-skip+1)
	tail = append(tail, targetParams[skip:]...)
	tail = append(tail, arrowReturn(targetShape))
	return low(queryShape, sliceToLowType(tail), ctx)
}

func arrowParams(t types.LowType) []types.LowType {
	if t.Kind != types.ArrowKind {
		return nil
	}
	return t.Elements[:len(t.Elements)-1]
}

func arrowReturn(t types.LowType) types.LowType {
	if t.Kind != types.ArrowKind {
		return t
	}
	return t.Elements[len(t.Elements)-1]
}

func sliceToLowType(elements []types.LowType) types.LowType {
	if len(elements) == 1 {
		return elements[0]
	}
	return types.NewArrow(elements...)
}
