package apimatch

import (
	"strings"

	"github.com/typesig/apisearch/api"
	"github.com/typesig/apisearch/equation"
	"github.com/typesig/apisearch/query"
	"github.com/typesig/apisearch/types"
)

// NameMatcher applies when the query method is ByName: each NameQuery
// segment is zipped against the corresponding segment of the target's
// DisplayName, innermost first. Lengths must agree exactly.
type NameMatcher struct{}

// Name identifies this matcher for diagnostics.
func (NameMatcher) Name() string { return "name" }

// Test implements Matcher.
func (NameMatcher) Test(low LowTypeMatcher, dict *api.Dictionary, method query.Method, target api.Api, ctx equation.Context) equation.MatchingResult {
	if method.Kind != query.ByName {
		return equation.Matched(ctx)
	}
	if len(method.Names) != len(target.Name) {
		return equation.Failure()
	}
	ignoreCase := ctx.Options.IgnoreCase == query.Enabled
	for i, nq := range method.Names {
		if !nameSegmentMatches(nq, target.Name[i], ignoreCase) {
			return equation.Failure()
		}
	}
	return equation.Matched(ctx)
}

func nameSegmentMatches(nq query.NameQuery, item types.DisplayNameItem, ignoreCase bool) bool {
	switch nq.MatchMethod {
	case query.AnyMethod:
		// matches any displayed name at this segment.
	case query.RegexMethod:
		if nq.CompiledRegex == nil || !nq.CompiledRegex.MatchString(item.Part.Display) {
			return false
		}
	default:
		if ignoreCase {
			if !strings.EqualFold(nq.Expected, item.Part.Display) {
				return false
			}
		} else if nq.Expected != item.Part.Display {
			return false
		}
	}
	if nq.HasGenericArity && len(nq.GenericParameters) != len(item.GenericParameters) {
		return false
	}
	return true
}
