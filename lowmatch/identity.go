package lowmatch

import (
	"github.com/typesig/apisearch/equation"
	"github.com/typesig/apisearch/query"
	"github.com/typesig/apisearch/types"
)

// testIdentity implements dispatch rule 1: Identity vs Identity.
func testIdentity(a, b types.LowType, ctx equation.Context) equation.MatchingResult {
	ignoreCase := ctx.Options.IgnoreCase == query.Enabled

	matched, nameDiffers := identitiesMatch(a.Identity, b.Identity, ignoreCase)
	if !matched {
		return equation.Failure()
	}

	next := ctx
	if nameDiffers && ctx.Options.RespectNameDifference == query.Enabled {
		next = next.WithDistance(1)
	}
	return equation.Matched(next)
}

func identitiesMatch(x, y types.Identity, ignoreCase bool) (matched, nameDiffers bool) {
	switch {
	case x.Kind == types.FullIdentityKind && y.Kind == types.FullIdentityKind:
		return fullFullMatch(x, y, ignoreCase)
	case x.Kind == types.FullIdentityKind && y.Kind == types.PartialIdentityKind:
		return fullPartialMatch(x, y, ignoreCase)
	case x.Kind == types.PartialIdentityKind && y.Kind == types.FullIdentityKind:
		return fullPartialMatch(y, x, ignoreCase)
	default:
		return partialPartialMatch(x, y, ignoreCase)
	}
}

// fullFullMatch requires identical assembly, arity, and name. A name
// difference in the compiled form of a WithCompiledName head segment
// is reported (not a failure) so the caller can charge a distance cost.
func fullFullMatch(x, y types.Identity, ignoreCase bool) (matched, nameDiffers bool) {
	if x.AssemblyName != y.AssemblyName || x.GenericParameterCount != y.GenericParameterCount {
		return false, false
	}

	equalNames := x.Name.Equal(y.Name)
	if ignoreCase {
		equalNames = x.Name.EqualFold(y.Name)
	}
	if !equalNames {
		return false, false
	}

	if hx, ok := x.Name.Head(); ok {
		if hy, ok2 := y.Name.Head(); ok2 {
			if hx.Part.Kind == types.CompiledNamePart || hy.Part.Kind == types.CompiledNamePart {
				if hx.Part.Compiled != hy.Part.Compiled {
					return true, true
				}
			}
		}
	}
	return true, false
}

// fullPartialMatch matches full against a tail-wildcard partial
// identity: every partial name item must equal the corresponding tail
// segment of full's name, and generic-parameter counts must agree at
// every segment except one where the partial side declared zero
// generic parameters (that segment's arity is then unconstrained).
func fullPartialMatch(full, partial types.Identity, ignoreCase bool) (matched, nameDiffers bool) {
	if !full.Name.HasTail(partial.Name, ignoreCase) {
		return false, false
	}
	zeroArity := partial.ZeroArityTailSegments()
	for i, item := range partial.Name {
		if zeroArity[i] {
			continue
		}
		if len(full.Name[i].GenericParameters) != len(item.GenericParameters) {
			return false, false
		}
	}
	if !(len(zeroArity) > 0 && zeroArity[0]) && full.GenericParameterCount != partial.GenericParameterCount {
		return false, false
	}
	return true, false
}

// partialPartialMatch matches two partial identities against each
// other: the shorter must be a tail of the longer, under the same
// per-segment arity rule as fullPartialMatch.
func partialPartialMatch(x, y types.Identity, ignoreCase bool) (matched, nameDiffers bool) {
	longer, shorter := x, y
	if len(y.Name) > len(x.Name) {
		longer, shorter = y, x
	}
	if !longer.Name.HasTail(shorter.Name, ignoreCase) {
		return false, false
	}
	zeroArity := shorter.ZeroArityTailSegments()
	for i, item := range shorter.Name {
		if zeroArity[i] {
			continue
		}
		if len(longer.Name[i].GenericParameters) != len(item.GenericParameters) {
			return false, false
		}
	}
	if !(len(zeroArity) > 0 && zeroArity[0]) && longer.GenericParameterCount != shorter.GenericParameterCount {
		return false, false
	}
	return true, false
}
