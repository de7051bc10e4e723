package lowmatch

import (
	"github.com/typesig/apisearch/equation"
	"github.com/typesig/apisearch/types"
)

// testVariable implements dispatch rule 3: a type Variable on either
// side matches anything, recording the pairing as an equality in the
// equation store. Two variables bind to each other rather than
// aliasing by name, even when they share a name: query-side and
// target-side variables are distinct namespaces (see VariableSource),
// so only the equation store ever relates them. A self-equality (the
// same source and the same TypeVariable on both sides) is dropped as
// trivial by the store itself.
func testVariable(a, b types.LowType, ctx equation.Context) equation.MatchingResult {
	next := ctx
	if a.Kind == types.VariableKind {
		res := checkExistingBindings(a, b, next)
		if !res.IsMatched() {
			return equation.Failure()
		}
		next, _ = res.Context()
	}
	if b.Kind == types.VariableKind {
		res := checkExistingBindings(b, a, next)
		if !res.IsMatched() {
			return equation.Failure()
		}
		next, _ = res.Context()
	}

	eq, ok := next.Equations.TryAddEquality(a, b)
	if !ok {
		return equation.Failure()
	}
	next = next.WithEquations(eq)
	if v, other, ok := queryVariableBinding(a, b); ok {
		next = next.BindSubstitution(v.Name, other.String())
	}
	return equation.Matched(next)
}

// checkExistingBindings enforces dispatch rule 3's consistency clause:
// when v already carries one or more recorded equalities, binding it to
// other is only accepted if other also tests successfully against every
// type v is already bound to. Bindings to another variable are skipped
// here; the equation store's own closure/contradiction tracking covers
// those transitively.
func checkExistingBindings(v, other types.LowType, ctx equation.Context) equation.MatchingResult {
	next := ctx
	for _, p := range ctx.Equations.FindEqualities(v) {
		bound := p.A
		if bound.Equal(v) {
			bound = p.B
		}
		if bound.Kind == types.VariableKind {
			continue
		}
		res := Test(other, bound, next)
		if !res.IsMatched() {
			return equation.Failure()
		}
		next, _ = res.Context()
	}
	return equation.Matched(next)
}

// queryVariableBinding reports the query-side variable and the concrete
// type it was just matched against, for recording in ctx.Substitutions.
// It only fires when exactly one side is a query Variable and the other
// is not itself a Variable; variable-to-variable pairings contribute no
// renderable binding.
func queryVariableBinding(a, b types.LowType) (types.TypeVariable, types.LowType, bool) {
	if a.Kind == types.VariableKind && a.VarSource == types.QuerySource && b.Kind != types.VariableKind {
		return a.Variable, b, true
	}
	if b.Kind == types.VariableKind && b.VarSource == types.QuerySource && a.Kind != types.VariableKind {
		return b.Variable, a, true
	}
	return types.TypeVariable{}, types.LowType{}, false
}
