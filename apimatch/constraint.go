package apimatch

import (
	"strings"

	"github.com/typesig/apisearch/api"
	"github.com/typesig/apisearch/equation"
	"github.com/typesig/apisearch/query"
	"github.com/typesig/apisearch/types"
)

// ConstraintSolver is the pipeline's final stage: every TypeConstraint
// attached to the matched API's generic parameters must be satisfiable
// against the bindings the earlier stages recorded in ctx.Substitutions.
// A constraint on a variable that never got bound is not rejected: it
// simply has nothing to check yet.
type ConstraintSolver struct{}

// Name identifies this matcher for diagnostics.
func (ConstraintSolver) Name() string { return "constraint" }

// Test implements Matcher.
func (ConstraintSolver) Test(low LowTypeMatcher, dict *api.Dictionary, method query.Method, target api.Api, ctx equation.Context) equation.MatchingResult {
	for _, tc := range target.TypeConstraints {
		if !constraintSatisfied(tc, dict, ctx) {
			return equation.Failure()
		}
	}
	return equation.Matched(ctx)
}

func constraintSatisfied(tc types.TypeConstraint, dict *api.Dictionary, ctx equation.Context) bool {
	for _, v := range tc.Variables {
		display, bound := ctx.Substitutions[v.Name]
		if !bound {
			continue
		}
		if constraintStatus(tc.Constraint, display, dict).Kind != types.StatusSatisfy {
			return false
		}
	}
	return true
}

// maxDependenceDepth bounds Dependence reduction: the number of generic
// parameters on a single type definition is finite, so a chain of
// Dependence statuses must bottom out within this many hops or it is
// treated as a dead end.
const maxDependenceDepth = 8

// constraintStatus resolves a Constraint against the FullTypeDefinition
// the bound display name resolves to, reducing a Dependence result
// into the constraints its listed generic parameters themselves
// declare. An unresolved Dependence - one that never reduces to
// Satisfy or NotSatisfy within maxDependenceDepth - is a dead end and
// is reported as NotSatisfy, not silently accepted.
func constraintStatus(c types.Constraint, boundDisplay string, dict *api.Dictionary) types.ConstraintStatus {
	def, ok := lookupBoundDefinition(boundDisplay, dict)
	switch c.Kind {
	case types.NullableConstraint:
		return statusOr(ok, reduceDependence(def.SupportsNull, c.Kind, def, 0))
	case types.ValueTypeConstraint:
		return statusOr(ok, reduceDependence(def.IsValueType, c.Kind, def, 0))
	case types.ReferenceTypeConstraint:
		return statusOr(ok, reduceDependence(def.IsReferenceType, c.Kind, def, 0))
	case types.DefaultConstructorConstraint:
		return statusOr(ok, reduceDependence(def.HasDefaultConstructor, c.Kind, def, 0))
	case types.EqualityConstraint:
		return statusOr(ok, reduceDependence(def.SupportsEquality, c.Kind, def, 0))
	case types.ComparisonConstraint:
		return statusOr(ok, reduceDependence(def.SupportsComparison, c.Kind, def, 0))
	case types.SubtypeConstraint:
		if !ok || c.SubtypeOf == nil {
			return types.Satisfy()
		}
		if isSubtypeOf(def, *c.SubtypeOf, dict, 0) {
			return types.Satisfy()
		}
		return types.NotSatisfy()
	case types.MemberConstraint:
		if !ok || c.Member == nil {
			return types.Satisfy()
		}
		if hasMatchingMember(def, *c.Member, c.MemberIsStatic) {
			return types.Satisfy()
		}
		return types.NotSatisfy()
	default:
		// EnumerationConstraint, DelegateConstraint, UnmanagedConstraint:
		// this catalog shape has no precomputed flag for these; accept
		// rather than reject a match this model cannot evaluate.
		return types.Satisfy()
	}
}

// reduceDependence reduces a Dependence(vars) status into the
// constraints def itself declares on those generic parameters: a
// parameter v reduces to Satisfy for kind if def.Constraints lists a
// Constraint of that same kind applying to v (the definition's own
// where-clause already guarantees it at every instantiation site).
// Any parameter that reduces to neither Satisfy nor NotSatisfy is a
// dead end, and the whole status reduces to NotSatisfy per that rule.
func reduceDependence(status types.ConstraintStatus, kind types.ConstraintKind, def types.FullTypeDefinition, depth int) types.ConstraintStatus {
	if status.Kind != types.StatusDependence {
		return status
	}
	if depth >= maxDependenceDepth {
		return types.NotSatisfy()
	}
	for _, v := range status.DependsOn {
		if !declaresConstraint(def, v, kind) {
			return types.NotSatisfy()
		}
	}
	return types.Satisfy()
}

func declaresConstraint(def types.FullTypeDefinition, v types.TypeVariable, kind types.ConstraintKind) bool {
	for _, tc := range def.Constraints {
		if tc.Constraint.Kind == kind && tc.AppliesTo(v) {
			return true
		}
	}
	return false
}

func statusOr(ok bool, status types.ConstraintStatus) types.ConstraintStatus {
	if !ok {
		return types.Satisfy()
	}
	return status
}

func lookupBoundDefinition(display string, dict *api.Dictionary) (types.FullTypeDefinition, bool) {
	if dict == nil || display == "" || strings.ContainsAny(display, " <>(),") {
		return types.FullTypeDefinition{}, false
	}
	return dict.FindTypeDefinition(types.NewDisplayName(display), 0)
}

func isSubtypeOf(def types.FullTypeDefinition, target types.LowType, dict *api.Dictionary, depth int) bool {
	const maxDepth = 16
	if depth > maxDepth {
		return false
	}
	if target.Kind == types.IdentityKind_ && def.Identity().Name.Equal(target.Identity.Name) {
		return true
	}
	for _, iface := range def.AllInterfaces {
		if iface.Equal(target) {
			return true
		}
	}
	if def.BaseType == nil {
		return false
	}
	if def.BaseType.Equal(target) {
		return true
	}
	if def.BaseType.Kind != types.IdentityKind_ {
		return false
	}
	baseDef, ok := dict.FindTypeDefinition(def.BaseType.Identity.Name, def.BaseType.Identity.GenericParameterCount)
	if !ok {
		return false
	}
	return isSubtypeOf(baseDef, target, dict, depth+1)
}

func hasMatchingMember(def types.FullTypeDefinition, want types.Member, isStatic bool) bool {
	pool := def.InstanceMembers
	if isStatic {
		pool = def.StaticMembers
	}
	for _, m := range pool {
		if m.Name == want.Name && m.Kind == want.Kind && len(m.Parameters) == len(want.Parameters) {
			return true
		}
	}
	return false
}
