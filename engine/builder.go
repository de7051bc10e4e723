package engine

import (
	"iter"

	"github.com/typesig/apisearch/api"
	"github.com/typesig/apisearch/apimatch"
	"github.com/typesig/apisearch/equation"
	"github.com/typesig/apisearch/query"
	"github.com/typesig/apisearch/types"
)

// searchComputationExpression implements a two-phase
// computation-expression search. Phase 1 discovers
// every builder whose computation type unifies with the query's type
// and whose syntax set is a superset of the query's. Phase 2 forms a
// Choice over the matched builders' own (query-unified) computation
// types and emits every API in every dictionary whose extracted target
// unifies against that Choice. The output sequence is the builders
// first (each at distance 0, as matched in phase 1), then the
// applicable APIs.
func searchComputationExpression(dicts []*api.Dictionary, opts query.Options, low apimatch.LowTypeMatcher, pipeline apimatch.Pipeline, q query.Query, initial equation.Context) iter.Seq[Result] {
	ceq := q.Method.ComputationExpression

	var builderResults []Result
	var usageTypes []types.LowType
	for _, d := range dicts {
		for _, item := range d.Apis {
			if item.Signature.Kind != api.ComputationExpressionBuilderSignature {
				continue
			}
			builder := item.Signature.Builder
			if !builder.SupportsSyntaxes(ceq.Syntaxes) {
				continue
			}
			var matchedType types.LowType
			matched := false
			for _, ceType := range builder.ComputationExpressionTypes {
				if res := low(ceq.Type, ceType, initial); res.IsMatched() {
					matched, matchedType = true, ceType
					break
				}
			}
			if !matched {
				continue
			}
			// Builders are reported at distance 0 regardless of how
			// lossy their phase-1 unification was: the distance that
			// matters for ranking is the one each phase-2 API accrues
			// against the builder's computation type, not the
			// builder's own match against the query.
			builderResults = append(builderResults, Result{Api: item, AssemblyName: d.AssemblyName, Distance: 0})
			usageTypes = append(usageTypes, matchedType)
		}
	}

	// Phase 2 tests every API's extracted target against the matched
	// builders' own computation types, not their BuilderType: a "let!"
	// call inside the expression unifies against async<'a> (the monadic
	// type the builder's Bind/Return operate over), never against the
	// builder object's own nominal type.
	choice := builderChoice(usageTypes)

	return func(yield func(Result) bool) {
		for _, r := range builderResults {
			if !yield(r) {
				return
			}
		}
		if choice.Kind == types.WildcardKind {
			return // no builder matched phase 1; nothing can be applicable in phase 2.
		}
		for _, d := range dicts {
			for _, item := range d.Apis {
				target, ok := extractBuilderUsageTarget(item)
				if !ok {
					continue
				}
				res := low(target, choice, initial)
				ctx, matched := res.Context()
				if !matched {
					continue
				}
				if !yield(Result{Api: item, AssemblyName: d.AssemblyName, Distance: ctx.Distance}) {
					return
				}
			}
		}
	}
}

// builderChoice wraps every matched builder's computation type as a
// single Choice, or reports no-match (an untagged Wildcard is never
// produced by a real builder, so it is an unambiguous empty-phase-1
// sentinel) when nothing survived phase 1.
func builderChoice(usageTypes []types.LowType) types.LowType {
	if len(usageTypes) == 0 {
		return types.LowType{}
	}
	if len(usageTypes) == 1 {
		return usageTypes[0]
	}
	return types.NewChoice(usageTypes...)
}

// extractBuilderUsageTarget implements phase 2's
// signature-variant extraction: a bare ModuleValue contributes its own
// type, a ModuleValue wrapping an abbreviated arrow contributes the
// arrow's last element, and a ModuleFunction contributes the type of
// its final curried segment's first parameter. Every other signature
// variant does not participate.
func extractBuilderUsageTarget(a api.Api) (types.LowType, bool) {
	sig := a.Signature
	switch sig.Kind {
	case api.ModuleValueSignature:
		t := sig.ValueType
		if t.Kind == types.TypeAbbreviationKind && t.Original != nil && t.Original.Kind == types.ArrowKind {
			elems := t.Original.Elements
			return elems[len(elems)-1], true
		}
		return t, true
	case api.ModuleFunctionSignature:
		fn := sig.Function.SignatureLowType()
		if fn.Kind != types.ArrowKind || len(fn.Elements) < 2 {
			return types.LowType{}, false
		}
		lastSegment := fn.Elements[len(fn.Elements)-2]
		if lastSegment.Kind == types.TupleKind && len(lastSegment.Elements) > 0 {
			return lastSegment.Elements[0], true
		}
		return lastSegment, true
	}
	return types.LowType{}, false
}
