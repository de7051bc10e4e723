package apimatch

import (
	"testing"

	"github.com/typesig/apisearch/api"
	"github.com/typesig/apisearch/equation"
	"github.com/typesig/apisearch/query"
	"github.com/typesig/apisearch/types"
)

func identityOf(name string) types.LowType {
	return types.NewIdentityType(types.NewPartialIdentity(types.NewDisplayName(name), 0))
}

func alwaysMatch(a, b types.LowType, ctx equation.Context) equation.MatchingResult {
	return equation.Matched(ctx)
}

func alwaysFail(a, b types.LowType, ctx equation.Context) equation.MatchingResult {
	return equation.Failure()
}

func TestNameMatcherZipsSegmentsInnermostFirst(t *testing.T) {
	target := api.Api{
		Name: types.NewDisplayName("length", "List"),
		Signature: api.Signature{
			Kind:      api.ModuleFunctionSignature,
			Function:  types.Member{Name: "length"},
		},
	}
	method := query.Method{
		Kind: query.ByName,
		Names: []query.NameQuery{
			{Expected: "length", MatchMethod: query.StringCompareMethod},
			{Expected: "List", MatchMethod: query.StringCompareMethod},
		},
	}
	ctx := equation.NewContext(query.DefaultOptions())
	r := NameMatcher{}.Test(alwaysMatch, nil, method, target, ctx)
	if !r.IsMatched() {
		t.Fatal("expected name match")
	}
}

func TestNameMatcherRejectsLengthMismatch(t *testing.T) {
	target := api.Api{Name: types.NewDisplayName("length", "List")}
	method := query.Method{
		Kind:  query.ByName,
		Names: []query.NameQuery{{Expected: "length", MatchMethod: query.StringCompareMethod}},
	}
	ctx := equation.NewContext(query.DefaultOptions())
	if (NameMatcher{}).Test(alwaysMatch, nil, method, target, ctx).IsMatched() {
		t.Fatal("expected rejection on length mismatch")
	}
}

func TestNameMatcherPassesThroughWhenNotApplicable(t *testing.T) {
	target := api.Api{Name: types.NewDisplayName("anything")}
	method := query.Method{Kind: query.BySignature}
	ctx := equation.NewContext(query.DefaultOptions())
	if !(NameMatcher{}).Test(alwaysFail, nil, method, target, ctx).IsMatched() {
		t.Fatal("expected pass-through for non-ByName method")
	}
}

func TestSignatureMatcherExtractsModuleFunction(t *testing.T) {
	intType := identityOf("int")
	target := api.Api{
		Signature: api.Signature{
			Kind: api.ModuleFunctionSignature,
			Function: types.Member{
				Name:            "id",
				Parameters:      types.ParameterGroups{{{Type: intType}}},
				ReturnParameter: types.Parameter{Type: intType},
			},
		},
	}
	method := query.Method{
		Kind:      query.BySignature,
		Signature: query.SignatureQuery{Signature: types.NewArrow(intType, intType)},
	}
	ctx := equation.NewContext(query.DefaultOptions())
	r := SignatureMatcher{}.Test(exactLowTypeMatch, nil, method, target, ctx)
	if !r.IsMatched() {
		t.Fatal("expected signature match")
	}
}

func TestSignatureMatcherWildcardAlwaysPasses(t *testing.T) {
	target := api.Api{Signature: api.Signature{Kind: api.ModuleDefinitionSignature}}
	method := query.Method{Kind: query.ByName, HasSignature: true, Signature: query.SignatureQuery{IsWildcard: true}}
	ctx := equation.NewContext(query.DefaultOptions())
	if !(SignatureMatcher{}).Test(alwaysFail, nil, method, target, ctx).IsMatched() {
		t.Fatal("expected wildcard signature to pass regardless of extraction")
	}
}

func TestSignatureMatcherFailsForNonParticipatingKind(t *testing.T) {
	target := api.Api{Signature: api.Signature{Kind: api.ModuleDefinitionSignature}}
	method := query.Method{Kind: query.BySignature, Signature: query.SignatureQuery{Signature: identityOf("int")}}
	ctx := equation.NewContext(query.DefaultOptions())
	if (SignatureMatcher{}).Test(alwaysMatch, nil, method, target, ctx).IsMatched() {
		t.Fatal("expected failure: ModuleDefinitionSignature never participates")
	}
}

func TestExtractSignatureLowTypeInstanceMemberPrependsDeclaringType(t *testing.T) {
	declaring := identityOf("StringBuilder")
	intType := identityOf("int")
	target := api.Api{
		Signature: api.Signature{
			Kind:          api.InstanceMemberSignature,
			DeclaringType: declaring,
			Member: types.Member{
				Name:            "Append",
				Parameters:      types.ParameterGroups{{{Type: intType}}},
				ReturnParameter: types.Parameter{Type: declaring},
			},
		},
	}
	extracted, ok := ExtractSignatureLowType(target)
	if !ok || extracted.Kind != types.ArrowKind || len(extracted.Elements) != 3 {
		t.Fatalf("expected a 3-element arrow [declaring, int, declaring], got %+v ok=%v", extracted, ok)
	}
	if !extracted.Elements[0].Equal(declaring) {
		t.Fatalf("expected declaring type prefixed first")
	}
}

func TestActivePatternMatcherAnyParameterPrefix(t *testing.T) {
	strType := identityOf("string")
	intType := identityOf("int")
	target := api.Api{
		Signature: api.Signature{
			Kind: api.ActivePatternSignature,
			Function: types.Member{
				Parameters:      types.ParameterGroups{{{Type: strType}}, {{Type: intType}}},
				ReturnParameter: types.Parameter{Type: intType},
			},
		},
	}
	method := query.Method{
		Kind: query.ByActivePattern,
		ActivePattern: query.ActivePatternQuery{
			Signature:          types.NewArrow(intType, intType),
			AnyParameterPrefix: true,
		},
	}
	ctx := equation.NewContext(query.DefaultOptions())
	r := ActivePatternMatcher{}.Test(exactLowTypeMatch, nil, method, target, ctx)
	if !r.IsMatched() {
		t.Fatal("expected the any-parameter prefix to absorb the leading string parameter")
	}
}

func TestConstraintSolverRejectsNotSatisfy(t *testing.T) {
	v := types.TypeVariable{Name: "a"}
	def := types.FullTypeDefinition{
		Name:        types.NewDisplayName("Widget"),
		IsValueType: types.NotSatisfy(),
	}
	dict := api.NewDictionary("Test", nil, []types.FullTypeDefinition{def}, nil)
	target := api.Api{
		TypeConstraints: []types.TypeConstraint{
			{Variables: []types.TypeVariable{v}, Constraint: types.Constraint{Kind: types.ValueTypeConstraint}},
		},
	}
	ctx := equation.NewContext(query.DefaultOptions())
	ctx = ctx.BindSubstitution("a", "Widget")
	r := ConstraintSolver{}.Test(alwaysMatch, dict, query.Method{}, target, ctx)
	if r.IsMatched() {
		t.Fatal("expected rejection: Widget is NotSatisfy for IsValueType")
	}
}

func TestConstraintSolverAcceptsUnboundVariable(t *testing.T) {
	target := api.Api{
		TypeConstraints: []types.TypeConstraint{
			{Variables: []types.TypeVariable{{Name: "a"}}, Constraint: types.Constraint{Kind: types.ValueTypeConstraint}},
		},
	}
	ctx := equation.NewContext(query.DefaultOptions())
	if !(ConstraintSolver{}).Test(alwaysMatch, nil, query.Method{}, target, ctx).IsMatched() {
		t.Fatal("expected acceptance: nothing bound yet to check")
	}
}

// exactLowTypeMatch is a minimal stand-in low-type matcher for these
// unit tests: it succeeds exactly on structural equality, with no
// relaxations. apimatch's own tests exercise the extraction and
// composition logic; lowmatch's tests exercise the matcher itself.
func exactLowTypeMatch(a, b types.LowType, ctx equation.Context) equation.MatchingResult {
	if a.Equal(b) {
		return equation.Matched(ctx)
	}
	return equation.Failure()
}
