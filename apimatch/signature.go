package apimatch

import (
	"github.com/typesig/apisearch/api"
	"github.com/typesig/apisearch/equation"
	"github.com/typesig/apisearch/query"
	"github.com/typesig/apisearch/types"
)

// SignatureMatcher applies when the query method is ByName with a
// trailing signature portion, or BySignature outright. It extracts a
// matchable LowType from the target's ApiSignature and delegates to
// the low-type matcher.
type SignatureMatcher struct{}

// Name identifies this matcher for diagnostics.
func (SignatureMatcher) Name() string { return "signature" }

// Test implements Matcher.
func (SignatureMatcher) Test(low LowTypeMatcher, dict *api.Dictionary, method query.Method, target api.Api, ctx equation.Context) equation.MatchingResult {
	if !method.HasSignaturePortion() {
		return equation.Matched(ctx)
	}
	if method.Signature.IsWildcard {
		return equation.Matched(ctx)
	}
	extracted, ok := ExtractSignatureLowType(target)
	if !ok {
		return equation.Failure()
	}
	return low(method.Signature.Signature, extracted, ctx)
}

// ExtractSignatureLowType maps an ApiSignature to the LowType it
// contributes for signature matching. It reports false for signature
// variants that do not participate in signature matching.
func ExtractSignatureLowType(a api.Api) (types.LowType, bool) {
	sig := a.Signature
	switch sig.Kind {
	case api.ModuleValueSignature:
		return sig.ValueType, true
	case api.ModuleFunctionSignature, api.ActivePatternSignature:
		return sig.Function.SignatureLowType(), true
	case api.InstanceMemberSignature:
		return prefixedMemberSignature(sig.DeclaringType, sig.Member), true
	case api.StaticMemberSignature, api.ConstructorSignature, api.ExtensionMemberSignature:
		return sig.Member.SignatureLowType(), true
	case api.TypeExtensionSignature:
		if sig.IsInstanceExtension {
			return prefixedMemberSignature(sig.ExistingType, sig.Member), true
		}
		return sig.Member.SignatureLowType(), true
	case api.UnionCaseSignature:
		return unionCaseSignature(sig), true
	}
	return types.LowType{}, false
}

// prefixedMemberSignature builds the Arrow for an instance member (or
// an instance-mode type extension): the declaring type, then the
// member's own parameters, then its return type.
func prefixedMemberSignature(prefix types.LowType, m types.Member) types.LowType {
	sig := m.SignatureLowType()
	if sig.Kind != types.ArrowKind {
		return types.NewArrowWithOptional([]types.LowType{prefix, sig}, []bool{false, false})
	}
	elements := append([]types.LowType{prefix}, sig.Elements...)
	optional := make([]bool, len(elements))
	if sig.ArrowOptional != nil {
		copy(optional[1:], sig.ArrowOptional)
	}
	return types.NewArrowWithOptional(elements, optional)
}

// unionCaseSignature builds the arrow from a union case's fields to its
// declaring type, or the bare declaring type for a nullary case.
func unionCaseSignature(sig api.Signature) types.LowType {
	if len(sig.UnionCaseFields) == 0 {
		return sig.DeclaringUnionType
	}
	elements := make([]types.LowType, 0, len(sig.UnionCaseFields)+1)
	for _, f := range sig.UnionCaseFields {
		elements = append(elements, f.Type)
	}
	elements = append(elements, sig.DeclaringUnionType)
	if len(elements) == 1 {
		return elements[0]
	}
	return types.NewArrow(elements...)
}
