package lowmatch

import (
	"github.com/typesig/apisearch/equation"
	"github.com/typesig/apisearch/types"
)

// testDelegate implements dispatch rule 10. Two delegates match when
// their nominal wrapper identities match and their underlying
// signatures zip pairwise. A delegate matched against a structural
// (non-delegate) signature unwraps to its underlying callable shape
// first, charged the same +1 cross-style relaxation used elsewhere.
func testDelegate(a, b types.LowType, ctx equation.Context) equation.MatchingResult {
	switch {
	case a.Kind == types.DelegateKind && b.Kind == types.DelegateKind:
		return testDelegateDelegate(a, b, ctx)
	case a.Kind == types.DelegateKind:
		return testDelegateSignature(a, b, ctx)
	default:
		return testDelegateSignature(b, a, ctx)
	}
}

func testDelegateDelegate(a, b types.LowType, ctx equation.Context) equation.MatchingResult {
	result := testIdentity(types.NewIdentityType(a.DelegateIdentity), types.NewIdentityType(b.DelegateIdentity), ctx)
	return result.Then(func(c equation.Context) equation.MatchingResult {
		if len(a.SignatureTypes) != len(b.SignatureTypes) {
			return equation.Failure()
		}
		return zipArrow(a.SignatureTypes, b.SignatureTypes, c)
	})
}

func testDelegateSignature(delegate, other types.LowType, ctx equation.Context) equation.MatchingResult {
	result := Test(delegateShape(delegate), other, ctx)
	return result.Then(func(c equation.Context) equation.MatchingResult {
		return equation.Matched(c.WithDistance(1))
	})
}

func delegateShape(delegate types.LowType) types.LowType {
	if len(delegate.SignatureTypes) == 1 {
		return delegate.SignatureTypes[0]
	}
	return types.NewArrow(delegate.SignatureTypes...)
}
