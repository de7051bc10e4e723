package query

import (
	"regexp"

	"github.com/typesig/apisearch/types"
)

// MethodKind discriminates how a query selects candidate APIs.
type MethodKind int

const (
	// ByName selects by one or more name segments, optionally with a
	// trailing signature constraint.
	ByName MethodKind = iota
	// BySignature selects purely by type-structural shape.
	BySignature
	// ByActivePattern selects by active-pattern arrow shape.
	ByActivePattern
	// ByComputationExpression selects a computation-expression builder
	// and the APIs usable within it.
	ByComputationExpression
)

// NameMatchMethod discriminates how a single name segment is compared.
type NameMatchMethod int

const (
	// StringCompareMethod compares the expected string literally.
	StringCompareMethod NameMatchMethod = iota
	// RegexMethod compares against a precompiled regular expression.
	RegexMethod
	// AnyMethod matches any name at that segment.
	AnyMethod
)

// NameQuery is one segment of a ByName query.
type NameQuery struct {
	Expected           string
	GenericParameters  []types.TypeVariable
	HasGenericArity    bool // whether arity was specified at all
	MatchMethod        NameMatchMethod
	CompiledRegex      *regexp.Regexp
}

// SignatureQuery is either a bare wildcard or a concrete LowType shape.
type SignatureQuery struct {
	IsWildcard bool
	Signature  types.LowType
}

// ActivePatternQuery describes the arrow shape an active pattern query
// must satisfy. AnyParameterPrefix marks a leading "AnyParameter"
// wildcard that absorbs any number of leading parameters.
type ActivePatternQuery struct {
	Signature          types.LowType
	AnyParameterPrefix bool
}

// ComputationExpressionQuery selects a builder by the computation type
// it must support and the syntactic forms it must provide. An empty
// Syntaxes set means "any non-empty builder".
type ComputationExpressionQuery struct {
	Type     types.LowType
	Syntaxes map[string]bool
}

// Method is the tagged union of query selection strategies.
type Method struct {
	Kind MethodKind

	Names        []NameQuery    // ByName
	HasSignature bool           // ByName: whether a trailing signature was supplied
	Signature    SignatureQuery // ByName (trailing, if HasSignature) or BySignature

	ActivePattern ActivePatternQuery // ByActivePattern

	ComputationExpression ComputationExpressionQuery // ByComputationExpression
}

// HasSignaturePortion reports whether this method carries a signature
// constraint to test with the low-type matcher (always true for
// BySignature; true for ByName only when a trailing signature was
// supplied in the query text).
func (m Method) HasSignaturePortion() bool {
	switch m.Kind {
	case BySignature:
		return true
	case ByName:
		return m.HasSignature
	}
	return false
}

// Query is the fully abstract query surface: the original text plus
// the parsed selection method.
type Query struct {
	OriginalString string
	Method         Method
}
