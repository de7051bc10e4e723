package api

import "github.com/typesig/apisearch/types"

// SignatureKind discriminates the shapes a catalog entry's signature
// can take.
type SignatureKind int

const (
	// ModuleValueSignature is a bare module-level value.
	ModuleValueSignature SignatureKind = iota
	// ModuleFunctionSignature is a module-level function.
	ModuleFunctionSignature
	// ActivePatternSignature is a full or partial active pattern.
	ActivePatternSignature
	// InstanceMemberSignature is an instance member of a declaring type.
	InstanceMemberSignature
	// StaticMemberSignature is a static member of a declaring type.
	StaticMemberSignature
	// ConstructorSignature is a constructor of a declaring type.
	ConstructorSignature
	// ModuleDefinitionSignature names a module itself.
	ModuleDefinitionSignature
	// FullTypeDefinitionSignature wraps a full type definition.
	FullTypeDefinitionSignature
	// TypeAbbreviationSignature wraps a type-abbreviation definition.
	TypeAbbreviationSignature
	// TypeExtensionSignature extends an existing type with a member.
	TypeExtensionSignature
	// ExtensionMemberSignature is a standalone extension member.
	ExtensionMemberSignature
	// UnionCaseSignature is a union case constructor.
	UnionCaseSignature
	// ComputationExpressionBuilderSignature wraps a builder description.
	ComputationExpressionBuilderSignature
)

// ComputationExpressionBuilder describes a builder's computation type
// and the syntactic forms (let!, for, return, ...) it supports.
type ComputationExpressionBuilder struct {
	BuilderType                types.LowType
	ComputationExpressionTypes []types.LowType
	Syntaxes                   map[string]bool
}

// SupportsSyntaxes reports whether this builder's syntax set is a
// superset of required, where an empty required set means "any
// non-empty builder".
func (b ComputationExpressionBuilder) SupportsSyntaxes(required map[string]bool) bool {
	if len(required) == 0 {
		return len(b.Syntaxes) > 0
	}
	for s := range required {
		if !b.Syntaxes[s] {
			return false
		}
	}
	return true
}

// Signature is the tagged union of catalog entry shapes. As with
// LowType, it is a single struct carrying a Kind discriminator rather
// than an interface hierarchy.
type Signature struct {
	Kind SignatureKind

	ValueType types.LowType // ModuleValueSignature

	Function types.Member // ModuleFunctionSignature, ActivePatternSignature

	IsPartialActivePattern bool // ActivePatternSignature

	DeclaringType types.LowType // InstanceMember/StaticMember/Constructor
	Member        types.Member  // InstanceMember/StaticMember/Constructor/ExtensionMember

	ModuleName types.DisplayName // ModuleDefinitionSignature

	TypeDefinition types.FullTypeDefinition // FullTypeDefinitionSignature

	TypeAbbreviation types.TypeAbbreviationDefinition // TypeAbbreviationSignature

	ExistingType        types.LowType // TypeExtensionSignature
	IsInstanceExtension bool          // TypeExtensionSignature: instance vs static member

	UnionCaseFields    []types.Parameter // UnionCaseSignature
	DeclaringUnionType types.LowType     // UnionCaseSignature

	Builder ComputationExpressionBuilder // ComputationExpressionBuilderSignature
}
