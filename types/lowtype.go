package types

import (
	"fmt"
	"strings"
)

// LowTypeKind discriminates the variants of the type language.
type LowTypeKind int

const (
	// WildcardKind matches anything.
	WildcardKind LowTypeKind = iota
	// VariableKind is a type variable tagged with its source.
	VariableKind
	// IdentityKind_ is a named type reference.
	IdentityKind_
	// ArrowKind is a curried function type (Elements, length >= 2).
	ArrowKind
	// TupleKind is an ordered tuple (Elements, length >= 2).
	TupleKind
	// GenericKind is an applied type constructor (Ctor + Elements as args, len(Elements) >= 1).
	GenericKind
	// TypeAbbreviationKind preserves both the abbreviation and its original form.
	TypeAbbreviationKind
	// DelegateKind is a callable with a nominal wrapper identity.
	DelegateKind
	// ChoiceKind is a disjunction: matches if any alternative matches.
	ChoiceKind
)

// VariableSource distinguishes variables coming from the query from
// variables coming from a catalog target. Variables from different
// sources never alias by name; they may only be related through the
// equation store.
type VariableSource int

const (
	// QuerySource marks a variable introduced by the query.
	QuerySource VariableSource = iota
	// TargetSource marks a variable introduced by a catalog entry.
	TargetSource
)

// LowType is the type-language AST. It is a single struct with a Kind
// discriminator rather than an interface hierarchy, so matchers switch
// on Kind instead of performing dynamic dispatch.
type LowType struct {
	Kind LowTypeKind

	WildcardTag string // Wildcard: "" means untagged

	VarSource VariableSource // Variable
	Variable  TypeVariable   // Variable

	Identity Identity // Identity

	Elements []LowType // Arrow, Tuple, Choice elements; Generic arguments
	IsStruct bool      // Tuple only: value-type vs reference-type tuple

	// ArrowOptional parallels Elements for ArrowKind only: ArrowOptional[i]
	// is true when that parameter segment came from an optional
	// parameter. It is nil (all non-optional) for arrows not built from
	// a Member's ParameterGroups. The return segment (last element) is
	// always false. This metadata is what the optional-parameter
	// complementation rule checks once parameters have been flattened
	// into Arrow elements.
	ArrowOptional []bool

	Ctor *LowType // Generic: the applied type constructor

	Abbreviation *LowType // TypeAbbreviation
	Original     *LowType // TypeAbbreviation

	DelegateIdentity Identity  // Delegate: the nominal wrapper type
	SignatureTypes   []LowType // Delegate: the underlying Arrow-shaped signature
}

// Wildcard builds an untagged wildcard.
func Wildcard() LowType { return LowType{Kind: WildcardKind} }

// TaggedWildcard builds a wildcard correlated by tag: two wildcards
// sharing a tag must resolve to the same type.
func TaggedWildcard(tag string) LowType { return LowType{Kind: WildcardKind, WildcardTag: tag} }

// NewVariable builds a type variable of the given source.
func NewVariable(source VariableSource, v TypeVariable) LowType {
	return LowType{Kind: VariableKind, VarSource: source, Variable: v}
}

// NewIdentityType builds an Identity-kind LowType.
func NewIdentityType(id Identity) LowType {
	return LowType{Kind: IdentityKind_, Identity: id}
}

// NewArrow builds a curried function type. Per invariant, an Arrow has
// at least two elements; callers with fewer than two segments should
// return the sole element directly instead of wrapping it.
func NewArrow(elements ...LowType) LowType {
	return LowType{Kind: ArrowKind, Elements: elements}
}

// NewArrowWithOptional builds a curried function type annotated with,
// per segment, whether that parameter was optional (the final element,
// the return type, should always be marked false by the caller).
func NewArrowWithOptional(elements []LowType, optional []bool) LowType {
	return LowType{Kind: ArrowKind, Elements: elements, ArrowOptional: optional}
}

// NewTuple builds an ordered tuple.
func NewTuple(isStruct bool, elements ...LowType) LowType {
	return LowType{Kind: TupleKind, Elements: elements, IsStruct: isStruct}
}

// NewGeneric builds an applied type constructor.
func NewGeneric(ctor LowType, args ...LowType) LowType {
	return LowType{Kind: GenericKind, Ctor: &ctor, Elements: args}
}

// NewTypeAbbreviation builds a type-abbreviation pair, preserving both
// the abbreviated and the original form.
func NewTypeAbbreviation(abbreviation, original LowType) LowType {
	return LowType{Kind: TypeAbbreviationKind, Abbreviation: &abbreviation, Original: &original}
}

// NewDelegate builds a delegate type: a nominal wrapper plus its
// underlying callable signature.
func NewDelegate(delegateType Identity, signatureTypes []LowType) LowType {
	return LowType{Kind: DelegateKind, DelegateIdentity: delegateType, SignatureTypes: signatureTypes}
}

// NewChoice builds a disjunction of alternatives.
func NewChoice(alternatives ...LowType) LowType {
	return LowType{Kind: ChoiceKind, Elements: alternatives}
}

// Validate checks the well-formedness invariants: Arrow has >= 2
// elements, Tuple has >= 2 elements, Generic has >= 1 argument, and
// TypeAbbreviation.Original is never itself a TypeAbbreviation. It
// recurses into all substructure. A non-nil result is a data contract
// violation and should abort the search, not merely reject one entry.
func Validate(lt LowType) *FatalError {
	switch lt.Kind {
	case ArrowKind:
		if len(lt.Elements) < 2 {
			return NewFatalError("Arrow must have at least 2 elements", lt)
		}
	case TupleKind:
		if len(lt.Elements) < 2 {
			return NewFatalError("Tuple must have at least 2 elements", lt)
		}
	case GenericKind:
		if len(lt.Elements) < 1 {
			return NewFatalError("Generic must have at least 1 argument", lt)
		}
		if lt.Ctor == nil {
			return NewFatalError("Generic is missing its constructor", lt)
		}
		if err := Validate(*lt.Ctor); err != nil {
			return err
		}
	case TypeAbbreviationKind:
		if lt.Original == nil || lt.Abbreviation == nil {
			return NewFatalError("TypeAbbreviation is missing a form", lt)
		}
		if lt.Original.Kind == TypeAbbreviationKind {
			return NewFatalError("TypeAbbreviation.Original must not itself be a TypeAbbreviation", lt)
		}
		if err := Validate(*lt.Abbreviation); err != nil {
			return err
		}
		if err := Validate(*lt.Original); err != nil {
			return err
		}
		return nil
	case DelegateKind:
		for _, e := range lt.SignatureTypes {
			if err := Validate(e); err != nil {
				return err
			}
		}
		return nil
	}
	for _, e := range lt.Elements {
		if err := Validate(e); err != nil {
			return err
		}
	}
	return nil
}

// Equal is strict structural equality over the LowType AST. Two
// variables are equal only if they share both source and TypeVariable.
func (lt LowType) Equal(other LowType) bool {
	if lt.Kind != other.Kind {
		return false
	}
	switch lt.Kind {
	case WildcardKind:
		return lt.WildcardTag == other.WildcardTag
	case VariableKind:
		return lt.VarSource == other.VarSource && lt.Variable.Equal(other.Variable)
	case IdentityKind_:
		return lt.Identity.Equal(other.Identity)
	case ArrowKind, ChoiceKind:
		return equalSlices(lt.Elements, other.Elements)
	case TupleKind:
		return lt.IsStruct == other.IsStruct && equalSlices(lt.Elements, other.Elements)
	case GenericKind:
		if lt.Ctor == nil || other.Ctor == nil {
			return lt.Ctor == other.Ctor
		}
		return lt.Ctor.Equal(*other.Ctor) && equalSlices(lt.Elements, other.Elements)
	case TypeAbbreviationKind:
		return lt.Abbreviation.Equal(*other.Abbreviation) && lt.Original.Equal(*other.Original)
	case DelegateKind:
		return lt.DelegateIdentity.Equal(other.DelegateIdentity) && equalSlices(lt.SignatureTypes, other.SignatureTypes)
	}
	return false
}

func equalSlices(a, b []LowType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// IsConcrete reports whether lt is not a bare Variable. Used by the
// equation store's "importance" rule, which prefers binding a variable
// to a concrete type over recording variable-to-variable equalities.
func (lt LowType) IsConcrete() bool {
	return lt.Kind != VariableKind
}

// rank orders LowType variants for the equation store's stable pair
// normalization. The exact order is arbitrary but must be total and
// deterministic.
func (lt LowType) rank() int {
	switch lt.Kind {
	case WildcardKind:
		return 0
	case VariableKind:
		return 1
	case IdentityKind_:
		return 2
	case ArrowKind:
		return 3
	case TupleKind:
		return 4
	case GenericKind:
		return 5
	case TypeAbbreviationKind:
		return 6
	case DelegateKind:
		return 7
	case ChoiceKind:
		return 8
	}
	return 9
}

// Compare gives a total, deterministic order over LowType values. It
// is used only to normalize equation pair orientation, never to judge
// semantic equality.
func Compare(a, b LowType) int {
	if a.rank() != b.rank() {
		return a.rank() - b.rank()
	}
	return strings.Compare(a.String(), b.String())
}

// String renders a human-readable (not round-trippable) form, used for
// diagnostics and as the canonical key material for the equation store.
func (lt LowType) String() string {
	switch lt.Kind {
	case WildcardKind:
		if lt.WildcardTag != "" {
			return "?" + lt.WildcardTag
		}
		return "?"
	case VariableKind:
		prefix := "'"
		if lt.VarSource == TargetSource {
			prefix = "'t"
		}
		return prefix + lt.Variable.Name
	case IdentityKind_:
		return lt.Identity.Name.String()
	case ArrowKind:
		parts := make([]string, len(lt.Elements))
		for i, e := range lt.Elements {
			parts[i] = e.String()
		}
		return strings.Join(parts, " -> ")
	case TupleKind:
		parts := make([]string, len(lt.Elements))
		for i, e := range lt.Elements {
			parts[i] = e.String()
		}
		sep := " * "
		if lt.IsStruct {
			sep = " ** "
		}
		return "(" + strings.Join(parts, sep) + ")"
	case GenericKind:
		parts := make([]string, len(lt.Elements))
		for i, e := range lt.Elements {
			parts[i] = e.String()
		}
		ctor := "?"
		if lt.Ctor != nil {
			ctor = lt.Ctor.String()
		}
		return fmt.Sprintf("%s<%s>", ctor, strings.Join(parts, ", "))
	case TypeAbbreviationKind:
		return lt.Abbreviation.String()
	case DelegateKind:
		return lt.DelegateIdentity.Name.String()
	case ChoiceKind:
		parts := make([]string, len(lt.Elements))
		for i, e := range lt.Elements {
			parts[i] = e.String()
		}
		return "(" + strings.Join(parts, " | ") + ")"
	}
	return "<invalid>"
}
