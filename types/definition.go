package types

// TypeDefinitionKind discriminates the kinds of type definitions a
// catalog can carry.
type TypeDefinitionKind int

const (
	// ClassDefinition is a reference class.
	ClassDefinition TypeDefinitionKind = iota
	// InterfaceDefinition is an interface type.
	InterfaceDefinition
	// PlainTypeDefinition is a value-ish "Type" kind distinct from class/record/union.
	PlainTypeDefinition
	// UnionDefinition is a union (sum) type.
	UnionDefinition
	// RecordDefinition is a record (product) type.
	RecordDefinition
	// EnumerationDefinition is an enumeration type.
	EnumerationDefinition
)

// Accessibility is the visibility of a definition.
type Accessibility int

const (
	// Public is externally visible.
	Public Accessibility = iota
	// Internal is visible within the assembly only.
	Internal
	// Private is visible within the declaring scope only.
	Private
)

// FullTypeDefinition describes a type fully enough to resolve its
// constraint status and member set.
type FullTypeDefinition struct {
	Name              DisplayName
	AssemblyName      string
	Accessibility     Accessibility
	Kind              TypeDefinitionKind
	BaseType          *LowType
	AllInterfaces     []LowType
	GenericParameters []TypeVariable
	Constraints       []TypeConstraint

	InstanceMembers         []Member
	StaticMembers           []Member
	ImplicitInstanceMembers []Member // inherited from BaseType

	SupportsNull          ConstraintStatus
	IsReferenceType       ConstraintStatus
	IsValueType           ConstraintStatus
	HasDefaultConstructor ConstraintStatus
	SupportsEquality      ConstraintStatus
	SupportsComparison    ConstraintStatus
}

// Identity returns the PartialIdentity naming this definition at its
// declared arity.
func (d FullTypeDefinition) Identity() Identity {
	return NewPartialIdentity(d.Name, len(d.GenericParameters))
}

// AllMembers returns instance, static, and implicit instance members
// concatenated, in that order.
func (d FullTypeDefinition) AllMembers() []Member {
	out := make([]Member, 0, len(d.InstanceMembers)+len(d.StaticMembers)+len(d.ImplicitInstanceMembers))
	out = append(out, d.InstanceMembers...)
	out = append(out, d.StaticMembers...)
	out = append(out, d.ImplicitInstanceMembers...)
	return out
}

// TypeAbbreviationDefinition names an abbreviation and the original
// type it transparently stands for.
type TypeAbbreviationDefinition struct {
	Name              DisplayName
	AssemblyName      string
	Accessibility     Accessibility
	GenericParameters []TypeVariable
	Abbreviation      LowType
	Original          LowType
}

// Identity returns the PartialIdentity naming this abbreviation at its
// declared arity.
func (d TypeAbbreviationDefinition) Identity() Identity {
	return NewPartialIdentity(d.Name, len(d.GenericParameters))
}
