package types

// ConstraintKind discriminates the constraint vocabulary attached to
// generic parameters and type definitions.
type ConstraintKind int

const (
	// SubtypeConstraint requires the variable to be a subtype of a type.
	SubtypeConstraint ConstraintKind = iota
	// NullableConstraint requires the variable to support null.
	NullableConstraint
	// MemberConstraint requires the variable to expose a member.
	MemberConstraint
	// DefaultConstructorConstraint requires a parameterless constructor.
	DefaultConstructorConstraint
	// ValueTypeConstraint requires a value type.
	ValueTypeConstraint
	// ReferenceTypeConstraint requires a reference type.
	ReferenceTypeConstraint
	// EnumerationConstraint requires an enumeration type.
	EnumerationConstraint
	// DelegateConstraint requires a delegate type.
	DelegateConstraint
	// UnmanagedConstraint requires an unmanaged type.
	UnmanagedConstraint
	// EqualityConstraint requires structural equality support.
	EqualityConstraint
	// ComparisonConstraint requires structural comparison support.
	ComparisonConstraint
)

// Constraint is one constraint instance: either a subtype bound or a
// member requirement (static or instance), or a parameterless flag
// constraint (nullable, value-type, ...).
type Constraint struct {
	Kind ConstraintKind

	SubtypeOf *LowType // SubtypeConstraint

	Member         *Member // MemberConstraint
	MemberIsStatic bool    // MemberConstraint
}

// TypeConstraint attaches a Constraint to the set of type variables it
// jointly applies to.
type TypeConstraint struct {
	Variables  []TypeVariable
	Constraint Constraint
}

// AppliesTo reports whether the constraint applies to v.
func (tc TypeConstraint) AppliesTo(v TypeVariable) bool {
	for _, tv := range tc.Variables {
		if tv.Equal(v) {
			return true
		}
	}
	return false
}

// ConstraintStatusKind discriminates a precomputed constraint status.
type ConstraintStatusKind int

const (
	// StatusSatisfy means the status holds unconditionally.
	StatusSatisfy ConstraintStatusKind = iota
	// StatusNotSatisfy means the status never holds.
	StatusNotSatisfy
	// StatusDependence means the status reduces to the constraint
	// resolution of the listed variables.
	StatusDependence
)

// ConstraintStatus is one of Satisfy, NotSatisfy, or Dependence(vars).
type ConstraintStatus struct {
	Kind      ConstraintStatusKind
	DependsOn []TypeVariable
}

// Satisfy is the always-true status.
func Satisfy() ConstraintStatus { return ConstraintStatus{Kind: StatusSatisfy} }

// NotSatisfy is the always-false status.
func NotSatisfy() ConstraintStatus { return ConstraintStatus{Kind: StatusNotSatisfy} }

// Dependence defers the status to the constraint resolution of vars.
func Dependence(vars ...TypeVariable) ConstraintStatus {
	return ConstraintStatus{Kind: StatusDependence, DependsOn: vars}
}
