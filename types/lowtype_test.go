package types

import "testing"

func intIdentity() Identity {
	return NewPartialIdentity(NewDisplayName("int"), 0)
}

func TestValidateRejectsShortArrow(t *testing.T) {
	bad := LowType{Kind: ArrowKind, Elements: []LowType{NewIdentityType(intIdentity())}}
	if err := Validate(bad); err == nil {
		t.Error("expected Validate to reject an Arrow with fewer than 2 elements")
	}
}

func TestValidateRejectsShortTuple(t *testing.T) {
	bad := LowType{Kind: TupleKind, Elements: []LowType{NewIdentityType(intIdentity())}}
	if err := Validate(bad); err == nil {
		t.Error("expected Validate to reject a Tuple with fewer than 2 elements")
	}
}

func TestValidateRejectsEmptyGeneric(t *testing.T) {
	ctor := NewIdentityType(NewPartialIdentity(NewDisplayName("list"), 1))
	bad := LowType{Kind: GenericKind, Ctor: &ctor, Elements: nil}
	if err := Validate(bad); err == nil {
		t.Error("expected Validate to reject a Generic with no arguments")
	}
}

func TestValidateRejectsNestedAbbreviation(t *testing.T) {
	inner := NewTypeAbbreviation(NewIdentityType(intIdentity()), NewIdentityType(intIdentity()))
	bad := NewTypeAbbreviation(NewIdentityType(intIdentity()), inner)
	if err := Validate(bad); err == nil {
		t.Error("expected Validate to reject TypeAbbreviation.Original that is itself an abbreviation")
	}
}

func TestValidateAcceptsWellFormed(t *testing.T) {
	arrow := NewArrow(NewIdentityType(intIdentity()), NewIdentityType(intIdentity()))
	if err := Validate(arrow); err != nil {
		t.Errorf("unexpected error for well-formed Arrow: %v", err)
	}
}

func TestLowTypeEqualVariableSourceMatters(t *testing.T) {
	v := TypeVariable{Name: "a"}
	queryVar := NewVariable(QuerySource, v)
	targetVar := NewVariable(TargetSource, v)

	if queryVar.Equal(targetVar) {
		t.Error("variables from different sources must not compare equal")
	}
}

func TestLowTypeEqualStructural(t *testing.T) {
	a := NewArrow(NewIdentityType(intIdentity()), NewIdentityType(intIdentity()))
	b := NewArrow(NewIdentityType(intIdentity()), NewIdentityType(intIdentity()))
	if !a.Equal(b) {
		t.Error("expected structurally identical Arrows to be equal")
	}
}

func TestCompareIsTotalAndSymmetricSafe(t *testing.T) {
	a := Wildcard()
	b := NewVariable(QuerySource, TypeVariable{Name: "a"})
	if Compare(a, b) == 0 {
		t.Error("expected distinct kinds to compare non-zero")
	}
	if Compare(a, b) != -Compare(b, a) {
		t.Error("expected Compare to be antisymmetric")
	}
}
