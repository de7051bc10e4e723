package equation

import (
	"testing"

	"github.com/typesig/apisearch/types"
)

func intType() types.LowType {
	return types.NewIdentityType(types.NewPartialIdentity(types.NewDisplayName("int"), 0))
}

func stringType() types.LowType {
	return types.NewIdentityType(types.NewPartialIdentity(types.NewDisplayName("string"), 0))
}

func varA() types.LowType {
	return types.NewVariable(types.QuerySource, types.TypeVariable{Name: "a"})
}

func TestTryAddEqualitySelfIsTrivial(t *testing.T) {
	var eq Equations
	next, ok := eq.TryAddEquality(intType(), intType())
	if !ok {
		t.Fatal("expected self-equality to succeed")
	}
	if len(next.Equalities()) != 0 {
		t.Error("expected self-equality to add no new fact")
	}
}

func TestTryAddEqualityThenContradictingInequalityFails(t *testing.T) {
	var eq Equations
	eq, ok := eq.TryAddEquality(varA(), intType())
	if !ok {
		t.Fatal("expected equality to succeed")
	}
	if _, ok := eq.AddInequality(varA(), intType()); ok {
		t.Error("expected inequality to fail once the pair is already an equality")
	}
}

func TestAddInequalityThenContradictingEqualityFails(t *testing.T) {
	var eq Equations
	eq, ok := eq.AddInequality(varA(), intType())
	if !ok {
		t.Fatal("expected inequality to succeed")
	}
	if _, ok := eq.TryAddEquality(varA(), intType()); ok {
		t.Error("expected equality to fail once the pair is already an inequality")
	}
}

func TestContradictionThroughTransitiveClosure(t *testing.T) {
	var eq Equations
	b := types.NewVariable(types.TargetSource, types.TypeVariable{Name: "b"})

	eq, ok := eq.AddInequality(varA(), intType())
	if !ok {
		t.Fatal("setup: inequality should succeed")
	}
	eq, ok = eq.TryAddEquality(varA(), b)
	if !ok {
		t.Fatal("setup: equality should succeed")
	}
	// b is now transitively linked to a, which is forced unequal to int.
	if _, ok := eq.TryAddEquality(b, intType()); ok {
		t.Error("expected transitive contradiction to be detected")
	}
}

func TestFindEqualitiesReturnsTouchingPairs(t *testing.T) {
	var eq Equations
	eq, _ = eq.TryAddEquality(varA(), intType())
	eq, _ = eq.TryAddEquality(varA(), stringType())

	found := eq.FindEqualities(varA())
	if len(found) != 2 {
		t.Errorf("expected 2 equalities touching the variable, got %d", len(found))
	}
}

func TestNormalizeOrderIndependent(t *testing.T) {
	var eq1, eq2 Equations
	eq1, ok1 := eq1.TryAddEquality(varA(), intType())
	eq2, ok2 := eq2.TryAddEquality(intType(), varA())
	if !ok1 || !ok2 {
		t.Fatal("expected both orderings to succeed")
	}
	if len(eq1.Equalities()) != 1 || len(eq2.Equalities()) != 1 {
		t.Fatal("expected exactly one equality recorded")
	}
	if !eq1.Equalities()[0].A.Equal(eq2.Equalities()[0].A) || !eq1.Equalities()[0].B.Equal(eq2.Equalities()[0].B) {
		t.Error("expected (a,b) and (b,a) to normalize to the same stored pair")
	}
}
