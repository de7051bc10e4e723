package api

import (
	"testing"

	"github.com/typesig/apisearch/types"
)

func TestFindTypeDefinitionByNameAndArity(t *testing.T) {
	def := types.FullTypeDefinition{
		Name:              types.NewDisplayName("list"),
		GenericParameters: []types.TypeVariable{{Name: "a"}},
	}
	dict := NewDictionary("test", nil, []types.FullTypeDefinition{def}, nil)

	found, ok := dict.FindTypeDefinition(types.NewDisplayName("list"), 1)
	if !ok {
		t.Fatal("expected to find the type definition")
	}
	if !found.Name.Equal(def.Name) {
		t.Error("expected the found definition to match by name")
	}

	if _, ok := dict.FindTypeDefinition(types.NewDisplayName("list"), 2); ok {
		t.Error("expected arity mismatch to miss")
	}
}

func TestConstraintsForFiltersByVariable(t *testing.T) {
	a := types.TypeVariable{Name: "a"}
	b := types.TypeVariable{Name: "b"}
	api := Api{
		TypeConstraints: []types.TypeConstraint{
			{Variables: []types.TypeVariable{a}, Constraint: types.Constraint{Kind: types.EqualityConstraint}},
			{Variables: []types.TypeVariable{b}, Constraint: types.Constraint{Kind: types.ComparisonConstraint}},
		},
	}

	found := api.ConstraintsFor(a)
	if len(found) != 1 || found[0].Constraint.Kind != types.EqualityConstraint {
		t.Errorf("expected exactly the equality constraint on 'a', got %+v", found)
	}
}
