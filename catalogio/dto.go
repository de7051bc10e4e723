package catalogio

import (
	"fmt"
	"strings"

	"github.com/typesig/apisearch/types"
)

// resolveName splits a dotted, outermost-first LoadingName ("List.length")
// into an innermost-first types.DisplayName, the form types.NewDisplayName
// builds from and (DisplayName).String renders back to.
func resolveName(raw string) types.DisplayName {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ".")
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return types.NewDisplayName(parts...)
}

func resolveVariables(names []string) []types.TypeVariable {
	if names == nil {
		return nil
	}
	out := make([]types.TypeVariable, len(names))
	for i, n := range names {
		out[i] = types.TypeVariable{Name: n}
	}
	return out
}

// IdentityDTO is a reference to a named type: a LoadingName plus its
// declared generic arity and, when set, the assembly qualifying it.
type IdentityDTO struct {
	Name     string `json:"name"`
	Arity    int    `json:"arity,omitempty"`
	Assembly string `json:"assembly,omitempty"`
}

func (d IdentityDTO) toIdentity() types.Identity {
	name := resolveName(d.Name)
	if d.Assembly != "" {
		return types.NewFullIdentity(d.Assembly, name, d.Arity)
	}
	return types.NewPartialIdentity(name, d.Arity)
}

// LowTypeDTO is the JSON shape of types.LowType: a Kind discriminator
// plus the fields relevant to that kind. Unused fields are left zero.
type LowTypeDTO struct {
	Kind string `json:"kind"`

	Tag string `json:"tag,omitempty"` // wildcard

	Source  string `json:"source,omitempty"`  // var: "query" | "target"
	VarName string `json:"var_name,omitempty"` // var
	Solved  bool   `json:"solve_at_compile_time,omitempty"`

	Identity *IdentityDTO `json:"identity,omitempty"` // id, delegate

	Elements []LowTypeDTO `json:"elements,omitempty"`         // arrow, tuple, choice; generic args
	Optional []bool       `json:"optional,omitempty"`         // arrow
	IsStruct bool         `json:"is_struct,omitempty"`        // tuple

	Ctor *LowTypeDTO `json:"ctor,omitempty"` // generic

	Abbreviation *LowTypeDTO `json:"abbreviation,omitempty"` // abbrev
	Original     *LowTypeDTO `json:"original,omitempty"`     // abbrev

	Signature []LowTypeDTO `json:"signature,omitempty"` // delegate
}

func (d LowTypeDTO) toLowType() (types.LowType, error) {
	switch d.Kind {
	case "", "wildcard":
		return types.TaggedWildcard(d.Tag), nil
	case "var":
		source := types.QuerySource
		if d.Source == "target" {
			source = types.TargetSource
		}
		return types.NewVariable(source, types.TypeVariable{Name: d.VarName, IsSolveAtCompileTime: d.Solved}), nil
	case "id":
		if d.Identity == nil {
			return types.LowType{}, fmt.Errorf("catalogio: id low type missing identity")
		}
		if d.Identity.Name == "" {
			return types.LowType{}, types.ErrLoadingNameUnresolved
		}
		return types.NewIdentityType(d.Identity.toIdentity()), nil
	case "arrow":
		elems, err := toLowTypeSlice(d.Elements)
		if err != nil {
			return types.LowType{}, err
		}
		if d.Optional != nil {
			return types.NewArrowWithOptional(elems, d.Optional), nil
		}
		return types.NewArrow(elems...), nil
	case "tuple":
		elems, err := toLowTypeSlice(d.Elements)
		if err != nil {
			return types.LowType{}, err
		}
		return types.NewTuple(d.IsStruct, elems...), nil
	case "generic":
		if d.Ctor == nil {
			return types.LowType{}, fmt.Errorf("catalogio: generic low type missing ctor")
		}
		ctor, err := d.Ctor.toLowType()
		if err != nil {
			return types.LowType{}, err
		}
		args, err := toLowTypeSlice(d.Elements)
		if err != nil {
			return types.LowType{}, err
		}
		return types.NewGeneric(ctor, args...), nil
	case "abbrev":
		if d.Abbreviation == nil || d.Original == nil {
			return types.LowType{}, fmt.Errorf("catalogio: abbreviation low type missing a form")
		}
		abbrev, err := d.Abbreviation.toLowType()
		if err != nil {
			return types.LowType{}, err
		}
		orig, err := d.Original.toLowType()
		if err != nil {
			return types.LowType{}, err
		}
		return types.NewTypeAbbreviation(abbrev, orig), nil
	case "delegate":
		if d.Identity == nil {
			return types.LowType{}, fmt.Errorf("catalogio: delegate low type missing identity")
		}
		if d.Identity.Name == "" {
			return types.LowType{}, types.ErrLoadingNameUnresolved
		}
		sig, err := toLowTypeSlice(d.Signature)
		if err != nil {
			return types.LowType{}, err
		}
		return types.NewDelegate(d.Identity.toIdentity(), sig), nil
	case "choice":
		elems, err := toLowTypeSlice(d.Elements)
		if err != nil {
			return types.LowType{}, err
		}
		return types.NewChoice(elems...), nil
	}
	return types.LowType{}, fmt.Errorf("catalogio: unknown low type kind %q", d.Kind)
}

func toLowTypeSlice(ds []LowTypeDTO) ([]types.LowType, error) {
	out := make([]types.LowType, len(ds))
	for i, d := range ds {
		lt, err := d.toLowType()
		if err != nil {
			return nil, err
		}
		out[i] = lt
	}
	return out, nil
}

// ParameterDTO is one member/function parameter.
type ParameterDTO struct {
	Type     LowTypeDTO `json:"type"`
	Name     string     `json:"name,omitempty"`
	Optional bool       `json:"optional,omitempty"`
}

func (d ParameterDTO) toParameter() (types.Parameter, error) {
	t, err := d.Type.toLowType()
	if err != nil {
		return types.Parameter{}, err
	}
	return types.Parameter{Type: t, Name: d.Name, IsOptional: d.Optional}, nil
}

func toParameterGroups(gs [][]ParameterDTO) (types.ParameterGroups, error) {
	if gs == nil {
		return nil, nil
	}
	out := make(types.ParameterGroups, len(gs))
	for i, g := range gs {
		row := make([]types.Parameter, len(g))
		for j, p := range g {
			param, err := p.toParameter()
			if err != nil {
				return nil, err
			}
			row[j] = param
		}
		out[i] = row
	}
	return out, nil
}

var memberKindNames = map[string]types.MemberKind{
	"method":  types.MethodMember,
	"get":     types.PropertyGetMember,
	"set":     types.PropertySetMember,
	"getset":  types.PropertyGetSetMember,
	"field":   types.FieldMember,
}

// MemberDTO is the JSON shape of types.Member.
type MemberDTO struct {
	Name              string           `json:"name,omitempty"`
	Kind              string           `json:"member_kind,omitempty"`
	GenericParameters []string         `json:"generic_parameters,omitempty"`
	Parameters        [][]ParameterDTO `json:"parameters,omitempty"`
	Return            ParameterDTO     `json:"return"`
}

func (d MemberDTO) toMember() (types.Member, error) {
	kind, ok := memberKindNames[d.Kind]
	if d.Kind != "" && !ok {
		return types.Member{}, fmt.Errorf("catalogio: unknown member kind %q", d.Kind)
	}
	groups, err := toParameterGroups(d.Parameters)
	if err != nil {
		return types.Member{}, err
	}
	ret, err := d.Return.toParameter()
	if err != nil {
		return types.Member{}, err
	}
	return types.Member{
		Name:              d.Name,
		Kind:              kind,
		GenericParameters: resolveVariables(d.GenericParameters),
		Parameters:        groups,
		ReturnParameter:   ret,
	}, nil
}

var constraintKindNames = map[string]types.ConstraintKind{
	"subtype":         types.SubtypeConstraint,
	"nullable":        types.NullableConstraint,
	"member":          types.MemberConstraint,
	"default_ctor":    types.DefaultConstructorConstraint,
	"value_type":      types.ValueTypeConstraint,
	"reference_type":  types.ReferenceTypeConstraint,
	"enumeration":     types.EnumerationConstraint,
	"delegate":        types.DelegateConstraint,
	"unmanaged":       types.UnmanagedConstraint,
	"equality":        types.EqualityConstraint,
	"comparison":      types.ComparisonConstraint,
}

// ConstraintDTO is the JSON shape of types.TypeConstraint.
type ConstraintDTO struct {
	Variables    []string    `json:"variables"`
	Kind         string      `json:"constraint_kind"`
	SubtypeOf    *LowTypeDTO `json:"subtype_of,omitempty"`
	Member       *MemberDTO  `json:"member,omitempty"`
	MemberStatic bool        `json:"member_static,omitempty"`
}

func (d ConstraintDTO) toTypeConstraint() (types.TypeConstraint, error) {
	kind, ok := constraintKindNames[d.Kind]
	if !ok {
		return types.TypeConstraint{}, fmt.Errorf("catalogio: unknown constraint kind %q", d.Kind)
	}
	c := types.Constraint{Kind: kind, MemberIsStatic: d.MemberStatic}
	if d.SubtypeOf != nil {
		lt, err := d.SubtypeOf.toLowType()
		if err != nil {
			return types.TypeConstraint{}, err
		}
		c.SubtypeOf = &lt
	}
	if d.Member != nil {
		m, err := d.Member.toMember()
		if err != nil {
			return types.TypeConstraint{}, err
		}
		c.Member = &m
	}
	return types.TypeConstraint{Variables: resolveVariables(d.Variables), Constraint: c}, nil
}

func toTypeConstraints(cs []ConstraintDTO) ([]types.TypeConstraint, error) {
	if cs == nil {
		return nil, nil
	}
	out := make([]types.TypeConstraint, len(cs))
	for i, c := range cs {
		tc, err := c.toTypeConstraint()
		if err != nil {
			return nil, err
		}
		out[i] = tc
	}
	return out, nil
}
