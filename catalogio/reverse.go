package catalogio

import (
	"sort"

	"github.com/typesig/apisearch/api"
	"github.com/typesig/apisearch/types"
)

// unresolveName is the inverse of resolveName: it renders an
// innermost-first DisplayName back to the dotted, outermost-first
// LoadingName form the JSON/binary wire format carries.
func unresolveName(name types.DisplayName) string {
	return name.String()
}

func unresolveVariables(vs []types.TypeVariable) []string {
	if vs == nil {
		return nil
	}
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Name
	}
	return out
}

func identityToDTO(id types.Identity) IdentityDTO {
	d := IdentityDTO{Name: unresolveName(id.Name), Arity: id.GenericParameterCount}
	if id.Kind == types.FullIdentityKind {
		d.Assembly = id.AssemblyName
	}
	return d
}

var lowTypeKindNames = map[types.LowTypeKind]string{
	types.WildcardKind:         "wildcard",
	types.VariableKind:         "var",
	types.IdentityKind_:        "id",
	types.ArrowKind:            "arrow",
	types.TupleKind:            "tuple",
	types.GenericKind:          "generic",
	types.TypeAbbreviationKind: "abbrev",
	types.DelegateKind:         "delegate",
	types.ChoiceKind:           "choice",
}

func lowTypeToDTO(lt types.LowType) LowTypeDTO {
	d := LowTypeDTO{Kind: lowTypeKindNames[lt.Kind]}
	switch lt.Kind {
	case types.WildcardKind:
		d.Tag = lt.WildcardTag
	case types.VariableKind:
		d.VarName = lt.Variable.Name
		d.Solved = lt.Variable.IsSolveAtCompileTime
		if lt.VarSource == types.TargetSource {
			d.Source = "target"
		} else {
			d.Source = "query"
		}
	case types.IdentityKind_:
		id := identityToDTO(lt.Identity)
		d.Identity = &id
	case types.ArrowKind:
		d.Elements = lowTypeSliceToDTO(lt.Elements)
		d.Optional = lt.ArrowOptional
	case types.TupleKind:
		d.Elements = lowTypeSliceToDTO(lt.Elements)
		d.IsStruct = lt.IsStruct
	case types.GenericKind:
		d.Elements = lowTypeSliceToDTO(lt.Elements)
		if lt.Ctor != nil {
			ctor := lowTypeToDTO(*lt.Ctor)
			d.Ctor = &ctor
		}
	case types.TypeAbbreviationKind:
		if lt.Abbreviation != nil {
			a := lowTypeToDTO(*lt.Abbreviation)
			d.Abbreviation = &a
		}
		if lt.Original != nil {
			o := lowTypeToDTO(*lt.Original)
			d.Original = &o
		}
	case types.DelegateKind:
		id := identityToDTO(lt.DelegateIdentity)
		d.Identity = &id
		d.Signature = lowTypeSliceToDTO(lt.SignatureTypes)
	case types.ChoiceKind:
		d.Elements = lowTypeSliceToDTO(lt.Elements)
	}
	return d
}

func lowTypeSliceToDTO(lts []types.LowType) []LowTypeDTO {
	if lts == nil {
		return nil
	}
	out := make([]LowTypeDTO, len(lts))
	for i, lt := range lts {
		out[i] = lowTypeToDTO(lt)
	}
	return out
}

func parameterToDTO(p types.Parameter) ParameterDTO {
	return ParameterDTO{Type: lowTypeToDTO(p.Type), Name: p.Name, Optional: p.IsOptional}
}

func parameterGroupsToDTO(g types.ParameterGroups) [][]ParameterDTO {
	if g == nil {
		return nil
	}
	out := make([][]ParameterDTO, len(g))
	for i, group := range g {
		row := make([]ParameterDTO, len(group))
		for j, p := range group {
			row[j] = parameterToDTO(p)
		}
		out[i] = row
	}
	return out
}

var memberKindStrings = map[types.MemberKind]string{
	types.MethodMember:          "method",
	types.PropertyGetMember:     "get",
	types.PropertySetMember:     "set",
	types.PropertyGetSetMember:  "getset",
	types.FieldMember:           "field",
}

func memberToDTO(m types.Member) MemberDTO {
	return MemberDTO{
		Name:              m.Name,
		Kind:              memberKindStrings[m.Kind],
		GenericParameters: unresolveVariables(m.GenericParameters),
		Parameters:        parameterGroupsToDTO(m.Parameters),
		Return:            parameterToDTO(m.ReturnParameter),
	}
}

var constraintKindStrings = map[types.ConstraintKind]string{
	types.SubtypeConstraint:             "subtype",
	types.NullableConstraint:            "nullable",
	types.MemberConstraint:              "member",
	types.DefaultConstructorConstraint:  "default_ctor",
	types.ValueTypeConstraint:           "value_type",
	types.ReferenceTypeConstraint:       "reference_type",
	types.EnumerationConstraint:         "enumeration",
	types.DelegateConstraint:            "delegate",
	types.UnmanagedConstraint:           "unmanaged",
	types.EqualityConstraint:            "equality",
	types.ComparisonConstraint:          "comparison",
}

func constraintToDTO(tc types.TypeConstraint) ConstraintDTO {
	d := ConstraintDTO{
		Variables:    unresolveVariables(tc.Variables),
		Kind:         constraintKindStrings[tc.Constraint.Kind],
		MemberStatic: tc.Constraint.MemberIsStatic,
	}
	if tc.Constraint.SubtypeOf != nil {
		lt := lowTypeToDTO(*tc.Constraint.SubtypeOf)
		d.SubtypeOf = &lt
	}
	if tc.Constraint.Member != nil {
		m := memberToDTO(*tc.Constraint.Member)
		d.Member = &m
	}
	return d
}

func constraintsToDTO(cs []types.TypeConstraint) []ConstraintDTO {
	if cs == nil {
		return nil
	}
	out := make([]ConstraintDTO, len(cs))
	for i, c := range cs {
		out[i] = constraintToDTO(c)
	}
	return out
}

func builderToDTO(b api.ComputationExpressionBuilder) BuilderDTO {
	var syn []string
	for s := range b.Syntaxes {
		syn = append(syn, s)
	}
	sort.Strings(syn)
	return BuilderDTO{
		BuilderType:      lowTypeToDTO(b.BuilderType),
		ComputationTypes: lowTypeSliceToDTO(b.ComputationExpressionTypes),
		Syntaxes:         syn,
	}
}

var accessibilityStrings = map[types.Accessibility]string{
	types.Public:   "public",
	types.Internal: "internal",
	types.Private:  "private",
}

var typeDefKindStrings = map[types.TypeDefinitionKind]string{
	types.ClassDefinition:       "class",
	types.InterfaceDefinition:   "interface",
	types.PlainTypeDefinition:   "type",
	types.UnionDefinition:       "union",
	types.RecordDefinition:      "record",
	types.EnumerationDefinition: "enum",
}

func typeDefToDTO(td types.FullTypeDefinition) TypeDefDTO {
	d := TypeDefDTO{
		Name:              unresolveName(td.Name),
		Assembly:          td.AssemblyName,
		Accessibility:     accessibilityStrings[td.Accessibility],
		Kind:              typeDefKindStrings[td.Kind],
		Interfaces:        lowTypeSliceToDTO(td.AllInterfaces),
		GenericParameters: unresolveVariables(td.GenericParameters),
		Constraints:       constraintsToDTO(td.Constraints),
		InstanceMembers:   memberSliceToDTO(td.InstanceMembers),
		StaticMembers:     memberSliceToDTO(td.StaticMembers),
	}
	if td.BaseType != nil {
		bt := lowTypeToDTO(*td.BaseType)
		d.BaseType = &bt
	}
	return d
}

func memberSliceToDTO(ms []types.Member) []MemberDTO {
	if ms == nil {
		return nil
	}
	out := make([]MemberDTO, len(ms))
	for i, m := range ms {
		out[i] = memberToDTO(m)
	}
	return out
}

func abbrevToDTO(ta types.TypeAbbreviationDefinition) AbbrevDTO {
	return AbbrevDTO{
		Name:              unresolveName(ta.Name),
		Assembly:          ta.AssemblyName,
		Accessibility:     accessibilityStrings[ta.Accessibility],
		GenericParameters: unresolveVariables(ta.GenericParameters),
		Abbreviation:      lowTypeToDTO(ta.Abbreviation),
		Original:          lowTypeToDTO(ta.Original),
	}
}

var signatureKindStrings = map[api.SignatureKind]string{
	api.ModuleValueSignature:                   "module_value",
	api.ModuleFunctionSignature:                "module_function",
	api.ActivePatternSignature:                 "active_pattern",
	api.InstanceMemberSignature:                "instance_member",
	api.StaticMemberSignature:                  "static_member",
	api.ConstructorSignature:                   "constructor",
	api.ModuleDefinitionSignature:               "module_definition",
	api.FullTypeDefinitionSignature:             "full_type_definition",
	api.TypeAbbreviationSignature:               "type_abbreviation",
	api.TypeExtensionSignature:                  "type_extension",
	api.ExtensionMemberSignature:                "extension_member",
	api.UnionCaseSignature:                      "union_case",
	api.ComputationExpressionBuilderSignature:   "computation_expression_builder",
}

func signatureToDTO(sig api.Signature) SignatureDTO {
	d := SignatureDTO{
		Kind:                signatureKindStrings[sig.Kind],
		Partial:             sig.IsPartialActivePattern,
		IsInstanceExtension: sig.IsInstanceExtension,
	}
	switch sig.Kind {
	case api.ModuleValueSignature:
		lt := lowTypeToDTO(sig.ValueType)
		d.ValueType = &lt
	case api.ModuleFunctionSignature, api.ActivePatternSignature:
		m := memberToDTO(sig.Function)
		d.Function = &m
	case api.InstanceMemberSignature, api.StaticMemberSignature, api.ConstructorSignature:
		dt := lowTypeToDTO(sig.DeclaringType)
		d.DeclaringType = &dt
		m := memberToDTO(sig.Member)
		d.Member = &m
	case api.ModuleDefinitionSignature:
		d.ModuleName = unresolveName(sig.ModuleName)
	case api.FullTypeDefinitionSignature:
		td := typeDefToDTO(sig.TypeDefinition)
		d.TypeDefinition = &td
	case api.TypeAbbreviationSignature:
		ta := abbrevToDTO(sig.TypeAbbreviation)
		d.TypeAbbreviation = &ta
	case api.TypeExtensionSignature:
		et := lowTypeToDTO(sig.ExistingType)
		d.ExistingType = &et
		m := memberToDTO(sig.Member)
		d.Member = &m
	case api.ExtensionMemberSignature:
		m := memberToDTO(sig.Member)
		d.Member = &m
	case api.UnionCaseSignature:
		for _, f := range sig.UnionCaseFields {
			d.UnionCaseFields = append(d.UnionCaseFields, parameterToDTO(f))
		}
		dut := lowTypeToDTO(sig.DeclaringUnionType)
		d.DeclaringUnionType = &dut
	case api.ComputationExpressionBuilderSignature:
		b := builderToDTO(sig.Builder)
		d.Builder = &b
	}
	return d
}

func apiToDTO(a api.Api) ApiDTO {
	return ApiDTO{
		Name:        unresolveName(a.Name),
		Signature:   signatureToDTO(a.Signature),
		Constraints: constraintsToDTO(a.TypeConstraints),
		Document:    a.Document,
	}
}
