package catalogio

import (
	"fmt"

	"github.com/typesig/apisearch/api"
	"github.com/typesig/apisearch/types"
)

var signatureKindNames = map[string]api.SignatureKind{
	"module_value":                     api.ModuleValueSignature,
	"module_function":                  api.ModuleFunctionSignature,
	"active_pattern":                   api.ActivePatternSignature,
	"instance_member":                  api.InstanceMemberSignature,
	"static_member":                    api.StaticMemberSignature,
	"constructor":                      api.ConstructorSignature,
	"module_definition":                api.ModuleDefinitionSignature,
	"full_type_definition":             api.FullTypeDefinitionSignature,
	"type_abbreviation":                api.TypeAbbreviationSignature,
	"type_extension":                   api.TypeExtensionSignature,
	"extension_member":                 api.ExtensionMemberSignature,
	"union_case":                       api.UnionCaseSignature,
	"computation_expression_builder":   api.ComputationExpressionBuilderSignature,
}

// BuilderDTO is the JSON shape of api.ComputationExpressionBuilder.
type BuilderDTO struct {
	BuilderType    LowTypeDTO   `json:"builder_type"`
	ComputationTypes []LowTypeDTO `json:"computation_types,omitempty"`
	Syntaxes       []string     `json:"syntaxes,omitempty"`
}

func (d BuilderDTO) toBuilder() (api.ComputationExpressionBuilder, error) {
	bt, err := d.BuilderType.toLowType()
	if err != nil {
		return api.ComputationExpressionBuilder{}, err
	}
	cts, err := toLowTypeSlice(d.ComputationTypes)
	if err != nil {
		return api.ComputationExpressionBuilder{}, err
	}
	var syn map[string]bool
	if len(d.Syntaxes) > 0 {
		syn = make(map[string]bool, len(d.Syntaxes))
		for _, s := range d.Syntaxes {
			syn[s] = true
		}
	}
	return api.ComputationExpressionBuilder{BuilderType: bt, ComputationExpressionTypes: cts, Syntaxes: syn}, nil
}

// SignatureDTO is the JSON shape of api.Signature: a Kind discriminator
// plus the fields relevant to that kind.
type SignatureDTO struct {
	Kind string `json:"kind"`

	ValueType *LowTypeDTO `json:"value_type,omitempty"` // module_value

	Function *MemberDTO `json:"function,omitempty"` // module_function, active_pattern
	Partial  bool       `json:"partial,omitempty"`  // active_pattern

	DeclaringType *LowTypeDTO `json:"declaring_type,omitempty"` // instance/static/constructor
	Member        *MemberDTO  `json:"member,omitempty"`         // instance/static/constructor/extension_member/type_extension

	ModuleName string `json:"module_name,omitempty"` // module_definition

	TypeDefinition *TypeDefDTO `json:"type_definition,omitempty"` // full_type_definition

	TypeAbbreviation *AbbrevDTO `json:"type_abbreviation,omitempty"` // type_abbreviation

	ExistingType        *LowTypeDTO `json:"existing_type,omitempty"` // type_extension
	IsInstanceExtension bool        `json:"is_instance_extension,omitempty"`

	UnionCaseFields    []ParameterDTO `json:"union_case_fields,omitempty"` // union_case
	DeclaringUnionType *LowTypeDTO    `json:"declaring_union_type,omitempty"`

	Builder *BuilderDTO `json:"builder,omitempty"` // computation_expression_builder
}

func (d SignatureDTO) toSignature() (api.Signature, error) {
	kind, ok := signatureKindNames[d.Kind]
	if !ok {
		return api.Signature{}, fmt.Errorf("catalogio: unknown signature kind %q", d.Kind)
	}
	sig := api.Signature{Kind: kind, IsPartialActivePattern: d.Partial, IsInstanceExtension: d.IsInstanceExtension}

	if d.ValueType != nil {
		t, err := d.ValueType.toLowType()
		if err != nil {
			return api.Signature{}, err
		}
		sig.ValueType = t
	}
	if d.Function != nil {
		m, err := d.Function.toMember()
		if err != nil {
			return api.Signature{}, err
		}
		sig.Function = m
	}
	if d.DeclaringType != nil {
		t, err := d.DeclaringType.toLowType()
		if err != nil {
			return api.Signature{}, err
		}
		sig.DeclaringType = t
	}
	if d.Member != nil {
		m, err := d.Member.toMember()
		if err != nil {
			return api.Signature{}, err
		}
		sig.Member = m
	}
	if d.ModuleName != "" {
		sig.ModuleName = resolveName(d.ModuleName)
	}
	if d.TypeDefinition != nil {
		td, err := d.TypeDefinition.toTypeDefinition()
		if err != nil {
			return api.Signature{}, err
		}
		sig.TypeDefinition = td
	}
	if d.TypeAbbreviation != nil {
		ta, err := d.TypeAbbreviation.toAbbreviation()
		if err != nil {
			return api.Signature{}, err
		}
		sig.TypeAbbreviation = ta
	}
	if d.ExistingType != nil {
		t, err := d.ExistingType.toLowType()
		if err != nil {
			return api.Signature{}, err
		}
		sig.ExistingType = t
	}
	if d.UnionCaseFields != nil {
		fields := make([]types.Parameter, len(d.UnionCaseFields))
		for i, f := range d.UnionCaseFields {
			p, err := f.toParameter()
			if err != nil {
				return api.Signature{}, err
			}
			fields[i] = p
		}
		sig.UnionCaseFields = fields
	}
	if d.DeclaringUnionType != nil {
		t, err := d.DeclaringUnionType.toLowType()
		if err != nil {
			return api.Signature{}, err
		}
		sig.DeclaringUnionType = t
	}
	if d.Builder != nil {
		b, err := d.Builder.toBuilder()
		if err != nil {
			return api.Signature{}, err
		}
		sig.Builder = b
	}
	return sig, nil
}

var accessibilityNames = map[string]types.Accessibility{
	"public":   types.Public,
	"internal": types.Internal,
	"private":  types.Private,
}

var typeDefKindNames = map[string]types.TypeDefinitionKind{
	"class":     types.ClassDefinition,
	"interface": types.InterfaceDefinition,
	"type":      types.PlainTypeDefinition,
	"union":     types.UnionDefinition,
	"record":    types.RecordDefinition,
	"enum":      types.EnumerationDefinition,
}

// TypeDefDTO is the JSON shape of types.FullTypeDefinition. Constraint
// statuses (SupportsNull, IsReferenceType, ...) are not authored in the
// reference format; toTypeDefinition derives them from Kind instead of
// leaving them at their ConstraintStatus zero value, Satisfy.
type TypeDefDTO struct {
	Name              string      `json:"name"`
	Assembly          string      `json:"assembly,omitempty"`
	Accessibility     string      `json:"accessibility,omitempty"`
	Kind              string      `json:"type_kind,omitempty"`
	BaseType          *LowTypeDTO `json:"base_type,omitempty"`
	Interfaces        []LowTypeDTO `json:"interfaces,omitempty"`
	GenericParameters []string    `json:"generic_parameters,omitempty"`
	Constraints       []ConstraintDTO `json:"constraints,omitempty"`
	InstanceMembers   []MemberDTO `json:"instance_members,omitempty"`
	StaticMembers     []MemberDTO `json:"static_members,omitempty"`
}

func (d TypeDefDTO) toTypeDefinition() (types.FullTypeDefinition, error) {
	accessibility, ok := accessibilityNames[d.Accessibility]
	if d.Accessibility != "" && !ok {
		return types.FullTypeDefinition{}, fmt.Errorf("catalogio: unknown accessibility %q", d.Accessibility)
	}
	kind, ok := typeDefKindNames[d.Kind]
	if d.Kind != "" && !ok {
		return types.FullTypeDefinition{}, fmt.Errorf("catalogio: unknown type definition kind %q", d.Kind)
	}
	td := types.FullTypeDefinition{
		Name:              resolveName(d.Name),
		AssemblyName:      d.Assembly,
		Accessibility:     accessibility,
		Kind:              kind,
		GenericParameters: resolveVariables(d.GenericParameters),
	}
	if d.BaseType != nil {
		bt, err := d.BaseType.toLowType()
		if err != nil {
			return types.FullTypeDefinition{}, err
		}
		td.BaseType = &bt
	}
	ifaces, err := toLowTypeSlice(d.Interfaces)
	if err != nil {
		return types.FullTypeDefinition{}, err
	}
	td.AllInterfaces = ifaces
	cs, err := toTypeConstraints(d.Constraints)
	if err != nil {
		return types.FullTypeDefinition{}, err
	}
	td.Constraints = cs
	instance, err := toMemberSlice(d.InstanceMembers)
	if err != nil {
		return types.FullTypeDefinition{}, err
	}
	td.InstanceMembers = instance
	static, err := toMemberSlice(d.StaticMembers)
	if err != nil {
		return types.FullTypeDefinition{}, err
	}
	td.StaticMembers = static
	deriveConstraintStatuses(&td)
	return td, nil
}

// deriveConstraintStatuses fills in the value/reference-type flags
// toTypeDefinition's source format never authors directly, from Kind:
// enumerations, records, and the value-ish PlainTypeDefinition kind are
// value types; classes, interfaces, and unions are reference types.
// SupportsEquality and SupportsComparison are left as a Dependence on
// the type's own generic parameters when it has any - whether "List<T>
// supports equality" depends on whether T does - and Satisfy otherwise,
// since this reference format carries no per-type override of either.
func deriveConstraintStatuses(td *types.FullTypeDefinition) {
	switch td.Kind {
	case types.EnumerationDefinition, types.RecordDefinition, types.PlainTypeDefinition:
		td.IsValueType = types.Satisfy()
		td.IsReferenceType = types.NotSatisfy()
		td.SupportsNull = types.NotSatisfy()
		td.HasDefaultConstructor = types.Satisfy()
	case types.ClassDefinition, types.UnionDefinition:
		td.IsReferenceType = types.Satisfy()
		td.IsValueType = types.NotSatisfy()
		td.SupportsNull = types.Satisfy()
		td.HasDefaultConstructor = types.Satisfy()
	case types.InterfaceDefinition:
		td.IsReferenceType = types.Satisfy()
		td.IsValueType = types.NotSatisfy()
		td.SupportsNull = types.Satisfy()
		td.HasDefaultConstructor = types.NotSatisfy()
	}
	if len(td.GenericParameters) > 0 {
		td.SupportsEquality = types.Dependence(td.GenericParameters...)
		td.SupportsComparison = types.Dependence(td.GenericParameters...)
	} else {
		td.SupportsEquality = types.Satisfy()
		td.SupportsComparison = types.Satisfy()
	}
}

func toMemberSlice(ds []MemberDTO) ([]types.Member, error) {
	if ds == nil {
		return nil, nil
	}
	out := make([]types.Member, len(ds))
	for i, d := range ds {
		m, err := d.toMember()
		if err != nil {
			return nil, err
		}
		out[i] = m
	}
	return out, nil
}

// AbbrevDTO is the JSON shape of types.TypeAbbreviationDefinition.
type AbbrevDTO struct {
	Name              string     `json:"name"`
	Assembly          string     `json:"assembly,omitempty"`
	Accessibility     string     `json:"accessibility,omitempty"`
	GenericParameters []string   `json:"generic_parameters,omitempty"`
	Abbreviation      LowTypeDTO `json:"abbreviation"`
	Original          LowTypeDTO `json:"original"`
}

func (d AbbrevDTO) toAbbreviation() (types.TypeAbbreviationDefinition, error) {
	accessibility, ok := accessibilityNames[d.Accessibility]
	if d.Accessibility != "" && !ok {
		return types.TypeAbbreviationDefinition{}, fmt.Errorf("catalogio: unknown accessibility %q", d.Accessibility)
	}
	abbrev, err := d.Abbreviation.toLowType()
	if err != nil {
		return types.TypeAbbreviationDefinition{}, err
	}
	orig, err := d.Original.toLowType()
	if err != nil {
		return types.TypeAbbreviationDefinition{}, err
	}
	return types.TypeAbbreviationDefinition{
		Name:              resolveName(d.Name),
		AssemblyName:      d.Assembly,
		Accessibility:     accessibility,
		GenericParameters: resolveVariables(d.GenericParameters),
		Abbreviation:      abbrev,
		Original:          orig,
	}, nil
}

// ApiDTO is the JSON shape of api.Api.
type ApiDTO struct {
	Name        string          `json:"name"`
	Signature   SignatureDTO    `json:"signature"`
	Constraints []ConstraintDTO `json:"constraints,omitempty"`
	Document    *string         `json:"document,omitempty"`
}

func (d ApiDTO) toApi() (api.Api, error) {
	sig, err := d.Signature.toSignature()
	if err != nil {
		return api.Api{}, fmt.Errorf("catalogio: api %q: %w", d.Name, err)
	}
	cs, err := toTypeConstraints(d.Constraints)
	if err != nil {
		return api.Api{}, fmt.Errorf("catalogio: api %q: %w", d.Name, err)
	}
	return api.Api{
		Name:            resolveName(d.Name),
		Signature:       sig,
		TypeConstraints: cs,
		Document:        d.Document,
	}, nil
}

// CatalogDTO is the top-level JSON shape a Loader reads: one
// dictionary's worth of type definitions, abbreviations, and APIs.
type CatalogDTO struct {
	Assembly      string       `json:"assembly"`
	Types         []TypeDefDTO `json:"types,omitempty"`
	Abbreviations []AbbrevDTO  `json:"abbreviations,omitempty"`
	Apis          []ApiDTO     `json:"apis"`
}

func (d CatalogDTO) toDictionary() (*api.Dictionary, error) {
	typeDefs := make([]types.FullTypeDefinition, len(d.Types))
	for i, t := range d.Types {
		td, err := t.toTypeDefinition()
		if err != nil {
			return nil, fmt.Errorf("catalogio: type %q: %w", t.Name, err)
		}
		typeDefs[i] = td
	}
	abbrevs := make([]types.TypeAbbreviationDefinition, len(d.Abbreviations))
	for i, a := range d.Abbreviations {
		ta, err := a.toAbbreviation()
		if err != nil {
			return nil, fmt.Errorf("catalogio: abbreviation %q: %w", a.Name, err)
		}
		abbrevs[i] = ta
	}
	apis := make([]api.Api, len(d.Apis))
	for i, a := range d.Apis {
		item, err := a.toApi()
		if err != nil {
			return nil, err
		}
		apis[i] = item
	}
	return api.NewDictionary(d.Assembly, apis, typeDefs, abbrevs), nil
}
