package types

// Parameter is a single function/member parameter: a type, an optional
// display label, and whether the parameter may be omitted.
type Parameter struct {
	Type       LowType
	Name       string // "" if unlabeled
	IsOptional bool
}

// ParameterGroups encodes curried-then-tupled parameter shape: the
// outer slice is the arrow segments, the inner slice is the tuple
// components of that segment. A segment of length 1 is a non-tupled
// argument.
type ParameterGroups [][]Parameter

// FlattenToArrowElements converts curried/tupled parameter groups plus
// a return type into the element list of an Arrow LowType. A group of
// length 1 contributes its single parameter type directly; a group of
// length > 1 contributes a Tuple of its parameter types.
func (g ParameterGroups) FlattenToArrowElements(ret LowType) []LowType {
	elements := make([]LowType, 0, len(g)+1)
	for _, group := range g {
		elements = append(elements, groupToLowType(group))
	}
	elements = append(elements, ret)
	return elements
}

func groupToLowType(group []Parameter) LowType {
	if len(group) == 1 {
		return group[0].Type
	}
	types := make([]LowType, len(group))
	for i, p := range group {
		types[i] = p.Type
	}
	return NewTuple(false, types...)
}

// TrailingOptionalCount counts how many parameters at the tail of the
// flattened (non-tupled) parameter sequence are optional. Used by the
// low-type matcher's optional-parameter complementation rule.
func (g ParameterGroups) TrailingOptionalCount() int {
	count := 0
	for i := len(g) - 1; i >= 0; i-- {
		group := g[i]
		allOptional := true
		for _, p := range group {
			if !p.IsOptional {
				allOptional = false
				break
			}
		}
		if !allOptional {
			break
		}
		count++
	}
	return count
}

// MemberKind discriminates the member shapes in the type system.
type MemberKind int

const (
	// MethodMember is an ordinary callable member.
	MethodMember MemberKind = iota
	// PropertyGetMember is a read-only property.
	PropertyGetMember
	// PropertySetMember is a write-only property.
	PropertySetMember
	// PropertyGetSetMember is a read/write property.
	PropertyGetSetMember
	// FieldMember is a plain field.
	FieldMember
)

// Member is a named, possibly generic, possibly curried callable or
// data member.
type Member struct {
	Name              string
	Kind              MemberKind
	GenericParameters []TypeVariable
	Parameters        ParameterGroups
	ReturnParameter   Parameter
}

// SignatureLowType returns the LowType this member denotes for
// signature matching: an Arrow built from its parameter groups and
// return type, or just the return type for a niladic member (a
// zero-parameter member is not an Arrow of length 1; per the Arrow
// invariant it degenerates to its return type alone).
func (m Member) SignatureLowType() LowType {
	if len(m.Parameters) == 0 {
		return m.ReturnParameter.Type
	}
	elements := m.Parameters.FlattenToArrowElements(m.ReturnParameter.Type)
	if len(elements) == 1 {
		return elements[0]
	}
	optional := make([]bool, len(elements))
	for i, group := range m.Parameters {
		optional[i] = groupIsOptional(group)
	}
	return NewArrowWithOptional(elements, optional)
}

func groupIsOptional(group []Parameter) bool {
	for _, p := range group {
		if !p.IsOptional {
			return false
		}
	}
	return true
}
