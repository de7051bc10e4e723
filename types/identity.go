package types

// IdentityKind discriminates full (assembly-qualified) from partial
// (display-name-only) identities.
type IdentityKind int

const (
	// FullIdentityKind names a type with its owning assembly.
	FullIdentityKind IdentityKind = iota
	// PartialIdentityKind names a type by display name only; it matches
	// as a tail-wildcard over the enclosing scope.
	PartialIdentityKind
)

// Identity is a reference to a named type, either fully assembly-qualified
// or partial (unqualified tail).
type Identity struct {
	Kind                  IdentityKind
	AssemblyName          string // set for FullIdentityKind
	Name                  DisplayName
	GenericParameterCount int
}

// NewFullIdentity builds an assembly-qualified identity.
func NewFullIdentity(assembly string, name DisplayName, genericCount int) Identity {
	return Identity{Kind: FullIdentityKind, AssemblyName: assembly, Name: name, GenericParameterCount: genericCount}
}

// NewPartialIdentity builds a display-name-only identity.
func NewPartialIdentity(name DisplayName, genericCount int) Identity {
	return Identity{Kind: PartialIdentityKind, Name: name, GenericParameterCount: genericCount}
}

// Equal is strict structural equality: same kind, same assembly (if
// full), same name, same arity. It does not implement the
// full-vs-partial tail matching rule; that policy lives in the lowmatch
// package because it depends on the IgnoreCase option.
func (id Identity) Equal(other Identity) bool {
	if id.Kind != other.Kind {
		return false
	}
	if id.Kind == FullIdentityKind && id.AssemblyName != other.AssemblyName {
		return false
	}
	return id.GenericParameterCount == other.GenericParameterCount && id.Name.Equal(other.Name)
}

// ZeroArityTailSegments reports, for a PartialIdentity, which of its
// name segments declared zero generic parameters. Per spec, a segment
// with zero generic parameters does not require arity agreement at
// that position when matched against a FullIdentity's tail.
func (id Identity) ZeroArityTailSegments() []bool {
	out := make([]bool, len(id.Name))
	for i, item := range id.Name {
		out[i] = len(item.GenericParameters) == 0
	}
	return out
}
