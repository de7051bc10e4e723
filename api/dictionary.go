package api

import "github.com/typesig/apisearch/types"

// Dictionary is the immutable, per-assembly catalog a loader produces.
// Per spec invariant 6, dictionaries are read-only during a search;
// nothing in this module mutates a Dictionary after construction.
type Dictionary struct {
	AssemblyName      string
	Apis              []Api
	TypeDefinitions   []types.FullTypeDefinition
	TypeAbbreviations []types.TypeAbbreviationDefinition
}

// NewDictionary builds a Dictionary. Callers (typically package
// catalogio) are responsible for resolving every LoadingName to a
// DisplayName before constructing the Dictionary; this module treats
// that as an established precondition, not something it re-checks on
// every lookup.
func NewDictionary(assemblyName string, apis []Api, typeDefs []types.FullTypeDefinition, abbrevs []types.TypeAbbreviationDefinition) *Dictionary {
	return &Dictionary{
		AssemblyName:      assemblyName,
		Apis:              apis,
		TypeDefinitions:   typeDefs,
		TypeAbbreviations: abbrevs,
	}
}

// FindTypeDefinition looks up a type definition by identity (name and
// generic arity), ignoring assembly qualification. Identity resolution
// is a map lookup on the dictionary, never a graph traversal: LowType
// values reference identities by value, not by pointer.
func (d *Dictionary) FindTypeDefinition(name types.DisplayName, genericCount int) (types.FullTypeDefinition, bool) {
	for _, td := range d.TypeDefinitions {
		if td.Name.Equal(name) && len(td.GenericParameters) == genericCount {
			return td, true
		}
	}
	return types.FullTypeDefinition{}, false
}

// FindTypeAbbreviation looks up a type-abbreviation definition by name
// and generic arity.
func (d *Dictionary) FindTypeAbbreviation(name types.DisplayName, genericCount int) (types.TypeAbbreviationDefinition, bool) {
	for _, ta := range d.TypeAbbreviations {
		if ta.Name.Equal(name) && len(ta.GenericParameters) == genericCount {
			return ta, true
		}
	}
	return types.TypeAbbreviationDefinition{}, false
}
