package types

import "strings"

// TypeVariable is a generic type parameter name. Variables flagged
// IsSolveAtCompileTime belong to the "compile-time-solve" family and
// must be resolved statically rather than left as a runtime type hole.
type TypeVariable struct {
	Name                 string
	IsSolveAtCompileTime bool
}

// Equal reports whether two type variables refer to the same name and
// the same solve-time family.
func (v TypeVariable) Equal(other TypeVariable) bool {
	return v.Name == other.Name && v.IsSolveAtCompileTime == other.IsSolveAtCompileTime
}

// NamePartKind discriminates the flavors of a single name segment.
type NamePartKind int

const (
	// SymbolNamePart is a plain identifier.
	SymbolNamePart NamePartKind = iota
	// OperatorNamePart is an operator name with a compiled (mangled) form.
	OperatorNamePart
	// CompiledNamePart is a symbol whose compiled form differs from its
	// displayed form (e.g. a property backing field, an F#-mangled name).
	CompiledNamePart
)

// NamePart is a tagged name segment. Equality between two NameParts is
// by displayed form; callers that care about the compiled form (for
// RespectNameDifference cost accounting) compare Compiled directly.
type NamePart struct {
	Kind     NamePartKind
	Display  string
	Compiled string // set for OperatorNamePart and CompiledNamePart
}

// NewSymbolName builds a plain symbol name part.
func NewSymbolName(display string) NamePart {
	return NamePart{Kind: SymbolNamePart, Display: display}
}

// NewOperatorName builds an operator name part with its compiled form.
func NewOperatorName(display, compiled string) NamePart {
	return NamePart{Kind: OperatorNamePart, Display: display, Compiled: compiled}
}

// NewCompiledName builds a symbol name part whose compiled form differs
// from the displayed form.
func NewCompiledName(display, compiled string) NamePart {
	return NamePart{Kind: CompiledNamePart, Display: display, Compiled: compiled}
}

// Equal compares two name parts by displayed form.
func (p NamePart) Equal(other NamePart) bool {
	return p.Display == other.Display
}

// EqualFold compares two name parts by displayed form, ignoring case.
func (p NamePart) EqualFold(other NamePart) bool {
	return strings.EqualFold(p.Display, other.Display)
}

// HasDistinctCompiledForm reports whether this part carries a compiled
// name that differs from its displayed name.
func (p NamePart) HasDistinctCompiledForm() bool {
	return p.Compiled != "" && p.Compiled != p.Display
}

// DisplayNameItem is one segment of a DisplayName together with the
// generic parameters declared at that segment.
type DisplayNameItem struct {
	Part              NamePart
	GenericParameters []TypeVariable
}

// Equal compares two DisplayNameItems by name part and by generic
// parameter list (order-sensitive: generic parameters are positional).
func (it DisplayNameItem) Equal(other DisplayNameItem) bool {
	if !it.Part.Equal(other.Part) {
		return false
	}
	if len(it.GenericParameters) != len(other.GenericParameters) {
		return false
	}
	for i, v := range it.GenericParameters {
		if !v.Equal(other.GenericParameters[i]) {
			return false
		}
	}
	return true
}

// DisplayName is an ordered, innermost-first sequence of name segments:
// the type itself is DisplayName[0]; DisplayName[len-1] is the outermost
// enclosing module or namespace.
type DisplayName []DisplayNameItem

// Equal compares two display names segment by segment.
func (n DisplayName) Equal(other DisplayName) bool {
	if len(n) != len(other) {
		return false
	}
	for i, it := range n {
		if !it.Equal(other[i]) {
			return false
		}
	}
	return true
}

// EqualFold compares two display names segment by segment, ignoring the
// case of each segment's displayed form.
func (n DisplayName) EqualFold(other DisplayName) bool {
	if len(n) != len(other) {
		return false
	}
	for i, it := range n {
		if !it.Part.EqualFold(other[i].Part) {
			return false
		}
	}
	return true
}

// HasTail reports whether other is a suffix of n, segment by segment,
// starting at n's head. This is the basis of PartialIdentity matching:
// a partial name matches any full name that ends with it.
func (n DisplayName) HasTail(other DisplayName, ignoreCase bool) bool {
	if len(other) > len(n) {
		return false
	}
	for i, it := range other {
		if ignoreCase {
			if !n[i].Part.EqualFold(it.Part) {
				return false
			}
		} else if !n[i].Part.Equal(it.Part) {
			return false
		}
	}
	return true
}

// String renders the display name outermost-first, dotted, the way a
// reader expects to see a qualified name (e.g. "Microsoft.FSharp.Collections.List").
func (n DisplayName) String() string {
	if len(n) == 0 {
		return ""
	}
	parts := make([]string, len(n))
	for i, it := range n {
		parts[len(n)-1-i] = it.Part.Display
	}
	return strings.Join(parts, ".")
}

// Head returns the innermost segment (the type/value name itself).
// Ok is false for an empty DisplayName.
func (n DisplayName) Head() (DisplayNameItem, bool) {
	if len(n) == 0 {
		return DisplayNameItem{}, false
	}
	return n[0], true
}

// NewDisplayName builds a DisplayName from innermost-first parts.
func NewDisplayName(parts ...string) DisplayName {
	items := make(DisplayName, len(parts))
	for i, p := range parts {
		items[i] = DisplayNameItem{Part: NewSymbolName(p)}
	}
	return items
}
