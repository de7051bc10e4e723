// Package types defines the type language that the signature matcher
// operates over: names, identities, the LowType AST, members, and the
// constraint vocabulary attached to type definitions.
//
// # Orientation
//
// [DisplayName] is stored innermost-first: the type itself is the head
// of the slice, enclosing modules and namespaces follow. Every function
// in this package that prints or compares a DisplayName honors that
// orientation; see [DisplayName.String] and [DisplayName.Equal].
//
// # Tagged unions without dynamic dispatch
//
// [LowType], api.Signature, and [Constraint] are all
// modeled as a single struct carrying a Kind discriminator plus the
// union of fields any variant might need, rather than as an interface
// with one implementation per variant. Matchers switch on Kind; there
// is no dynamic dispatch to trace through.
//
// # Well-formedness
//
// [Arrow] values have at least two elements, [Tuple] values have at
// least two elements, and [Generic] values have at least one argument
// (spec invariant). [Validate] checks a LowType against these rules
// only; it does not look for unresolved LoadingName placeholders.
// Callers that accept catalog
// data from outside this module should run it once per entry rather
// than trusting the loader.
package types
