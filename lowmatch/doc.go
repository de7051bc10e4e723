// Package lowmatch implements the low-type matcher: the unification
// engine that decides whether two LowType values match under the
// active query.Options, threading an equation.Context that accumulates
// variable bindings and distance.
//
// [Test] normalizes its operands' ordering internally so its dispatch
// rules are effectively commutative, then tries each rule in order
// until one applies. There is no interface-based dispatch: every rule
// switches on LowType.Kind.
package lowmatch
