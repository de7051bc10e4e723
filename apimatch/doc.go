// Package apimatch implements the pluggable per-aspect API matchers:
// NameMatcher, SignatureMatcher, ActivePatternMatcher, and the
// constraint-resolving final stage. Each matcher is a capability
// {Name, Test} rather than a class in an inheritance hierarchy; a
// Pipeline composes an ordered sequence of them and threads the
// equation.Context through, short-circuiting on the first Failure.
package apimatch
