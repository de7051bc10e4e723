// Package equation implements the equation store and per-match Context
// that the low-type matcher threads through a signature test: the
// accumulated variable equalities and inequalities, the running
// distance, and the substitutions recorded along the way.
//
// [Equations] normalizes pair orientation before storing or querying a
// pair, so (a, b) and (b, a) are always treated as the same fact; see
// [Equations.TryAddEquality] and [Equations.AddInequality]. Consistency
// checks walk the transitive closure of known equalities before
// declaring a contradiction.
package equation
