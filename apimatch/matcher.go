package apimatch

import (
	"github.com/typesig/apisearch/api"
	"github.com/typesig/apisearch/equation"
	"github.com/typesig/apisearch/query"
	"github.com/typesig/apisearch/types"
)

// LowTypeMatcher is the low-type matcher capability an apimatch.Matcher
// delegates to. It is a function value rather than a concrete import of
// package lowmatch, so an initialization strategy can plug in a
// dialect-specific matcher without this package depending on it.
type LowTypeMatcher func(a, b types.LowType, ctx equation.Context) equation.MatchingResult

// Matcher is a single named, pluggable per-aspect test. Implementations
// must treat an inapplicable query method as a pass-through success,
// not a rejection: applicability is the initialization strategy's
// concern, composition is the Pipeline's.
type Matcher interface {
	Name() string
	Test(low LowTypeMatcher, dict *api.Dictionary, method query.Method, target api.Api, ctx equation.Context) equation.MatchingResult
}

// Pipeline is an ordered sequence of Matchers. It succeeds iff every
// stage succeeds, threading ctx through in order.
type Pipeline []Matcher

// Run executes every stage in order, short-circuiting on the first
// Failure.
func (p Pipeline) Run(low LowTypeMatcher, dict *api.Dictionary, method query.Method, target api.Api, ctx equation.Context) equation.MatchingResult {
	result := equation.Matched(ctx)
	for _, stage := range p {
		m := stage
		result = result.Then(func(c equation.Context) equation.MatchingResult {
			return m.Test(low, dict, method, target, c)
		})
	}
	return result
}
