package equation

// MatchingResult is either Matched(ctx) or Failure. There is no partial
// result: a failed test carries no context forward.
type MatchingResult struct {
	ctx     Context
	matched bool
}

// Matched builds a successful result carrying the extended context.
func Matched(ctx Context) MatchingResult {
	return MatchingResult{ctx: ctx, matched: true}
}

// Failure builds a failed result.
func Failure() MatchingResult {
	return MatchingResult{}
}

// IsMatched reports whether this result is a Matched result.
func (r MatchingResult) IsMatched() bool {
	return r.matched
}

// Context returns the carried context and true if this result is
// Matched, or the zero Context and false otherwise.
func (r MatchingResult) Context() (Context, bool) {
	return r.ctx, r.matched
}

// Then chains a follow-up test that only runs if r is Matched,
// threading its context through. This is the composition primitive
// every multi-step matcher uses to short-circuit on Failure.
func (r MatchingResult) Then(next func(Context) MatchingResult) MatchingResult {
	if !r.matched {
		return r
	}
	return next(r.ctx)
}
