package equation

import "github.com/typesig/apisearch/query"

// Context is the per-match accumulator threaded through a signature
// test: the running distance, the equation store, naming substitutions
// recorded for display purposes, pending subtype-constraint residuals,
// and the active options. A Context is created once per catalog item
// and discarded when that item is accepted or rejected; it is never
// shared across items.
type Context struct {
	Distance int

	Equations Equations

	// Substitutions maps a query type-variable name to the LowType it
	// has been bound to, for rendering a matched result's bindings.
	Substitutions map[string]string

	// SubtypeResiduals maps a type-variable name to the subtype bounds
	// still pending resolution against the matched target.
	SubtypeResiduals map[string][]string

	Options query.Options
}

// NewContext builds an empty Context seeded with the given options.
func NewContext(opts query.Options) Context {
	return Context{
		Substitutions:    make(map[string]string),
		SubtypeResiduals: make(map[string][]string),
		Options:          opts,
	}
}

// WithDistance returns a copy of ctx with distance increased by delta.
// Distance only ever increases; the matcher calls this on every
// cheap-but-imperfect match.
func (ctx Context) WithDistance(delta int) Context {
	next := ctx.clone()
	next.Distance += delta
	return next
}

// WithEquations returns a copy of ctx with its equation store replaced.
func (ctx Context) WithEquations(eq Equations) Context {
	next := ctx.clone()
	next.Equations = eq
	return next
}

// BindSubstitution records that name has been matched against display.
func (ctx Context) BindSubstitution(name, display string) Context {
	next := ctx.clone()
	next.Substitutions[name] = display
	return next
}

func (ctx Context) clone() Context {
	subs := make(map[string]string, len(ctx.Substitutions))
	for k, v := range ctx.Substitutions {
		subs[k] = v
	}
	residuals := make(map[string][]string, len(ctx.SubtypeResiduals))
	for k, v := range ctx.SubtypeResiduals {
		residuals[k] = append([]string(nil), v...)
	}
	return Context{
		Distance:         ctx.Distance,
		Equations:        ctx.Equations,
		Substitutions:    subs,
		SubtypeResiduals: residuals,
		Options:          ctx.Options,
	}
}
