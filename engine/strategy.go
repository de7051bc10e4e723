package engine

import (
	"github.com/typesig/apisearch/api"
	"github.com/typesig/apisearch/apimatch"
	"github.com/typesig/apisearch/equation"
	"github.com/typesig/apisearch/lowmatch"
	"github.com/typesig/apisearch/query"
	"github.com/typesig/apisearch/queryparse"
	"github.com/typesig/apisearch/types"
)

// Strategy is a per-dialect initialization strategy: it assembles the
// matcher pipeline, parses query text, and seeds the bindings/context
// a search starts from.
type Strategy interface {
	// Matchers returns the low-type matcher and the ordered API matcher
	// pipeline this strategy's dialect uses.
	Matchers(opts query.Options) (apimatch.LowTypeMatcher, apimatch.Pipeline)
	// ParseQuery turns query text into the abstract query surface.
	ParseQuery(text string) (query.Query, error)
	// InitializeQuery rewrites a parsed query's LowTypes for this
	// dialect: binding bare identifiers to known arities where they
	// resolve unambiguously, and applying any dialect-specific
	// normalization.
	InitializeQuery(q query.Query, dicts []*api.Dictionary, opts query.Options) query.Query
	// InitialContext seeds the starting Context for a search using q
	// and opts.
	InitialContext(q query.Query, dicts []*api.Dictionary, opts query.Options) equation.Context
}

// defaultPipeline is the canonical four-stage apimatch.Pipeline shared
// by both dialects: the stage ordering itself is not a dialect
// concern, only the name-equality and normalization rules underneath
// it are (carried entirely by lowmatch.Test and each strategy's own
// InitializeQuery).
func defaultPipeline() apimatch.Pipeline {
	return apimatch.Pipeline{
		apimatch.NameMatcher{},
		apimatch.SignatureMatcher{},
		apimatch.ActivePatternMatcher{},
		apimatch.ConstraintSolver{},
	}
}

// PrimaryStrategy is the primary-dialect initialization strategy: name
// equality distinguishes symbol vs compiled forms, curried arrows are
// preserved as written, and operator semantics are honored as parsed.
type PrimaryStrategy struct{}

// Matchers implements Strategy.
func (PrimaryStrategy) Matchers(opts query.Options) (apimatch.LowTypeMatcher, apimatch.Pipeline) {
	return lowmatch.Test, defaultPipeline()
}

// ParseQuery implements Strategy.
func (PrimaryStrategy) ParseQuery(text string) (query.Query, error) {
	return queryparse.Parse(text)
}

// InitializeQuery implements Strategy: the primary dialect needs no
// normalization beyond the shared arity-binding pass.
func (PrimaryStrategy) InitializeQuery(q query.Query, dicts []*api.Dictionary, opts query.Options) query.Query {
	return rewriteQueryLowTypes(q, dicts, bindKnownArities)
}

// InitialContext implements Strategy.
func (PrimaryStrategy) InitialContext(q query.Query, dicts []*api.Dictionary, opts query.Options) equation.Context {
	return seedContext(q, dicts, opts)
}

// SecondaryStrategy is the secondary-dialect initialization strategy:
// built-in aliases map to canonical identities, tuple-like argument
// blocks normalize to positional parameter lists before matching.
type SecondaryStrategy struct{}

// Matchers implements Strategy. The secondary dialect reuses the same
// low-type matcher and pipeline; its differences live entirely in
// InitializeQuery's normalization, not in the dispatch rules
// themselves, which do not vary by dialect.
func (SecondaryStrategy) Matchers(opts query.Options) (apimatch.LowTypeMatcher, apimatch.Pipeline) {
	return lowmatch.Test, defaultPipeline()
}

// ParseQuery implements Strategy.
func (SecondaryStrategy) ParseQuery(text string) (query.Query, error) {
	return queryparse.Parse(text)
}

// InitializeQuery implements Strategy.
func (SecondaryStrategy) InitializeQuery(q query.Query, dicts []*api.Dictionary, opts query.Options) query.Query {
	return rewriteQueryLowTypes(q, dicts, func(lt types.LowType, dicts []*api.Dictionary) types.LowType {
		return bindKnownArities(normalizeSecondaryDialect(lt), dicts)
	})
}

// InitialContext implements Strategy.
func (SecondaryStrategy) InitialContext(q query.Query, dicts []*api.Dictionary, opts query.Options) equation.Context {
	return seedContext(q, dicts, opts)
}

// builtinAliases maps the secondary dialect's built-in type spellings
// to the canonical identity name the catalog stores them under.
var builtinAliases = map[string]string{
	"int":    "Int32",
	"string": "String",
	"bool":   "Boolean",
	"float":  "Double",
	"unit":   "Void",
}

// normalizeSecondaryDialect applies the secondary dialect's two
// normalizations: built-in aliases rewrite to their canonical
// identity, and a lone leading tuple parameter segment flattens into
// positional curried parameters, the same shape
// lowmatch.testTupleSplitReshape already knows how to reconcile
// against a genuinely curried catalog signature. Arrow chains are not
// separately compressed to a function-constructor Generic here: this
// engine's canonical LowType representation already expresses every
// function type as a curried Arrow, so there is no nominal "Func"
// representation on the catalog side for a query to be normalized
// towards.
func normalizeSecondaryDialect(lt types.LowType) types.LowType {
	switch lt.Kind {
	case types.IdentityKind_:
		if head, ok := lt.Identity.Name.Head(); ok {
			if canonical, ok := builtinAliases[head.Part.Display]; ok {
				return types.NewIdentityType(withCanonicalHeadName(lt.Identity, canonical))
			}
		}
		return lt

	case types.ArrowKind:
		elements := make([]types.LowType, len(lt.Elements))
		for i, e := range lt.Elements {
			elements[i] = normalizeSecondaryDialect(e)
		}
		if len(elements) == 2 && elements[0].Kind == types.TupleKind {
			flattened := append(append([]types.LowType{}, elements[0].Elements...), elements[1])
			optional := make([]bool, len(flattened))
			return types.NewArrowWithOptional(flattened, optional)
		}
		return types.NewArrowWithOptional(elements, lt.ArrowOptional)

	case types.TupleKind:
		elements := make([]types.LowType, len(lt.Elements))
		for i, e := range lt.Elements {
			elements[i] = normalizeSecondaryDialect(e)
		}
		return types.NewTuple(lt.IsStruct, elements...)

	case types.GenericKind:
		args := make([]types.LowType, len(lt.Elements))
		for i, e := range lt.Elements {
			args[i] = normalizeSecondaryDialect(e)
		}
		ctor := normalizeSecondaryDialect(*lt.Ctor)
		return types.NewGeneric(ctor, args...)

	case types.ChoiceKind:
		alts := make([]types.LowType, len(lt.Elements))
		for i, e := range lt.Elements {
			alts[i] = normalizeSecondaryDialect(e)
		}
		return types.NewChoice(alts...)
	}
	return lt
}

// bindKnownArities resolves a bare (zero-arity, not already applied as
// a Generic ctor) PartialIdentity to the arity of the unique
// FullTypeDefinition whose name it tail-matches, across every supplied
// dictionary. Ambiguous or unresolved names are left untouched:
// lowmatch's PartialIdentity tail matching already treats a zero-arity
// segment as arity-agnostic, so leaving it unresolved is still
// correct, merely less specific.
func bindKnownArities(lt types.LowType, dicts []*api.Dictionary) types.LowType {
	switch lt.Kind {
	case types.IdentityKind_:
		if lt.Identity.Kind != types.PartialIdentityKind || lt.Identity.GenericParameterCount != 0 {
			return lt
		}
		if arity, ok := uniqueKnownArity(lt.Identity.Name, dicts); ok && arity > 0 {
			return types.NewIdentityType(types.NewPartialIdentity(lt.Identity.Name, arity))
		}
		return lt

	case types.ArrowKind:
		elements := make([]types.LowType, len(lt.Elements))
		for i, e := range lt.Elements {
			elements[i] = bindKnownArities(e, dicts)
		}
		return types.NewArrowWithOptional(elements, lt.ArrowOptional)

	case types.TupleKind:
		elements := make([]types.LowType, len(lt.Elements))
		for i, e := range lt.Elements {
			elements[i] = bindKnownArities(e, dicts)
		}
		return types.NewTuple(lt.IsStruct, elements...)

	case types.GenericKind:
		args := make([]types.LowType, len(lt.Elements))
		for i, e := range lt.Elements {
			args[i] = bindKnownArities(e, dicts)
		}
		return types.NewGeneric(*lt.Ctor, args...)

	case types.ChoiceKind:
		alts := make([]types.LowType, len(lt.Elements))
		for i, e := range lt.Elements {
			alts[i] = bindKnownArities(e, dicts)
		}
		return types.NewChoice(alts...)
	}
	return lt
}

// withCanonicalHeadName returns id with its innermost name segment's
// displayed text replaced, preserving that segment's generic
// parameters and the identity's kind/assembly/arity.
func withCanonicalHeadName(id types.Identity, canonical string) types.Identity {
	name := append(types.DisplayName{}, id.Name...)
	name[0] = types.DisplayNameItem{Part: types.NewSymbolName(canonical), GenericParameters: name[0].GenericParameters}
	return types.Identity{Kind: id.Kind, AssemblyName: id.AssemblyName, Name: name, GenericParameterCount: id.GenericParameterCount}
}

func uniqueKnownArity(name types.DisplayName, dicts []*api.Dictionary) (int, bool) {
	found := -1
	for _, d := range dicts {
		for _, td := range d.TypeDefinitions {
			if !td.Name.HasTail(name, false) {
				continue
			}
			arity := len(td.GenericParameters)
			if found != -1 && found != arity {
				return 0, false
			}
			found = arity
		}
	}
	return found, found != -1
}

// rewriteQueryLowTypes applies rewrite to every LowType reachable from
// q's method: the signature (ByName's trailing portion or BySignature),
// the active-pattern shape, and the computation-expression type.
func rewriteQueryLowTypes(q query.Query, dicts []*api.Dictionary, rewrite func(types.LowType, []*api.Dictionary) types.LowType) query.Query {
	switch q.Method.Kind {
	case query.ByName:
		if q.Method.HasSignature && !q.Method.Signature.IsWildcard {
			q.Method.Signature.Signature = rewrite(q.Method.Signature.Signature, dicts)
		}
	case query.BySignature:
		if !q.Method.Signature.IsWildcard {
			q.Method.Signature.Signature = rewrite(q.Method.Signature.Signature, dicts)
		}
	case query.ByActivePattern:
		q.Method.ActivePattern.Signature = rewrite(q.Method.ActivePattern.Signature, dicts)
	case query.ByComputationExpression:
		q.Method.ComputationExpression.Type = rewrite(q.Method.ComputationExpression.Type, dicts)
	}
	return q
}

// seedContext builds the starting Context: Distance=0, empty
// substitutions, and an Equations store seeded with anti-matches for
// every pair of distinct tagged wildcards appearing in the query when
// GreedyMatching is Disabled — two independently-named "don't care"
// holes are then held to resolve to different types, rather than
// allowing one greedy wildcard's resolution to silently satisfy both.
func seedContext(q query.Query, dicts []*api.Dictionary, opts query.Options) equation.Context {
	ctx := equation.NewContext(opts)
	if opts.GreedyMatching == query.Enabled {
		return ctx
	}
	tags := distinctTaggedWildcards(querySignatureOf(q))
	for i := 0; i < len(tags); i++ {
		for j := i + 1; j < len(tags); j++ {
			if eq, ok := ctx.Equations.AddInequality(types.TaggedWildcard(tags[i]), types.TaggedWildcard(tags[j])); ok {
				ctx = ctx.WithEquations(eq)
			}
		}
	}
	return ctx
}

func querySignatureOf(q query.Query) types.LowType {
	switch q.Method.Kind {
	case query.ByName:
		if q.Method.HasSignature {
			return q.Method.Signature.Signature
		}
	case query.BySignature:
		return q.Method.Signature.Signature
	case query.ByActivePattern:
		return q.Method.ActivePattern.Signature
	case query.ByComputationExpression:
		return q.Method.ComputationExpression.Type
	}
	return types.LowType{}
}

func distinctTaggedWildcards(lt types.LowType) []string {
	seen := map[string]bool{}
	var walk func(types.LowType)
	walk = func(t types.LowType) {
		if t.Kind == types.WildcardKind && t.WildcardTag != "" {
			seen[t.WildcardTag] = true
		}
		for _, e := range t.Elements {
			walk(e)
		}
		if t.Ctor != nil {
			walk(*t.Ctor)
		}
		if t.Abbreviation != nil {
			walk(*t.Abbreviation)
		}
		if t.Original != nil {
			walk(*t.Original)
		}
		for _, e := range t.SignatureTypes {
			walk(e)
		}
	}
	walk(lt)
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	return tags
}
