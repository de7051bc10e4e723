package engine

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/typesig/apisearch/api"
	"github.com/typesig/apisearch/apimatch"
	"github.com/typesig/apisearch/equation"
	"github.com/typesig/apisearch/query"
	"github.com/typesig/apisearch/types"
)

// Result is one matched catalog entry: the Api is aliased into its
// owning dictionary, never copied.
type Result struct {
	Api          api.Api
	AssemblyName string
	Distance     int
}

// Logger is threaded through Search for diagnostics; it defaults to
// slog.Default().
var Logger = slog.Default()

// Search runs q against dicts under opts using strategy's matcher
// pipeline. It dispatches to the computation-expression matcher when
// q.Method.Kind is ByComputationExpression; otherwise it walks every
// (dictionary, api) pair in dictionary-then-catalog order through the
// standard pipeline.
//
// The returned sequence is lazy: nothing is matched until the caller
// ranges over it, and ranging stops as soon as the caller's yield
// returns false. Order is preserved only when Options.Parallel is
// Disabled; callers needing stable order under Parallel must sort by
// (Distance, dictionary order).
//
// A *types.FatalError reaching the driver (a malformed LowType
// escaping the loader) aborts the whole search: Search returns it
// directly rather than folding it into the result sequence, since it
// is a data contract violation, not an ordinary non-match.
func Search(ctx context.Context, dicts []*api.Dictionary, opts query.Options, strategy Strategy, q query.Query) (iter.Seq[Result], error) {
	if err := validateDictionaries(dicts); err != nil {
		return nil, err
	}
	opts.Clamp()

	q = strategy.InitializeQuery(q, dicts, opts)
	initial := strategy.InitialContext(q, dicts, opts)
	low, pipeline := strategy.Matchers(opts)

	if q.Method.Kind == query.ByComputationExpression {
		return searchComputationExpression(dicts, opts, low, pipeline, q, initial), nil
	}

	if opts.Parallel == query.Disabled {
		return sequentialScan(dicts, low, pipeline, q, initial), nil
	}
	return parallelScan(ctx, dicts, low, pipeline, q, initial), nil
}

func sequentialScan(dicts []*api.Dictionary, low apimatch.LowTypeMatcher, pipeline apimatch.Pipeline, q query.Query, initial equation.Context) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		for _, d := range dicts {
			for _, item := range d.Apis {
				if r, matched := runPipeline(low, pipeline, d, q, item, initial); matched {
					if !yield(r) {
						return
					}
				}
			}
		}
	}
}

// parallelScan fans the catalog scan out over a bounded worker group
// using golang.org/x/sync/errgroup. The low-type matcher and API
// matchers are pure functions of (query, api, ctx_in) -> ctx_out with
// no shared mutable state, so the only shared state here is the
// results accumulator itself, guarded by a mutex.
func parallelScan(ctx context.Context, dicts []*api.Dictionary, low apimatch.LowTypeMatcher, pipeline apimatch.Pipeline, q query.Query, initial equation.Context) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		type indexed struct {
			order int
			r     Result
		}
		var (
			mu      sync.Mutex
			results []indexed
		)
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.GOMAXPROCS(0))
		order := 0
		for _, d := range dicts {
			d := d
			for _, item := range d.Apis {
				item := item
				idx := order
				order++
				g.Go(func() error {
					select {
					case <-gctx.Done():
						return gctx.Err()
					default:
					}
					if r, matched := runPipeline(low, pipeline, d, q, item, initial); matched {
						mu.Lock()
						results = append(results, indexed{idx, r})
						mu.Unlock()
					}
					return nil
				})
			}
		}
		if err := g.Wait(); err != nil {
			Logger.Debug("apisearch/engine: parallel scan stopped early", "error", err)
		}
		for _, ir := range results {
			if !yield(ir.r) {
				return
			}
		}
	}
}

func runPipeline(low apimatch.LowTypeMatcher, pipeline apimatch.Pipeline, d *api.Dictionary, q query.Query, item api.Api, initial equation.Context) (Result, bool) {
	res := pipeline.Run(low, d, q.Method, item, initial)
	ctx, ok := res.Context()
	if !ok {
		return Result{}, false
	}
	return Result{Api: item, AssemblyName: d.AssemblyName, Distance: ctx.Distance}, true
}

// validateDictionaries enforces the data-contract-violation rule
// before any matching starts: every LowType reachable from a
// catalog entry's signature must satisfy types.Validate, or the whole
// search aborts rather than silently skipping the offending entry.
func validateDictionaries(dicts []*api.Dictionary) error {
	for _, d := range dicts {
		for _, item := range d.Apis {
			for _, t := range apiSignatureLowTypes(item) {
				if err := types.Validate(t); err != nil {
					return fmt.Errorf("apisearch/engine: dictionary %q: %w", d.AssemblyName, err)
				}
			}
		}
	}
	return nil
}

// apiSignatureLowTypes collects every LowType a signature variant
// might carry. Fields a variant doesn't use are collected too, as their
// zero values (types.Validate is defined on well-formedness shape, not
// on the zero LowType{} of kind WildcardKind, so a harmless no-op there
// is fine).
func apiSignatureLowTypes(a api.Api) []types.LowType {
	sig := a.Signature
	out := []types.LowType{
		sig.ValueType,
		sig.Function.SignatureLowType(),
		sig.DeclaringType,
		sig.Member.SignatureLowType(),
		sig.ExistingType,
		sig.DeclaringUnionType,
		sig.Builder.BuilderType,
	}
	for _, f := range sig.UnionCaseFields {
		out = append(out, f.Type)
	}
	out = append(out, sig.Builder.ComputationExpressionTypes...)
	return out
}
