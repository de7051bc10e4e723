package lowmatch

import (
	"testing"

	"github.com/typesig/apisearch/equation"
	"github.com/typesig/apisearch/query"
	"github.com/typesig/apisearch/types"
)

func mustMatch(t *testing.T, a, b types.LowType, opts query.Options) equation.Context {
	t.Helper()
	r := Test(a, b, equation.NewContext(opts))
	if !r.IsMatched() {
		t.Fatalf("expected match between %s and %s", a, b)
	}
	ctx, _ := r.Context()
	return ctx
}

func mustFail(t *testing.T, a, b types.LowType, opts query.Options) {
	t.Helper()
	if Test(a, b, equation.NewContext(opts)).IsMatched() {
		t.Fatalf("expected no match between %s and %s", a, b)
	}
}

func identityOf(name string) types.LowType {
	return types.NewIdentityType(types.NewPartialIdentity(types.NewDisplayName(name), 0))
}

func variable(name string) types.TypeVariable { return types.TypeVariable{Name: name} }

// S1 Identity match: 'a list -> int vs 'a list -> int, distance 0.
func TestS1IdentityMatch(t *testing.T) {
	listOfATarget := types.NewGeneric(identityOf("list"), types.NewVariable(types.TargetSource, variable("a")))
	catalog := types.NewArrow(listOfATarget, identityOf("int"))

	listOfAQuery := types.NewGeneric(identityOf("list"), types.NewVariable(types.QuerySource, variable("a")))
	q := types.NewArrow(listOfAQuery, identityOf("int"))

	ctx := mustMatch(t, q, catalog, query.DefaultOptions())
	if ctx.Distance != 0 {
		t.Fatalf("expected distance 0, got %d", ctx.Distance)
	}
}

// S2 Variable generalization: id : 'a -> 'a vs int -> int, distance 0.
func TestS2VariableGeneralization(t *testing.T) {
	a := types.NewVariable(types.TargetSource, variable("a"))
	catalog := types.NewArrow(a, a)
	q := types.NewArrow(identityOf("int"), identityOf("int"))

	ctx := mustMatch(t, q, catalog, query.DefaultOptions())
	if ctx.Distance != 0 {
		t.Fatalf("expected distance 0, got %d", ctx.Distance)
	}
}

// S3 Tuple swap (modeled as two bare 2-tuples, so the swappable
// positions are the tuple elements themselves): with
// SwapOrderDepth >= 1 a one-swap reordering matches at distance 1; with
// SwapOrderDepth = 0 it fails.
func TestS3TupleSwap(t *testing.T) {
	k := identityOf("k")
	v := identityOf("v")
	catalog := types.NewTuple(false, k, v)
	q := types.NewTuple(false, v, k)

	opts := query.DefaultOptions()
	opts.SwapOrderDepth = 1
	ctx := mustMatch(t, q, catalog, opts)
	if ctx.Distance != 1 {
		t.Fatalf("expected distance 1, got %d", ctx.Distance)
	}

	opts.SwapOrderDepth = 0
	mustFail(t, q, catalog, opts)
}

// S4 Optional complement: string -> 'a -> unit (last param optional) vs
// string -> unit, matches at distance 1 with ComplementDepth >= 1, fails
// at ComplementDepth 0.
func TestS4OptionalComplement(t *testing.T) {
	catalog := types.NewArrowWithOptional(
		[]types.LowType{identityOf("string"), types.NewVariable(types.TargetSource, variable("a")), identityOf("unit")},
		[]bool{false, true, false},
	)
	q := types.NewArrow(identityOf("string"), identityOf("unit"))

	opts := query.DefaultOptions()
	opts.ComplementDepth = 1
	ctx := mustMatch(t, q, catalog, opts)
	if ctx.Distance != 1 {
		t.Fatalf("expected distance 1, got %d", ctx.Distance)
	}

	opts.ComplementDepth = 0
	mustFail(t, q, catalog, opts)
}

// S5 Abbreviation: a query stated in terms of the original form matches
// a catalog entry stated in terms of a TypeAbbreviation pair at distance
// 1, since only the catalog side is unwrapped, and the abbreviation only
// unwraps when IgnoreParameterStyle is enabled.
func TestS5AbbreviationTransparency(t *testing.T) {
	seqOfA := types.NewGeneric(identityOf("seq"), types.NewVariable(types.TargetSource, variable("a")))
	abbrOfA := types.NewTypeAbbreviation(
		types.NewGeneric(identityOf("list"), types.NewVariable(types.TargetSource, variable("a"))),
		seqOfA,
	)
	catalog := types.NewArrow(abbrOfA, types.NewVariable(types.TargetSource, variable("a")))
	q := types.NewArrow(seqOfA, types.NewVariable(types.QuerySource, variable("a")))

	opts := query.DefaultOptions()
	opts.IgnoreParameterStyle = query.Enabled
	ctx := mustMatch(t, q, catalog, opts)
	if ctx.Distance != 1 {
		t.Fatalf("expected distance 1 for the single-sided unwrap, got %d", ctx.Distance)
	}
}

func TestWildcardDominatesArity(t *testing.T) {
	wild := types.NewArrow(types.Wildcard(), types.Wildcard(), types.Wildcard())
	concrete := types.NewArrow(identityOf("int"), identityOf("string"), identityOf("bool"))
	mustMatch(t, wild, concrete, query.DefaultOptions())
}

func TestTaggedWildcardCorrelation(t *testing.T) {
	tag := "t1"
	arrow := types.NewArrow(types.TaggedWildcard(tag), types.TaggedWildcard(tag))
	concrete := types.NewArrow(identityOf("int"), identityOf("int"))
	mustMatch(t, arrow, concrete, query.DefaultOptions())

	mismatched := types.NewArrow(identityOf("int"), identityOf("string"))
	mustFail(t, arrow, mismatched, query.DefaultOptions())
}

func TestIdentityIgnoreCasePolicy(t *testing.T) {
	lower := identityOf("int")
	upper := types.NewIdentityType(types.NewPartialIdentity(types.NewDisplayName("INT"), 0))

	mustFail(t, lower, upper, query.DefaultOptions())

	opts := query.DefaultOptions()
	opts.IgnoreCase = query.Enabled
	mustMatch(t, lower, upper, opts)
}

func TestPartialIdentityZeroArityTailException(t *testing.T) {
	full := types.NewIdentityType(types.NewFullIdentity("MyAssembly", types.NewDisplayName("Map", "Collections"), 2))
	partial := types.NewIdentityType(types.NewPartialIdentity(types.NewDisplayName("Map"), 0))
	mustMatch(t, partial, full, query.DefaultOptions())
}

func TestArrowVsNonArrowAlwaysFails(t *testing.T) {
	arrow := types.NewArrow(identityOf("int"), identityOf("int"))
	mustFail(t, arrow, identityOf("int"), query.DefaultOptions())
}
