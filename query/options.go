package query

// Toggle is a named boolean for options that read better as
// Enabled/Disabled than true/false.
type Toggle bool

const (
	// Enabled turns the option on.
	Enabled Toggle = true
	// Disabled turns the option off.
	Disabled Toggle = false
)

// Mode selects which Strategy assembles the matcher pipeline.
type Mode int

const (
	// PrimaryMode uses the primary-dialect initialization strategy.
	PrimaryMode Mode = iota
	// SecondaryMode uses the secondary-dialect initialization strategy.
	SecondaryMode
)

// Options configures every matching policy recognized by the engine.
type Options struct {
	GreedyMatching         Toggle
	RespectNameDifference  Toggle
	IgnoreParameterStyle   Toggle
	IgnoreCase             Toggle
	SwapOrderDepth         int
	ComplementDepth        int
	Parallel               Toggle
	Mode                   Mode
	// Prefilter records whether a cheap full-text pass (package
	// prefilter) over the catalog's display names and documentation
	// runs before the structural matcher, for large catalogs.
	// engine.Search does not read this field: the pass is applied to the
	// dictionaries before Search is called, and entries it drops never
	// reach the structural matcher.
	Prefilter Toggle
}

// DefaultOptions returns the recommended defaults: swap and
// complement budgets of 2, primary dialect, sequential scan.
func DefaultOptions() Options {
	return Options{
		SwapOrderDepth:  2,
		ComplementDepth: 2,
		Mode:            PrimaryMode,
	}
}

// Clamp normalizes out-of-range numeric options in place: negative
// depths are raised to zero, rather than being rejected.
func (o *Options) Clamp() {
	if o.SwapOrderDepth < 0 {
		o.SwapOrderDepth = 0
	}
	if o.ComplementDepth < 0 {
		o.ComplementDepth = 0
	}
}
