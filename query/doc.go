// Package query defines the abstract query surface the parser hands to
// the engine, and the Options record that configures every matching
// policy. The textual grammar that produces a Query is out of scope
// for this module (see package queryparse for a reference
// implementation); this package only fixes the shape parsers must
// target.
package query
