// Package prefilter implements query.Options.Prefilter: a cheap
// full-text pass over a dictionary's display names and documentation,
// backed by github.com/blevesearch/bleve/v2.
//
// Filter keeps only the entries whose display name or documentation
// matches the search text, and engine.Search then runs the structural
// matcher over those entries alone. Signature types are not indexed, so
// an entry the structural matcher would accept is dropped when neither
// its name nor its documentation matches the text. An empty text keeps
// every entry.
package prefilter
