// Package engine ties the low-type matcher, the API matchers, and a
// catalog of dictionaries together into a searchable whole: a Strategy
// assembles the matcher pipeline and seeds the starting Context, the
// search driver walks the catalog and applies it, and the
// computation-expression builder logic handles builder-query dispatch.
package engine
