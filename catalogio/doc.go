// Package catalogio loads api.Dictionary catalogs from an external
// representation. A dictionary is authored as JSON (loader.go) and,
// once loaded, may be cached to a compact binary form (binary.go) so a
// large catalog does not pay the JSON decoding cost on every process
// start.
//
// Every name in the JSON form is a "LoadingName": a plain dotted
// string such as "List.length", authored outermost-first the way a
// human reads it. resolveName splits and reverses it into the
// innermost-first types.DisplayName the rest of this module expects.
// Nothing outside this package ever sees an unresolved LoadingName;
// api.NewDictionary's precondition (every name already resolved) holds
// by construction once a Loader has produced the Dictionary.
package catalogio
