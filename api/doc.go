// Package api defines the catalog-level entities: the tagged
// ApiSignature union covering every shape a catalog entry can take,
// the Api wrapper that attaches a name and documentation to a
// signature, and the immutable ApiDictionary a loader produces.
package api
