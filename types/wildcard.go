package types

import "github.com/google/uuid"

// NewWildcardTag generates a fresh correlation tag for an anonymous
// wildcard. Two wildcards created by independent calls never collide,
// so a query with several unrelated "don't care" holes does not
// accidentally force them to unify with each other.
func NewWildcardTag() string {
	return uuid.NewString()
}
