package api

import "github.com/typesig/apisearch/types"

// Api is a single named catalog entry: its display name, the shape of
// its signature, any type constraints attached to its generic
// parameters, and optional documentation.
type Api struct {
	Name            types.DisplayName
	Signature       Signature
	TypeConstraints []types.TypeConstraint
	Document        *string
}

// ConstraintsFor returns every TypeConstraint applying to v.
func (a Api) ConstraintsFor(v types.TypeVariable) []types.TypeConstraint {
	var out []types.TypeConstraint
	for _, tc := range a.TypeConstraints {
		if tc.AppliesTo(v) {
			out = append(out, tc)
		}
	}
	return out
}
