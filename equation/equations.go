package equation

import "github.com/typesig/apisearch/types"

// Pair is an unordered pair of LowTypes asserted equal or unequal.
type Pair struct {
	A, B types.LowType
}

// Equations accumulates two disjoint sets of facts discovered while
// testing a signature: asserted equalities and asserted inequalities.
// The zero value is an empty store.
type Equations struct {
	equalities   []Pair
	inequalities []Pair
}

// normalize orders a pair deterministically: a concrete type (anything
// but a bare Variable) sorts before a variable, so an equality is
// always recorded as (concrete, variable) when one side is a variable;
// ties fall back to the stable total order over LowType variants. This
// keeps (a, b) and (b, a) hashing/comparing identically.
func normalize(a, b types.LowType) (types.LowType, types.LowType) {
	if a.IsConcrete() != b.IsConcrete() {
		if a.IsConcrete() {
			return a, b
		}
		return b, a
	}
	if types.Compare(a, b) <= 0 {
		return a, b
	}
	return b, a
}

func containsPair(list []Pair, a, b types.LowType) bool {
	for _, p := range list {
		if p.A.Equal(a) && p.B.Equal(b) {
			return true
		}
	}
	return false
}

func containsType(list []types.LowType, v types.LowType) bool {
	for _, t := range list {
		if t.Equal(v) {
			return true
		}
	}
	return false
}

// closureGroup returns every LowType transitively linked to v by
// recorded equalities, including v itself.
func (e Equations) closureGroup(v types.LowType) []types.LowType {
	group := []types.LowType{v}
	for changed := true; changed; {
		changed = false
		for _, p := range e.equalities {
			for _, r := range group {
				if p.A.Equal(r) && !containsType(group, p.B) {
					group = append(group, p.B)
					changed = true
				}
				if p.B.Equal(r) && !containsType(group, p.A) {
					group = append(group, p.A)
					changed = true
				}
			}
		}
	}
	return group
}

// contradicts reports whether a and b (closed over known equalities)
// are already forced apart by a recorded inequality.
func (e Equations) contradicts(a, b types.LowType) bool {
	groupA := e.closureGroup(a)
	groupB := e.closureGroup(b)
	for _, ra := range groupA {
		for _, rb := range groupB {
			x, y := normalize(ra, rb)
			if containsPair(e.inequalities, x, y) {
				return true
			}
		}
	}
	return false
}

// FindEqualities returns every recorded equality pair touching v.
func (e Equations) FindEqualities(v types.LowType) []Pair {
	var out []Pair
	for _, p := range e.equalities {
		if p.A.Equal(v) || p.B.Equal(v) {
			out = append(out, p)
		}
	}
	return out
}

// TryAddEquality asserts a ≡ b. It normalizes the pair, drops trivial
// self-equalities, and fails if the assertion contradicts a recorded
// inequality (after closing over known equalities). On success it
// returns the extended store; on failure it returns the receiver
// unchanged and false.
func (e Equations) TryAddEquality(a, b types.LowType) (Equations, bool) {
	x, y := normalize(a, b)
	if x.Equal(y) {
		return e, true
	}
	if e.contradicts(x, y) {
		return e, false
	}
	if containsPair(e.equalities, x, y) {
		return e, true
	}
	next := e.clone()
	next.equalities = append(next.equalities, Pair{x, y})
	return next, true
}

// AddInequality asserts a ≢ b. It fails if a and b are already forced
// equal by a recorded equality.
func (e Equations) AddInequality(a, b types.LowType) (Equations, bool) {
	x, y := normalize(a, b)
	if containsPair(e.equalities, x, y) || len(e.closureOverlap(x, y)) > 0 {
		return e, false
	}
	if containsPair(e.inequalities, x, y) {
		return e, true
	}
	next := e.clone()
	next.inequalities = append(next.inequalities, Pair{x, y})
	return next, true
}

// closureOverlap returns the intersection of a's and b's equality
// closure groups: non-empty means a and b are already forced equal.
func (e Equations) closureOverlap(a, b types.LowType) []types.LowType {
	groupA := e.closureGroup(a)
	groupB := e.closureGroup(b)
	var out []types.LowType
	for _, ra := range groupA {
		if containsType(groupB, ra) {
			out = append(out, ra)
		}
	}
	return out
}

func (e Equations) clone() Equations {
	next := Equations{
		equalities:   make([]Pair, len(e.equalities), len(e.equalities)+1),
		inequalities: make([]Pair, len(e.inequalities), len(e.inequalities)+1),
	}
	copy(next.equalities, e.equalities)
	copy(next.inequalities, e.inequalities)
	return next
}

// Equalities returns the recorded equality pairs, in insertion order.
func (e Equations) Equalities() []Pair { return e.equalities }

// Inequalities returns the recorded inequality pairs, in insertion order.
func (e Equations) Inequalities() []Pair { return e.inequalities }
