package lowmatch

import (
	"github.com/typesig/apisearch/equation"
	"github.com/typesig/apisearch/types"
)

// testTupleTuple implements dispatch rule 7. Tuples of the same
// value-type/reference-type flavor and the same arity match elementwise
// or, within SwapOrderDepth, after a bounded number of adjacent-element
// transpositions, each costing +1 distance. Transpositions are explored
// smallest-cost-first by breadth so the first match found is the
// cheapest one available.
func testTupleTuple(a, b types.LowType, ctx equation.Context) equation.MatchingResult {
	if a.IsStruct != b.IsStruct {
		return equation.Failure()
	}
	if len(a.Elements) != len(b.Elements) {
		return equation.Failure()
	}
	return trySwapOrders(a.Elements, b.Elements, ctx, ctx.Options.SwapOrderDepth, 0)
}

// trySwapOrders tries as against bs elementwise and, within budget,
// after a bounded number of adjacent-element transpositions among the
// leading len(as)-tailFixed positions (the trailing tailFixed positions,
// such as an Arrow's return type, are never moved). Each transposition
// costs +1 distance. Transpositions are explored smallest-cost-first by
// breadth so the first match found is the cheapest one available.
func trySwapOrders(as, bs []types.LowType, ctx equation.Context, budget, tailFixed int) equation.MatchingResult {
	n := len(as)
	type state struct {
		perm []int
		cost int
	}
	start := make([]int, n)
	for i := range start {
		start[i] = i
	}
	key := func(p []int) string {
		buf := make([]byte, len(p))
		for i, v := range p {
			buf[i] = byte('a' + v)
		}
		return string(buf)
	}

	visited := map[string]bool{key(start): true}
	queue := []state{{start, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		reordered := make([]types.LowType, n)
		for i, idx := range cur.perm {
			reordered[i] = as[idx]
		}
		if r := zipArrow(reordered, bs, ctx.WithDistance(cur.cost)); r.IsMatched() {
			return r
		}
		if cur.cost >= budget {
			continue
		}
		for i := 0; i+1 < n-tailFixed; i++ {
			next := append([]int(nil), cur.perm...)
			next[i], next[i+1] = next[i+1], next[i]
			k := key(next)
			if !visited[k] {
				visited[k] = true
				queue = append(queue, state{next, cur.cost + 1})
			}
		}
	}
	return equation.Failure()
}
