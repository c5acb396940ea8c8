package tree

// yieldFn receives one way of matching: the number of nodes consumed and the
// captures recorded along that path. Returning true stops the enumeration.
type yieldFn func(count int, caps Captures) bool

// generateMatches enumerates every way the pattern sequence can match a
// prefix of nodes. Each pattern consumes some prefix and the rest of the
// sequence continues on the remainder; backtracking falls out of the
// enumeration order.
func generateMatches(patterns []Pattern, nodes []Node, yield yieldFn) bool {
	if len(patterns) == 0 {
		return yield(0, Captures{})
	}
	first, rest := patterns[0], patterns[1:]
	return first.generateMatches(nodes, func(c0 int, r0 Captures) bool {
		if len(rest) == 0 {
			return yield(c0, r0)
		}
		return generateMatches(rest, nodes[c0:], func(c1 int, r1 Captures) bool {
			r := r0.clone()
			r.update(r1)
			return yield(c0+c1, r)
		})
	})
}

// matchSeqOne implements MatchSeq for patterns that consume exactly one node.
func matchSeqOne(p Pattern, nodes []Node, caps Captures) bool {
	if len(nodes) != 1 {
		return false
	}
	return p.Match(nodes[0], caps)
}

// generateOne implements generateMatches for patterns that consume exactly
// one node.
func generateOne(p Pattern, nodes []Node, yield yieldFn) bool {
	if len(nodes) == 0 {
		return false
	}
	r := Captures{}
	if !p.Match(nodes[0], r) {
		return false
	}
	return yield(1, r)
}
