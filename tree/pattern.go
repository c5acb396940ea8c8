package tree

import (
	"fmt"
	"strings"

	"github.com/syntree/patmatch/grammar"
	"github.com/syntree/patmatch/token"
)

// Unbounded is the distinguished "no upper bound" repeat count.
const Unbounded = 0x7FFFFFFF

// AnyType in a LeafPattern matches a leaf of any lexical kind.
const AnyType = token.Kind(-1)

// AnySymbol in a NodePattern matches a branch of any symbol.
const AnySymbol = grammar.SymbolID(-1)

// Captures collects the nodes bound to capture names during a match. A
// plain pattern binds a single-node slice; a wildcard binds the run of
// nodes it consumed.
type Captures map[string][]Node

func (c Captures) update(o Captures) {
	for k, v := range o {
		c[k] = v
	}
}

func (c Captures) clone() Captures {
	out := make(Captures, len(c))
	out.update(c)
	return out
}

// Pattern is one compiled matcher node. The variant set is closed:
// LeafPattern, NodePattern, WildcardPattern and NegatedPattern.
type Pattern interface {
	// Optimize returns an equivalent pattern with redundant wrappers
	// collapsed. It is pure and idempotent; callers embed its result, not
	// the receiver.
	Optimize() Pattern
	// Match reports whether the pattern matches a single node, recording
	// captures into caps when it is non-nil.
	Match(node Node, caps Captures) bool
	// MatchSeq reports whether the pattern matches the whole node sequence.
	MatchSeq(nodes []Node, caps Captures) bool
	// Name is the capture name bound to this pattern, or "".
	Name() string
	SetName(name string)
	String() string

	// generateMatches yields (consumed count, captures) for every way the
	// pattern can match a prefix of nodes, stopping early when yield
	// returns true. It reports whether yield stopped the run.
	generateMatches(nodes []Node, yield yieldFn) bool
}

var (
	_ Pattern = (*LeafPattern)(nil)
	_ Pattern = (*NodePattern)(nil)
	_ Pattern = (*WildcardPattern)(nil)
	_ Pattern = (*NegatedPattern)(nil)
)

// base carries the capture name shared by all pattern variants.
type base struct {
	name string
}

func (b *base) Name() string        { return b.name }
func (b *base) SetName(name string) { b.name = name }

func (b *base) capture(caps Captures, node Node) {
	if caps != nil && b.name != "" {
		caps[b.name] = []Node{node}
	}
}

// LeafPattern matches a single leaf of the given kind (any kind when Type
// is AnyType) whose text equals Value (any text when Value is "").
type LeafPattern struct {
	base
	Type  token.Kind
	Value string
}

func NewLeafPattern(typ token.Kind, value string) *LeafPattern {
	return &LeafPattern{Type: typ, Value: value}
}

func (p *LeafPattern) Optimize() Pattern { return p }

func (p *LeafPattern) Match(node Node, caps Captures) bool {
	leaf, ok := node.(*Leaf)
	if !ok {
		return false
	}
	if p.Type != AnyType && leaf.Type != p.Type {
		return false
	}
	if p.Value != "" && leaf.Value != p.Value {
		return false
	}
	p.capture(caps, node)
	return true
}

func (p *LeafPattern) MatchSeq(nodes []Node, caps Captures) bool {
	return matchSeqOne(p, nodes, caps)
}

func (p *LeafPattern) generateMatches(nodes []Node, yield yieldFn) bool {
	return generateOne(p, nodes, yield)
}

func (p *LeafPattern) String() string {
	var sb strings.Builder
	sb.WriteString("leaf(")
	if p.Type == AnyType {
		sb.WriteString("any")
	} else {
		sb.WriteString(p.Type.String())
	}
	if p.Value != "" {
		fmt.Fprintf(&sb, " %q", p.Value)
	}
	sb.WriteByte(')')
	return named(p.name, sb.String())
}

// NodePattern matches an interior node of the given symbol (any symbol when
// Sym is AnySymbol). When Content is non-nil the node's children must match
// it as a whole sequence. A NodePattern with AnySymbol and nil Content
// matches any single node, leaves included.
type NodePattern struct {
	base
	Sym     grammar.SymbolID
	Content []Pattern

	wildcards bool
}

func NewNodePattern(sym grammar.SymbolID, content []Pattern) *NodePattern {
	p := &NodePattern{Sym: sym, Content: content}
	for _, sub := range content {
		if _, ok := sub.(*WildcardPattern); ok {
			p.wildcards = true
			break
		}
	}
	return p
}

func (p *NodePattern) Optimize() Pattern { return p }

func (p *NodePattern) Match(node Node, caps Captures) bool {
	if p.Sym != AnySymbol {
		br, ok := node.(*Branch)
		if !ok || br.Sym != p.Sym {
			return false
		}
	}
	if p.Content != nil {
		br, ok := node.(*Branch)
		if !ok {
			return false
		}
		r := Captures{}
		if !p.submatch(br, r) {
			return false
		}
		if caps != nil {
			caps.update(r)
		}
	}
	p.capture(caps, node)
	return true
}

func (p *NodePattern) submatch(br *Branch, caps Captures) bool {
	if p.wildcards {
		matched := false
		generateMatches(p.Content, br.Children, func(c int, r Captures) bool {
			if c != len(br.Children) {
				return false
			}
			caps.update(r)
			matched = true
			return true
		})
		return matched
	}
	if len(p.Content) != len(br.Children) {
		return false
	}
	for i, sub := range p.Content {
		if !sub.Match(br.Children[i], caps) {
			return false
		}
	}
	return true
}

func (p *NodePattern) MatchSeq(nodes []Node, caps Captures) bool {
	return matchSeqOne(p, nodes, caps)
}

func (p *NodePattern) generateMatches(nodes []Node, yield yieldFn) bool {
	return generateOne(p, nodes, yield)
}

func (p *NodePattern) String() string {
	var sb strings.Builder
	sb.WriteString("node(")
	if p.Sym == AnySymbol {
		sb.WriteString("any")
	} else {
		fmt.Fprintf(&sb, "sym%d", p.Sym)
	}
	if p.Content != nil {
		sb.WriteString(" <")
		for i, sub := range p.Content {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(sub.String())
		}
		sb.WriteByte('>')
	}
	sb.WriteByte(')')
	return named(p.name, sb.String())
}

// WildcardPattern matches a run of Min to Max consecutive nodes, each
// repetition satisfying one of the alternative sequences. Nil Alternatives
// matches any nodes at all. Min > Max is representable and simply never
// matches.
type WildcardPattern struct {
	base
	Alternatives [][]Pattern
	Min, Max     int
}

func NewWildcardPattern(alternatives [][]Pattern, min, max int) *WildcardPattern {
	return &WildcardPattern{Alternatives: alternatives, Min: min, Max: max}
}

// Optimize collapses stacked or degenerate wildcards: a {1,1} wildcard of a
// single one-pattern alternative is that pattern, a {1,1} wildcard with no
// alternatives is an unconstrained NodePattern, and a wildcard directly
// wrapping another wildcard merges when both lower bounds are at most one.
// Collapses that would drop a differently-named wrapper are skipped.
func (p *WildcardPattern) Optimize() Pattern {
	var sub Pattern
	if len(p.Alternatives) == 1 && len(p.Alternatives[0]) == 1 {
		sub = p.Alternatives[0][0]
	}
	if p.Min == 1 && p.Max == 1 {
		if p.Alternatives == nil {
			np := NewNodePattern(AnySymbol, nil)
			np.SetName(p.name)
			return np
		}
		if sub != nil && p.name == sub.Name() {
			return sub.Optimize()
		}
	}
	if p.Min <= 1 {
		if sw, ok := sub.(*WildcardPattern); ok && sw.Min <= 1 && p.name == sw.Name() {
			merged := NewWildcardPattern(sw.Alternatives, p.Min*sw.Min, mulBound(p.Max, sw.Max))
			merged.SetName(sw.Name())
			return merged
		}
	}
	return p
}

func (p *WildcardPattern) Match(node Node, caps Captures) bool {
	return p.MatchSeq([]Node{node}, caps)
}

func (p *WildcardPattern) MatchSeq(nodes []Node, caps Captures) bool {
	matched := false
	p.generateMatches(nodes, func(c int, r Captures) bool {
		if c != len(nodes) {
			return false
		}
		if caps != nil {
			caps.update(r)
			if p.name != "" {
				caps[p.name] = copyNodes(nodes)
			}
		}
		matched = true
		return true
	})
	return matched
}

func (p *WildcardPattern) generateMatches(nodes []Node, yield yieldFn) bool {
	if p.Alternatives == nil {
		max := p.Max
		if len(nodes) < max {
			max = len(nodes)
		}
		for count := p.Min; count <= max; count++ {
			r := Captures{}
			if p.name != "" {
				r[p.name] = copyNodes(nodes[:count])
			}
			if yield(count, r) {
				return true
			}
		}
		return false
	}
	return p.recursiveMatches(nodes, 0, func(count int, r Captures) bool {
		if p.name != "" {
			r = r.clone()
			r[p.name] = copyNodes(nodes[:count])
		}
		return yield(count, r)
	})
}

// recursiveMatches explores one more repetition per level: it yields the
// empty match once the repeat floor is reached, then extends by every
// alternative while below the ceiling.
func (p *WildcardPattern) recursiveMatches(nodes []Node, count int, yield yieldFn) bool {
	if count >= p.Min {
		if yield(0, Captures{}) {
			return true
		}
	}
	if count >= p.Max {
		return false
	}
	for _, alt := range p.Alternatives {
		stopped := generateMatches(alt, nodes, func(c0 int, r0 Captures) bool {
			return p.recursiveMatches(nodes[c0:], count+1, func(c1 int, r1 Captures) bool {
				r := r0.clone()
				r.update(r1)
				return yield(c0+c1, r)
			})
		})
		if stopped {
			return true
		}
	}
	return false
}

func (p *WildcardPattern) String() string {
	var sb strings.Builder
	sb.WriteString("wild(")
	if p.Alternatives == nil {
		sb.WriteString("any")
	} else {
		for i, alt := range p.Alternatives {
			if i > 0 {
				sb.WriteString(" | ")
			}
			for j, sub := range alt {
				if j > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(sub.String())
			}
		}
	}
	if p.Max == Unbounded {
		fmt.Fprintf(&sb, "){%d,}", p.Min)
	} else {
		fmt.Fprintf(&sb, "){%d,%d}", p.Min, p.Max)
	}
	return named(p.name, sb.String())
}

// NegatedPattern matches the empty sequence at positions where Inner cannot
// match any prefix. It never matches a node on its own.
type NegatedPattern struct {
	base
	Inner Pattern
}

func NewNegatedPattern(inner Pattern) *NegatedPattern {
	return &NegatedPattern{Inner: inner}
}

func (p *NegatedPattern) Optimize() Pattern { return p }

func (p *NegatedPattern) Match(node Node, caps Captures) bool { return false }

func (p *NegatedPattern) MatchSeq(nodes []Node, caps Captures) bool {
	return len(nodes) == 0
}

func (p *NegatedPattern) generateMatches(nodes []Node, yield yieldFn) bool {
	if p.Inner == nil {
		if len(nodes) == 0 {
			return yield(0, Captures{})
		}
		return false
	}
	matched := false
	p.Inner.generateMatches(nodes, func(int, Captures) bool {
		matched = true
		return true
	})
	if matched {
		return false
	}
	return yield(0, Captures{})
}

func (p *NegatedPattern) String() string {
	return named(p.name, fmt.Sprintf("not(%s)", p.Inner))
}

func named(name, s string) string {
	if name == "" {
		return s
	}
	return name + "=" + s
}

func copyNodes(nodes []Node) []Node {
	return append([]Node(nil), nodes...)
}

func mulBound(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a >= Unbounded/b {
		return Unbounded
	}
	return a * b
}
