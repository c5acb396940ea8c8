package syntax

import (
	"fmt"
	"strings"

	"github.com/syntree/patmatch/token"
)

// NodeKind enumerates the interior node kinds of the pattern grammar. The
// set is closed: every kind the parser can produce has a case in the
// compiler's dispatch.
type NodeKind int

const (
	KindMatcher NodeKind = iota
	KindAlternatives
	KindAlternative
	KindNegatedUnit
	KindUnit
	KindRepeater
	KindDetails
)

func (k NodeKind) String() string {
	switch k {
	case KindMatcher:
		return "Matcher"
	case KindAlternatives:
		return "Alternatives"
	case KindAlternative:
		return "Alternative"
	case KindNegatedUnit:
		return "NegatedUnit"
	case KindUnit:
		return "Unit"
	case KindRepeater:
		return "Repeater"
	case KindDetails:
		return "Details"
	default:
		return "unknown"
	}
}

// Node is a node of the pattern's own syntax tree: either a *Branch tagged
// with a NodeKind, or a *Leaf carrying a token.
type Node interface {
	Pos() int
	String() string
	node()
}

var (
	_ Node = (*Branch)(nil)
	_ Node = (*Leaf)(nil)
)

// Branch is an interior node. Children keep separator tokens in place: the
// odd children of an Alternatives branch are the '|' leaves, a Unit's
// capture prefix occupies its first two children, and so on. The compiler
// relies on those positions.
type Branch struct {
	Kind     NodeKind
	Children []Node
}

func (b *Branch) Pos() int {
	if len(b.Children) == 0 {
		return 0
	}
	return b.Children[0].Pos()
}

func (b *Branch) String() string {
	parts := make([]string, len(b.Children))
	for i, ch := range b.Children {
		parts[i] = ch.String()
	}
	return fmt.Sprintf("%s(%s)", b.Kind, strings.Join(parts, " "))
}

func (b *Branch) node() {}

// Leaf wraps a single token of the pattern text.
type Leaf struct {
	Tok  token.Kind
	Text string
	pos  int
}

func (l *Leaf) Pos() int { return l.pos }

func (l *Leaf) String() string { return l.Text }

func (l *Leaf) node() {}
