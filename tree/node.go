// Package tree holds concrete target syntax trees and the pattern nodes
// that are matched against them. A tree is made of leaves (tokens) and
// branches (grammar symbols); a pattern is one of four variants compiled
// from pattern text by the patmatch package.
package tree

import (
	"strings"

	"github.com/syntree/patmatch/grammar"
	"github.com/syntree/patmatch/token"
)

// Node is one node of a target syntax tree: either a *Leaf or a *Branch.
type Node interface {
	String() string
	node()
}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Branch)(nil)
)

// Leaf is a token-level node.
type Leaf struct {
	Type  token.Kind
	Value string
}

func NewLeaf(typ token.Kind, value string) *Leaf {
	return &Leaf{Type: typ, Value: value}
}

func (l *Leaf) String() string { return l.Value }

func (l *Leaf) node() {}

// Branch is an interior node tagged with a grammar symbol.
type Branch struct {
	Sym      grammar.SymbolID
	Children []Node
}

func NewBranch(sym grammar.SymbolID, children ...Node) *Branch {
	return &Branch{Sym: sym, Children: children}
}

func (b *Branch) String() string {
	var sb strings.Builder
	for i, ch := range b.Children {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(ch.String())
	}
	return sb.String()
}

func (b *Branch) node() {}
