package tree

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/syntree/patmatch/grammar"
	"github.com/syntree/patmatch/token"
)

// jsonNode is the wire form of a tree node. Leaves carry "kind" and "value";
// branches carry "symbol" and "children".
type jsonNode struct {
	Kind     string     `json:"kind,omitempty"`
	Value    string     `json:"value,omitempty"`
	Symbol   string     `json:"symbol,omitempty"`
	Children []jsonNode `json:"children,omitempty"`
}

// EncodeJSON writes node to w, resolving branch symbols through g.
func EncodeJSON(w io.Writer, g *grammar.Grammar, node Node) error {
	jn, err := toJSON(g, node)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jn)
}

// DecodeJSON reads one tree from r, resolving symbol names through g.
func DecodeJSON(r io.Reader, g *grammar.Grammar) (Node, error) {
	var jn jsonNode
	if err := json.NewDecoder(r).Decode(&jn); err != nil {
		return nil, err
	}
	return fromJSON(g, jn)
}

func toJSON(g *grammar.Grammar, node Node) (jsonNode, error) {
	switch n := node.(type) {
	case *Leaf:
		return jsonNode{Kind: n.Type.String(), Value: n.Value}, nil
	case *Branch:
		name, ok := g.SymbolName(n.Sym)
		if !ok {
			return jsonNode{}, fmt.Errorf("symbol %d is not part of grammar %s", n.Sym, g.Name())
		}
		children := make([]jsonNode, len(n.Children))
		for i, ch := range n.Children {
			jc, err := toJSON(g, ch)
			if err != nil {
				return jsonNode{}, err
			}
			children[i] = jc
		}
		return jsonNode{Symbol: name, Children: children}, nil
	default:
		return jsonNode{}, fmt.Errorf("unknown node %T", node)
	}
}

func fromJSON(g *grammar.Grammar, jn jsonNode) (Node, error) {
	switch {
	case jn.Symbol != "":
		sym, ok := g.Symbol(jn.Symbol)
		if !ok {
			return nil, fmt.Errorf("unknown symbol %q in grammar %s", jn.Symbol, g.Name())
		}
		children := make([]Node, len(jn.Children))
		for i, jc := range jn.Children {
			ch, err := fromJSON(g, jc)
			if err != nil {
				return nil, err
			}
			children[i] = ch
		}
		return NewBranch(sym, children...), nil
	case jn.Kind != "":
		kind, ok := token.KindByName(jn.Kind)
		if !ok {
			return nil, fmt.Errorf("unknown token kind %q", jn.Kind)
		}
		return NewLeaf(kind, jn.Value), nil
	default:
		return nil, fmt.Errorf("node has neither kind nor symbol")
	}
}
