package syntax

import (
	"fmt"

	"github.com/syntree/patmatch/token"
)

// The pattern grammar, in rough EBNF:
//
//	Matcher:      Alternatives EOF
//	Alternatives: Alternative ('|' Alternative)*
//	Alternative:  (Unit | NegatedUnit)+
//	Unit:         [NAME '='] ( STRING [Repeater]
//	                         | NAME [Details] [Repeater]
//	                         | '(' Alternatives ')' [Repeater]
//	                         | '[' Alternatives ']'
//	                         )
//	NegatedUnit:  '!' (STRING | NAME [Details] | '(' Alternatives ')')
//	Repeater:     '*' | '+' | '{' NUMBER [',' NUMBER] '}'
//	Details:      '<' Alternatives '>'
//
// Note that an optional group '[...]' admits no Repeater suffix.

// ParseError reports pattern text the grammar rejects.
type ParseError struct {
	Msg string
	Tok token.Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s on line %d", e.Msg, e.Tok.Line)
}

// Parser consumes a token stream and builds the pattern syntax tree.
type Parser struct {
	toks []token.Token
	pos  int
}

// NewParser creates a Parser over toks. The stream must end with an EOF
// token and contain no layout tokens.
func NewParser(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse parses one whole pattern and returns its Matcher root.
func Parse(toks []token.Token) (Node, error) {
	return NewParser(toks).Parse()
}

func (p *Parser) Parse() (Node, error) {
	alts, err := p.alternatives()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != token.EOF {
		return nil, p.errorf("unexpected %s after pattern", p.cur().Kind)
	}
	return &Branch{Kind: KindMatcher, Children: []Node{alts}}, nil
}

func (p *Parser) alternatives() (Node, error) {
	alt, err := p.alternative()
	if err != nil {
		return nil, err
	}
	children := []Node{alt}
	for p.cur().Kind == token.VBar {
		children = append(children, p.take())
		alt, err := p.alternative()
		if err != nil {
			return nil, err
		}
		children = append(children, alt)
	}
	return &Branch{Kind: KindAlternatives, Children: children}, nil
}

func (p *Parser) alternative() (Node, error) {
	var children []Node
	for {
		var (
			unit Node
			err  error
		)
		switch p.cur().Kind {
		case token.Bang:
			unit, err = p.negatedUnit()
		case token.Name, token.String, token.LParen, token.LBracket:
			unit, err = p.unit()
		default:
			if len(children) == 0 {
				return nil, p.errorf("expected a pattern, found %s", p.cur().Kind)
			}
			return &Branch{Kind: KindAlternative, Children: children}, nil
		}
		if err != nil {
			return nil, err
		}
		children = append(children, unit)
	}
}

func (p *Parser) unit() (Node, error) {
	var children []Node
	if p.cur().Kind == token.Name && p.peek().Kind == token.Equal {
		children = append(children, p.take(), p.take())
	}

	optional := false
	switch p.cur().Kind {
	case token.String:
		children = append(children, p.take())

	case token.Name:
		children = append(children, p.take())
		if p.cur().Kind == token.Less {
			details, err := p.details()
			if err != nil {
				return nil, err
			}
			children = append(children, details)
		}

	case token.LParen:
		group, err := p.group(token.RParen)
		if err != nil {
			return nil, err
		}
		children = append(children, group...)

	case token.LBracket:
		group, err := p.group(token.RBracket)
		if err != nil {
			return nil, err
		}
		children = append(children, group...)
		optional = true

	default:
		return nil, p.errorf("expected a pattern, found %s", p.cur().Kind)
	}

	if !optional {
		switch p.cur().Kind {
		case token.Star, token.Plus, token.LBrace:
			repeat, err := p.repeater()
			if err != nil {
				return nil, err
			}
			children = append(children, repeat)
		}
	}
	return &Branch{Kind: KindUnit, Children: children}, nil
}

func (p *Parser) negatedUnit() (Node, error) {
	children := []Node{p.take()} // '!'
	switch p.cur().Kind {
	case token.String:
		children = append(children, p.take())
	case token.Name:
		children = append(children, p.take())
		if p.cur().Kind == token.Less {
			details, err := p.details()
			if err != nil {
				return nil, err
			}
			children = append(children, details)
		}
	case token.LParen:
		group, err := p.group(token.RParen)
		if err != nil {
			return nil, err
		}
		children = append(children, group...)
	default:
		return nil, p.errorf("expected a pattern after '!', found %s", p.cur().Kind)
	}
	return &Branch{Kind: KindNegatedUnit, Children: children}, nil
}

// group parses '(' Alternatives ')' or '[' Alternatives ']' and returns the
// three children, delimiters included.
func (p *Parser) group(closing token.Kind) ([]Node, error) {
	open := p.take()
	alts, err := p.alternatives()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(closing)
	if err != nil {
		return nil, err
	}
	return []Node{open, alts, end}, nil
}

func (p *Parser) repeater() (Node, error) {
	switch p.cur().Kind {
	case token.Star, token.Plus:
		return &Branch{Kind: KindRepeater, Children: []Node{p.take()}}, nil
	}

	children := []Node{p.take()} // '{'
	count, err := p.expect(token.Number)
	if err != nil {
		return nil, err
	}
	children = append(children, count)
	if p.cur().Kind == token.Comma {
		children = append(children, p.take())
		count, err := p.expect(token.Number)
		if err != nil {
			return nil, err
		}
		children = append(children, count)
	}
	end, err := p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}
	children = append(children, end)
	return &Branch{Kind: KindRepeater, Children: children}, nil
}

func (p *Parser) details() (Node, error) {
	open := p.take() // '<'
	alts, err := p.alternatives()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(token.Greater)
	if err != nil {
		return nil, err
	}
	return &Branch{Kind: KindDetails, Children: []Node{open, alts, end}}, nil
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) peek() token.Token {
	if p.pos+1 >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+1]
}

// take consumes the current token as a Leaf.
func (p *Parser) take() *Leaf {
	tok := p.toks[p.pos]
	p.pos++
	return &Leaf{Tok: tok.Kind, Text: tok.Text, pos: tok.Start}
}

func (p *Parser) expect(kind token.Kind) (*Leaf, error) {
	if p.cur().Kind != kind {
		return nil, p.errorf("expected %s, found %s", kind, p.cur().Kind)
	}
	return p.take(), nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Tok: p.cur()}
}
