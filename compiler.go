package patmatch

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/syntree/patmatch/grammar"
	"github.com/syntree/patmatch/syntax"
	"github.com/syntree/patmatch/token"
	"github.com/syntree/patmatch/tree"
)

// Compiler compiles pattern text against one target grammar. It is
// stateless apart from its read-only configuration and safe for concurrent
// use.
type Compiler struct {
	grammar  *grammar.Grammar
	tokenMap map[string]token.Kind
	logger   *zap.Logger
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger makes the compiler debug-log every compiled pattern.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Compiler) {
		c.logger = logger
	}
}

// New returns a Compiler resolving symbol names against g.
func New(g *grammar.Grammar, opts ...Option) *Compiler {
	c := &Compiler{
		grammar: g,
		// Uppercase token names a pattern may use for leaf matches.
		tokenMap: map[string]token.Kind{
			"NAME":   token.Name,
			"STRING": token.String,
			"NUMBER": token.Number,
			"TOKEN":  tree.AnyType,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile compiles a pattern string to a matcher tree.
func (c *Compiler) Compile(pattern string) (tree.Pattern, error) {
	compiled, _, err := c.compile(pattern)
	return compiled, err
}

// CompileWithTree compiles a pattern and also returns the pattern's own
// syntax tree, for debugging and introspection.
func (c *Compiler) CompileWithTree(pattern string) (tree.Pattern, syntax.Node, error) {
	return c.compile(pattern)
}

func (c *Compiler) compile(pattern string) (tree.Pattern, syntax.Node, error) {
	toks, err := scanPattern(pattern)
	if err != nil {
		return nil, nil, &SyntaxError{Msg: err.Error()}
	}
	root, err := syntax.Parse(toks)
	if err != nil {
		return nil, nil, &SyntaxError{Msg: err.Error()}
	}
	compiled, err := c.compileNode(root)
	if err != nil {
		return nil, nil, err
	}
	c.logger.Debug("compiled pattern",
		zap.String("pattern", pattern),
		zap.Stringer("matcher", compiled))
	return compiled, root, nil
}

// scanPattern tokenizes pattern text and drops layout-only tokens so the
// parser sees significant tokens only.
func scanPattern(input string) ([]token.Token, error) {
	toks, err := token.ScanAll(input)
	if err != nil {
		return nil, err
	}
	kept := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		switch t.Kind {
		case token.Newline, token.Comment:
			continue
		}
		kept = append(kept, t)
	}
	return kept, nil
}

// compileNode compiles one syntax-tree node, recursively. Dispatch is a
// closed switch over the node kinds; a kind with no case cannot come from
// the parser and panics.
func (c *Compiler) compileNode(node syntax.Node) (tree.Pattern, error) {
	br, ok := node.(*syntax.Branch)
	if !ok {
		panic(fmt.Sprintf("patmatch: compile of bare leaf %q", node))
	}

	if br.Kind == syntax.KindMatcher {
		// Unwrap the root to skip one recursion.
		br = br.Children[0].(*syntax.Branch)
	}

	switch br.Kind {
	case syntax.KindAlternatives:
		// The odd children are the '|' separators.
		alts := make([]tree.Pattern, 0, (len(br.Children)+1)/2)
		for i := 0; i < len(br.Children); i += 2 {
			alt, err := c.compileNode(br.Children[i])
			if err != nil {
				return nil, err
			}
			alts = append(alts, alt)
		}
		if len(alts) == 1 {
			return alts[0], nil
		}
		branches := make([][]tree.Pattern, len(alts))
		for i, alt := range alts {
			branches[i] = []tree.Pattern{alt}
		}
		return tree.NewWildcardPattern(branches, 1, 1).Optimize(), nil

	case syntax.KindAlternative:
		units := make([]tree.Pattern, len(br.Children))
		for i, ch := range br.Children {
			unit, err := c.compileNode(ch)
			if err != nil {
				return nil, err
			}
			units[i] = unit
		}
		if len(units) == 1 {
			return units[0], nil
		}
		return tree.NewWildcardPattern([][]tree.Pattern{units}, 1, 1).Optimize(), nil

	case syntax.KindNegatedUnit:
		inner, err := c.compileBasic(br.Children[1:], nil)
		if err != nil {
			return nil, err
		}
		return tree.NewNegatedPattern(inner).Optimize(), nil

	case syntax.KindUnit:
		return c.compileUnit(br)

	default:
		panic(fmt.Sprintf("patmatch: compile of %s node", br.Kind))
	}
}

// compileUnit strips the capture prefix, then the repeat suffix, compiles
// the basic pattern left in the middle, and reassembles: repeat wrapping
// first, then the capture name on the outermost node.
func (c *Compiler) compileUnit(unit *syntax.Branch) (tree.Pattern, error) {
	name, rest := splitName(unit.Children)
	repeat, rest := splitRepeat(rest)

	pattern, err := c.compileBasic(rest, repeat)
	if err != nil {
		return nil, err
	}

	if repeat != nil {
		min, max := repeatBounds(repeat)
		if min != 1 || max != 1 {
			pattern = pattern.Optimize()
			pattern = tree.NewWildcardPattern([][]tree.Pattern{{pattern}}, min, max)
		}
	}

	if name != "" {
		pattern.SetName(name)
	}
	return pattern.Optimize(), nil
}

// splitName strips a leading "name =" capture prefix, returning the name
// and the remaining children.
func splitName(nodes []syntax.Node) (string, []syntax.Node) {
	if len(nodes) >= 3 {
		if eq, ok := nodes[1].(*syntax.Leaf); ok && eq.Tok == token.Equal {
			return nodes[0].(*syntax.Leaf).Text, nodes[2:]
		}
	}
	return "", nodes
}

// splitRepeat strips a trailing Repeater, returning it and the remaining
// children.
func splitRepeat(nodes []syntax.Node) (*syntax.Branch, []syntax.Node) {
	if len(nodes) >= 2 {
		if rep, ok := nodes[len(nodes)-1].(*syntax.Branch); ok && rep.Kind == syntax.KindRepeater {
			return rep, nodes[:len(nodes)-1]
		}
	}
	return nil, nodes
}

// repeatBounds computes the (min, max) repeat counts of a Repeater node.
// An explicit {n,m} is taken as written, min > max included.
func repeatBounds(repeat *syntax.Branch) (min, max int) {
	first := repeat.Children[0].(*syntax.Leaf)
	switch first.Tok {
	case token.Star:
		return 0, tree.Unbounded
	case token.Plus:
		return 1, tree.Unbounded
	case token.LBrace:
		// '{' NUMBER '}' or '{' NUMBER ',' NUMBER '}'
		min = getInt(repeat.Children[1])
		max = min
		if len(repeat.Children) == 5 {
			max = getInt(repeat.Children[3])
		}
		return min, max
	default:
		panic(fmt.Sprintf("patmatch: malformed repeater %q", repeat))
	}
}

// getInt reads a repeat count. The grammar only puts NUMBER tokens here, so
// anything else is a defect.
func getInt(node syntax.Node) int {
	leaf, ok := node.(*syntax.Leaf)
	if !ok || leaf.Tok != token.Number {
		panic(fmt.Sprintf("patmatch: repeat count %q is not a number", node))
	}
	n, err := strconv.Atoi(leaf.Text)
	if err != nil {
		panic(fmt.Sprintf("patmatch: repeat count %q: %v", leaf.Text, err))
	}
	return n
}

// compileBasic compiles the basic pattern left after capture and repeat
// extraction: STRING | NAME [Details] | '(' Alternatives ')' |
// '[' Alternatives ']'. repeat is only consulted to rule out a repeat on an
// optional group, which the grammar already excludes.
func (c *Compiler) compileBasic(nodes []syntax.Node, repeat *syntax.Branch) (tree.Pattern, error) {
	first, ok := nodes[0].(*syntax.Leaf)
	if !ok {
		panic(fmt.Sprintf("patmatch: basic pattern starts with %q", nodes[0]))
	}

	switch first.Tok {
	case token.String:
		value, err := token.EvalString(first.Text)
		if err != nil {
			return nil, &SyntaxError{Msg: err.Error()}
		}
		return tree.NewLeafPattern(c.literalKind(value), value), nil

	case token.Name:
		if isUpperName(first.Text) {
			kind, ok := c.tokenMap[first.Text]
			if !ok {
				return nil, syntaxErrorf("invalid token: %q", first.Text)
			}
			if len(nodes) > 1 {
				return nil, syntaxErrorf("can't have details for token")
			}
			return tree.NewLeafPattern(kind, ""), nil
		}

		sym := tree.AnySymbol
		switch {
		case first.Text == "any":
			// any interior-node symbol
		case !strings.HasPrefix(first.Text, "_"):
			id, ok := c.grammar.Symbol(first.Text)
			if !ok {
				return nil, syntaxErrorf("invalid symbol: %q", first.Text)
			}
			sym = id
		default:
			// reserved names bypass resolution
		}

		var content []tree.Pattern
		if len(nodes) > 1 {
			details := nodes[1].(*syntax.Branch)
			sub, err := c.compileNode(details.Children[1])
			if err != nil {
				return nil, err
			}
			content = []tree.Pattern{sub}
		}
		return tree.NewNodePattern(sym, content), nil

	case token.LParen:
		// Grouping has no matcher-tree representation of its own.
		return c.compileNode(nodes[1])

	case token.LBracket:
		if repeat != nil {
			panic("patmatch: optional group with a repeat suffix")
		}
		sub, err := c.compileNode(nodes[1])
		if err != nil {
			return nil, err
		}
		// Left unoptimized; the caller's final Optimize pass covers it.
		return tree.NewWildcardPattern([][]tree.Pattern{{sub}}, 0, 1), nil

	default:
		panic(fmt.Sprintf("patmatch: basic pattern starts with %s", first.Tok))
	}
}

// literalKind classifies a string literal's cooked value: alphabetic
// literals match keyword and name leaves, anything else is looked up in the
// operator table. An operator outside the table matches on text alone.
func (c *Compiler) literalKind(value string) token.Kind {
	r, _ := utf8.DecodeRuneInString(value)
	if unicode.IsLetter(r) {
		return token.Name
	}
	if kind, ok := c.grammar.OpKind(value); ok {
		return kind
	}
	return tree.AnyType
}

// isUpperName reports whether a name is all-uppercase, i.e. refers to a
// token rather than a grammar symbol.
func isUpperName(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
