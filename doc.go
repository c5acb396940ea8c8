/*
Package patmatch compiles textual structural patterns into matcher trees.

A pattern describes the shape of a target syntax tree: leaves by lexical
kind or literal text, interior nodes by grammar symbol, with alternation,
negation, optional groups, repetition and named captures:

	funcdef<'def' name=NAME parameters body=block>
	stmt=(simple_stmt | compound_stmt)
	'try' !'finally' NAME*

Compile turns a pattern into a tree.Pattern which the tree package matches
against concrete trees:

	g := grammar.New("toy", "funcdef", "block")
	c := patmatch.New(g)
	pat, err := c.Compile("funcdef<'def' name=NAME any*>")
	if err != nil {
		// the pattern text is malformed: *SyntaxError
	}
	caps := tree.Captures{}
	if pat.Match(node, caps) {
		// caps["name"] holds the function name leaf
	}

The pattern grammar:

	Alternatives: Alternative ('|' Alternative)*
	Alternative:  (Unit | NegatedUnit)+
	Unit:         [NAME '='] ( STRING [Repeater]
	                         | NAME [Details] [Repeater]
	                         | '(' Alternatives ')' [Repeater]
	                         | '[' Alternatives ']'
	                         )
	NegatedUnit:  '!' (STRING | NAME [Details] | '(' Alternatives ')')
	Repeater:     '*' | '+' | '{' NUMBER [',' NUMBER] '}'
	Details:      '<' Alternatives '>'

Uppercase names match leaves: NAME, STRING and NUMBER match their lexical
kind, TOKEN matches any leaf. Lowercase names match interior nodes and are
resolved against the target grammar; "any" matches any node and names
starting with "_" skip resolution. A Details clause constrains an interior
node's children; a Repeater matches a run of consecutive nodes.

Compilation is pure and holds no shared mutable state: one Compiler may be
used from any number of goroutines, and compiling the same pattern twice
builds two independent matcher trees.
*/
package patmatch
