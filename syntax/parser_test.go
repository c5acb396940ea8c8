package syntax

import (
	"testing"

	"github.com/syntree/patmatch/token"
)

func scan(t *testing.T, input string) []token.Token {
	t.Helper()
	toks, err := token.ScanAll(input)
	if err != nil {
		t.Fatalf("ScanAll(%q): %v", input, err)
	}
	return toks
}

// branchAt walks the tree by child indices, failing if the path leaves the
// tree or lands on a leaf.
func branchAt(t *testing.T, node Node, path ...int) *Branch {
	t.Helper()
	for _, i := range path {
		br, ok := node.(*Branch)
		if !ok {
			t.Fatalf("expected a branch at %v, got leaf %q", path, node)
		}
		if i >= len(br.Children) {
			t.Fatalf("branch %s has %d children, want index %d", br.Kind, len(br.Children), i)
		}
		node = br.Children[i]
	}
	br, ok := node.(*Branch)
	if !ok {
		t.Fatalf("expected a branch at %v, got leaf %q", path, node)
	}
	return br
}

func TestParseShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, root Node)
	}{
		{
			name:  "single unit",
			input: "NAME",
			check: func(t *testing.T, root Node) {
				matcher := branchAt(t, root)
				if matcher.Kind != KindMatcher || len(matcher.Children) != 1 {
					t.Fatalf("root = %s", root)
				}
				unit := branchAt(t, root, 0, 0, 0)
				if unit.Kind != KindUnit || len(unit.Children) != 1 {
					t.Fatalf("unit = %s", unit)
				}
			},
		},
		{
			name:  "alternation keeps separators",
			input: "a | b | c",
			check: func(t *testing.T, root Node) {
				alts := branchAt(t, root, 0)
				if alts.Kind != KindAlternatives || len(alts.Children) != 5 {
					t.Fatalf("alternatives = %s", alts)
				}
				for _, i := range []int{1, 3} {
					leaf, ok := alts.Children[i].(*Leaf)
					if !ok || leaf.Tok != token.VBar {
						t.Errorf("child %d = %q, want '|'", i, alts.Children[i])
					}
				}
			},
		},
		{
			name:  "capture prefix occupies first two children",
			input: "body=block",
			check: func(t *testing.T, root Node) {
				unit := branchAt(t, root, 0, 0, 0)
				if len(unit.Children) != 3 {
					t.Fatalf("unit = %s", unit)
				}
				eq, ok := unit.Children[1].(*Leaf)
				if !ok || eq.Tok != token.Equal {
					t.Errorf("second child = %q, want '='", unit.Children[1])
				}
			},
		},
		{
			name:  "repeater is the last child",
			input: "NAME{2,5}",
			check: func(t *testing.T, root Node) {
				unit := branchAt(t, root, 0, 0, 0)
				rep := branchAt(t, unit.Children[len(unit.Children)-1])
				if rep.Kind != KindRepeater || len(rep.Children) != 5 {
					t.Fatalf("repeater = %s", rep)
				}
			},
		},
		{
			name:  "details clause",
			input: "funcdef<'def' any*>",
			check: func(t *testing.T, root Node) {
				unit := branchAt(t, root, 0, 0, 0)
				details := branchAt(t, unit.Children[1])
				if details.Kind != KindDetails || len(details.Children) != 3 {
					t.Fatalf("details = %s", details)
				}
			},
		},
		{
			name:  "negated unit",
			input: "'try' !'finally'",
			check: func(t *testing.T, root Node) {
				alt := branchAt(t, root, 0, 0)
				if alt.Kind != KindAlternative || len(alt.Children) != 2 {
					t.Fatalf("alternative = %s", alt)
				}
				neg := branchAt(t, alt.Children[1])
				if neg.Kind != KindNegatedUnit {
					t.Fatalf("negated = %s", neg)
				}
			},
		},
		{
			name:  "optional group",
			input: "[NAME]",
			check: func(t *testing.T, root Node) {
				unit := branchAt(t, root, 0, 0, 0)
				if len(unit.Children) != 3 {
					t.Fatalf("unit = %s", unit)
				}
				open, ok := unit.Children[0].(*Leaf)
				if !ok || open.Tok != token.LBracket {
					t.Errorf("first child = %q, want '['", unit.Children[0])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse(scan(t, tt.input))
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			tt.check(t, root)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty pattern", input: ""},
		{name: "unbalanced paren", input: "(a | b"},
		{name: "unbalanced bracket", input: "[a"},
		{name: "repeat on optional group", input: "[NAME]*"},
		{name: "bare separator", input: "a |"},
		{name: "repeater without count", input: "a{}"},
		{name: "repeater with trailing comma", input: "a{2,}"},
		{name: "negated repeat", input: "!a*"},
		{name: "named negation", input: "x=!a"},
		{name: "trailing junk", input: "a)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(scan(t, tt.input))
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.input)
			}
		})
	}
}
