package token

// Kind identifies the lexical class of a token. The same kind space is used
// for tokens of the pattern language and for leaves of the target trees that
// compiled patterns are matched against.
type Kind int

const (
	EOF Kind = iota
	Newline
	Comment
	Name
	Number
	String
	LParen   // (
	RParen   // )
	LBracket // [
	RBracket // ]
	LBrace   // {
	RBrace   // }
	Less     // <
	Greater  // >
	VBar     // |
	Bang     // !
	Equal    // =
	Star     // *
	Plus     // +
	Comma    // ,
)

var kindNames = map[Kind]string{
	EOF:      "EOF",
	Newline:  "NEWLINE",
	Comment:  "COMMENT",
	Name:     "NAME",
	Number:   "NUMBER",
	String:   "STRING",
	LParen:   "LPAREN",
	RParen:   "RPAREN",
	LBracket: "LBRACKET",
	RBracket: "RBRACKET",
	LBrace:   "LBRACE",
	RBrace:   "RBRACE",
	Less:     "LESS",
	Greater:  "GREATER",
	VBar:     "VBAR",
	Bang:     "BANG",
	Equal:    "EQUAL",
	Star:     "STAR",
	Plus:     "PLUS",
	Comma:    "COMMA",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// KindByName resolves the canonical kind name ("NAME", "STAR", ...) back to
// its Kind. Used when decoding serialized trees.
func KindByName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// opKinds maps single-character operator text to its kind. OpKind exposes it
// to the grammar package so string literals in patterns can be classified.
var opKinds = map[string]Kind{
	"(": LParen,
	")": RParen,
	"[": LBracket,
	"]": RBracket,
	"{": LBrace,
	"}": RBrace,
	"<": Less,
	">": Greater,
	"|": VBar,
	"!": Bang,
	"=": Equal,
	"*": Star,
	"+": Plus,
	",": Comma,
}

// OpKind returns the kind for an operator or punctuation literal.
func OpKind(text string) (Kind, bool) {
	k, ok := opKinds[text]
	return k, ok
}

// Token is a single lexical token. Start and End are byte offsets into the
// scanned input; Line is 1-based.
type Token struct {
	Kind  Kind
	Text  string
	Start int
	End   int
	Line  int
}
