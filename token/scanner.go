package token

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Scanner tokenizes pattern text. Tokens are produced one at a time; the
// stream is finite and ends with a single EOF token.
type Scanner struct {
	input string // the entire input to tokenize
	pos   int    // current reading position in input
	line  int    // current 1-based line
}

// NewScanner returns a new Scanner reading from input.
func NewScanner(input string) *Scanner {
	return &Scanner{input: input, line: 1}
}

// ScanAll tokenizes the whole input, including layout tokens (newlines and
// comments). Callers that feed a parser usually filter those out first.
func ScanAll(input string) ([]Token, error) {
	s := NewScanner(input)
	var toks []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

// Next returns the next token. After the EOF token has been returned, every
// further call returns EOF again.
func (s *Scanner) Next() (Token, error) {
	s.skipBlank()
	start := s.pos
	if s.pos >= len(s.input) {
		return s.token(EOF, start), nil
	}

	switch c := s.input[s.pos]; {
	case c == '\n':
		s.pos++
		tok := s.token(Newline, start)
		s.line++
		return tok, nil

	case c == '#':
		for s.pos < len(s.input) && s.input[s.pos] != '\n' {
			s.pos++
		}
		return s.token(Comment, start), nil

	case c == '\'' || c == '"':
		return s.scanString(start)

	case isDigit(c):
		for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
			s.pos++
		}
		return s.token(Number, start), nil

	case isNameStart(c):
		for s.pos < len(s.input) && isNameRune(s.input[s.pos]) {
			s.pos++
		}
		return s.token(Name, start), nil

	default:
		if kind, ok := OpKind(string(c)); ok {
			s.pos++
			return s.token(kind, start), nil
		}
		r, _ := utf8.DecodeRuneInString(s.input[s.pos:])
		return Token{}, fmt.Errorf("unexpected character %q on line %d", r, s.line)
	}
}

// scanString scans a quoted literal. The token text keeps the surrounding
// quotes and any escapes; EvalString produces the cooked value.
func (s *Scanner) scanString(start int) (Token, error) {
	quote := s.input[s.pos]
	s.pos++
	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case '\\':
			s.pos += 2
		case quote:
			s.pos++
			return s.token(String, start), nil
		case '\n':
			return Token{}, fmt.Errorf("newline in string literal on line %d", s.line)
		default:
			s.pos++
		}
	}
	return Token{}, fmt.Errorf("unterminated string literal on line %d", s.line)
}

func (s *Scanner) skipBlank() {
	for s.pos < len(s.input) {
		c := s.input[s.pos]
		if c == '\n' || !isBlank(c) {
			return
		}
		s.pos++
	}
}

func (s *Scanner) token(kind Kind, start int) Token {
	return Token{
		Kind:  kind,
		Text:  s.input[start:s.pos],
		Start: start,
		End:   s.pos,
		Line:  s.line,
	}
}

func isBlank(c byte) bool {
	return c != '\n' && unicode.IsSpace(rune(c))
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isNameStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isNameRune(c byte) bool {
	return isNameStart(c) || isDigit(c)
}
