package patmatch

import "fmt"

// SyntaxError reports a malformed pattern: text the pattern grammar rejects,
// an unknown token or symbol name, or a Details clause on a token leaf. It
// is the only error kind Compile returns; a syntax-tree shape the grammar
// cannot produce is a program defect and panics instead.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return "pattern syntax error: " + e.Msg
}

func syntaxErrorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}
