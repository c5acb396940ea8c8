package token

import (
	"fmt"
	"strings"
)

var simpleEscapes = map[byte]byte{
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'\'': '\'',
	'"':  '"',
	'\\': '\\',
}

// EvalString evaluates a quoted string literal, as scanned, to its cooked
// value: surrounding quotes stripped and backslash escapes resolved.
// Unrecognized escapes are kept verbatim.
func EvalString(lit string) (string, error) {
	if len(lit) < 2 || (lit[0] != '\'' && lit[0] != '"') || lit[len(lit)-1] != lit[0] {
		return "", fmt.Errorf("malformed string literal %s", lit)
	}
	body := lit[1 : len(lit)-1]
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}

	var out strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 == len(body) {
			out.WriteByte(c)
			continue
		}
		i++
		tail := body[i]
		switch {
		case simpleEscapes[tail] != 0:
			out.WriteByte(simpleEscapes[tail])
		case tail == 'x':
			if i+2 >= len(body) {
				return "", fmt.Errorf("invalid hex string escape in %s", lit)
			}
			n, err := hexByte(body[i+1], body[i+2])
			if err != nil {
				return "", fmt.Errorf("invalid hex string escape in %s", lit)
			}
			out.WriteByte(n)
			i += 2
		case tail >= '0' && tail <= '7':
			n := int(tail - '0')
			for k := 0; k < 2 && i+1 < len(body) && body[i+1] >= '0' && body[i+1] <= '7'; k++ {
				i++
				n = n*8 + int(body[i]-'0')
			}
			out.WriteByte(byte(n))
		default:
			out.WriteByte('\\')
			out.WriteByte(tail)
		}
	}
	return out.String(), nil
}

func hexByte(hi, lo byte) (byte, error) {
	h, err := hexDigit(hi)
	if err != nil {
		return 0, err
	}
	l, err := hexDigit(lo)
	if err != nil {
		return 0, err
	}
	return h<<4 | l, nil
}

func hexDigit(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, fmt.Errorf("not a hex digit: %q", c)
}
