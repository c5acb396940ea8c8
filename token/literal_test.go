package token

import "testing"

func TestEvalString(t *testing.T) {
	tests := []struct {
		lit     string
		want    string
		wantErr bool
	}{
		{lit: `'def'`, want: "def"},
		{lit: `"return"`, want: "return"},
		{lit: `'+'`, want: "+"},
		{lit: `''`, want: ""},
		{lit: `'a\nb'`, want: "a\nb"},
		{lit: `'\t\r\v\f\a\b'`, want: "\t\r\v\f\a\b"},
		{lit: `'\''`, want: "'"},
		{lit: `"\""`, want: `"`},
		{lit: `'\\'`, want: `\`},
		{lit: `'\x41'`, want: "A"},
		{lit: `'\101'`, want: "A"},
		{lit: `'\0'`, want: "\x00"},
		// unrecognized escapes stay verbatim
		{lit: `'\q'`, want: `\q`},
		{lit: `'\x4'`, wantErr: true},
		{lit: `'\xzz'`, wantErr: true},
		{lit: `x`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.lit, func(t *testing.T) {
			got, err := EvalString(tt.lit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EvalString(%q) error = %v, wantErr %v", tt.lit, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("EvalString(%q) = %q, want %q", tt.lit, got, tt.want)
			}
		})
	}
}
