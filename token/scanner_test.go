package token

import (
	"testing"
)

func TestScanAll(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Token
		wantErr bool
	}{
		{
			name:  "single name",
			input: "power",
			want: []Token{
				{Kind: Name, Text: "power", Start: 0, End: 5, Line: 1},
				{Kind: EOF, Text: "", Start: 5, End: 5, Line: 1},
			},
		},
		{
			name:  "capture and repeat",
			input: "n=NUMBER*",
			want: []Token{
				{Kind: Name, Text: "n", Start: 0, End: 1, Line: 1},
				{Kind: Equal, Text: "=", Start: 1, End: 2, Line: 1},
				{Kind: Name, Text: "NUMBER", Start: 2, End: 8, Line: 1},
				{Kind: Star, Text: "*", Start: 8, End: 9, Line: 1},
				{Kind: EOF, Text: "", Start: 9, End: 9, Line: 1},
			},
		},
		{
			name:  "string literal keeps quotes",
			input: `'def' "x"`,
			want: []Token{
				{Kind: String, Text: "'def'", Start: 0, End: 5, Line: 1},
				{Kind: String, Text: `"x"`, Start: 6, End: 9, Line: 1},
				{Kind: EOF, Text: "", Start: 9, End: 9, Line: 1},
			},
		},
		{
			name:  "braces and numbers",
			input: "x{2,5}",
			want: []Token{
				{Kind: Name, Text: "x", Start: 0, End: 1, Line: 1},
				{Kind: LBrace, Text: "{", Start: 1, End: 2, Line: 1},
				{Kind: Number, Text: "2", Start: 2, End: 3, Line: 1},
				{Kind: Comma, Text: ",", Start: 3, End: 4, Line: 1},
				{Kind: Number, Text: "5", Start: 4, End: 5, Line: 1},
				{Kind: RBrace, Text: "}", Start: 5, End: 6, Line: 1},
				{Kind: EOF, Text: "", Start: 6, End: 6, Line: 1},
			},
		},
		{
			name:  "newline and comment are layout tokens",
			input: "a # choice\n| b",
			want: []Token{
				{Kind: Name, Text: "a", Start: 0, End: 1, Line: 1},
				{Kind: Comment, Text: "# choice", Start: 2, End: 10, Line: 1},
				{Kind: Newline, Text: "\n", Start: 10, End: 11, Line: 1},
				{Kind: VBar, Text: "|", Start: 11, End: 12, Line: 2},
				{Kind: Name, Text: "b", Start: 13, End: 14, Line: 2},
				{Kind: EOF, Text: "", Start: 14, End: 14, Line: 2},
			},
		},
		{
			name:    "unterminated string",
			input:   "'oops",
			wantErr: true,
		},
		{
			name:    "newline in string",
			input:   "'a\nb'",
			wantErr: true,
		},
		{
			name:    "stray character",
			input:   "a ; b",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScanAll(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ScanAll(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ScanAll(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScannerEOFIsSticky(t *testing.T) {
	s := NewScanner("x")
	var kinds []Kind
	for i := 0; i < 4; i++ {
		tok, err := s.Next()
		if err != nil {
			t.Fatal(err)
		}
		kinds = append(kinds, tok.Kind)
	}
	want := []Kind{Name, EOF, EOF, EOF}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("call %d returned %s, want %s", i, kinds[i], want[i])
		}
	}
}
