package token

import "testing"

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{name: "empty", input: "", want: nil},
		{
			name:  "integer",
			input: "42",
			want:  []Token{{Number, "42"}},
		},
		{
			name:  "signed real with exponent",
			input: "-1.5e-06",
			want:  []Token{{Number, "-1.5e-06"}},
		},
		{
			name:  "bareword",
			input: "silent",
			want:  []Token{{Word, "silent"}},
		},
		{
			name:  "path-like word",
			input: "mesh/level0.vtu",
			want:  []Token{{Word, "mesh/level0.vtu"}},
		},
		{
			name:  "compact tuple",
			input: "{1,2,3}",
			want: []Token{
				{LBrace, "{"}, {Number, "1"}, {Comma, ","},
				{Number, "2"}, {Comma, ","}, {Number, "3"}, {RBrace, "}"},
			},
		},
		{
			name:  "spaced tuple",
			input: "{ 1 , 2 }",
			want: []Token{
				{LBrace, "{"}, {Whitespace, " "}, {Number, "1"}, {Whitespace, " "},
				{Comma, ","}, {Whitespace, " "}, {Number, "2"}, {Whitespace, " "},
				{RBrace, "}"},
			},
		},
		{
			name:  "word starting with digit",
			input: "3dmesh",
			want:  []Token{{Number, "3"}, {Word, "dmesh"}},
		},
		{
			name:  "unrecognized byte becomes single-byte word",
			input: "a=b",
			want:  []Token{{Word, "a"}, {Word, "="}, {Word, "b"}},
		},
		{
			name:  "lone sign is a word",
			input: "+",
			want:  []Token{{Word, "+"}},
		},
		{
			name:  "whitespace run",
			input: " \t\n",
			want:  []Token{{Whitespace, " \t\n"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("token count = %d, want %d (%v)", len(got), len(tc.want), got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("token %d = %v %q, want %v %q", i, got[i].Kind, got[i].Text, tc.want[i].Kind, tc.want[i].Text)
				}
			}
		})
	}
}

func TestTokenizeNeverDropsBytes(t *testing.T) {
	inputs := []string{
		"{1,2,3}", "a = b", "!!weird??", "{ {1,2}, {3} }", "-.5e+10", "x**2",
	}
	for _, input := range inputs {
		tokens := Tokenize(input)
		if got := Join(tokens, 0, len(tokens)); got != input {
			t.Fatalf("Join(Tokenize(%q)) = %q, want input back", input, got)
		}
	}
}
