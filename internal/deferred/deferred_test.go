package deferred

import "testing"

func TestIsExpression(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "", want: false},
		{input: "1.5", want: false},
		{input: "{1,2,3}", want: false},
		{input: "silent", want: false},
		{input: "$pressure", want: true},
		{input: "table[0]", want: true},
		{input: "[", want: true},
		{input: "]", want: true},
		{input: "`sin(t)`", want: true},
		{input: "a$b", want: true},
		{input: "{1, $dt, 3}", want: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := IsExpression(tc.input); got != tc.want {
				t.Fatalf("IsExpression(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
