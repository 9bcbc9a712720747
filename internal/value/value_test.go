package value

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{name: "blank", v: NewBlank(), want: ""},
		{name: "integer", v: NewInteger(-7), want: "-7"},
		{name: "real", v: NewReal(1.5e-6), want: "1.5e-06"},
		{name: "token", v: NewToken("silent"), want: "silent"},
		{name: "deferred", v: NewDeferred("$dt"), want: "$dt"},
		{
			name: "vector",
			v:    NewVector([]Value{NewReal(0), NewReal(0.5), NewReal(1)}),
			want: "{0,0.5,1}",
		},
		{
			name: "matrix",
			v:    NewMatrix([]Value{NewArray([]Value{NewInteger(1)}), NewArray(nil)}),
			want: "{{1},{}}",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.String(); got != tc.want {
				t.Fatalf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	a := NewVector([]Value{NewReal(1), NewReal(2)})
	b := NewVector([]Value{NewReal(1), NewReal(2)})
	if !a.Equal(b) {
		t.Fatal("equal vectors reported unequal")
	}
	if a.Equal(NewVector([]Value{NewReal(1)})) {
		t.Fatal("different lengths reported equal")
	}
	if a.Equal(NewArray([]Value{NewReal(1), NewReal(2)})) {
		t.Fatal("different kinds reported equal")
	}
	if NewInteger(1).Equal(NewReal(1)) {
		t.Fatal("integer and real reported equal")
	}
	if !NewDeferred("$x").Equal(NewDeferred("$x")) {
		t.Fatal("equal deferred reported unequal")
	}
}

func TestFloatCoercion(t *testing.T) {
	if got := NewInteger(3).Float(); got != 3.0 {
		t.Fatalf("integer Float() = %g", got)
	}
	if got := NewReal(2.5).Float(); got != 2.5 {
		t.Fatalf("real Float() = %g", got)
	}
}
