package expr

import (
	"testing"
)

var (
	x  = Sym("x")
	y  = Sym("y")
	z  = Sym("z")
	n0 = Int(0)
	n1 = Int(1)
	n2 = Int(2)
	n3 = Int(3)
)

// samples is a spread of expressions covering every node type.
func samples() []Exp {
	return []Exp{
		n1,
		Rat(1, 2),
		x,
		NewAdd(x, n1),
		NewAdd(x, NewMul(y, NewAdd(x, n1))),
		NewMul(NewAdd(x, n1), NewAdd(y, n1)),
		Pow(NewAdd(x, n1), 2),
		NewPower(x, y),
		Neg(NewAdd(x, y)),
		NewMat([][]Exp{{n1, n0}, {n0, n1}}),
	}
}

func TestEqReflexive(t *testing.T) {
	for i, e := range samples() {
		if !Eq(e, e) {
			t.Errorf("[%d] %v is not Eq to itself", i, e)
		}
	}
}

func TestEq(t *testing.T) {
	vs := []struct {
		a, b Exp
		want bool
	}{
		{a: NewAdd(x, y), b: NewAdd(x, y), want: true},
		{a: NewAdd(x, y), b: NewAdd(y, x), want: false},
		{a: NewMul(x, y), b: NewMul(y, x), want: false},
		{a: NewAdd(NewAdd(x, y), z), b: NewAdd(x, NewAdd(y, z)), want: false},
		{a: Rat(1, 2), b: Rat(2, 4), want: true},
		{a: Rat(1, 2), b: n1, want: false},
		{a: Rat(4, 2), b: n2, want: true},
		{a: x, b: Sym("x"), want: true},
		{a: x, b: y, want: false},
		{a: Pow(x, 2), b: NewMul(x, x), want: false},
		{a: Neg(x), b: NewMul(Int(-1), x), want: false},
		{a: NewMat([][]Exp{{x, y}}), b: NewMat([][]Exp{{x, y}}), want: true},
		{a: NewMat([][]Exp{{x, y}}), b: NewMat([][]Exp{{x}, {y}}), want: false},
		{a: NewMat([][]Exp{{NewAdd(x, y)}}), b: NewMat([][]Exp{{NewAdd(y, x)}}), want: false},
	}
	for i, v := range vs {
		if got := Eq(v.a, v.b); got != v.want {
			t.Errorf("[%d] Eq(%v, %v) got=%v want=%v", i, v.a, v.b, got, v.want)
		}
	}
}

func TestString(t *testing.T) {
	vs := []struct {
		e Exp
		s string
	}{
		{e: NewAdd(NewAdd(NewMul(n3, y), NewMul(x, y)), Pow(y, 2)), s: "3*y + x*y + y^2"},
		{e: NewMul(x, NewAdd(y, n1)), s: "x*(y + 1)"},
		{e: NewAdd(x, NewAdd(y, n1)), s: "x + (y + 1)"},
		{e: Neg(NewAdd(x, n1)), s: "-(x + 1)"},
		{e: Pow(NewAdd(x, n1), 2), s: "(x + 1)^2"},
		{e: Pow(Pow(x, 2), 3), s: "(x^2)^3"},
		{e: NewMul(n2, Rat(1, 2)), s: "2*(1/2)"},
		{e: NewAdd(x, Int(-1)), s: "x + -1"},
		{e: NewMat([][]Exp{{n1, n0}, {n0, n1}}), s: "[[1, 0], [0, 1]]"},
	}
	for i, v := range vs {
		if s := v.e.String(); s != v.s {
			t.Errorf("[%d] got=%q want=%q", i, s, v.s)
		}
	}
}

func TestNewMatCopies(t *testing.T) {
	rows := [][]Exp{{x, y}}
	m := NewMat(rows)
	rows[0][0] = z
	if !Eq(m.Rows[0][0], x) {
		t.Errorf("NewMat shares its rows: got=%v", m)
	}
}
