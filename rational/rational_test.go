package rational

import (
	"errors"
	"math/big"
	"testing"
)

func TestReduce(t *testing.T) {
	vs := []struct {
		num, den int64
		n, d     int64
		s        string
	}{
		{num: 2, den: 4, n: 1, d: 2, s: "1/2"},
		{num: 0, den: 7, n: 0, d: 1, s: "0/1"},
		{num: -6, den: 3, n: -2, d: 1, s: "-2/1"},
		{num: 3, den: -3, n: 1, d: -1, s: "-1/1"},
		{num: 10, den: -4, n: 5, d: -2, s: "-5/2"},
	}
	for i, v := range vs {
		r := R(v.num, v.den)
		if got := r.Numerator().Int64(); got != v.n {
			t.Errorf("[%d] numerator got=%d want=%d", i, got, v.n)
		}
		if got := r.Denominator().Int64(); got != v.d {
			t.Errorf("[%d] denominator got=%d want=%d", i, got, v.d)
		}
		if got := r.String(); got != v.s {
			t.Errorf("[%d] got=%q want=%q", i, got, v.s)
		}
	}
}

func TestZeroDenominator(t *testing.T) {
	if _, err := New(big.NewInt(1), big.NewInt(0)); !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("got err=%v, want %v", err, ErrZeroDenominator)
	}
	defer func() {
		if recover() == nil {
			t.Error("R(1, 0) did not panic")
		}
	}()
	R(1, 0)
}

func TestArithmetic(t *testing.T) {
	vs := []struct {
		a, b     Rational
		sum, prd string
	}{
		{a: R(1, 2), b: R(1, 3), sum: "5/6", prd: "1/6"},
		{a: R(1, 2), b: R(1, 2), sum: "1/1", prd: "1/4"},
		{a: R(2, 3), b: R(-2, 3), sum: "0/1", prd: "-4/9"},
		{a: R(3, 4), b: FromInt(big.NewInt(2)), sum: "11/4", prd: "3/2"},
	}
	for i, v := range vs {
		if got := v.a.Add(v.b).String(); got != v.sum {
			t.Errorf("[%d] %v+%v got=%q want=%q", i, v.a, v.b, got, v.sum)
		}
		if got := v.a.Mul(v.b).String(); got != v.prd {
			t.Errorf("[%d] %v*%v got=%q want=%q", i, v.a, v.b, got, v.prd)
		}
	}
}

func TestEqual(t *testing.T) {
	if !R(1, 2).Equal(R(2, 4)) {
		t.Error("1/2 != 2/4")
	}
	if R(1, -2).Equal(R(-1, 2)) {
		t.Error("sign placement should distinguish 1/-2 from -1/2")
	}
	if got := R(1, -2).Float64(); got != -0.5 {
		t.Errorf("got=%v want=-0.5", got)
	}
}

func TestImmutable(t *testing.T) {
	n, d := big.NewInt(3), big.NewInt(9)
	r, err := New(n, d)
	if err != nil {
		t.Fatalf("New(3, 9): %v", err)
	}
	if n.Int64() != 3 || d.Int64() != 9 {
		t.Errorf("arguments modified: %v/%v", n, d)
	}
	r.Numerator().SetInt64(100)
	if got := r.String(); got != "1/3" {
		t.Errorf("got=%q want=%q", got, "1/3")
	}
}
