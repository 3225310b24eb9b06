// Package rational holds exact fractions of arbitrary sized integers.
//
// A Rational is always stored with the greatest common divisor of its
// numerator and denominator divided out. The sign is left where the
// arithmetic put it, so 1/-2 and -1/2 are distinct representations of
// the same value.
package rational

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrZeroDenominator is returned when a fraction has no defined value.
var ErrZeroDenominator = errors.New("zero denominator")

// Rational is an immutable reduced fraction.
type Rational struct {
	num, den *big.Int
}

// New returns the reduced fraction num/den. The arguments are copied.
func New(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, ErrZeroDenominator
	}
	return reduce(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// R converts two integers to a reduced fraction. Like big.NewRat, it
// panics if den is zero, so it is intended for literal values.
func R(num, den int64) Rational {
	r, err := New(big.NewInt(num), big.NewInt(den))
	if err != nil {
		panic(fmt.Sprintf("rational.R(%d, %d): %v", num, den, err))
	}
	return r
}

// FromInt returns n/1.
func FromInt(n *big.Int) Rational {
	return Rational{num: new(big.Int).Set(n), den: big.NewInt(1)}
}

// reduce divides num and den by their greatest common divisor. It
// takes ownership of both arguments.
func reduce(num, den *big.Int) Rational {
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), new(big.Int).Abs(den))
	if g.Sign() != 0 && g.Cmp(big.NewInt(1)) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	return Rational{num: num, den: den}
}

// Numerator returns a copy of the numerator.
func (r Rational) Numerator() *big.Int {
	if r.num == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(r.num)
}

// Denominator returns a copy of the denominator.
func (r Rational) Denominator() *big.Int {
	if r.den == nil {
		return big.NewInt(1)
	}
	return new(big.Int).Set(r.den)
}

// Add returns r+s in reduced form.
func (r Rational) Add(s Rational) Rational {
	a, b := r.Numerator(), r.Denominator()
	c, d := s.Numerator(), s.Denominator()
	num := new(big.Int).Add(a.Mul(a, d), c.Mul(c, b))
	return reduce(num, b.Mul(b, d))
}

// Mul returns r*s in reduced form.
func (r Rational) Mul(s Rational) Rational {
	a, b := r.Numerator(), r.Denominator()
	return reduce(a.Mul(a, s.Numerator()), b.Mul(b, s.Denominator()))
}

// Equal compares numerators and denominators. Fractions of equal
// value but with their signs in different places are not Equal.
func (r Rational) Equal(s Rational) bool {
	return r.Numerator().Cmp(s.Numerator()) == 0 && r.Denominator().Cmp(s.Denominator()) == 0
}

// Float64 returns the nearest float64 value of r.
func (r Rational) Float64() float64 {
	f, _ := new(big.Rat).SetFrac(r.Numerator(), r.Denominator()).Float64()
	return f
}

// String displays r as num/den, moving any sign to the front.
func (r Rational) String() string {
	n, d := r.Numerator(), r.Denominator()
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	return fmt.Sprintf("%v/%v", n, d)
}
