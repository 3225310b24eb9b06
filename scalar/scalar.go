// Package scalar defines the numbers that appear in expressions: exact
// integers, exact rationals and, as a fallback, inexact floats.
//
// Exact arithmetic is used whenever both operands are exact. Once an
// inexact value is involved the result is computed with float64.
package scalar

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"zappem.net/pub/math/canon/rational"
)

// ErrDivisionByZero is returned when inverting zero.
var ErrDivisionByZero = errors.New("division by zero")

type kind uint8

const (
	kindInt kind = iota
	kindRat
	kindFloat
)

// Value is an immutable number. The zero Value is the integer 0.
type Value struct {
	k kind
	i *big.Int
	r rational.Rational
	f float64
}

// Int copies an integer into a Value.
func Int(n *big.Int) Value {
	return Value{k: kindInt, i: new(big.Int).Set(n)}
}

// I converts an int64 into a Value.
func I(n int64) Value {
	return Value{k: kindInt, i: big.NewInt(n)}
}

// R converts a rational into a Value. A zero numerator yields the
// integer 0 and a unit denominator yields the numerator. A fraction
// whose numerator and denominator have the same magnitude yields
// numerator/numerator, which is 1 whatever the sign.
func R(r rational.Rational) Value {
	n, d := r.Numerator(), r.Denominator()
	switch {
	case n.Sign() == 0:
		return I(0)
	case d.Cmp(big.NewInt(1)) == 0:
		return Value{k: kindInt, i: n}
	case new(big.Int).Abs(n).Cmp(new(big.Int).Abs(d)) == 0:
		return Value{k: kindInt, i: new(big.Int).Quo(n, n)}
	}
	return Value{k: kindRat, r: r}
}

// F converts a float64 into a Value. A finite float with no fractional
// part is an integer and is stored exactly.
func F(f float64) Value {
	if !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f) {
		n, _ := big.NewFloat(f).Int(nil)
		return Value{k: kindInt, i: n}
	}
	return Value{k: kindFloat, f: f}
}

// integer returns the integer held by v, treating a nil as zero.
func (v Value) integer() *big.Int {
	if v.i == nil {
		return new(big.Int)
	}
	return v.i
}

// IsExact indicates v is an integer or a rational.
func (v Value) IsExact() bool {
	return v.k != kindFloat
}

// IsInt indicates v is an exact integer.
func (v Value) IsInt() bool {
	return v.k == kindInt
}

// IsRat indicates v is an exact non-integer fraction.
func (v Value) IsRat() bool {
	return v.k == kindRat
}

// Int64 returns the value of an exact integer that fits in an int64.
func (v Value) Int64() (int64, bool) {
	if v.k != kindInt || !v.integer().IsInt64() {
		return 0, false
	}
	return v.integer().Int64(), true
}

// Rat returns v as an exact fraction. The boolean is false for
// inexact values.
func (v Value) Rat() (rational.Rational, bool) {
	switch v.k {
	case kindInt:
		return rational.FromInt(v.integer()), true
	case kindRat:
		return v.r, true
	}
	return rational.Rational{}, false
}

// Float64 returns the nearest float64 to v.
func (v Value) Float64() float64 {
	switch v.k {
	case kindRat:
		return v.r.Float64()
	case kindFloat:
		return v.f
	}
	f, _ := new(big.Float).SetInt(v.integer()).Float64()
	return f
}

// IsZero confirms v is zero.
func (v Value) IsZero() bool {
	switch v.k {
	case kindRat:
		return v.r.Numerator().Sign() == 0
	case kindFloat:
		return v.f == 0
	}
	return v.integer().Sign() == 0
}

// Add returns v+w.
func (v Value) Add(w Value) Value {
	switch {
	case v.k == kindInt && w.k == kindInt:
		return Value{k: kindInt, i: new(big.Int).Add(v.integer(), w.integer())}
	case v.IsExact() && w.IsExact():
		a, _ := v.Rat()
		b, _ := w.Rat()
		return R(a.Add(b))
	}
	return F(v.Float64() + w.Float64())
}

// Mul returns v*w.
func (v Value) Mul(w Value) Value {
	switch {
	case v.k == kindInt && w.k == kindInt:
		return Value{k: kindInt, i: new(big.Int).Mul(v.integer(), w.integer())}
	case v.IsExact() && w.IsExact():
		a, _ := v.Rat()
		b, _ := w.Rat()
		return R(a.Mul(b))
	}
	return F(v.Float64() * w.Float64())
}

// Inverse returns 1/v. Zero has no inverse.
func (v Value) Inverse() (Value, error) {
	if v.IsZero() {
		return Value{}, ErrDivisionByZero
	}
	switch v.k {
	case kindRat:
		r, err := rational.New(v.r.Denominator(), v.r.Numerator())
		if err != nil {
			return Value{}, err
		}
		return R(r), nil
	case kindFloat:
		return F(1 / v.f), nil
	}
	r, err := rational.New(big.NewInt(1), v.integer())
	if err != nil {
		return Value{}, err
	}
	return R(r), nil
}

// Equal compares two values of the same kind. Integers and floats
// compare by value; rationals by numerator and denominator.
func (v Value) Equal(w Value) bool {
	if v.k != w.k {
		return false
	}
	switch v.k {
	case kindRat:
		return v.r.Equal(w.r)
	case kindFloat:
		return v.f == w.f
	}
	return v.integer().Cmp(w.integer()) == 0
}

// String displays a value.
func (v Value) String() string {
	switch v.k {
	case kindRat:
		return v.r.String()
	case kindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
	return v.integer().String()
}
