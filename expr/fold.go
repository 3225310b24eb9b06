package expr

import (
	"golang.org/x/exp/slices"

	"zappem.net/pub/math/canon/scalar"
)

// without returns a copy of es with the elements at i and j removed,
// where i < j.
func without(es []Exp, i, j int) []Exp {
	rest := slices.Delete(slices.Clone(es), j, j+1)
	return slices.Delete(rest, i, i+1)
}

// Product multiplies head by each expression of tail. Any two scalars,
// wherever they sit in the list, are multiplied together first. Then
// neighboring factors that are powers of the same base are combined.
// What remains is joined with literal Mul nodes in list order.
func Product(head Exp, tail ...Exp) Exp {
	es := append([]Exp{head}, tail...)
	for i := range es {
		a, ok := es[i].(*Scalar)
		if !ok {
			continue
		}
		for j := i + 1; j < len(es); j++ {
			if b, ok := es[j].(*Scalar); ok {
				return Product(Num(a.N.Mul(b.N)), without(es, i, j)...)
			}
		}
	}
	for i := 0; i+1 < len(es); i++ {
		if m, ok := mergeFactors(es[i], es[i+1]); ok {
			es = slices.Insert(without(es, i, i+1), i, m)
			return Product(es[0], es[1:]...)
		}
	}
	acc := head
	for _, e := range tail {
		acc = NewMul(acc, e)
	}
	return acc
}

// mergeFactors combines a*b when both are powers of a common base.
func mergeFactors(a, b Exp) (Exp, bool) {
	pa, aok := a.(*Power)
	pb, bok := b.(*Power)
	switch {
	case aok && bok:
		if Eq(pa.Base, pb.Base) || Iso(pa.Base, pb.Base) {
			return raise(pa.Base, Sum(pa.Exponent, pb.Exponent)), true
		}
	case aok:
		if Iso(pa.Base, b) {
			return raise(pa.Base, Sum(pa.Exponent, one)), true
		}
	case bok:
		if Iso(pb.Base, a) {
			return raise(pb.Base, Sum(pb.Exponent, one)), true
		}
	default:
		if Iso(a, b) {
			return Pow(a, 2), true
		}
	}
	return nil, false
}

// raise returns base^exponent, dropping exponents of 0 and 1.
func raise(base, exponent Exp) Exp {
	if s, ok := exponent.(*Scalar); ok {
		if s.N.IsZero() {
			return Int(1)
		}
		if Eq(s, one) {
			return base
		}
	}
	return NewPower(base, exponent)
}

// Sum adds each expression of tail to head. Any pair in the list, not
// only neighbors, is combined when one of them is zero, when both are
// scalars, or when they are like terms: single products whose
// non-numerical factors match position by position. Like terms merge
// into the sum of their coefficients times the shared factors. What
// remains is joined with literal Add nodes in list order.
func Sum(head Exp, tail ...Exp) Exp {
	es := append([]Exp{head}, tail...)
	for i := range es {
		for j := i + 1; j < len(es); j++ {
			if m, ok := mergeTerms(es[i], es[j]); ok {
				return Sum(m, without(es, i, j)...)
			}
		}
	}
	acc := head
	for _, e := range tail {
		acc = NewAdd(acc, e)
	}
	return acc
}

func isZero(e Exp) bool {
	s, ok := e.(*Scalar)
	return ok && s.N.IsZero()
}

// mergeTerms combines a+b if they admit an exact simplification.
func mergeTerms(a, b Exp) (Exp, bool) {
	if isZero(a) {
		return b, true
	}
	if isZero(b) {
		return a, true
	}
	sa, aok := a.(*Scalar)
	sb, bok := b.(*Scalar)
	if aok && bok {
		return Num(sa.N.Add(sb.N)), true
	}
	ca, fa, ok := coefficient(a)
	if !ok {
		return nil, false
	}
	cb, fb, ok := coefficient(b)
	if !ok || !ArrIso(fa, fb) {
		return nil, false
	}
	c := ca.Add(cb)
	if c.IsZero() {
		return Int(0), true
	}
	var acc Exp = Num(c)
	for _, f := range fa {
		acc = NewMul(acc, f)
	}
	return acc, true
}

// coefficient splits an expression that decomposes to a single
// product into the product of its scalar factors and the list of its
// other factors.
func coefficient(e Exp) (scalar.Value, []Exp, bool) {
	ts := Decompose(e)
	if len(ts) != 1 {
		return scalar.Value{}, nil, false
	}
	c := scalar.I(1)
	var fs []Exp
	for _, f := range ts[0] {
		if s, ok := f.(*Scalar); ok {
			c = c.Mul(s.N)
			continue
		}
		fs = append(fs, f)
	}
	return c, fs, true
}
