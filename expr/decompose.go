package expr

var (
	one      = Int(1)
	minusOne = Int(-1)
)

// Decompose expands e into a sum of products. Each element of the
// returned slice is a term, and each term is a list of factors to be
// multiplied. Anything not recognized is returned as a single term
// holding a single factor, itself.
//
// The returned slices are newly allocated and belong to the caller.
func Decompose(e Exp) [][]Exp {
	switch x := e.(type) {
	case *Negate:
		ts := Decompose(x.X)
		for i, t := range ts {
			ts[i] = append([]Exp{minusOne}, t...)
		}
		return ts
	case *Power:
		return decomposePower(x)
	case *Mul:
		ls, rs := Decompose(x.L), Decompose(x.R)
		ts := make([][]Exp, 0, len(ls)*len(rs))
		for _, l := range ls {
			for _, r := range rs {
				t := make([]Exp, 0, len(l)+len(r))
				t = append(t, l...)
				ts = append(ts, append(t, r...))
			}
		}
		return ts
	case *Add:
		return append(Decompose(x.L), Decompose(x.R)...)
	}
	return [][]Exp{{e}}
}

// exponentOf returns the exponent of p when it is a literal integer.
func exponentOf(p *Power) (int64, bool) {
	s, ok := p.Exponent.(*Scalar)
	if !ok {
		return 0, false
	}
	return s.N.Int64()
}

// decomposePower expands non-negative integer powers by repeated
// multiplication. Other powers of a single product distribute over
// its factors, and anything else is a single factor.
func decomposePower(p *Power) [][]Exp {
	if n, ok := exponentOf(p); ok && n >= 0 {
		switch n {
		case 0:
			return [][]Exp{{one}}
		case 1:
			return Decompose(p.Base)
		}
		var m Exp = p.Base
		for i := int64(1); i < n; i++ {
			m = NewMul(m, p.Base)
		}
		return Decompose(m)
	}
	if bs := Decompose(p.Base); len(bs) == 1 && len(bs[0]) != 0 {
		fs := make([]Exp, len(bs[0]))
		for i, f := range bs[0] {
			fs[i] = NewPower(f, p.Exponent)
		}
		return [][]Exp{fs}
	}
	return [][]Exp{{p}}
}
