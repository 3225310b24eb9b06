package expr

import "golang.org/x/exp/slices"

// Iso reports whether x and y are equivalent up to the order and
// grouping of their additive terms. When x is an Add, both sides are
// decomposed and their terms must pair off one to one, each pair having
// Iso factors in the same positions. Otherwise the comparison is Eq,
// applied through matrices and negations. A product is not expanded,
// so Iso(a*(b+c), a*b+a*c) is false while the reverse is true.
//
// The term matching is an exhaustive backtracking search, so its cost
// grows factorially with the number of terms.
func Iso(x, y Exp) bool {
	if _, ok := x.(*Add); ok {
		as, bs := Decompose(x), Decompose(y)
		return Injective(as, bs) && Injective(bs, as)
	}
	switch a := x.(type) {
	case *Negate:
		b, ok := y.(*Negate)
		return ok && Iso(a.X, b.X)
	case *Mat:
		b, ok := y.(*Mat)
		return ok && slices.EqualFunc(a.Rows, b.Rows, func(p, q []Exp) bool {
			return slices.EqualFunc(p, q, Iso)
		})
	}
	return Eq(x, y)
}

// ArrIso reports whether two factor lists have the same length and Iso
// factors at every position. No reordering is attempted.
func ArrIso(a, b []Exp) bool {
	return slices.EqualFunc(a, b, Iso)
}

// Injective reports whether the terms of as can each be matched to a
// distinct ArrIso term of bs, such that the unmatched remainders are in
// turn mutually Injective. An empty list only matches an empty list.
func Injective(as, bs [][]Exp) bool {
	if len(as) == 0 || len(bs) == 0 {
		return len(as) == len(bs)
	}
	for j, b := range bs {
		if !ArrIso(as[0], b) {
			continue
		}
		ra := as[1:]
		rb := slices.Delete(slices.Clone(bs), j, j+1)
		if Injective(ra, rb) && Injective(rb, ra) {
			return true
		}
	}
	return false
}
