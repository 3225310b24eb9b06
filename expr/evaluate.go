package expr

// Evaluate simplifies e completely. It decomposes e into a sum of
// products, evaluates every factor, folds the factors of each term with
// Product and then folds the terms with Sum. Merging like terms can
// leave factors that only fold on another pass, so passes repeat until
// the result stops changing.
func Evaluate(e Exp) Exp {
	r := evaluate(e)
	for {
		s := evaluate(r)
		if Eq(s, r) {
			return r
		}
		r = s
	}
}

// evaluate is a single simplification pass over e.
func evaluate(e Exp) Exp {
	ts := Decompose(e)
	if len(ts) == 1 && len(ts[0]) == 1 {
		return ts[0][0]
	}
	ps := make([]Exp, 0, len(ts))
	for _, t := range ts {
		fs := make([]Exp, len(t))
		for i, f := range t {
			fs[i] = Evaluate(f)
		}
		ps = append(ps, Product(fs[0], fs[1:]...))
	}
	return Sum(ps[0], ps[1:]...)
}
