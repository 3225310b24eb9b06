// Package expr represents algebraic expressions as immutable trees and
// rewrites them into a sum of products normal form.
//
// Nodes are never modified after construction. Every transformation
// returns new nodes, and subtrees may be shared freely between
// expressions.
package expr

import (
	"strings"

	"golang.org/x/exp/slices"

	"zappem.net/pub/math/canon/rational"
	"zappem.net/pub/math/canon/scalar"
)

// Exp is an expression node. The set of node types is closed: *Scalar,
// *Var, *Add, *Mul, *Power, *Negate and *Mat.
type Exp interface {
	String() string
	exp()
}

// Scalar is a numerical constant.
type Scalar struct {
	N scalar.Value
}

// Var is a named symbol.
type Var struct {
	Name string
}

// Add is the sum L+R. Order and association are kept as constructed.
type Add struct {
	L, R Exp
}

// Mul is the product L*R. Order and association are kept as
// constructed.
type Mul struct {
	L, R Exp
}

// Power is Base^Exponent.
type Power struct {
	Base, Exponent Exp
}

// Negate is -X.
type Negate struct {
	X Exp
}

// Mat is a matrix of expressions. The algebra of this package treats
// it as an opaque value; see the matrix package for matrix arithmetic.
type Mat struct {
	Rows [][]Exp
}

func (*Scalar) exp() {}
func (*Var) exp()    {}
func (*Add) exp()    {}
func (*Mul) exp()    {}
func (*Power) exp()  {}
func (*Negate) exp() {}
func (*Mat) exp()    {}

// Num wraps a scalar value as an expression.
func Num(n scalar.Value) *Scalar {
	return &Scalar{N: n}
}

// Int is an integer constant.
func Int(n int64) *Scalar {
	return &Scalar{N: scalar.I(n)}
}

// Rat is the rational constant num/den. It panics if den is zero.
func Rat(num, den int64) *Scalar {
	return &Scalar{N: scalar.R(rational.R(num, den))}
}

// Sym is a symbol.
func Sym(name string) *Var {
	return &Var{Name: name}
}

// NewAdd returns the literal sum l+r.
func NewAdd(l, r Exp) *Add {
	return &Add{L: l, R: r}
}

// NewMul returns the literal product l*r.
func NewMul(l, r Exp) *Mul {
	return &Mul{L: l, R: r}
}

// NewPower returns base^exponent.
func NewPower(base, exponent Exp) *Power {
	return &Power{Base: base, Exponent: exponent}
}

// Pow returns base raised to an integer power.
func Pow(base Exp, n int64) *Power {
	return &Power{Base: base, Exponent: Int(n)}
}

// Neg returns -x.
func Neg(x Exp) *Negate {
	return &Negate{X: x}
}

// NewMat copies rows of expressions into a matrix node.
func NewMat(rows [][]Exp) *Mat {
	m := &Mat{Rows: make([][]Exp, len(rows))}
	for i, r := range rows {
		m.Rows[i] = slices.Clone(r)
	}
	return m
}

// Eq is structural equality: both trees have the same shape, the same
// node types in the same order, and equal leaves. It knows nothing of
// commutativity or associativity, so Add(a,b) is not Eq to Add(b,a).
func Eq(x, y Exp) bool {
	switch a := x.(type) {
	case *Scalar:
		b, ok := y.(*Scalar)
		return ok && a.N.Equal(b.N)
	case *Var:
		b, ok := y.(*Var)
		return ok && a.Name == b.Name
	case *Add:
		b, ok := y.(*Add)
		return ok && Eq(a.L, b.L) && Eq(a.R, b.R)
	case *Mul:
		b, ok := y.(*Mul)
		return ok && Eq(a.L, b.L) && Eq(a.R, b.R)
	case *Power:
		b, ok := y.(*Power)
		return ok && Eq(a.Base, b.Base) && Eq(a.Exponent, b.Exponent)
	case *Negate:
		b, ok := y.(*Negate)
		return ok && Eq(a.X, b.X)
	case *Mat:
		b, ok := y.(*Mat)
		return ok && slices.EqualFunc(a.Rows, b.Rows, func(p, q []Exp) bool {
			return slices.EqualFunc(p, q, Eq)
		})
	}
	return false
}

// Binding strengths used to parenthesize printed expressions.
const (
	precAdd = iota + 1
	precMul
	precNeg
	precPow
	precAtom
)

func precedence(e Exp) int {
	switch x := e.(type) {
	case *Add:
		return precAdd
	case *Mul:
		return precMul
	case *Negate:
		return precNeg
	case *Power:
		return precPow
	case *Scalar:
		if s := x.N.String(); strings.HasPrefix(s, "-") || strings.Contains(s, "/") {
			return precMul
		}
	}
	return precAtom
}

// wrap displays e, in parentheses if it binds less tightly than p.
func wrap(e Exp, p int) string {
	if precedence(e) < p {
		return "(" + e.String() + ")"
	}
	return e.String()
}

func (s *Scalar) String() string { return s.N.String() }
func (v *Var) String() string    { return v.Name }

func (a *Add) String() string {
	return wrap(a.L, precAdd) + " + " + wrap(a.R, precAdd+1)
}

func (m *Mul) String() string {
	return wrap(m.L, precMul) + "*" + wrap(m.R, precMul+1)
}

func (p *Power) String() string {
	return wrap(p.Base, precPow+1) + "^" + wrap(p.Exponent, precPow+1)
}

func (n *Negate) String() string {
	return "-" + wrap(n.X, precNeg+1)
}

// String displays a matrix as [[a, b], [c, d]].
func (m *Mat) String() string {
	var rs []string
	for _, r := range m.Rows {
		var cs []string
		for _, c := range r {
			cs = append(cs, c.String())
		}
		rs = append(rs, "["+strings.Join(cs, ", ")+"]")
	}
	return "[" + strings.Join(rs, ", ") + "]"
}
