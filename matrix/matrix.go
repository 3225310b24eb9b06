// Package matrix manages matrices of expressions.
//
// The expr package treats a matrix as a single opaque value. This
// package supplies the element-wise algebra, simplifying each cell
// with expr.Evaluate.
package matrix

import (
	"fmt"
	"strings"

	"zappem.net/pub/math/canon/expr"
)

type Matrix struct {
	// row count and col count
	rows, cols int
	// The matrix elements arranged, [r=0,c=0], [0,1], [0,2] ...
	data []expr.Exp
}

// NewMatrix creates a rows x cols matrix of zeros.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("need positive dimensions, not %dx%d", rows, cols)
	}
	m := &Matrix{
		rows: rows,
		cols: cols,
		data: make([]expr.Exp, rows*cols),
	}
	for i := range m.data {
		m.data[i] = expr.Int(0)
	}
	return m, nil
}

// Dims returns the row and column counts of m.
func (m *Matrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// String serializes a matrix for displaying.
func (m *Matrix) String() string {
	var rs []string
	for r := 0; r < m.rows; r++ {
		var cs []string
		for c := 0; c < m.cols; c++ {
			cs = append(cs, m.data[c+m.cols*r].String())
		}
		rs = append(rs, "["+strings.Join(cs, ", ")+"]")
	}
	return "[" + strings.Join(rs, ", ") + "]"
}

// Set sets the value of a matrix element.
func (m *Matrix) Set(row, col int, e expr.Exp) error {
	if row < 0 || col < 0 || row >= m.rows || col >= m.cols {
		return fmt.Errorf("bad cell: [%d,%d] in %dx%d matrix", row, col, m.rows, m.cols)
	}
	if e == nil {
		e = expr.Int(0)
	}
	m.data[col+m.cols*row] = e
	return nil
}

// El returns the row,col element of the matrix.
func (m *Matrix) El(row, col int) expr.Exp {
	return m.data[col+m.cols*row]
}

// Identity returns a square identity matrix of dimension n.
func Identity(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid identity matrix of dimension n=%d", n)
	}
	m, _ := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, expr.Int(1))
	}
	return m, nil
}

// Transpose returns the transpose of a specified matrix.
func (m *Matrix) Transpose() *Matrix {
	n, err := NewMatrix(m.cols, m.rows)
	if err != nil {
		panic(err)
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			n.Set(j, i, m.El(i, j))
		}
	}
	return n
}

// isZero confirms e is the scalar 0.
func isZero(e expr.Exp) bool {
	s, ok := e.(*expr.Scalar)
	return ok && s.N.IsZero()
}

// Mul multiplies m x n with conventional matrix multiplication. Each
// cell is the evaluated sum of products of a row of m and a column of
// n. Products with a zero element are left out.
func (m *Matrix) Mul(n *Matrix) (*Matrix, error) {
	if m.cols != n.rows {
		return nil, fmt.Errorf("a cols(%d) != b rows(%d)", m.cols, n.rows)
	}
	a, err := NewMatrix(m.rows, n.cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < a.rows; r++ {
		for c := 0; c < a.cols; c++ {
			var e expr.Exp
			for i := 0; i < m.cols; i++ {
				x, y := m.El(r, i), n.El(i, c)
				if isZero(x) || isZero(y) {
					continue
				}
				p := expr.NewMul(x, y)
				if e == nil {
					e = p
					continue
				}
				e = expr.NewAdd(e, p)
			}
			if e != nil {
				a.Set(r, c, expr.Evaluate(e))
			}
		}
	}
	return a, nil
}

// Mx multiplies two matrices and panics on error.
func (m *Matrix) Mx(n *Matrix) *Matrix {
	a, err := m.Mul(n)
	if err != nil {
		panic(err)
	}
	return a
}

// Sum computes m + scale*n. Zero elements are not evaluated.
func (m *Matrix) Sum(n *Matrix, scale expr.Exp) (*Matrix, error) {
	if m.rows != n.rows || m.cols != n.cols {
		return nil, fmt.Errorf("inequivalent dimensions %dx%d != %dx%d", m.rows, m.cols, n.rows, n.cols)
	}
	a, _ := NewMatrix(m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if q := n.El(r, c); isZero(q) {
				a.Set(r, c, m.El(r, c))
			} else if p := m.El(r, c); isZero(p) {
				a.Set(r, c, expr.Evaluate(expr.NewMul(scale, q)))
			} else {
				a.Set(r, c, expr.Evaluate(expr.NewAdd(p, expr.NewMul(scale, q))))
			}
		}
	}
	return a, nil
}

// Add adds two matrices, and panics on error.
func (m *Matrix) Add(n *Matrix, scale expr.Exp) *Matrix {
	a, err := m.Sum(n, scale)
	if err != nil {
		panic(err)
	}
	return a
}

// Iso confirms m and n have the same shape and expr.Iso elements.
func (m *Matrix) Iso(n *Matrix) bool {
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	for i, e := range m.data {
		if !expr.Iso(e, n.data[i]) {
			return false
		}
	}
	return true
}

// Exp converts m into an opaque expression node.
func (m *Matrix) Exp() *expr.Mat {
	rows := make([][]expr.Exp, m.rows)
	for r := range rows {
		rows[r] = m.data[m.cols*r : m.cols*(r+1)]
	}
	return expr.NewMat(rows)
}

// FromExp converts a matrix expression node into a Matrix. Every row
// must have the same, non-zero, length.
func FromExp(e *expr.Mat) (*Matrix, error) {
	if len(e.Rows) == 0 {
		return nil, fmt.Errorf("need positive dimensions, not 0x0")
	}
	m, err := NewMatrix(len(e.Rows), len(e.Rows[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range e.Rows {
		if len(row) != m.cols {
			return nil, fmt.Errorf("ragged matrix: row %d has %d columns, want %d", r, len(row), m.cols)
		}
		for c, x := range row {
			m.Set(r, c, x)
		}
	}
	return m, nil
}
