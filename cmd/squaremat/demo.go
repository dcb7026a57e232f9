// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/squaremat/matrix"
)

// printer writes titled sections and keeps the first error it meets.
// Every method is a no-op once err is set.
type printer struct {
	w    io.Writer
	opts []matrix.Option
	err  error
}

func (p *printer) fail(err error) {
	if p.err == nil && err != nil {
		p.err = err
	}
}

// mat prints "\n<header>\n" followed by the rendered matrix. The header
// carries its own punctuation.
func (p *printer) mat(header string, m *matrix.Square, err error) {
	if p.err != nil {
		return
	}
	if err != nil {
		p.fail(fmt.Errorf("%s %w", header, err))
		return
	}
	_, err = fmt.Fprintf(p.w, "\n%s\n%s", header, matrix.Format(m, p.opts...))
	p.fail(err)
}

// scalar prints "\n<title>: \n<v>\n".
func (p *printer) scalar(title string, v float64, err error) {
	if p.err != nil {
		return
	}
	if err != nil {
		p.fail(fmt.Errorf("%s: %w", title, err))
		return
	}
	_, err = fmt.Fprintf(p.w, "\n%s: \n%s\n", title, matrix.FormatScalar(v, p.opts...))
	p.fail(err)
}

// flag prints "\n<title>: 1" or "\n<title>: 0".
func (p *printer) flag(title string, b bool) {
	if p.err != nil {
		return
	}
	v := 0
	if b {
		v = 1
	}
	_, err := fmt.Fprintf(p.w, "\n%s: %d\n", title, v)
	p.fail(err)
}

// setAll writes (row, col, value) triples into m.
func (p *printer) setAll(m *matrix.Square, cells [][3]float64) {
	for _, c := range cells {
		if p.err != nil {
			return
		}
		p.fail(m.Set(int(c[0]), int(c[1]), c[2]))
	}
}

// run executes the walkthrough on w.
func run(w io.Writer, cfg config) error {
	p := &printer{w: w, opts: cfg.opts}

	A, err := matrix.NewSquareRC(3, 3)
	if err != nil {
		return err
	}
	B, err := matrix.NewSquareRC(3, 3)
	if err != nil {
		return err
	}

	A.Fill(1.0)
	B.Fill(0.0)
	p.setAll(B, [][3]float64{
		{0, 0, 1}, {1, 1, 2}, {2, 2, 3},
		{0, 1, 4}, {1, 2, 5}, {2, 0, 6},
	})

	p.mat("Matrix A:", A, nil)
	p.mat("Matrix B:", B, nil)

	sum, err := matrix.Add(A, B)
	p.mat("A + B:", sum, err)
	diff, err := matrix.Sub(A, B)
	p.mat("A - B:", diff, err)

	scaled, err := matrix.Scale(A, 10)
	p.mat("A * 10:", scaled, err)
	scaled, err = matrix.ScaleLeft(10, B)
	p.mat("10 * B:", scaled, err)

	p.setAll(A, [][3]float64{
		{0, 0, 3}, {1, 1, 1}, {2, 2, 2},
		{0, 1, 5}, {1, 2, 4}, {2, 0, 0},
	})
	p.mat("Matrix A:", A, nil)
	p.mat("Matrix B:", B, nil)

	prod, err := matrix.Mul(A, B)
	p.mat("A * B:", prod, err)

	mod, err := matrix.Mod(A, B)
	p.mat("A % B (element-wise):", mod, err)
	mod, err = matrix.ModScalar(B, 2)
	p.mat("B % 2 (modulo each element):", mod, err)

	half, err := matrix.Div(B, 2.0)
	p.mat("B / 2:", half, err)

	v, err := A.At(1, 1)
	p.scalar("A(1,1) before", v, err)
	p.fail(A.Set(1, 1, 42))
	v, err = A.At(1, 1)
	p.scalar("A(1,1) after", v, err)
	p.mat("Updated A: ", A, nil)

	p.mat("After ++A:", A.Inc(), nil)
	A.PostInc()
	p.mat("After A++:", A, nil)
	p.mat("After --A:", A.Dec(), nil)
	A.PostDec()
	p.mat("After A--:", A, nil)

	bt, err := matrix.Transpose(B)
	p.mat("Transpose of B:", bt, err)

	bp, err := matrix.Power(B, cfg.power, cfg.opts...)
	p.mat(fmt.Sprintf("B ^ %d:", cfg.power), bp, err)

	detB, err := matrix.Determinant(B, cfg.opts...)
	p.scalar("Determinant of B", detB, err)

	p.flag("A == B", matrix.Equal(A, B))
	p.flag("A != B", matrix.NotEqual(A, B))
	p.flag("A > B", matrix.Greater(A, B))
	p.flag("A < B", matrix.Less(A, B))
	p.flag("A >= B", matrix.GreaterEqual(A, B))
	p.flag("A <= B", matrix.LessEqual(A, B))

	detA, err := A.Det(cfg.opts...)
	p.scalar("!A (calls determinant)", detA, err)

	A.Fill(7.0)
	p.mat("A after fill(7.0):", A, nil)

	return p.err
}
