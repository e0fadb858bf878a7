package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// TriDiagonal holds the three bands of an N x N tridiagonal system.
// Solve goes through gonum's Tridiag (LAPACK dgtsv), keeping each
// implicit time step at O(N) instead of a dense factorization.
type TriDiagonal struct {
	N                  int
	Lower, Main, Upper []float64
}

func NewTriDiagonal(lower, main, upper []float64) (T TriDiagonal) {
	var (
		n = len(main)
	)
	if len(lower) != n-1 || len(upper) != n-1 {
		err := fmt.Errorf("mismatch in tridiagonal bands: main = %v, lower = %v, upper = %v",
			n, len(lower), len(upper))
		panic(err)
	}
	T = TriDiagonal{
		N:     n,
		Lower: lower,
		Main:  main,
		Upper: upper,
	}
	return
}

// Solve returns x satisfying T*x = b. The bands are copied per call, so a
// constant system can be reused across time levels.
func (t TriDiagonal) Solve(b []float64) (x []float64, err error) {
	var (
		dl = make([]float64, t.N-1)
		d  = make([]float64, t.N)
		du = make([]float64, t.N-1)
		xv mat.VecDense
	)
	if len(b) != t.N {
		err = fmt.Errorf("dimension mismatch in tridiagonal solve: system is %d, rhs has length %d", t.N, len(b))
		return
	}
	copy(dl, t.Lower)
	copy(d, t.Main)
	copy(du, t.Upper)
	A := mat.NewTridiag(t.N, dl, d, du)
	if err = A.SolveVecTo(&xv, false, mat.NewVecDense(len(b), b)); err != nil {
		err = fmt.Errorf("tridiagonal solve failed: %v", err)
		return
	}
	x = xv.RawVector().Data
	return
}
