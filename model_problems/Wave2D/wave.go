// Package Wave2D solves the wave equation
//
//	u_yy = u_xx
//
// with initial displacement and velocity along y=0 and Dirichlet
// boundaries in space for all time. A second-order Taylor expansion
// bootstraps the first interior time row; both stepping modes then need
// the two previous levels per new level.
package Wave2D

import (
	"fmt"

	"github.com/notargets/pde2d/grid2d"
	"github.com/notargets/pde2d/utils"
)

// Conditions carries the initial displacement Init, the initial time
// derivative DInit, and the two space boundaries.
type Conditions struct {
	Init, DInit, X0, XF grid2d.Condition
}

var Methods = []string{"e", "i"}

type wave struct {
	D     grid2d.Domain
	U     utils.Matrix
	Alpha float64 // (k/h)^2
	H, K  float64 // space and time steps
}

// Solve returns the nx x ny solution grid u[x, y].
func Solve(d grid2d.Domain, conds Conditions, method string) (u utils.Matrix, err error) {
	if err = utils.CheckMethod(method, Methods); err != nil {
		return
	}
	nx, _ := d.Dims()
	if nx < 3 {
		err = fmt.Errorf("space axis has no interior nodes: %d samples", nx)
		return
	}
	c := &wave{D: d}
	c.computeConstants()
	if c.U, err = grid2d.NewTimeGrid(d, conds.Init, conds.X0, conds.XF); err != nil {
		return
	}
	if err = c.setFirstRow(conds.DInit); err != nil {
		return
	}
	switch method {
	case "e":
		c.explicit()
	case "i":
		err = c.implicit()
	}
	if err != nil {
		return
	}
	u = c.U
	return
}

func (c *wave) computeConstants() {
	c.H = c.D.StepX()
	c.K = c.D.StepY()
	c.Alpha = (c.K / c.H) * (c.K / c.H)
}

// setFirstRow fills the first interior time level from the initial
// displacement, the initial velocity and the discrete second space
// derivative of the initial row.
func (c *wave) setFirstRow(dInit grid2d.Condition) (err error) {
	var (
		nx, ny = c.D.Dims()
		vel    []float64
	)
	if ny < 2 {
		return
	}
	if vel, err = dInit.Materialize(c.D.X); err != nil {
		return
	}
	for i := 1; i < nx-1; i++ {
		val := c.U.At(i, 0) + c.K*vel[i] +
			c.K*c.K/2*(c.U.At(i+1, 0)-2*c.U.At(i, 0)+c.U.At(i-1, 0))/(c.H*c.H)
		c.U.Set(i, 1, val)
	}
	return
}

func (c *wave) explicit() {
	var (
		nx, ny = c.D.Dims()
	)
	for j := 1; j < ny-1; j++ {
		for i := 1; i < nx-1; i++ {
			val := 2*c.U.At(i, j) - c.U.At(i, j-1) +
				c.Alpha*(c.U.At(i+1, j)-2*c.U.At(i, j)+c.U.At(i-1, j))
			c.U.Set(i, j+1, val)
		}
	}
}

// implicit reuses one constant tridiagonal system across all levels: unit
// off-diagonals and -2(1+Alpha) on the main diagonal.
func (c *wave) implicit() (err error) {
	var (
		nx, ny = c.D.Dims()
		n      = nx - 2
		main   = make([]float64, n)
		upper  = make([]float64, n-1)
		lower  = make([]float64, n-1)
		x      []float64
	)
	for i := 0; i < n; i++ {
		main[i] = -2 * (1 + c.Alpha)
		if i < n-1 {
			upper[i] = 1
			lower[i] = 1
		}
	}
	sys := utils.NewTriDiagonal(lower, main, upper)
	for j := 1; j < ny-1; j++ {
		vec := c.assembleVector(j)
		if x, err = sys.Solve(vec); err != nil {
			return
		}
		for i, val := range x {
			c.U.Set(i+1, j+1, val)
		}
	}
	return
}

func (c *wave) assembleVector(j int) (vec []float64) {
	var (
		nx, _ = c.D.Dims()
		n     = nx - 2
	)
	vec = make([]float64, n)
	for i := 0; i < n; i++ {
		vec[i] = -c.U.At(i, j-1) - c.U.At(i+2, j-1) +
			2*(1+c.Alpha)*c.U.At(i+1, j-1) - 4*c.Alpha*c.U.At(i+1, j)
	}
	// Known boundary values at the next level fold into the end entries.
	vec[0] -= c.U.At(0, j+1)
	vec[n-1] -= c.U.At(nx-1, j+1)
	return
}
