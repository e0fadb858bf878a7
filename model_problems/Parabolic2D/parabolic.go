// Package Parabolic2D solves the linear parabolic (advection-diffusion)
// equation
//
//	u_y = p(x,y) u_xx + q(x,y) u_x + r(x,y) u + s(x,y)
//
// with an initial condition along y=0 and Dirichlet boundaries at x=0 and
// x=xf, marching level by level along the second axis.
package Parabolic2D

import (
	"fmt"
	"math"

	"github.com/notargets/pde2d/grid2d"
	"github.com/notargets/pde2d/utils"
)

// Conditions carries the initial data and the two space boundaries.
type Conditions struct {
	Init, X0, XF grid2d.Condition
}

// Coefficients carries the diffusion, advection, reaction and source
// fields of the equation, each over the interior mesh.
type Coefficients struct {
	P, Q, R, S grid2d.Coefficient
}

// Method codes compose two binary choices: explicit/implicit time
// stepping, and central/upwind differencing of the advection term.
var Methods = []string{"ec", "eu", "ic", "iu"}

type parabolic struct {
	D           grid2d.Domain
	U           utils.Matrix
	P, Q, R, S  utils.Matrix
	Alpha, Beta float64 // diffusion and advection numbers
	K           float64 // time step
	Theta       float64 // 0 blends central, 1 upwind
}

// Solve returns the nx x ny solution grid u[x, y]. Stability of the
// explicit schemes is the caller's responsibility.
func Solve(d grid2d.Domain, coeffs Coefficients, conds Conditions, method string) (u utils.Matrix, err error) {
	if err = utils.CheckMethod(method, Methods); err != nil {
		return
	}
	nx, _ := d.Dims()
	if nx < 3 {
		err = fmt.Errorf("space axis has no interior nodes: %d samples", nx)
		return
	}
	c := &parabolic{D: d}
	c.computeConstants()
	switch method[1] {
	case 'c':
		c.Theta = 0
	case 'u':
		c.Theta = 1
	}
	if c.U, err = grid2d.NewTimeGrid(d, conds.Init, conds.X0, conds.XF); err != nil {
		return
	}
	if err = c.materializeCoefficients(coeffs); err != nil {
		return
	}
	switch method[0] {
	case 'e':
		c.explicit()
	case 'i':
		err = c.implicit()
	}
	if err != nil {
		return
	}
	u = c.U
	return
}

func (c *parabolic) computeConstants() {
	var (
		h = c.D.StepX()
		k = c.D.StepY()
	)
	c.Alpha = k / (h * h)
	c.Beta = k / (2 * h)
	c.K = k
}

func (c *parabolic) materializeCoefficients(coeffs Coefficients) (err error) {
	if c.P, err = coeffs.P.Materialize(c.D); err != nil {
		return
	}
	if c.Q, err = coeffs.Q.Materialize(c.D); err != nil {
		return
	}
	if c.R, err = coeffs.R.Materialize(c.D); err != nil {
		return
	}
	c.S, err = coeffs.S.Materialize(c.D)
	return
}

// explicit advances each level j to j+1 by direct stencil evaluation over
// the interior nodes. Coefficient row i corresponds to grid row i+1.
func (c *parabolic) explicit() {
	var (
		nx, ny = c.D.Dims()
	)
	for j := 0; j < ny-1; j++ {
		for i := 0; i < nx-2; i++ {
			var (
				p  = c.P.At(i, j)
				q  = c.Q.At(i, j)
				r  = c.R.At(i, j)
				s  = c.S.At(i, j)
				aq = math.Abs(q)
			)
			val := (c.Alpha*p+c.Beta*(c.Theta*aq-q))*c.U.At(i, j) +
				(c.Alpha*p+c.Beta*(c.Theta*aq+q))*c.U.At(i+2, j) +
				(1+c.K*r-2*(c.Alpha*p+c.Theta*c.Beta*aq))*c.U.At(i+1, j) +
				c.K*s
			c.U.Set(i+1, j+1, val)
		}
	}
}

// implicit assembles and solves one tridiagonal system per level. The
// coefficients enter at the current level only (backward Euler in time).
func (c *parabolic) implicit() (err error) {
	var (
		_, ny = c.D.Dims()
		x     []float64
	)
	for j := 0; j < ny-1; j++ {
		sys := c.assembleMatrix(j)
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

func (c *parabolic) assembleMatrix(j int) utils.TriDiagonal {
	var (
		nx, _ = c.D.Dims()
		n     = nx - 2
		main  = make([]float64, n)
		upper = make([]float64, n-1)
		lower = make([]float64, n-1)
	)
	for i := 0; i < n; i++ {
		var (
			p  = c.P.At(i, j)
			aq = math.Abs(c.Q.At(i, j))
		)
		main[i] = -1 + c.K*c.R.At(i, j) - 2*(c.Alpha*p+c.Theta*c.Beta*aq)
		if i < n-1 {
			upper[i] = c.Alpha*p + c.Beta*(c.Theta*aq+c.Q.At(i, j))
		}
		if i > 0 {
			lower[i-1] = c.Alpha*p + c.Beta*(c.Theta*aq-c.Q.At(i, j))
		}
	}
	return utils.NewTriDiagonal(lower, main, upper)
}

func (c *parabolic) assembleVector(j int) (vec []float64) {
	var (
		nx, _ = c.D.Dims()
		n     = nx - 2
	)
	vec = make([]float64, n)
	for i := 0; i < n; i++ {
		vec[i] = -c.U.At(i+1, j) - c.K*c.S.At(i, j)
	}
	// Known boundary values at the next level fold into the end entries.
	var (
		p0, q0 = c.P.At(0, j), c.Q.At(0, j)
		pn, qn = c.P.At(n-1, j), c.Q.At(n-1, j)
	)
	vec[0] -= (c.Alpha*p0 + c.Beta*(c.Theta*math.Abs(q0)-q0)) * c.U.At(0, j+1)
	vec[n-1] -= (c.Alpha*pn + c.Beta*(c.Theta*math.Abs(qn)+qn)) * c.U.At(nx-1, j+1)
	return
}
