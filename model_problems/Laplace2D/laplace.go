// Package Laplace2D solves the steady-state Laplace equation
//
//	u_xx + u_yy = 0
//
// on a rectangle with Dirichlet data on all four edges, by assembling the
// 5-point stencil over the whole interior as one linear system.
package Laplace2D

import (
	"fmt"

	"github.com/notargets/pde2d/grid2d"
	"github.com/notargets/pde2d/utils"
)

// BoundaryConditions carries the Dirichlet data for the four edges.
type BoundaryConditions struct {
	X0, XF, Y0, YF grid2d.Condition
}

var Methods = []string{"ic"}

type laplace struct {
	D           grid2d.Domain
	U           utils.Matrix
	Alpha, Beta float64 // squared step sizes of the 5-point stencil
}

// Solve returns the nx x ny solution grid u[x, y].
func Solve(d grid2d.Domain, bcs BoundaryConditions, method string) (u utils.Matrix, err error) {
	if err = utils.CheckMethod(method, Methods); err != nil {
		return
	}
	nx, ny := d.Dims()
	if nx < 3 || ny < 3 {
		err = fmt.Errorf("domain has no interior nodes: %d x %d samples", nx, ny)
		return
	}
	c := &laplace{D: d}
	c.computeConstants()
	if c.U, err = grid2d.NewSteadyGrid(d, bcs.X0, bcs.XF, bcs.Y0, bcs.YF); err != nil {
		return
	}
	if err = c.implicit(); err != nil {
		return
	}
	u = c.U
	return
}

func (c *laplace) computeConstants() {
	c.Alpha = c.D.StepX() * c.D.StepX()
	c.Beta = c.D.StepY() * c.D.StepY()
}

// implicit solves all interior unknowns at once. The interior block is
// flattened column major: index = i + mx*j for interior position (i, j).
func (c *laplace) implicit() (err error) {
	var (
		nx, ny = c.D.Dims()
		mx, my = nx - 2, ny - 2
		x      utils.Vector
	)
	mat := c.assembleMatrix(mx, my)
	vec := c.assembleVector(mx, my)
	if x, err = mat.ToDense().LUSolve(vec); err != nil {
		return
	}
	for j := 0; j < my; j++ {
		for i := 0; i < mx; i++ {
			c.U.Set(i+1, j+1, x.AtVec(i+mx*j))
		}
	}
	return
}

func (c *laplace) assembleMatrix(mx, my int) (R utils.DOK) {
	var (
		n = mx * my
	)
	R = utils.NewDOK(n, n)
	for j := 0; j < my; j++ {
		for i := 0; i < mx; i++ {
			ind := i + mx*j
			R.Set(ind, ind, -2*(c.Alpha+c.Beta))
			// Space neighbors carry Beta; no coupling across the wrap
			// between the last interior node of one column and the first
			// of the next.
			if i > 0 {
				R.Set(ind, ind-1, c.Beta)
			}
			if i < mx-1 {
				R.Set(ind, ind+1, c.Beta)
			}
			// Second-axis neighbors carry Alpha.
			if j > 0 {
				R.Set(ind, ind-mx, c.Alpha)
			}
			if j < my-1 {
				R.Set(ind, ind+mx, c.Alpha)
			}
		}
	}
	return
}

func (c *laplace) assembleVector(mx, my int) (R utils.Vector) {
	var (
		nx, ny = c.D.Dims()
	)
	R = utils.NewVector(mx * my)
	data := R.Data()
	for j := 0; j < my; j++ {
		for i := 0; i < mx; i++ {
			ind := i + mx*j
			if i == 0 {
				data[ind] -= c.Beta * c.U.At(0, j+1)
			}
			if i == mx-1 {
				data[ind] -= c.Beta * c.U.At(nx-1, j+1)
			}
			if j == 0 {
				data[ind] -= c.Alpha * c.U.At(i+1, 0)
			}
			if j == my-1 {
				data[ind] -= c.Alpha * c.U.At(i+1, ny-1)
			}
		}
	}
	return
}
