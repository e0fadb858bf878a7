package grid2d

import (
	"github.com/notargets/pde2d/utils"
)

// NewSteadyGrid allocates the nx x ny solution grid u[x, y] and writes the
// four Dirichlet edges. The y-edge columns are written last, so they own
// the corner samples.
func NewSteadyGrid(d Domain, boundX0, boundXF, boundY0, boundYF Condition) (u utils.Matrix, err error) {
	var (
		nx, ny = d.Dims()
		vals   []float64
	)
	u = utils.NewMatrix(nx, ny)
	if vals, err = boundX0.Materialize(d.Y); err != nil {
		return
	}
	u.SetRow(0, vals)
	if vals, err = boundXF.Materialize(d.Y); err != nil {
		return
	}
	u.SetRow(nx-1, vals)
	if vals, err = boundY0.Materialize(d.X); err != nil {
		return
	}
	u.SetCol(0, vals)
	if vals, err = boundYF.Materialize(d.X); err != nil {
		return
	}
	u.SetCol(ny-1, vals)
	return
}

// NewTimeGrid allocates the nx x ny solution grid u[x, y], writes the
// initial column y=0 and the two space-boundary rows. The boundary rows
// are written last, so they own the corner samples.
func NewTimeGrid(d Domain, init, boundX0, boundXF Condition) (u utils.Matrix, err error) {
	var (
		nx, ny = d.Dims()
		vals   []float64
	)
	u = utils.NewMatrix(nx, ny)
	if vals, err = init.Materialize(d.X); err != nil {
		return
	}
	u.SetCol(0, vals)
	if vals, err = boundX0.Materialize(d.Y); err != nil {
		return
	}
	u.SetRow(0, vals)
	if vals, err = boundXF.Materialize(d.Y); err != nil {
		return
	}
	u.SetRow(nx-1, vals)
	return
}
