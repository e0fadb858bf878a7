package grid2d

import (
	"fmt"

	"github.com/notargets/pde2d/utils"
)

// Coefficient is a space/time varying equation coefficient: a constant, a
// precomputed matrix, or a function of (x, y). Materialized over the
// interior space nodes and every time level but the last: the coefficient
// advances level j into j+1, and there is one fewer future level than there
// are levels. The zero value is the constant 0.
type Coefficient struct {
	kind  specKind
	val   float64
	grid  utils.Matrix
	field func(x, y float64) float64
}

func ConstCoefficient(val float64) Coefficient {
	return Coefficient{kind: constSpec, val: val}
}

func MatrixCoefficient(grid utils.Matrix) Coefficient {
	return Coefficient{kind: vectorSpec, grid: grid}
}

func FuncCoefficient(f func(x, y float64) float64) Coefficient {
	return Coefficient{kind: funcSpec, field: f}
}

// Materialize resolves the coefficient to a (nx-2) x (ny-1) matrix: row i
// holds interior node x[i+1], column j holds level y[j].
func (c Coefficient) Materialize(d Domain) (R utils.Matrix, err error) {
	var (
		nx, ny = d.Dims()
		nr, nc = nx - 2, ny - 1
	)
	switch c.kind {
	case constSpec:
		R = utils.NewMatrix(nr, nc)
		R.Apply(func(float64) float64 { return c.val })
	case vectorSpec:
		gr, gc := c.grid.Dims()
		if gr != nr || gc != nc {
			err = fmt.Errorf("coefficient matrix is %d x %d, interior mesh needs %d x %d", gr, gc, nr, nc)
			return
		}
		R = c.grid
	case funcSpec:
		R = utils.NewMatrix(nr, nc)
		for i := 0; i < nr; i++ {
			for j := 0; j < nc; j++ {
				R.Set(i, j, c.field(d.X.AtVec(i+1), d.Y.AtVec(j)))
			}
		}
	}
	return
}
