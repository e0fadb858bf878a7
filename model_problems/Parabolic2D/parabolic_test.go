package Parabolic2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/pde2d/grid2d"
	"github.com/notargets/pde2d/utils"
)

func gridOfOnes(nr, nc int) utils.Matrix {
	return utils.NewMatrix(nr, nc).Apply(func(float64) float64 { return 1 })
}

// Reference grids for xn=4, xf=4, yn=5, yf=0.5, initial x^2-4x+5, both
// boundaries 5*exp(-y), coefficients (p, q, r, s) = (1, 1, -3, 3).
var expectParabolic = map[string][][]float64{
	"ec": {
		{5, 4.52418709, 4.09365377, 3.7040911, 3.35160023, 3.0326533},
		{2, 1.7, 1.55620935, 1.47778737, 1.42526394, 1.38240388},
		{1, 1.2, 1.3, 1.34110468, 1.34794602, 1.3353887},
		{2, 2.1, 2.08862806, 2.0233621, 1.93434995, 1.83731231},
		{5, 4.52418709, 4.09365377, 3.7040911, 3.35160023, 3.0326533},
	},
	"eu": {
		{5, 4.52418709, 4.09365377, 3.7040911, 3.35160023, 3.0326533},
		{2, 1.8, 1.73241871, 1.69033286, 1.64498413, 1.59228371},
		{1, 1.3, 1.44, 1.49220935, 1.49565017, 1.47265957},
		{2, 2.2, 2.21483742, 2.14866572, 2.04950544, 1.93968724},
		{5, 4.52418709, 4.09365377, 3.7040911, 3.35160023, 3.0326533},
	},
	"ic": {
		{5, 4.52418709, 4.09365377, 3.7040911, 3.35160023, 3.0326533},
		{2, 1.79703016, 1.6552385, 1.5520893, 1.47351446, 1.41079567},
		{1, 1.1289059, 1.20763268, 1.25127267, 1.27068247, 1.27364255},
		{2, 2.02338224, 1.99854129, 1.94447906, 1.87383548, 1.79494373},
		{5, 4.52418709, 4.09365377, 3.7040911, 3.35160023, 3.0326533},
	},
	"iu": {
		{5, 4.52418709, 4.09365377, 3.7040911, 3.35160023, 3.0326533},
		{2, 1.86888319, 1.77407366, 1.69796746, 1.63144259, 1.57006533},
		{1, 1.18897197, 1.30134642, 1.36132585, 1.38590329, 1.38698308},
		{2, 2.07733413, 2.07887471, 2.03489094, 1.96487582, 1.8813155},
		{5, 4.52418709, 4.09365377, 3.7040911, 3.35160023, 3.0326533},
	},
}

func referenceInputs() (d grid2d.Domain, coeffs Coefficients, conds Conditions) {
	d, _ = grid2d.NewDomain(4, 4, 5, 0.5)
	bound := grid2d.FuncCondition(func(y float64) float64 {
		return 5 * math.Exp(-y)
	})
	conds = Conditions{
		Init: grid2d.FuncCondition(func(x float64) float64 {
			return x*x - 4*x + 5
		}),
		X0: bound,
		XF: bound,
	}
	coeffs = Coefficients{
		P: grid2d.ConstCoefficient(1),
		Q: grid2d.ConstCoefficient(1),
		R: grid2d.ConstCoefficient(-3),
		S: grid2d.ConstCoefficient(3),
	}
	return
}

func TestParabolic(t *testing.T) {
	for _, method := range Methods {
		d, coeffs, conds := referenceInputs()
		u, err := Solve(d, coeffs, conds, method)
		assert.NoError(t, err)
		expect := expectParabolic[method]
		nr, nc := u.Dims()
		assert.Equal(t, len(expect), nr)
		assert.Equal(t, len(expect[0]), nc)
		for i := range expect {
			for j := range expect[i] {
				assert.InDeltaf(t, expect[i][j], u.At(i, j), 1.e-6,
					"method %s at (%d, %d)", method, i, j)
			}
		}
	}
}

func TestParabolicProperties(t *testing.T) {
	// Invalid method codes error out before any numeric work
	{
		d, coeffs, conds := referenceInputs()
		for _, method := range []string{"", "e", "cc", "xu", "ecx"} {
			_, err := Solve(d, coeffs, conds, method)
			assert.Error(t, err)
		}
	}
	// Identical inputs produce identical output
	{
		d, coeffs, conds := referenceInputs()
		u1, err := Solve(d, coeffs, conds, "iu")
		assert.NoError(t, err)
		u2, err := Solve(d, coeffs, conds, "iu")
		assert.NoError(t, err)
		assert.Equal(t, u1.Data(), u2.Data())
	}
	// Changing an interior-only coefficient leaves the boundary alone
	{
		d, coeffs, conds := referenceInputs()
		u1, err := Solve(d, coeffs, conds, "ec")
		assert.NoError(t, err)
		coeffs.S = grid2d.ConstCoefficient(100)
		u2, err := Solve(d, coeffs, conds, "ec")
		assert.NoError(t, err)
		nr, nc := u1.Dims()
		for j := 0; j < nc; j++ {
			assert.Equal(t, u1.At(0, j), u2.At(0, j))
			assert.Equal(t, u1.At(nr-1, j), u2.At(nr-1, j))
		}
		for i := 0; i < nr; i++ {
			assert.Equal(t, u1.At(i, 0), u2.At(i, 0))
		}
	}
	// Space-varying coefficients materialize over the interior mesh
	{
		d, coeffs, conds := referenceInputs()
		coeffs.Q = grid2d.FuncCoefficient(func(x, y float64) float64 {
			return x - 2
		})
		_, err := Solve(d, coeffs, conds, "iu")
		assert.NoError(t, err)
	}
	// Mis-sized coefficient matrices are fatal
	{
		d, coeffs, conds := referenceInputs()
		coeffs.P = grid2d.MatrixCoefficient(gridOfOnes(2, 2))
		_, err := Solve(d, coeffs, conds, "ec")
		assert.Error(t, err)
	}
}
