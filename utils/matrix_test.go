package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Transpose
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		mNr, mNc := M.Dims()
		A := M.Transpose()
		aNr, aNc := A.Dims()
		assert.Equal(t, aNc, mNr)
		assert.Equal(t, aNr, mNc)
		assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, A.Data())
	}
	// Copy leaves the source untouched
	{
		M := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		A := M.Copy().Scale(2)
		assert.Equal(t, []float64{1, 2, 3, 4}, M.Data())
		assert.Equal(t, []float64{2, 4, 6, 8}, A.Data())
	}
	// Row and Col extraction
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		assert.Equal(t, []float64{4, 5, 6}, M.Row(1).Data())
		assert.Equal(t, []float64{2, 5}, M.Col(1).Data())
	}
	// Scale, Add and Apply chain in place
	{
		M := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		A := NewMatrix(2, 2, []float64{1, 1, 1, 1})
		M.Scale(2).Add(A).Apply(func(v float64) float64 { return v - 1 })
		assert.Equal(t, []float64{2, 4, 6, 8}, M.Data())
	}
	// Min, Max
	{
		M := NewMatrix(2, 2, []float64{3, -1, 7, 0})
		assert.Equal(t, -1., M.Min())
		assert.Equal(t, 7., M.Max())
	}
	// ReadOnly guard
	{
		M := NewMatrix(2, 2)
		M.SetReadOnly("M")
		assert.Panics(t, func() { M.Set(0, 0, 1) })
		M.SetWritable()
		assert.NotPanics(t, func() { M.Set(0, 0, 1) })
	}
}

func TestMatrixLUSolve(t *testing.T) {
	// Well conditioned 2x2
	{
		A := NewMatrix(2, 2, []float64{
			2, 1,
			1, 3,
		})
		b := NewVector(2, []float64{3, 5})
		x, err := A.LUSolve(b)
		assert.NoError(t, err)
		assert.InDelta(t, 0.8, x.AtVec(0), 1.e-12)
		assert.InDelta(t, 1.4, x.AtVec(1), 1.e-12)
	}
	// Singular system surfaces an error
	{
		A := NewMatrix(2, 2, []float64{
			1, 2,
			2, 4,
		})
		b := NewVector(2, []float64{1, 2})
		_, err := A.LUSolve(b)
		assert.Error(t, err)
	}
	// Dimension mismatch
	{
		A := NewMatrix(2, 2)
		b := NewVector(3)
		_, err := A.LUSolve(b)
		assert.Error(t, err)
	}
}
