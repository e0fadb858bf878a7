package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	// Linspace
	{
		req := NewVector(2).Linspace(-1, 1)
		assert.Equal(t, -1., req.AtVec(0))
		assert.Equal(t, 1., req.AtVec(1))
		req = NewVector(3).Linspace(-1, 1)
		assert.Equal(t, -1., req.AtVec(0))
		assert.Equal(t, 0., req.AtVec(1))
		assert.Equal(t, 1., req.AtVec(2))
	}
	// Linspace spacing is uniform
	{
		req := NewVector(5).Linspace(0, 4)
		for i := 1; i < req.Len(); i++ {
			assert.InDelta(t, 1., req.AtVec(i)-req.AtVec(i-1), 1.e-12)
		}
	}
	// Apply and Copy
	{
		v := NewVector(3, []float64{1, 4, 9})
		w := v.Copy().Apply(math.Sqrt)
		assert.Equal(t, []float64{1, 4, 9}, v.Data())
		assert.Equal(t, []float64{1, 2, 3}, w.Data())
	}
	// Constant fill and Scale
	{
		v := NewVectorConstant(3, 2)
		assert.Equal(t, []float64{2, 2, 2}, v.Data())
		v.Scale(-1.5)
		assert.Equal(t, []float64{-3, -3, -3}, v.Data())
	}
	// Min, Max
	{
		v := NewVector(4, []float64{3, -1, 7, 0})
		assert.Equal(t, -1., v.Min())
		assert.Equal(t, 7., v.Max())
	}
}
