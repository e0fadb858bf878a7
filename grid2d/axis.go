// Package grid2d builds the rectangular grids and materializes the
// boundary/initial data consumed by the finite-difference solvers.
package grid2d

import (
	"fmt"
	"math"

	"github.com/notargets/pde2d/utils"
)

const (
	NODETOL = 1.e-12
)

// NewAxis returns count+1 uniformly spaced samples on [0, final].
func NewAxis(count int, final float64) (axis utils.Vector, err error) {
	if count < 1 {
		err = fmt.Errorf("axis partition count must be at least 1, have %d", count)
		return
	}
	if final <= 0 {
		err = fmt.Errorf("axis extent must be positive, have %v", final)
		return
	}
	axis = utils.NewVector(count + 1).Linspace(0, final)
	return
}

// Domain couples the space axis X with the second (time-like) axis Y.
// Immutable once built.
type Domain struct {
	X, Y utils.Vector
}

func NewDomain(xn int, xf float64, yn int, yf float64) (d Domain, err error) {
	if d.X, err = NewAxis(xn, xf); err != nil {
		return
	}
	if d.Y, err = NewAxis(yn, yf); err != nil {
		return
	}
	return
}

// DomainFromAxes accepts precomputed axis vectors. Each axis must start at
// zero and be uniformly spaced.
func DomainFromAxes(x, y utils.Vector) (d Domain, err error) {
	if err = checkAxis("x", x); err != nil {
		return
	}
	if err = checkAxis("y", y); err != nil {
		return
	}
	d = Domain{X: x.Copy(), Y: y.Copy()}
	return
}

func checkAxis(name string, v utils.Vector) error {
	if v.Len() < 2 {
		return fmt.Errorf("axis %s must have at least 2 samples, have %d", name, v.Len())
	}
	if math.Abs(v.AtVec(0)) > NODETOL {
		return fmt.Errorf("axis %s must start at 0, have %v", name, v.AtVec(0))
	}
	h := v.AtVec(v.Len()-1) / float64(v.Len()-1)
	for i := 1; i < v.Len(); i++ {
		if math.Abs(v.AtVec(i)-v.AtVec(i-1)-h) > NODETOL*math.Max(1, math.Abs(h)) {
			return fmt.Errorf("axis %s is not uniformly spaced at sample %d", name, i)
		}
	}
	return nil
}

// Dims returns the number of samples per axis.
func (d Domain) Dims() (nx, ny int) {
	return d.X.Len(), d.Y.Len()
}

// StepX is the uniform spacing h of the space axis.
func (d Domain) StepX() float64 {
	return d.X.AtVec(d.X.Len()-1) / float64(d.X.Len()-1)
}

// StepY is the uniform spacing k of the second axis.
func (d Domain) StepY() float64 {
	return d.Y.AtVec(d.Y.Len()-1) / float64(d.Y.Len()-1)
}
