package grid2d

import (
	"fmt"

	"github.com/notargets/pde2d/utils"
)

type specKind uint8

const (
	constSpec specKind = iota
	vectorSpec
	funcSpec
)

// Condition is a boundary or initial condition along one axis: a constant,
// a precomputed sample vector, or a function of the axis coordinate. The
// zero value is the constant 0.
type Condition struct {
	kind    specKind
	val     float64
	samples []float64
	profile func(float64) float64
}

func ConstCondition(val float64) Condition {
	return Condition{kind: constSpec, val: val}
}

func VectorCondition(samples []float64) Condition {
	return Condition{kind: vectorSpec, samples: samples}
}

func FuncCondition(f func(float64) float64) Condition {
	return Condition{kind: funcSpec, profile: f}
}

// Materialize resolves the condition against the axis it ranges over,
// returning one value per axis sample. Sample vectors pass through after a
// length check, constants broadcast, functions apply elementwise.
func (c Condition) Materialize(axis utils.Vector) (vals []float64, err error) {
	var (
		n = axis.Len()
	)
	switch c.kind {
	case constSpec:
		vals = make([]float64, n)
		for i := range vals {
			vals[i] = c.val
		}
	case vectorSpec:
		if len(c.samples) != n {
			err = fmt.Errorf("condition vector has length %d, axis has %d samples", len(c.samples), n)
			return
		}
		vals = c.samples
	case funcSpec:
		vals = make([]float64, n)
		for i := range vals {
			vals[i] = c.profile(axis.AtVec(i))
		}
	}
	return
}
