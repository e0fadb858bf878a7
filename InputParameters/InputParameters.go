package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/pde2d/grid2d"
)

// Parameters obtained from the YAML input file
type ProblemParameters struct {
	Title        string               `yaml:"Title"`
	Equation     string               `yaml:"Equation"` // laplace, parabolic or wave
	Method       string               `yaml:"Method"`
	Xn           int                  `yaml:"Xn"`
	Xf           float64              `yaml:"Xf"`
	Yn           int                  `yaml:"Yn"`
	Yf           float64              `yaml:"Yf"`
	Conditions   map[string]ValueSpec `yaml:"Conditions"`   // Keys: Init, DInit, X0, XF, Y0, YF
	Coefficients map[string]ValueSpec `yaml:"Coefficients"` // Keys: P, Q, R, S
}

// ValueSpec is the file form of a condition or coefficient: a scalar Value
// or an explicit Values list sized to the target axis.
type ValueSpec struct {
	Value  *float64  `yaml:"Value,omitempty"`
	Values []float64 `yaml:"Values,omitempty"`
}

func (vs ValueSpec) Condition() (grid2d.Condition, error) {
	switch {
	case vs.Value != nil && len(vs.Values) != 0:
		return grid2d.Condition{}, fmt.Errorf("condition carries both Value and Values")
	case vs.Value != nil:
		return grid2d.ConstCondition(*vs.Value), nil
	case len(vs.Values) != 0:
		return grid2d.VectorCondition(vs.Values), nil
	}
	return grid2d.Condition{}, nil
}

func (vs ValueSpec) Coefficient() (grid2d.Coefficient, error) {
	if len(vs.Values) != 0 {
		return grid2d.Coefficient{}, fmt.Errorf("coefficients accept scalar Value entries only")
	}
	if vs.Value != nil {
		return grid2d.ConstCoefficient(*vs.Value), nil
	}
	return grid2d.Coefficient{}, nil
}

func (pp *ProblemParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, pp); err != nil {
		return err
	}
	return pp.validate()
}

func (pp *ProblemParameters) validate() error {
	switch pp.Equation {
	case "laplace", "parabolic", "wave":
	default:
		return fmt.Errorf("value %q for Equation is not valid, must be laplace, parabolic or wave", pp.Equation)
	}
	if pp.Xn < 1 || pp.Yn < 1 {
		return fmt.Errorf("Xn and Yn must be at least 1, have %d and %d", pp.Xn, pp.Yn)
	}
	return nil
}

// Domain builds the axes from the partition/extent parameters.
func (pp *ProblemParameters) Domain() (grid2d.Domain, error) {
	return grid2d.NewDomain(pp.Xn, pp.Xf, pp.Yn, pp.Yf)
}

// ConditionFor returns the named condition, defaulting to the constant 0.
func (pp *ProblemParameters) ConditionFor(name string) (grid2d.Condition, error) {
	vs, ok := pp.Conditions[name]
	if !ok {
		return grid2d.Condition{}, nil
	}
	return vs.Condition()
}

// CoefficientFor returns the named coefficient, defaulting to the constant 0.
func (pp *ProblemParameters) CoefficientFor(name string) (grid2d.Coefficient, error) {
	vs, ok := pp.Coefficients[name]
	if !ok {
		return grid2d.Coefficient{}, nil
	}
	return vs.Coefficient()
}

func (pp *ProblemParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", pp.Title)
	fmt.Printf("[%s]\t\t\t= Equation\n", pp.Equation)
	fmt.Printf("[%s]\t\t\t= Method\n", pp.Method)
	fmt.Printf("%d, %8.5f\t\t= Xn, Xf\n", pp.Xn, pp.Xf)
	fmt.Printf("%d, %8.5f\t\t= Yn, Yf\n", pp.Yn, pp.Yf)
	keys := make([]string, 0, len(pp.Conditions))
	for k := range pp.Conditions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		vs := pp.Conditions[key]
		if vs.Value != nil {
			fmt.Printf("Conditions[%s] = %v\n", key, *vs.Value)
		} else {
			fmt.Printf("Conditions[%s] = %v\n", key, vs.Values)
		}
	}
	keys = keys[:0]
	for k := range pp.Coefficients {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		vs := pp.Coefficients[key]
		if vs.Value != nil {
			fmt.Printf("Coefficients[%s] = %v\n", key, *vs.Value)
		}
	}
}
