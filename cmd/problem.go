/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/pde2d/InputParameters"
	"github.com/notargets/pde2d/grid2d"
	"github.com/notargets/pde2d/utils"
	"github.com/spf13/cobra"
)

// problemFromFlags builds the common domain/method inputs shared by all
// three equation families. When -I names a YAML problem file, the file
// wins over the individual flags.
func problemFromFlags(cmd *cobra.Command) (pp *InputParameters.ProblemParameters, err error) {
	var (
		inputFile string
	)
	pp = &InputParameters.ProblemParameters{}
	if inputFile, err = cmd.Flags().GetString("inputFile"); err != nil {
		return
	}
	if len(inputFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(inputFile); err != nil {
			return
		}
		if err = pp.Parse(data); err != nil {
			return
		}
		pp.Print()
		return
	}
	pp.Xn, _ = cmd.Flags().GetInt("xn")
	pp.Xf, _ = cmd.Flags().GetFloat64("xf")
	pp.Yn, _ = cmd.Flags().GetInt("yn")
	pp.Yf, _ = cmd.Flags().GetFloat64("yf")
	pp.Method, _ = cmd.Flags().GetString("method")
	return
}

// flagCondition reads a constant condition value from a flag unless the
// problem file already defines the named condition.
func flagCondition(cmd *cobra.Command, pp *InputParameters.ProblemParameters, key, flag string) (c grid2d.Condition, err error) {
	if c, err = pp.ConditionFor(key); err != nil {
		return
	}
	if cmd.Flags().Changed(flag) {
		val, _ := cmd.Flags().GetFloat64(flag)
		c = grid2d.ConstCondition(val)
	}
	return
}

func addDomainFlags(cmd *cobra.Command, xn int, xf float64, yn int, yf float64, method string) {
	cmd.Flags().StringP("inputFile", "I", "", "YAML problem definition, overrides the other flags")
	cmd.Flags().Int("xn", xn, "number of partitions on the space axis")
	cmd.Flags().Float64("xf", xf, "final position on the space axis")
	cmd.Flags().Int("yn", yn, "number of partitions on the second axis")
	cmd.Flags().Float64("yf", yf, "final position on the second axis")
	cmd.Flags().StringP("method", "m", method, "finite-difference method code")
}

func printSolution(title string, u utils.Matrix) {
	if len(title) != 0 {
		fmt.Printf("%s\n", title)
	}
	fmt.Printf("u = \n%v\n", mat.Formatted(u, mat.Squeeze()))
}
