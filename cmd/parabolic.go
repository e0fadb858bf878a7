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

	"github.com/notargets/pde2d/model_problems/Parabolic2D"
	"github.com/spf13/cobra"
)

// parabolicCmd represents the parabolic command
var parabolicCmd = &cobra.Command{
	Use:   "parabolic",
	Short: "Linear parabolic (advection-diffusion) equation",
	Long: `
Solves u_y = p u_xx + q u_x + r u + s with an initial condition along
y=0 and Dirichlet boundaries in space. Method codes: ec, eu, ic, iu
(explicit/implicit x central/upwind),

pde2d parabolic`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		pp, err := problemFromFlags(cmd)
		if err != nil {
			return
		}
		d, err := pp.Domain()
		if err != nil {
			return
		}
		var conds Parabolic2D.Conditions
		if conds.Init, err = flagCondition(cmd, pp, "Init", "init"); err != nil {
			return
		}
		if conds.X0, err = flagCondition(cmd, pp, "X0", "bx0"); err != nil {
			return
		}
		if conds.XF, err = flagCondition(cmd, pp, "XF", "bxf"); err != nil {
			return
		}
		var coeffs Parabolic2D.Coefficients
		if coeffs.P, err = pp.CoefficientFor("P"); err != nil {
			return
		}
		if coeffs.Q, err = pp.CoefficientFor("Q"); err != nil {
			return
		}
		if coeffs.R, err = pp.CoefficientFor("R"); err != nil {
			return
		}
		if coeffs.S, err = pp.CoefficientFor("S"); err != nil {
			return
		}
		fmt.Printf("Xn = %d, Xf = %v, Yn = %d, Yf = %v, method = %s\n",
			pp.Xn, pp.Xf, pp.Yn, pp.Yf, pp.Method)
		u, err := Parabolic2D.Solve(d, coeffs, conds, pp.Method)
		if err != nil {
			return
		}
		printSolution(pp.Title, u)
		return
	},
}

func init() {
	rootCmd.AddCommand(parabolicCmd)
	addDomainFlags(parabolicCmd, 10, 1, 100, 1, "iu")
	parabolicCmd.Flags().Float64("init", 0, "constant initial value along y = 0")
	parabolicCmd.Flags().Float64("bx0", 0, "constant boundary value at x = 0")
	parabolicCmd.Flags().Float64("bxf", 0, "constant boundary value at x = xf")
}
