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

	"github.com/notargets/pde2d/model_problems/Laplace2D"
	"github.com/spf13/cobra"
)

// laplaceCmd represents the laplace command
var laplaceCmd = &cobra.Command{
	Use:   "laplace",
	Short: "Steady-state Laplace equation with Dirichlet boundaries",
	Long: `
Solves u_xx + u_yy = 0 on a rectangle, with Dirichlet data on all four
edges, as one linear system over the interior grid,

pde2d laplace`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		pp, err := problemFromFlags(cmd)
		if err != nil {
			return
		}
		d, err := pp.Domain()
		if err != nil {
			return
		}
		var bcs Laplace2D.BoundaryConditions
		if bcs.X0, err = flagCondition(cmd, pp, "X0", "bx0"); err != nil {
			return
		}
		if bcs.XF, err = flagCondition(cmd, pp, "XF", "bxf"); err != nil {
			return
		}
		if bcs.Y0, err = flagCondition(cmd, pp, "Y0", "by0"); err != nil {
			return
		}
		if bcs.YF, err = flagCondition(cmd, pp, "YF", "byf"); err != nil {
			return
		}
		fmt.Printf("Xn = %d, Xf = %v, Yn = %d, Yf = %v, method = %s\n",
			pp.Xn, pp.Xf, pp.Yn, pp.Yf, pp.Method)
		u, err := Laplace2D.Solve(d, bcs, pp.Method)
		if err != nil {
			return
		}
		printSolution(pp.Title, u)
		return
	},
}

func init() {
	rootCmd.AddCommand(laplaceCmd)
	addDomainFlags(laplaceCmd, 10, 1, 10, 1, "ic")
	laplaceCmd.Flags().Float64("bx0", 0, "constant boundary value at x = 0")
	laplaceCmd.Flags().Float64("bxf", 0, "constant boundary value at x = xf")
	laplaceCmd.Flags().Float64("by0", 0, "constant boundary value at y = 0")
	laplaceCmd.Flags().Float64("byf", 0, "constant boundary value at y = yf")
}
