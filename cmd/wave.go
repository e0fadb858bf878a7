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

	"github.com/notargets/pde2d/model_problems/Wave2D"
	"github.com/spf13/cobra"
)

// waveCmd represents the wave command
var waveCmd = &cobra.Command{
	Use:   "wave",
	Short: "Wave equation with initial displacement and velocity",
	Long: `
Solves u_yy = u_xx with initial displacement and velocity along y=0 and
Dirichlet boundaries in space. Method codes: e (explicit), i (implicit),

pde2d wave`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		pp, err := problemFromFlags(cmd)
		if err != nil {
			return
		}
		d, err := pp.Domain()
		if err != nil {
			return
		}
		var conds Wave2D.Conditions
		if conds.Init, err = flagCondition(cmd, pp, "Init", "init"); err != nil {
			return
		}
		if conds.DInit, err = flagCondition(cmd, pp, "DInit", "dinit"); err != nil {
			return
		}
		if conds.X0, err = flagCondition(cmd, pp, "X0", "bx0"); err != nil {
			return
		}
		if conds.XF, err = flagCondition(cmd, pp, "XF", "bxf"); err != nil {
			return
		}
		fmt.Printf("Xn = %d, Xf = %v, Yn = %d, Yf = %v, method = %s\n",
			pp.Xn, pp.Xf, pp.Yn, pp.Yf, pp.Method)
		u, err := Wave2D.Solve(d, conds, pp.Method)
		if err != nil {
			return
		}
		printSolution(pp.Title, u)
		return
	},
}

func init() {
	rootCmd.AddCommand(waveCmd)
	addDomainFlags(waveCmd, 10, 1, 10, 1, "i")
	waveCmd.Flags().Float64("init", 0, "constant initial displacement along y = 0")
	waveCmd.Flags().Float64("dinit", 0, "constant initial velocity along y = 0")
	waveCmd.Flags().Float64("bx0", 0, "constant boundary value at x = 0")
	waveCmd.Flags().Float64("bxf", 0, "constant boundary value at x = xf")
}
