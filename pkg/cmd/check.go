// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ed255/plonky2/pkg/memory"
	"github.com/ed255/plonky2/pkg/stark"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags]",
	Short: "Generate a random memory trace and check it.",
	Long: `Generate a random memory operation log, materialise its trace and
	check every constraint through both the packed and the circuit evaluator,
	along with the declared constraint-degree bound.`,
	Run: func(cmd *cobra.Command, args []string) {
		n := GetInt(cmd, "ops")
		seed := GetUint64(cmd, "seed")
		//
		rng := rand.New(rand.NewPCG(seed, seed))
		ops := memory.RandomOps(n, rng)
		//
		var system memory.Stark
		//
		tr, err := system.GenerateTrace(ops)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		if observed, err := stark.CheckDegree(system); err != nil {
			fmt.Println(err)
			os.Exit(1)
		} else {
			log.Debugf("maximum constraint degree %d (bound %d)", observed, system.ConstraintDegree())
		}
		//
		if err := stark.Check(system, tr); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if err := stark.CheckCircuit(system, tr); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		fmt.Printf("checked %d rows x %d columns (packed + circuit)\n", tr.Height(), tr.Width())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Int("ops", 100, "number of random memory operations")
	checkCmd.Flags().Uint64("seed", 0, "seed for the operation generator")
}
