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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-ecdh/pkg/algebra/prime"
	"github.com/consensys/go-ecdh/pkg/ecdh"
	"github.com/consensys/go-ecdh/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var curveCmd = &cobra.Command{
	Use:   "curve [flags]",
	Short: "Sample a random curve and a rational point on it.",
	Long: `Sample a random smooth curve y^2 = x^3 + ax + b over the field of
	order p^2, along with a rational point on it and the order of that point.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		runFieldAgnosticCmd(cmd, args, curveCmds)
	},
}

// Available instances
var curveCmds = []FieldAgnosticCmd{
	{prime.GF_7, runCurveCmd[prime.P7]},
	{prime.GF_11, runCurveCmd[prime.P11]},
	{prime.GF_19, runCurveCmd[prime.P19]},
	{prime.GF_23, runCurveCmd[prime.P23]},
	{prime.GF_863, runCurveCmd[prime.P863]},
	{prime.GF_8191, runCurveCmd[prime.P8191]},
	{prime.MERSENNE_31, runCurveCmd[prime.M31]},
}

func runCurveCmd[M prime.Modulus](cmd *cobra.Command, args []string) {
	bindFlags(cmd)
	//
	var (
		seed  = getSeed(cmd)
		limit = getUint64(cmd, "order-limit")
		count = getFlag(cmd, "count")
	)
	//
	if limit == 0 {
		limit = defaultOrderLimit[M]()
	}
	// Sanity check
	if count && modulus[M]() > ecdh.MaxCountModulus {
		fmt.Printf("cannot count points for p = %d (max %d)\n", modulus[M](), ecdh.MaxCountModulus)
		os.Exit(3)
	}
	//
	if err := runCurve[M](cmd.OutOrStdout(), seed, limit, count); err != nil {
		log.Error(err)
		os.Exit(4)
	}
}

func runCurve[M prime.Modulus](w io.Writer, seed uint64, limit uint64, count bool) error {
	var (
		sampler = ecdh.NewSampler[M](seed)
		c       = sampler.Curve()
		g       = sampler.Point(c)
		stats   = util.NewPerfStats()
		order   = c.Order(g, limit)
	)
	//
	stats.Log("Searching order of point")
	//
	fmt.Fprintf(w, "curve:         %s\n", c)
	fmt.Fprintf(w, "polynomial:    %s\n", c.Polynomial())
	fmt.Fprintf(w, "discriminant:  %s\n", c.Discriminant())
	fmt.Fprintf(w, "point:         %s\n", g)
	//
	if order.HasValue() {
		fmt.Fprintf(w, "order:         %d\n", order.Unwrap())
	} else {
		fmt.Fprintf(w, "order:         > %d\n", limit)
	}
	// Determine group order by enumeration
	if count {
		stats = util.NewPerfStats()
		n, err := ecdh.CountPoints(context.Background(), c)
		//
		if err != nil {
			return err
		}
		//
		stats.Log("Counting points")
		fmt.Fprintf(w, "points:        %d\n", n)
	}
	//
	return nil
}

func init() {
	rootCmd.AddCommand(curveCmd)
	curveCmd.Flags().Uint64("order-limit", 0, "limit on the order search (0 for max(min(p^2, 10^9), 10^6))")
	curveCmd.Flags().Bool("count", false, "count all points on the curve (requires O(p^2) steps)")
}
