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
	"bytes"
	"strings"
	"testing"

	"github.com/consensys/go-ecdh/pkg/algebra/prime"
	"github.com/stretchr/testify/require"
)

func Test_Dispatch_00(t *testing.T) {
	// every registered field has an instance of each command
	for _, cmds := range [][]FieldAgnosticCmd{exchangeCmds, curveCmds} {
		require.Len(t, cmds, len(prime.FIELD_CONFIGS))
		//
		for i, c := range cmds {
			require.Equal(t, prime.FIELD_CONFIGS[i], c.Field)
			require.NoError(t, c.Field.Check())
		}
	}
}

func Test_Exchange_00(t *testing.T) {
	var (
		out bytes.Buffer
		cfg = exchangeConfig{seed: 1, orderLimit: defaultOrderLimit[prime.P7](), keySize: 16, info: "test"}
	)
	//
	require.NoError(t, runExchange[prime.P7](&out, cfg))
	//
	text := out.String()
	for _, step := range []string{"1a. Alice", "1b. Bob", "2. Alice sends", "3a. Alice", "3b. Bob", "They coincide"} {
		require.Contains(t, text, step)
	}
	//
	require.Contains(t, text, "over F_(7^2) = F_7[x]/(x^2 + 1) = F_7(i).")
	require.Contains(t, text, "The order of G is ")
	require.Contains(t, text, "Derived key: ")
	require.NotContains(t, text, "\033[")
}

func Test_Exchange_01(t *testing.T) {
	var run = func(cfg exchangeConfig) string {
		var out bytes.Buffer
		//
		require.NoError(t, runExchange[prime.P23](&out, cfg))
		//
		return out.String()
	}
	// deterministic for a given seed
	cfg := exchangeConfig{seed: 42, orderLimit: defaultOrderLimit[prime.P23](), keySize: 32}
	require.Equal(t, run(cfg), run(cfg))
	// scalars can be fixed, without changing the curve
	fixed := cfg
	fixed.alice, fixed.bob = 1, 1
	//
	header := func(s string) string { return s[:strings.Index(s, "1a.")] }
	require.Equal(t, header(run(cfg)), header(run(fixed)))
	require.Contains(t, run(fixed), "d_a = 1 ")
	// highlighting
	cfg.ansiEscapes = true
	require.Contains(t, run(cfg), "\033[1;36m")
	require.Contains(t, run(cfg), "\033[1;32m")
	require.Contains(t, run(cfg), "\033[1;33m")
}

func Test_Curve_00(t *testing.T) {
	var out bytes.Buffer
	//
	require.NoError(t, runCurve[prime.P11](&out, 3, defaultOrderLimit[prime.P11](), true))
	//
	text := out.String()
	require.Contains(t, text, "curve:         y^2 = x^3 + ")
	require.Contains(t, text, "order:         ")
	require.NotContains(t, text, "> ")
	require.Contains(t, text, "points:        ")
}

func Test_OrderLimit_00(t *testing.T) {
	require.Equal(t, uint64(1_000_000), defaultOrderLimit[prime.P7]())
	require.Equal(t, uint64(8191*8191), defaultOrderLimit[prime.P8191]())
	// capped for large fields
	require.Equal(t, uint64(1_000_000_000), defaultOrderLimit[prime.M31]())
}

// Run the root command with given arguments, capturing its output.
func execute(t *testing.T, args ...string) string {
	var out bytes.Buffer
	//
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	//
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	//
	require.NoError(t, rootCmd.Execute())
	//
	return out.String()
}

func Test_Execute_00(t *testing.T) {
	text := execute(t, "--version")
	//
	require.True(t, strings.HasPrefix(text, "ecdh "), "output %q", text)
	require.NotContains(t, text, "Usage:")
}

func Test_Execute_01(t *testing.T) {
	text := execute(t, "curve", "--field", "GF_11", "--seed", "3", "--count")
	//
	require.Contains(t, text, "curve:         y^2 = x^3 + ")
	require.Contains(t, text, "points:        ")
}

func Test_Execute_02(t *testing.T) {
	// scalars supplied through the environment
	t.Setenv("ECDH_ALICE", "1")
	t.Setenv("ECDH_BOB", "1")
	//
	text := execute(t, "exchange", "--field", "GF_7", "--seed", "9", "--ansi-escapes=false")
	//
	require.Contains(t, text, "d_a = 1 ")
	require.Contains(t, text, "d_b = 1 ")
	require.Contains(t, text, "They coincide")
	require.NotContains(t, text, "\033[")
}
