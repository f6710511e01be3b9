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
	"io"
	"os"
	"time"

	"github.com/consensys/go-ecdh/pkg/algebra/prime"
	"github.com/consensys/go-ecdh/pkg/ecdh"
	"github.com/consensys/go-ecdh/pkg/util"
	"github.com/consensys/go-ecdh/pkg/util/termio"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var exchangeCmd = &cobra.Command{
	Use:   "exchange [flags]",
	Short: "Simulate a key exchange between Alice and Bob.",
	Long: `Simulate an elliptic curve Diffie-Hellman key exchange between Alice
	and Bob.  A smooth curve and a rational point G on it are chosen at random,
	and the order of G is determined by exhaustive search.  Alice and Bob then
	choose private scalars, publish their public points and combine them into a
	shared point, from which a symmetric key is derived.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		runFieldAgnosticCmd(cmd, args, exchangeCmds)
	},
}

// Available instances
var exchangeCmds = []FieldAgnosticCmd{
	{prime.GF_7, runExchangeCmd[prime.P7]},
	{prime.GF_11, runExchangeCmd[prime.P11]},
	{prime.GF_19, runExchangeCmd[prime.P19]},
	{prime.GF_23, runExchangeCmd[prime.P23]},
	{prime.GF_863, runExchangeCmd[prime.P863]},
	{prime.GF_8191, runExchangeCmd[prime.P8191]},
	{prime.MERSENNE_31, runExchangeCmd[prime.M31]},
}

// exchangeConfig encapsulates the parameters of a simulated exchange.
type exchangeConfig struct {
	// Seed for sampling curve, point and scalars
	seed uint64
	// Upper bound on the order search
	orderLimit uint64
	// Private scalars, where zero indicates they should be sampled.
	alice, bob uint64
	// Size (in bytes) of the derived key, where zero means none.
	keySize int
	// Context string for key derivation
	info string
	// Highlight published and shared values
	ansiEscapes bool
}

func runExchangeCmd[M prime.Modulus](cmd *cobra.Command, args []string) {
	bindFlags(cmd)
	//
	cfg := exchangeConfig{
		seed:        getSeed(cmd),
		orderLimit:  getUint64(cmd, "order-limit"),
		alice:       getUint64(cmd, "alice"),
		bob:         getUint64(cmd, "bob"),
		keySize:     getInt(cmd, "key-size"),
		info:        getString(cmd, "info"),
		ansiEscapes: termio.IsTerminal(os.Stdout),
	}
	//
	if isSet(cmd, "ansi-escapes") {
		cfg.ansiEscapes = getFlag(cmd, "ansi-escapes")
	}
	//
	if cfg.orderLimit == 0 {
		cfg.orderLimit = defaultOrderLimit[M]()
	}
	//
	if err := runExchange[M](cmd.OutOrStdout(), cfg); err != nil {
		log.Error(err)
		os.Exit(4)
	}
}

// Narrate a simulated exchange over GF(P²).
func runExchange[M prime.Modulus](w io.Writer, cfg exchangeConfig) error {
	var (
		p       = modulus[M]()
		sampler = ecdh.NewSampler[M](cfg.seed)
		public  = highlighter(cfg.ansiEscapes, termio.TERM_CYAN)
		shared  = highlighter(cfg.ansiEscapes, termio.TERM_GREEN)
		secret  = highlighter(cfg.ansiEscapes, termio.TERM_YELLOW)
		warning = highlighter(cfg.ansiEscapes, termio.TERM_RED)
	)
	//
	fmt.Fprintf(w, "\nDemonstration of ECDH (Elliptic curve Diffie-Hellman key exchange).\n\n")
	//
	c := sampler.Curve()
	fmt.Fprintf(w, "We consider the elliptic curve\n%s\nover F_(%d^2) = F_%d[x]/(x^2 + 1) = F_%d(i).\n\n", c, p, p, p)
	//
	g := sampler.Point(c)
	fmt.Fprintf(w, "We start up with the rational point G = %s.\n\n", g)
	//
	stats := util.NewPerfStats()
	params, err := ecdh.NewParams(c, g, cfg.orderLimit)
	//
	if err != nil {
		return err
	}
	//
	stats.Log("Searching order of generator")
	//
	order := params.Order
	//
	if order.HasValue() {
		fmt.Fprintf(w, "The order of G is %d.\n\n", order.Unwrap())
		// Sanity check ord·G = O
		if err := params.Validate(); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(w, "The order of G is %s.\n\n", warning(fmt.Sprintf("greater than %d", cfg.orderLimit)))
		// Fall back to the search limit as a range for scalars
		order = util.Some(cfg.orderLimit)
	}
	// Always sample both, such that a given seed determines the curve
	// regardless of whether scalars are given.
	da := choose(cfg.alice, sampler.Scalar(order))
	db := choose(cfg.bob, sampler.Scalar(order))
	//
	stats = util.NewPerfStats()
	tr, err := ecdh.Exchange(params, da, db)
	//
	if err != nil {
		return errors.Wrap(err, "exchange failed")
	}
	//
	stats.Log("Exchange")
	//
	fmt.Fprintf(w, "1a. Alice chooses d_a = %d randomly and computes Q_a = d_a G = %s.\n\n",
		da, public(tr.Alice.Public.String()))
	fmt.Fprintf(w, "1b. Bob chooses d_b = %d randomly and computes Q_b = d_b G = %s.\n\n",
		db, public(tr.Bob.Public.String()))
	fmt.Fprintf(w, "2. Alice sends Q_a to Bob while Bob sends Q_b to Alice.\n\n")
	fmt.Fprintf(w, "3a. Alice computes d_a Q_b = %s.\n\n", shared(tr.SharedA.String()))
	fmt.Fprintf(w, "3b. Bob computes d_b Q_a = %s.\n\n", shared(tr.SharedB.String()))
	fmt.Fprintf(w, "They coincide and can be used as a shared key.\n\n")
	//
	if cfg.keySize > 0 {
		key, err := ecdh.DeriveKey(tr.Shared(), []byte(cfg.info), cfg.keySize)
		//
		if err != nil {
			return err
		}
		//
		fmt.Fprintf(w, "Derived key: %s\n\n", secret(fmt.Sprintf("%x", key)))
	}
	//
	return nil
}

// The order search covers at least the whole field of order P², or one million
// points for small fields, but gives up after one billion points for large
// fields.
func defaultOrderLimit[M prime.Modulus]() uint64 {
	var p = modulus[M]()
	//
	if p*p > maxOrderLimit {
		log.Warnf("order search for p = %d limited to %d points", p, maxOrderLimit)
	}
	//
	return max(min(p*p, maxOrderLimit), 1_000_000)
}

// Largest default for the order search
const maxOrderLimit = 1_000_000_000

func modulus[M prime.Modulus]() uint64 {
	var m M
	//
	return m.Value()
}

func choose(given uint64, sampled uint64) uint64 {
	if given != 0 {
		return given
	}
	//
	return sampled
}

// Determine the seed for sampling, where zero indicates a time-based seed.
func getSeed(cmd *cobra.Command) uint64 {
	seed := getUint64(cmd, "seed")
	//
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	//
	log.Debugf("using seed %d", seed)
	//
	return seed
}

func highlighter(enabled bool, colour uint) func(string) string {
	var escape = termio.BoldAnsiEscape().FgColour(colour)
	//
	return func(s string) string {
		if enabled {
			return escape.Wrap(s)
		}
		//
		return s
	}
}

func init() {
	rootCmd.AddCommand(exchangeCmd)
	exchangeCmd.Flags().Uint64("order-limit", 0, "limit on the order search (0 for max(min(p^2, 10^9), 10^6))")
	exchangeCmd.Flags().Uint64("alice", 0, "private scalar for Alice (0 for random)")
	exchangeCmd.Flags().Uint64("bob", 0, "private scalar for Bob (0 for random)")
	exchangeCmd.Flags().Int("key-size", 32, "size (in bytes) of the derived key (0 for none)")
	exchangeCmd.Flags().String("info", "ecdh demo", "context string for key derivation")
	exchangeCmd.Flags().Bool("ansi-escapes", false,
		"specify whether to allow ANSI escapes or not (default is whether stdout is a terminal)")
}
