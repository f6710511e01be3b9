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
package algebra_test

import (
	"math/big"
	"testing"

	"github.com/consensys/go-ecdh/pkg/algebra"
	"github.com/consensys/go-ecdh/pkg/algebra/bls12_377"
	"github.com/consensys/go-ecdh/pkg/algebra/prime"
	"github.com/consensys/go-ecdh/pkg/algebra/quadratic"
	"github.com/consensys/go-ecdh/pkg/util/assert"
)

type (
	F11  = prime.Element[prime.P11]
	F121 = quadratic.Element[F11]
)

func Test_Identity_00(t *testing.T) {
	assert.True(t, algebra.IsZero(algebra.Zero[F11]()))
	assert.True(t, algebra.IsOne(algebra.One[F11]()))
	assert.False(t, algebra.IsZero(algebra.One[F11]()))
	assert.True(t, algebra.IsZero(algebra.Zero[F121]()))
	assert.True(t, algebra.IsOne(algebra.One[F121]()))
	assert.True(t, algebra.IsZero(algebra.Zero[bls12_377.Element]()))
	assert.True(t, algebra.IsOne(algebra.One[bls12_377.Element]()))
}

func Test_FromUint64_00(t *testing.T) {
	for n := range uint64(100) {
		assert.Equal(t, n%11, algebra.FromUint64[F11](n).Uint64(), "%d", n)
		assert.Equivalent(t, quadratic.Embed(prime.New[prime.P11](n)), algebra.FromUint64[F121](n), "%d", n)
		assert.Equivalent(t, bls12_377.New(n), algebra.FromUint64[bls12_377.Element](n), "%d", n)
	}
}

func Test_Pow_00(t *testing.T) {
	checkPow(t, prime.New[prime.P11](3))
	checkPow(t, quadratic.New(prime.New[prime.P11](3), prime.New[prime.P11](7)))
	checkPow(t, bls12_377.New(123456789))
}

func Test_Exp_00(t *testing.T) {
	// Exp agrees with Pow for exponents which fit within 64 bits
	for _, k := range []uint64{0, 1, 2, 3, 255, 256, 1<<63 + 5, 1<<64 - 1} {
		var (
			x = quadratic.New(prime.New[prime.P11](2), prime.New[prime.P11](9))
			e = new(big.Int).SetUint64(k)
		)
		//
		assert.Equivalent(t, algebra.Pow(x, k), algebra.Exp(x, e), "%s^%d", x, k)
	}
}

func Test_Exp_01(t *testing.T) {
	// x^(p-1) = 1 for a 253 bit prime p
	var (
		x = bls12_377.New(987654321)
		k = new(big.Int).Sub(x.Characteristic(), big.NewInt(1))
	)
	//
	assert.True(t, algebra.IsOne(algebra.Exp(x, k)))
}

func Test_Exp_02(t *testing.T) {
	assert.Panics(t, func() {
		algebra.Exp(prime.New[prime.P11](2), big.NewInt(-1))
	})
}

// checkPow compares Pow against naive repeated multiplication.
func checkPow[T algebra.Ring[T]](t *testing.T, x T) {
	acc := algebra.One[T]()
	//
	for n := range uint64(51) {
		assert.Equivalent(t, acc, algebra.Pow(x, n), "%s^%d", x, n)
		//
		acc = acc.Mul(x)
	}
}
