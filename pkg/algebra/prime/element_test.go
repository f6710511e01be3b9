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
package prime

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-ecdh/pkg/algebra"
	"github.com/consensys/go-ecdh/pkg/util/assert"
)

// P64 is the largest prime below 2^64, used to exercise overflow handling.
type P64 struct{}

func (P64) Value() uint64 { return 18446744073709551557 }

func init() {
	// make sure the interface is adhered to.
	var _ algebra.Field[Element[P7]] = Element[P7]{}
	var _ algebra.Field[Element[M31]] = Element[M31]{}
}

func Test_New_00(t *testing.T) {
	assert.Equal(t, uint64(3), New[P7](10).Uint64())
	assert.Equal(t, uint64(0), New[P7](7).Uint64())
	assert.Equal(t, uint64(862), New[P863](5*863+862).Uint64())
}

func Test_New_01(t *testing.T) {
	var zero Element[P863]
	// zero value is the zero of the field
	assert.Equivalent(t, New[P863](0), zero)
	assert.Equivalent(t, zero.Zero(), zero)
	assert.Equal(t, uint64(1), zero.One().Uint64())
}

func Test_Arith_00(t *testing.T) {
	var (
		a = New[P7](5)
		b = New[P7](4)
	)
	//
	assert.Equal(t, uint64(2), a.Add(b).Uint64())
	assert.Equal(t, uint64(1), a.Sub(b).Uint64())
	assert.Equal(t, uint64(6), b.Sub(a).Uint64())
	assert.Equal(t, uint64(6), a.Mul(b).Uint64())
	assert.Equal(t, uint64(2), a.Neg().Uint64())
	assert.Equal(t, uint64(0), a.Zero().Neg().Uint64())
}

func Test_Arith_01(t *testing.T) {
	checkArithmetic[P7](t, 1000)
}

func Test_Arith_02(t *testing.T) {
	checkArithmetic[P863](t, 10000)
}

func Test_Arith_03(t *testing.T) {
	checkArithmetic[M31](t, 10000)
}

func Test_Arith_04(t *testing.T) {
	checkArithmetic[P64](t, 10000)
}

func Test_Pow_00(t *testing.T) {
	assert.Equal(t, uint64(1), New[P7](3).Pow(6).Uint64())
	assert.Equal(t, uint64(6), New[P7](3).Pow(3).Uint64())
	assert.Equal(t, uint64(1), New[P7](0).Pow(0).Uint64())
	assert.Equal(t, uint64(0), New[P7](0).Pow(5).Uint64())
}

func Test_Pow_01(t *testing.T) {
	// Fermat's little theorem
	for i := uint64(1); i < 7; i++ {
		assert.Equal(t, uint64(1), New[P7](i).Pow(6).Uint64(), "%d^6", i)
	}
}

func Test_Pow_02(t *testing.T) {
	checkPowLoop[P7](t)
}

func Test_Pow_03(t *testing.T) {
	checkPowLoop[P11](t)
}

func Test_Pow_04(t *testing.T) {
	checkPowLoop[P863](t)
}

func Test_Inverse_00(t *testing.T) {
	assert.True(t, New[P7](0).Inverse().IsEmpty())
	assert.Equal(t, uint64(5), New[P7](3).Inverse().Unwrap().Uint64())
}

func Test_Inverse_01(t *testing.T) {
	checkInverseLoop[P7](t)
}

func Test_Inverse_02(t *testing.T) {
	checkInverseLoop[P19](t)
}

func Test_Inverse_03(t *testing.T) {
	checkInverseLoop[P8191](t)
}

func Test_Inverse_04(t *testing.T) {
	var rng = rand.New(rand.NewPCG(1, 2))
	//
	for range 1000 {
		x := New[P64](rng.Uint64())
		if x.IsZero() {
			continue
		}
		//
		assert.Equal(t, uint64(1), x.Mul(x.Inverse().Unwrap()).Uint64(), "inverse of %s", x)
	}
}

func Test_Characteristic_00(t *testing.T) {
	assert.Equal(t, big.NewInt(863), New[P863](5).Characteristic())
	assert.Equal(t, new(big.Int).SetUint64(P64{}.Value()), Element[P64]{}.Characteristic())
}

func Test_String_00(t *testing.T) {
	assert.Equal(t, "862", New[P863](862).String())
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 3, 94}, New[P863](862).Bytes())
}

func Test_Config_00(t *testing.T) {
	for _, c := range FIELD_CONFIGS {
		if err := c.Check(); err != nil {
			t.Error(err)
		}
		//
		assert.Equal(t, c, *GetConfig(c.Name))
	}
}

func Test_Config_01(t *testing.T) {
	assert.True(t, GetConfig("GF_13") == nil)
	assert.True(t, Config{"GF_13", 13}.Check() != nil)
	assert.True(t, Config{"GF_3", 3}.Check() != nil)
	assert.True(t, Config{"GF_15", 15}.Check() != nil)
	assert.True(t, Config{"GF_0", 0}.Check() != nil)
}

// ============================================================================
// Helpers
// ============================================================================

// checkArithmetic compares field arithmetic against big.Int arithmetic on
// random operands.
func checkArithmetic[M Modulus](t *testing.T, n uint) {
	var (
		rng  = rand.New(rand.NewPCG(uint64(n), 0))
		m    = new(big.Int).SetUint64(Element[M]{}.Modulus())
		i, j big.Int
		k    big.Int
	)
	//
	for range n {
		a := rng.Uint64()
		b := rng.Uint64()
		x, y := New[M](a), New[M](b)
		//
		i.SetUint64(a)
		j.SetUint64(b)
		// Add
		k.Add(&i, &j).Mod(&k, m)
		assert.Equal(t, k.Uint64(), x.Add(y).Uint64(), "%d + %d", a, b)
		// Sub
		k.Sub(&i, &j).Mod(&k, m)
		assert.Equal(t, k.Uint64(), x.Sub(y).Uint64(), "%d - %d", a, b)
		// Mul
		k.Mul(&i, &j).Mod(&k, m)
		assert.Equal(t, k.Uint64(), x.Mul(y).Uint64(), "%d * %d", a, b)
		// Neg
		k.Neg(&i).Mod(&k, m)
		assert.Equal(t, k.Uint64(), x.Neg().Uint64(), "-%d", a)
	}
}

// checkPowLoop compares Pow against naive repeated multiplication, for all
// elements and exponents 0..50.
func checkPowLoop[M Modulus](t *testing.T) {
	var m = Element[M]{}.Modulus()
	//
	for i := range min(m, 1000) {
		var (
			x   = New[M](i)
			acc = x.One()
		)
		//
		for n := range uint64(51) {
			assert.Equivalent(t, acc, x.Pow(n), "%s^%d", x, n)
			assert.Equivalent(t, acc, algebra.Pow(x, n), "%s^%d", x, n)
			//
			acc = acc.Mul(x)
		}
	}
}

func checkInverseLoop[M Modulus](t *testing.T) {
	var m = Element[M]{}.Modulus()
	//
	for i := uint64(1); i < m; i++ {
		x := New[M](i)
		inv := x.Inverse()
		//
		assert.True(t, inv.HasValue(), "inverse of %d", i)
		assert.Equal(t, uint64(1), x.Mul(inv.Unwrap()).Uint64(), "inverse of %d", i)
	}
}
