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
package bn254

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/go-ecdh/pkg/algebra"
	"github.com/consensys/go-ecdh/pkg/algebra/quadratic"
	"github.com/consensys/go-ecdh/pkg/util/assert"
)

type E2 = quadratic.Element[Element]

func init() {
	// make sure the interface is adhered to.
	var _ algebra.Field[Element] = Element{}
	var _ algebra.Field[E2] = E2{}
}

func Test_Characteristic_00(t *testing.T) {
	assert.Equal(t, fp.Modulus(), Element{}.Characteristic())
	// ≡ 3 (mod 4)
	assert.Equal(t, int64(3), new(big.Int).Mod(Element{}.Characteristic(), big.NewInt(4)).Int64())
}

func Test_Inverse_00(t *testing.T) {
	assert.True(t, Element{}.Inverse().IsEmpty())
	assert.True(t, E2{}.Inverse().IsEmpty())
	//
	for range 100 {
		x := random(t)
		//
		if !x.Element.IsZero() {
			assert.Equivalent(t, x.One(), x.Mul(x.Inverse().Unwrap()), "inverse of %s", x)
		}
	}
}

func Test_Inverse_01(t *testing.T) {
	for range 20 {
		x := quadratic.New(random(t), random(t))
		// (a+bi)⁻¹ = (a-bi)/(a²+b²)
		norm := x.Real().Mul(x.Real()).Add(x.Imaginary().Mul(x.Imaginary()))
		expected := x.Conjugate().Mul(quadratic.Embed(norm.Inverse().Unwrap()))
		//
		assert.Equivalent(t, expected, x.Inverse().Unwrap(), "inverse of %s", x)
	}
}

func Test_Sqrt_00(t *testing.T) {
	for range 100 {
		x := random(t)
		y := x.Mul(x)
		//
		r := y.Sqrt().Unwrap()
		assert.Equivalent(t, y, r.Mul(r), "square root of %s", y)
	}
	// -1 is not a square for p ≡ 3 (mod 4)
	assert.True(t, New(1).Neg().Sqrt().IsEmpty())
}

func Test_Sqrt_01(t *testing.T) {
	for range 20 {
		x := quadratic.New(random(t), random(t))
		y := x.Mul(x)
		//
		r := y.Sqrt().Unwrap()
		assert.Equivalent(t, y, r.Mul(r), "square root of %s", y)
	}
	// every element of the base field is a square in the extension
	m := quadratic.Embed(New(1).Neg())
	r := m.Sqrt().Unwrap()
	assert.Equivalent(t, m, r.Mul(r))
}

func random(t *testing.T) Element {
	var elem fp.Element
	//
	if _, err := elem.SetRandom(); err != nil {
		t.Fatal(err)
	}
	//
	return Element{elem}
}
