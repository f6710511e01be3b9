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
	"encoding/binary"
	"math/big"
	"math/bits"
	"strconv"

	"github.com/consensys/go-ecdh/pkg/util"
	"github.com/consensys/go-ecdh/pkg/util/math"
)

// Modulus identifies the modulus of a prime field at the type level.  This
// allows the zero value of an Element to be meaningful, and prevents elements
// of different fields from being mixed.  Implementations are expected to be
// empty structs.
type Modulus interface {
	// Value returns the modulus itself.
	Value() uint64
}

// Element is an integer modulo a fixed modulus M, held as its canonical
// representative r with 0 ≤ r < M.  Elements are immutable.
type Element[M Modulus] struct {
	representative uint64
}

// New constructs an element from a given integer, reducing it modulo M.
func New[M Modulus](n uint64) Element[M] {
	var m M
	//
	return Element[M]{n % m.Value()}
}

// Uint64 returns the canonical representative of this element.
func (x Element[M]) Uint64() uint64 {
	return x.representative
}

// Modulus returns the modulus of the field this element belongs to.
func (x Element[M]) Modulus() uint64 {
	var m M
	//
	return m.Value()
}

// Add x+y
func (x Element[M]) Add(y Element[M]) Element[M] {
	return Element[M]{add(x.representative, y.representative, x.Modulus())}
}

// Sub x-y.  This adds the modulus before reducing, such that it never
// underflows.
func (x Element[M]) Sub(y Element[M]) Element[M] {
	var m = x.Modulus()
	//
	return Element[M]{add(x.representative, m-y.representative, m)}
}

// Mul x*y.  The product is formed at 128 bits before being reduced, hence this
// is safe for any modulus.
func (x Element[M]) Mul(y Element[M]) Element[M] {
	hi, lo := bits.Mul64(x.representative, y.representative)
	//
	return Element[M]{bits.Rem64(hi, lo, x.Modulus())}
}

// Neg -x
func (x Element[M]) Neg() Element[M] {
	return New[M](x.Modulus() - x.representative)
}

// Pow computes x^n by repeated squaring.
func (x Element[M]) Pow(n uint64) Element[M] {
	res := x.One()
	//
	for ; n != 0; n >>= 1 {
		if n&1 == 1 {
			res = res.Mul(x)
		}
		//
		x = x.Mul(x)
	}
	//
	return res
}

// Inverse computes x⁻¹ as x^(M-2), using Fermat's little theorem.  This
// requires the modulus to be prime and is defined only when gcd(x, M) = 1.
func (x Element[M]) Inverse() util.Option[Element[M]] {
	var m = x.Modulus()
	//
	if math.GcdUint64(x.representative, m) != 1 {
		return util.None[Element[M]]()
	}
	//
	return util.Some(x.Pow(m - 2))
}

// Equals determines whether x = y.
func (x Element[M]) Equals(y Element[M]) bool {
	return x.representative == y.representative
}

// IsZero checks whether this is the additive identity.
func (x Element[M]) IsZero() bool {
	return x.representative == 0
}

// Zero returns the additive identity of this field.
func (x Element[M]) Zero() Element[M] {
	return Element[M]{0}
}

// One returns the multiplicative identity of this field.
func (x Element[M]) One() Element[M] {
	return New[M](1)
}

// Characteristic returns the modulus of this field.
func (x Element[M]) Characteristic() *big.Int {
	return new(big.Int).SetUint64(x.Modulus())
}

// Bytes returns the big-endian encoding of this element's representative.
func (x Element[M]) Bytes() []byte {
	return binary.BigEndian.AppendUint64(nil, x.representative)
}

func (x Element[M]) String() string {
	return strconv.FormatUint(x.representative, 10)
}

// add computes (x + y) mod m for reduced operands without overflowing, even
// for moduli close to 2^64.
func add(x, y, m uint64) uint64 {
	sum, carry := bits.Add64(x, y, 0)
	//
	if carry != 0 || sum >= m {
		sum -= m
	}
	//
	return sum
}
