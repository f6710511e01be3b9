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
package secp256k1

import (
	"encoding/binary"
	"math/big"

	"github.com/consensys/go-ecdh/pkg/util"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Element adapts the base field of secp256k1 to the ring capabilities.  Every
// element is kept normalised, such that equality can be determined directly.
// The modulus is ≡ 3 (mod 4).
type Element struct {
	val secp256k1.FieldVal
}

// New constructs an element from a given integer.
func New(n uint64) Element {
	var val secp256k1.FieldVal
	//
	val.SetByteSlice(binary.BigEndian.AppendUint64(nil, n))
	//
	return Element{val}
}

// FromFieldVal constructs an element from an arbitrary field value.
func FromFieldVal(val secp256k1.FieldVal) Element {
	val.Normalize()
	//
	return Element{val}
}

// FieldVal returns the (normalised) field value underlying this element.
func (x Element) FieldVal() secp256k1.FieldVal {
	return x.val
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res secp256k1.FieldVal
	//
	res.Add2(&x.val, &y.val).Normalize()
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var res secp256k1.FieldVal
	//
	res.NegateVal(&y.val, 1).Add(&x.val).Normalize()
	//
	return Element{res}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var res secp256k1.FieldVal
	//
	res.Mul2(&x.val, &y.val).Normalize()
	//
	return Element{res}
}

// Neg -x
func (x Element) Neg() Element {
	var res secp256k1.FieldVal
	//
	res.NegateVal(&x.val, 1).Normalize()
	//
	return Element{res}
}

// Inverse x⁻¹, or None if x = 0.
func (x Element) Inverse() util.Option[Element] {
	var res secp256k1.FieldVal
	//
	if x.val.IsZero() {
		return util.None[Element]()
	}
	//
	res.Set(&x.val).Inverse().Normalize()
	//
	return util.Some(Element{res})
}

// Equals determines whether x = y.
func (x Element) Equals(y Element) bool {
	return x.val.Equals(&y.val)
}

// Zero returns the additive identity.
func (x Element) Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func (x Element) One() Element {
	var res secp256k1.FieldVal
	//
	res.SetInt(1)
	//
	return Element{res}
}

// Characteristic returns the modulus of the base field.
func (x Element) Characteristic() *big.Int {
	return new(big.Int).Set(secp256k1.Params().P)
}

func (x Element) String() string {
	return x.val.String()
}
