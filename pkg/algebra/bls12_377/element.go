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
package bls12_377

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-ecdh/pkg/util"
)

// Element adapts the scalar field of BLS12-377 to the ring capabilities
// required by polynomials.  Its modulus is ≡ 1 (mod 4), hence it cannot be
// extended by adjoining a square root of -1.
type Element struct {
	fr.Element
}

// New constructs an element from a given integer.
func New(n uint64) Element {
	var elem fr.Element
	//
	elem.SetUint64(n)
	//
	return Element{elem}
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fr.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var elem fr.Element
	//
	elem.Sub(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var elem fr.Element
	//
	elem.Mul(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Neg -x
func (x Element) Neg() Element {
	var elem fr.Element
	//
	elem.Neg(&x.Element)
	//
	return Element{elem}
}

// Inverse x⁻¹, or None if x = 0.
func (x Element) Inverse() util.Option[Element] {
	var elem fr.Element
	//
	if x.Element.IsZero() {
		return util.None[Element]()
	}
	//
	elem.Inverse(&x.Element)
	//
	return util.Some(Element{elem})
}

// Equals determines whether x = y.
func (x Element) Equals(y Element) bool {
	return x.Element.Equal(&y.Element)
}

// Zero returns the additive identity.
func (x Element) Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func (x Element) One() Element {
	return New(1)
}

// Characteristic returns the modulus of the scalar field.
func (x Element) Characteristic() *big.Int {
	return fr.Modulus()
}

func (x Element) String() string {
	return x.Element.String()
}
