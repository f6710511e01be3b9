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
package algebra

import (
	"fmt"
	"math/big"

	"github.com/consensys/go-ecdh/pkg/util"
)

// Additive captures the additive group structure of a ring.
type Additive[T any] interface {
	// Add x+y
	Add(y T) T
	// Sub x-y
	Sub(y T) T
	// Neg -x
	Neg() T
	// Zero returns the additive identity.  This must also work on the zero
	// value of the implementing type.
	Zero() T
}

// Multiplicative captures the multiplicative monoid structure of a ring.
type Multiplicative[T any] interface {
	// Mul x*y
	Mul(y T) T
	// One returns the multiplicative identity.  This must also work on the zero
	// value of the implementing type.
	One() T
}

// Invertible is implemented by elements which may have a multiplicative
// inverse.
type Invertible[T any] interface {
	// Inverse returns x⁻¹, or None when x is zero (or otherwise not a unit).
	Inverse() util.Option[T]
}

// Characteristic is implemented by elements of a ring with prime
// characteristic.
type Characteristic interface {
	// Characteristic returns the characteristic of the underlying prime field.
	// For an extension this is the characteristic of the base field, not the
	// cardinality of the extension.
	Characteristic() *big.Int
}

// Ring is the set of capabilities required of the coefficients of a
// polynomial.
type Ring[T any] interface {
	fmt.Stringer
	Additive[T]
	Multiplicative[T]
	Characteristic
	// Equals determines whether x = y.
	Equals(y T) bool
}

// Field is the set of capabilities required of the coordinates of an elliptic
// curve.
type Field[T any] interface {
	Ring[T]
	Invertible[T]
}

// Zero constructs the additive identity of a given ring.
func Zero[T Ring[T]]() T {
	var element T
	//
	return element.Zero()
}

// One constructs the multiplicative identity of a given ring.
func One[T Ring[T]]() T {
	var element T
	//
	return element.One()
}

// IsZero checks whether a given element is the additive identity.
func IsZero[T Ring[T]](x T) bool {
	return x.Equals(x.Zero())
}

// IsOne checks whether a given element is the multiplicative identity.
func IsOne[T Ring[T]](x T) bool {
	return x.Equals(x.One())
}

// FromUint64 constructs the element n·1 of a given ring using double-and-add.
func FromUint64[T Ring[T]](n uint64) T {
	var (
		acc = Zero[T]()
		dbl = One[T]()
	)
	//
	for ; n != 0; n >>= 1 {
		if n&1 == 1 {
			acc = acc.Add(dbl)
		}
		//
		dbl = dbl.Add(dbl)
	}
	//
	return acc
}

// Pow computes x^n by repeated squaring, using O(log n) multiplications.
// Observe that x^0 = 1 for all x (including zero).
func Pow[T Ring[T]](x T, n uint64) T {
	acc := x.One()
	//
	for ; n != 0; n >>= 1 {
		if n&1 == 1 {
			acc = acc.Mul(x)
		}
		//
		x = x.Mul(x)
	}
	//
	return acc
}

// Exp computes x^k for an arbitrary non-negative exponent k, working from the
// most significant bit down.
func Exp[T Ring[T]](x T, k *big.Int) T {
	if k.Sign() < 0 {
		panic(fmt.Sprintf("negative exponent %s", k.String()))
	}
	//
	acc := x.One()
	//
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc = acc.Mul(acc)
		//
		if k.Bit(i) == 1 {
			acc = acc.Mul(x)
		}
	}
	//
	return acc
}
