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
package curve

import (
	"fmt"
	"math/big"

	"github.com/consensys/go-ecdh/pkg/algebra"
)

// Point is a rational point on a short Weierstrass curve y² = x³ + ax + b over
// a field T.  This is either the point at infinity O (the group identity), or
// an affine point (x, y).  The zero value of Point is O.  The curve itself is
// not recorded, and affine points are not validated against it; instead, the
// coefficient a is supplied to each operation requiring it.
type Point[T algebra.Field[T]] struct {
	x, y T
	// Indicates an affine point (rather than infinity)
	affine bool
}

// Infinity returns the point at infinity.
func Infinity[T algebra.Field[T]]() Point[T] {
	return Point[T]{}
}

// NewPoint constructs an affine point (x, y).
func NewPoint[T algebra.Field[T]](x T, y T) Point[T] {
	return Point[T]{x, y, true}
}

// IsInfinity checks whether this is the point at infinity.
func (p Point[T]) IsInfinity() bool {
	return !p.affine
}

// Coordinates returns the affine coordinates of this point, where ok is false
// for the point at infinity.
func (p Point[T]) Coordinates() (x T, y T, ok bool) {
	return p.x, p.y, p.affine
}

// Equals determines whether two points are identical.
func (p Point[T]) Equals(q Point[T]) bool {
	if p.affine != q.affine {
		return false
	} else if !p.affine {
		return true
	}
	//
	return p.x.Equals(q.x) && p.y.Equals(q.y)
}

// Neg returns -p, which is (x, -y) for an affine point.
func (p Point[T]) Neg() Point[T] {
	if !p.affine {
		return p
	}
	//
	return NewPoint(p.x, p.y.Neg())
}

// Add computes p + q using the chord-and-tangent law for the curve with
// coefficient a.  The inversions performed here always succeed for points on a
// smooth curve.  Otherwise, this panics with an InvariantError.
func (p Point[T]) Add(q Point[T], a T) Point[T] {
	switch {
	case !p.affine:
		return q
	case !q.affine:
		return p
	case p.x.Equals(q.x):
		if p.y.Equals(q.y.Neg()) {
			// q = -p
			return Infinity[T]()
		}
		//
		return p.double(a)
	}
	// m = (y₂ - y₁)/(x₂ - x₁)
	m := q.y.Sub(p.y).Mul(p.invert("add", q, q.x.Sub(p.x)))
	mm := m.Mul(m)
	// x₃ = m² - x₁ - x₂
	x3 := mm.Sub(p.x).Sub(q.x)
	// y₃ = m(2x₁ + x₂ - m²) - y₁
	y3 := m.Mul(p.x.Add(p.x).Add(q.x).Sub(mm)).Sub(p.y)
	//
	return NewPoint(x3, y3)
}

// Double computes p + p for the curve with coefficient a.
func (p Point[T]) Double(a T) Point[T] {
	return p.Add(p, a)
}

// double is the tangent case of the group law, which requires 2y ≠ 0.
func (p Point[T]) double(a T) Point[T] {
	var (
		x2      = p.x.Mul(p.x)
		threeX2 = x2.Add(x2).Add(x2)
	)
	// m = (3x₁² + a)/2y₁
	m := threeX2.Add(a).Mul(p.invert("double", p, p.y.Add(p.y)))
	mm := m.Mul(m)
	// x₃ = m² - 2x₁
	x3 := mm.Sub(p.x).Sub(p.x)
	// y₃ = m(x₁ - x₃) - y₁ = m(3x₁ - m²) - y₁
	y3 := m.Mul(p.x.Add(p.x).Add(p.x).Sub(mm)).Sub(p.y)
	//
	return NewPoint(x3, y3)
}

func (p Point[T]) invert(op string, q Point[T], denominator T) T {
	inv := denominator.Inverse()
	//
	if inv.IsEmpty() {
		panic(&InvariantError{op, []fmt.Stringer{p, q}, ErrNotInvertible})
	}
	//
	return inv.Unwrap()
}

// ScalarMul computes n·p using double-and-add.  The bits of n are consumed
// from least to most significant, adding the running double into an
// accumulator for each set bit.  Observe that 0·p = O and n·O = O.
func (p Point[T]) ScalarMul(a T, n uint64) Point[T] {
	var acc = Infinity[T]()
	//
	for ; n != 0 && p.affine; n >>= 1 {
		if n&1 == 1 {
			acc = acc.Add(p, a)
		}
		//
		p = p.Add(p, a)
	}
	//
	return acc
}

// ScalarMulBig computes k·p for an arbitrary non-negative scalar k.
func (p Point[T]) ScalarMulBig(a T, k *big.Int) Point[T] {
	var acc = Infinity[T]()
	//
	if k.Sign() < 0 {
		panic(fmt.Sprintf("negative scalar %s", k.String()))
	}
	//
	for i := 0; i < k.BitLen() && p.affine; i++ {
		if k.Bit(i) == 1 {
			acc = acc.Add(p, a)
		}
		//
		p = p.Add(p, a)
	}
	//
	return acc
}

func (p Point[T]) String() string {
	if !p.affine {
		return "O"
	}
	//
	return fmt.Sprintf("(%s, %s)", p.x.String(), p.y.String())
}
