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
package quadratic

import (
	"fmt"
	"math/big"

	"github.com/consensys/go-ecdh/pkg/algebra"
	"github.com/consensys/go-ecdh/pkg/util"
)

// Element represents real + imaginary·i in the ring T[i]/(i² + 1).  When T is
// the prime field F_p with p ≡ 3 (mod 4), x² + 1 is irreducible and this is the
// field of order p².  Under any other modulus it is merely a ring, and Inverse
// and Sqrt do not compute meaningful results.  This is not checked.
type Element[T algebra.Ring[T]] struct {
	real      T
	imaginary T
}

// New constructs an element from its real and imaginary parts.
func New[T algebra.Ring[T]](real T, imaginary T) Element[T] {
	return Element[T]{real, imaginary}
}

// Embed constructs the element real + 0·i.
func Embed[T algebra.Ring[T]](real T) Element[T] {
	return Element[T]{real, real.Zero()}
}

// Real returns the real component of this element.
func (x Element[T]) Real() T {
	return x.real
}

// Imaginary returns the imaginary component of this element.
func (x Element[T]) Imaginary() T {
	return x.imaginary
}

// Add x+y
func (x Element[T]) Add(y Element[T]) Element[T] {
	return Element[T]{x.real.Add(y.real), x.imaginary.Add(y.imaginary)}
}

// Sub x-y
func (x Element[T]) Sub(y Element[T]) Element[T] {
	return Element[T]{x.real.Sub(y.real), x.imaginary.Sub(y.imaginary)}
}

// Neg -x
func (x Element[T]) Neg() Element[T] {
	return Element[T]{x.real.Neg(), x.imaginary.Neg()}
}

// Mul computes (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (x Element[T]) Mul(y Element[T]) Element[T] {
	var (
		ac = x.real.Mul(y.real)
		bd = x.imaginary.Mul(y.imaginary)
		ad = x.real.Mul(y.imaginary)
		bc = x.imaginary.Mul(y.real)
	)
	//
	return Element[T]{ac.Sub(bd), ad.Add(bc)}
}

// Conjugate returns a - bi for x = a + bi.
func (x Element[T]) Conjugate() Element[T] {
	return Element[T]{x.real, x.imaginary.Neg()}
}

// Pow computes x^n by repeated squaring directly on the pair of components.
func (x Element[T]) Pow(n uint64) Element[T] {
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

// Exp computes x^k for an arbitrary non-negative exponent.
func (x Element[T]) Exp(k *big.Int) Element[T] {
	return algebra.Exp(x, k)
}

// Inverse computes x⁻¹ as x^(p²-2) where p is the characteristic.  This is
// Fermat's little theorem in the field of order p², and therefore requires
// p ≡ 3 (mod 4).  Zero has no inverse.
func (x Element[T]) Inverse() util.Option[Element[T]] {
	if x.IsZero() {
		return util.None[Element[T]]()
	}
	//
	var (
		p = x.Characteristic()
		k = new(big.Int).Mul(p, p)
	)
	//
	k.Sub(k, big.NewInt(2))
	//
	return util.Some(x.Exp(k))
}

// Sqrt computes a square root of x, or None if x is not a square.  This uses
// the complex method for p ≡ 3 (mod 4): with a₁ = x^((p-3)/4) and α = a₁²x, x
// is a square iff α^(p+1) ≠ -1, and then a root is either i·a₁x (α = -1) or
// (1+α)^((p-1)/2)·a₁x.
func (x Element[T]) Sqrt() util.Option[Element[T]] {
	if x.IsZero() {
		return util.Some(x)
	}
	//
	var (
		p        = x.Characteristic()
		minusOne = x.One().Neg()
		e        = new(big.Int)
	)
	// a₁ = x^((p-3)/4)
	e.Sub(p, big.NewInt(3)).Rsh(e, 2)
	a1 := x.Exp(e)
	// α = a₁²x
	alpha := a1.Mul(a1).Mul(x)
	// α^(p+1) = α^p·α
	e.Add(p, big.NewInt(1))
	//
	if alpha.Exp(e).Equals(minusOne) {
		return util.None[Element[T]]()
	}
	//
	x0 := a1.Mul(x)
	//
	if alpha.Equals(minusOne) {
		i := Element[T]{x.real.Zero(), x.real.One()}
		return util.Some(i.Mul(x0))
	}
	// b = (1+α)^((p-1)/2)
	e.Sub(p, big.NewInt(1)).Rsh(e, 1)
	b := alpha.Add(x.One()).Exp(e)
	//
	return util.Some(b.Mul(x0))
}

// Equals determines whether x = y.
func (x Element[T]) Equals(y Element[T]) bool {
	return x.real.Equals(y.real) && x.imaginary.Equals(y.imaginary)
}

// IsZero checks whether this is (0,0).
func (x Element[T]) IsZero() bool {
	return algebra.IsZero(x.real) && algebra.IsZero(x.imaginary)
}

// Zero returns (0,0).
func (x Element[T]) Zero() Element[T] {
	return Element[T]{x.real.Zero(), x.real.Zero()}
}

// One returns (1,0).
func (x Element[T]) One() Element[T] {
	return Element[T]{x.real.One(), x.real.Zero()}
}

// Characteristic returns the characteristic of the base ring, rather than the
// cardinality of this extension.
func (x Element[T]) Characteristic() *big.Int {
	return x.real.Characteristic()
}

func (x Element[T]) String() string {
	switch {
	case algebra.IsZero(x.imaginary):
		return x.real.String()
	case algebra.IsZero(x.real):
		return fmt.Sprintf("%si", x.imaginary.String())
	default:
		return fmt.Sprintf("(%s + %si)", x.real.String(), x.imaginary.String())
	}
}
