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
package poly

import (
	"math/big"
	"slices"

	"github.com/consensys/go-ecdh/pkg/algebra"
	"github.com/consensys/go-ecdh/pkg/util"
)

// Polynomial represents a univariate polynomial c₀ + c₁x + ... + c_dx^d with
// coefficients drawn from a ring T.  Polynomials are kept normalised, such that
// the leading coefficient is nonzero, except for the zero polynomial which is
// represented by the single coefficient 0.  Polynomials are immutable.
type Polynomial[T algebra.Ring[T]] struct {
	// Coefficients indexed by power of the variable.
	coefficients []T
}

// New constructs a polynomial from zero or more coefficients, where the ith
// coefficient is that of x^i.  Trailing zero coefficients are trimmed, and no
// coefficients at all yields the zero polynomial.
func New[T algebra.Ring[T]](coefficients ...T) Polynomial[T] {
	var n = len(coefficients)
	// Trim trailing zeros (but always retain the constant term)
	for n > 1 && algebra.IsZero(coefficients[n-1]) {
		n--
	}
	//
	if n == 0 {
		return Polynomial[T]{[]T{algebra.Zero[T]()}}
	}
	// Clone so the caller's slice is never aliased.
	return Polynomial[T]{slices.Clone(coefficients[:n])}
}

// Constant constructs the polynomial c.
func Constant[T algebra.Ring[T]](c T) Polynomial[T] {
	return Polynomial[T]{[]T{c}}
}

// Monomial constructs the polynomial c·x^n.
func Monomial[T algebra.Ring[T]](c T, n uint) Polynomial[T] {
	var coefficients = make([]T, n+1)
	//
	for i := range coefficients {
		coefficients[i] = c.Zero()
	}
	//
	coefficients[n] = c
	//
	return New(coefficients...)
}

// Degree returns the index of the leading coefficient.  By convention, this
// returns 0 for the zero polynomial even though it has no well-defined degree.
// Use StrictDegree to distinguish these cases.
func (p Polynomial[T]) Degree() uint {
	return uint(len(p.normalised())) - 1
}

// StrictDegree returns the degree of this polynomial, or None for the zero
// polynomial.
func (p Polynomial[T]) StrictDegree() util.Option[uint] {
	if p.IsZero() {
		return util.None[uint]()
	}
	//
	return util.Some(p.Degree())
}

// Coefficient returns the coefficient of x^i, which is zero for any i beyond
// the degree.
func (p Polynomial[T]) Coefficient(i uint) T {
	var cs = p.normalised()
	//
	if i < uint(len(cs)) {
		return cs[i]
	}
	//
	return cs[0].Zero()
}

// Coefficients returns a copy of the coefficients of this polynomial.
func (p Polynomial[T]) Coefficients() []T {
	return slices.Clone(p.normalised())
}

// IsZero checks whether this is the zero polynomial.
func (p Polynomial[T]) IsZero() bool {
	var cs = p.normalised()
	//
	return len(cs) == 1 && algebra.IsZero(cs[0])
}

// Eval evaluates this polynomial at a given point.
func (p Polynomial[T]) Eval(t T) T {
	return Evaluate(p, t)
}

// Evaluate computes Σ cᵢtⁱ by accumulating a running power of t, using O(d)
// multiplications and additions.
func Evaluate[T algebra.Ring[T]](f Polynomial[T], t T) T {
	var (
		power = t.One()
		sum   = t.Zero()
	)
	//
	for _, c := range f.normalised() {
		sum = sum.Add(c.Mul(power))
		power = power.Mul(t)
	}
	//
	return sum
}

// Add p+q
func (p Polynomial[T]) Add(q Polynomial[T]) Polynomial[T] {
	return p.zipWith(q, func(x, y T) T { return x.Add(y) })
}

// Sub p-q.
func (p Polynomial[T]) Sub(q Polynomial[T]) Polynomial[T] {
	return p.zipWith(q, func(x, y T) T { return x.Sub(y) })
}

// Mul computes p*q as the full convolution of their coefficients.
func (p Polynomial[T]) Mul(q Polynomial[T]) Polynomial[T] {
	var (
		lhs          = p.normalised()
		rhs          = q.normalised()
		coefficients = make([]T, len(lhs)+len(rhs)-1)
	)
	//
	for k := range coefficients {
		coefficients[k] = lhs[0].Zero()
	}
	//
	for i, x := range lhs {
		for j, y := range rhs {
			coefficients[i+j] = coefficients[i+j].Add(x.Mul(y))
		}
	}
	//
	return New(coefficients...)
}

// Neg -p
func (p Polynomial[T]) Neg() Polynomial[T] {
	var (
		cs           = p.normalised()
		coefficients = make([]T, len(cs))
	)
	//
	for i, c := range cs {
		coefficients[i] = c.Neg()
	}
	//
	return New(coefficients...)
}

// Equals determines whether two polynomials have identical coefficients.
func (p Polynomial[T]) Equals(q Polynomial[T]) bool {
	return slices.EqualFunc(p.normalised(), q.normalised(), func(x, y T) bool { return x.Equals(y) })
}

// Zero returns the zero polynomial.
func (p Polynomial[T]) Zero() Polynomial[T] {
	return Constant(algebra.Zero[T]())
}

// One returns the constant polynomial 1.
func (p Polynomial[T]) One() Polynomial[T] {
	return Constant(algebra.One[T]())
}

// Characteristic returns the characteristic of the coefficient ring.
func (p Polynomial[T]) Characteristic() *big.Int {
	return algebra.Zero[T]().Characteristic()
}

// zipWith combines coefficients pointwise, padding the shorter operand with
// zero, and then renormalises.
func (p Polynomial[T]) zipWith(q Polynomial[T], fn func(T, T) T) Polynomial[T] {
	var (
		lhs          = p.normalised()
		rhs          = q.normalised()
		zero         = lhs[0].Zero()
		coefficients = make([]T, max(len(lhs), len(rhs)))
	)
	//
	for i := range coefficients {
		x, y := zero, zero
		//
		if i < len(lhs) {
			x = lhs[i]
		}
		//
		if i < len(rhs) {
			y = rhs[i]
		}
		//
		coefficients[i] = fn(x, y)
	}
	//
	return New(coefficients...)
}

// normalised returns the coefficients of this polynomial, treating the zero
// value of Polynomial as the zero polynomial.
func (p Polynomial[T]) normalised() []T {
	if len(p.coefficients) == 0 {
		return []T{algebra.Zero[T]()}
	}
	//
	return p.coefficients
}
