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
	"strings"

	"github.com/consensys/go-ecdh/pkg/algebra"
	"github.com/consensys/go-ecdh/pkg/algebra/poly"
	"github.com/consensys/go-ecdh/pkg/util"
)

// Curve is the short Weierstrass curve y² = x³ + ax + b over a field T.
type Curve[T algebra.Field[T]] struct {
	a, b T
}

// New constructs the curve y² = x³ + ax + b.  Observe that this does not
// require the curve to be smooth.
func New[T algebra.Field[T]](a T, b T) Curve[T] {
	return Curve[T]{a, b}
}

// A returns the linear coefficient of this curve.
func (c Curve[T]) A() T {
	return c.a
}

// B returns the constant coefficient of this curve.
func (c Curve[T]) B() T {
	return c.b
}

// Polynomial returns the right-hand side x³ + ax + b of this curve.
func (c Curve[T]) Polynomial() poly.Polynomial[T] {
	var zero, one = c.a.Zero(), c.a.One()
	//
	return poly.New(c.b, c.a, zero, one)
}

// Discriminant returns 4a³ + 27b², which vanishes exactly when the curve is
// singular (in characteristic other than 2 or 3).
func (c Curve[T]) Discriminant() T {
	var (
		a3 = algebra.Pow(c.a, 3)
		b2 = c.b.Mul(c.b)
	)
	//
	return algebra.FromUint64[T](4).Mul(a3).Add(algebra.FromUint64[T](27).Mul(b2))
}

// IsSmooth checks whether this curve is non-singular, and therefore whether its
// rational points form a group.
func (c Curve[T]) IsSmooth() bool {
	return !algebra.IsZero(c.Discriminant())
}

// Contains checks whether a given point lies on this curve.  The point at
// infinity lies on every curve.
func (c Curve[T]) Contains(p Point[T]) bool {
	x, y, ok := p.Coordinates()
	//
	return !ok || y.Mul(y).Equals(poly.Evaluate(c.Polynomial(), x))
}

// Validate returns an error if this curve is singular, or the given point does
// not lie on it.
func (c Curve[T]) Validate(p Point[T]) error {
	switch {
	case !c.IsSmooth():
		return fmt.Errorf("%s: %w", c.String(), ErrSingular)
	case !c.Contains(p):
		return fmt.Errorf("%s on %s: %w", p.String(), c.String(), ErrNotOnCurve)
	}
	//
	return nil
}

// Add computes p + q on this curve.
func (c Curve[T]) Add(p, q Point[T]) Point[T] {
	return p.Add(q, c.a)
}

// Double computes 2p on this curve.
func (c Curve[T]) Double(p Point[T]) Point[T] {
	return p.Double(c.a)
}

// ScalarMul computes n·p on this curve.
func (c Curve[T]) ScalarMul(p Point[T], n uint64) Point[T] {
	return p.ScalarMul(c.a, n)
}

// Order determines the order of p by repeatedly adding p until reaching the
// point at infinity, giving up once the limit is exceeded.  This takes O(n)
// group operations for a point of order n.
func (c Curve[T]) Order(p Point[T], limit uint64) util.Option[uint64] {
	var acc = p
	//
	for n := uint64(1); n <= limit; n++ {
		if acc.IsInfinity() {
			return util.Some(n)
		}
		//
		acc = acc.Add(p, c.a)
	}
	//
	return util.None[uint64]()
}

func (c Curve[T]) String() string {
	return fmt.Sprintf("y^2 = %s", reverse(c.Polynomial()))
}

// reverse renders a polynomial in decreasing powers of x, as is conventional
// for curve equations.
func reverse[T algebra.Ring[T]](p poly.Polynomial[T]) string {
	var (
		terms []string
		cs    = p.Coefficients()
	)
	//
	for i := len(cs) - 1; i >= 0; i-- {
		var term = poly.Monomial(cs[i], uint(i))
		//
		if !term.IsZero() || len(cs) == 1 {
			terms = append(terms, term.String())
		}
	}
	//
	return strings.Join(terms, " + ")
}
