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
	"errors"
	"testing"

	"github.com/consensys/go-ecdh/pkg/algebra/prime"
	"github.com/consensys/go-ecdh/pkg/util/assert"
)

type F23 = prime.Element[prime.P23]

func Test_Curve_00(t *testing.T) {
	assert.Equal(t, "y^2 = x^3 + x + 1", E.String())
	assert.Equal(t, "1 + x + x^3", E.Polynomial().String())
	assert.Equivalent(t, one49, E.A())
	assert.Equivalent(t, one49, E.B())
	// 4 + 27 = 31 = 3 (mod 7)
	assert.Equivalent(t, gf49(3, 0), E.Discriminant())
	assert.True(t, E.IsSmooth())
}

func Test_Curve_01(t *testing.T) {
	var (
		a = prime.New[prime.P7](1)
		b = prime.New[prime.P7](2)
	)
	// y² = x³ + x + 2 has 4 + 27·4 = 112 = 0 (mod 7)
	c := New(a, b)
	assert.False(t, c.IsSmooth())
	assert.True(t, errors.Is(c.Validate(Infinity[F7]()), ErrSingular))
	// y² = x³ is singular everywhere
	assert.False(t, New(prime.New[prime.P7](0), prime.New[prime.P7](0)).IsSmooth())
}

func Test_Curve_02(t *testing.T) {
	ps := points(E)
	// Hasse bound holds with 49 + 1 + 5 = 55
	assert.Equal(t, 55, len(ps))
	//
	for _, p := range ps {
		assert.True(t, E.Validate(p) == nil, "%s", p)
	}
	//
	assert.True(t, errors.Is(E.Validate(point(0, 0, 0, 0)), ErrNotOnCurve))
	assert.True(t, E.Contains(Infinity[F49]()))
}

func Test_Curve_03(t *testing.T) {
	assert.Equal(t, uint64(55), E.Order(G, 100).Unwrap())
	assert.Equal(t, uint64(1), E.Order(Infinity[F49](), 100).Unwrap())
	// (0, 1) has real coordinates and order 5
	assert.Equal(t, uint64(5), E.Order(point(0, 0, 1, 0), 100).Unwrap())
	assert.True(t, E.Order(G, 54).IsEmpty())
	// every order divides the group order
	for _, p := range points(E) {
		n := E.Order(p, 55).Unwrap()
		assert.Equal(t, uint64(0), 55%n, "order of %s", p)
	}
}

func Test_Curve_04(t *testing.T) {
	// y² = x³ + 2x + 3 over GF(23)
	var (
		c  = New(prime.New[prime.P23](2), prime.New[prime.P23](3))
		ps []Point[F23]
	)
	//
	assert.True(t, c.IsSmooth())
	//
	for x := range uint64(23) {
		for y := range uint64(23) {
			if p := NewPoint(prime.New[prime.P23](x), prime.New[prime.P23](y)); c.Contains(p) {
				ps = append(ps, p)
			}
		}
	}
	// Lagrange
	n := uint64(len(ps) + 1)
	//
	for _, p := range ps {
		assert.Equivalent(t, Infinity[F23](), c.ScalarMul(p, n), "%d·%s", n, p)
	}
}

func Test_Curve_05(t *testing.T) {
	// Diffie-Hellman over the cyclic group generated by G
	var (
		alice = E.ScalarMul(G, 3)
		bob   = E.ScalarMul(G, 5)
	)
	//
	assert.Equivalent(t, point(5, 0, 0, 3), E.ScalarMul(bob, 3))
	assert.Equivalent(t, point(5, 0, 0, 3), E.ScalarMul(alice, 5))
}
