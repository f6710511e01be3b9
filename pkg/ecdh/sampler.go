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
package ecdh

import (
	"math/rand/v2"

	"github.com/consensys/go-ecdh/pkg/algebra/prime"
	"github.com/consensys/go-ecdh/pkg/algebra/quadratic"
	"github.com/consensys/go-ecdh/pkg/curve"
	"github.com/consensys/go-ecdh/pkg/util"
)

// Sampler generates random curves, points and scalars over GF(P²) for the
// modulus M.  Sampling is deterministic for a given seed.
type Sampler[M prime.Modulus] struct {
	rng *rand.Rand
}

// NewSampler constructs a sampler from a given seed.
func NewSampler[M prime.Modulus](seed uint64) *Sampler[M] {
	return &Sampler[M]{rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Curve samples a smooth curve y² = x³ + ax + b whose coefficients a and b are
// drawn from [1, P), and embedded as real elements of GF(P²).
func (s *Sampler[M]) Curve() curve.Curve[GF[M]] {
	for {
		var (
			a = quadratic.Embed(s.nonzero())
			b = quadratic.Embed(s.nonzero())
			c = curve.New(a, b)
		)
		//
		if c.IsSmooth() {
			return c
		}
	}
}

// Point samples an affine point on a given curve.  This draws x uniformly from
// GF(P²) until f(x) is a square, and then picks one of its two roots.  Since
// roughly half of all elements are squares, this terminates quickly.
func (s *Sampler[M]) Point(c curve.Curve[GF[M]]) curve.Point[GF[M]] {
	var f = c.Polynomial()
	//
	for {
		x := s.Element()
		//
		if r := f.Eval(x).Sqrt(); r.HasValue() {
			y := r.Unwrap()
			//
			if s.rng.IntN(2) == 1 {
				y = y.Neg()
			}
			//
			return curve.NewPoint(x, y)
		}
	}
}

// Element samples a uniform element of GF(P²).
func (s *Sampler[M]) Element() GF[M] {
	return quadratic.New(s.element(), s.element())
}

// Scalar samples a private scalar from [1, order).  If the order is unknown,
// or too small to admit such a scalar, then one is returned.
func (s *Sampler[M]) Scalar(order util.Option[uint64]) uint64 {
	if order.IsEmpty() || order.Unwrap() <= 2 {
		return 1
	}
	//
	return 1 + s.rng.Uint64N(order.Unwrap()-1)
}

func (s *Sampler[M]) element() prime.Element[M] {
	var m M
	//
	return prime.New[M](s.rng.Uint64N(m.Value()))
}

func (s *Sampler[M]) nonzero() prime.Element[M] {
	var m M
	//
	return prime.New[M](1 + s.rng.Uint64N(m.Value()-1))
}
