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
	"github.com/consensys/go-ecdh/pkg/algebra"
	"github.com/consensys/go-ecdh/pkg/algebra/prime"
	"github.com/consensys/go-ecdh/pkg/algebra/quadratic"
	"github.com/consensys/go-ecdh/pkg/curve"
	"github.com/consensys/go-ecdh/pkg/util"
	"github.com/pkg/errors"
)

// GF is the field of order P² obtained by adjoining i to the prime field of
// modulus M.
type GF[M prime.Modulus] = quadratic.Element[prime.Element[M]]

var (
	// ErrInvalidScalar indicates a private scalar which is zero modulo the
	// order of the generator.
	ErrInvalidScalar = errors.New("invalid private scalar")
	// ErrOrderUnknown indicates the order of the generator could not be
	// determined within the given limit.
	ErrOrderUnknown = errors.New("order of generator unknown")
	// ErrSharedMismatch indicates the two parties did not arrive at the same
	// shared point.
	ErrSharedMismatch = errors.New("shared points differ")
)

// Params are the public parameters of an exchange: a smooth curve, a
// generator on it, and (optionally) the order of that generator.
type Params[T algebra.Field[T]] struct {
	Curve     curve.Curve[T]
	Generator curve.Point[T]
	Order     util.Option[uint64]
}

// NewParams constructs parameters for a given curve and generator, searching
// for the order of the generator up to a given limit.  An error is returned if
// the curve is singular, or the generator is not on it.  An unknown order is
// not an error here, but is reported by Params.Validate.
func NewParams[T algebra.Field[T]](c curve.Curve[T], g curve.Point[T], limit uint64) (Params[T], error) {
	if err := c.Validate(g); err != nil {
		return Params[T]{}, errors.Wrapf(err, "generator %s", g)
	}
	//
	return Params[T]{c, g, c.Order(g, limit)}, nil
}

// Validate checks these parameters are usable for an exchange.  Specifically,
// the curve must be smooth, the generator on it and its order known, such that
// ord·G = O.
func (p Params[T]) Validate() error {
	if err := p.Curve.Validate(p.Generator); err != nil {
		return errors.Wrapf(err, "generator %s", p.Generator)
	} else if p.Order.IsEmpty() {
		return errors.Wrapf(ErrOrderUnknown, "generator %s", p.Generator)
	} else if n := p.Order.Unwrap(); !p.Curve.ScalarMul(p.Generator, n).IsInfinity() {
		return errors.Errorf("%d·%s is not infinity", n, p.Generator)
	}
	//
	return nil
}

// checkScalar ensures a private scalar d does not map the generator to O.
func (p Params[T]) checkScalar(d uint64) error {
	if d == 0 || (p.Order.HasValue() && d%p.Order.Unwrap() == 0) {
		return errors.Wrapf(ErrInvalidScalar, "scalar %d", d)
	}
	//
	return nil
}
