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
	"context"
	"runtime"
	"sync/atomic"

	"github.com/consensys/go-ecdh/pkg/algebra/poly"
	"github.com/consensys/go-ecdh/pkg/algebra/prime"
	"github.com/consensys/go-ecdh/pkg/algebra/quadratic"
	"github.com/consensys/go-ecdh/pkg/curve"
	"github.com/consensys/go-ecdh/pkg/util"
	"github.com/pkg/errors"
)

// MaxCountModulus is the largest modulus for which points can be counted, since
// counting requires O(P²) steps.
const MaxCountModulus = 1 << 14

// ErrFieldTooLarge indicates a field too large for exhaustive enumeration.
var ErrFieldTooLarge = errors.New("field too large to enumerate")

// CountPoints determines the number of rational points on a given curve over
// GF(P²), including the point at infinity.  Each x contributes two points when
// f(x) is a nonzero square, one when f(x) = 0 and none otherwise.  This
// requires O(P²) square root computations, split across go-routines by the
// real part of x.
func CountPoints[M prime.Modulus](ctx context.Context, c curve.Curve[GF[M]]) (uint64, error) {
	var (
		count = new(atomic.Uint64)
		f     = c.Polynomial()
		p     = prime.Element[M]{}.Modulus()
		jobs  []countJob[M]
	)
	//
	if p > MaxCountModulus {
		return 0, errors.Wrapf(ErrFieldTooLarge, "p = %d (max %d)", p, MaxCountModulus)
	}
	//
	jobs = make([]countJob[M], p)
	//
	for r := range p {
		jobs[r] = countJob[M]{prime.New[M](r), f, count}
	}
	//
	if err := util.ParExec(ctx, runtime.GOMAXPROCS(0), jobs); err != nil {
		return 0, err
	}
	// Include infinity
	return count.Load() + 1, nil
}

// countJob counts the affine points whose x has a given real part.
type countJob[M prime.Modulus] struct {
	real  prime.Element[M]
	f     poly.Polynomial[GF[M]]
	count *atomic.Uint64
}

func (j countJob[M]) Run(ctx context.Context) error {
	var n uint64
	//
	for i := range j.real.Modulus() {
		// Check for cancellation periodically
		if i%64 == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		//
		switch y2 := j.f.Eval(quadratic.New(j.real, prime.New[M](i))); {
		case y2.IsZero():
			n++
		case y2.Sqrt().HasValue():
			n += 2
		}
	}
	//
	j.count.Add(n)
	//
	return nil
}
