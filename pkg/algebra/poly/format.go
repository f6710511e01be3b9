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
	"strconv"
	"strings"

	"github.com/consensys/go-ecdh/pkg/algebra"
)

func (p Polynomial[T]) String() string {
	return p.Format("x")
}

// Format renders this polynomial as a sum of terms in increasing powers of the
// given variable.  Terms with zero coefficient are omitted, except for the zero
// polynomial itself which renders as its constant.  A coefficient of one is
// omitted in front of a power of the variable.  Negative coefficients are
// rendered as is, rather than as a subtraction.
func (p Polynomial[T]) Format(variable string) string {
	var (
		builder strings.Builder
		cs      = p.normalised()
		first   = true
	)
	//
	for i, c := range cs {
		if algebra.IsZero(c) && (i != 0 || len(cs) > 1) {
			continue
		} else if !first {
			builder.WriteString(" + ")
		}
		//
		first = false
		//
		switch {
		case i == 0:
			builder.WriteString(c.String())
			continue
		case !algebra.IsOne(c):
			builder.WriteString(c.String())
		}
		//
		builder.WriteString(variable)
		//
		if i > 1 {
			builder.WriteString("^")
			builder.WriteString(strconv.Itoa(i))
		}
	}
	//
	return builder.String()
}
