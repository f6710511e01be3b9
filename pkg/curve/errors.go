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
	"fmt"
)

// ErrNotInvertible signals that a slope denominator could not be inverted
// during point addition.  This cannot arise for points on a smooth curve, and
// indicates an invalid point was supplied.
var ErrNotInvertible = errors.New("denominator not invertible")

// ErrNotOnCurve signals that a point does not satisfy the curve equation.
var ErrNotOnCurve = errors.New("point not on curve")

// ErrSingular signals that a curve has a vanishing discriminant.
var ErrSingular = errors.New("singular curve")

// InvariantError reports the violation of an invariant of the group law.  It is
// raised via panic, since it can only arise through misuse.
type InvariantError struct {
	// Operation being performed
	Op string
	// Points involved
	Operands []fmt.Stringer
	// Underlying cause
	Err error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated in %s%v: %v", e.Op, e.Operands, e.Err)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}
