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
	"github.com/consensys/go-ecdh/pkg/curve"
	"github.com/pkg/errors"
)

// Party is one side of an exchange, holding a private scalar d and the
// corresponding public point d·G.
type Party[T algebra.Field[T]] struct {
	Name    string
	private uint64
	Public  curve.Point[T]
}

// NewParty constructs a party with a given private scalar, publishing d·G.
func NewParty[T algebra.Field[T]](name string, params Params[T], d uint64) (*Party[T], error) {
	if err := params.checkScalar(d); err != nil {
		return nil, errors.Wrapf(err, "party %s", name)
	}
	//
	return &Party[T]{name, d, params.Curve.ScalarMul(params.Generator, d)}, nil
}

// Private returns the private scalar of this party.
func (p *Party[T]) Private() uint64 {
	return p.private
}

// SharedSecret computes d·Q for the public point Q of a peer.  The peer's
// point is validated against the curve first, since otherwise the result is
// meaningless (or the group law fails).
func (p *Party[T]) SharedSecret(params Params[T], peer curve.Point[T]) (curve.Point[T], error) {
	if err := params.Curve.Validate(peer); err != nil {
		return curve.Point[T]{}, errors.Wrapf(err, "party %s received", p.Name)
	}
	//
	return params.Curve.ScalarMul(peer, p.private), nil
}

// Transcript records the public and shared values of a completed exchange.
type Transcript[T algebra.Field[T]] struct {
	Alice *Party[T]
	Bob   *Party[T]
	// Shared point as computed by Alice, d_a·Q_b
	SharedA curve.Point[T]
	// Shared point as computed by Bob, d_b·Q_a
	SharedB curve.Point[T]
}

// Shared returns the agreed shared point.
func (t *Transcript[T]) Shared() curve.Point[T] {
	return t.SharedA
}

// Exchange simulates a Diffie-Hellman exchange between two parties with
// private scalars da and db.  Each publishes its public point, and then
// combines its private scalar with the other's public point.
func Exchange[T algebra.Field[T]](params Params[T], da uint64, db uint64) (*Transcript[T], error) {
	var (
		alice, bob *Party[T]
		sa, sb     curve.Point[T]
		err        error
	)
	// Publish
	if alice, err = NewParty("Alice", params, da); err != nil {
		return nil, err
	} else if bob, err = NewParty("Bob", params, db); err != nil {
		return nil, err
	}
	// Combine
	if sa, err = alice.SharedSecret(params, bob.Public); err != nil {
		return nil, err
	} else if sb, err = bob.SharedSecret(params, alice.Public); err != nil {
		return nil, err
	} else if !sa.Equals(sb) {
		return nil, errors.Wrapf(ErrSharedMismatch, "%s vs %s", sa, sb)
	}
	//
	return &Transcript[T]{alice, bob, sa, sb}, nil
}
