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
	"hash"
	"io"

	"github.com/consensys/go-ecdh/pkg/algebra/prime"
	"github.com/consensys/go-ecdh/pkg/curve"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/hkdf"
)

// MaxKeySize is the largest key which can be derived, as determined by HKDF
// over a 32-byte hash.
const MaxKeySize = 255 * blake2b.Size256

// Encode serialises a point in the style of SEC1 uncompressed points.  The
// point at infinity encodes as the single byte 0x00.  Otherwise, the encoding
// is 0x04 followed by the real and imaginary parts of x, then those of y, each
// as an 8-byte big-endian integer.
func Encode[M prime.Modulus](p curve.Point[GF[M]]) []byte {
	x, y, ok := p.Coordinates()
	//
	if !ok {
		return []byte{0x00}
	}
	//
	bytes := make([]byte, 0, 33)
	bytes = append(bytes, 0x04)
	//
	for _, c := range []GF[M]{x, y} {
		bytes = append(bytes, c.Real().Bytes()...)
		bytes = append(bytes, c.Imaginary().Bytes()...)
	}
	//
	return bytes
}

// DeriveKey derives a symmetric key of a given size from a shared point, using
// HKDF with BLAKE2b-256.  The info string binds the key to its intended use.
func DeriveKey[M prime.Modulus](shared curve.Point[GF[M]], info []byte, size int) ([]byte, error) {
	if size <= 0 || size > MaxKeySize {
		return nil, errors.Errorf("invalid key size %d (max %d)", size, MaxKeySize)
	}
	//
	var (
		key    = make([]byte, size)
		reader = hkdf.New(newBlake2b, Encode(shared), nil, info)
	)
	//
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, errors.Wrap(err, "deriving key")
	}
	//
	return key, nil
}

func newBlake2b() hash.Hash {
	// cannot fail without a key
	h, _ := blake2b.New256(nil)
	//
	return h
}
