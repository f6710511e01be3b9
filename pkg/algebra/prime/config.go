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
package prime

import (
	"fmt"

	"github.com/consensys/go-ecdh/pkg/util/math"
)

// P7 is the smallest modulus suitable for building a quadratic extension.
type P7 struct{}

// Value implementation for Modulus interface.
func (P7) Value() uint64 { return 7 }

// P11 is a small modulus suitable for exhaustive testing.
type P11 struct{}

// Value implementation for Modulus interface.
func (P11) Value() uint64 { return 11 }

// P19 is a small modulus suitable for exhaustive testing.
type P19 struct{}

// Value implementation for Modulus interface.
func (P19) Value() uint64 { return 19 }

// P23 is a small modulus suitable for exhaustive testing.
type P23 struct{}

// Value implementation for Modulus interface.
func (P23) Value() uint64 { return 23 }

// P863 is the default modulus, 2^5 * 3^3 - 1.
type P863 struct{}

// Value implementation for Modulus interface.
func (P863) Value() uint64 { return 863 }

// P8191 is the Mersenne prime 2^13 - 1.
type P8191 struct{}

// Value implementation for Modulus interface.
func (P8191) Value() uint64 { return 8191 }

// M31 is the Mersenne prime 2^31 - 1.
type M31 struct{}

// Value implementation for Modulus interface.
func (M31) Value() uint64 { return 1<<31 - 1 }

// GF_7 is the configuration for the field of 7 elements.
var GF_7 = Config{"GF_7", P7{}.Value()}

// GF_11 is the configuration for the field of 11 elements.
var GF_11 = Config{"GF_11", P11{}.Value()}

// GF_19 is the configuration for the field of 19 elements.
var GF_19 = Config{"GF_19", P19{}.Value()}

// GF_23 is the configuration for the field of 23 elements.
var GF_23 = Config{"GF_23", P23{}.Value()}

// GF_863 is the configuration for the field of 863 elements.
var GF_863 = Config{"GF_863", P863{}.Value()}

// GF_8191 is the configuration for the field of 8191 elements.
var GF_8191 = Config{"GF_8191", P8191{}.Value()}

// MERSENNE_31 is the configuration for the field of 2^31 - 1 elements.
var MERSENNE_31 = Config{"MERSENNE_31", M31{}.Value()}

// FIELD_CONFIGS determines the set of supported fields.
var FIELD_CONFIGS = []Config{
	GF_7,
	GF_11,
	GF_19,
	GF_23,
	GF_863,
	GF_8191,
	MERSENNE_31,
}

// Config provides a simple mechanism for selecting a given prime field by name.
type Config struct {
	// Name suitable for identifying the config.  This is only really used for
	// improving error reporting, etc.
	Name string
	// Modulus of the field.
	Modulus uint64
}

// GetConfig returns the field configuration corresponding with the given name,
// or nil if no such field exists.
func GetConfig(name string) *Config {
	for i := range FIELD_CONFIGS {
		if FIELD_CONFIGS[i].Name == name {
			return &FIELD_CONFIGS[i]
		}
	}
	//
	return nil
}

// Check that this field can be extended to a field of order p² by adjoining a
// square root of -1.  This requires a prime modulus p ≥ 7 with p ≡ 3 (mod 4),
// since x²+1 is irreducible over F_p exactly when p ≡ 3 (mod 4).
func (c Config) Check() error {
	switch {
	case !math.IsPrime(c.Modulus):
		return fmt.Errorf("%s: modulus %d is not prime", c.Name, c.Modulus)
	case c.Modulus < 7 || c.Modulus%4 != 3:
		return fmt.Errorf("%s: modulus %d must be a '3 mod 4' prime >= 7", c.Name, c.Modulus)
	}
	//
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("%s (p = %d)", c.Name, c.Modulus)
}
