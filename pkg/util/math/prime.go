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
package math

// GcdUint64 returns the greatest common divisor of a and b, where gcd(0,0) = 0.
func GcdUint64(a uint64, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	//
	return a
}

// IsPrime determines whether n is prime using trial division by odd
// candidates up to √n.  This is only intended for the small moduli used to
// configure a prime field.
func IsPrime(n uint64) bool {
	switch {
	case n < 2:
		return false
	case n == 2 || n == 3:
		return true
	case n%2 == 0:
		return false
	}
	//
	for i := uint64(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	//
	return true
}
