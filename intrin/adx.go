// Copyright 2026 go-intrin Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package intrin

import "math/bits"

// AddCarry32 adds a, b, and an incoming carry (ADCX). carry must be 0 or 1.
// sum is the truncated result; carryOut is 1 exactly when the unbounded sum
// exceeds 32 bits, and is always 0 or 1.
func AddCarry32(carry, a, b uint32) (sum, carryOut uint32) {
	return bits.Add32(a, b, carry)
}

// AddCarry64 adds a, b, and an incoming carry over 64 bits (ADCX). carry
// must be 0 or 1.
func AddCarry64(carry, a, b uint64) (sum, carryOut uint64) {
	return bits.Add64(a, b, carry)
}
