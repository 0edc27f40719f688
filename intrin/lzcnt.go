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

// LeadingZeroCount32 counts zero bits from the most significant bit down to
// the first set bit (LZCNT). An input of 0 returns 32.
func LeadingZeroCount32(a uint32) uint32 {
	return uint32(bits.LeadingZeros32(a))
}

// LeadingZeroCount64 counts leading zero bits over 64 bits (LZCNT). An
// input of 0 returns 64.
func LeadingZeroCount64(a uint64) uint64 {
	return uint64(bits.LeadingZeros64(a))
}
