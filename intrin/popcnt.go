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

// PopCount32 counts the set bits in a (POPCNT). The result is in [0, 32].
func PopCount32(a uint32) uint32 {
	return uint32(bits.OnesCount32(a))
}

// PopCount64 counts the set bits in a (POPCNT). The result is in [0, 64].
func PopCount64(a uint64) uint64 {
	return uint64(bits.OnesCount64(a))
}
