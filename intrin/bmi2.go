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

// BitZeroHighIndex32 clears every bit at position >= index, leaving the low
// index bits unchanged (BZHI). Only the low 8 bits of index participate;
// an index of 32 or more returns a unchanged, and index 0 returns 0.
func BitZeroHighIndex32(a uint32, index uint32) uint32 {
	n := index & 0xff
	if n >= 32 {
		return a
	}
	return a & (1<<n - 1)
}

// BitZeroHighIndex64 clears every bit at position >= index over 64 bits
// (BZHI). Only the low 8 bits of index participate.
func BitZeroHighIndex64(a uint64, index uint64) uint64 {
	n := index & 0xff
	if n >= 64 {
		return a
	}
	return a & (1<<n - 1)
}

// MulExtended32 multiplies two uint32 at double width and returns the low
// and high halves of the full 64-bit product (MULX). Exact for all input
// pairs; arithmetic flags are neither read nor written.
func MulExtended32(a, b uint32) (lo, hi uint32) {
	hi, lo = bits.Mul32(a, b)
	return lo, hi
}

// MulExtended64 multiplies two uint64 at double width and returns the low
// and high halves of the full 128-bit product (MULX).
func MulExtended64(a, b uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	return lo, hi
}

// PopDeposit32 scatters the low popcount(mask) bits of a into the bit
// positions where mask is set, in ascending position order (PDEP). All
// other result bits are 0; high bits of a beyond the mask popcount are
// ignored.
func PopDeposit32(a, mask uint32) uint32 {
	var r uint32
	for m := mask; m != 0; m &= m - 1 {
		if a&1 != 0 {
			r |= m & -m
		}
		a >>= 1
	}
	return r
}

// PopDeposit64 scatters the low popcount(mask) bits of a according to mask
// over 64 bits (PDEP).
func PopDeposit64(a, mask uint64) uint64 {
	var r uint64
	for m := mask; m != 0; m &= m - 1 {
		if a&1 != 0 {
			r |= m & -m
		}
		a >>= 1
	}
	return r
}

// PopExtract32 gathers the bits of a at the positions selected by mask into
// a contiguous low-order result, in ascending position order (PEXT). All
// bits at or above popcount(mask) are 0.
func PopExtract32(a, mask uint32) uint32 {
	var r uint32
	i := 0
	for m := mask; m != 0; m &= m - 1 {
		if a&(m&-m) != 0 {
			r |= 1 << i
		}
		i++
	}
	return r
}

// PopExtract64 gathers the bits of a selected by mask into a contiguous
// low-order result over 64 bits (PEXT).
func PopExtract64(a, mask uint64) uint64 {
	var r uint64
	i := 0
	for m := mask; m != 0; m &= m - 1 {
		if a&(m&-m) != 0 {
			r |= 1 << i
		}
		i++
	}
	return r
}
