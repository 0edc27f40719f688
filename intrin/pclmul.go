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

// Carryless multiplication (PCLMULQDQ) selects one 64-bit lane from each
// operand and forms their GF(2) polynomial product: XOR replaces addition,
// so no carries propagate between bit positions. The hardware instruction
// encodes the lane pair as an immediate; each legal immediate is exposed
// here as its own function so the selection stays a compile-time choice.

// clmul64 is the shared PCLMULQDQ core: the 128-bit carryless product of
// two 64-bit values.
func clmul64(a, b uint64) (lo, hi uint64) {
	for i := uint(0); i < 64; i++ {
		if b&(1<<i) != 0 {
			lo ^= a << i
			if i != 0 {
				hi ^= a >> (64 - i)
			}
		}
	}
	return lo, hi
}

// MulCarrylessLowLow carryless-multiplies the low lane of a by the low
// lane of b (PCLMULQDQ imm8 = 0x00). The full 128-bit product fills the
// returned register.
func MulCarrylessLowLow(a, b M128i) M128i {
	lo, hi := clmul64(a.Uint64x2()[0], b.Uint64x2()[0])
	return M128iFromUint64x2([2]uint64{lo, hi})
}

// MulCarrylessHighLow carryless-multiplies the high lane of a by the low
// lane of b (PCLMULQDQ imm8 = 0x01).
func MulCarrylessHighLow(a, b M128i) M128i {
	lo, hi := clmul64(a.Uint64x2()[1], b.Uint64x2()[0])
	return M128iFromUint64x2([2]uint64{lo, hi})
}

// MulCarrylessLowHigh carryless-multiplies the low lane of a by the high
// lane of b (PCLMULQDQ imm8 = 0x10).
func MulCarrylessLowHigh(a, b M128i) M128i {
	lo, hi := clmul64(a.Uint64x2()[0], b.Uint64x2()[1])
	return M128iFromUint64x2([2]uint64{lo, hi})
}

// MulCarrylessHighHigh carryless-multiplies the high lane of a by the high
// lane of b (PCLMULQDQ imm8 = 0x11).
func MulCarrylessHighHigh(a, b M128i) M128i {
	lo, hi := clmul64(a.Uint64x2()[1], b.Uint64x2()[1])
	return M128iFromUint64x2([2]uint64{lo, hi})
}
