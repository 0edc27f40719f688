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

// ZeroM128i returns the all-zero register (PXOR of a register with itself).
func ZeroM128i() M128i {
	return M128i{}
}

// ZeroM256i returns the all-zero 256-bit register.
func ZeroM256i() M256i {
	return M256i{}
}

// SplatUint32M128i broadcasts a uint32 into all four lanes.
func SplatUint32M128i(x uint32) M128i {
	return M128iFromUint32x4([4]uint32{x, x, x, x})
}

// SplatUint64M128i broadcasts a uint64 into both lanes.
func SplatUint64M128i(x uint64) M128i {
	return M128iFromUint64x2([2]uint64{x, x})
}

// AndM128i computes the bitwise AND of two registers (PAND).
func AndM128i(a, b M128i) M128i {
	var m M128i
	for i := range m.bytes {
		m.bytes[i] = a.bytes[i] & b.bytes[i]
	}
	return m
}

// OrM128i computes the bitwise OR of two registers (POR).
func OrM128i(a, b M128i) M128i {
	var m M128i
	for i := range m.bytes {
		m.bytes[i] = a.bytes[i] | b.bytes[i]
	}
	return m
}

// XorM128i computes the bitwise XOR of two registers (PXOR).
func XorM128i(a, b M128i) M128i {
	var m M128i
	for i := range m.bytes {
		m.bytes[i] = a.bytes[i] ^ b.bytes[i]
	}
	return m
}

// AndNotM128i computes (^a) & b over the full register width (PANDN).
func AndNotM128i(a, b M128i) M128i {
	var m M128i
	for i := range m.bytes {
		m.bytes[i] = ^a.bytes[i] & b.bytes[i]
	}
	return m
}

// XorM256i computes the bitwise XOR of two 256-bit registers (VPXOR).
func XorM256i(a, b M256i) M256i {
	var m M256i
	for i := range m.bytes {
		m.bytes[i] = a.bytes[i] ^ b.bytes[i]
	}
	return m
}
