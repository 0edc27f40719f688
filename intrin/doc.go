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

// Package intrin exposes CPU bit-manipulation and vector instruction
// semantics as ordinary Go functions over register-sized value types.
//
// Every function is a one-to-one mapping onto a single hardware
// instruction's numeric contract: BZHI, MULX, PDEP/PEXT, LZCNT, POPCNT,
// ADCX, RDSEED, AESENC and friends, and PCLMULQDQ. The wrappers are
// bit-exact total functions (the hardware-RNG fetch is the one operation
// that can decline to produce a value), so they behave identically on
// every architecture; Has and Require report whether the running CPU
// executes each group natively.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-intrin/intrin"
//
//	x := intrin.M128iFromUint64x2([2]uint64{2, 3})
//	y := intrin.M128iFromUint64x2([2]uint64{4, 500})
//	p := intrin.MulCarrylessHighHigh(x, y) // GF(2) product of the high lanes
//
// Register values are plain copyable values with no hidden state; the
// array conversions are total, lossless, and bit-exact in both
// directions, so callers may freely move between lane views.
package intrin
