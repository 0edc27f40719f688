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

// AES round primitives (AESENC, AESENCLAST, AESDEC, AESDECLAST, AESIMC,
// AESKEYGENASSIST). Each function applies exactly one round transform to a
// 128-bit state; key scheduling and multi-round orchestration belong to
// the caller (see contrib/aesblock). The state occupies the register in
// FIPS-197 column-major order: state[row][col] is byte row+4*col of the
// register image.

//go:generate go run github.com/ajroetker/go-intrin/cmd/intringen -out aestables.go

// xtime is multiplication by x in GF(2^8) modulo the Rijndael polynomial.
func xtime(a byte) byte {
	if a&0x80 != 0 {
		return a<<1 ^ 0x1b
	}
	return a << 1
}

// gmul multiplies in GF(2^8) modulo the Rijndael polynomial.
func gmul(a, b byte) byte {
	var r byte
	for ; b != 0; b >>= 1 {
		if b&1 != 0 {
			r ^= a
		}
		a = xtime(a)
	}
	return r
}

// shiftRows rotates state row r left by r columns.
func shiftRows(s [16]byte) [16]byte {
	var o [16]byte
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			o[r+4*c] = s[r+4*((c+r)&3)]
		}
	}
	return o
}

// invShiftRows rotates state row r right by r columns.
func invShiftRows(s [16]byte) [16]byte {
	var o [16]byte
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			o[r+4*c] = s[r+4*((c-r)&3)]
		}
	}
	return o
}

func subBytes(s [16]byte, box *[256]byte) [16]byte {
	for i, b := range s {
		s[i] = box[b]
	}
	return s
}

func mixColumns(s [16]byte) [16]byte {
	var o [16]byte
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		o[4*c] = gmul(a0, 2) ^ gmul(a1, 3) ^ a2 ^ a3
		o[4*c+1] = a0 ^ gmul(a1, 2) ^ gmul(a2, 3) ^ a3
		o[4*c+2] = a0 ^ a1 ^ gmul(a2, 2) ^ gmul(a3, 3)
		o[4*c+3] = gmul(a0, 3) ^ a1 ^ a2 ^ gmul(a3, 2)
	}
	return o
}

func invMixColumns(s [16]byte) [16]byte {
	var o [16]byte
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		o[4*c] = gmul(a0, 14) ^ gmul(a1, 11) ^ gmul(a2, 13) ^ gmul(a3, 9)
		o[4*c+1] = gmul(a0, 9) ^ gmul(a1, 14) ^ gmul(a2, 11) ^ gmul(a3, 13)
		o[4*c+2] = gmul(a0, 13) ^ gmul(a1, 9) ^ gmul(a2, 14) ^ gmul(a3, 11)
		o[4*c+3] = gmul(a0, 11) ^ gmul(a1, 13) ^ gmul(a2, 9) ^ gmul(a3, 14)
	}
	return o
}

// AESEncrypt performs one round of the AES encryption flow on state using
// roundKey (AESENC): ShiftRows, SubBytes, MixColumns, then XOR with the
// round key.
func AESEncrypt(state, roundKey M128i) M128i {
	s := mixColumns(subBytes(shiftRows(state.bytes), &encSBox))
	return XorM128i(M128i{bytes: s}, roundKey)
}

// AESEncryptLast performs the last round of the AES encryption flow
// (AESENCLAST): as AESEncrypt but with the MixColumns step omitted.
func AESEncryptLast(state, roundKey M128i) M128i {
	s := subBytes(shiftRows(state.bytes), &encSBox)
	return XorM128i(M128i{bytes: s}, roundKey)
}

// AESDecrypt performs one round of the AES decryption flow on state using
// roundKey (AESDEC): InvShiftRows, InvSubBytes, InvMixColumns, then XOR
// with the round key. Round keys for this flow come from
// AESInvMixColumns; see contrib/aesblock.
func AESDecrypt(state, roundKey M128i) M128i {
	s := invMixColumns(subBytes(invShiftRows(state.bytes), &decSBox))
	return XorM128i(M128i{bytes: s}, roundKey)
}

// AESDecryptLast performs the last round of the AES decryption flow
// (AESDECLAST): as AESDecrypt but with the InvMixColumns step omitted.
func AESDecryptLast(state, roundKey M128i) M128i {
	s := subBytes(invShiftRows(state.bytes), &decSBox)
	return XorM128i(M128i{bytes: s}, roundKey)
}

// AESInvMixColumns applies the standalone InvMixColumns transform
// (AESIMC), used to convert encryption round keys into decryption round
// keys.
func AESInvMixColumns(a M128i) M128i {
	return M128i{bytes: invMixColumns(a.bytes)}
}

// AESKeyGenAssist produces key-schedule helper material from a and a round
// constant (AESKEYGENASSIST). The hardware instruction takes rcon as an
// immediate operand, so callers must pass a constant; Go cannot enforce
// that, and a non-constant argument still computes the same function.
//
// With a viewed as four 32-bit words x0..x3, the result words are
// SubWord(x1), RotWord(SubWord(x1))^rcon, SubWord(x3),
// RotWord(SubWord(x3))^rcon.
func AESKeyGenAssist(a M128i, rcon uint8) M128i {
	x := a.Uint32x4()
	s1 := subWord(x[1])
	s3 := subWord(x[3])
	return M128iFromUint32x4([4]uint32{
		s1, rotWord(s1) ^ uint32(rcon),
		s3, rotWord(s3) ^ uint32(rcon),
	})
}

// subWord applies the S-box to each byte of a 32-bit word.
func subWord(w uint32) uint32 {
	return uint32(encSBox[byte(w)]) |
		uint32(encSBox[byte(w>>8)])<<8 |
		uint32(encSBox[byte(w>>16)])<<16 |
		uint32(encSBox[byte(w>>24)])<<24
}

// rotWord rotates a 32-bit word right by one byte.
func rotWord(w uint32) uint32 {
	return w>>8 | w<<24
}
