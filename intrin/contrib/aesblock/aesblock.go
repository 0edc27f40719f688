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

// Package aesblock builds an AES-128 block cipher from the intrin round
// primitives: key expansion through AESKeyGenAssist, encryption by
// chaining AESEncrypt into AESEncryptLast, and decryption with the
// equivalent inverse cipher over AESInvMixColumns-converted round keys.
//
// It is a single-block cipher with no mode of operation; it exists to
// exercise the round primitives the way external callers compose them.
package aesblock

import "github.com/ajroetker/go-intrin/intrin"

// rounds is the AES-128 round count; the schedule holds rounds+1 keys.
const rounds = 10

// ExpandKey128 derives the eleven AES-128 round keys. Each step feeds the
// previous key through AESKeyGenAssist with that round's constant, exactly
// as the hardware key-expansion idiom does.
func ExpandKey128(key [16]byte) [rounds + 1]intrin.M128i {
	var ks [rounds + 1]intrin.M128i
	ks[0] = intrin.M128iFromUint8x16(key)
	ks[1] = nextRoundKey(ks[0], intrin.AESKeyGenAssist(ks[0], 0x01))
	ks[2] = nextRoundKey(ks[1], intrin.AESKeyGenAssist(ks[1], 0x02))
	ks[3] = nextRoundKey(ks[2], intrin.AESKeyGenAssist(ks[2], 0x04))
	ks[4] = nextRoundKey(ks[3], intrin.AESKeyGenAssist(ks[3], 0x08))
	ks[5] = nextRoundKey(ks[4], intrin.AESKeyGenAssist(ks[4], 0x10))
	ks[6] = nextRoundKey(ks[5], intrin.AESKeyGenAssist(ks[5], 0x20))
	ks[7] = nextRoundKey(ks[6], intrin.AESKeyGenAssist(ks[6], 0x40))
	ks[8] = nextRoundKey(ks[7], intrin.AESKeyGenAssist(ks[7], 0x80))
	ks[9] = nextRoundKey(ks[8], intrin.AESKeyGenAssist(ks[8], 0x1b))
	ks[10] = nextRoundKey(ks[9], intrin.AESKeyGenAssist(ks[9], 0x36))
	return ks
}

// nextRoundKey folds the assist material into the previous round key: the
// rotated-and-substituted word sits in assist lane 3, and each key word
// chains the XOR of its predecessor.
func nextRoundKey(prev, assist intrin.M128i) intrin.M128i {
	t := assist.Uint32x4()[3]
	k := prev.Uint32x4()
	w0 := k[0] ^ t
	w1 := w0 ^ k[1]
	w2 := w1 ^ k[2]
	w3 := w2 ^ k[3]
	return intrin.M128iFromUint32x4([4]uint32{w0, w1, w2, w3})
}

// DecryptionKeys converts an encryption schedule into the schedule for the
// equivalent inverse cipher: the outer keys swap positions and the inner
// keys pass through AESInvMixColumns.
func DecryptionKeys(enc [rounds + 1]intrin.M128i) [rounds + 1]intrin.M128i {
	var dec [rounds + 1]intrin.M128i
	dec[0] = enc[rounds]
	for i := 1; i < rounds; i++ {
		dec[i] = intrin.AESInvMixColumns(enc[rounds-i])
	}
	dec[rounds] = enc[0]
	return dec
}

// EncryptBlock encrypts one block under an expanded key schedule.
func EncryptBlock(ks [rounds + 1]intrin.M128i, block [16]byte) [16]byte {
	state := intrin.XorM128i(intrin.M128iFromUint8x16(block), ks[0])
	for r := 1; r < rounds; r++ {
		state = intrin.AESEncrypt(state, ks[r])
	}
	return intrin.AESEncryptLast(state, ks[rounds]).Uint8x16()
}

// DecryptBlock decrypts one block under a DecryptionKeys schedule.
func DecryptBlock(dk [rounds + 1]intrin.M128i, block [16]byte) [16]byte {
	state := intrin.XorM128i(intrin.M128iFromUint8x16(block), dk[0])
	for r := 1; r < rounds; r++ {
		state = intrin.AESDecrypt(state, dk[r])
	}
	return intrin.AESDecryptLast(state, dk[rounds]).Uint8x16()
}

// Cipher holds both schedules for one AES-128 key.
type Cipher struct {
	enc [rounds + 1]intrin.M128i
	dec [rounds + 1]intrin.M128i
}

// New expands key into a ready-to-use Cipher.
func New(key [16]byte) *Cipher {
	enc := ExpandKey128(key)
	return &Cipher{enc: enc, dec: DecryptionKeys(enc)}
}

// Encrypt encrypts a single block.
func (c *Cipher) Encrypt(block [16]byte) [16]byte {
	return EncryptBlock(c.enc, block)
}

// Decrypt decrypts a single block.
func (c *Cipher) Decrypt(block [16]byte) [16]byte {
	return DecryptBlock(c.dec, block)
}
