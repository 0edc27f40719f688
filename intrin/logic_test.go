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

import (
	"math/rand"
	"testing"
)

func TestRegisterLogic(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for trial := 0; trial < 200; trial++ {
		a := M128iFromUint64x2([2]uint64{rng.Uint64(), rng.Uint64()})
		b := M128iFromUint64x2([2]uint64{rng.Uint64(), rng.Uint64()})

		au, bu := a.Uint64x2(), b.Uint64x2()
		if got := AndM128i(a, b).Uint64x2(); got != [2]uint64{au[0] & bu[0], au[1] & bu[1]} {
			t.Fatalf("AndM128i mismatch")
		}
		if got := OrM128i(a, b).Uint64x2(); got != [2]uint64{au[0] | bu[0], au[1] | bu[1]} {
			t.Fatalf("OrM128i mismatch")
		}
		if got := XorM128i(a, b).Uint64x2(); got != [2]uint64{au[0] ^ bu[0], au[1] ^ bu[1]} {
			t.Fatalf("XorM128i mismatch")
		}
		if got := AndNotM128i(a, b).Uint64x2(); got != [2]uint64{^au[0] & bu[0], ^au[1] & bu[1]} {
			t.Fatalf("AndNotM128i mismatch")
		}

		if got := XorM128i(a, a); got != ZeroM128i() {
			t.Fatalf("XorM128i(a, a) = %v, want zero", got)
		}
	}
}

func TestSplat(t *testing.T) {
	if got := SplatUint32M128i(0xdeadbeef).Uint32x4(); got != [4]uint32{0xdeadbeef, 0xdeadbeef, 0xdeadbeef, 0xdeadbeef} {
		t.Errorf("SplatUint32M128i = %08x", got)
	}
	if got := SplatUint64M128i(7).Uint64x2(); got != [2]uint64{7, 7} {
		t.Errorf("SplatUint64M128i = %v", got)
	}
}

func TestXorM256iFolding(t *testing.T) {
	// XOR-fold a block of words through the wide register and compare with
	// the scalar fold.
	rng := rand.New(rand.NewSource(13))
	words := make([]uint64, 64)
	for i := range words {
		words[i] = rng.Uint64()
	}

	acc := ZeroM256i()
	for i := 0; i < len(words); i += 4 {
		acc = XorM256i(acc, M256iFromUint64x4([4]uint64{words[i], words[i+1], words[i+2], words[i+3]}))
	}
	lanes := acc.Uint64x4()
	got := lanes[0] ^ lanes[1] ^ lanes[2] ^ lanes[3]

	var want uint64
	for _, w := range words {
		want ^= w
	}
	if got != want {
		t.Errorf("xor fold = %#x, want %#x", got, want)
	}
}
