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

func TestMulCarrylessLaneSelection(t *testing.T) {
	x := M128iFromInt64x2([2]int64{2, 3})
	y := M128iFromInt64x2([2]int64{4, 500})

	cases := []struct {
		name string
		fn   func(a, b M128i) M128i
		want int64
	}{
		{"LowLow", MulCarrylessLowLow, 8},
		{"HighLow", MulCarrylessHighLow, 12},
		{"LowHigh", MulCarrylessLowHigh, 1000},
		// 3 clmul 500 is 540, not the 1500 an ordinary multiply produces.
		{"HighHigh", MulCarrylessHighHigh, 540},
	}
	for _, c := range cases {
		got := c.fn(x, y).Int64x2()
		if got[0] != c.want || got[1] != 0 {
			t.Errorf("MulCarryless%s = %v, want [%d, 0]", c.name, got, c.want)
		}
	}
}

func TestMulCarrylessProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for trial := 0; trial < 200; trial++ {
		a := rng.Uint64()
		b := rng.Uint64()
		ra := M128iFromUint64x2([2]uint64{a, rng.Uint64()})
		rb := M128iFromUint64x2([2]uint64{b, rng.Uint64()})

		p := MulCarrylessLowLow(ra, rb)
		q := MulCarrylessLowLow(rb, ra)
		if p != q {
			t.Fatalf("carryless product not commutative: %v vs %v", p, q)
		}

		// Multiplying by x (the polynomial 0b10) is a left shift by one.
		shift := MulCarrylessLowLow(ra, M128iFromUint64x2([2]uint64{2, 0})).Uint64x2()
		if shift[0] != a<<1 || shift[1] != a>>63 {
			t.Fatalf("clmul by x: got %v, want shifted %#x", shift, a)
		}

		// Distributes over XOR.
		c := rng.Uint64()
		rc := M128iFromUint64x2([2]uint64{c, 0})
		left := MulCarrylessLowLow(M128iFromUint64x2([2]uint64{a ^ b, 0}), rc)
		right := XorM128i(MulCarrylessLowLow(ra, rc), MulCarrylessLowLow(rb, rc))
		if left != right {
			t.Fatalf("clmul not distributive over xor: %v vs %v", left, right)
		}
	}
}
