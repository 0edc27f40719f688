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
	"math"
	"math/rand"
	"testing"
)

func TestM128iRoundTrips(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 100; trial++ {
		var raw [16]byte
		rng.Read(raw[:])

		m := M128iFromUint8x16(raw)
		if got := m.Uint8x16(); got != raw {
			t.Fatalf("Uint8x16 round trip: got %v, want %v", got, raw)
		}
		if got := M128iFromInt8x16(m.Int8x16()); got != m {
			t.Fatalf("Int8x16 round trip: got %v, want %v", got, m)
		}
		if got := M128iFromUint16x8(m.Uint16x8()); got != m {
			t.Fatalf("Uint16x8 round trip: got %v, want %v", got, m)
		}
		if got := M128iFromInt16x8(m.Int16x8()); got != m {
			t.Fatalf("Int16x8 round trip: got %v, want %v", got, m)
		}
		if got := M128iFromUint32x4(m.Uint32x4()); got != m {
			t.Fatalf("Uint32x4 round trip: got %v, want %v", got, m)
		}
		if got := M128iFromInt32x4(m.Int32x4()); got != m {
			t.Fatalf("Int32x4 round trip: got %v, want %v", got, m)
		}
		if got := M128iFromUint64x2(m.Uint64x2()); got != m {
			t.Fatalf("Uint64x2 round trip: got %v, want %v", got, m)
		}
		if got := M128iFromInt64x2(m.Int64x2()); got != m {
			t.Fatalf("Int64x2 round trip: got %v, want %v", got, m)
		}
	}
}

func TestM128iLaneOrder(t *testing.T) {
	m := M128iFromUint64x2([2]uint64{0x0706050403020100, 0x0f0e0d0c0b0a0908})
	want := [16]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	if got := m.Uint8x16(); got != want {
		t.Errorf("byte lanes = %v, want %v", got, want)
	}
	if got := m.Uint32x4(); got != [4]uint32{0x03020100, 0x07060504, 0x0b0a0908, 0x0f0e0d0c} {
		t.Errorf("uint32 lanes = %08x", got)
	}
	if got := m.String(); got != "{0f0e0d0c0b0a0908, 0706050403020100}" {
		t.Errorf("String() = %q", got)
	}
}

func TestM128FloatRoundTrips(t *testing.T) {
	// Include a quiet NaN with payload bits and negative zero: conversions
	// must be bit-exact, not value-preserving.
	nan := math.Float32frombits(0x7fc00123)
	v := [4]float32{1.5, float32(math.Copysign(0, -1)), nan, -math.MaxFloat32}
	m := M128FromFloat32x4(v)
	got := m.Float32x4()
	for i := range v {
		if math.Float32bits(got[i]) != math.Float32bits(v[i]) {
			t.Errorf("lane %d: bits %08x, want %08x", i, math.Float32bits(got[i]), math.Float32bits(v[i]))
		}
	}

	dnan := math.Float64frombits(0x7ff8000000000456)
	d := [2]float64{math.Inf(-1), dnan}
	md := M128dFromFloat64x2(d)
	gotd := md.Float64x2()
	for i := range d {
		if math.Float64bits(gotd[i]) != math.Float64bits(d[i]) {
			t.Errorf("lane %d: bits %016x, want %016x", i, math.Float64bits(gotd[i]), math.Float64bits(d[i]))
		}
	}
}

func TestM256iRoundTrips(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 100; trial++ {
		var raw [32]byte
		rng.Read(raw[:])

		m := M256iFromUint8x32(raw)
		if got := m.Uint8x32(); got != raw {
			t.Fatalf("Uint8x32 round trip: got %v, want %v", got, raw)
		}
		if got := M256iFromUint16x16(m.Uint16x16()); got != m {
			t.Fatalf("Uint16x16 round trip: got %v, want %v", got, m)
		}
		if got := M256iFromUint32x8(m.Uint32x8()); got != m {
			t.Fatalf("Uint32x8 round trip: got %v, want %v", got, m)
		}
		if got := M256iFromUint64x4(m.Uint64x4()); got != m {
			t.Fatalf("Uint64x4 round trip: got %v, want %v", got, m)
		}
		if got := M256iFromInt64x4(m.Int64x4()); got != m {
			t.Fatalf("Int64x4 round trip: got %v, want %v", got, m)
		}

		lo, hi := m.Halves()
		if got := M256iFromHalves(lo, hi); got != m {
			t.Fatalf("Halves round trip: got %v, want %v", got, m)
		}
	}
}

func TestM256FloatRoundTrips(t *testing.T) {
	v := [8]float32{0, 1, -1, 2.5, float32(math.Inf(1)), -3, 1e-30, 6}
	if got := M256FromFloat32x8(v).Float32x8(); got != v {
		t.Errorf("Float32x8 round trip: got %v, want %v", got, v)
	}
	d := [4]float64{math.Pi, -0.0, math.Inf(1), 1e-300}
	gotd := M256dFromFloat64x4(d).Float64x4()
	for i := range d {
		if math.Float64bits(gotd[i]) != math.Float64bits(d[i]) {
			t.Errorf("lane %d: bits %016x, want %016x", i, math.Float64bits(gotd[i]), math.Float64bits(d[i]))
		}
	}
}
