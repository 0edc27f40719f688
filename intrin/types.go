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
	"encoding/binary"
	"fmt"
	"math"
)

// M128i is a 128-bit integer-lane register value. The stored bytes are the
// register's memory image (lane 0 in the low bytes), so conversions to and
// from the array views below are pure reinterpretations: total, lossless,
// and bit-exact. The lane width is imposed only by the operation consuming
// the value, never by the value itself.
type M128i struct {
	bytes [16]byte
}

// M128 is a 128-bit register value holding four float32 lanes.
type M128 struct {
	bytes [16]byte
}

// M128d is a 128-bit register value holding two float64 lanes.
type M128d struct {
	bytes [16]byte
}

// M256i is a 256-bit integer-lane register value.
type M256i struct {
	bytes [32]byte
}

// M256 is a 256-bit register value holding eight float32 lanes.
type M256 struct {
	bytes [32]byte
}

// M256d is a 256-bit register value holding four float64 lanes.
type M256d struct {
	bytes [32]byte
}

// M128iFromUint8x16 builds a register from sixteen byte lanes.
func M128iFromUint8x16(v [16]uint8) M128i {
	return M128i{bytes: v}
}

// Uint8x16 returns the register's sixteen byte lanes.
func (m M128i) Uint8x16() [16]uint8 {
	return m.bytes
}

// M128iFromInt8x16 builds a register from sixteen signed byte lanes.
func M128iFromInt8x16(v [16]int8) M128i {
	var m M128i
	for i, x := range v {
		m.bytes[i] = byte(x)
	}
	return m
}

// Int8x16 returns the register's sixteen lanes as signed bytes.
func (m M128i) Int8x16() [16]int8 {
	var v [16]int8
	for i, b := range m.bytes {
		v[i] = int8(b)
	}
	return v
}

// M128iFromUint16x8 builds a register from eight uint16 lanes.
func M128iFromUint16x8(v [8]uint16) M128i {
	var m M128i
	for i, x := range v {
		binary.LittleEndian.PutUint16(m.bytes[2*i:], x)
	}
	return m
}

// Uint16x8 returns the register's eight uint16 lanes.
func (m M128i) Uint16x8() [8]uint16 {
	var v [8]uint16
	for i := range v {
		v[i] = binary.LittleEndian.Uint16(m.bytes[2*i:])
	}
	return v
}

// M128iFromInt16x8 builds a register from eight int16 lanes.
func M128iFromInt16x8(v [8]int16) M128i {
	var m M128i
	for i, x := range v {
		binary.LittleEndian.PutUint16(m.bytes[2*i:], uint16(x))
	}
	return m
}

// Int16x8 returns the register's eight int16 lanes.
func (m M128i) Int16x8() [8]int16 {
	var v [8]int16
	for i := range v {
		v[i] = int16(binary.LittleEndian.Uint16(m.bytes[2*i:]))
	}
	return v
}

// M128iFromUint32x4 builds a register from four uint32 lanes.
func M128iFromUint32x4(v [4]uint32) M128i {
	var m M128i
	for i, x := range v {
		binary.LittleEndian.PutUint32(m.bytes[4*i:], x)
	}
	return m
}

// Uint32x4 returns the register's four uint32 lanes.
func (m M128i) Uint32x4() [4]uint32 {
	var v [4]uint32
	for i := range v {
		v[i] = binary.LittleEndian.Uint32(m.bytes[4*i:])
	}
	return v
}

// M128iFromInt32x4 builds a register from four int32 lanes.
func M128iFromInt32x4(v [4]int32) M128i {
	var m M128i
	for i, x := range v {
		binary.LittleEndian.PutUint32(m.bytes[4*i:], uint32(x))
	}
	return m
}

// Int32x4 returns the register's four int32 lanes.
func (m M128i) Int32x4() [4]int32 {
	var v [4]int32
	for i := range v {
		v[i] = int32(binary.LittleEndian.Uint32(m.bytes[4*i:]))
	}
	return v
}

// M128iFromUint64x2 builds a register from two uint64 lanes.
func M128iFromUint64x2(v [2]uint64) M128i {
	var m M128i
	binary.LittleEndian.PutUint64(m.bytes[0:], v[0])
	binary.LittleEndian.PutUint64(m.bytes[8:], v[1])
	return m
}

// Uint64x2 returns the register's two uint64 lanes.
func (m M128i) Uint64x2() [2]uint64 {
	return [2]uint64{
		binary.LittleEndian.Uint64(m.bytes[0:]),
		binary.LittleEndian.Uint64(m.bytes[8:]),
	}
}

// M128iFromInt64x2 builds a register from two int64 lanes.
func M128iFromInt64x2(v [2]int64) M128i {
	return M128iFromUint64x2([2]uint64{uint64(v[0]), uint64(v[1])})
}

// Int64x2 returns the register's two int64 lanes.
func (m M128i) Int64x2() [2]int64 {
	u := m.Uint64x2()
	return [2]int64{int64(u[0]), int64(u[1])}
}

// String formats the register as two 64-bit hex lanes, high lane first.
func (m M128i) String() string {
	u := m.Uint64x2()
	return fmt.Sprintf("{%016x, %016x}", u[1], u[0])
}

// M128FromFloat32x4 builds a register from four float32 lanes. The lane bit
// patterns are preserved exactly, including NaN payloads.
func M128FromFloat32x4(v [4]float32) M128 {
	var m M128
	for i, x := range v {
		binary.LittleEndian.PutUint32(m.bytes[4*i:], math.Float32bits(x))
	}
	return m
}

// Float32x4 returns the register's four float32 lanes.
func (m M128) Float32x4() [4]float32 {
	var v [4]float32
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(m.bytes[4*i:]))
	}
	return v
}

// String formats the register's float32 lanes, high lane first.
func (m M128) String() string {
	v := m.Float32x4()
	return fmt.Sprintf("{%v, %v, %v, %v}", v[3], v[2], v[1], v[0])
}

// M128dFromFloat64x2 builds a register from two float64 lanes. The lane bit
// patterns are preserved exactly, including NaN payloads.
func M128dFromFloat64x2(v [2]float64) M128d {
	var m M128d
	binary.LittleEndian.PutUint64(m.bytes[0:], math.Float64bits(v[0]))
	binary.LittleEndian.PutUint64(m.bytes[8:], math.Float64bits(v[1]))
	return m
}

// Float64x2 returns the register's two float64 lanes.
func (m M128d) Float64x2() [2]float64 {
	return [2]float64{
		math.Float64frombits(binary.LittleEndian.Uint64(m.bytes[0:])),
		math.Float64frombits(binary.LittleEndian.Uint64(m.bytes[8:])),
	}
}

// String formats the register's float64 lanes, high lane first.
func (m M128d) String() string {
	v := m.Float64x2()
	return fmt.Sprintf("{%v, %v}", v[1], v[0])
}

// M256iFromUint8x32 builds a register from thirty-two byte lanes.
func M256iFromUint8x32(v [32]uint8) M256i {
	return M256i{bytes: v}
}

// Uint8x32 returns the register's thirty-two byte lanes.
func (m M256i) Uint8x32() [32]uint8 {
	return m.bytes
}

// M256iFromUint16x16 builds a register from sixteen uint16 lanes.
func M256iFromUint16x16(v [16]uint16) M256i {
	var m M256i
	for i, x := range v {
		binary.LittleEndian.PutUint16(m.bytes[2*i:], x)
	}
	return m
}

// Uint16x16 returns the register's sixteen uint16 lanes.
func (m M256i) Uint16x16() [16]uint16 {
	var v [16]uint16
	for i := range v {
		v[i] = binary.LittleEndian.Uint16(m.bytes[2*i:])
	}
	return v
}

// M256iFromUint32x8 builds a register from eight uint32 lanes.
func M256iFromUint32x8(v [8]uint32) M256i {
	var m M256i
	for i, x := range v {
		binary.LittleEndian.PutUint32(m.bytes[4*i:], x)
	}
	return m
}

// Uint32x8 returns the register's eight uint32 lanes.
func (m M256i) Uint32x8() [8]uint32 {
	var v [8]uint32
	for i := range v {
		v[i] = binary.LittleEndian.Uint32(m.bytes[4*i:])
	}
	return v
}

// M256iFromUint64x4 builds a register from four uint64 lanes.
func M256iFromUint64x4(v [4]uint64) M256i {
	var m M256i
	for i, x := range v {
		binary.LittleEndian.PutUint64(m.bytes[8*i:], x)
	}
	return m
}

// Uint64x4 returns the register's four uint64 lanes.
func (m M256i) Uint64x4() [4]uint64 {
	var v [4]uint64
	for i := range v {
		v[i] = binary.LittleEndian.Uint64(m.bytes[8*i:])
	}
	return v
}

// M256iFromInt64x4 builds a register from four int64 lanes.
func M256iFromInt64x4(v [4]int64) M256i {
	var u [4]uint64
	for i, x := range v {
		u[i] = uint64(x)
	}
	return M256iFromUint64x4(u)
}

// Int64x4 returns the register's four int64 lanes.
func (m M256i) Int64x4() [4]int64 {
	u := m.Uint64x4()
	var v [4]int64
	for i, x := range u {
		v[i] = int64(x)
	}
	return v
}

// Halves splits a 256-bit register into its low and high 128-bit halves.
func (m M256i) Halves() (lo, hi M128i) {
	copy(lo.bytes[:], m.bytes[:16])
	copy(hi.bytes[:], m.bytes[16:])
	return lo, hi
}

// M256iFromHalves joins two 128-bit registers into a 256-bit register.
func M256iFromHalves(lo, hi M128i) M256i {
	var m M256i
	copy(m.bytes[:16], lo.bytes[:])
	copy(m.bytes[16:], hi.bytes[:])
	return m
}

// String formats the register as four 64-bit hex lanes, high lane first.
func (m M256i) String() string {
	u := m.Uint64x4()
	return fmt.Sprintf("{%016x, %016x, %016x, %016x}", u[3], u[2], u[1], u[0])
}

// M256FromFloat32x8 builds a register from eight float32 lanes. The lane bit
// patterns are preserved exactly, including NaN payloads.
func M256FromFloat32x8(v [8]float32) M256 {
	var m M256
	for i, x := range v {
		binary.LittleEndian.PutUint32(m.bytes[4*i:], math.Float32bits(x))
	}
	return m
}

// Float32x8 returns the register's eight float32 lanes.
func (m M256) Float32x8() [8]float32 {
	var v [8]float32
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(m.bytes[4*i:]))
	}
	return v
}

// M256dFromFloat64x4 builds a register from four float64 lanes. The lane bit
// patterns are preserved exactly, including NaN payloads.
func M256dFromFloat64x4(v [4]float64) M256d {
	var m M256d
	for i, x := range v {
		binary.LittleEndian.PutUint64(m.bytes[8*i:], math.Float64bits(x))
	}
	return m
}

// Float64x4 returns the register's four float64 lanes.
func (m M256d) Float64x4() [4]float64 {
	var v [4]float64
	for i := range v {
		v[i] = math.Float64frombits(binary.LittleEndian.Uint64(m.bytes[8*i:]))
	}
	return v
}
