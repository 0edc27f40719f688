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
	"crypto/rand"
	"io"
)

// seedSource feeds the RandSeed functions. It defaults to the system
// entropy pool, the same generator the kernel conditions hardware seed
// instructions into. Tests swap it to exercise the failure path.
var seedSource io.Reader = rand.Reader

// RandSeed16 tries to fetch a random uint16 from the entropy source
// (RDSEED). ok reports whether a value was produced; when ok is false the
// returned value is zero and carries no meaning. Callers wanting a retry
// policy supply their own.
func RandSeed16() (v uint16, ok bool) {
	var b [2]byte
	if _, err := io.ReadFull(seedSource, b[:]); err != nil {
		return 0, false
	}
	return uint16(b[0]) | uint16(b[1])<<8, true
}

// RandSeed32 tries to fetch a random uint32 from the entropy source
// (RDSEED).
func RandSeed32() (v uint32, ok bool) {
	var b [4]byte
	if _, err := io.ReadFull(seedSource, b[:]); err != nil {
		return 0, false
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, true
}

// RandSeed64 tries to fetch a random uint64 from the entropy source
// (RDSEED).
func RandSeed64() (v uint64, ok bool) {
	var b [8]byte
	if _, err := io.ReadFull(seedSource, b[:]); err != nil {
		return 0, false
	}
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v, true
}
