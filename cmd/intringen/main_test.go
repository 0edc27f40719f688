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

package main

import "testing"

func TestBuildSBoxes(t *testing.T) {
	enc, dec := buildSBoxes()

	// FIPS-197 figure 7 spot values.
	spots := map[byte]byte{0x00: 0x63, 0x01: 0x7c, 0x53: 0xed, 0xff: 0x16}
	for in, want := range spots {
		if enc[in] != want {
			t.Errorf("enc[%#x] = %#x, want %#x", in, enc[in], want)
		}
	}

	// The boxes must be mutual inverses, which also forces both to be
	// permutations.
	for i := 0; i < 256; i++ {
		if dec[enc[i]] != byte(i) {
			t.Errorf("dec[enc[%#x]] = %#x", i, dec[enc[i]])
		}
	}
}

func TestTableRows(t *testing.T) {
	var table [256]byte
	table[0] = 0xab
	rows := tableRows(table)
	if len(rows) != 16 {
		t.Fatalf("len(rows) = %d, want 16", len(rows))
	}
	const want = "0xab, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,"
	if rows[0] != want {
		t.Errorf("rows[0] = %q, want %q", rows[0], want)
	}
}
