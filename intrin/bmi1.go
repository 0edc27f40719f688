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

// AndNot32 computes (^a) & b (ANDN). Total over all bit patterns.
func AndNot32(a, b uint32) uint32 {
	return ^a & b
}

// AndNot64 computes (^a) & b over 64 bits (ANDN).
func AndNot64(a, b uint64) uint64 {
	return ^a & b
}
