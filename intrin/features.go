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

import "github.com/xyproto/env/v2"

// Feature identifies an instruction-set extension backing a group of
// wrappers in this package. The wrappers themselves are bit-exact on every
// architecture; a Feature reports whether the running CPU retires the
// group as native instructions, which is what deployment gating cares
// about.
type Feature uint8

const (
	// FeatureBMI1 covers AndNot32/AndNot64 (ANDN).
	FeatureBMI1 Feature = iota
	// FeatureBMI2 covers BitZeroHighIndex, MulExtended, PopDeposit, and
	// PopExtract (BZHI, MULX, PDEP, PEXT).
	FeatureBMI2
	// FeatureLZCNT covers LeadingZeroCount32/64.
	FeatureLZCNT
	// FeaturePOPCNT covers PopCount32/64.
	FeaturePOPCNT
	// FeatureADX covers AddCarry32/64 (ADCX/ADOX).
	FeatureADX
	// FeatureRDSEED covers RandSeed16/32/64.
	FeatureRDSEED
	// FeatureAES covers the AES round primitives (AESENC family).
	FeatureAES
	// FeaturePCLMULQDQ covers the carryless multiply functions.
	FeaturePCLMULQDQ

	featureCount
)

var featureNames = [featureCount]string{
	FeatureBMI1:      "bmi1",
	FeatureBMI2:      "bmi2",
	FeatureLZCNT:     "lzcnt",
	FeaturePOPCNT:    "popcnt",
	FeatureADX:       "adx",
	FeatureRDSEED:    "rdseed",
	FeatureAES:       "aes",
	FeaturePCLMULQDQ: "pclmulqdq",
}

func (f Feature) String() string {
	if f < featureCount {
		return featureNames[f]
	}
	return "unknown"
}

// detected is filled once by the per-architecture detectFeatures in init.
var detected [featureCount]bool

func init() {
	// Env escape hatch: report no native support, e.g. to exercise the
	// portable deployment story in CI.
	if NoHardwareEnv() {
		return
	}
	detectFeatures()
}

// NoHardwareEnv reports whether INTRIN_NO_HW is set, which forces the
// feature report to claim no native instruction support.
func NoHardwareEnv() bool {
	return env.Bool("INTRIN_NO_HW")
}

// Has reports whether the running CPU executes the feature's wrapper group
// as native instructions.
func Has(f Feature) bool {
	return f < featureCount && detected[f]
}

// Features returns the detected feature set in declaration order.
func Features() []Feature {
	var fs []Feature
	for f := Feature(0); f < featureCount; f++ {
		if detected[f] {
			fs = append(fs, f)
		}
	}
	return fs
}

// Require panics unless the feature is natively supported. Callers that
// treat missing hardware support as a deployment error invoke this once at
// startup.
func Require(f Feature) {
	if !Has(f) {
		panic("intrin: CPU does not support " + f.String())
	}
}
