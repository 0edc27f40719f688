//go:build arm64

package intrin

import "golang.org/x/sys/cpu"

func detectFeatures() {
	// NEON CNT/CLZ and BIC are baseline on every arm64 core, so the
	// population-count, leading-zero, and andnot groups are always native.
	detected[FeatureBMI1] = true
	detected[FeatureLZCNT] = true
	detected[FeaturePOPCNT] = true

	// The AES and polynomial-multiply groups map to the optional crypto
	// extension (AESE/AESD, PMULL/PMULL2).
	detected[FeatureAES] = cpu.ARM64.HasAES
	detected[FeaturePCLMULQDQ] = cpu.ARM64.HasPMULL

	// BZHI/PDEP/PEXT, ADX, and RDSEED have no arm64 counterparts.
}
