//go:build amd64

package intrin

import "golang.org/x/sys/cpu"

func detectFeatures() {
	detected[FeatureBMI1] = cpu.X86.HasBMI1
	detected[FeatureBMI2] = cpu.X86.HasBMI2
	detected[FeaturePOPCNT] = cpu.X86.HasPOPCNT
	detected[FeatureADX] = cpu.X86.HasADX
	detected[FeatureRDSEED] = cpu.X86.HasRDSEED
	detected[FeatureAES] = cpu.X86.HasAES
	detected[FeaturePCLMULQDQ] = cpu.X86.HasPCLMULQDQ

	// x/sys/cpu carries no dedicated LZCNT flag. LZCNT shipped alongside
	// BMI1 on every x86 core that has either, so key it to BMI1.
	detected[FeatureLZCNT] = cpu.X86.HasBMI1
}
