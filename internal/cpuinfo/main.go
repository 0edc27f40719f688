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

// Package main provides a diagnostic tool to print the instruction
// capabilities the intrin package detected, next to the raw CPU flags
// backing them.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-intrin/intrin"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("intrin forced off (INTRIN_NO_HW): %v\n", intrin.NoHardwareEnv())
	fmt.Println("intrin native feature set:")
	for _, f := range intrin.Features() {
		fmt.Printf("  %s\n", f)
	}
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD: %v (NEON baseline: CNT, CLZ, BIC)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasAES:   %v (AESE/AESD/AESMC/AESIMC)\n", cpu.ARM64.HasAES)
	fmt.Printf("  HasPMULL: %v (PMULL/PMULL2)\n", cpu.ARM64.HasPMULL)
	fmt.Printf("  HasSHA1:  %v\n", cpu.ARM64.HasSHA1)
	fmt.Printf("  HasSHA2:  %v\n", cpu.ARM64.HasSHA2)
	fmt.Printf("  HasCRC32: %v\n", cpu.ARM64.HasCRC32)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasBMI1:      %v\n", cpu.X86.HasBMI1)
	fmt.Printf("  HasBMI2:      %v\n", cpu.X86.HasBMI2)
	fmt.Printf("  HasPOPCNT:    %v\n", cpu.X86.HasPOPCNT)
	fmt.Printf("  HasADX:       %v\n", cpu.X86.HasADX)
	fmt.Printf("  HasRDSEED:    %v\n", cpu.X86.HasRDSEED)
	fmt.Printf("  HasRDRAND:    %v\n", cpu.X86.HasRDRAND)
	fmt.Printf("  HasAES:       %v\n", cpu.X86.HasAES)
	fmt.Printf("  HasPCLMULQDQ: %v\n", cpu.X86.HasPCLMULQDQ)
	fmt.Printf("  HasSSE2:      %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasAVX2:      %v\n", cpu.X86.HasAVX2)
}
