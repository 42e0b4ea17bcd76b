//go:build amd64

package bitops

import "golang.org/x/sys/cpu"

var cpuFeatures = Features{
	BMI1:   cpu.X86.HasBMI1,
	BMI2:   cpu.X86.HasBMI2,
	POPCNT: cpu.X86.HasPOPCNT,
}
