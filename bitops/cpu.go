package bitops

import "strings"

// Features reports the CPU instructions relevant to the word primitives. The
// intrinsic implementation does not switch on these at runtime (the compiler
// picks the instructions from GOAMD64 and friends); they are reported so
// benchmarks and tools can say what they ran on.
type Features struct {
	BMI1   bool // TZCNT
	BMI2   bool // MULX, SHLX
	POPCNT bool
}

func (f Features) String() string {
	var out []string
	if f.BMI1 {
		out = append(out, "BMI1")
	}
	if f.BMI2 {
		out = append(out, "BMI2")
	}
	if f.POPCNT {
		out = append(out, "POPCNT")
	}
	if len(out) == 0 {
		return "none"
	}
	return strings.Join(out, ",")
}

// Implementation returns "intrinsic" or "generic", depending on whether the
// package was built with the 'purego' tag.
func Implementation() string { return implementation }

// CPU returns the detected CPU features. It is always the zero value on
// architectures other than amd64.
func CPU() Features { return cpuFeatures }
