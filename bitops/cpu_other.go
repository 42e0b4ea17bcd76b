//go:build !amd64

package bitops

var cpuFeatures Features
