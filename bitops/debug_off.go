//go:build !bitopsdebug

package bitops

const debug = false
