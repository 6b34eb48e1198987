//go:build !amd64

package ascii

// hasAVX2 is always false off amd64; IsASCII uses the generic SWAR loop.
var hasAVX2 = false
