//go:build amd64

package ascii

import "golang.org/x/sys/cpu"

// hasAVX2 selects the 32-byte-unrolled SWAR loop on CPUs that report AVX2
// support. There is no hand-written vector assembly here (see DESIGN.md) —
// the flag only picks between two pure-Go loop shapes, the same way the
// teacher's memchr family gated its 256-bit fast path on cpu.X86.HasAVX2.
var hasAVX2 = cpu.X86.HasAVX2
