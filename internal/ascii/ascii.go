// Package ascii provides fast ASCII-range checks and the small set of byte-level
// normalization passes the text preprocessor needs: uppercasing, alphanumeric
// filtering, and run-length repeat collapsing.
//
// IsASCII uses the SWAR (SIMD Within A Register) technique, processing 8 bytes
// at a time via uint64 bitwise operations instead of a byte-by-byte loop.
package ascii

import "encoding/binary"

const hi8 = uint64(0x8080808080808080)

// IsASCII reports whether every byte in data has its high bit clear (0x00-0x7F).
//
// Input Streams (IS) are built only from ASCII letters and digits (spec §3);
// this check lets the preprocessor reject or strip non-ASCII input before
// normalization instead of silently mis-symbolizing it.
func IsASCII(data []byte) bool {
	n := len(data)
	if n == 0 {
		return true
	}
	if hasAVX2 {
		return isASCIIUnrolled(data)
	}
	return isASCIIGeneric(data)
}

// isASCIIGeneric processes 8 bytes at a time using a single SWAR accumulator.
func isASCIIGeneric(data []byte) bool {
	n := len(data)
	if n < 8 {
		for i := 0; i < n; i++ {
			if data[i] >= 0x80 {
				return false
			}
		}
		return true
	}

	idx := 0
	for idx+8 <= n {
		chunk := binary.LittleEndian.Uint64(data[idx:])
		if chunk&hi8 != 0 {
			return false
		}
		idx += 8
	}
	for idx < n {
		if data[idx] >= 0x80 {
			return false
		}
		idx++
	}
	return true
}

// isASCIIUnrolled processes 32 bytes (four uint64 lanes) per iteration on CPUs
// that report AVX2 support. It performs the same SWAR comparison as the
// generic path, just with four lanes combined into a single branch per
// iteration — a software analogue of the 256-bit vector compare, without
// requiring assembly.
func isASCIIUnrolled(data []byte) bool {
	n := len(data)
	idx := 0
	for idx+32 <= n {
		a := binary.LittleEndian.Uint64(data[idx:])
		b := binary.LittleEndian.Uint64(data[idx+8:])
		c := binary.LittleEndian.Uint64(data[idx+16:])
		d := binary.LittleEndian.Uint64(data[idx+24:])
		if (a|b|c|d)&hi8 != 0 {
			return false
		}
		idx += 32
	}
	return isASCIIGeneric(data[idx:]) && isASCIIGeneric(data[:idx])
}

// UppercaseASCIIAlnum uppercases ASCII letters in place and reports, via the
// returned slice, only the letters and digits of data — every other byte is
// dropped, per the TEXT store normalization rule (spec §4.1): "any other
// character is discarded from RL input."
func UppercaseASCIIAlnum(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for _, b := range data {
		switch {
		case b >= 'a' && b <= 'z':
			out = append(out, b-('a'-'A'))
		case (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9'):
			out = append(out, b)
		}
	}
	return out
}

// CollapseRepeats reduces any run of more than two identical bytes to exactly
// two, per scenario 3 of spec §8 ("THURSOOOOOOOOODAY" -> "THURSOODAY" before
// recognition, i.e. runs >2 collapse to 2).
func CollapseRepeats(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	out := make([]byte, 0, len(data))
	i := 0
	for i < len(data) {
		j := i + 1
		for j < len(data) && data[j] == data[i] {
			j++
		}
		run := j - i
		if run > 2 {
			run = 2
		}
		for k := 0; k < run; k++ {
			out = append(out, data[i])
		}
		i = j
	}
	return out
}
