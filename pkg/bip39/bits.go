package bip39

import (
	"strconv"
	"strings"
)

// Bit strings are strings of '0' and '1' runes, MSB first. They keep the
// ENT/CS split and the 11-bit word chunking easy to follow.

// lpad left-pads s with pad until it is at least length runes long.
func lpad(s string, pad byte, length int) string {
	if len(s) >= length {
		return s
	}
	return strings.Repeat(string(pad), length-len(s)) + s
}

// bytesToBinary renders each byte as 8 bits.
func bytesToBinary(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 8)
	for _, x := range b {
		sb.WriteString(lpad(strconv.FormatUint(uint64(x), 2), '0', 8))
	}
	return sb.String()
}

// formatIndex renders a word index in binary without padding.
func formatIndex(i int) string {
	return strconv.FormatUint(uint64(i), 2)
}

// binaryToInt parses a bit string of at most 11 bits (one word index) or
// 8 bits (one byte).
func binaryToInt(bin string) int {
	n, err := strconv.ParseUint(bin, 2, 16)
	if err != nil {
		// callers only pass strings they built from '0'/'1'
		panic("bip39: malformed bit string " + strconv.Quote(bin))
	}
	return int(n)
}

// chunk splits s into pieces of size n; the last piece may be shorter.
func chunk(s string, n int) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, (len(s)+n-1)/n)
	for len(s) > n {
		out = append(out, s[:n])
		s = s[n:]
	}
	return append(out, s)
}

// binaryToBytes packs a bit string into bytes, 8 bits at a time. A trailing
// partial group is parsed as-is, matching the reference packing.
func binaryToBytes(bin string) []byte {
	groups := chunk(bin, 8)
	out := make([]byte, len(groups))
	for i, g := range groups {
		out[i] = byte(binaryToInt(g))
	}
	return out
}
