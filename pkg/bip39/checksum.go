package bip39

import "crypto/sha256"

// deriveChecksumBits returns the first ENT/32 bits of SHA-256(entropy) as a
// bit string.
func deriveChecksumBits(entropy []byte) string {
	cs := len(entropy) * 8 / 32
	hash := sha256.Sum256(entropy)
	return bytesToBinary(hash[:])[:cs]
}
