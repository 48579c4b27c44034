package bip39

import (
	"encoding/hex"
)

// Entropy is accepted by EntropyToMnemonic either as raw bytes or as a hex
// string. The interface is sealed: RawEntropy and HexEntropy are the only
// implementations.
type Entropy interface {
	entropyBytes() ([]byte, error)
}

// RawEntropy is entropy given as bytes.
type RawEntropy []byte

// HexEntropy is entropy given as a hex string (either case).
type HexEntropy string

func (e RawEntropy) entropyBytes() ([]byte, error) {
	return []byte(e), nil
}

func (e HexEntropy) entropyBytes() ([]byte, error) {
	b, err := hex.DecodeString(string(e))
	if err != nil {
		return nil, newEntropyError(err)
	}
	return b, nil
}

// Entropy sizes in bytes.
const (
	MinEntropyBytes = 16
	MaxEntropyBytes = 32
)

// validEntropyLen reports whether n bytes is 128..256 bits in 32-bit steps.
func validEntropyLen(n int) bool {
	return n >= MinEntropyBytes && n <= MaxEntropyBytes && n%4 == 0
}
