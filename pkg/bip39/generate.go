package bip39

import (
	"crypto/rand"
	"fmt"
	"io"
)

// DefaultStrength is the entropy size used when GenerateMnemonic is given 0.
const DefaultStrength = 128

// RNG returns exactly size random bytes.
type RNG func(size int) ([]byte, error)

// CryptoRNG reads from crypto/rand. It is the RNG used when none is given.
func CryptoRNG(size int) ([]byte, error) {
	b := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

// NewEntropy returns bits of random entropy from crypto/rand. bits must be
// 128..256 and a multiple of 32.
func NewEntropy(bits int) ([]byte, error) {
	if bits%32 != 0 || !validEntropyLen(bits/8) {
		return nil, newEntropyError(nil)
	}
	return CryptoRNG(bits / 8)
}

// GenerateMnemonic draws strength/8 bytes from rng and encodes them with wl
// (or the registry default). strength 0 means DefaultStrength and nil rng
// means CryptoRNG. A strength that is not a multiple of 32 fails with an
// *EntropyError, as does an rng whose output is not a valid entropy length.
func (r *Registry) GenerateMnemonic(strength int, rng RNG, wl *Wordlist) (string, error) {
	if strength == 0 {
		strength = DefaultStrength
	}
	if strength < 0 || strength%32 != 0 {
		return "", newEntropyError(nil)
	}
	if rng == nil {
		rng = CryptoRNG
	}
	entropy, err := rng(strength / 8)
	if err != nil {
		return "", fmt.Errorf("read entropy: %w", err)
	}
	return r.EntropyToMnemonic(RawEntropy(entropy), wl)
}

// ValidateMnemonic reports whether mnemonic decodes with a valid checksum.
// Every failure of MnemonicToEntropy counts as invalid.
func (r *Registry) ValidateMnemonic(mnemonic string, wl *Wordlist) bool {
	_, err := r.MnemonicToEntropyBytes(mnemonic, wl)
	return err == nil
}

// GenerateMnemonic generates a mnemonic with DefaultRegistry.
func GenerateMnemonic(strength int, rng RNG, wl *Wordlist) (string, error) {
	return DefaultRegistry.GenerateMnemonic(strength, rng, wl)
}

// ValidateMnemonic validates a mnemonic with DefaultRegistry.
func ValidateMnemonic(mnemonic string, wl *Wordlist) bool {
	return DefaultRegistry.ValidateMnemonic(mnemonic, wl)
}
