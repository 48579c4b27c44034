package internal

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"bip39riot/pkg/bip39"
)

// GenerateVerified draws strength bits from rng, encodes them with wl, and
// immediately verifies a full round-trip by decoding the mnemonic back to
// entropy. The comparison is exact. If verification fails for any reason an
// error is returned and no mnemonic is produced.
//
// Parameters:
//   - reg:      registry whose default is used when wl is nil
//   - strength: entropy bits (128..256, step 32; 0 means 128)
//   - rng:      entropy source (nil means crypto/rand)
//   - wl:       wordlist, or nil for the registry default
//
// Returns:
//   - mnemonic: the verified phrase
//   - entropy:  the drawn entropy bytes
//   - error:    non-nil if generation or verification fails
func GenerateVerified(reg *bip39.Registry, strength int, rng bip39.RNG, wl *bip39.Wordlist) (string, []byte, error) {
	if strength == 0 {
		strength = bip39.DefaultStrength
	}
	if rng == nil {
		rng = bip39.CryptoRNG
	}

	// Capture the drawn bytes so the round-trip has something to compare to.
	var drawn []byte
	capture := func(size int) ([]byte, error) {
		b, err := rng(size)
		if err != nil {
			return nil, err
		}
		drawn = bytes.Clone(b)
		return b, nil
	}

	mnemonic, err := reg.GenerateMnemonic(strength, capture, wl)
	if err != nil {
		return "", nil, err
	}
	if err := verifyEntropy(reg, mnemonic, drawn, wl); err != nil {
		return "", nil, err
	}
	return mnemonic, drawn, nil
}

// VerifyMnemonicRoundTrip checks that mnemonic decodes under wl and that
// re-encoding the decoded entropy reproduces the same (normalized) phrase.
// Words may be separated by U+0020 or U+3000 in the input.
func VerifyMnemonicRoundTrip(reg *bip39.Registry, mnemonic string, wl *bip39.Wordlist) error {
	entropy, err := reg.MnemonicToEntropyBytes(mnemonic, wl)
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	again, err := reg.EntropyToMnemonic(bip39.RawEntropy(entropy), wl)
	if err != nil {
		return fmt.Errorf("encode failed: %w", err)
	}
	if canonicalPhrase(again) != canonicalPhrase(mnemonic) {
		return fmt.Errorf("round-trip mismatch")
	}
	return nil
}

func verifyEntropy(reg *bip39.Registry, mnemonic string, want []byte, wl *bip39.Wordlist) error {
	got, err := reg.MnemonicToEntropyBytes(mnemonic, wl)
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	if !bytes.Equal(got, want) {
		// Never include entropy in the message.
		return fmt.Errorf("round-trip mismatch: decoded %d bytes, drew %d", len(got), len(want))
	}
	return nil
}

// canonicalPhrase NFKD-normalizes s and joins its fields with single ASCII
// spaces, which makes U+3000- and U+0020-joined phrases comparable.
func canonicalPhrase(s string) string {
	return strings.Join(strings.Fields(norm.NFKD.String(s)), " ")
}

// SplitWords normalizes user input into words: NFKD, any Unicode whitespace
// (including U+3000) as separator, runs collapsed.
func SplitWords(s string) []string {
	return strings.Fields(norm.NFKD.String(s))
}
