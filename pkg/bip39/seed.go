package bip39

import (
	"context"
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	// SeedSize is the length of a derived seed in bytes (512 bits).
	SeedSize = 64

	seedIterations = 2048
	saltPrefix     = "mnemonic"
)

// MnemonicToSeedSync derives the 64-byte BIP-39 seed from mnemonic and an
// optional password using PBKDF2-HMAC-SHA512 with 2048 iterations. Both
// inputs are NFKD-normalized; the salt is "mnemonic" followed by the
// password. The mnemonic is not validated, so any text yields a seed.
func MnemonicToSeedSync(mnemonic, password string) []byte {
	m := []byte(norm.NFKD.String(mnemonic))
	salt := []byte(saltPrefix + norm.NFKD.String(password))
	return pbkdf2.Key(m, salt, seedIterations, SeedSize, sha512.New)
}

// SeedResult is delivered by MnemonicToSeed.
type SeedResult struct {
	Seed []byte
	Err  error
}

// MnemonicToSeed runs MnemonicToSeedSync on its own goroutine. The returned
// channel receives exactly one result and is then closed. If ctx ends first
// the result carries ctx.Err() and no seed; the derivation itself is not
// interrupted.
func MnemonicToSeed(ctx context.Context, mnemonic, password string) <-chan SeedResult {
	out := make(chan SeedResult, 1)
	done := make(chan []byte, 1)
	go func() {
		done <- MnemonicToSeedSync(mnemonic, password)
	}()
	go func() {
		defer close(out)
		select {
		case seed := <-done:
			out <- SeedResult{Seed: seed}
		case <-ctx.Done():
			out <- SeedResult{Err: ctx.Err()}
		}
	}()
	return out
}

// MnemonicToSeedWithErrorChecking validates mnemonic against wl (or the
// default of DefaultRegistry) before deriving its seed.
func MnemonicToSeedWithErrorChecking(mnemonic, password string, wl *Wordlist) ([]byte, error) {
	if _, err := MnemonicToEntropyBytes(mnemonic, wl); err != nil {
		return nil, err
	}
	return MnemonicToSeedSync(mnemonic, password), nil
}
