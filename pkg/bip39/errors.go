package bip39

import "errors"

// Sentinel errors. Messages match the ones produced by the other BIP-39
// libraries wallets interoperate with, so they are safe to surface verbatim.
// Use errors.Is to test for them.
var (
	// ErrWordlistRequired means no wordlist was passed and the registry has no default.
	ErrWordlistRequired = errors.New("A wordlist is required but a default could not be found.\n" +
		"Please pass a 2048 word array explicitly.")

	// ErrInvalidMnemonic covers a bad word count or a word missing from the wordlist.
	ErrInvalidMnemonic = errors.New("Invalid mnemonic")

	// ErrInvalidEntropy covers entropy outside 16..32 bytes, not a multiple of
	// 4 bytes, or a requested strength that is not a multiple of 32 bits.
	ErrInvalidEntropy = errors.New("Invalid entropy")

	// ErrInvalidChecksum means the mnemonic is well formed but its checksum
	// bits do not match the decoded entropy.
	ErrInvalidChecksum = errors.New("Invalid mnemonic checksum")

	// ErrInvalidWordlist means a candidate wordlist is not 2048 unique entries.
	ErrInvalidWordlist = errors.New("Invalid wordlist")

	// ErrNoDefaultWordlist is returned when reading a default that was never installed.
	ErrNoDefaultWordlist = errors.New("No Default Wordlist set")

	// ErrUnknownLanguage is returned by WordlistByName.
	ErrUnknownLanguage = errors.New("unknown wordlist language")
)

// EntropyError is the error returned for unusable entropy on the encode
// path (EntropyToMnemonic, GenerateMnemonic). It prints like
// ErrInvalidEntropy and unwraps to it, but can be told apart from the
// decode-path failure with errors.As.
type EntropyError struct {
	Cause error // optional underlying error, e.g. a hex decode failure
}

func (e *EntropyError) Error() string {
	return ErrInvalidEntropy.Error()
}

func (e *EntropyError) Unwrap() error {
	return ErrInvalidEntropy
}

func newEntropyError(cause error) error {
	return &EntropyError{Cause: cause}
}
