// Package bip39 implements BIP-0039 mnemonic phrases: checksummed
// conversion between entropy and word sequences, mnemonic generation and
// validation, and PBKDF2 seed derivation.
//
// Encoding and decoding take an optional *Wordlist. When it is nil the
// default wordlist of a Registry is used; the package-level functions use
// DefaultRegistry, which starts without a default:
//
//	if err := bip39.DefaultRegistry.SetDefault(bip39.English); err != nil {
//		return err
//	}
//	phrase, err := bip39.GenerateMnemonic(256, nil, nil)
//	...
//	seed := bip39.MnemonicToSeedSync(phrase, passphrase)
//
// Built-in wordlists are available for nine languages (see Languages).
// Mnemonics built from the Japanese list are joined with U+3000.
package bip39
