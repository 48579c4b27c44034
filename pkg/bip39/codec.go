package bip39

import (
	"encoding/hex"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MnemonicToEntropy decodes mnemonic against wl (or the registry default
// when wl is nil), verifies its checksum and returns the entropy as
// lowercase hex.
//
// The mnemonic is NFKD-normalized and split on single ASCII spaces; the
// ideographic space used by Japanese mnemonics normalizes to an ASCII
// space. Leading, trailing or repeated spaces produce empty words, which
// are not in any wordlist.
func (r *Registry) MnemonicToEntropy(mnemonic string, wl *Wordlist) (string, error) {
	entropy, err := r.MnemonicToEntropyBytes(mnemonic, wl)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(entropy), nil
}

// MnemonicToEntropyBytes is MnemonicToEntropy returning raw bytes.
func (r *Registry) MnemonicToEntropyBytes(mnemonic string, wl *Wordlist) ([]byte, error) {
	wl, err := r.resolve(wl)
	if err != nil {
		return nil, err
	}

	words := strings.Split(norm.NFKD.String(mnemonic), asciiSpace)
	if len(words)%3 != 0 {
		return nil, ErrInvalidMnemonic
	}

	var sb strings.Builder
	sb.Grow(len(words) * bitsPerWord)
	for _, word := range words {
		idx, ok := wl.Index(word)
		if !ok {
			return nil, ErrInvalidMnemonic
		}
		sb.WriteString(lpad(formatIndex(idx), '0', bitsPerWord))
	}
	bin := sb.String()

	// ENT bits are followed by ENT/32 checksum bits: ENT = floor(total/33)*32.
	divider := len(bin) / 33 * 32
	entropyBits, checksumBits := bin[:divider], bin[divider:]

	entropy := binaryToBytes(entropyBits)
	if !validEntropyLen(len(entropy)) {
		return nil, ErrInvalidEntropy
	}
	if deriveChecksumBits(entropy) != checksumBits {
		return nil, ErrInvalidChecksum
	}
	return entropy, nil
}

// EntropyToMnemonic encodes entropy with wl (or the registry default when wl
// is nil). Entropy must be 16 to 32 bytes and a multiple of 4 bytes;
// otherwise an *EntropyError is returned.
func (r *Registry) EntropyToMnemonic(entropy Entropy, wl *Wordlist) (string, error) {
	if entropy == nil {
		return "", newEntropyError(nil)
	}
	b, err := entropy.entropyBytes()
	if err != nil {
		return "", err
	}
	wl, err = r.resolve(wl)
	if err != nil {
		return "", err
	}
	if !validEntropyLen(len(b)) {
		return "", newEntropyError(nil)
	}

	bin := bytesToBinary(b) + deriveChecksumBits(b)
	chunks := chunk(bin, bitsPerWord)
	words := make([]string, len(chunks))
	for i, c := range chunks {
		words[i] = wl.Word(binaryToInt(c))
	}
	return strings.Join(words, wl.Separator()), nil
}

// MnemonicToEntropy decodes mnemonic with DefaultRegistry.
func MnemonicToEntropy(mnemonic string, wl *Wordlist) (string, error) {
	return DefaultRegistry.MnemonicToEntropy(mnemonic, wl)
}

// MnemonicToEntropyBytes decodes mnemonic with DefaultRegistry.
func MnemonicToEntropyBytes(mnemonic string, wl *Wordlist) ([]byte, error) {
	return DefaultRegistry.MnemonicToEntropyBytes(mnemonic, wl)
}

// EntropyToMnemonic encodes entropy with DefaultRegistry.
func EntropyToMnemonic(entropy Entropy, wl *Wordlist) (string, error) {
	return DefaultRegistry.EntropyToMnemonic(entropy, wl)
}
