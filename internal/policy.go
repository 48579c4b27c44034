package internal

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// PassphrasePolicy defines how the CLI judges a BIP-39 passphrase before
// deriving a seed. BIP-39 itself accepts any string, so by default problems
// are reported as warnings and the seed is still derived.
//   - Strict turns every warning into an error.
//   - MinRunes overrides the length thresholds from MinRunesForContext.
type PassphrasePolicy struct {
	Strict   bool
	MinRunes int
}

// DefaultPassphrasePolicy warns without refusing.
func DefaultPassphrasePolicy() PassphrasePolicy {
	return PassphrasePolicy{}
}

// ErrWeakPassphrase is wrapped by CheckPassphrase errors under a strict policy.
var ErrWeakPassphrase = errors.New("weak passphrase")

// MinRunesForContext returns the suggested minimum passphrase length for a
// mnemonic of wordCount words: 16 characters up to 128-bit phrases, 20 for
// longer ones.
func MinRunesForContext(wordCount int) int {
	if wordCount > 12 {
		return 20
	}
	return 16
}

// PassphraseWarnings lists the issues found in a non-empty passphrase. The
// messages never quote the passphrase. An empty passphrase yields nothing:
// it is the documented "no passphrase" case.
func PassphraseWarnings(p string, wordCount int, policy PassphrasePolicy) []string {
	if p == "" {
		return nil
	}
	var out []string

	minLen := policy.MinRunes
	if minLen <= 0 {
		minLen = MinRunesForContext(wordCount)
	}
	// Count runes (not bytes) to avoid trivially passing with multi-byte input.
	if n := utf8.RuneCountInString(p); n < minLen {
		out = append(out, fmt.Sprintf("passphrase is short: %d characters, %d+ recommended", n, minLen))
	}
	if strings.TrimSpace(p) != p {
		out = append(out, "passphrase has leading or trailing whitespace, which is part of the seed")
	}
	if strings.IndexFunc(p, unicode.IsControl) >= 0 {
		out = append(out, "passphrase contains control characters")
	}
	if norm.NFKD.String(p) != p {
		out = append(out, "passphrase is NFKD-normalized before use; compatibility-equivalent text gives the same seed")
	}
	return out
}

// CheckPassphrase applies policy. Under a non-strict policy it returns the
// warnings and a nil error; under a strict one the first warning becomes an
// error wrapping ErrWeakPassphrase. The NFKD notice never fails a strict check.
func CheckPassphrase(p string, wordCount int, policy PassphrasePolicy) ([]string, error) {
	warnings := PassphraseWarnings(p, wordCount, policy)
	if !policy.Strict {
		return warnings, nil
	}
	for _, w := range warnings {
		if strings.HasPrefix(w, "passphrase is NFKD") {
			continue
		}
		return warnings, fmt.Errorf("%w: %s", ErrWeakPassphrase, w)
	}
	return warnings, nil
}
