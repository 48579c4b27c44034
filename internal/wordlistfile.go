package internal

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"bip39riot/pkg/bip39"
)

// LoadListFile reads a custom wordlist: one word per line, UTF-8, exactly
// 2048 non-empty unique lines. A leading BOM is stripped, CRLF and CR line
// endings are accepted, and each word is trimmed, lowercased and
// NFKD-normalized so it matches normalized mnemonic input.
func LoadListFile(path string) (*bip39.Wordlist, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read list file: %w", err)
	}
	return ParseListFile(b)
}

// ParseListFile applies the LoadListFile rules to already-read bytes.
func ParseListFile(b []byte) (*bip39.Wordlist, error) {
	// Enforce valid UTF-8
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("list file must be valid UTF-8")
	}

	// Strip UTF-8 BOM if present
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		b = b[3:]
	}

	// Normalize newlines to \n
	s := string(b)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	raw := strings.Split(s, "\n")
	lines := make([]string, 0, len(raw))
	for i := range raw {
		w := norm.NFKD.String(strings.ToLower(strings.TrimSpace(raw[i])))
		if w == "" {
			continue // skip empty/whitespace-only lines
		}
		lines = append(lines, w)
	}

	if len(lines) != bip39.WordlistSize {
		return nil, fmt.Errorf("list file must contain exactly %d non-empty lines; got %d", bip39.WordlistSize, len(lines))
	}

	// Report the first duplicate precisely; NewWordlist only says "Invalid wordlist".
	seen := make(map[string]int, len(lines))
	for i, w := range lines {
		if first, exists := seen[w]; exists {
			return nil, fmt.Errorf("list file repeats word %q at logical lines %d and %d", w, first+1, i+1)
		}
		seen[w] = i
	}

	wl, err := bip39.NewWordlist(lines)
	if err != nil {
		return nil, fmt.Errorf("list file: %w", err)
	}
	return wl, nil
}
