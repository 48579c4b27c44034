package internal

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"bip39riot/internal/log"
	"bip39riot/pkg/bip39"
)

// SelfTestOptions controls RunSelfTest.
type SelfTestOptions struct {
	Registry *bip39.Registry
	Wordlist *bip39.Wordlist // nil: registry default
	RNG      bip39.RNG       // nil: crypto/rand
	Out      io.Writer

	// Pagination: after roughly Height lines, wait for Enter on In ('q' quits).
	Paginate bool
	Height   int
	In       io.Reader

	Sets  []int  // word counts, e.g. []int{12, 24}
	Title string // heading printed once at the top (empty to skip)
}

// stderr receives the pager prompt.
var stderr io.Writer = os.Stderr

// WordCountsAll lists every mnemonic length BIP-39 allows.
var WordCountsAll = []int{12, 15, 18, 21, 24}

// StrengthForWords returns the entropy bits behind a mnemonic of n words.
func StrengthForWords(n int) int {
	return n * 32 / 3
}

// RunSelfTest generates one random mnemonic per entry of opts.Sets, prints
// each set (words and entropy), verifies the exact round-trip, and returns
// the number of failed sets.
func RunSelfTest(opts SelfTestOptions) int {
	out := opts.Out
	failed := 0
	printed := 0

	header := func() {
		if opts.Title != "" {
			fmt.Fprintln(out, Style(opts.Title, Bold, Blue))
			printed++
		}
	}
	header()

	sep := " "
	if wl := opts.Wordlist; wl != nil {
		sep = wl.Separator()
	} else if wl, err := opts.Registry.DefaultWordlist(); err == nil {
		sep = wl.Separator()
	}

	for si, sz := range opts.Sets {
		mnemonic, entropy, err := GenerateVerified(opts.Registry, StrengthForWords(sz), opts.RNG, opts.Wordlist)
		okAll := err == nil
		if err == nil {
			err = VerifyMnemonicRoundTrip(opts.Registry, mnemonic, opts.Wordlist)
			okAll = err == nil
		}
		words := SplitWords(mnemonic)
		if okAll && len(words) != sz {
			okAll = false
			err = fmt.Errorf("got %d words, want %d", len(words), sz)
		}

		// Only print "Set N:" when multiple sets are requested
		if len(opts.Sets) > 1 {
			fmt.Fprintln(out, Style(fmt.Sprintf("Set %d:", si+1), Bold, Purple))
			printed++
		}

		if mnemonic != "" {
			lines := PhraseLines(words, sep)
			fmt.Fprint(out, LabeledBlock("  Words:", lines))
			printed += len(lines)
			fmt.Fprint(out, LabeledBlock("  Entropy:", []string{hex.EncodeToString(entropy)}))
			printed++
		}

		result := "PASSED"
		if !okAll {
			result = "FAILED"
			failed++
			log.SelfTest.Error().Err(err).Int("words", sz).Msg("self-test set failed")
		} else {
			log.SelfTest.Debug().Int("words", sz).Msg("self-test set passed")
		}
		label := fmt.Sprintf("Result: %s — Verified: %d words", result, sz)
		color := Green
		if !okAll {
			color = Red
		}
		fmt.Fprintln(out, Style("  "+label, Bold, color))
		printed++

		if opts.Paginate && printed >= opts.Height-1 && si < len(opts.Sets)-1 {
			if !waitForMore(opts.In) {
				break
			}
			printed = 0
			header()
		}
	}

	// Summary (only when multiple sets)
	if len(opts.Sets) > 1 {
		fmt.Fprintf(out, "%s %d, %s %d\n",
			Style("Total sets:", Bold), len(opts.Sets),
			Style("Failed:", Bold), failed)
	}

	return failed
}

// waitForMore shows the pager prompt and reports whether to continue.
func waitForMore(in io.Reader) bool {
	if in == nil {
		return true
	}
	fmt.Fprint(stderr, "-- more -- (Enter to continue, q to quit) ")
	var buf [1]byte
	_, er := in.Read(buf[:])
	fmt.Fprintln(stderr)
	return !(er == nil && (buf[0] == 'q' || buf[0] == 'Q'))
}

// FormatSetTitle renders the section heading used between self-test runs.
func FormatSetTitle(words int, lang string) string {
	return Style(fmt.Sprintf("== Self-test: %d words (%s) ==", words, strings.ToLower(lang)), Bold)
}
