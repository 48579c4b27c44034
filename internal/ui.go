package internal

import (
	"fmt"
	"strings"
)

// Package internal: UI helpers (exported)
//
// This file provides small, self-contained UI helpers for:
// - ANSI styling (Tokyo Night–inspired colors)
// - Mnemonic layout (long phrases split over two lines, numbered grids)
//
// Color usage
// - Enable or disable color globally via SetColorEnabled(true/false).
// - Wrap text with Style("text", Bold, Blue) to apply codes when enabled.
// - When disabled, Style returns the input unchanged.

// --- ANSI color/style (Tokyo Night–inspired) ---

// Default: colors enabled. Override via SetColorEnabled.
var colorEnabled = true

// ANSI escape codes (exported)
const (
	Reset  = "\x1b[0m"
	Bold   = "\x1b[1m"
	Blue   = "\x1b[38;2;122;162;247m" // Tokyo Night blue
	Cyan   = "\x1b[38;2;42;195;222m"  // Tokyo Night cyan
	Purple = "\x1b[38;2;187;154;247m" // Tokyo Night purple
	Gray   = "\x1b[38;2;136;146;176m" // Dimmed foreground
	Red    = "\x1b[38;2;247;118;142m" // Tokyo Night red
	Green  = "\x1b[38;2;158;206;106m" // Tokyo Night green

	// QR module colors (24-bit ANSI). A half-block cell takes the upper
	// module's color as foreground and the lower one's as background.
	QRDarkFg  = "\x1b[38;2;0;0;0m"
	QRLightFg = "\x1b[38;2;255;255;255m"
	QRDarkBg  = "\x1b[48;2;0;0;0m"
	QRLightBg = "\x1b[48;2;255;255;255m"
)

// SetColorEnabled toggles ANSI styling on or off.
func SetColorEnabled(on bool) {
	colorEnabled = on
}

// ColorEnabled reports whether ANSI styling is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// Style wraps s with the provided ANSI codes when color is enabled.
// When disabled, returns s unchanged.
//
// Example:
//
//	Style("Hello", Bold, Blue)
func Style(s string, codes ...string) string {
	if !colorEnabled {
		return s
	}
	var b strings.Builder
	for _, c := range codes {
		b.WriteString(c)
	}
	b.WriteString(s)
	b.WriteString(Reset)
	return b.String()
}

// Banner returns the styled CLI header.
func Banner(version string) string {
	return Style("bip39riot — BIP-39 mnemonic tool - "+version, Bold, Purple)
}

// --- Mnemonic layout helpers ---

// wordsPerLine is where long phrases wrap.
const wordsPerLine = 12

// PhraseLines splits words into lines of at most 12 words joined by sep, so
// a 24-word phrase prints as two rows of 12.
func PhraseLines(words []string, sep string) []string {
	if len(words) == 0 {
		return nil
	}
	var lines []string
	for start := 0; start < len(words); start += wordsPerLine {
		end := min(start+wordsPerLine, len(words))
		lines = append(lines, strings.Join(words[start:end], sep))
	}
	return lines
}

// LabeledBlock renders lines with label in front of the first line and the
// following lines indented to match, e.g.
//
//	Words:  abandon ... about
//	        zoo ... wrong
func LabeledBlock(label string, lines []string) string {
	pad := strings.Repeat(" ", len(label)+1)
	var b strings.Builder
	for i, l := range lines {
		if i == 0 {
			b.WriteString(Style(label, Bold) + " " + l)
		} else {
			b.WriteString(pad + l)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WordGrid renders words as a numbered grid with cols columns, filled
// column-major so reading down each column follows the phrase order.
func WordGrid(words []string, cols int) string {
	if len(words) == 0 {
		return ""
	}
	if cols <= 0 {
		cols = 1
	}
	rows := (len(words) + cols - 1) / cols

	width := 0
	for _, w := range words {
		width = max(width, len([]rune(w)))
	}

	var b strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := c*rows + r
			if i >= len(words) {
				break
			}
			if c > 0 {
				b.WriteString("  ")
			}
			num := Style(fmt.Sprintf("%2d.", i+1), Gray)
			cell := words[i]
			if c < cols-1 {
				cell += strings.Repeat(" ", width-len([]rune(words[i])))
			}
			b.WriteString(num + " " + cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
