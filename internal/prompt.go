package internal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

// ErrPassphraseMismatch is returned when the confirmation differs from the
// first entry. The message never contains either entry.
var ErrPassphraseMismatch = errors.New("passphrases do not match")

// PromptForPassphrase securely prompts for a BIP-39 passphrase twice and
// verifies they match. If mask is true, input is read in raw mode with '*'
// echo; otherwise it uses the terminal's hidden input (no echo) via
// ReadPassword. Prompts go to stderr so stdout stays clean for the seed.
// An empty passphrase is allowed; BIP-39 treats it as "no passphrase".
func PromptForPassphrase(mask bool) (string, error) {
	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("prompt requires an interactive terminal")
	}

	read := func(prompt string) (string, error) {
		if mask {
			return readMasked(fd, os.Stdin, os.Stderr, prompt)
		}
		fmt.Fprint(os.Stderr, "\r"+prompt)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read passphrase")
		}
		return string(b), nil
	}

	p1, err := read("Enter passphrase: ")
	if err != nil {
		return "", err
	}
	p2, err := read("Re-enter passphrase: ")
	if err != nil {
		return "", err
	}
	if p1 != p2 {
		return "", ErrPassphraseMismatch
	}
	return p1, nil
}

// readMasked reads one line in raw mode, echoing '*' per character, and
// restores the terminal on return or on SIGINT/SIGTERM.
func readMasked(fd int, in io.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, "\r"+prompt)

	oldState, err := term.GetState(fd)
	if err != nil {
		return "", fmt.Errorf("terminal not ready")
	}
	restore := func() { _ = term.Restore(fd, oldState) }

	done := make(chan struct{})
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigc:
			restore()
			os.Exit(130)
		case <-done:
		}
	}()

	if _, err := term.MakeRaw(fd); err != nil {
		signal.Stop(sigc)
		close(done)
		return "", fmt.Errorf("terminal not ready")
	}
	defer func() { restore(); signal.Stop(sigc); close(done) }()

	return readMaskedLine(in, out), nil
}

// readMaskedLine consumes bytes from in until CR/LF or EOF. Backspace and
// DEL erase the last character; other control bytes are ignored. Multi-byte
// UTF-8 sequences are kept intact and echo a single '*'.
func readMaskedLine(in io.Reader, out io.Writer) string {
	var buf []byte
	var stars []int // byte length of each echoed character
	pending := 0    // continuation bytes still expected
	for {
		var b [1]byte
		n, er := in.Read(b[:])
		if er != nil || n == 0 {
			break
		}
		ch := b[0]
		if pending > 0 && ch&0xC0 == 0x80 {
			buf = append(buf, ch)
			stars[len(stars)-1]++
			pending--
			continue
		}
		pending = 0
		if ch == '\r' || ch == '\n' {
			fmt.Fprint(out, "\r\n")
			break
		}
		if ch == 0x7f || ch == '\b' { // backspace/delete
			if len(stars) > 0 {
				buf = buf[:len(buf)-stars[len(stars)-1]]
				stars = stars[:len(stars)-1]
				fmt.Fprint(out, "\b \b")
			}
			continue
		}
		if ch < 0x20 {
			continue
		}
		switch {
		case ch >= 0xF0:
			pending = 3
		case ch >= 0xE0:
			pending = 2
		case ch >= 0xC0:
			pending = 1
		}
		buf = append(buf, ch)
		stars = append(stars, 1)
		fmt.Fprint(out, "*")
	}
	return string(buf)
}
