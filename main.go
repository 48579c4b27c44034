// bip39riot — BIP-39 mnemonic tool
//
// Commands:
// - generate: draw entropy, encode it, verify the round-trip, print the phrase
// - entropy:  mnemonic → hex entropy (checksum verified)
// - mnemonic: hex entropy → mnemonic
// - seed:     mnemonic (+ optional passphrase) → 64-byte hex seed
// - validate: exit 0 for a valid mnemonic, 1 otherwise
// - wordlists, self-test
//
// Notes:
// - List selection via --lang or --list-file; the chosen list becomes the
//   default of bip39.DefaultRegistry for the whole run.
// - Mnemonic words, entropy and seeds never appear in logs or error messages.

package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"golang.org/x/term"

	"bip39riot/internal"
	"bip39riot/internal/config"
	"bip39riot/internal/log"
	"bip39riot/pkg/bip39"
)

var version = "dev"

// Exit codes.
const (
	exitOK      = 0
	exitFailed  = 1 // invalid mnemonic on validate, failed self-test
	exitUsage   = 2 // bad flags, bad input
	exitAborted = 130
)

func usage(w io.Writer, fs *flag.FlagSet) {
	prog := filepath.Base(os.Args[0])

	// Headline
	fmt.Fprintln(w, internal.Banner(version))
	fmt.Fprintln(w)

	// Usage
	fmt.Fprintln(w, internal.Style("Usage:", internal.Bold, internal.Blue))
	fmt.Fprintf(w, "  %s %s\n", prog, internal.Style("[flags] <command> [args]", internal.Cyan))
	fmt.Fprintln(w)

	// Commands
	fmt.Fprintln(w, internal.Style("Commands:", internal.Bold, internal.Blue))
	cmds := [][2]string{
		{"generate", "new mnemonic (--strength, --lang, --qr)"},
		{"entropy <words...>", "mnemonic → hex entropy"},
		{"mnemonic <hex>", "hex entropy → mnemonic"},
		{"seed <words...>", "mnemonic → hex seed (--passphrase or --prompt)"},
		{"validate <words...>", "exit 0 if valid, 1 if not"},
		{"wordlists", "list built-in languages"},
		{"self-test", "randomized round-trip sets for every length"},
	}
	for _, c := range cmds {
		fmt.Fprintf(w, "  %-22s %s\n", internal.Style(c[0], internal.Cyan), internal.Style(c[1], internal.Gray))
	}
	fmt.Fprintln(w)

	// Flags
	fmt.Fprintln(w, internal.Style("Flags:", internal.Bold, internal.Blue))
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)

	// Examples (12-word, valid BIP-39)
	fmt.Fprintln(w, internal.Style("Examples:", internal.Bold, internal.Blue))
	fmt.Fprintf(w, "  %s generate --strength 256\n", prog)
	fmt.Fprintf(w, "  %s entropy letter advice cage absurd amount doctor acoustic avoid letter advice cage above\n", prog)
	fmt.Fprintf(w, "  %s --lang ja mnemonic 00000000000000000000000000000000\n", prog)
	fmt.Fprintf(w, "  %s seed --prompt '<12 words>'\n", prog)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// app carries what every command needs once flags are resolved.
type app struct {
	cfg    config.Config
	reg    *bip39.Registry
	wl     *bip39.Wordlist
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	fs := flag.NewFlagSet("bip39riot", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.RegisterFlags(fs)
	fs.Usage = func() { usage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	rest := fs.Args()
	// Flags may also follow the command name.
	if len(rest) > 0 {
		cmd := rest[0]
		if err := fs.Parse(rest[1:]); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitUsage
		}
		rest = append([]string{cmd}, fs.Args()...)
	}

	if cfg.Version {
		fmt.Fprintln(stdout, version)
		return exitOK
	}

	// Color enablement: default on for TTY unless --no-color
	internal.SetColorEnabled(!cfg.NoColor && isTerminal(stdout))
	log.Init(stderr, cfg.LogLevel, cfg.LogJSON, cfg.NoColor || !isTerminal(stderr))

	if len(rest) == 0 {
		usage(stdout, fs)
		return exitOK
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	wl, err := activeWordlist(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	reg := bip39.DefaultRegistry
	if err := reg.SetDefault(wl); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	log.CLI.Debug().Str("list", wl.Name()).Str("command", rest[0]).Msg("starting")

	a := &app{cfg: cfg, reg: reg, wl: wl, stdin: stdin, stdout: stdout, stderr: stderr}
	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "generate", "gen":
		return a.generate()
	case "entropy":
		return a.entropy(cmdArgs)
	case "mnemonic":
		return a.mnemonic(cmdArgs)
	case "seed":
		return a.seed(ctx, cmdArgs)
	case "validate":
		return a.validate(cmdArgs)
	case "wordlists", "languages":
		return a.wordlists()
	case "self-test", "selftest":
		return a.selfTest()
	default:
		fmt.Fprintf(stderr, "error: unknown command %q\n", cmd)
		return exitUsage
	}
}

// activeWordlist returns the --list-file list if set, else the --lang one.
func activeWordlist(cfg config.Config) (*bip39.Wordlist, error) {
	if strings.TrimSpace(cfg.ListFile) != "" {
		wl, err := internal.LoadListFile(cfg.ListFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load --list-file: %w", err)
		}
		return wl, nil
	}
	return bip39.WordlistByName(cfg.Lang)
}

func (a *app) generate() int {
	done := log.Benchmark(log.CLI, "generate")
	mnemonic, _, err := internal.GenerateVerified(a.reg, a.cfg.Strength, nil, nil)
	done()
	if err != nil {
		fmt.Fprintf(a.stderr, "error: %v\n", err)
		return exitUsage
	}
	words := internal.SplitWords(mnemonic)
	log.CLI.Info().Int("words", len(words)).Int("strength", a.cfg.Strength).Str("list", a.wl.Name()).Msg("generated mnemonic")

	a.printPhrase(mnemonic, words)
	return a.printQR(mnemonic)
}

func (a *app) entropy(args []string) int {
	mnemonic, ok := a.joinMnemonic(args)
	if !ok {
		return exitUsage
	}
	ent, err := a.reg.MnemonicToEntropy(mnemonic, nil)
	if err != nil {
		// Sanitized: the sentinel messages never contain input words.
		fmt.Fprintf(a.stderr, "error: %v\n", err)
		return exitUsage
	}
	log.Codec.Debug().Int("bytes", len(ent)/2).Msg("decoded mnemonic")
	fmt.Fprintln(a.stdout, ent)
	return exitOK
}

func (a *app) mnemonic(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(a.stderr, "error: mnemonic expects exactly one hex entropy argument")
		return exitUsage
	}
	mnemonic, err := a.reg.EntropyToMnemonic(bip39.HexEntropy(strings.TrimSpace(args[0])), nil)
	if err != nil {
		fmt.Fprintf(a.stderr, "error: %v\n", err)
		return exitUsage
	}
	words := internal.SplitWords(mnemonic)
	log.Codec.Debug().Int("words", len(words)).Msg("encoded entropy")

	a.printPhrase(mnemonic, words)
	return a.printQR(mnemonic)
}

func (a *app) seed(ctx context.Context, args []string) int {
	mnemonic, ok := a.joinMnemonic(args)
	if !ok {
		return exitUsage
	}
	if _, err := a.reg.MnemonicToEntropyBytes(mnemonic, nil); err != nil {
		fmt.Fprintf(a.stderr, "error: %v\n", err)
		return exitUsage
	}

	passphrase := a.cfg.Passphrase
	if a.cfg.Prompt {
		p, err := internal.PromptForPassphrase(a.cfg.Mask)
		if err != nil {
			fmt.Fprintf(a.stderr, "error: %v\n", err)
			return exitUsage
		}
		passphrase = p
	}

	policy := internal.DefaultPassphrasePolicy()
	policy.Strict = a.cfg.Strict
	warnings, err := internal.CheckPassphrase(passphrase, len(internal.SplitWords(mnemonic)), policy)
	for _, w := range warnings {
		fmt.Fprintln(a.stderr, internal.Style("warning: "+w, internal.Gray))
	}
	if err != nil {
		fmt.Fprintf(a.stderr, "error: %v\n", err)
		return exitUsage
	}

	done := log.Benchmark(log.Codec, "seed")
	res := <-bip39.MnemonicToSeed(ctx, mnemonic, passphrase)
	done()
	if res.Err != nil {
		fmt.Fprintf(a.stderr, "error: %v\n", res.Err)
		return exitAborted
	}
	log.Codec.Info().Bool("passphrase", passphrase != "").Msg("derived seed")
	fmt.Fprintln(a.stdout, hex.EncodeToString(res.Seed))
	return exitOK
}

func (a *app) validate(args []string) int {
	mnemonic, ok := a.joinMnemonic(args)
	if !ok {
		return exitUsage
	}
	if _, err := a.reg.MnemonicToEntropyBytes(mnemonic, nil); err != nil {
		fmt.Fprintln(a.stdout, internal.Style("invalid: "+err.Error(), internal.Red))
		log.Codec.Debug().Err(err).Msg("validation failed")
		return exitFailed
	}
	fmt.Fprintln(a.stdout, internal.Style("valid", internal.Green))
	return exitOK
}

func (a *app) wordlists() int {
	for _, name := range bip39.Languages() {
		wl, err := bip39.WordlistByName(name)
		if err != nil {
			continue
		}
		marker := "  "
		if wl == a.wl {
			marker = internal.Style("* ", internal.Bold, internal.Purple)
		}
		fmt.Fprintf(a.stdout, "%s%-20s %s\n", marker, name, internal.Style(wl.Word(0)+" … "+wl.Word(bip39.WordlistSize-1), internal.Gray))
	}
	if a.wl.Name() == "custom" {
		fmt.Fprintf(a.stdout, "%s%-20s %s\n", internal.Style("* ", internal.Bold, internal.Purple), "custom", internal.Style(a.cfg.ListFile, internal.Gray))
	}
	return exitOK
}

func (a *app) selfTest() int {
	// Paginate self-test output when both ends are a terminal
	paginate := a.cfg.Pager && isTerminal(a.stdout) && isTerminal(a.stdin)
	height := 24
	if f, ok := a.stdout.(*os.File); ok {
		if _, h, err := term.GetSize(int(f.Fd())); err == nil && h > 0 {
			height = h
		}
	}

	totalFailed := 0
	for _, n := range []int{12, 24} {
		fmt.Fprintln(a.stdout, internal.FormatSetTitle(n, a.wl.Name()))
		totalFailed += internal.RunSelfTest(internal.SelfTestOptions{
			Registry: a.reg,
			Out:      a.stdout,
			In:       a.stdin,
			Paginate: paginate,
			Height:   height,
			Sets:     []int{n},
		})
	}
	fmt.Fprintln(a.stdout, internal.Style("== Self-test: all lengths ==", internal.Bold))
	totalFailed += internal.RunSelfTest(internal.SelfTestOptions{
		Registry: a.reg,
		Out:      a.stdout,
		In:       a.stdin,
		Paginate: paginate,
		Height:   height,
		Sets:     internal.WordCountsAll,
		Title:    "Self-test (12–24-word sets)",
	})

	log.SelfTest.Info().Int("failed", totalFailed).Msg("self-test finished")
	if totalFailed > 0 {
		return exitFailed
	}
	return exitOK
}

// joinMnemonic accepts the phrase as one quoted argument or as separate
// words and rebuilds it with single spaces.
func (a *app) joinMnemonic(args []string) (string, bool) {
	words := internal.SplitWords(strings.Join(args, " "))
	if len(words) == 0 {
		fmt.Fprintln(a.stderr, "error: no mnemonic words given")
		return "", false
	}
	return strings.Join(words, " "), true
}

// printPhrase writes the phrase on one line when piped; on a terminal long
// phrases are split over two lines and followed by a numbered grid.
func (a *app) printPhrase(mnemonic string, words []string) {
	if !isTerminal(a.stdout) {
		fmt.Fprintln(a.stdout, mnemonic)
		return
	}
	fmt.Fprint(a.stdout, internal.LabeledBlock("Phrase:", internal.PhraseLines(words, a.wl.Separator())))
	fmt.Fprintln(a.stdout)
	fmt.Fprint(a.stdout, internal.WordGrid(words, 3))
}

func (a *app) printQR(text string) int {
	if !a.cfg.QR {
		return exitOK
	}
	q, err := internal.RenderQR(text)
	if err != nil {
		fmt.Fprintf(a.stderr, "error: %v\n", err)
		return exitUsage
	}
	fmt.Fprintln(a.stdout)
	fmt.Fprint(a.stdout, q)
	return exitOK
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
