// Package config holds the command-line settings. Values are read from
// BIP39_* environment variables first and then overridden by flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"bip39riot/internal/log"
	"bip39riot/pkg/bip39"
)

// Config is the resolved CLI configuration.
type Config struct {
	Lang     string `env:"BIP39_LANG" envDefault:"english"`
	ListFile string `env:"BIP39_LIST_FILE"`
	Strength int    `env:"BIP39_STRENGTH" envDefault:"128"`
	LogLevel string `env:"BIP39_LOG_LEVEL" envDefault:"warn"`
	LogJSON  bool   `env:"BIP39_LOG_JSON"`
	NoColor  bool   `env:"BIP39_NO_COLOR"`

	// Flag-only settings. Passphrases are never read from the environment.
	Passphrase string `env:"-"`
	Prompt     bool   `env:"-"`
	Strict     bool   `env:"-"`
	Mask       bool   `env:"-"`
	QR         bool   `env:"-"`
	Pager      bool   `env:"-"`
	Version    bool   `env:"-"`
}

// Default returns the configuration used when neither environment nor flags
// say otherwise.
func Default() Config {
	return Config{
		Lang:     "english",
		Strength: bip39.DefaultStrength,
		LogLevel: "warn",
		Mask:     true,
		Pager:    true,
	}
}

// Load starts from Default and applies the environment.
func Load() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// RegisterFlags binds every setting to fs. The current field values become
// the flag defaults, so flags parsed afterwards override the environment.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Lang, "lang", c.Lang, "Wordlist language (see 'wordlists'); env BIP39_LANG")
	fs.StringVar(&c.ListFile, "list-file", c.ListFile, "Load a custom 2048-word list from file (overrides --lang); env BIP39_LIST_FILE")
	fs.IntVar(&c.Strength, "strength", c.Strength, "Entropy bits for 'generate': 128, 160, 192, 224 or 256; env BIP39_STRENGTH")
	fs.StringVar(&c.Passphrase, "passphrase", c.Passphrase, "Optional BIP-39 passphrase for 'seed' (prefer --prompt)")
	fs.BoolVar(&c.Prompt, "prompt", c.Prompt, "Securely prompt for the passphrase (no echo); overrides --passphrase")
	fs.BoolVar(&c.Strict, "strict-passphrase", c.Strict, "Refuse short or oddly formed passphrases instead of warning")
	fs.BoolVar(&c.Mask, "mask", c.Mask, "With --prompt, show * while typing (use --mask=false to disable)")
	fs.BoolVar(&c.QR, "qr", c.QR, "Also render the result as a terminal QR code")
	fs.BoolVar(&c.NoColor, "no-color", c.NoColor, "Disable colored output; env BIP39_NO_COLOR")
	fs.BoolVar(&c.Pager, "pager", c.Pager, "Paginate self-test output on a TTY; --pager=false to disable")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn, error, off; env BIP39_LOG_LEVEL")
	fs.BoolVar(&c.LogJSON, "log-json", c.LogJSON, "Emit logs as JSON; env BIP39_LOG_JSON")
	fs.BoolVar(&c.Version, "version", c.Version, "Print version and exit")
}

// Validate checks the settings that can be checked without touching files.
func (c Config) Validate() error {
	var errs []error
	if !validStrength(c.Strength) {
		errs = append(errs, fmt.Errorf("strength must be 128..256 in steps of 32, got %d", c.Strength))
	}
	if strings.TrimSpace(c.ListFile) == "" {
		if _, err := bip39.WordlistByName(c.Lang); err != nil {
			errs = append(errs, fmt.Errorf("lang: %w", err))
		}
	}
	if !log.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

func validStrength(bits int) bool {
	return bits%32 == 0 && bits >= bip39.MinEntropyBytes*8 && bits <= bip39.MaxEntropyBytes*8
}
