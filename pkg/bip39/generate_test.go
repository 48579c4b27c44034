package bip39

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

// fixedRNG returns a copy of b and records the requested size.
func fixedRNG(b []byte, asked *int) RNG {
	return func(size int) ([]byte, error) {
		*asked = size
		out := make([]byte, len(b))
		copy(out, b)
		return out, nil
	}
}

func TestGenerateMnemonic_UsesRNG(t *testing.T) {
	for i, v := range englishVectors {
		raw, _ := hex.DecodeString(v.entropy)
		var asked int
		got, err := GenerateMnemonic(len(raw)*8, fixedRNG(raw, &asked), English)
		if err != nil {
			t.Fatalf("vector %d: GenerateMnemonic() error: %v", i, err)
		}
		if asked != len(raw) {
			t.Errorf("vector %d: rng asked for %d bytes, want %d", i, asked, len(raw))
		}
		if got != v.mnemonic {
			t.Errorf("vector %d: mnemonic = %q, want %q", i, got, v.mnemonic)
		}
	}
}

func TestGenerateMnemonic_Strengths(t *testing.T) {
	tests := []struct {
		strength int
		bytes    int
		words    int
	}{
		{0, 16, 12},
		{128, 16, 12},
		{160, 20, 15},
		{192, 24, 18},
		{224, 28, 21},
		{256, 32, 24},
	}
	for _, tt := range tests {
		var asked int
		rng := func(size int) ([]byte, error) {
			asked = size
			return CryptoRNG(size)
		}
		m, err := GenerateMnemonic(tt.strength, rng, English)
		if err != nil {
			t.Fatalf("strength %d: GenerateMnemonic() error: %v", tt.strength, err)
		}
		if asked != tt.bytes {
			t.Errorf("strength %d: rng asked for %d bytes, want %d", tt.strength, asked, tt.bytes)
		}
		if n := len(strings.Fields(m)); n != tt.words {
			t.Errorf("strength %d: %d words, want %d", tt.strength, n, tt.words)
		}
		if !ValidateMnemonic(m, English) {
			t.Errorf("strength %d: generated mnemonic does not validate", tt.strength)
		}
	}
}

func TestGenerateMnemonic_DefaultRNG(t *testing.T) {
	a, err := GenerateMnemonic(0, nil, English)
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}
	b, err := GenerateMnemonic(0, nil, English)
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}
	if a == b {
		t.Error("two generated mnemonics are identical")
	}
}

func TestGenerateMnemonic_InvalidStrength(t *testing.T) {
	for _, strength := range []int{-32, 33, 96, 100, 288} {
		_, err := GenerateMnemonic(strength, CryptoRNG, English)
		var ee *EntropyError
		if !errors.As(err, &ee) {
			t.Errorf("strength %d: error = %v, want *EntropyError", strength, err)
		}
	}
}

func TestGenerateMnemonic_RNGError(t *testing.T) {
	boom := errors.New("device unplugged")
	_, err := GenerateMnemonic(128, func(int) ([]byte, error) { return nil, boom }, English)
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped rng error", err)
	}
}

func TestGenerateMnemonic_ShortRNGOutput(t *testing.T) {
	var asked int
	_, err := GenerateMnemonic(128, fixedRNG(make([]byte, 3), &asked), English)
	if !errors.Is(err, ErrInvalidEntropy) {
		t.Fatalf("error = %v, want ErrInvalidEntropy", err)
	}
}

func TestGenerateMnemonic_NeedsWordlist(t *testing.T) {
	r := NewRegistry()
	if _, err := r.GenerateMnemonic(128, nil, nil); !errors.Is(err, ErrWordlistRequired) {
		t.Fatalf("error = %v, want ErrWordlistRequired", err)
	}
}

func TestValidateMnemonic(t *testing.T) {
	tests := []struct {
		name     string
		mnemonic string
		want     bool
	}{
		{"valid 12", englishVectors[0].mnemonic, true},
		{"valid 24", englishVectors[len(englishVectors)-1].mnemonic, true},
		{"empty", "", false},
		{"unknown word", "sleep kitten sleep kitten sleep kitten sleep kitten sleep kitten sleep risky", false},
		{"bad checksum", "sleep kitten sleep kitten sleep kitten sleep kitten sleep kitten sleep kitten", false},
		{"too short", "sleep kitten sleep kitten sleep kitten", false},
		{"wrong language", "abaco abaco abaco abaco abaco abaco abaco abaco abaco abaco abaco abete", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateMnemonic(tt.mnemonic, English); got != tt.want {
				t.Errorf("ValidateMnemonic() = %v, want %v", got, tt.want)
			}
		})
	}

	if !ValidateMnemonic("abaco abaco abaco abaco abaco abaco abaco abaco abaco abaco abaco abete", Italian) {
		t.Error("italian zero mnemonic should validate against the italian list")
	}
}

func TestNewEntropy(t *testing.T) {
	for bits := 128; bits <= 256; bits += 32 {
		b, err := NewEntropy(bits)
		if err != nil {
			t.Fatalf("NewEntropy(%d) error: %v", bits, err)
		}
		if len(b) != bits/8 {
			t.Errorf("NewEntropy(%d) len = %d", bits, len(b))
		}
	}
	for _, bits := range []int{0, 96, 130, 288} {
		if _, err := NewEntropy(bits); !errors.Is(err, ErrInvalidEntropy) {
			t.Errorf("NewEntropy(%d) error = %v, want ErrInvalidEntropy", bits, err)
		}
	}
}
