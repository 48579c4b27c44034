package bip39

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// Built-in wordlists, one per language published with BIP-39. The word data
// comes from github.com/tyler-smith/go-bip39/wordlists, which verifies each
// list against the CRC32 of the upstream text file when it is loaded.
var (
	English            = mustWordlist("english", wordlists.English)
	Japanese           = mustWordlist("japanese", wordlists.Japanese)
	Spanish            = mustWordlist("spanish", wordlists.Spanish)
	French             = mustWordlist("french", wordlists.French)
	Italian            = mustWordlist("italian", wordlists.Italian)
	Czech              = mustWordlist("czech", wordlists.Czech)
	Korean             = mustWordlist("korean", wordlists.Korean)
	ChineseSimplified  = mustWordlist("chinese_simplified", wordlists.ChineseSimplified)
	ChineseTraditional = mustWordlist("chinese_traditional", wordlists.ChineseTraditional)
)

var builtins = map[string]*Wordlist{
	English.Name():            English,
	Japanese.Name():           Japanese,
	Spanish.Name():            Spanish,
	French.Name():             French,
	Italian.Name():            Italian,
	Czech.Name():              Czech,
	Korean.Name():             Korean,
	ChineseSimplified.Name():  ChineseSimplified,
	ChineseTraditional.Name(): ChineseTraditional,
}

// Short aliases kept for callers used to the two-letter names.
var aliases = map[string]string{
	"en": "english",
	"ja": "japanese",
}

// Languages returns the names of the built-in wordlists, sorted.
func Languages() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WordlistByName resolves a built-in wordlist. Matching ignores case and
// treats '-' and ' ' like '_', so "Chinese-Simplified" finds
// ChineseSimplified. "EN" and "JA" are accepted as aliases.
func WordlistByName(name string) (*Wordlist, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if full, ok := aliases[key]; ok {
		key = full
	}
	if w, ok := builtins[key]; ok {
		return w, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
}
