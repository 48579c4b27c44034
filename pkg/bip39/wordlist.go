package bip39

import (
	"math/bits"
)

// WordlistSize is the number of entries every BIP-39 wordlist carries.
const WordlistSize = 2048

// bitsPerWord is the number of bits each word encodes (11 for 2048 words).
var bitsPerWord = bits.Len(WordlistSize - 1)

// japaneseFirstWord is the first entry of the Japanese wordlist. A wordlist
// starting with it has its words joined with an ideographic space.
const japaneseFirstWord = "あいこくしん"

const (
	asciiSpace       = " "
	ideographicSpace = "\u3000"
)

// Wordlist is an immutable, validated list of exactly WordlistSize unique
// words. The position of a word is its 11-bit value in a mnemonic.
type Wordlist struct {
	name  string
	words []string
	index map[string]int
}

// NewWordlist copies words into a Wordlist. It fails with ErrInvalidWordlist
// unless there are exactly WordlistSize entries and none repeats.
func NewWordlist(words []string) (*Wordlist, error) {
	return newWordlist("custom", words)
}

func newWordlist(name string, words []string) (*Wordlist, error) {
	if len(words) != WordlistSize {
		return nil, ErrInvalidWordlist
	}
	w := &Wordlist{
		name:  name,
		words: make([]string, len(words)),
		index: make(map[string]int, len(words)),
	}
	copy(w.words, words)
	for i, word := range w.words {
		if _, dup := w.index[word]; dup {
			return nil, ErrInvalidWordlist
		}
		w.index[word] = i
	}
	return w, nil
}

// mustWordlist is used for the built-in lists, which are checked at init.
func mustWordlist(name string, words []string) *Wordlist {
	w, err := newWordlist(name, words)
	if err != nil {
		panic("bip39: built-in wordlist " + name + " is invalid")
	}
	return w
}

// Name returns the language name for built-in lists and "custom" otherwise.
func (w *Wordlist) Name() string { return w.name }

// Len always returns WordlistSize.
func (w *Wordlist) Len() int { return len(w.words) }

// Word returns the entry at index i. It panics when i is out of range.
func (w *Wordlist) Word(i int) string { return w.words[i] }

// Index returns the position of word in the list.
func (w *Wordlist) Index(word string) (int, bool) {
	i, ok := w.index[word]
	return i, ok
}

// Words returns a copy of the entries.
func (w *Wordlist) Words() []string {
	out := make([]string, len(w.words))
	copy(out, w.words)
	return out
}

// Separator returns the string placed between words of a mnemonic built
// from this list. Selection compares the first entry against the first
// Japanese word, so any list that begins with it is joined the Japanese way.
func (w *Wordlist) Separator() string {
	if w.words[0] == japaneseFirstWord {
		return ideographicSpace
	}
	return asciiSpace
}
