package bip39

import "sync/atomic"

// Registry owns the default wordlist used when a caller passes a nil
// *Wordlist. The default starts unset and changes only through
// SetDefaultWordlist or SetDefault.
//
// Installing a default is atomic with respect to readers, but nothing ties
// a DefaultWordlist read to a later encode or decode. Applications that
// swap the default while other goroutines use it must coordinate that
// themselves, or install once at startup.
type Registry struct {
	def atomic.Pointer[Wordlist]
}

// NewRegistry returns a registry with no default wordlist.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry backs the package-level functions. It has no default
// until one is installed.
var DefaultRegistry = NewRegistry()

// SetDefaultWordlist validates words and installs them as the default.
// It fails with ErrInvalidWordlist unless there are exactly 2048 unique
// entries; the previous default is kept on failure.
func (r *Registry) SetDefaultWordlist(words []string) error {
	w, err := NewWordlist(words)
	if err != nil {
		return err
	}
	r.def.Store(w)
	return nil
}

// SetDefault installs an already validated wordlist, such as one of the
// built-in languages.
func (r *Registry) SetDefault(w *Wordlist) error {
	if w == nil || w.Len() != WordlistSize {
		return ErrInvalidWordlist
	}
	r.def.Store(w)
	return nil
}

// DefaultWordlist returns the installed default or ErrNoDefaultWordlist.
func (r *Registry) DefaultWordlist() (*Wordlist, error) {
	w := r.def.Load()
	if w == nil {
		return nil, ErrNoDefaultWordlist
	}
	return w, nil
}

// resolve picks the explicit wordlist when given, else the default. A zero
// Wordlist carries no words and counts as absent.
func (r *Registry) resolve(w *Wordlist) (*Wordlist, error) {
	if w != nil && w.Len() == WordlistSize {
		return w, nil
	}
	if def := r.def.Load(); def != nil {
		return def, nil
	}
	return nil, ErrWordlistRequired
}

// SetDefaultWordlist installs the default wordlist of DefaultRegistry.
func SetDefaultWordlist(words []string) error {
	return DefaultRegistry.SetDefaultWordlist(words)
}

// GetDefaultWordlist returns the default wordlist of DefaultRegistry.
func GetDefaultWordlist() (*Wordlist, error) {
	return DefaultRegistry.DefaultWordlist()
}
