package enigma

import (
	"strings"
	"unicode"
)

// DefaultSymbols is the alphabet of the historical machines.
const DefaultSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Alphabet is an ordered set of unique symbols. The K-th symbol has index K.
// An Alphabet is immutable and may be shared freely.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet returns the alphabet made of the runes of chars, in order.
func NewAlphabet(chars string) (*Alphabet, error) {
	if chars == "" {
		return nil, Errorf(KindConfig, "alphabet cannot be empty")
	}

	a := &Alphabet{
		symbols: []rune(chars),
		index:   make(map[rune]int, len(chars)),
	}
	for i, r := range a.symbols {
		if unicode.IsSpace(r) || strings.ContainsRune("()*", r) {
			return nil, Errorf(KindConfig, "alphabet cannot contain %q", r)
		}
		if _, dup := a.index[r]; dup {
			return nil, Errorf(KindConfig, "duplicate character %q in alphabet", r)
		}
		a.index[r] = i
	}
	return a, nil
}

// DefaultAlphabet returns the upper-case latin alphabet.
func DefaultAlphabet() *Alphabet {
	a, err := NewAlphabet(DefaultSymbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// Contains reports whether r is one of the symbols.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// ToChar returns the symbol at index, where 0 <= index < Size().
func (a *Alphabet) ToChar(index int) (rune, error) {
	if index < 0 || index >= len(a.symbols) {
		return 0, Errorf(KindAlphabet, "index %d is out of range [0, %d)", index, len(a.symbols))
	}
	return a.symbols[index], nil
}

// ToInt returns the index of r. The boolean is false when r is not in the
// alphabet, in which case the index must not be used.
func (a *Alphabet) ToInt(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// Index is ToInt for callers that want an error.
func (a *Alphabet) Index(r rune) (int, error) {
	i, ok := a.index[r]
	if !ok {
		return 0, Errorf(KindAlphabet, "character %q is not in the alphabet", r)
	}
	return i, nil
}

func (a *Alphabet) String() string {
	return string(a.symbols)
}

func (a *Alphabet) wrap(v int) int {
	r := v % len(a.symbols)
	if r < 0 {
		r += len(a.symbols)
	}
	return r
}
