package enigma

import (
	"strings"
	"unicode"
)

// Permutation is a permutation of the indices of an Alphabet, written in
// cycle notation. Symbols that appear in no cycle map to themselves.
//
// A Permutation is immutable once built.
type Permutation struct {
	alphabet *Alphabet
	cycles   [][]int
	forward  []int
	backward []int
}

// NewPermutation parses cycles, a string of the form "(cccc) (cc) ...",
// over alpha. Whitespace is ignored and empty groups are skipped.
func NewPermutation(cycles string, alpha *Alphabet) (*Permutation, error) {
	groups, err := splitCycles(cycles)
	if err != nil {
		return nil, err
	}

	p := newIdentity(alpha)
	seen := make(map[int]bool, alpha.Size())
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		cycle := make([]int, 0, len(group))
		for _, r := range group {
			i, ok := alpha.ToInt(r)
			if !ok {
				return nil, Errorf(KindConfig, "character %q in cycle (%s) is not in the alphabet", r, string(group))
			}
			if seen[i] {
				return nil, Errorf(KindConfig, "character %q appears more than once in %q", r, cycles)
			}
			seen[i] = true
			cycle = append(cycle, i)
		}
		p.addCycle(cycle)
	}
	return p, nil
}

// PermutationFromWiring builds the permutation that sends the K-th symbol of
// alpha to the K-th rune of wiring. Fixed points are kept as one-symbol
// cycles so that Derangement reflects them.
func PermutationFromWiring(wiring string, alpha *Alphabet) (*Permutation, error) {
	runes := []rune(wiring)
	if len(runes) != alpha.Size() {
		return nil, Errorf(KindConfig, "wiring %q has %d characters, alphabet has %d", wiring, len(runes), alpha.Size())
	}

	image := make([]int, len(runes))
	used := make([]bool, len(runes))
	for i, r := range runes {
		j, ok := alpha.ToInt(r)
		if !ok {
			return nil, Errorf(KindConfig, "character %q in wiring %q is not in the alphabet", r, wiring)
		}
		if used[j] {
			return nil, Errorf(KindConfig, "character %q appears more than once in wiring %q", r, wiring)
		}
		used[j] = true
		image[i] = j
	}

	p := newIdentity(alpha)
	visited := make([]bool, len(image))
	for start := range image {
		if visited[start] {
			continue
		}
		var cycle []int
		for i := start; !visited[i]; i = image[i] {
			visited[i] = true
			cycle = append(cycle, i)
		}
		p.addCycle(cycle)
	}
	return p, nil
}

func newIdentity(alpha *Alphabet) *Permutation {
	n := alpha.Size()
	p := &Permutation{
		alphabet: alpha,
		forward:  make([]int, n),
		backward: make([]int, n),
	}
	for i := 0; i < n; i++ {
		p.forward[i] = i
		p.backward[i] = i
	}
	return p
}

// addCycle records cycle, whose members must not be in any existing cycle.
func (p *Permutation) addCycle(cycle []int) {
	for k, from := range cycle {
		to := cycle[(k+1)%len(cycle)]
		p.forward[from] = to
		p.backward[to] = from
	}
	p.cycles = append(p.cycles, cycle)
}

func splitCycles(s string) ([][]rune, error) {
	var (
		groups [][]rune
		cur    []rune
		open   bool
	)
	for _, r := range s {
		switch {
		case r == '(':
			if open {
				return nil, Errorf(KindConfig, "nested '(' in cycles %q", s)
			}
			open = true
			cur = []rune{}
		case r == ')':
			if !open {
				return nil, Errorf(KindConfig, "unbalanced ')' in cycles %q", s)
			}
			open = false
			groups = append(groups, cur)
		case unicode.IsSpace(r):
		default:
			if !open {
				return nil, Errorf(KindConfig, "character %q outside of a cycle in %q", r, s)
			}
			cur = append(cur, r)
		}
	}
	if open {
		return nil, Errorf(KindConfig, "unterminated cycle in %q", s)
	}
	return groups, nil
}

// Size returns the size of the alphabet permuted.
func (p *Permutation) Size() int {
	return p.alphabet.Size()
}

// Alphabet returns the alphabet the permutation was built over.
func (p *Permutation) Alphabet() *Alphabet {
	return p.alphabet
}

// Wrap returns v modulo Size(), in [0, Size()) even for negative v.
func (p *Permutation) Wrap(v int) int {
	r := v % p.Size()
	if r < 0 {
		r += p.Size()
	}
	return r
}

// Permute applies the permutation to Wrap(v).
func (p *Permutation) Permute(v int) int {
	return p.forward[p.Wrap(v)]
}

// Invert applies the inverse permutation to Wrap(v).
func (p *Permutation) Invert(v int) int {
	return p.backward[p.Wrap(v)]
}

// PermuteRune applies the permutation to a symbol of the alphabet.
func (p *Permutation) PermuteRune(r rune) (rune, error) {
	i, err := p.alphabet.Index(r)
	if err != nil {
		return 0, err
	}
	return p.alphabet.symbols[p.forward[i]], nil
}

// InvertRune applies the inverse permutation to a symbol of the alphabet.
func (p *Permutation) InvertRune(r rune) (rune, error) {
	i, err := p.alphabet.Index(r)
	if err != nil {
		return 0, err
	}
	return p.alphabet.symbols[p.backward[i]], nil
}

// Derangement reports whether every cycle has at least two members.
// A permutation with no cycles at all is vacuously a derangement.
func (p *Permutation) Derangement() bool {
	for _, c := range p.cycles {
		if len(c) < 2 {
			return false
		}
	}
	return true
}

// String returns the permutation in cycle notation.
func (p *Permutation) String() string {
	var b strings.Builder
	for k, c := range p.cycles {
		if k > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('(')
		for _, i := range c {
			b.WriteRune(p.alphabet.symbols[i])
		}
		b.WriteByte(')')
	}
	return b.String()
}
