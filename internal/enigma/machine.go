// Package enigma implements a configurable rotor cipher machine: an
// alphabet, permutations in cycle notation, fixed, moving and reflecting
// rotors, and the machine that steps them and threads each character
// through the plugboard and the rotor stack.
//
// A Machine and the rotors of its catalog carry mutable settings and are not
// safe for concurrent use.
package enigma

import (
	"strings"
	"unicode"
)

// Machine is a rotor machine with a fixed number of slots. Slot 0 holds the
// reflector; the rightmost NumPawls slots hold moving rotors.
type Machine struct {
	alphabet  *Alphabet
	catalog   *Catalog
	pawls     int
	slots     []int
	plugboard *Permutation
}

// NewMachine returns a machine over alpha with numRotors slots, of which the
// rightmost numPawls rotate, drawing its rotors from catalog.
func NewMachine(alpha *Alphabet, numRotors, numPawls int, catalog *Catalog) (*Machine, error) {
	if alpha == nil {
		return nil, Errorf(KindConfig, "machine needs an alphabet")
	}
	if numRotors <= 1 {
		return nil, Errorf(KindConfig, "machine needs more than one rotor slot, got %d", numRotors)
	}
	if numPawls < 0 || numPawls > numRotors {
		return nil, Errorf(KindConfig, "pawl count %d is outside [0, %d]", numPawls, numRotors)
	}
	if catalog == nil || catalog.Len() == 0 {
		return nil, Errorf(KindConfig, "machine needs at least one available rotor")
	}
	if catalog.Rotor(0).Alphabet() != alpha {
		return nil, Errorf(KindConfig, "rotors use a different alphabet than the machine")
	}

	m := &Machine{
		alphabet: alpha,
		catalog:  catalog,
		pawls:    numPawls,
		slots:    make([]int, numRotors),
	}
	for i := range m.slots {
		m.slots[i] = -1
	}
	return m, nil
}

// NumRotors returns the number of rotor slots.
func (m *Machine) NumRotors() int {
	return len(m.slots)
}

// NumPawls returns the number of pawls, and thus of moving rotors.
func (m *Machine) NumPawls() int {
	return m.pawls
}

func (m *Machine) Alphabet() *Alphabet {
	return m.alphabet
}

func (m *Machine) Catalog() *Catalog {
	return m.catalog
}

// HasRotor reports whether the catalog has a rotor called name.
func (m *Machine) HasRotor(name string) bool {
	_, ok := m.catalog.Lookup(name)
	return ok
}

// Ready reports whether every slot holds a rotor.
func (m *Machine) Ready() bool {
	for _, h := range m.slots {
		if h < 0 {
			return false
		}
	}
	return true
}

// Rotor returns the rotor in slot i, or nil if the slot is empty.
func (m *Machine) Rotor(i int) Rotor {
	if i < 0 || i >= len(m.slots) || m.slots[i] < 0 {
		return nil
	}
	return m.catalog.Rotor(m.slots[i])
}

// InsertRotors fills the slots, leftmost first, with the named rotors and
// resets each to setting 0 and ring 0. names[0] is the reflector.
func (m *Machine) InsertRotors(names ...string) error {
	if len(names) != len(m.slots) {
		return Errorf(KindRotor, "expected %d rotors, got %d", len(m.slots), len(names))
	}

	firstMoving := len(m.slots) - m.pawls
	handles := make([]int, len(names))
	used := make(map[int]bool, len(names))
	for i, name := range names {
		h, ok := m.catalog.Lookup(name)
		if !ok {
			return Errorf(KindRotor, "unknown rotor %s", name)
		}
		if used[h] {
			return Errorf(KindRotor, "rotor %s is used more than once", name)
		}
		used[h] = true

		r := m.catalog.Rotor(h)
		switch {
		case i == 0 && !r.Reflecting():
			return Errorf(KindRotor, "rotor %s in slot 0 is not a reflector", name)
		case i > 0 && r.Reflecting():
			return Errorf(KindRotor, "reflector %s must be in slot 0, not slot %d", name, i)
		case i >= firstMoving && !r.Rotates():
			return Errorf(KindRotor, "rotor %s in slot %d does not rotate", name, i)
		case i < firstMoving && r.Rotates():
			return Errorf(KindRotor, "rotor %s in slot %d must not rotate", name, i)
		}
		handles[i] = h
	}

	copy(m.slots, handles)
	for _, h := range m.slots {
		r := m.catalog.Rotor(h)
		r.Set(0)
		r.SetRing(0)
	}
	return nil
}

// SetRotors sets slots 1..NumRotors()-1 from setting, leftmost first.
// The reflector is never set.
func (m *Machine) SetRotors(setting string) error {
	positions, err := m.positions("setting", setting)
	if err != nil {
		return err
	}
	for i, p := range positions {
		m.Rotor(i + 1).Set(p)
	}
	return nil
}

// SetRings sets the ring of slots 1..NumRotors()-1 from rings, leftmost
// first.
func (m *Machine) SetRings(rings string) error {
	positions, err := m.positions("ring setting", rings)
	if err != nil {
		return err
	}
	for i, p := range positions {
		m.Rotor(i + 1).SetRing(p)
	}
	return nil
}

func (m *Machine) positions(what, s string) ([]int, error) {
	if !m.Ready() {
		return nil, Errorf(KindSetup, "rotors must be inserted before the %s is applied", what)
	}
	runes := []rune(s)
	if len(runes) != len(m.slots)-1 {
		return nil, Errorf(KindSetting, "%s %q has %d characters, expected %d", what, s, len(runes), len(m.slots)-1)
	}
	out := make([]int, len(runes))
	for i, c := range runes {
		p, ok := m.alphabet.ToInt(c)
		if !ok {
			return nil, Errorf(KindSetting, "%s %q: character %q is not in the alphabet", what, s, c)
		}
		out[i] = p
	}
	return out, nil
}

// Settings returns the current positions of slots 1..NumRotors()-1 as
// alphabet characters.
func (m *Machine) Settings() string {
	var b strings.Builder
	for i := 1; i < len(m.slots); i++ {
		if r := m.Rotor(i); r != nil {
			b.WriteRune(m.alphabet.symbols[r.Setting()])
		}
	}
	return b.String()
}

// SetPlugboard replaces the plugboard. A nil plugboard removes it.
func (m *Machine) SetPlugboard(p *Permutation) {
	m.plugboard = p
}

func (m *Machine) Plugboard() *Permutation {
	return m.plugboard
}

// step advances the rotors for one key press. Which rotors move is decided
// from the settings before any of them moves, and each moves at most once.
func (m *Machine) step() {
	n := len(m.slots)
	advance := make([]bool, n)
	advance[n-1] = true
	for i := n - m.pawls + 1; i < n; i++ {
		if m.Rotor(i).AtNotch() {
			advance[i] = true
			advance[i-1] = true
		}
	}
	for i, ok := range advance {
		if ok {
			m.Rotor(i).Advance()
		}
	}
}

// Convert advances the machine and returns the encoding of the character
// with index c. It panics unless all slots are filled; check Ready first.
func (m *Machine) Convert(c int) int {
	if !m.Ready() {
		panic("enigma: Convert called before all rotor slots were filled")
	}
	m.step()

	v := m.alphabet.wrap(c)
	if m.plugboard != nil {
		v = m.plugboard.Permute(v)
	}
	for i := len(m.slots) - 1; i >= 0; i-- {
		v = m.Rotor(i).ConvertForward(v)
	}
	for i := 1; i < len(m.slots); i++ {
		v = m.Rotor(i).ConvertBackward(v)
	}
	if m.plugboard != nil {
		v = m.plugboard.Invert(v)
	}
	return v
}

// ConvertMessage encodes msg after trimming it and removing its spaces.
// Rotor settings carry over from one call to the next. Every character is
// checked against the alphabet before the rotors move.
func (m *Machine) ConvertMessage(msg string) (string, error) {
	if !m.Ready() {
		return "", Errorf(KindSetup, "rotors must be inserted before converting")
	}

	msg = strings.Map(func(r rune) rune {
		if r == ' ' {
			return -1
		}
		return r
	}, strings.TrimFunc(msg, unicode.IsSpace))

	in := make([]int, 0, len(msg))
	for _, r := range msg {
		i, ok := m.alphabet.ToInt(r)
		if !ok {
			return "", Errorf(KindAlphabet, "character %q is not in the alphabet", r)
		}
		in = append(in, i)
	}

	out := make([]rune, len(in))
	for k, i := range in {
		out[k] = m.alphabet.symbols[m.Convert(i)]
	}
	return string(out), nil
}
