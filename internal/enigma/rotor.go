package enigma

import "fmt"

// Rotor is one wheel of the machine: a permutation together with the
// rotational position it currently sits at.
//
// Callers ask a Rotor what it can do (Rotates, Reflecting, AtNotch) rather
// than inspecting its concrete type.
type Rotor interface {
	Name() string
	Permutation() *Permutation
	Alphabet() *Alphabet
	Size() int

	// Setting is the current position, in [0, Size()).
	Setting() int
	// Set moves the rotor to Wrap(posn).
	Set(posn int)
	// SetRune moves the rotor to the position of r.
	SetRune(r rune) error
	// Ring is the ring setting, the offset of the wiring core against the
	// lettered ring.
	Ring() int
	SetRing(posn int)

	// ConvertForward maps a contact index entering from the right to the
	// contact it leaves on the left.
	ConvertForward(p int) int
	// ConvertBackward is the inverse of ConvertForward.
	ConvertBackward(e int) int

	Rotates() bool
	Reflecting() bool
	AtNotch() bool
	Advance()

	fmt.Stringer
}

type rotor struct {
	name    string
	perm    *Permutation
	setting int
	ring    int
}

func (r *rotor) Name() string              { return r.name }
func (r *rotor) Permutation() *Permutation { return r.perm }
func (r *rotor) Alphabet() *Alphabet       { return r.perm.Alphabet() }
func (r *rotor) Size() int                 { return r.perm.Size() }
func (r *rotor) Setting() int              { return r.setting }
func (r *rotor) Ring() int                 { return r.ring }

func (r *rotor) Set(posn int) {
	r.setting = r.perm.Wrap(posn)
}

func (r *rotor) SetRune(c rune) error {
	i, err := r.perm.Alphabet().Index(c)
	if err != nil {
		return err
	}
	r.setting = i
	return nil
}

func (r *rotor) SetRing(posn int) {
	r.ring = r.perm.Wrap(posn)
}

func (r *rotor) offset() int {
	return r.perm.Wrap(r.setting - r.ring)
}

func (r *rotor) ConvertForward(p int) int {
	off := r.offset()
	return r.perm.Wrap(r.perm.Permute(p+off) - off)
}

func (r *rotor) ConvertBackward(e int) int {
	off := r.offset()
	return r.perm.Wrap(r.perm.Invert(e+off) - off)
}

func (r *rotor) Rotates() bool    { return false }
func (r *rotor) Reflecting() bool { return false }
func (r *rotor) AtNotch() bool    { return false }
func (r *rotor) Advance()         {}

func newRotor(name string, perm *Permutation) (rotor, error) {
	if name == "" {
		return rotor{}, Errorf(KindConfig, "rotor name cannot be empty")
	}
	if perm == nil {
		return rotor{}, Errorf(KindConfig, "rotor %s has no permutation", name)
	}
	return rotor{name: name, perm: perm}, nil
}

// FixedRotor neither rotates nor reflects.
type FixedRotor struct {
	rotor
}

// NewFixedRotor returns a non-moving rotor named name.
func NewFixedRotor(name string, perm *Permutation) (*FixedRotor, error) {
	base, err := newRotor(name, perm)
	if err != nil {
		return nil, err
	}
	return &FixedRotor{rotor: base}, nil
}

func (r *FixedRotor) String() string {
	return "FixedRotor " + r.name
}

// Reflector is the non-moving rotor in the leftmost slot that sends the
// signal back through the stack. It has a single position.
type Reflector struct {
	rotor
}

// NewReflector returns a reflector named name. perm must be a derangement.
func NewReflector(name string, perm *Permutation) (*Reflector, error) {
	base, err := newRotor(name, perm)
	if err != nil {
		return nil, err
	}
	if !perm.Derangement() {
		return nil, Errorf(KindConfig, "reflector %s: permutation %s is not a derangement", name, perm)
	}
	for i := 0; i < perm.Size(); i++ {
		if perm.Permute(i) == i {
			c, _ := perm.Alphabet().ToChar(i)
			return nil, Errorf(KindConfig, "reflector %s: %c maps to itself", name, c)
		}
	}
	return &Reflector{rotor: base}, nil
}

func (r *Reflector) Reflecting() bool { return true }

// Set is a no-op: a reflector always stays at position 0.
func (r *Reflector) Set(int) {}

// SetRune accepts any symbol of the alphabet and leaves the position at 0.
func (r *Reflector) SetRune(c rune) error {
	_, err := r.perm.Alphabet().Index(c)
	return err
}

// SetRing is a no-op for reflectors.
func (r *Reflector) SetRing(int) {}

func (r *Reflector) String() string {
	return "Reflector " + r.name
}

// MovingRotor rotates one position per step and carries notches that let
// it push its left neighbour.
type MovingRotor struct {
	rotor
	notches map[int]bool
}

// NewMovingRotor returns a rotating rotor whose notches are at the
// positions of the characters in notches.
func NewMovingRotor(name string, perm *Permutation, notches string) (*MovingRotor, error) {
	base, err := newRotor(name, perm)
	if err != nil {
		return nil, err
	}
	m := &MovingRotor{rotor: base, notches: make(map[int]bool)}
	for _, c := range notches {
		i, ok := perm.Alphabet().ToInt(c)
		if !ok {
			return nil, Errorf(KindConfig, "rotor %s: notch %q is not in the alphabet", name, c)
		}
		m.notches[i] = true
	}
	return m, nil
}

func (r *MovingRotor) Rotates() bool { return true }

func (r *MovingRotor) AtNotch() bool {
	return r.notches[r.setting]
}

func (r *MovingRotor) Advance() {
	r.Set(r.setting + 1)
}

// Notches returns the notch characters in alphabet order.
func (r *MovingRotor) Notches() string {
	alpha := r.perm.Alphabet()
	out := make([]rune, 0, len(r.notches))
	for i := 0; i < alpha.Size(); i++ {
		if r.notches[i] {
			out = append(out, alpha.symbols[i])
		}
	}
	return string(out)
}

func (r *MovingRotor) String() string {
	return "MovingRotor " + r.name
}

var (
	_ Rotor = (*FixedRotor)(nil)
	_ Rotor = (*Reflector)(nil)
	_ Rotor = (*MovingRotor)(nil)
)
