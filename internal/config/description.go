// Package config loads machine descriptions: the alphabet, the slot and
// pawl counts and the catalog of available rotors.
//
// Two formats are understood. The classic text format is a stream of
// whitespace-separated tokens:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	5 3
//	 I MQ  (AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)
//	 Beta N (ALBEVFCYODJWUGNMQTZSKPR) (HIX)
//	 B R   (AE) (BN) (CK) (DQ) (FU) ...
//
// The YAML format carries the same fields under explicit keys; see
// Description.
package config

import (
	"fmt"

	"github.com/706f6c6c7578/enigma/internal/enigma"
)

// Type is the kind of a wheel.
type Type string

const (
	TypeMoving    Type = "moving"
	TypeFixed     Type = "fixed"
	TypeReflector Type = "reflector"
)

// Wheel describes one rotor of the catalog. Exactly one of Cycles and
// Wiring is used; an empty Cycles with no Wiring is the identity.
type Wheel struct {
	Name    string `yaml:"name"`
	Type    Type   `yaml:"type"`
	Notches string `yaml:"notches,omitempty"`
	Cycles  string `yaml:"cycles,omitempty"`
	Wiring  string `yaml:"wiring,omitempty"`
}

// Description is a complete machine description.
type Description struct {
	Alphabet string  `yaml:"alphabet"`
	Rotors   int     `yaml:"rotors"`
	Pawls    int     `yaml:"pawls"`
	Wheels   []Wheel `yaml:"wheels"`
}

// Validate checks the description without building anything.
func (d *Description) Validate() error {
	if d.Alphabet == "" {
		return enigma.Errorf(enigma.KindConfig, "configuration has no alphabet")
	}
	if d.Rotors <= 1 {
		return enigma.Errorf(enigma.KindConfig, "configuration needs more than one rotor slot, got %d", d.Rotors)
	}
	if d.Pawls < 0 || d.Pawls > d.Rotors {
		return enigma.Errorf(enigma.KindConfig, "pawl count %d is outside [0, %d]", d.Pawls, d.Rotors)
	}
	if len(d.Wheels) == 0 {
		return enigma.Errorf(enigma.KindConfig, "configuration defines no rotors")
	}

	seen := make(map[string]bool, len(d.Wheels))
	for _, w := range d.Wheels {
		if w.Name == "" {
			return enigma.Errorf(enigma.KindConfig, "rotor without a name")
		}
		if seen[w.Name] {
			return enigma.Errorf(enigma.KindConfig, "duplicate rotor %s", w.Name)
		}
		seen[w.Name] = true

		switch w.Type {
		case TypeMoving:
		case TypeFixed, TypeReflector:
			if w.Notches != "" {
				return enigma.Errorf(enigma.KindConfig, "rotor %s: only moving rotors have notches", w.Name)
			}
		default:
			return enigma.Errorf(enigma.KindConfig, "rotor %s: unknown type %q", w.Name, w.Type)
		}
		if w.Cycles != "" && w.Wiring != "" {
			return enigma.Errorf(enigma.KindConfig, "rotor %s: give either cycles or wiring, not both", w.Name)
		}
	}
	return nil
}

// Build validates the description and returns a machine with empty slots.
func (d *Description) Build() (*enigma.Machine, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	alpha, err := enigma.NewAlphabet(d.Alphabet)
	if err != nil {
		return nil, err
	}

	rotors := make([]enigma.Rotor, 0, len(d.Wheels))
	for _, w := range d.Wheels {
		r, err := w.build(alpha)
		if err != nil {
			return nil, fmt.Errorf("rotor %s: %w", w.Name, err)
		}
		rotors = append(rotors, r)
	}

	catalog, err := enigma.NewCatalog(rotors...)
	if err != nil {
		return nil, err
	}
	return enigma.NewMachine(alpha, d.Rotors, d.Pawls, catalog)
}

func (w Wheel) build(alpha *enigma.Alphabet) (enigma.Rotor, error) {
	var (
		perm *enigma.Permutation
		err  error
	)
	if w.Wiring != "" {
		perm, err = enigma.PermutationFromWiring(w.Wiring, alpha)
	} else {
		perm, err = enigma.NewPermutation(w.Cycles, alpha)
	}
	if err != nil {
		return nil, err
	}

	switch w.Type {
	case TypeFixed:
		return enigma.NewFixedRotor(w.Name, perm)
	case TypeReflector:
		return enigma.NewReflector(w.Name, perm)
	default:
		return enigma.NewMovingRotor(w.Name, perm, w.Notches)
	}
}
