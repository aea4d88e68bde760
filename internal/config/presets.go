package config

import (
	"sort"

	"github.com/706f6c6c7578/enigma/internal/enigma"
)

var rotorWirings = map[string]string{
	"I":     "EKMFLGDQVZNTOWYHXUSPAIBRCJ",
	"II":    "AJDKSIRUXBLHWTMCQGZNPYFVOE",
	"III":   "BDFHJLCPRTXVZNYEIWGAKMUSQO",
	"IV":    "ESOVPZJAYQUIRHXLNFTGKDCMWB",
	"V":     "VZBRGITYUPSDNHLXAWMJQOFECK",
	"Beta":  "LEYJVCNIXWPBQMDRTAKZGFUHOS",
	"Gamma": "FSOKANUERHMBTIYCWLQPZXVGJD",
}

var rotorNotches = map[string]string{
	"I":   "Q",
	"II":  "E",
	"III": "V",
	"IV":  "J",
	"V":   "Z",
}

var reflectors = map[string]string{
	"A":     "EJMZALYXVBWFCRQUONTSPIKHGD",
	"B":     "YRUHQSLDPXNGOKMIEBFZCWVJAT",
	"C":     "FVPJIAOYEDRZXWGCTKUQSBNMHL",
	"BThin": "ENKQAUYWJICOPBLMDXZVFTHRGS",
	"CThin": "RDOBJNTKVEHMLFCWZAXGYIPSUQ",
}

type preset struct {
	rotors, pawls int
	moving        []string
	fixed         []string
	reflectors    []string
}

var presets = map[string]preset{
	"m3": {
		rotors: 4, pawls: 3,
		moving:     []string{"I", "II", "III", "IV", "V"},
		reflectors: []string{"A", "B", "C"},
	},
	"m4": {
		rotors: 5, pawls: 3,
		moving:     []string{"I", "II", "III", "IV", "V"},
		fixed:      []string{"Beta", "Gamma"},
		reflectors: []string{"BThin", "CThin"},
	},
}

// Presets returns the names of the built-in machines.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns the description of a built-in machine: "m3" is the
// three-rotor army machine, "m4" the naval machine with a fourth fixed rotor
// and thin reflectors.
func Preset(name string) (*Description, error) {
	p, ok := presets[name]
	if !ok {
		return nil, enigma.Errorf(enigma.KindConfig, "unknown preset %q", name)
	}

	d := &Description{
		Alphabet: enigma.DefaultSymbols,
		Rotors:   p.rotors,
		Pawls:    p.pawls,
	}
	for _, n := range p.moving {
		d.Wheels = append(d.Wheels, Wheel{Name: n, Type: TypeMoving, Notches: rotorNotches[n], Wiring: rotorWirings[n]})
	}
	for _, n := range p.fixed {
		d.Wheels = append(d.Wheels, Wheel{Name: n, Type: TypeFixed, Wiring: rotorWirings[n]})
	}
	for _, n := range p.reflectors {
		d.Wheels = append(d.Wheels, Wheel{Name: n, Type: TypeReflector, Wiring: reflectors[n]})
	}
	return d, nil
}
