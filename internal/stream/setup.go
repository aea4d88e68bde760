// Package stream drives a machine over a text stream of setup lines and
// message lines and formats the converted text.
package stream

import (
	"strings"

	"github.com/706f6c6c7578/enigma/internal/enigma"
)

// Marker starts a setup line.
const Marker = "*"

// Setup is a parsed setup line:
//
//	* B Beta III IV I AXLE [RINGS] [(HQ) (EX) ...]
type Setup struct {
	Rotors    []string
	Setting   string
	Rings     string
	Plugboard string
}

// IsSetup reports whether line is a setup line.
func IsSetup(line string) bool {
	return strings.HasPrefix(line, Marker)
}

// ParseSetup parses a setup line for a machine with numRotors slots.
// A token after the setting that does not start a cycle is the ring
// setting; the remaining tokens are the plugboard cycles.
func ParseSetup(line string, numRotors int) (Setup, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != Marker {
		return Setup{}, enigma.Errorf(enigma.KindSetup, "setup line %q must start with %q", line, Marker)
	}
	if len(fields) < numRotors+2 {
		return Setup{}, enigma.Errorf(enigma.KindSetup, "setup line %q needs %d rotor names and a setting", line, numRotors)
	}

	s := Setup{
		Rotors:  fields[1 : numRotors+1],
		Setting: fields[numRotors+1],
	}
	rest := fields[numRotors+2:]
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "(") {
		s.Rings = rest[0]
		rest = rest[1:]
	}
	s.Plugboard = strings.Join(rest, " ")
	return s, nil
}

// Apply configures m: rotors, setting, rings and plugboard. A setup without
// a plugboard clears the previous one.
func (s Setup) Apply(m *enigma.Machine) error {
	if err := m.InsertRotors(s.Rotors...); err != nil {
		return err
	}
	if err := m.SetRotors(s.Setting); err != nil {
		return err
	}
	if s.Rings != "" {
		if err := m.SetRings(s.Rings); err != nil {
			return err
		}
	}

	if s.Plugboard == "" {
		m.SetPlugboard(nil)
		return nil
	}
	pb, err := enigma.NewPermutation(s.Plugboard, m.Alphabet())
	if err != nil {
		return err
	}
	m.SetPlugboard(pb)
	return nil
}
