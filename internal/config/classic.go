package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/706f6c6c7578/enigma/internal/enigma"
)

// ParseClassic reads a description in the classic text format.
//
// A rotor is a name, a type token and any number of cycle tokens. The type
// token starts with N for a fixed rotor, R for a reflector and anything else
// (conventionally M) for a moving rotor, in which case the rest of the token
// lists its notches.
func ParseClassic(r io.Reader) (*Description, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	var toks []string
	for sc.Scan() {
		toks = append(toks, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}
	if len(toks) < 3 {
		return nil, enigma.Errorf(enigma.KindConfig, "configuration file truncated")
	}

	d := &Description{Alphabet: toks[0]}
	var err error
	if d.Rotors, err = strconv.Atoi(toks[1]); err != nil {
		return nil, enigma.Errorf(enigma.KindConfig, "rotor count %q is not a number", toks[1])
	}
	if d.Pawls, err = strconv.Atoi(toks[2]); err != nil {
		return nil, enigma.Errorf(enigma.KindConfig, "pawl count %q is not a number", toks[2])
	}

	rest := toks[3:]
	for len(rest) > 0 {
		if len(rest) < 2 {
			return nil, enigma.Errorf(enigma.KindConfig, "bad rotor description: %s has no type", rest[0])
		}
		name, tag := rest[0], rest[1]
		if strings.ContainsAny(name, "()") {
			return nil, enigma.Errorf(enigma.KindConfig, "bad rotor description: name %q contains a parenthesis", name)
		}
		if strings.HasPrefix(tag, "(") {
			return nil, enigma.Errorf(enigma.KindConfig, "bad rotor description: %s has no type", name)
		}
		rest = rest[2:]

		var cycles []string
		for len(rest) > 0 && strings.HasPrefix(rest[0], "(") {
			if !strings.HasSuffix(rest[0], ")") {
				return nil, enigma.Errorf(enigma.KindConfig, "bad rotor description: %s: cycle %q is not closed", name, rest[0])
			}
			cycles = append(cycles, rest[0])
			rest = rest[1:]
		}

		w := Wheel{Name: name, Cycles: strings.Join(cycles, " ")}
		switch {
		case strings.HasPrefix(tag, "N"):
			w.Type = TypeFixed
		case strings.HasPrefix(tag, "R"):
			w.Type = TypeReflector
		default:
			w.Type = TypeMoving
			_, size := utf8.DecodeRuneInString(tag)
			w.Notches = tag[size:]
		}
		d.Wheels = append(d.Wheels, w)
	}
	return d, nil
}

