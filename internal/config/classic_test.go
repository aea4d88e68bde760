package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/706f6c6c7578/enigma/internal/enigma"
)

const defaultConf = `ABCDEFGHIJKLMNOPQRSTUVWXYZ
 5 3
 I MQ      (AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)
 II ME     (FIXVYOMW) (CDKLHUP) (ESZ) (BJ) (GR) (NT) (A) (Q)
 III MV    (ABDHPEJT) (CFLVMZOYQIRWUKXSG) (N)
 IV MJ     (AEPLIYWCOXMRFZBSTGJQNH) (DV) (KU)
 V MZ      (AVOLDRWFIUQ)(BZKSMNHYC) (EGTJPX)
 Beta N    (ALBEVFCYODJWUGNMQTZSKPR) (HIX)
 Gamma N   (AFNIRLBSQWVXGUZDKMTPCOYJHE)
 B R       (AE) (BN) (CK) (DQ) (FU) (GY) (HW) (IJ) (LO) (MP)
           (RX) (SZ) (TV)
 C R       (AR) (BD) (CO) (EJ) (FN) (GT) (HK) (IV) (LM) (PW)
           (QZ) (SX) (UY)
`

func TestParseClassic(t *testing.T) {
	t.Parallel()

	d, err := ParseClassic(strings.NewReader(defaultConf))
	require.NoError(t, err)

	assert.Equal(t, enigma.DefaultSymbols, d.Alphabet)
	assert.Equal(t, 5, d.Rotors)
	assert.Equal(t, 3, d.Pawls)
	require.Len(t, d.Wheels, 9)

	assert.Equal(t, Wheel{Name: "I", Type: TypeMoving, Notches: "Q",
		Cycles: "(AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)"}, d.Wheels[0])
	assert.Equal(t, "(AVOLDRWFIUQ)(BZKSMNHYC) (EGTJPX)", d.Wheels[4].Cycles)
	assert.Equal(t, TypeFixed, d.Wheels[5].Type)
	assert.Equal(t, Wheel{Name: "B", Type: TypeReflector,
		Cycles: "(AE) (BN) (CK) (DQ) (FU) (GY) (HW) (IJ) (LO) (MP) (RX) (SZ) (TV)"}, d.Wheels[7])

	m, err := d.Build()
	require.NoError(t, err)
	assert.Equal(t, 5, m.NumRotors())
	assert.Equal(t, 9, m.Catalog().Len())
}

func TestParseClassic_MovingWithoutNotch(t *testing.T) {
	t.Parallel()

	d, err := ParseClassic(strings.NewReader("ABCD 2 1 R R (AB) (CD) X M (ABCD)"))
	require.NoError(t, err)
	require.Len(t, d.Wheels, 2)
	assert.Equal(t, Wheel{Name: "X", Type: TypeMoving, Cycles: "(ABCD)"}, d.Wheels[1])

	d, err = ParseClassic(strings.NewReader("ABCD 2 1 R R (AB) (CD) X QAC (ABCD)"))
	require.NoError(t, err)
	assert.Equal(t, "AC", d.Wheels[1].Notches)
}

func TestParseClassic_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		conf string
	}{
		{"empty", ""},
		{"truncated header", "ABC 3"},
		{"rotor count", "ABC x 1 R R (AB)"},
		{"pawl count", "ABC 3 y R R (AB)"},
		{"rotor without type", "ABC 3 1 R"},
		{"type missing before cycles", "ABC 3 1 R (AB)"},
		{"name with parenthesis", "ABC 3 1 R R (AB) X(Y) N"},
		{"unclosed cycle", "ABC 3 1 R R (A B)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseClassic(strings.NewReader(tt.conf))
			assert.ErrorIs(t, err, enigma.ErrConfig)
		})
	}
}
