package enigma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotor_Capabilities(t *testing.T) {
	t.Parallel()
	a := DefaultAlphabet()

	fixed, err := NewFixedRotor("Beta", mustPerm(t, "(ALBEVFCYODJWUGNMQTZSKPR) (HIX)", a))
	require.NoError(t, err)
	refl, err := NewReflector("B", mustPerm(t, "(AY) (BR) (CU) (DH) (EQ) (FS) (GL) (IP) (JX) (KN) (MO) (TZ) (VW)", a))
	require.NoError(t, err)
	moving, err := NewMovingRotor("I", mustPerm(t, "(AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)", a), "Q")
	require.NoError(t, err)

	tests := []struct {
		rotor      Rotor
		rotates    bool
		reflecting bool
		str        string
	}{
		{fixed, false, false, "FixedRotor Beta"},
		{refl, false, true, "Reflector B"},
		{moving, true, false, "MovingRotor I"},
	}
	for _, tt := range tests {
		t.Run(tt.rotor.Name(), func(t *testing.T) {
			assert.Equal(t, tt.rotates, tt.rotor.Rotates())
			assert.Equal(t, tt.reflecting, tt.rotor.Reflecting())
			assert.Equal(t, tt.str, tt.rotor.String())
			assert.Equal(t, 26, tt.rotor.Size())
		})
	}

	fixed.Set(3)
	fixed.Advance()
	assert.Equal(t, 3, fixed.Setting())
	assert.False(t, fixed.AtNotch())

	refl.Set(5)
	assert.Equal(t, 0, refl.Setting())
	assert.False(t, refl.AtNotch())
}

func TestNewReflector_RequiresDerangement(t *testing.T) {
	t.Parallel()
	a := DefaultAlphabet()

	_, err := NewReflector("bad", mustPerm(t, "(AY) (B)", a))
	assert.ErrorIs(t, err, ErrConfig)
}

func TestNewReflector_RejectsUnlistedSymbols(t *testing.T) {
	t.Parallel()
	a := DefaultAlphabet()

	p := mustPerm(t, "(AE)", a)
	require.True(t, p.Derangement())
	_, err := NewReflector("partial", p)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestNewMovingRotor_BadNotch(t *testing.T) {
	t.Parallel()
	_, err := NewMovingRotor("I", mustPerm(t, "", DefaultAlphabet()), "q")
	assert.ErrorIs(t, err, ErrConfig)
}

func TestMovingRotor_AdvanceCycles(t *testing.T) {
	t.Parallel()
	a := DefaultAlphabet()
	r, err := NewMovingRotor("III", mustPerm(t, "(ABDHPEJT) (CFLVMZOYQIRWUKXSG) (N)", a), "V")
	require.NoError(t, err)
	assert.Equal(t, "V", r.Notches())

	require.NoError(t, r.SetRune('K'))
	start := r.Setting()
	notches := 0
	for i := 0; i < a.Size(); i++ {
		if r.AtNotch() {
			notches++
		}
		r.Advance()
	}
	assert.Equal(t, start, r.Setting())
	assert.Equal(t, 1, notches)

	r.Set(-1)
	assert.Equal(t, 25, r.Setting())
	r.Advance()
	assert.Equal(t, 0, r.Setting())

	assert.ErrorIs(t, r.SetRune('a'), ErrAlphabet)
}

func TestRotor_Convert(t *testing.T) {
	t.Parallel()
	a := DefaultAlphabet()
	r, err := NewMovingRotor("I", mustPerm(t, "(AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)", a), "Q")
	require.NoError(t, err)

	// At setting 0 the rotor is its permutation.
	assert.Equal(t, 4, r.ConvertForward(0))
	assert.Equal(t, 0, r.ConvertBackward(4))

	// At setting B, contact A meets wiring B->K and leaves at J.
	r.Set(1)
	assert.Equal(t, 9, r.ConvertForward(0))
	assert.Equal(t, 0, r.ConvertBackward(9))

	// A ring setting of B with setting B cancels out.
	r.SetRing(1)
	assert.Equal(t, 4, r.ConvertForward(0))

	for s := 0; s < a.Size(); s++ {
		r.Set(s)
		for i := 0; i < a.Size(); i++ {
			assert.Equal(t, i, r.ConvertBackward(r.ConvertForward(i)))
		}
	}
}
