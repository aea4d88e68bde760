package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/706f6c6c7578/enigma/internal/enigma"
)

func TestPresets(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"m3", "m4"}, Presets())

	_, err := Preset("m5")
	assert.ErrorIs(t, err, enigma.ErrConfig)
}

func TestPreset_M3(t *testing.T) {
	t.Parallel()

	d, err := Preset("m3")
	require.NoError(t, err)
	m, err := d.Build()
	require.NoError(t, err)
	assert.Equal(t, 4, m.NumRotors())
	assert.Equal(t, 3, m.NumPawls())

	require.NoError(t, m.InsertRotors("B", "I", "II", "III"))
	require.NoError(t, m.SetRotors("AAA"))
	got, err := m.ConvertMessage("HELLOWORLD")
	require.NoError(t, err)
	assert.Equal(t, "ILBDAAMTAZ", got)
}

func TestPreset_M4(t *testing.T) {
	t.Parallel()

	d, err := Preset("m4")
	require.NoError(t, err)
	m, err := d.Build()
	require.NoError(t, err)

	// A thin reflector with Beta at A behaves like reflector B.
	require.NoError(t, m.InsertRotors("BThin", "Beta", "I", "II", "III"))
	require.NoError(t, m.SetRotors("AAAA"))
	got, err := m.ConvertMessage("AAAAA")
	require.NoError(t, err)
	assert.Equal(t, "BDZGO", got)

	assert.ErrorIs(t, m.InsertRotors("B", "Beta", "I", "II", "III"), enigma.ErrRotor)
}
