package enigma

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlphabet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		chars   string
		wantErr bool
	}{
		{name: "upper case", chars: DefaultSymbols},
		{name: "mixed symbols", chars: "AGHINOQX.,0"},
		{name: "empty", chars: "", wantErr: true},
		{name: "duplicate", chars: "ABCA", wantErr: true},
		{name: "space", chars: "AB C", wantErr: true},
		{name: "parenthesis", chars: "AB(", wantErr: true},
		{name: "marker", chars: "AB*", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, err := NewAlphabet(tt.chars)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len([]rune(tt.chars)), a.Size())
			assert.Equal(t, tt.chars, a.String())
		})
	}
}

func TestAlphabet_RoundTrip(t *testing.T) {
	t.Parallel()
	a := DefaultAlphabet()

	for _, c := range DefaultSymbols {
		i, ok := a.ToInt(c)
		require.True(t, ok)
		got, err := a.ToChar(i)
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	for i := 0; i < a.Size(); i++ {
		c, err := a.ToChar(i)
		require.NoError(t, err)
		got, ok := a.ToInt(c)
		require.True(t, ok)
		assert.Equal(t, i, got)
	}
}

func TestAlphabet_ToCharBounds(t *testing.T) {
	t.Parallel()
	a, err := NewAlphabet("ABC")
	require.NoError(t, err)

	_, err = a.ToChar(3)
	assert.ErrorIs(t, err, ErrAlphabet)
	_, err = a.ToChar(-1)
	assert.ErrorIs(t, err, ErrAlphabet)

	c, err := a.ToChar(2)
	require.NoError(t, err)
	assert.Equal(t, 'C', c)
}

func TestAlphabet_Lookup(t *testing.T) {
	t.Parallel()
	a, err := NewAlphabet("AGHINOQX")
	require.NoError(t, err)

	assert.True(t, a.Contains('Q'))
	assert.False(t, a.Contains('B'))

	_, ok := a.ToInt('B')
	assert.False(t, ok)

	_, err = a.Index('B')
	assert.ErrorIs(t, err, ErrAlphabet)

	i, err := a.Index('X')
	require.NoError(t, err)
	assert.Equal(t, 7, i)
}
