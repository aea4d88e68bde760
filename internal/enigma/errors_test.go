package enigma

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading: %w", Errorf(KindRotor, "rotor %s not found", "IX"))
	assert.ErrorIs(t, err, ErrRotor)
	assert.NotErrorIs(t, err, ErrConfig)

	var typedNil *Error
	assert.False(t, errors.Is(err, typedNil))
	assert.False(t, Errorf(KindConfig, "x").Is(typedNil))
}
