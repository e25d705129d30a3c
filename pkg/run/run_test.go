package run

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rutcheck/pkg/rut"
)

// The RUN entry points must never diverge from the RUT ones.
func TestMatchesRUT(t *testing.T) {
	inputs := []string{"12.345.678-5", "12.345.678-0", "9.007.881-k", "1234567-4", "", "invalid", "76123456-0"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, rut.Validate(in), Validate(in))
			assert.Equal(t, rut.Validate(in, rut.WithRange()), Validate(in, WithRange()))
			assert.Equal(t, rut.IsLikelyOrganizational(in), IsLikelyOrganizational(in))

			wantID, wantErr := rut.Parse(in)
			gotID, gotErr := Parse(in)
			assert.Equal(t, wantID, gotID)
			assert.Equal(t, wantErr, gotErr)

			wantF, _ := rut.Format(in)
			gotF, _ := Format(in)
			assert.Equal(t, wantF, gotF)
		})
	}

	assert.Equal(t, rut.ValidateBatch(inputs), ValidateBatch(inputs))
}

func TestErrorKindShared(t *testing.T) {
	_, err := Parse("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, rut.ErrInvalidFormat))
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}

func TestGenerateRandomValidatesUnderBothNames(t *testing.T) {
	s, err := GenerateRandom()
	require.NoError(t, err)
	assert.True(t, Validate(s))
	assert.True(t, rut.Validate(s))
}
