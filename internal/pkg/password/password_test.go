//go:build unit

package password_test

import (
	"strings"
	"testing"

	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		plain   string
		wantErr error
	}{
		{name: "six characters", plain: "secret"},
		{name: "multibyte counts runes", plain: "çãéíõú"},
		{name: "too short", plain: "12345", wantErr: password.ErrTooShort},
		{name: "empty", plain: "", wantErr: password.ErrTooShort},
		{name: "past the bcrypt limit", plain: strings.Repeat("a", 73), wantErr: password.ErrTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Validate(tt.plain)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPasswordWithCost("s3nh4-forte", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, password.ComparePassword(hash, "s3nh4-forte"))
	assert.True(t, errs.Is(password.ComparePassword(hash, "outra-senha"), password.ErrMismatch))

	_, err = password.HashPasswordWithCost("123", bcrypt.MinCost)
	assert.ErrorIs(t, err, password.ErrTooShort)
}
