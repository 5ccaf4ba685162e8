//go:build unit

package contact_test

import (
	"testing"

	"barbershop-booking/internal/domain/contact"
	"barbershop-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhone(t *testing.T) {
	testCases := []struct {
		name          string
		raw           string
		wantDigits    string
		wantFormatted string
		wantErr       error
	}{
		{name: "mobile with mask", raw: "(11) 98765-4321", wantDigits: "11987654321", wantFormatted: "(11) 98765-4321"},
		{name: "landline digits only", raw: "1133334444", wantDigits: "1133334444", wantFormatted: "(11) 3333-4444"},
		{name: "with country code", raw: "+55 11 98765-4321", wantDigits: "5511987654321", wantFormatted: "5511987654321"},
		{name: "nine digits", raw: "119876543", wantErr: contact.ErrInvalidPhone},
		{name: "empty", raw: "", wantErr: contact.ErrInvalidPhone},
		{name: "letters only", raw: "abcdefghijk", wantErr: contact.ErrInvalidPhone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := contact.NewPhone(tc.raw)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.True(t, errs.Is(err, errs.ErrDomainValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantDigits, p.Digits())
			assert.Equal(t, tc.wantFormatted, p.Formatted())
		})
	}
}

func TestEmail(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		e, err := contact.NewEmail("  Owner@Barbearia.COM ")
		require.NoError(t, err)
		assert.Equal(t, "owner@barbearia.com", e.String())
	})

	for _, raw := range []string{"", "no-at-sign", "two@@example.com", "Name <a@b.com>"} {
		t.Run("rejects "+raw, func(t *testing.T) {
			_, err := contact.NewEmail(raw)
			assert.ErrorIs(t, err, contact.ErrInvalidEmail)
		})
	}
}
