package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourlocalshop/storefront/pkg/errors"
)

func validAddress() Address {
	return Address{
		Street:   "123 Main St",
		City:     "Melbourne",
		State:    "VIC",
		Postcode: "3000",
	}
}

func TestAddressValidate_Valid(t *testing.T) {
	require.NoError(t, validAddress().Validate())
}

func TestAddressValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Address)
		message string
	}{
		{"empty street", func(a *Address) { a.Street = "" }, "street address required"},
		{"whitespace street", func(a *Address) { a.Street = "   " }, "street address required"},
		{"empty city", func(a *Address) { a.City = "" }, "city required"},
		{"empty state", func(a *Address) { a.State = "" }, "state required"},
		{"empty postcode", func(a *Address) { a.Postcode = "" }, "postcode required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := validAddress()
			tt.mutate(&addr)

			err := addr.Validate()
			require.Error(t, err)

			var invalid *errors.ErrInvalidAddress
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.message, invalid.Message)
		})
	}
}

func TestAddressValidate_PostcodeFormat(t *testing.T) {
	bad := []string{"300", "30000", "30a0", "3 00", "-300"}
	for _, postcode := range bad {
		addr := validAddress()
		addr.Postcode = postcode

		err := addr.Validate()
		require.Error(t, err, "postcode %q should be rejected", postcode)

		var invalid *errors.ErrInvalidAddress
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "postcode must be 4 digits", invalid.Message)
	}

	addr := validAddress()
	addr.Postcode = " 3000 " // trimmed before checking
	require.NoError(t, addr.Validate())
}

func TestAddressFormat(t *testing.T) {
	assert.Equal(t, "123 Main St, Melbourne, VIC 3000", validAddress().Format())
}
