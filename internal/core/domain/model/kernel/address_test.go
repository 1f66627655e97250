package kernel_test

import (
	"testing"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPincode(t *testing.T, value string) kernel.Pincode {
	t.Helper()
	pin, err := kernel.NewPincode(value)
	require.NoError(t, err)
	return pin
}

func TestNewAddress_Valid(t *testing.T) {
	pin := mustPincode(t, "560001")

	addr, err := kernel.NewAddress("12 MG Road", "Bengaluru", "Karnataka", pin)

	require.NoError(t, err)
	require.NoError(t, addr.Validate())
	assert.Equal(t, "12 MG Road", addr.Line1())
	assert.Equal(t, "Bengaluru", addr.City())
	assert.Equal(t, "Karnataka", addr.State())
	assert.True(t, pin.IsEqual(addr.Pincode()))
}

func TestNewAddress_MissingFieldsAreNamedIndividually(t *testing.T) {
	pin := mustPincode(t, "560001")

	_, err := kernel.NewAddress("", "", "Karnataka", pin)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "address line1")
	assert.Contains(t, err.Error(), "address city")
	assert.NotContains(t, err.Error(), "address state")
}

func TestNewAddress_InvalidPincode(t *testing.T) {
	var pin kernel.Pincode

	_, err := kernel.NewAddress("12 MG Road", "Bengaluru", "Karnataka", pin)

	require.Error(t, err)
}

func TestAddress_Validate_ZeroValue(t *testing.T) {
	var addr kernel.Address

	require.Error(t, addr.Validate())
}
