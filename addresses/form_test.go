package addresses

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validForm() Form {
	return Form{
		FullName:     "Asha Rao",
		Phone:        "+91 98765 43210",
		AddressLine1: "12 MG Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		Pincode:      "560001",
	}
}

func TestValidateAcceptsCompleteForm(t *testing.T) {
	form := validForm()
	assert.Empty(t, form.Validate())

	// Optional fields stay optional
	form.AddressLine2 = ""
	form.Landmark = ""
	assert.Empty(t, form.Validate())
}

func TestValidateRequiredFields(t *testing.T) {
	form := Form{}
	errs := form.Validate()

	for _, field := range []string{"full_name", "phone", "address_line1", "city", "state", "pincode"} {
		assert.Contains(t, errs, field)
	}
}

func TestValidatePhone(t *testing.T) {
	form := validForm()

	form.Phone = "not-a-phone"
	assert.Contains(t, form.Validate(), "phone")

	form.Phone = "12345"
	assert.Contains(t, form.Validate(), "phone")

	// Spaces and dashes are tolerated
	form.Phone = "98765-43210"
	assert.NotContains(t, form.Validate(), "phone")
}

func TestValidatePincode(t *testing.T) {
	form := validForm()

	form.Pincode = "5600"
	assert.Contains(t, form.Validate(), "pincode")

	form.Pincode = "56000a"
	assert.Contains(t, form.Validate(), "pincode")

	form.Pincode = "110001"
	assert.NotContains(t, form.Validate(), "pincode")
}

func TestValidateTrimsWhitespace(t *testing.T) {
	form := validForm()
	form.City = "  Bengaluru  "
	assert.Empty(t, form.Validate())
	assert.Equal(t, "Bengaluru", form.City)
}
