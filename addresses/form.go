package addresses

import (
	"regexp"
	"strings"
)

// Form carries the user-supplied address fields.
type Form struct {
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	AddressLine1  string `json:"address_line1"`
	AddressLine2  string `json:"address_line2"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode"`
	Landmark      string `json:"landmark"`
	SaveForFuture bool   `json:"save_for_future"`
}

var (
	phoneRe   = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	pincodeRe = regexp.MustCompile(`^[0-9]{6}$`)
)

// Validate returns per-field error messages; an empty map means the form is
// valid. Phone numbers tolerate spaces and dashes.
func (f *Form) Validate() map[string]string {
	errs := map[string]string{}

	f.FullName = strings.TrimSpace(f.FullName)
	f.Phone = strings.TrimSpace(f.Phone)
	f.AddressLine1 = strings.TrimSpace(f.AddressLine1)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.Pincode = strings.TrimSpace(f.Pincode)

	if f.FullName == "" {
		errs["full_name"] = "This field is required."
	}
	if f.AddressLine1 == "" {
		errs["address_line1"] = "This field is required."
	}
	if f.City == "" {
		errs["city"] = "This field is required."
	}
	if f.State == "" {
		errs["state"] = "This field is required."
	}

	phone := strings.NewReplacer(" ", "", "-", "").Replace(f.Phone)
	if phone == "" {
		errs["phone"] = "This field is required."
	} else if !phoneRe.MatchString(phone) {
		errs["phone"] = "Enter a valid phone number."
	}

	if f.Pincode == "" {
		errs["pincode"] = "This field is required."
	} else if !pincodeRe.MatchString(f.Pincode) {
		errs["pincode"] = "Enter a valid 6-digit pincode."
	}

	return errs
}
