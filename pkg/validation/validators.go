package validation

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

// MinPhoneDigits is the least number of digits a contact number must carry.
const MinPhoneDigits = 5

// New returns a validator with the custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("phone_digits", PhoneDigits)
}

// PhoneDigits validates that a contact number holds at least MinPhoneDigits digits.
// Other characters are ignored; the stored value keeps its original formatting.
func PhoneDigits(fl validator.FieldLevel) bool {
	return HasMinPhoneDigits(fl.Field().String())
}

func HasMinPhoneDigits(s string) bool {
	digits := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= MinPhoneDigits
}
