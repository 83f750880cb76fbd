package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the form field names clients send
var FieldLabels = map[string]string{
	"FullName":               "full_name",
	"DateOfBirth":            "dob",
	"ContactNumber":          "contact_number",
	"ContactAddress":         "contact_address",
	"EducationQualification": "education_qualification",
	"GraduationYear":         "graduation_year",
	"YearsOfExperience":      "years_of_experience",
	"SkillSet":               "skill_set",
	"Resume":                 "resume",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.StructField())
	param := e.Param()

	switch e.Tag() {
	case "required":
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("%s: must not be empty", label)
		}
		return fmt.Sprintf("%s: field required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, param)
		}
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("%s: must have at least %s item(s)", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)

	case "gte":
		return fmt.Sprintf("%s: must be greater than or equal to %s", label, param)

	case "lte":
		return fmt.Sprintf("%s: must be less than or equal to %s", label, param)

	case "phone_digits":
		return fmt.Sprintf("%s: Contact number must have at least %d digits", label, MinPhoneDigits)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: validation failed (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the client-facing label for a field
// Slice elements keep their index: SkillSet[2] -> skill_set[2].
func getFieldLabel(fieldName string) string {
	name, index, hasIndex := strings.Cut(fieldName, "[")
	label, ok := FieldLabels[name]
	if !ok {
		return fieldName
	}
	if hasIndex {
		return label + "[" + index
	}
	return label
}
