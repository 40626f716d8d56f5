package services

import (
	"strings"

	"github.com/siteforms/siteforms-api/internal/apperrors"
	"github.com/siteforms/siteforms-api/internal/helpers"
	"github.com/siteforms/siteforms-api/internal/types/requests"
)

// Recognized form types.
const (
	FormTypeContact = "contact"
	FormTypeTrial   = "trial"
)

// IsValidFormType reports whether formType is one of the two recognized
// values.
func IsValidFormType(formType string) bool {
	return formType == FormTypeContact || formType == FormTypeTrial
}

// ValidateSubmission checks a submission against the declared form type and
// fails fast with a ValidationError on the first problem found. It performs
// no I/O; a rejection here guarantees no network call was attempted.
func ValidateSubmission(sub requests.FormSubmission, formType string) error {
	if !IsValidFormType(formType) {
		return &apperrors.ValidationError{Field: "formType", Reason: "must be \"contact\" or \"trial\""}
	}

	required := []struct {
		name  string
		value string
	}{
		{"firstName", sub.FirstName},
		{"lastName", sub.LastName},
		{"email", sub.Email},
		{"phone", sub.Phone},
		{"message", sub.Message},
	}

	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return &apperrors.ValidationError{Field: field.name, Reason: "is required"}
		}
	}

	if !helpers.IsValidEmail(sub.Email) {
		return &apperrors.ValidationError{Field: "email", Reason: "is not a valid email address"}
	}

	return nil
}
