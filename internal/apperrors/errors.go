// Package apperrors defines the error taxonomy shared across the API.
// Callers distinguish failure classes with errors.As rather than by
// matching message strings.
package apperrors

import "fmt"

// ConfigurationError indicates a missing or invalid environment value.
// It is fatal: the process must not serve traffic without valid config.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Key, e.Reason)
}

// ValidationError indicates a form submission failed validation before any
// network call was attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Reason)
	}
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Reason)
}

// DeliveryError indicates the transactional email provider rejected a send
// or returned a malformed response. StatusCode and ProviderMessage carry
// whatever the provider reported; StatusCode is 0 when the request never
// completed.
type DeliveryError struct {
	StatusCode      int
	ProviderMessage string
}

func (e *DeliveryError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("email delivery failed: %s", e.ProviderMessage)
	}
	return fmt.Sprintf("email delivery failed with status %d: %s", e.StatusCode, e.ProviderMessage)
}

// UploadError indicates an image upload could not be processed. Op names the
// step that failed (read, fetch, write).
type UploadError struct {
	Op  string
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed during %s: %v", e.Op, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
