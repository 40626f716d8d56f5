package services

import (
	"strings"

	"github.com/siteforms/siteforms-api/internal/types/requests"
)

// htmlEscaper maps the five HTML-reserved characters to entities. This is
// the only control between user input and the markup interpolated into
// outgoing emails, so every field must pass through it before rendering.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes &, <, >, " and ' into HTML entities. All other
// characters pass through unchanged; an empty input yields an empty string.
func EscapeHTML(s string) string {
	if s == "" {
		return ""
	}
	return htmlEscaper.Replace(s)
}

// SanitizedSubmission holds the escaped form fields, ready for template
// interpolation. Optional fields default to "N/A". The rendering functions
// only ever accept this type, so unescaped input cannot reach the markup.
// PlainFirstName and PlainLastName carry the unescaped names for plain-text
// contexts such as subject lines; they must never be interpolated into HTML.
type SanitizedSubmission struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Message   string
	Company   string
	JobTitle  string
	Country   string

	PlainFirstName string
	PlainLastName  string
}

// SanitizeSubmission escapes every user-supplied field and fills optional
// blanks with "N/A".
func SanitizeSubmission(sub requests.FormSubmission) SanitizedSubmission {
	return SanitizedSubmission{
		FirstName: EscapeHTML(sub.FirstName),
		LastName:  EscapeHTML(sub.LastName),
		Email:     EscapeHTML(sub.Email),
		Phone:     EscapeHTML(sub.Phone),
		Message:   EscapeHTML(sub.Message),
		Company:   escapeOrDefault(sub.Company),
		JobTitle:  escapeOrDefault(sub.JobTitle),
		Country:   escapeOrDefault(sub.Country),

		PlainFirstName: sub.FirstName,
		PlainLastName:  sub.LastName,
	}
}

func escapeOrDefault(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return EscapeHTML(s)
}
