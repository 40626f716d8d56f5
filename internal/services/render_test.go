package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/siteforms/siteforms-api/internal/services"
	"github.com/siteforms/siteforms-api/internal/types/requests"
)

func sanitizedFields() services.SanitizedSubmission {
	return services.SanitizeSubmission(requests.FormSubmission{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "+1 555 0100",
		Message:   "Please call me back",
		Company:   "Acme",
		JobTitle:  "CTO",
		Country:   "Portugal",
	})
}

func TestRenderSubmitterEmail(t *testing.T) {
	tests := []struct {
		formType    string
		wantSubject string
	}{
		{services.FormTypeContact, "Thanks for reaching out"},
		{services.FormTypeTrial, "Your free trial request has been received"},
	}

	for _, tt := range tests {
		t.Run(tt.formType, func(t *testing.T) {
			subject, html := services.RenderSubmitterEmail(tt.formType, sanitizedFields(), "")

			assert.Equal(t, tt.wantSubject, subject)
			assert.Contains(t, html, "Jane")
			assert.Contains(t, html, "<!DOCTYPE html>")
			// No logo row when logoSrc is empty
			assert.NotContains(t, html, "<img")
		})
	}
}

func TestRenderOperatorEmail_ContactOmitsCountry(t *testing.T) {
	subject, html := services.RenderOperatorEmail(services.FormTypeContact, sanitizedFields(), "")

	assert.Equal(t, "New contact form submission from Jane Doe", subject)
	assert.Contains(t, html, "jane@example.com")
	assert.Contains(t, html, "Please call me back")
	assert.NotContains(t, html, "Portugal")
}

func TestRenderOperatorEmail_TrialAddsCountry(t *testing.T) {
	subject, html := services.RenderOperatorEmail(services.FormTypeTrial, sanitizedFields(), "")

	assert.Equal(t, "New trial request from Jane Doe", subject)
	assert.Contains(t, html, "Country")
	assert.Contains(t, html, "Portugal")
}

func TestRenderOperatorEmail_EscapedFieldsStayEscaped(t *testing.T) {
	fields := services.SanitizeSubmission(requests.FormSubmission{
		FirstName: "<script>alert(1)</script>",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "555",
		Message:   "<img src=x onerror=alert(1)>",
	})

	_, html := services.RenderOperatorEmail(services.FormTypeContact, fields, "")

	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<img src=x")
}

func TestRenderOperatorEmail_SubjectStaysPlainText(t *testing.T) {
	fields := services.SanitizeSubmission(requests.FormSubmission{
		FirstName: "Sinéad",
		LastName:  "O'Brien",
		Email:     "sinead@example.com",
		Phone:     "555",
		Message:   "Hello",
	})

	subject, html := services.RenderOperatorEmail(services.FormTypeTrial, fields, "")

	// Subjects are plain text: no HTML entities in the name.
	assert.Equal(t, "New trial request from Sinéad O'Brien", subject)

	// The body heading is HTML, so the apostrophe stays escaped there.
	assert.Contains(t, html, "O&#39;Brien")
	assert.NotContains(t, html, "<h2>New trial request from Sinéad O'Brien</h2>")
}

func TestRenderLayout_LogoSources(t *testing.T) {
	fields := sanitizedFields()

	_, withURL := services.RenderSubmitterEmail(services.FormTypeContact, fields, "https://siteforms.io/assets/logo.png")
	assert.Contains(t, withURL, `src="https://siteforms.io/assets/logo.png"`)

	dataURI := "data:image/png;base64,iVBORw0KGgo="
	_, withData := services.RenderSubmitterEmail(services.FormTypeContact, fields, dataURI)
	assert.Contains(t, withData, `src="`+dataURI+`"`)
}

func TestRender_Recomputes(t *testing.T) {
	// Rendering is pure: identical input yields identical output.
	fields := sanitizedFields()
	_, first := services.RenderOperatorEmail(services.FormTypeTrial, fields, "")
	_, second := services.RenderOperatorEmail(services.FormTypeTrial, fields, "")
	assert.True(t, strings.EqualFold(first, second))
	assert.Equal(t, first, second)
}
