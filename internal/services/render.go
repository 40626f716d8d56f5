package services

import (
	"fmt"
	"strings"
)

// The renderers below are pure functions over already-sanitized fields.
// There is no template engine and no cached state; every call recomputes the
// full document. logoSrc may be an absolute URL, a data URI, or empty (no
// logo row is emitted when empty).

// RenderSubmitterEmail produces the acknowledgement email sent to the person
// who submitted the form.
func RenderSubmitterEmail(formType string, f SanitizedSubmission, logoSrc string) (subject, html string) {
	switch formType {
	case FormTypeTrial:
		subject = "Your free trial request has been received"
		html = renderLayout(logoSrc, fmt.Sprintf(`
            <h2>Thanks for requesting a trial, %s!</h2>
            <p>We received your request and our team is setting things up. You will hear from us within one business day with your trial access details.</p>
            <p>In the meantime, feel free to reply to this email with any questions.</p>
            <p>Best regards,<br>The Siteforms Team</p>`, f.FirstName))
	default:
		subject = "Thanks for reaching out"
		html = renderLayout(logoSrc, fmt.Sprintf(`
            <h2>Hi %s,</h2>
            <p>Thanks for getting in touch. We received your message and will get back to you as soon as we can, usually within one business day.</p>
            <p>Best regards,<br>The Siteforms Team</p>`, f.FirstName))
	}
	return subject, html
}

// RenderOperatorEmail produces the internal notification email. The trial
// variant adds a Country row.
func RenderOperatorEmail(formType string, f SanitizedSubmission, logoSrc string) (subject, html string) {
	rows := []string{
		detailRow("Name", f.FirstName+" "+f.LastName),
		detailRow("Email", f.Email),
		detailRow("Phone", f.Phone),
		detailRow("Company", f.Company),
		detailRow("Job title", f.JobTitle),
	}

	// Subjects are plain text, so they use the unescaped names; the heading
	// inside the HTML body is escaped separately below.
	switch formType {
	case FormTypeTrial:
		subject = fmt.Sprintf("New trial request from %s %s", f.PlainFirstName, f.PlainLastName)
		rows = append(rows, detailRow("Country", f.Country))
	default:
		subject = fmt.Sprintf("New contact form submission from %s %s", f.PlainFirstName, f.PlainLastName)
	}

	html = renderLayout(logoSrc, fmt.Sprintf(`
            <h2>%s</h2>
            <table class="details" cellpadding="0" cellspacing="0">
%s
            </table>
            <p class="label">Message</p>
            <p class="message">%s</p>`,
		EscapeHTML(subject), strings.Join(rows, "\n"), f.Message))
	return subject, html
}

// renderLayout wraps body markup in the shared branded document.
func renderLayout(logoSrc, body string) string {
	logo := ""
	if logoSrc != "" {
		logo = fmt.Sprintf(`<img src="%s" alt="Siteforms" width="140" style="display:block;margin:0 auto;">`, logoSrc)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #f4f4f4; padding: 20px; text-align: center; }
        .content { padding: 20px; }
        .details td { padding: 6px 12px 6px 0; vertical-align: top; }
        .details td.key { color: #666; white-space: nowrap; }
        .label { color: #666; margin-bottom: 4px; }
        .message { background-color: #f8f8f8; padding: 12px; border-radius: 4px; }
        .footer { text-align: center; padding: 20px; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">%s</div>
        <div class="content">%s
        </div>
        <div class="footer">
            <p>Siteforms &middot; This message was sent in response to a website form submission.</p>
        </div>
    </div>
</body>
</html>`, logo, body)
}

func detailRow(key, value string) string {
	return fmt.Sprintf(`                <tr><td class="key">%s</td><td>%s</td></tr>`, key, value)
}
