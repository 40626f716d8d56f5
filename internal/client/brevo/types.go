package brevo

// Contact represents a sender, recipient, or reply-to in the API payload.
type Contact struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// sendEmailRequest is the JSON body for POST /v3/smtp/email.
type sendEmailRequest struct {
	Sender      Contact   `json:"sender"`
	To          []Contact `json:"to"`
	ReplyTo     *Contact  `json:"replyTo,omitempty"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"htmlContent"`
	Cc          []Contact `json:"cc,omitempty"`
}

// sendEmailResponse is the success body returned by the API.
type sendEmailResponse struct {
	MessageID string `json:"messageId"`
}

// ErrorResponse is the error body returned on non-2xx responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
