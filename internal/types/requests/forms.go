package requests

// FormSubmission carries the user-supplied fields of a contact or trial
// form. It exists only for the duration of one request; nothing is persisted.
type FormSubmission struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	Company   string `json:"company,omitempty"`
	JobTitle  string `json:"jobTitle,omitempty"`
	Country   string `json:"country,omitempty"`
}

// SubmitFormRequest is the body of POST /api/v1/forms/submit.
type SubmitFormRequest struct {
	FormData FormSubmission `json:"formData" binding:"required"`
	FormType string         `json:"formType" binding:"required"`
}
