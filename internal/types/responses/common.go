package responses

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// SubmitFormResponse is returned after a successful form submission.
type SubmitFormResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UploadResponse is returned after a successful image upload.
type UploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}
