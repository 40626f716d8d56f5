package requests

// UploadImageURLRequest is the body of POST /api/v1/uploads/image-url.
type UploadImageURLRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
}
