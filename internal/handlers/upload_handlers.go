package handlers

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siteforms/siteforms-api/internal/types/requests"
	"github.com/siteforms/siteforms-api/internal/types/responses"
)

// ImageStore persists an uploaded or fetched image and returns its public
// path.
type ImageStore interface {
	SaveFile(ctx context.Context, fileHeader *multipart.FileHeader) (string, error)
	SaveFromURL(ctx context.Context, imageURL string) (string, error)
}

// UploadHandler exposes the image upload endpoints.
type UploadHandler struct {
	store ImageStore
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(store ImageStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// UploadImage godoc
// @Summary Upload an image file
// @Description Accepts a multipart image upload and stores it on disk
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} responses.UploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /uploads/image [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Missing image file", err)
		return
	}

	publicPath, err := h.store.SaveFile(c.Request.Context(), fileHeader)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to store image", err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.UploadResponse{
		Success: true,
		URL:     publicPath,
	})
}

// UploadImageFromURL godoc
// @Summary Upload an image from a remote URL
// @Description Fetches the remote image and stores it on disk
// @Tags uploads
// @Accept json
// @Produce json
// @Param request body requests.UploadImageURLRequest true "Image URL"
// @Success 200 {object} responses.UploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /uploads/image-url [post]
func (h *UploadHandler) UploadImageFromURL(c *gin.Context) {
	var req requests.UploadImageURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Missing image URL", err)
		return
	}

	publicPath, err := h.store.SaveFromURL(c.Request.Context(), req.ImageURL)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to store image from URL", err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.UploadResponse{
		Success: true,
		URL:     publicPath,
	})
}
