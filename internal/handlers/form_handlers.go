package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siteforms/siteforms-api/internal/apperrors"
	"github.com/siteforms/siteforms-api/internal/types/requests"
	"github.com/siteforms/siteforms-api/internal/types/responses"
)

// FormProcessor handles one validated form submission end to end.
type FormProcessor interface {
	ProcessSubmission(ctx context.Context, sub requests.FormSubmission, formType string) error
}

// FormHandler exposes the form submission endpoint.
type FormHandler struct {
	processor FormProcessor
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(processor FormProcessor) *FormHandler {
	return &FormHandler{processor: processor}
}

// SubmitForm godoc
// @Summary Submit a contact or trial form
// @Description Validates the submission and sends the acknowledgement and operator notification emails
// @Tags forms
// @Accept json
// @Produce json
// @Param request body requests.SubmitFormRequest true "Form submission"
// @Success 200 {object} responses.SubmitFormResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /forms/submit [post]
func (h *FormHandler) SubmitForm(c *gin.Context) {
	var req requests.SubmitFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.processor.ProcessSubmission(c.Request.Context(), req.FormData, req.FormType); err != nil {
		var validationErr *apperrors.ValidationError
		var deliveryErr *apperrors.DeliveryError

		switch {
		case errors.As(err, &validationErr):
			sendError(c, http.StatusBadRequest, "Invalid form submission", err)
		case errors.As(err, &deliveryErr):
			sendError(c, http.StatusBadGateway, "Failed to deliver email", err)
		default:
			sendError(c, http.StatusInternalServerError, "Failed to process form submission", err)
		}
		return
	}

	sendSuccess(c, http.StatusOK, responses.SubmitFormResponse{
		Success: true,
		Message: "Form submitted successfully",
	})
}
