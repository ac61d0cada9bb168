package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/folio-backend/internal/metrics"
	"github.com/stemsi/folio-backend/internal/model"
	"github.com/stemsi/folio-backend/internal/response"
	"github.com/stemsi/folio-backend/internal/service"
	"github.com/stemsi/folio-backend/internal/validator"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit godoc
// POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req model.CreateContactRequest
	if err := validator.Bind(c, &req); err != nil {
		metrics.ContactSubmissions.WithLabelValues("invalid").Inc()
		code := response.ErrValidation
		if errors.Is(err, validator.ErrMalformed) {
			code = response.ErrInvalidPayload
		}
		response.FailWithFields(c, http.StatusBadRequest, code, validator.TranslateErrors(err))
		return
	}

	msg, err := h.contactService.Submit(c.Request.Context(), req)
	if err != nil {
		response.FailWithMessage(c, http.StatusInternalServerError, response.ErrInternal, "Failed to process message")
		return
	}

	response.SuccessCreated(c, http.StatusCreated, []*model.ContactMessage{msg})
}
