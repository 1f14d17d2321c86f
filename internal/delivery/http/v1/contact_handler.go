package v1

import (
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/metrics"
	"net/http"

	"github.com/gin-gonic/gin"
)

const contactSuccessMessage = "Message sent!"

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate a contact form submission and deliver it to the site owner by email.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	// Configuration is checked before the body is read
	if err := h.contactUC.CheckConfigured(); err != nil {
		metrics.RecordContactSubmission(metrics.OutcomeConfigError)
		c.Error(err)
		return
	}

	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RecordContactSubmission(metrics.OutcomeMalformed)
		c.Error(apperror.New(http.StatusBadRequest, apperror.KindBadRequest, "Invalid request body", err))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, contactSuccessMessage)
}
