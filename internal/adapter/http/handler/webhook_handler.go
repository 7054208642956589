package handler

import (
	"errors"
	"io"
	"net/http"

	"inspection-billing/internal/adapter/http/dto"
	"inspection-billing/internal/core/domain"
	"inspection-billing/internal/core/ports"
	"inspection-billing/pkg/apperror"
	"inspection-billing/pkg/response"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives gateway notifications.
type WebhookHandler struct {
	webhookSvc ports.WebhookService
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(webhookSvc ports.WebhookService) *WebhookHandler {
	return &WebhookHandler{webhookSvc: webhookSvc}
}

// Receive handles POST /api/v1/webhooks/:provider. The body is passed on
// byte for byte since signatures cover the raw payload. Duplicates and
// unmatched notifications are acknowledged with 200.
func (h *WebhookHandler) Receive(c *gin.Context) {
	provider, ok := domain.ParseProvider(c.Param("provider"))
	if !ok {
		response.Error(c, apperror.ErrUnknownProvider(c.Param("provider")))
		return
	}

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatus(http.StatusRequestEntityTooLarge)
			return
		}
		response.Error(c, apperror.ErrInvalidWebhookPayload(err))
		return
	}

	result, err := h.webhookSvc.HandleNotification(c.Request.Context(), ports.WebhookRequest{
		Provider: provider,
		Payload:  payload,
		Headers:  c.Request.Header.Clone(),
		Query:    c.Request.URL.Query(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewWebhookAckResponse(result))
}
