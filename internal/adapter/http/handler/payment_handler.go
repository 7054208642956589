package handler

import (
	"inspection-billing/internal/adapter/http/dto"
	"inspection-billing/internal/adapter/http/middleware"
	"inspection-billing/internal/core/ports"
	"inspection-billing/pkg/apperror"
	"inspection-billing/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles payment intent endpoints.
type PaymentHandler struct {
	paymentSvc   ports.PaymentService
	reconcileSvc ports.ReconcileService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService, reconcileSvc ports.ReconcileService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc, reconcileSvc: reconcileSvc}
}

// CreatePayment handles POST /api/v1/inspections/:inspection_id/payments.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	inspectionID, requesterID, ok := inspectionAndRequester(c)
	if !ok {
		return
	}

	answer, err := h.paymentSvc.CreatePaymentForInspection(c.Request.Context(), inspectionID, requesterID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewPaymentResponse(answer))
}

// GetLatestPayment handles GET /api/v1/inspections/:inspection_id/payments/latest.
func (h *PaymentHandler) GetLatestPayment(c *gin.Context) {
	inspectionID, requesterID, ok := inspectionAndRequester(c)
	if !ok {
		return
	}

	answer, err := h.paymentSvc.GetLatestPayment(c.Request.Context(), inspectionID, requesterID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewPaymentResponse(answer))
}

// Reconcile handles POST /api/v1/payments/:intent_id/reconcile.
func (h *PaymentHandler) Reconcile(c *gin.Context) {
	requesterID, ok := middleware.RequesterID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	var uri dto.IntentURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation("intent_id must be a UUID"))
		return
	}

	answer, err := h.reconcileSvc.ReconcileAs(c.Request.Context(), uuid.MustParse(uri.IntentID), requesterID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewPaymentResponse(answer))
}

// inspectionAndRequester writes the error response itself when it returns false.
func inspectionAndRequester(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	requesterID, ok := middleware.RequesterID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, uuid.Nil, false
	}
	inspectionID, ok := bindInspectionID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return inspectionID, requesterID, true
}

func bindInspectionID(c *gin.Context) (uuid.UUID, bool) {
	var uri dto.InspectionURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation("inspection_id must be a UUID"))
		return uuid.Nil, false
	}
	return uuid.MustParse(uri.InspectionID), true
}
