package handler

import (
	"inspection-billing/internal/adapter/http/dto"
	"inspection-billing/internal/core/ports"
	"inspection-billing/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BillingHandler exposes the billing policy to the report workflow.
type BillingHandler struct {
	billingSvc ports.BillingService
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(billingSvc ports.BillingService) *BillingHandler {
	return &BillingHandler{billingSvc: billingSvc}
}

// GetSummary handles GET /api/v1/inspections/:inspection_id/billing.
func (h *BillingHandler) GetSummary(c *gin.Context) {
	inspectionID, ok := h.authorize(c)
	if !ok {
		return
	}

	summary, err := h.billingSvc.GetBillingSummary(c.Request.Context(), inspectionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewBillingSummaryResponse(summary))
}

// FinalReportGate handles GET /api/v1/inspections/:inspection_id/billing/final-report.
// 204 means the final report may be generated.
func (h *BillingHandler) FinalReportGate(c *gin.Context) {
	inspectionID, ok := h.authorize(c)
	if !ok {
		return
	}

	if err := h.billingSvc.RequireCanGenerateFinalReport(c.Request.Context(), inspectionID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func (h *BillingHandler) authorize(c *gin.Context) (uuid.UUID, bool) {
	inspectionID, requesterID, ok := inspectionAndRequester(c)
	if !ok {
		return uuid.Nil, false
	}
	if err := h.billingSvc.AssertCanView(c.Request.Context(), inspectionID, requesterID); err != nil {
		response.Error(c, err)
		return uuid.Nil, false
	}
	return inspectionID, true
}
