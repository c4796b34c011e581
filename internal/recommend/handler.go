package recommend

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"investease-gateway/internal/preference"
	"investease-gateway/internal/profile"
	"investease-gateway/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the recommendation service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the session-scoped recommendation routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions/:id/recommendation", h.refresh)
	rg.GET("/sessions/:id/recommendation", h.state)
}

// RegisterReportRoutes attaches the category report, comparison, and PDF
// stub routes, which live outside the versioned API prefix.
func (h *Handler) RegisterReportRoutes(r gin.IRouter) {
	r.GET("/report/:category", h.categoryReport)
	r.GET("/api/compare", h.comparePlans)
	r.GET("/api/report/pdf", h.pdfStub)
}

func (h *Handler) refresh(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "session id is required", nil)
		return
	}
	state, err := h.Svc.Refresh(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrIncomplete), errors.Is(err, profile.ErrNotFound):
			respond.Error(c, http.StatusConflict, respond.CodeProfileRequired, "profile is incomplete; collect details first", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to refresh recommendations", nil)
		}
		return
	}
	respond.OK(c, state)
}

func (h *Handler) state(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "session id is required", nil)
		return
	}
	respond.OK(c, h.Svc.State(sessionID))
}

func (h *Handler) categoryReport(c *gin.Context) {
	category := c.Param("category")
	if !preference.IsInvestmentType(category) {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "unknown report category", []respond.FieldError{
			{Field: "category", Issue: "must be one of mutualfunds, stocks, bonds, gold, sip"},
		})
		return
	}
	report, err := h.Svc.CategoryReport(c.Request.Context(), category)
	if err != nil {
		respond.Error(c, http.StatusBadGateway, respond.CodeUpstream, "category report is unavailable", nil)
		return
	}
	respond.OK(c, report)
}

func (h *Handler) comparePlans(c *gin.Context) {
	riskPreference := c.DefaultQuery("risk_preference", "Medium")
	switch riskPreference {
	case "Low", "Medium", "High":
	default:
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "unknown risk preference", []respond.FieldError{
			{Field: "risk_preference", Issue: "must be one of Low, Medium, High"},
		})
		return
	}
	plans, err := h.Svc.ComparePlans(c.Request.Context(), riskPreference)
	if err != nil {
		respond.Error(c, http.StatusBadGateway, respond.CodeUpstream, "plan comparison is unavailable", nil)
		return
	}
	respond.OK(c, gin.H{"status": "success", "plans": plans})
}

func (h *Handler) pdfStub(c *gin.Context) {
	respond.OK(c, gin.H{
		"status":       "success",
		"message":      "PDF generation feature coming soon",
		"download_url": nil,
	})
}
