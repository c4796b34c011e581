package profile

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"investease-gateway/internal/shared/server/respond"
)

const maxDetailsBody = 64 << 10

// Handler wires HTTP handlers to the profile service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/sessions/:id/details/mandatory", h.saveDetails(KeyMandatoryDetails))
	rg.PUT("/sessions/:id/details/optional", h.saveDetails(KeyOptionalDetails))
	rg.GET("/sessions/:id/profile", h.getProfile)
}

func (h *Handler) saveDetails(detailKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")
		if sessionID == "" {
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "session id is required", nil)
			return
		}
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxDetailsBody))
		if err != nil || len(body) == 0 {
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "request body is required", nil)
			return
		}
		if err := h.Svc.SaveDetails(c.Request.Context(), sessionID, detailKey, body); err != nil {
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "details must be a JSON object", nil)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func (h *Handler) getProfile(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "session id is required", nil)
		return
	}
	userProfile, err := h.Svc.Profile(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, ErrIncomplete):
			respond.Error(c, http.StatusConflict, respond.CodeProfileRequired, "profile is incomplete; collect details first", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to load profile", nil)
		}
		return
	}
	respond.OK(c, userProfile)
}
