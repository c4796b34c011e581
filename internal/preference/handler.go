package preference

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"investease-gateway/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the preference store.
type Handler struct {
	Store *Store
}

// NewHandler constructs a Handler.
func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches preference routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/sessions/:id/preference", h.getPreference)
	rg.PUT("/sessions/:id/preference", h.putPreference)
}

func (h *Handler) getPreference(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "session id is required", nil)
		return
	}
	respond.OK(c, h.Store.Load(c.Request.Context(), sessionID))
}

func (h *Handler) putPreference(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "session id is required", nil)
		return
	}
	var pref ReportPreference
	if err := c.ShouldBindJSON(&pref); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "body must be a JSON preference object", nil)
		return
	}
	fieldErrs, err := h.Store.Save(c.Request.Context(), sessionID, pref)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to save preference", nil)
		return
	}
	if len(fieldErrs) > 0 {
		respond.Error(c, http.StatusUnprocessableEntity, respond.CodeValidation, "invalid report preference", toRespondFields(fieldErrs))
		return
	}
	respond.OK(c, h.Store.Load(c.Request.Context(), sessionID))
}

func toRespondFields(fieldErrs []FieldError) []respond.FieldError {
	out := make([]respond.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, respond.FieldError{Field: fe.Field, Issue: fe.Issue})
	}
	return out
}
