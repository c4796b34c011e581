package feedback

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"investease-gateway/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the feedback service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches feedback routes. submitMiddleware guards the POST
// route (rate limiting is applied there by the router).
func (h *Handler) RegisterRoutes(r gin.IRouter, submitMiddleware ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, submitMiddleware...), h.submit)
	r.POST("/api/feedback", handlers...)
	r.GET("/api/feedback", h.list)
}

func (h *Handler) submit(c *gin.Context) {
	var sub Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "body must be a JSON feedback object", nil)
		return
	}

	entry, fieldErrs, err := h.Svc.Submit(c.Request.Context(), sub)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "unable to save feedback", nil)
		return
	}
	if len(fieldErrs) > 0 {
		respond.Error(c, http.StatusUnprocessableEntity, respond.CodeValidation, "invalid feedback", toRespondFields(fieldErrs))
		return
	}
	respond.Created(c, entry)
}

func (h *Handler) list(c *gin.Context) {
	page, ok := queryInt(c, "page", 1, 1, 0)
	if !ok {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "page must be an integer >= 1", nil)
		return
	}
	limit, ok := queryInt(c, "limit", defaultListLimit, 1, maxListLimit)
	if !ok {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "limit must be an integer between 1 and 50", nil)
		return
	}

	listed, err := h.Svc.List(c.Request.Context(), page, limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "unable to list feedback", nil)
		return
	}
	respond.OK(c, listed)
}

// queryInt parses an integer query parameter with a default and bounds; a
// max of 0 means unbounded above.
func queryInt(c *gin.Context, name string, fallback, min, max int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < min || (max > 0 && value > max) {
		return 0, false
	}
	return value, true
}

func toRespondFields(fieldErrs []FieldError) []respond.FieldError {
	out := make([]respond.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, respond.FieldError{Field: fe.Field, Issue: fe.Issue})
	}
	return out
}
