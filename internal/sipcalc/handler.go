package sipcalc

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"investease-gateway/internal/shared/server/respond"
)

// Handler exposes the SIP calculator endpoint.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches the calculator route.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/api/sip/calc", h.calculate)
}

func (h *Handler) calculate(c *gin.Context) {
	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "body must be a JSON SIP calculation object", nil)
		return
	}
	if fieldErrs := Validate(in); len(fieldErrs) > 0 {
		respond.Error(c, http.StatusUnprocessableEntity, respond.CodeValidation, "invalid SIP inputs", toRespondFields(fieldErrs))
		return
	}
	respond.OK(c, Calculate(in))
}

func toRespondFields(fieldErrs []FieldError) []respond.FieldError {
	out := make([]respond.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, respond.FieldError{Field: fe.Field, Issue: fe.Issue})
	}
	return out
}
