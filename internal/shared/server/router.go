package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"investease-gateway/internal/feedback"
	"investease-gateway/internal/preference"
	"investease-gateway/internal/profile"
	"investease-gateway/internal/recommend"
	"investease-gateway/internal/shared/config"
	"investease-gateway/internal/shared/metrics"
	"investease-gateway/internal/shared/server/middleware"
	"investease-gateway/internal/shared/server/respond"
	"investease-gateway/internal/sipcalc"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config            config.Config
	ProfileHandler    *profile.Handler
	PreferenceHandler *preference.Handler
	RecommendHandler  *recommend.Handler
	FeedbackHandler   *feedback.Handler
	SIPHandler        *sipcalc.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	deps.ProfileHandler.RegisterRoutes(api)
	deps.PreferenceHandler.RegisterRoutes(api)
	deps.RecommendHandler.RegisterRoutes(api)
	deps.RecommendHandler.RegisterReportRoutes(r)

	feedbackLimiter := middleware.NewRateLimiter(nil)
	feedbackRule := middleware.RateLimitRule{
		Rate:  deps.Config.FeedbackRateLimit,
		Burst: deps.Config.FeedbackBurst,
	}
	deps.FeedbackHandler.RegisterRoutes(r, middleware.RateLimit(feedbackLimiter, feedbackRule))

	deps.SIPHandler.RegisterRoutes(r)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
