// Package bootstrap wires repositories, services, and handlers into a
// runnable application.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"investease-gateway/internal/advisor"
	"investease-gateway/internal/advisor/investease"
	"investease-gateway/internal/feedback"
	"investease-gateway/internal/preference"
	"investease-gateway/internal/profile"
	"investease-gateway/internal/recommend"
	"investease-gateway/internal/shared/config"
	"investease-gateway/internal/shared/server"
	"investease-gateway/internal/shared/storage/db"
	"investease-gateway/internal/shared/telemetry"
	"investease-gateway/internal/sipcalc"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	Advisor          advisor.Client
	ProfileService   *profile.Service
	PreferenceStore  *preference.Store
	RecommendService *recommend.Service
	FeedbackService  *feedback.Service
}

// Build prepares shared dependencies and the router. In dev-like
// environments a missing or unreachable database falls back to in-memory
// repositories; elsewhere it is fatal.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	advisorClient, err := buildAdvisor(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Advisor: advisorClient,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		ProfileHandler:    profile.NewHandler(app.ProfileService),
		PreferenceHandler: preference.NewHandler(app.PreferenceStore),
		RecommendHandler:  recommend.NewHandler(app.RecommendService),
		FeedbackHandler:   feedback.NewHandler(app.FeedbackService),
		SIPHandler:        sipcalc.NewHandler(),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{
				"reason": "DATABASE_URL empty",
			})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{
				"reason": "database connect failed",
				"error":  err.Error(),
			})
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{
				"reason": "migrations failed",
				"error":  err.Error(),
			})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildAdvisor(cfg config.Config) (advisor.Client, error) {
	if strings.TrimSpace(cfg.AdvisorBaseURL) == "" {
		telemetry.Warn("bootstrap.advisor_placeholder", map[string]any{
			"reason": "ADVISOR_BASE_URL empty",
		})
		return advisor.PlaceholderClient{}, nil
	}
	return investease.NewClient(cfg.AdvisorBaseURL, cfg.AdvisorTimeout, float64(cfg.AdvisorRateLimit))
}

func buildServices(app *App) {
	var profileRepo profile.Repo
	var preferenceRepo preference.Repo
	var feedbackRepo feedback.Repo

	if app.DB != nil {
		profileRepo = &profile.PGRepo{DB: app.DB}
		preferenceRepo = &preference.PGRepo{DB: app.DB}
		feedbackRepo = &feedback.PGRepo{DB: app.DB}
	} else {
		profileRepo = profile.NewMemoryRepo()
		preferenceRepo = preference.NewMemoryRepo()
		feedbackRepo = feedback.NewMemoryRepo()
	}

	app.ProfileService = &profile.Service{Repo: profileRepo}
	app.PreferenceStore = &preference.Store{Repo: preferenceRepo}
	app.RecommendService = recommend.NewService(
		app.Advisor,
		app.ProfileService,
		app.PreferenceStore,
		recommend.NewSessionTracker(),
	)
	app.FeedbackService = feedback.NewService(feedbackRepo)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
