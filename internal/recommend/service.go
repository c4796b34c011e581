package recommend

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"investease-gateway/internal/advisor"
	"investease-gateway/internal/preference"
	"investease-gateway/internal/profile"
	"investease-gateway/internal/shared/metrics"
	"investease-gateway/internal/shared/telemetry"
)

const fetchErrorMessage = "Unable to load recommendations. Please try again."

// Service drives one recommendation refresh: profile + preference in,
// normalized report state out.
type Service struct {
	Advisor  advisor.Client
	Profiles *profile.Service
	Prefs    *preference.Store
	Sessions *SessionTracker
}

// NewService constructs a Service.
func NewService(client advisor.Client, profiles *profile.Service, prefs *preference.Store, sessions *SessionTracker) *Service {
	return &Service{Advisor: client, Profiles: profiles, Prefs: prefs, Sessions: sessions}
}

// Refresh performs one advisor call for the session and returns the state
// after the response is applied. Profile errors propagate; advisor failures
// degrade to the empty full-mode state carried inside the returned snapshot.
// The stored preference is a request hint only: the effective report mode
// comes from the response.
func (s *Service) Refresh(ctx context.Context, sessionID string) (ReportState, error) {
	userProfile, err := s.Profiles.Profile(ctx, sessionID)
	if err != nil {
		return ReportState{}, err
	}
	pref := s.Prefs.Load(ctx, sessionID)

	seq := s.Sessions.Begin(sessionID)
	metrics.IncFetchStarted()
	start := time.Now()
	defer func() {
		metrics.ObserveFetchDurationMs(float64(time.Since(start).Milliseconds()))
	}()

	payload, err := json.Marshal(BuildRequest(userProfile, pref))
	if err != nil {
		return s.fail(sessionID, seq, err), nil
	}

	raw, err := s.Advisor.Recommend(ctx, payload)
	if err != nil {
		return s.fail(sessionID, seq, err), nil
	}

	state := s.normalize(raw, userProfile.RiskPreference)
	if !s.Sessions.Apply(sessionID, seq, state) {
		metrics.IncFetchStale()
		telemetry.Warn("recommend.stale_response", map[string]any{
			"session_id": sessionID,
			"sequence":   seq,
		})
		return s.Sessions.State(sessionID), nil
	}
	metrics.IncFetchCompleted()
	return state, nil
}

// State returns the session's current report snapshot.
func (s *Service) State(sessionID string) ReportState {
	return s.Sessions.State(sessionID)
}

// CategoryReport proxies the advisor's single-category deep dive and
// normalizes it with the single-mode rules.
func (s *Service) CategoryReport(ctx context.Context, category string) (*SingleReport, error) {
	raw, err := s.Advisor.CategoryReport(ctx, category)
	if err != nil {
		return nil, err
	}
	return NormalizeSingle(raw), nil
}

// ComparePlans proxies the advisor's top-plan comparison for a risk level.
func (s *Service) ComparePlans(ctx context.Context, riskPreference string) ([]ComparePlan, error) {
	raw, err := s.Advisor.ComparePlans(ctx, riskPreference)
	if err != nil {
		return nil, err
	}
	return NormalizeCompare(raw), nil
}

func (s *Service) fail(sessionID string, seq uint64, cause error) ReportState {
	metrics.IncFetchFailed()
	telemetry.Error("recommend.fetch_failed", map[string]any{
		"session_id": sessionID,
		"error":      cause.Error(),
	})
	state := emptyFullState(StatusError, fetchErrorMessage)
	if !s.Sessions.Apply(sessionID, seq, state) {
		metrics.IncFetchStale()
		return s.Sessions.State(sessionID)
	}
	return state
}

func (s *Service) normalize(raw json.RawMessage, riskPreference string) ReportState {
	var envelope struct {
		ReportType string `json:"report_type"`
	}
	_ = json.Unmarshal(raw, &envelope)

	mode := strings.ToLower(strings.TrimSpace(envelope.ReportType))
	if mode != preference.ReportTypeSingle {
		mode = preference.ReportTypeFull
	}

	state := ReportState{Status: StatusReady, ReportMode: mode, Sections: []CategorySection{}}
	if mode == preference.ReportTypeSingle {
		state.SingleReport = NormalizeSingle(raw)
		return state
	}
	state.Sections = NormalizeFull(raw, riskPreference)
	return state
}
