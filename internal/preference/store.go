package preference

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"investease-gateway/internal/shared/telemetry"
)

// Repo persists the raw preference payload per session.
type Repo interface {
	Save(ctx context.Context, sessionID string, payload json.RawMessage) error
	Get(ctx context.Context, sessionID string) (json.RawMessage, error)
}

// FieldError describes a field-scoped validation failure.
type FieldError struct {
	Field string
	Issue string
}

// Store owns the fail-soft load / validate / save policy for the report
// preference. All reads of persisted preference data go through Load so
// malformed payloads are recovered in exactly one place.
type Store struct {
	Repo Repo
}

// Load returns the stored preference, falling back to the default on a
// missing row, malformed JSON, or unknown values. It never returns an error
// for bad data; only infrastructure failures are logged, and even those
// degrade to the default rather than surfacing to the caller.
func (s *Store) Load(ctx context.Context, sessionID string) ReportPreference {
	raw, err := s.Repo.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			telemetry.Warn("preference.load_failed", map[string]any{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}
		return Default()
	}

	var stored ReportPreference
	if err := json.Unmarshal(raw, &stored); err != nil {
		// Malformed persisted data is recovered silently, never surfaced.
		return Default()
	}

	stored.ReportType = normalizeReportType(stored.ReportType)
	if stored.ReportType == "" {
		return Default()
	}
	if stored.ReportType == ReportTypeSingle && !IsInvestmentType(stored.InvestmentType) {
		return Default()
	}
	if stored.ReportType == ReportTypeFull {
		stored.InvestmentType = ""
	}
	return stored
}

// Validate checks a preference before it may be saved or used in a request.
// Single mode without a chosen category is the one rejection the core makes.
func (s *Store) Validate(pref ReportPreference) (ReportPreference, []FieldError) {
	pref.ReportType = normalizeReportType(pref.ReportType)

	var fieldErrs []FieldError
	if pref.ReportType == "" {
		fieldErrs = append(fieldErrs, FieldError{Field: "reportType", Issue: "must be full or single"})
	}
	if pref.ReportType == ReportTypeSingle {
		if strings.TrimSpace(pref.InvestmentType) == "" {
			fieldErrs = append(fieldErrs, FieldError{Field: "investmentType", Issue: "select an investment type for a single report"})
		} else if !IsInvestmentType(pref.InvestmentType) {
			fieldErrs = append(fieldErrs, FieldError{Field: "investmentType", Issue: "unknown investment type"})
		}
	}
	if pref.ReportType == ReportTypeFull {
		pref.InvestmentType = ""
	}
	return pref, fieldErrs
}

// Save persists exactly the two preference fields, stripping anything else
// a caller may have attached. Invalid preferences are rejected.
func (s *Store) Save(ctx context.Context, sessionID string, pref ReportPreference) ([]FieldError, error) {
	cleaned, fieldErrs := s.Validate(pref)
	if len(fieldErrs) > 0 {
		return fieldErrs, nil
	}
	payload, err := json.Marshal(ReportPreference{
		ReportType:     cleaned.ReportType,
		InvestmentType: cleaned.InvestmentType,
	})
	if err != nil {
		return nil, err
	}
	return nil, s.Repo.Save(ctx, sessionID, payload)
}

func normalizeReportType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ReportTypeFull:
		return ReportTypeFull
	case ReportTypeSingle:
		return ReportTypeSingle
	default:
		return ""
	}
}
