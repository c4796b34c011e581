package feedback

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FieldError describes a field-scoped validation failure.
type FieldError struct {
	Field string
	Issue string
}

// Service validates and stores feedback.
type Service struct {
	Repo Repo
	now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, now: time.Now}
}

// Submit validates the submission and persists a new entry. Validation
// failures come back as field errors, never as a stored record.
func (s *Service) Submit(ctx context.Context, sub Submission) (Entry, []FieldError, error) {
	fieldErrs := validateSubmission(sub)
	if len(fieldErrs) > 0 {
		return Entry{}, fieldErrs, nil
	}

	entry := Entry{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(sub.Name),
		Email:          strings.TrimSpace(sub.Email),
		Category:       sub.Category,
		Rating:         sub.Rating,
		Message:        strings.TrimSpace(sub.Message),
		ContactConsent: sub.ContactConsent,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.Repo.Create(ctx, entry); err != nil {
		return Entry{}, nil, fmt.Errorf("save feedback: %w", err)
	}
	return entry, nil, nil
}

// List returns one page of feedback, newest first.
func (s *Service) List(ctx context.Context, page, limit int) (Page, error) {
	entries, total, err := s.Repo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return Page{}, fmt.Errorf("list feedback: %w", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return Page{Total: total, Page: page, Limit: limit, Data: entries}, nil
}

func validateSubmission(sub Submission) []FieldError {
	var fieldErrs []FieldError
	if !IsCategory(sub.Category) {
		fieldErrs = append(fieldErrs, FieldError{Field: "category", Issue: "unknown feedback category"})
	}
	if sub.Rating < minRating || sub.Rating > maxRating {
		fieldErrs = append(fieldErrs, FieldError{Field: "rating", Issue: "must be an integer between 1 and 5"})
	}
	if len(strings.TrimSpace(sub.Message)) < minMessageLength {
		fieldErrs = append(fieldErrs, FieldError{Field: "message", Issue: "must be at least 5 characters"})
	}
	if email := strings.TrimSpace(sub.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			fieldErrs = append(fieldErrs, FieldError{Field: "email", Issue: "must be a valid email address"})
		}
	}
	return fieldErrs
}
