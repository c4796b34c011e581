package feedback

import (
	"context"
	"testing"
	"time"
)

func validSubmission() Submission {
	return Submission{
		Name:           "Asha",
		Email:          "asha@example.com",
		Category:       CategoryBug,
		Rating:         4,
		Message:        "The gold report never loads.",
		ContactConsent: true,
	}
}

func TestSubmitStoresEntry(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	}

	entry, fieldErrs, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(fieldErrs) != 0 {
		t.Fatalf("expected no field errors, got %+v", fieldErrs)
	}
	if entry.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !entry.CreatedAt.Equal(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)) {
		t.Fatalf("expected UTC createdAt, got %v", entry.CreatedAt)
	}

	page, err := svc.List(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 1 || len(page.Data) != 1 {
		t.Fatalf("expected stored entry, got %+v", page)
	}
}

func TestSubmitTrimsMessage(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	sub := validSubmission()
	sub.Message = "   plenty of detail here   "
	entry, fieldErrs, err := svc.Submit(context.Background(), sub)
	if err != nil || len(fieldErrs) != 0 {
		t.Fatalf("Submit: err=%v fieldErrs=%+v", err, fieldErrs)
	}
	if entry.Message != "plenty of detail here" {
		t.Fatalf("expected trimmed message, got %q", entry.Message)
	}
}

func TestSubmitValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	tests := []struct {
		name      string
		mutate    func(*Submission)
		wantField string
	}{
		{name: "unknown category", mutate: func(s *Submission) { s.Category = "Praise" }, wantField: "category"},
		{name: "rating too low", mutate: func(s *Submission) { s.Rating = 0 }, wantField: "rating"},
		{name: "rating too high", mutate: func(s *Submission) { s.Rating = 6 }, wantField: "rating"},
		{name: "short message", mutate: func(s *Submission) { s.Message = "hey" }, wantField: "message"},
		{name: "whitespace message", mutate: func(s *Submission) { s.Message = "        " }, wantField: "message"},
		{name: "bad email", mutate: func(s *Submission) { s.Email = "not-an-email" }, wantField: "email"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sub := validSubmission()
			tc.mutate(&sub)

			_, fieldErrs, err := svc.Submit(context.Background(), sub)
			if err != nil {
				t.Fatalf("Submit: %v", err)
			}
			if len(fieldErrs) == 0 {
				t.Fatalf("expected field errors")
			}
			if fieldErrs[0].Field != tc.wantField {
				t.Fatalf("expected %s error, got %+v", tc.wantField, fieldErrs)
			}
		})
	}
}

func TestSubmitAllowsAnonymous(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	sub := validSubmission()
	sub.Name = ""
	sub.Email = ""
	_, fieldErrs, err := svc.Submit(context.Background(), sub)
	if err != nil || len(fieldErrs) != 0 {
		t.Fatalf("anonymous feedback must be accepted: err=%v fieldErrs=%+v", err, fieldErrs)
	}
}

func TestListNewestFirstPagination(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		tick := base.Add(time.Duration(i) * time.Minute)
		svc.now = func() time.Time { return tick }
		sub := validSubmission()
		sub.Message = "feedback number " + string(rune('A'+i))
		if _, fieldErrs, err := svc.Submit(context.Background(), sub); err != nil || len(fieldErrs) != 0 {
			t.Fatalf("seed: err=%v fieldErrs=%+v", err, fieldErrs)
		}
	}

	first, err := svc.List(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if first.Total != 7 || len(first.Data) != 3 {
		t.Fatalf("unexpected first page %+v", first)
	}
	if first.Data[0].Message != "feedback number G" {
		t.Fatalf("expected newest first, got %q", first.Data[0].Message)
	}

	third, err := svc.List(context.Background(), 3, 3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(third.Data) != 1 || third.Data[0].Message != "feedback number A" {
		t.Fatalf("unexpected last page %+v", third.Data)
	}

	beyond, err := svc.List(context.Background(), 4, 3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(beyond.Data) != 0 {
		t.Fatalf("expected empty page past the end, got %+v", beyond.Data)
	}
}
