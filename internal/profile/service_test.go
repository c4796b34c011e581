package profile

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestServiceSaveDetailsRejectsBadInput(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	if err := svc.SaveDetails(ctx, "", KeyMandatoryDetails, json.RawMessage(`{}`)); err == nil {
		t.Fatal("expected error for empty session id")
	}
	if err := svc.SaveDetails(ctx, "s1", "preferences", json.RawMessage(`{}`)); err == nil {
		t.Fatal("expected error for unknown detail key")
	}
	if err := svc.SaveDetails(ctx, "s1", KeyMandatoryDetails, json.RawMessage(`[1,2]`)); err == nil {
		t.Fatal("expected error for non-object payload")
	}
}

func TestServiceProfileWithoutMandatoryDetails(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	_, err := svc.Profile(context.Background(), "s1")
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
}

func TestServiceProfileMissingOptionalIsFine(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	mandatory := json.RawMessage(`{"age":30,"investmentAmount":50000,"riskPreference":"Medium"}`)
	if err := svc.SaveDetails(ctx, "s1", KeyMandatoryDetails, mandatory); err != nil {
		t.Fatalf("save mandatory: %v", err)
	}

	got, err := svc.Profile(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Age != 30 || got.RiskPreference != "Medium" {
		t.Fatalf("unexpected profile %+v", got)
	}
}

func TestServiceProfileAssemblesBothDocuments(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	mandatory := json.RawMessage(`{"age":30,"investmentAmount":50000,"riskPreference":"high"}`)
	optional := json.RawMessage(`{"savings":25000}`)
	if err := svc.SaveDetails(ctx, "s1", KeyMandatoryDetails, mandatory); err != nil {
		t.Fatalf("save mandatory: %v", err)
	}
	if err := svc.SaveDetails(ctx, "s1", KeyOptionalDetails, optional); err != nil {
		t.Fatalf("save optional: %v", err)
	}

	got, err := svc.Profile(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RiskPreference != "High" {
		t.Fatalf("expected normalized risk, got %q", got.RiskPreference)
	}
	if got.Savings == nil || *got.Savings != 25000 {
		t.Fatalf("expected savings from optional document, got %+v", got.Savings)
	}
}
