package profile

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoSaveUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	payload := json.RawMessage(`{"age":30,"investmentAmount":50000,"riskPreference":"Medium"}`)

	mock.ExpectExec("INSERT INTO session_details").
		WithArgs("s1", KeyMandatoryDetails, []byte(payload), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Save(context.Background(), "s1", KeyMandatoryDetails, payload); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetReturnsPayload(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	stored := `{"savings":25000}`

	mock.ExpectQuery("SELECT payload FROM session_details").
		WithArgs("s1", KeyOptionalDetails).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte(stored)))

	payload, err := repo.Get(context.Background(), "s1", KeyOptionalDetails)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(payload) != stored {
		t.Fatalf("unexpected payload %s", payload)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT payload FROM session_details").
		WithArgs("missing", KeyMandatoryDetails).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	if _, err := repo.Get(context.Background(), "missing", KeyMandatoryDetails); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
