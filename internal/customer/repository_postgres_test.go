package customer

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresUpsertByPhone_ConflictOverwritesNonKeyFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	// first upsert inserts, second hits the phone conflict and keeps the
	// original id and created_at while taking the new address
	mock.ExpectQuery("ON CONFLICT \\(phone\\) DO UPDATE").
		WithArgs("Sam", "0100", "first", nil, "2024-01-01T00:00:00Z").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "address", "email", "created_at"}).
			AddRow(3, "Sam", "0100", "first", nil, "2024-01-01T00:00:00Z"))
	mock.ExpectQuery("ON CONFLICT \\(phone\\) DO UPDATE").
		WithArgs("Sam", "0100", "second", nil, "2024-02-01T00:00:00Z").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "address", "email", "created_at"}).
			AddRow(3, "Sam", "0100", "second", nil, "2024-01-01T00:00:00Z"))

	first, err := repo.UpsertByPhone(Customer{Name: "Sam", Phone: "0100", Address: "first", CreatedAt: "2024-01-01T00:00:00Z"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := repo.UpsertByPhone(Customer{Name: "Sam", Phone: "0100", Address: "second", CreatedAt: "2024-02-01T00:00:00Z"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("same phone must resolve to one row, got ids %d and %d", first.ID, second.ID)
	}
	if second.Address != "second" {
		t.Fatalf("last write must win on address, got %q", second.Address)
	}
	if second.CreatedAt != "2024-01-01T00:00:00Z" {
		t.Fatalf("created_at must be preserved on conflict, got %q", second.CreatedAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM customers").
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "address", "email", "created_at"}))

	if _, err := repo.GetByID(9); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
