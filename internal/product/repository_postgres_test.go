package product

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresList_NewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "price", "description", "image_url", "created_at"}).
		AddRow(2, "Slim Fit", 59.99, "d2", "u2", "2024-02-01T00:00:00Z").
		AddRow(1, "Classic", 49.99, "d1", "u1", "2024-01-01T00:00:00Z")
	mock.ExpectQuery("ORDER BY created_at DESC").WillReturnRows(rows)

	all, err := repo.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 || all[0].ID != 2 {
		t.Fatalf("expected newest first, got %+v", all)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresCreate_ReturnsAssignedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO products").
		WithArgs("Bootcut", 75.0, "d", "u", "2024-03-01T00:00:00Z").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	created, err := repo.Create(Product{Name: "Bootcut", Price: 75, Description: "d", ImageURL: "u", CreatedAt: "2024-03-01T00:00:00Z"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 11 {
		t.Fatalf("expected assigned id 11, got %d", created.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdate_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("UPDATE products").
		WithArgs("X", 10.0, "d", "u", 99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "description", "image_url", "created_at"}))

	_, err = repo.Update(99, Product{Name: "X", Price: 10, Description: "d", ImageURL: "u"})
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresDelete_ZeroRowsIsSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM products").
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(42); err != nil {
		t.Fatalf("deleting an absent id must succeed, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
