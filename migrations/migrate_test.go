package migrations

import (
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// goose first probes its version table; fail it to surface a wrapped error.
	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery(".*").WillReturnError(errors.New("server has gone away"))
	mock.ExpectExec(".*").WillReturnError(errors.New("server has gone away"))

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}
	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}
	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	b, err := embedMigrations.ReadFile("00001_init.sql")
	if err != nil {
		t.Fatalf("read embedded migration: %v", err)
	}
	for _, table := range []string{"hotels", "rooms", "enrollments", "tickets", "ticket_types", "sessions"} {
		if !strings.Contains(string(b), "CREATE TABLE "+table+" ") {
			t.Errorf("migration does not create %s", table)
		}
	}
}
