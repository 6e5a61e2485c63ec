// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
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

	_ = mock // goose talks to the db itself, no expectations are set

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

func TestEmbeddedMigrations(t *testing.T) {
	names, err := fs.Glob(embedMigrations, "*.sql")
	if err != nil {
		t.Fatalf("failed to list embedded migrations: %v", err)
	}

	want := []string{
		"00001_create_items.sql",
		"00002_create_sync_states.sql",
		"00003_create_devices.sql",
	}
	if len(names) != len(want) {
		t.Fatalf("expected %d migrations, got %v", len(want), names)
	}

	for i, name := range want {
		if names[i] != name {
			t.Errorf("migration %d: expected %s, got %s", i, name, names[i])
		}

		body, err := fs.ReadFile(embedMigrations, name)
		if err != nil {
			t.Fatalf("failed to read %s: %v", name, err)
		}
		if !strings.Contains(string(body), "-- +goose Up") || !strings.Contains(string(body), "-- +goose Down") {
			t.Errorf("%s is missing goose annotations", name)
		}
	}
}

func TestItemsMigration_CreatesEveryItemTable(t *testing.T) {
	body, err := fs.ReadFile(embedMigrations, "00001_create_items.sql")
	if err != nil {
		t.Fatalf("failed to read migration: %v", err)
	}

	for _, table := range []string{
		"setting_items", "attachments", "notes", "notebooks", "contents", "shortcuts",
		"reminders", "colors", "tags", "vaults", "relations",
	} {
		if !strings.Contains(string(body), "CREATE TABLE IF NOT EXISTS "+table+" (") {
			t.Errorf("table %s is not created", table)
		}
	}
}
