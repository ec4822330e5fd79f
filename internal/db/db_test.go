// SPDX-License-Identifier: MIT
package db

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/thatcatcamp/themevars/internal/models"
	"github.com/thatcatcamp/themevars/internal/ordered"
	"github.com/thatcatcamp/themevars/internal/themes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := testDB.AutoMigrate(&models.ThemeOverride{}); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	return testDB
}

func TestInitDBSqlite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themevars.db")
	if err := InitDB("sqlite", path); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	if !GetDB().Migrator().HasTable(&models.ThemeOverride{}) {
		t.Fatal("theme_overrides table not created")
	}
}

func TestInitDBUnsupported(t *testing.T) {
	if err := InitDB("postgres", "x"); err == nil {
		t.Fatal("expected error for unsupported database type")
	}
}

func TestSaveAndListOverrides(t *testing.T) {
	testDB := setupTestDB(t)

	base := "#000000"
	colors := ordered.New[themes.FamilyValue]()
	colors.Set("red", themes.NewSubPalette("DEFAULT", "#123456", "5", "#abcdef"))

	if err := SaveOverride(testDB, themes.Override{Name: "light", BaseColor: &base}); err != nil {
		t.Fatalf("SaveOverride failed: %v", err)
	}
	if err := SaveOverride(testDB, themes.Override{Name: "dark", Colors: colors}); err != nil {
		t.Fatalf("SaveOverride failed: %v", err)
	}

	overrides, err := ListOverrides(testDB, zerolog.Nop())
	if err != nil {
		t.Fatalf("ListOverrides failed: %v", err)
	}
	if len(overrides) != 2 {
		t.Fatalf("expected 2 overrides, got %d", len(overrides))
	}
	if overrides[0].Name != "light" || overrides[1].Name != "dark" {
		t.Errorf("wrong order: %s, %s", overrides[0].Name, overrides[1].Name)
	}
	if overrides[0].BaseColor == nil || *overrides[0].BaseColor != "#000000" {
		t.Error("base color not stored")
	}
	red, ok := overrides[1].Colors.Get("red")
	if !ok {
		t.Fatal("red sub-palette not stored")
	}
	if sp := red.(themes.SubPalette); sp.Shades.Len() != 2 {
		t.Errorf("expected 2 shades, got %d", sp.Shades.Len())
	}
}

func TestSaveOverrideReplacesByName(t *testing.T) {
	testDB := setupTestDB(t)

	first, second := "#111111", "#222222"
	SaveOverride(testDB, themes.Override{Name: "light", BaseColor: &first})
	SaveOverride(testDB, themes.Override{Name: "dark"})
	if err := SaveOverride(testDB, themes.Override{Name: "light", BaseColor: &second}); err != nil {
		t.Fatalf("SaveOverride failed: %v", err)
	}

	var count int64
	testDB.Model(&models.ThemeOverride{}).Count(&count)
	if count != 2 {
		t.Fatalf("expected 2 records, got %d", count)
	}

	o, err := GetOverride(testDB, "light", zerolog.Nop())
	if err != nil {
		t.Fatalf("GetOverride failed: %v", err)
	}
	if *o.BaseColor != "#222222" {
		t.Errorf("expected replaced base color, got %s", *o.BaseColor)
	}

	overrides, _ := ListOverrides(testDB, zerolog.Nop())
	if overrides[0].Name != "light" {
		t.Error("replacing an override should keep its position")
	}
}

func TestDeleteOverride(t *testing.T) {
	testDB := setupTestDB(t)
	SaveOverride(testDB, themes.Override{Name: "light"})

	if err := DeleteOverride(testDB, "light"); err != nil {
		t.Fatalf("DeleteOverride failed: %v", err)
	}
	if err := DeleteOverride(testDB, "light"); !errors.Is(err, ErrOverrideNotFound) {
		t.Errorf("expected ErrOverrideNotFound, got %v", err)
	}
	if _, err := GetOverride(testDB, "light", zerolog.Nop()); !errors.Is(err, ErrOverrideNotFound) {
		t.Errorf("expected ErrOverrideNotFound, got %v", err)
	}
}

func TestListSkipsUnreadableRecords(t *testing.T) {
	testDB := setupTestDB(t)
	testDB.Create(&models.ThemeOverride{Name: "broken", Document: "- not a mapping\n"})
	SaveOverride(testDB, themes.Override{Name: "dark"})

	overrides, err := ListOverrides(testDB, zerolog.Nop())
	if err != nil {
		t.Fatalf("ListOverrides failed: %v", err)
	}
	if len(overrides) != 1 || overrides[0].Name != "dark" {
		t.Errorf("expected only dark, got %v", overrides)
	}
}
