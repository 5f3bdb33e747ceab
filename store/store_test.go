package store

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db)
}

func TestGetAbsentKey(t *testing.T) {
	s := newTestStore(t)
	if _, ok := s.Get("missing"); ok {
		t.Fatal("expected absent key")
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	s := newTestStore(t)
	s.Set("userLat", "40.7128")

	got, ok := s.Get("userLat")
	if !ok {
		t.Fatal("expected key to be present")
	}
	if got != "40.7128" {
		t.Fatalf("expected 40.7128, got %q", got)
	}
}

func TestSetReplacesValue(t *testing.T) {
	s := newTestStore(t)
	s.Set("selectedSlot", "09:00 AM")
	s.Set("selectedSlot", "10:00 AM")

	got, _ := s.Get("selectedSlot")
	if got != "10:00 AM" {
		t.Fatalf("expected replacement value, got %q", got)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	s.Set("selectedDate", "2026-08-28T00:00:00Z")
	s.Delete("selectedDate")

	if _, ok := s.Get("selectedDate"); ok {
		t.Fatal("expected key to be deleted")
	}

	// Deleting an absent key is a no-op.
	s.Delete("selectedDate")
}

func TestUsers(t *testing.T) {
	s := newTestStore(t)
	s.Set(UserKey("a@example.com"), `{"email":"a@example.com"}`)
	s.Set(UserKey("b@example.com"), `{"email":"b@example.com"}`)
	s.Set("selectedSlot", "10:00 AM")

	users := s.Users()
	if len(users) != 2 {
		t.Fatalf("expected 2 user records, got %d", len(users))
	}
}
