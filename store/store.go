// Package store is the local key-value store every piece of business state
// persists through. It stands in for a backend: one string-keyed table,
// read synchronously, scoped to this installation.
package store

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Well-known keys. Each is independently present or absent.
const (
	KeyCurrentUser     = "currentUser"
	KeySelectedSalon   = "selectedSalon"
	KeySelectedService = "selectedService"
	KeySelectedDate    = "selectedDate"
	KeySelectedSlot    = "selectedSlot"
	KeyUserLat         = "userLat"
	KeyUserLng         = "userLng"
	KeyLocationName    = "userLocationName"

	// UserKeyPrefix namespaces the per-account records. Accounts are keyed
	// by email so lookup and upsert are a single primary-key hit.
	UserKeyPrefix = "user:"
)

// Entry is a single persisted key-value pair.
type Entry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (Entry) TableName() string {
	return "kv_entries"
}

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get returns the value for key and whether it was present. Storage errors
// are treated as the key being absent.
func (s *Store) Get(key string) (string, bool) {
	var entry Entry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		return "", false
	}
	return entry.Value, true
}

// Set writes key to value, replacing any previous value.
func (s *Store) Set(key, value string) {
	s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Entry{Key: key, Value: value})
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) {
	s.db.Delete(&Entry{}, "key = ?", key)
}

// UserKey builds the storage key for an account.
func UserKey(email string) string {
	return UserKeyPrefix + email
}

// Users returns the raw values of every persisted account record.
func (s *Store) Users() []string {
	var entries []Entry
	if err := s.db.Where("key LIKE ?", UserKeyPrefix+"%").Find(&entries).Error; err != nil {
		return nil
	}
	values := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Key, UserKeyPrefix) {
			values = append(values, e.Value)
		}
	}
	return values
}
