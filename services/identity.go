package services

import (
	"encoding/json"
	"errors"
	"sync"

	"glowbook-backend/models"
	"glowbook-backend/store"
)

var ErrDuplicateUser = errors.New("user already exists")

// IdentityService owns the current session and the persisted account
// records. Accounts live in the store under per-email keys; the active
// session is mirrored under its own key so it survives restarts.
//
// Credentials are deliberately stored and compared in plaintext: the store
// is a stand-in for a backend and real authentication is out of scope.
type IdentityService struct {
	mu      sync.Mutex
	store   *store.Store
	current *models.User
}

// ProfileUpdate carries the fields a profile edit may change. Nil fields
// are left untouched.
type ProfileUpdate struct {
	Name        *string   `json:"name"`
	Phone       *string   `json:"phone"`
	Gender      *string   `json:"gender"`
	Preferences *[]string `json:"preferences"`
}

// NewIdentityService rehydrates the session from the store if one was
// active when the process last stopped.
func NewIdentityService(st *store.Store) *IdentityService {
	s := &IdentityService{store: st}
	if raw, ok := st.Get(store.KeyCurrentUser); ok {
		var user models.User
		if err := json.Unmarshal([]byte(raw), &user); err == nil {
			s.current = &user
		}
	}
	return s
}

// Login establishes a session for the account matching both email and
// password exactly. Unknown email and wrong password are indistinguishable;
// both return false and leave the session unchanged.
func (s *IdentityService) Login(email, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.store.Get(store.UserKey(email))
	if !ok {
		return false
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return false
	}
	if user.Email != email || user.Password != password {
		return false
	}

	s.current = &user
	s.persistCurrent()
	return true
}

// Signup creates an account with an empty booking history and establishes
// it as the session. Fails if the email is already registered.
func (s *IdentityService) Signup(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.store.Get(store.UserKey(user.Email)); exists {
		return ErrDuplicateUser
	}

	user.RecentBookings = []models.Booking{}
	s.current = &user
	s.persistCurrent()
	return nil
}

// Logout clears the session. The persisted account record is kept.
func (s *IdentityService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.store.Delete(store.KeyCurrentUser)
}

// UpdateProfile merges the given fields into the current user. No-op
// without an active session.
func (s *IdentityService) UpdateProfile(update ProfileUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return
	}
	if update.Name != nil {
		s.current.Name = *update.Name
	}
	if update.Phone != nil {
		s.current.Phone = *update.Phone
	}
	if update.Gender != nil {
		s.current.Gender = *update.Gender
	}
	if update.Preferences != nil {
		s.current.Preferences = *update.Preferences
	}
	s.persistCurrent()
}

// AddBooking prepends a booking to the current user's history, newest
// first. No-op without an active session.
func (s *IdentityService) AddBooking(booking models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return
	}
	s.current.RecentBookings = append([]models.Booking{booking}, s.current.RecentBookings...)
	s.persistCurrent()
}

// CurrentUser returns a copy of the session user, or nil when logged out.
func (s *IdentityService) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	user := *s.current
	user.RecentBookings = append([]models.Booking(nil), s.current.RecentBookings...)
	return &user
}

// persistCurrent re-serializes the session user under the session key and
// upserts the account record. Callers hold the lock.
func (s *IdentityService) persistCurrent() {
	raw, err := json.Marshal(s.current)
	if err != nil {
		return
	}
	s.store.Set(store.KeyCurrentUser, string(raw))
	s.store.Set(store.UserKey(s.current.Email), string(raw))
}
