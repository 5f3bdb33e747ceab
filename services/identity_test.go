package services

import (
	"encoding/json"
	"errors"
	"testing"

	"glowbook-backend/models"
	"glowbook-backend/store"
)

func TestSignupThenLogin(t *testing.T) {
	st := newTestStore(t)
	id := NewIdentityService(st)

	err := id.Signup(models.User{Email: "jane@example.com", Password: "secret", Name: "Jane"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	user := id.CurrentUser()
	if user == nil {
		t.Fatal("expected session after signup")
	}
	if user.RecentBookings == nil || len(user.RecentBookings) != 0 {
		t.Fatalf("expected empty booking list, got %v", user.RecentBookings)
	}

	id.Logout()
	if id.CurrentUser() != nil {
		t.Fatal("expected no session after logout")
	}

	if !id.Login("jane@example.com", "secret") {
		t.Fatal("expected login to succeed")
	}
	if got := id.CurrentUser(); got == nil || got.Name != "Jane" {
		t.Fatalf("expected Jane as session user, got %+v", got)
	}
}

func TestLoginFailures(t *testing.T) {
	st := newTestStore(t)
	id := NewIdentityService(st)
	if err := id.Signup(models.User{Email: "jane@example.com", Password: "secret", Name: "Jane"}); err != nil {
		t.Fatalf("signup: %v", err)
	}
	id.Logout()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "jane@example.com", password: "nope"},
		{name: "unknown email", email: "john@example.com", password: "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if id.Login(tt.email, tt.password) {
				t.Fatal("expected login to fail")
			}
			if id.CurrentUser() != nil {
				t.Fatal("failed login must leave the session unchanged")
			}
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	st := newTestStore(t)
	id := NewIdentityService(st)

	if err := id.Signup(models.User{Email: "jane@example.com", Password: "secret", Name: "Jane"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	err := id.Signup(models.User{Email: "jane@example.com", Password: "other", Name: "Impostor"})
	if !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}

	// The stored record must be untouched.
	raw, ok := st.Get(store.UserKey("jane@example.com"))
	if !ok {
		t.Fatal("expected stored user record")
	}
	var stored models.User
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatalf("unmarshal stored user: %v", err)
	}
	if stored.Name != "Jane" || stored.Password != "secret" {
		t.Fatalf("duplicate signup altered the stored user: %+v", stored)
	}
}

func TestUpdateProfileNoSession(t *testing.T) {
	st := newTestStore(t)
	id := NewIdentityService(st)

	name := "Ghost"
	id.UpdateProfile(ProfileUpdate{Name: &name})

	if id.CurrentUser() != nil {
		t.Fatal("expected update without session to be a no-op")
	}
	if _, ok := st.Get(store.KeyCurrentUser); ok {
		t.Fatal("no-op update must not persist a session")
	}
}

func TestUpdateProfileMergesFields(t *testing.T) {
	st := newTestStore(t)
	id := NewIdentityService(st)
	if err := id.Signup(models.User{Email: "jane@example.com", Password: "secret", Name: "Jane"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	gender := "Male"
	prefs := []string{"Haircut"}
	id.UpdateProfile(ProfileUpdate{Gender: &gender, Preferences: &prefs})

	user := id.CurrentUser()
	if user.Gender != "Male" {
		t.Fatalf("expected gender Male, got %q", user.Gender)
	}
	if len(user.Preferences) != 1 || user.Preferences[0] != "Haircut" {
		t.Fatalf("expected preferences [Haircut], got %v", user.Preferences)
	}
	if user.Name != "Jane" {
		t.Fatalf("untouched field changed: %q", user.Name)
	}

	// Both the session key and the account record are re-persisted.
	for _, key := range []string{store.KeyCurrentUser, store.UserKey("jane@example.com")} {
		raw, ok := st.Get(key)
		if !ok {
			t.Fatalf("expected key %q", key)
		}
		var stored models.User
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			t.Fatalf("unmarshal %q: %v", key, err)
		}
		if stored.Gender != "Male" {
			t.Fatalf("key %q not updated: %+v", key, stored)
		}
	}
}

func TestAddBookingNoSession(t *testing.T) {
	st := newTestStore(t)
	id := NewIdentityService(st)

	id.AddBooking(models.Booking{ID: "BK-1"})

	if _, ok := st.Get(store.KeyCurrentUser); ok {
		t.Fatal("expected no observable state change without a session")
	}
}

func TestAddBookingNewestFirst(t *testing.T) {
	st := newTestStore(t)
	id := NewIdentityService(st)
	if err := id.Signup(models.User{Email: "jane@example.com", Password: "secret", Name: "Jane"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	id.AddBooking(models.Booking{ID: "BK-1"})
	id.AddBooking(models.Booking{ID: "BK-2"})
	id.AddBooking(models.Booking{ID: "BK-3"})

	bookings := id.CurrentUser().RecentBookings
	if len(bookings) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(bookings))
	}
	for i, want := range []string{"BK-3", "BK-2", "BK-1"} {
		if bookings[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, bookings[i].ID)
		}
	}
}

func TestSessionRehydration(t *testing.T) {
	st := newTestStore(t)
	id := NewIdentityService(st)
	if err := id.Signup(models.User{Email: "jane@example.com", Password: "secret", Name: "Jane"}); err != nil {
		t.Fatalf("signup: %v", err)
	}
	id.AddBooking(models.Booking{ID: "BK-1", SalonName: "Glow & Style Studio"})

	// A new service over the same store picks up the persisted session.
	restarted := NewIdentityService(st)
	user := restarted.CurrentUser()
	if user == nil {
		t.Fatal("expected rehydrated session")
	}
	if user.Email != "jane@example.com" || len(user.RecentBookings) != 1 {
		t.Fatalf("rehydrated session incomplete: %+v", user)
	}
}
