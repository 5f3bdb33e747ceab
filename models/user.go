package models

// User is the account record persisted in the local store, keyed by email.
// Passwords are stored as-is; this app ships with a simulated backend and
// makes no attempt at real credential security.
type User struct {
	Email          string    `json:"email"`
	Password       string    `json:"password,omitempty"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone,omitempty"`
	Gender         string    `json:"gender,omitempty"`
	Preferences    []string  `json:"preferences,omitempty"`
	RecentBookings []Booking `json:"recentBookings"`
}

// Booking is a finalized appointment embedded in a user's history,
// newest first. Immutable once created.
type Booking struct {
	ID           string `json:"id"`
	SalonName    string `json:"salonName"`
	SalonAddress string `json:"salonAddress"`
	ServiceName  string `json:"serviceName"`
	Date         string `json:"date"` // RFC3339
	Time         string `json:"time"` // slot label, e.g. "10:00 AM"
	QRValue      string `json:"qrValue"`
	Timestamp    int64  `json:"timestamp"` // unix millis
}
