package entities

import "time"

// AdminUser is an account allowed to review budgets and edit cost factors.
//
// Storage model (DynamoDB):
//   - PK: username (unique by construction)
//
// PasswordHash is a salted PBKDF2 digest; plaintext passwords are never stored.
type AdminUser struct {
	ID                 int64     `json:"id"`
	Username           string    `json:"username"`
	PasswordHash       string    `json:"-"`
	Active             bool      `json:"active"`
	MustChangePassword bool      `json:"mustChangePassword"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// Session binds an opaque bearer token to the admin who logged in.
//
// Sessions have no expiry; CreatedAt is kept so one can be added later.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}
