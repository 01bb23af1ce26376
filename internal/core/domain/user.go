package domain

import "time"

// User models a registered account. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	ProfilePhoto Asset     `json:"profile_photo"`
	Bio          string    `json:"bio,omitempty"`
	IsAdmin      bool      `json:"is_admin"`
	IsVerified   bool      `json:"is_account_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity derives the request identity this user authenticates as.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, IsAdmin: u.IsAdmin}
}
