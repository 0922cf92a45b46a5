package entity

import "time"

// User holds the stored account record.
// Password is a bcrypt hash; it must never leave the application layer.
type User struct {
	ID        string
	Email     string
	Password  string
	Name      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SafeUser is the projection returned to callers: the user without the
// password hash.
type SafeUser struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

// Safe strips the password hash from a user.
func (u *User) Safe() *SafeUser {
	return &SafeUser{ID: u.ID, Email: u.Email, Name: u.Name}
}
