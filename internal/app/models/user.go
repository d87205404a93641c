package models

import "time"

// User defines the user model based on the 'users' table. Email is the
// unique lookup key used by the access gate; the remaining profile fields
// are pass-through data supplied by the client at registration.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name,omitempty" db:"name"`
	PhotoURL  string    `json:"photoUrl,omitempty" db:"photo_url"`
	Role      string    `json:"role,omitempty" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
