package models

import "time"

type User struct {
	ID         int64     `json:"id" db:"id"`
	Username   string    `json:"username" db:"username" validate:"required,username"`
	DateJoined time.Time `json:"date_joined" db:"date_joined"`
}

// UserProfile is the wire shape for GET /users/{username}.
type UserProfile struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	DateJoined time.Time `json:"date_joined"`
	Friends    []string  `json:"friends"`
}
