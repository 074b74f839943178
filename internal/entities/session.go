package entities

import "time"

type Session struct {
	ID         string
	Email      string
	SignedInAt time.Time
	LastSeenAt time.Time
}

type Credentials struct {
	Email    string
	Password string
}

type SignedIn struct {
	Session   Session
	Token     string
	ExpiresAt time.Time
}

type Notification struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
	ExpiresAt   time.Time
}
