package domain

import "time"

// User is a registered customer. The authenticated principal passed
// into the core is the user's ID.
type User struct {
	ID             string
	Email          string
	Name           string
	HashedPassword string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
