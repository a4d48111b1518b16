package domain

import "time"

// Staff represents a staff member attached to a service location
type Staff struct {
	ID         int64
	LocationID int64
	Name       string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
