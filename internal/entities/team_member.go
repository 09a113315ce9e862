// Package entities contains core business entities.
package entities

import "time"

// TeamMember is an institute employee who owns contacts.
type TeamMember struct {
	ID        string
	Name      string
	Email     string
	Role      string
	IsActive  bool
	CreatedAt time.Time
}
