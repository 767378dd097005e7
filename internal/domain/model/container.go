package model

import (
	"time"
)

// Container is a deployed challenge instance. Once the deadline passes
// the expiry worker detaches it from its competitions.
type Container struct {
	ID        string    `json:"id"`
	Deadline  time.Time `json:"deadline"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Container) Expired(now time.Time) bool {
	return c.Deadline.Before(now)
}
