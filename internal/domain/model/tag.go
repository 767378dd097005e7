package model

import (
	"time"
)

// Tag types are slug-normalized before storage so "Web Exploitation"
// and "web-exploitation" resolve to the same row.
type Tag struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
