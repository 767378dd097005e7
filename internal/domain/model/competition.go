package model

import (
	"time"
)

type Competition struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Organizer  string    `json:"organizer"`
	InviteCode string    `json:"invite_code"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
