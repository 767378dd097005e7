package model

import (
	"time"
)

type Team struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	CompetitionID string    `json:"competition_id"`
	CreatorID     string    `json:"creator_id"`
	Score         int       `json:"score"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TeamStanding is one row of a competition leaderboard.
type TeamStanding struct {
	TeamID string `json:"team_id"`
	Name   string `json:"name,omitempty"`
	Score  int    `json:"score"`
	Rank   int    `json:"rank"`
}
