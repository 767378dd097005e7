package model

import (
	"time"
)

type ExerciseDifficulty string

const (
	DifficultyEasy   ExerciseDifficulty = "easy"
	DifficultyMedium ExerciseDifficulty = "medium"
	DifficultyHard   ExerciseDifficulty = "hard"
)

type Exercise struct {
	ID         string             `json:"id"`
	Link       string             `json:"link"`
	Name       string             `json:"name"`
	Score      int                `json:"score"`
	Difficulty ExerciseDifficulty `json:"difficulty"`
	Port       *int               `json:"port,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}
