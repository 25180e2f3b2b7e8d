package models

import "time"

// CourseLevel represents the difficulty level of a course
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// IsValid reports whether the level is one of the enumerated levels.
func (l CourseLevel) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Course represents a course that lectures can be scheduled for.
type Course struct {
	ID          int64       `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Level       CourseLevel `json:"level" db:"level"`
	Description string      `json:"description" db:"description"`
	Image       string      `json:"image" db:"image"` // Image URL shown on the course card
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
}
