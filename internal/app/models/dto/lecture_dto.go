package dto

import "time"

// CreateLectureRequest represents a lecture scheduling payload: a course
// identifier, the assigned instructor's email and the lecture date.
type CreateLectureRequest struct {
	Course     int64     `json:"course" binding:"required,min=1"`
	Instructor string    `json:"instructor" binding:"required,email"`
	Date       time.Time `json:"date" binding:"required"`
}
