package models

import "time"

// Lecture binds one course, one instructor and one date.
//
// CourseID and InstructorEmail are plain references: the storage layer does
// not enforce them, the service layer verifies both targets exist before a
// lecture is created.
type Lecture struct {
	ID              int64     `json:"id" db:"id"`
	CourseID        int64     `json:"course" db:"course_id"`
	InstructorEmail string    `json:"instructor" db:"instructor_email"`
	Date            time.Time `json:"date" db:"date"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// ScheduleItem is one row of an instructor's lecture schedule.
type ScheduleItem struct {
	CourseName string    `json:"courseName" db:"course_name"`
	Date       time.Time `json:"date" db:"date"`
}
