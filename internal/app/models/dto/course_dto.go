package dto

import "github.com/devraj/lecturehall/internal/app/models"

// CreateCourseRequest represents a course creation payload.
// The binding tags mirror the client-side schema, the course service
// re-validates independently since the client is not a trust boundary.
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=100"`
	Level       string `json:"level" binding:"required,courselevel"`
	Description string `json:"description" binding:"required,min=10,max=500"`
	Image       string `json:"image" binding:"required,url"`
}

// CreateCourseResponse confirms a course was created
type CreateCourseResponse struct {
	Created bool `json:"created" example:"true"`
}

// CourseOverviewResponse feeds the course/lecture-scheduling view: every
// course plus every instructor the admin can assign.
type CourseOverviewResponse struct {
	Courses     []models.Course `json:"courses"`
	Instructors []UserResponse  `json:"instructors"`
}
