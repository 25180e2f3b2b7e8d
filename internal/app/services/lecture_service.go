package services

import (
	"context"
	"fmt"

	"github.com/devraj/lecturehall/internal/app/models"
	"github.com/devraj/lecturehall/internal/app/models/dto"
	"github.com/devraj/lecturehall/internal/app/repositories"
	"github.com/devraj/lecturehall/internal/pkg/apperrors"
)

// LectureService defines the interface for lecture-related operations
type LectureService interface {
	ScheduleLecture(ctx context.Context, req *dto.CreateLectureRequest) (*models.Lecture, error)
	GetScheduleByInstructor(ctx context.Context, email string) ([]models.ScheduleItem, error)
}

// lectureServiceImpl implements the LectureService interface
type lectureServiceImpl struct {
	lectureRepo repositories.ILectureRepository
	courseRepo  repositories.ICourseRepository
	userRepo    repositories.IUserRepository
}

// NewLectureService creates a new lecture service instance
func NewLectureService(lectureRepo repositories.ILectureRepository, courseRepo repositories.ICourseRepository, userRepo repositories.IUserRepository) LectureService {
	return &lectureServiceImpl{
		lectureRepo: lectureRepo,
		courseRepo:  courseRepo,
		userRepo:    userRepo,
	}
}

// ScheduleLecture creates a lecture binding a course, an instructor and a
// date. The store holds no foreign keys, so both references are verified
// here before the insert.
func (s *lectureServiceImpl) ScheduleLecture(ctx context.Context, req *dto.CreateLectureRequest) (*models.Lecture, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", apperrors.ErrValidationFailed)
	}

	if _, err := s.courseRepo.GetByID(ctx, req.Course); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Instructor)
	if err != nil {
		return nil, apperrors.ErrInstructorNotFound
	}
	if user.Role != models.RoleInstructor {
		return nil, apperrors.ErrInstructorNotFound
	}

	lecture := &models.Lecture{
		CourseID:        req.Course,
		InstructorEmail: req.Instructor,
		Date:            req.Date,
	}

	if err := s.lectureRepo.Create(ctx, lecture); err != nil {
		return nil, fmt.Errorf("lecture creation error: %w", err)
	}

	return lecture, nil
}

// GetScheduleByInstructor returns the lectures assigned to the given
// instructor, each with the course name and date.
func (s *lectureServiceImpl) GetScheduleByInstructor(ctx context.Context, email string) ([]models.ScheduleItem, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: instructor email is required", apperrors.ErrValidationFailed)
	}

	items, err := s.lectureRepo.ListScheduleByInstructor(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error getting schedule: %w", err)
	}

	return items, nil
}
