package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/devraj/lecturehall/internal/app/models"
	"github.com/devraj/lecturehall/internal/app/models/dto"
	"github.com/devraj/lecturehall/internal/app/repositories"
	"github.com/devraj/lecturehall/internal/pkg/validation"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	GetCourseOverview(ctx context.Context) (*dto.CourseOverviewResponse, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo repositories.ICourseRepository
	userRepo   repositories.IUserRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.ICourseRepository, userRepo repositories.IUserRepository) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		userRepo:   userRepo,
	}
}

// validateCourse applies the authoritative field rules. The binding tags on
// the request carry the same bounds, the service checks again regardless.
func (s *courseServiceImpl) validateCourse(req *dto.CreateCourseRequest) error {
	if err := validation.ValidateCourseName(strings.TrimSpace(req.Name)); err != nil {
		return err
	}
	if err := validation.ValidateCourseLevel(models.CourseLevel(req.Level)); err != nil {
		return err
	}
	if err := validation.ValidateDescription(req.Description); err != nil {
		return err
	}
	return validation.ValidateImageURL(req.Image)
}

// CreateCourse validates the payload and persists a new course.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if err := s.validateCourse(req); err != nil {
		return nil, err
	}

	course := &models.Course{
		Name:        strings.TrimSpace(req.Name),
		Level:       models.CourseLevel(req.Level),
		Description: req.Description,
		Image:       req.Image,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("course creation error: %w", err)
	}

	return course, nil
}

// GetCourseOverview returns every course together with every instructor, the
// data the lecture-scheduling form is populated from.
func (s *courseServiceImpl) GetCourseOverview(ctx context.Context) (*dto.CourseOverviewResponse, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}

	instructors, err := s.userRepo.ListByRole(ctx, models.RoleInstructor)
	if err != nil {
		return nil, fmt.Errorf("error listing instructors: %w", err)
	}

	resp := &dto.CourseOverviewResponse{
		Courses:     courses,
		Instructors: make([]dto.UserResponse, 0, len(instructors)),
	}
	for i := range instructors {
		resp.Instructors = append(resp.Instructors, dto.NewUserResponse(&instructors[i]))
	}

	return resp, nil
}
