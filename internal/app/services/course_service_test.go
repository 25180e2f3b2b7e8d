package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/devraj/lecturehall/internal/app/models"
	"github.com/devraj/lecturehall/internal/app/models/dto"
	"github.com/devraj/lecturehall/internal/pkg/apperrors"
)

func validCourseRequest() *dto.CreateCourseRequest {
	return &dto.CreateCourseRequest{
		Name:        "Go Fundamentals",
		Level:       "beginner",
		Description: "An introduction to the Go programming language.",
		Image:       "https://example.com/go.png",
	}
}

func TestCreateCourse_Success(t *testing.T) {
	courseRepo := new(mockCourseRepository)
	courseRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Course")).
		Run(func(args mock.Arguments) {
			c := args.Get(1).(*models.Course)
			c.ID = 1
			c.CreatedAt = time.Now()
		}).Return(nil)

	svc := NewCourseService(courseRepo, new(mockUserRepository))
	course, err := svc.CreateCourse(context.Background(), validCourseRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(1), course.ID)
	assert.Equal(t, "Go Fundamentals", course.Name)
	assert.Equal(t, models.LevelBeginner, course.Level)
	courseRepo.AssertExpectations(t)
}

func TestCreateCourse_TrimsName(t *testing.T) {
	courseRepo := new(mockCourseRepository)
	courseRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Course")).Return(nil)

	svc := NewCourseService(courseRepo, new(mockUserRepository))
	course, err := svc.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		Name:        "  Go Fundamentals  ",
		Level:       "advanced",
		Description: "An introduction to the Go programming language.",
		Image:       "https://example.com/go.png",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Go Fundamentals", course.Name)
}

func TestCreateCourse_ValidationFailures(t *testing.T) {
	svc := NewCourseService(new(mockCourseRepository), new(mockUserRepository))

	tests := []struct {
		name   string
		mutate func(*dto.CreateCourseRequest)
	}{
		{"name too short", func(r *dto.CreateCourseRequest) { r.Name = "Go" }},
		{"description too short", func(r *dto.CreateCourseRequest) { r.Description = "too short" }},
		{"unknown level", func(r *dto.CreateCourseRequest) { r.Level = "expert" }},
		{"bad image url", func(r *dto.CreateCourseRequest) { r.Image = "not a url" }},
		{"relative image url", func(r *dto.CreateCourseRequest) { r.Image = "/go.png" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCourseRequest()
			tt.mutate(req)
			_, err := svc.CreateCourse(context.Background(), req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestCreateCourse_BoundaryLengths(t *testing.T) {
	courseRepo := new(mockCourseRepository)
	courseRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Course")).Return(nil)
	svc := NewCourseService(courseRepo, new(mockUserRepository))

	req := validCourseRequest()
	req.Name = "Gol"               // exactly at the lower bound
	req.Description = "exactly 10" // 10 characters
	_, err := svc.CreateCourse(context.Background(), req)
	assert.NoError(t, err)
}

func TestGetCourseOverview(t *testing.T) {
	courseRepo := new(mockCourseRepository)
	userRepo := new(mockUserRepository)

	courses := []models.Course{
		{ID: 1, Name: "Go Fundamentals", Level: models.LevelBeginner},
		{ID: 2, Name: "Distributed Systems", Level: models.LevelAdvanced},
	}
	name := "Rahul Sharma"
	instructors := []models.User{
		{ID: 2, Name: &name, Email: "rahul.sharma@gmail.com", Role: models.RoleInstructor},
	}

	courseRepo.On("GetAll", mock.Anything).Return(courses, nil)
	userRepo.On("ListByRole", mock.Anything, models.RoleInstructor).Return(instructors, nil)

	svc := NewCourseService(courseRepo, userRepo)
	resp, err := svc.GetCourseOverview(context.Background())

	assert.NoError(t, err)
	assert.Len(t, resp.Courses, 2)
	assert.Len(t, resp.Instructors, 1)
	assert.Equal(t, "rahul.sharma@gmail.com", resp.Instructors[0].Email)
	assert.Equal(t, "Rahul Sharma", *resp.Instructors[0].Name)
}

func TestGetCourseOverview_Empty(t *testing.T) {
	courseRepo := new(mockCourseRepository)
	userRepo := new(mockUserRepository)
	courseRepo.On("GetAll", mock.Anything).Return([]models.Course{}, nil)
	userRepo.On("ListByRole", mock.Anything, models.RoleInstructor).Return([]models.User{}, nil)

	svc := NewCourseService(courseRepo, userRepo)
	resp, err := svc.GetCourseOverview(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, resp.Courses)
	assert.Empty(t, resp.Courses)
	assert.NotNil(t, resp.Instructors)
	assert.Empty(t, resp.Instructors)
}
