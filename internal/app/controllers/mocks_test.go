package controllers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/devraj/lecturehall/internal/app/models"
	"github.com/devraj/lecturehall/internal/app/models/dto"
	"github.com/devraj/lecturehall/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := validation.RegisterCustomValidators(); err != nil {
		panic(err)
	}
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

type mockCourseService struct {
	mock.Mock
}

func (m *mockCourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *mockCourseService) GetCourseOverview(ctx context.Context) (*dto.CourseOverviewResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CourseOverviewResponse), args.Error(1)
}

type mockLectureService struct {
	mock.Mock
}

func (m *mockLectureService) ScheduleLecture(ctx context.Context, req *dto.CreateLectureRequest) (*models.Lecture, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lecture), args.Error(1)
}

func (m *mockLectureService) GetScheduleByInstructor(ctx context.Context, email string) ([]models.ScheduleItem, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ScheduleItem), args.Error(1)
}

type mockInstructorService struct {
	mock.Mock
}

func (m *mockInstructorService) ListInstructors(ctx context.Context) ([]dto.UserResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.UserResponse), args.Error(1)
}
