package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/devraj/lecturehall/internal/app/models"
	"github.com/devraj/lecturehall/internal/app/models/dto"
	"github.com/devraj/lecturehall/internal/pkg/apperrors"
)

func courseRouter(svc *mockCourseService) *gin.Engine {
	router := gin.New()
	ctrl := NewCourseController(svc, zerolog.Nop())
	router.POST("/admin/course", ctrl.CreateCourse)
	router.GET("/admin/course", ctrl.GetCourseOverview)
	return router
}

func TestCreateCourseEndpoint_Success(t *testing.T) {
	svc := new(mockCourseService)
	svc.On("CreateCourse", mock.Anything, mock.AnythingOfType("*dto.CreateCourseRequest")).
		Return(&models.Course{ID: 1, Name: "Go Fundamentals", Level: models.LevelBeginner}, nil)

	w := postJSON(courseRouter(svc), "/admin/course", `{
		"name": "Go Fundamentals",
		"level": "beginner",
		"description": "An introduction to the Go programming language.",
		"image": "https://example.com/go.png"
	}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"created":true}`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestCreateCourseEndpoint_ValidationError(t *testing.T) {
	svc := new(mockCourseService)
	svc.On("CreateCourse", mock.Anything, mock.AnythingOfType("*dto.CreateCourseRequest")).
		Return(nil, fmt.Errorf("%w: name must be between 3 and 100 characters", apperrors.ErrValidationFailed))

	w := postJSON(courseRouter(svc), "/admin/course", `{
		"name": "Gol",
		"level": "beginner",
		"description": "An introduction to the Go programming language.",
		"image": "https://example.com/go.png"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"validation failed: name must be between 3 and 100 characters"}`, w.Body.String())
}

func TestCreateCourseEndpoint_MalformedBody(t *testing.T) {
	svc := new(mockCourseService)

	w := postJSON(courseRouter(svc), "/admin/course", `{"name": 42}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CreateCourse", mock.Anything, mock.Anything)
}

func TestGetCourseOverviewEndpoint(t *testing.T) {
	svc := new(mockCourseService)
	name := "Rahul Sharma"
	svc.On("GetCourseOverview", mock.Anything).Return(&dto.CourseOverviewResponse{
		Courses: []models.Course{
			{ID: 1, Name: "Go Fundamentals", Level: models.LevelBeginner,
				Description: "An introduction to the Go programming language.",
				Image:       "https://example.com/go.png"},
		},
		Instructors: []dto.UserResponse{
			{ID: 2, Name: &name, Email: "rahul.sharma@gmail.com", Role: "instructor",
				CreatedAt: "2026-08-01T10:00:00Z"},
		},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/course", nil)
	courseRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"courses"`)
	assert.Contains(t, w.Body.String(), `"instructors"`)
	assert.Contains(t, w.Body.String(), `"rahul.sharma@gmail.com"`)
}
