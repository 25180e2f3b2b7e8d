package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/devraj/lecturehall/internal/pkg/apperrors"
	"github.com/devraj/lecturehall/internal/pkg/auth"
)

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid credentials",
			err:        apperrors.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"invalid email or password"}`,
		},
		{
			name:       "authentication required",
			err:        apperrors.ErrAuthRequired,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"authentication required"}`,
		},
		{
			name:       "expired token",
			err:        auth.ErrExpiredToken,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"token expired"}`,
		},
		{
			name:       "invalid token",
			err:        auth.ErrInvalidToken,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"invalid token"}`,
		},
		{
			name:       "malformed authorization header",
			err:        auth.ErrInvalidFormat,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"invalid token format"}`,
		},
		{
			name:       "access denied",
			err:        apperrors.ErrAccessDenied,
			wantStatus: http.StatusForbidden,
			wantBody:   `{"message":"you don't have sufficient permissions for this operation"}`,
		},
		{
			name:       "validation error keeps its message",
			err:        fmt.Errorf("%w: name must be between 3 and 100 characters", apperrors.ErrValidationFailed),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"validation failed: name must be between 3 and 100 characters"}`,
		},
		{
			name:       "course not found",
			err:        apperrors.ErrCourseNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"course not found"}`,
		},
		{
			name:       "instructor not found",
			err:        apperrors.ErrInstructorNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"instructor not found"}`,
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("lookup: %w", apperrors.ErrCourseNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"course not found"}`,
		},
		{
			name:       "duplicate email",
			err:        apperrors.ErrEmailAlreadyExists,
			wantStatus: http.StatusConflict,
			wantBody:   `{"message":"email already exists"}`,
		},
		{
			name:       "unexpected errors stay generic",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
