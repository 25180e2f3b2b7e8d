package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devraj/lecturehall/internal/app/models/dto"
	"github.com/devraj/lecturehall/internal/pkg/apperrors"
	"github.com/devraj/lecturehall/internal/pkg/auth"
)

// HandleAPIError maps application errors onto HTTP responses. Every body is
// a {message} object the client surfaces verbatim; unexpected errors become
// a generic 500 so internals never leak.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(apperrors.ErrAuthRequired.Error()))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(apperrors.ErrInvalidCredentials.Error()))
	case errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrInvalidFormat):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrAccessDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(apperrors.ErrAccessDenied.Error()))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(apperrors.ErrCourseNotFound.Error()))
	case errors.Is(err, apperrors.ErrInstructorNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(apperrors.ErrInstructorNotFound.Error()))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(apperrors.ErrUserNotFound.Error()))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(apperrors.ErrEmailAlreadyExists.Error()))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error"))
	}
}

// AbortWithAPIError writes the mapped response and stops the handler chain.
// Middleware failures go through here so they share the handler mapping.
func AbortWithAPIError(c *gin.Context, err error) {
	HandleAPIError(c, err)
	c.Abort()
}
