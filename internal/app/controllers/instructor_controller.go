package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devraj/lecturehall/internal/app/services"
	"github.com/devraj/lecturehall/internal/middleware"
)

// InstructorController handles instructor listing for the admin view
type InstructorController struct {
	instructorService services.InstructorService
	logger            zerolog.Logger
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(instructorService services.InstructorService, logger zerolog.Logger) *InstructorController {
	return &InstructorController{
		instructorService: instructorService,
		logger:            logger,
	}
}

// ListInstructors lists all instructor accounts
// @Summary List instructors
// @Description Returns every user with the instructor role (name, email, createdAt, role)
// @Tags admin
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/instructor [get]
func (c *InstructorController) ListInstructors(ctx *gin.Context) {
	instructors, err := c.instructorService.ListInstructors(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list instructors")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, instructors)
}
