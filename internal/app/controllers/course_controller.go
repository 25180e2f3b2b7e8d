package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devraj/lecturehall/internal/app/models/dto"
	"github.com/devraj/lecturehall/internal/app/services"
	"github.com/devraj/lecturehall/internal/middleware"
)

// CourseController handles course related operations
type CourseController struct {
	courseService services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// CreateCourse handles course creation
// @Summary Create a course
// @Description Creates a new course with name, level, description and image URL
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course payload"
// @Success 201 {object} dto.CreateCourseResponse "Course created"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/course [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid course payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid course payload: "+err.Error()))
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Error().Err(err).Str("name", req.Name).Msg("Failed to create course")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("courseID", course.ID).Str("name", course.Name).Msg("Course created")

	ctx.JSON(http.StatusCreated, dto.CreateCourseResponse{Created: true})
}

// GetCourseOverview lists courses and instructors
// @Summary List courses and instructors
// @Description Returns all courses plus all instructor accounts, used to populate the lecture-scheduling form
// @Tags admin
// @Produce json
// @Success 200 {object} dto.CourseOverviewResponse
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/course [get]
func (c *CourseController) GetCourseOverview(ctx *gin.Context) {
	overview, err := c.courseService.GetCourseOverview(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to load course overview")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, overview)
}
