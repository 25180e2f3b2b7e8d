package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devraj/lecturehall/internal/app/models/dto"
	"github.com/devraj/lecturehall/internal/app/services"
	"github.com/devraj/lecturehall/internal/middleware"
	"github.com/devraj/lecturehall/internal/pkg/apperrors"
)

// LectureController handles lecture scheduling operations
type LectureController struct {
	lectureService services.LectureService
	logger         zerolog.Logger
}

// NewLectureController creates a new LectureController
func NewLectureController(lectureService services.LectureService, logger zerolog.Logger) *LectureController {
	return &LectureController{
		lectureService: lectureService,
		logger:         logger,
	}
}

// ScheduleLecture handles lecture creation
// @Summary Schedule a lecture
// @Description Creates a lecture binding a course, an instructor and a date
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CreateLectureRequest true "Lecture payload"
// @Success 201 {object} models.Lecture "Created lecture record"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Course or instructor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/lecture [post]
func (c *LectureController) ScheduleLecture(ctx *gin.Context) {
	var req dto.CreateLectureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid lecture payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid lecture payload: "+err.Error()))
		return
	}

	lecture, err := c.lectureService.ScheduleLecture(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("courseID", req.Course).Str("instructor", req.Instructor).Msg("Failed to schedule lecture")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("lectureID", lecture.ID).Str("instructor", lecture.InstructorEmail).Msg("Lecture scheduled")

	ctx.JSON(http.StatusCreated, lecture)
}

// GetSchedule returns the calling instructor's lecture schedule
// @Summary Get my lecture schedule
// @Description Returns the lectures assigned to the authenticated instructor, identity is taken from the verified token
// @Tags instructor
// @Produce json
// @Success 200 {array} models.ScheduleItem
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Instructor role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /instructor/getSchedule [get]
func (c *LectureController) GetSchedule(ctx *gin.Context) {
	email, ok := middleware.CallerEmail(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrAuthRequired)
		return
	}

	items, err := c.lectureService.GetScheduleByInstructor(ctx.Request.Context(), email)
	if err != nil {
		c.logger.Error().Err(err).Str("instructor", email).Msg("Failed to load schedule")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}
