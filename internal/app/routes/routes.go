package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/devraj/lecturehall/internal/app/controllers"
	"github.com/devraj/lecturehall/internal/app/models"
	"github.com/devraj/lecturehall/internal/middleware"
)

// SetupRouter configures all application routes. The role prefixes are the
// capability sets: /admin requires the admin role, /instructor the
// instructor role, /auth is public.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	lectureController *controllers.LectureController,
	instructorController *controllers.InstructorController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public auth routes ---
	auth := router.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Admin routes ---
	admin := router.Group("/admin")
	admin.Use(authMiddleware.JWTAuth())
	admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/course", courseController.CreateCourse)
		admin.GET("/course", courseController.GetCourseOverview)
		admin.POST("/lecture", lectureController.ScheduleLecture)
		admin.GET("/instructor", instructorController.ListInstructors)
	}

	// --- Instructor routes ---
	instructor := router.Group("/instructor")
	instructor.Use(authMiddleware.JWTAuth())
	instructor.Use(authMiddleware.RoleRequired(models.RoleInstructor))
	{
		instructor.GET("/getSchedule", lectureController.GetSchedule)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
