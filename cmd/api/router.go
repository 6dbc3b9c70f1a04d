package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"course-admin-backend/internal/shared/middleware"
	"course-admin-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.CORSOrigins),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		// Admin routes: guard chỉ bật khi AUTH_ENABLED=true,
		// ngược lại auth do gateway bên ngoài đảm nhiệm
		admin := v1.Group("")
		if c.Config.JWT.Enabled {
			admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
		}

		setupCourseRoutes(admin, c)
		setupChapterRoutes(admin, c)
		setupLessonRoutes(admin, c)
		setupUserRoutes(admin, c)
	}

	return router
}

// ========================================
// COURSE ROUTES
// ========================================
func setupCourseRoutes(rg *gin.RouterGroup, c *container.Container) {
	courses := rg.Group("/courses")
	{
		courses.POST("", c.CourseHandler.CreateCourse)
		courses.GET("", c.CourseHandler.GetCourses)
		courses.GET("/:course_id", c.CourseHandler.GetCourse)
		courses.PUT("/:course_id", c.CourseHandler.UpdateCourse)
		courses.DELETE("/:course_id", c.CourseHandler.DeleteCourse)
	}
}

// ========================================
// CHAPTER / LESSON ROUTES
// ========================================
func setupChapterRoutes(rg *gin.RouterGroup, c *container.Container) {
	rg.GET("/chapters/:chapter_id", c.ChapterHandler.GetChapter)
}

func setupLessonRoutes(rg *gin.RouterGroup, c *container.Container) {
	rg.GET("/lessons/:lesson_id", c.LessonHandler.GetLesson)
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(rg *gin.RouterGroup, c *container.Container) {
	users := rg.Group("/users")
	{
		users.POST("", c.UserHandler.CreateUser)
		users.GET("", c.UserHandler.SearchUsers)
		users.GET("/:user_id", c.UserHandler.GetUser)
		users.PUT("/:user_id", c.UserHandler.UpdateUser)
		users.DELETE("/:user_id", c.UserHandler.DeleteUser)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
			health["pool"] = appCtx.DB.Stats()
		}

		// Check redis (không critical)
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
