package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"yamdb-backend/internal/shared/middleware"
	"yamdb-backend/pkg/container"
)

// SetupRouter declares the full /api/v1 surface. Read endpoints on the
// catalog and reviews are public; writes require a token, and catalog writes
// an admin one. Ownership checks on reviews and comments live in the service
// layer, not here.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	auth := middleware.AuthMiddleware(c.Tokens)
	admin := middleware.AdminMiddleware()

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/signup", c.UserHandler.Signup)
			authRoutes.POST("/token", c.UserHandler.ObtainToken)
		}

		users := v1.Group("/users", auth)
		{
			users.GET("/me", c.UserHandler.GetMe)
			users.PATCH("/me", c.UserHandler.UpdateMe)

			directory := users.Group("", admin)
			{
				directory.GET("", c.UserHandler.ListUsers)
				directory.POST("", c.UserHandler.CreateUser)
				directory.GET("/:username", c.UserHandler.GetUser)
				directory.PATCH("/:username", c.UserHandler.UpdateUser)
				directory.DELETE("/:username", c.UserHandler.DeleteUser)
			}
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", c.CategoryHandler.ListCategories)
			categories.POST("", auth, admin, c.CategoryHandler.CreateCategory)
			categories.DELETE("/:slug", auth, admin, c.CategoryHandler.DeleteCategory)
		}

		genres := v1.Group("/genres")
		{
			genres.GET("", c.GenreHandler.ListGenres)
			genres.POST("", auth, admin, c.GenreHandler.CreateGenre)
			genres.DELETE("/:slug", auth, admin, c.GenreHandler.DeleteGenre)
		}

		titles := v1.Group("/titles")
		{
			titles.GET("", c.TitleHandler.ListTitles)
			titles.GET("/:title_id", c.TitleHandler.GetTitle)
			titles.POST("", auth, admin, c.TitleHandler.CreateTitle)
			titles.PATCH("/:title_id", auth, admin, c.TitleHandler.UpdateTitle)
			titles.DELETE("/:title_id", auth, admin, c.TitleHandler.DeleteTitle)

			reviews := titles.Group("/:title_id/reviews")
			{
				reviews.GET("", c.ReviewHandler.ListReviews)
				reviews.GET("/:review_id", c.ReviewHandler.GetReview)
				reviews.POST("", auth, c.ReviewHandler.CreateReview)
				reviews.PATCH("/:review_id", auth, c.ReviewHandler.UpdateReview)
				reviews.DELETE("/:review_id", auth, c.ReviewHandler.DeleteReview)

				comments := reviews.Group("/:review_id/comments")
				{
					comments.GET("", c.ReviewHandler.ListComments)
					comments.GET("/:comment_id", c.ReviewHandler.GetComment)
					comments.POST("", auth, c.ReviewHandler.CreateComment)
					comments.PATCH("/:comment_id", auth, c.ReviewHandler.UpdateComment)
					comments.DELETE("/:comment_id", auth, c.ReviewHandler.DeleteComment)
				}
			}
		}
	}

	return router
}

// healthCheckHandler pings postgres and redis with a short deadline so a
// stuck backend cannot hang the probe.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		checks := gin.H{"database": "ok", "redis": "ok"}

		if err := c.DB.HealthCheck(checkCtx); err != nil {
			checks["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if err := c.Redis.HealthCheck(checkCtx); err != nil {
			checks["redis"] = err.Error()
			status = http.StatusServiceUnavailable
		}

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}

		ctx.JSON(status, gin.H{
			"status":  overall,
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}
