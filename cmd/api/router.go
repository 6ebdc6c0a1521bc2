package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "Welcome to Blogging API"})
	})
	router.GET("/health", healthCheckHandler(c))

	setupAuthRoutes(router, c)
	setupBlogRoutes(router, c)

	return router
}

func setupAuthRoutes(router *gin.Engine, c *container.Container) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", c.UserHandler.Signup)
		auth.POST("/login", c.UserHandler.Login)
	}
}

func setupBlogRoutes(router *gin.Engine, c *container.Container) {
	blogs := router.Group("/blogs")
	blogs.Use(middleware.Auth(c.JWTManager))
	{
		blogs.GET("", c.BlogHandler.List)
		blogs.POST("", c.BlogHandler.Create)
		blogs.PUT("/:id", c.BlogHandler.Update)
		blogs.DELETE("/:id", c.BlogHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		checks := gin.H{"database": "ok", "cache": "ok"}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			checks["database"] = err.Error()
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			checks["cache"] = err.Error()
		}

		ctx.JSON(status, gin.H{"status": http.StatusText(status), "checks": checks})
	}
}
