package transport

import (
	"github.com/gin-gonic/gin"
	"github.com/shopstudio/bg-removal-service/internal/pkg/auth"
	"github.com/shopstudio/bg-removal-service/internal/transport/middleware"
)

func InitRoutes(imgHandler *ImageHandler, validator auth.Validator) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	api := router.Group("/api")
	api.Use(middleware.Auth(validator))
	{
		api.POST("/remove-background", imgHandler.RemoveBackground)
		api.POST("/process-image", imgHandler.ProcessImage)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "bg-removal-service",
		})
	})
	return router
}
