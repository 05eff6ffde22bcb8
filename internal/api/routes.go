package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {
	// Non-POST requests to the API endpoints get a 405, not a 404.
	router.HandleMethodNotAllowed = true

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/chat", h.Chat)       // Chat turn: message -> spec
		apiGroup.POST("/render", h.Render)   // Spec or blocks -> HTML document
		apiGroup.POST("/publish", h.Publish) // Render and persist to the hosting root
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// CORSMiddleware provides the permissive CORS configuration the chat
// frontend relies on; preflight requests are answered with 200.
func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowAllOrigins: true,
		AllowMethods: []string{
			"GET", "POST", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept", "X-Requested-With",
		},
		ExposeHeaders: []string{
			"Content-Type",
		},
		OptionsResponseStatusCode: http.StatusOK,
	}
	return cors.New(config)
}
