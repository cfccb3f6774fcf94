package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/recipewreck/backend/internal/api"
	"github.com/recipewreck/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	wreckHandler *api.WreckHandler,
	roleHandler *api.RoleHandler,
	limiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://frontend:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Generation endpoints are throttled; everything else is open.
	wrecks := v1.Group("/wrecks")
	{
		wrecks.POST("/generate", limiter.Middleware(), wreckHandler.Generate)
	}

	roles := v1.Group("/roles")
	{
		roles.POST("/chat", limiter.Middleware(), roleHandler.Chat)
		roles.GET("", roleHandler.ListRoles)
		roles.POST("", roleHandler.CreateRole)
		roles.GET("/:id", roleHandler.GetRole)
		roles.PUT("/:id", roleHandler.UpdateRole)
		roles.DELETE("/:id", roleHandler.DeleteRole)
	}

	return router
}
