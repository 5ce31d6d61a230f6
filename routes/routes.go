package routes

import (
	"net/http"
	"time"

	"stagelink/handlers"
	"stagelink/middleware"
	"stagelink/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// RegisterCORS applies the global CORS policy to the router.
func RegisterCORS(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

// RegisterAccountRoutes registers signup/signin endpoints.
func RegisterAccountRoutes(r *gin.Engine, h *handlers.AccountHandler, authCache *redis.Client) {
	api := r.Group("/api/accounts")
	{
		api.POST("/signup", h.SignUpHandler)
		api.POST("/signin", h.SignInHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(authCache))
		api.GET("/me", h.MeHandler)
	}
}

// RegisterScheduleRoutes registers the musician calendar endpoints.
func RegisterScheduleRoutes(r *gin.Engine, h *handlers.ScheduleHandler, authCache *redis.Client) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.JWTAuthMiddleware(authCache), middleware.RequireRole(models.RoleMusician))
		api.POST("/conflicts", h.CheckConflictsHandler)
		api.POST("/events", h.CreateEventHandler)
		api.DELETE("/intervals/:intervalID", h.CancelIntervalHandler)
		api.POST("/availability/bulk", h.BulkAvailabilityHandler)
		api.GET("/calendar", h.ListCalendarHandler)
	}
}

// RegisterGigRoutes registers the gig posting and hiring endpoints.
func RegisterGigRoutes(r *gin.Engine, h *handlers.GigHandler, authCache *redis.Client) {
	api := r.Group("/api/gigs")
	{
		api.Use(middleware.JWTAuthMiddleware(authCache))
		api.GET("/open", middleware.RequireRole(models.RoleMusician), h.BrowseOpenGigsHandler)
		api.GET("/:gigID", h.GetGigHandler)
		api.POST("/:gigID/applications", middleware.RequireRole(models.RoleMusician), h.ApplyHandler)

		// Gig-owner actions.
		company := api.Group("")
		company.Use(middleware.RequireRole(models.RoleCompany))
		company.POST("", h.CreateGigHandler)
		company.GET("", h.ListGigsHandler)
		company.POST("/:gigID/hire", h.HireHandler)
		company.POST("/:gigID/close", h.CloseGigHandler)
		company.POST("/:gigID/cancel", h.CancelGigHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm StageLink"})
	})
}
