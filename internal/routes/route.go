package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/skillswap/internal/container"
	"github.com/joshua-takyi/skillswap/internal/handlers"
	"github.com/joshua-takyi/skillswap/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{c.Config.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	rateLimiter := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(rateLimiter.Middleware())
	r.Use(c.Metrics.Middleware())
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{
				"status":  "OK",
				"service": "skillswap-api",
			})
		})
		v1.GET("/metrics", c.Metrics.Handler())

		// public routes
		v1.POST("/register", handlers.Register(c.UserService))
		v1.POST("/login", handlers.Login(c.UserService))
		v1.POST("/logout", handlers.Logout())

		v1.GET("/users", handlers.ListUsers(c.UserService))
		v1.GET("/users/:username", handlers.GetProfile(c.UserService))
		v1.GET("/skills", handlers.SkillCatalogue(c.UserService))
		v1.GET("/skills/:skillName", handlers.SkillDetails(c.UserService))
		v1.GET("/search", handlers.Search(c.UserService))
		v1.GET("/reviews/:reviewedUser", handlers.GetReviews(c.ReviewService))
	}

	// protected routes: the session token identifies the caller, and each
	// handler checks ownership against it
	protected := v1.Group("/")
	protected.Use(middleware.AuthRequired([]byte(c.Config.JWTSecret)))
	{
		protected.PUT("/users/:username", handlers.UpdateProfile(c.UserService))

		protected.POST("/messages", handlers.SendMessage(c.MessageService))
		protected.GET("/messages/:userA/:userB", handlers.GetConversation(c.MessageService))

		protected.POST("/schedules", handlers.CreateSchedule(c.ScheduleService))
		protected.GET("/schedules/:username", handlers.GetSchedules(c.ScheduleService))

		protected.POST("/reviews", handlers.CreateReview(c.ReviewService))

		protected.GET("/dashboard-data/:username", handlers.DashboardData(c.DashboardService))
	}

	return r
}
