package container

import (
	"log/slog"

	"github.com/joshua-takyi/skillswap/internal/config"
	"github.com/joshua-takyi/skillswap/internal/metrics"
	"github.com/joshua-takyi/skillswap/internal/models"
	"github.com/joshua-takyi/skillswap/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	MongoDBClient *mongo.Client
	Metrics       *metrics.Collector

	UserService      *services.UserService
	MessageService   *services.MessageService
	ScheduleService  *services.ScheduleService
	ReviewService    *services.ReviewService
	DashboardService *services.DashboardService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, mongoDBClient *mongo.Client) *Container {
	repo := models.MongodbNewRepo(mongoDBClient)

	userService := services.NewUserService(repo, []byte(cfg.JWTSecret), cfg.TokenTTL)
	messageService := services.NewMessageService(repo)
	scheduleService := services.NewScheduleService(repo)
	reviewService := services.NewReviewService(repo)
	dashboardService := services.NewDashboardService(repo, repo, repo)

	return &Container{
		Logger:           logger,
		Config:           cfg,
		MongoDBClient:    mongoDBClient,
		Metrics:          metrics.NewCollector(),
		UserService:      userService,
		MessageService:   messageService,
		ScheduleService:  scheduleService,
		ReviewService:    reviewService,
		DashboardService: dashboardService,
	}
}
