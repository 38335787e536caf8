package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"eventsync/internal/bookings"
	"eventsync/internal/events"
	"eventsync/internal/notifications"
	"eventsync/internal/organisers"
	"eventsync/internal/shared/config"
	"eventsync/internal/shared/database"
	"eventsync/internal/users"
	"eventsync/internal/venues"
	"eventsync/pkg/cache"
	"eventsync/pkg/logger"
)

// Router wires every domain package to its routes
type Router struct {
	config   *config.Config
	db       *database.DB
	cache    cache.Service
	producer notifications.Producer
	log      *logger.Logger
}

func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		cache:    cache.NewService(db.GetRedis()),
		producer: producer,
		log:      log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupUserRoutes(api)
		r.setupOrganiserRoutes(api)
		r.setupVenueRoutes(api)
		r.setupEventRoutes(api)
		r.setupBookingRoutes(api)
	}
}

func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "eventsync-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "eventsync-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

func (r *Router) setupUserRoutes(rg *gin.RouterGroup) {
	repo := users.NewRepository(r.db.GetPostgreSQL())
	service := users.NewService(repo, r.config)
	controller := users.NewController(service)
	users.SetupUserRoutes(rg, r.config, controller)
}

func (r *Router) setupOrganiserRoutes(rg *gin.RouterGroup) {
	repo := organisers.NewRepository(r.db.GetPostgreSQL())
	service := organisers.NewService(repo, r.config)
	controller := organisers.NewController(service)
	organisers.SetupOrganiserRoutes(rg, r.config, controller)
}

func (r *Router) setupVenueRoutes(rg *gin.RouterGroup) {
	repo := venues.NewRepository(r.db.GetPostgreSQL())
	service := venues.NewService(repo)
	controller := venues.NewController(service)
	venues.SetupVenueRoutes(rg, r.config, controller)
}

func (r *Router) setupEventRoutes(rg *gin.RouterGroup) {
	repo := events.NewRepository(r.db.GetPostgreSQL())
	service := events.NewService(repo, r.cache, r.config.Redis.SeatCacheTTL)
	controller := events.NewController(service)
	events.SetupEventRoutes(rg, r.config, controller)
}

func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	repo := bookings.NewRepository(r.db.GetPostgreSQL())
	service := bookings.NewService(repo, r.cache, r.producer, r.log)
	controller := bookings.NewController(service)
	bookings.SetupBookingRoutes(rg, r.config, controller)
}
