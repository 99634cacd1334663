package api

import (
	"log/slog"
	"net/http"

	"innkeep/internal/cache"
	"innkeep/internal/config"
	"innkeep/internal/database"
	"innkeep/internal/handlers"
	"innkeep/internal/logger"
	"innkeep/internal/messaging"
	"innkeep/internal/metrics"
	"innkeep/internal/middleware"
	"innkeep/internal/repository"
	"innkeep/internal/search"
	"innkeep/internal/service"

	"github.com/gin-gonic/gin"
)

// Server wires the HTTP API together
type Server struct {
	router   *gin.Engine
	config   *config.Config
	db       *database.DB
	nats     *messaging.NATSClient
	cache    *cache.Client
	search   *search.Client
	services *service.Services
	repos    *repository.Repositories
}

func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := db.RunMigrations(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", "error", err)
	}

	// Cache and search are optional accelerators; the API works without them
	var cacheClient *cache.Client
	if cfg.Cache.Enabled {
		cacheClient, err = cache.NewClient(cfg.Cache)
		if err != nil {
			slog.Warn("Cache unavailable, continuing without it", "error", err)
			cacheClient = nil
		}
	}

	var searchClient *search.Client
	if cfg.Elasticsearch.Enabled {
		searchClient, err = search.NewClient(cfg.Elasticsearch)
		if err != nil {
			slog.Warn("Search index unavailable, continuing with SQL search", "error", err)
			searchClient = nil
		}
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, natsClient, searchClient, cacheClient)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(metrics.HTTP())

	server := &Server{
		router:   router,
		config:   cfg,
		db:       db,
		nats:     natsClient,
		cache:    cacheClient,
		search:   searchClient,
		services: services,
		repos:    repos,
	}

	server.setupRoutes()

	return server
}

func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services, s.cache)

	api := s.router.Group("/api")
	api.Use(middleware.BasicAuth(s.repos.Admins, s.cache))
	{
		bookings := api.Group("/bookings")
		{
			bookings.POST("", h.CreateBooking)
			bookings.GET("", h.ListBookings)
			bookings.GET("/:id", h.GetBooking)
			bookings.PUT("/:id", h.UpdateBooking)
			bookings.POST("/:id/status", h.SetBookingStatus)
			bookings.DELETE("/:id", h.DeleteBooking)
		}

		events := api.Group("/events")
		{
			events.POST("", h.CreateEvent)
			events.GET("", h.ListEvents)
			events.GET("/:id", h.GetEvent)
			events.PUT("/:id", h.UpdateEvent)
			events.POST("/:id/status", h.SetEventStatus)
			events.DELETE("/:id", h.DeleteEvent)
		}

		rooms := api.Group("/rooms")
		{
			rooms.POST("", h.CreateRoom)
			rooms.GET("", h.ListRooms)
			rooms.GET("/:id", h.GetRoom)
			rooms.PUT("/:id", h.UpdateRoom)
			rooms.POST("/:id/status", h.SetRoomStatus)
			rooms.DELETE("/:id", h.DeleteRoom)
		}

		inventory := api.Group("/inventory")
		{
			inventory.POST("", h.CreateInventoryItem)
			inventory.GET("", h.ListInventoryItems)
			inventory.GET("/:id", h.GetInventoryItem)
			inventory.PUT("/:id", h.UpdateInventoryItem)
			inventory.DELETE("/:id", h.DeleteInventoryItem)
		}

		menu := api.Group("/menu")
		{
			menu.POST("", h.CreateMenuItem)
			menu.GET("", h.ListMenuItems)
			menu.GET("/:id", h.GetMenuItem)
			menu.PUT("/:id", h.UpdateMenuItem)
			menu.POST("/:id/status", h.SetMenuItemStatus)
			menu.DELETE("/:id", h.DeleteMenuItem)
		}

		api.GET("/calendar-bookings", h.CalendarBookings)
		api.GET("/calendar-events", h.CalendarEvents)
	}

	s.router.GET("/health", s.healthCheck)
	s.router.GET("/metrics", metrics.Handler())
}

func (s *Server) healthCheck(c *gin.Context) {
	status := http.StatusOK
	health := gin.H{
		"status":  "ok",
		"service": "innkeep-api",
		"version": "1.0.0",
	}

	if err := s.db.PingContext(c.Request.Context()); err != nil {
		status = http.StatusServiceUnavailable
		health["status"] = "degraded"
		health["database"] = err.Error()
	} else {
		health["db_open_conns"] = s.db.Stats().OpenConnections
	}

	if s.search != nil {
		if err := s.search.HealthCheck(c.Request.Context()); err != nil {
			health["search"] = "unavailable"
		} else {
			health["search"] = "ok"
		}
	}

	c.JSON(status, health)
}

// GetRouter returns the bare router, used by tests
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Handler returns the router wrapped with the method-override shim. The
// override must rewrite the method before gin matches a route.
func (s *Server) Handler() http.Handler {
	return middleware.MethodOverride(s.router)
}

// Cleanup closes the outbound connections
func (s *Server) Cleanup() error {
	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			slog.Error("Error closing NATS connection", "error", err)
		}
	}

	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			slog.Error("Error closing cache connection", "error", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
			return err
		}
	}

	return nil
}
