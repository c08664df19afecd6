package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelierhq/atelier/internal/database"
)

type Server struct {
	router  *gin.Engine
	db      *database.DB
	catalog *database.CatalogStore
	orders  *database.OrderStore
}

// NewServer creates a new server instance
func NewServer(db *database.DB) *Server {
	router := gin.Default()

	server := &Server{
		router:  router,
		db:      db,
		catalog: database.NewCatalogStore(db),
		orders:  database.NewOrderStore(db),
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
		api.POST("/validate/:entity", s.validateEntity)

		catalog := api.Group("/catalog")
		{
			catalog.POST("/artists", s.createArtist)
			catalog.GET("/artists/:id", s.getArtist)
			catalog.POST("/categories", s.createCategory)
			catalog.POST("/collections", s.createCollection)
			catalog.POST("/artworks", s.createArtwork)
			catalog.GET("/artworks/:id", s.getArtwork)
		}

		api.POST("/customers", s.createCustomer)
		api.POST("/carts", s.createCart)
		api.POST("/orders", s.createOrder)
		api.GET("/orders/:id", s.getOrder)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	// Check database health
	if err := s.db.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "atelier",
		"version": "0.1.0",
	})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
