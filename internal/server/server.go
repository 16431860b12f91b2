// Package server wires the HTTP surface: routes, origin policy and the
// mapping from failures to response codes.
package server

import (
	"database/sql"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"celestial-payments/internal/config"
	"celestial-payments/internal/repo"
	"celestial-payments/internal/service"
)

type Server struct {
	cfg      *config.Config
	orders   service.OrderService
	bookings repo.BookingRepo
	db       *sql.DB // nil when booking persistence is disabled
	log      zerolog.Logger
}

func New(cfg *config.Config, orders service.OrderService, bookings repo.BookingRepo, db *sql.DB, log zerolog.Logger) *Server {
	return &Server{
		cfg:      cfg,
		orders:   orders,
		bookings: bookings,
		db:       db,
		log:      log,
	}
}

// Router builds the gin engine. The CORS policy runs before every handler,
// so a rejected origin never reaches order logic.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())
	r.Use(cors.New(s.corsConfig()))

	r.GET("/health", s.health)
	r.POST("/payment", s.createPayment)
	r.POST("/verify", s.verifyPayment)
	r.POST("/dataslotbooked", s.slotBooked)

	return r
}

func (s *Server) corsConfig() cors.Config {
	return cors.Config{
		// Requests without an Origin header (curl, mobile apps, server to
		// server) bypass the check inside the middleware itself.
		AllowOriginFunc: func(origin string) bool {
			return slices.Contains(s.cfg.AllowedOrigins, origin)
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: s.cfg.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
