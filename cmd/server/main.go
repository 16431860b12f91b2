package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"celestial-payments/internal/config"
	"celestial-payments/internal/database"
	"celestial-payments/internal/infrastructure/cashfree"
	"celestial-payments/internal/repo"
	"celestial-payments/internal/server"
	"celestial-payments/internal/service"
)

func main() {
	cfg := config.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	gateway := cashfree.New(cfg.CashfreeProduction(), cfg.ClientID, cfg.ClientSecret)
	orders := service.NewOrderService(gateway, cfg.FrontendBaseURL, log)

	var db *sql.DB
	bookings := repo.NewLogBookingRepo(log)
	if cfg.DB.Enabled() {
		var err error
		db, err = database.Open(cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("open booking database")
		}
		defer db.Close()
		if err := database.EnsureSchema(context.Background(), db); err != nil {
			log.Fatal().Err(err).Msg("prepare booking schema")
		}
		bookings = repo.NewBookingRepo(db)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.New(cfg, orders, bookings, db, log).Router(),
	}

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("cashfree_env", cfg.CashfreeEnv).
			Strs("allowed_origins", cfg.AllowedOrigins).
			Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("server stopped")
}
