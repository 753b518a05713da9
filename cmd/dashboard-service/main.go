package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	activityhandler "github.com/mirayfashion/admin-backend/internal/activity/handler"
	activityrepo "github.com/mirayfashion/admin-backend/internal/activity/repository"
	activityservice "github.com/mirayfashion/admin-backend/internal/activity/service"
	"github.com/mirayfashion/admin-backend/internal/dashboard/client"
	dashboardhandler "github.com/mirayfashion/admin-backend/internal/dashboard/handler"
	dashboardservice "github.com/mirayfashion/admin-backend/internal/dashboard/service"
	"github.com/mirayfashion/admin-backend/internal/superadmin"
	"github.com/mirayfashion/admin-backend/pkg/config"
	"github.com/mirayfashion/admin-backend/pkg/database"
	"github.com/mirayfashion/admin-backend/pkg/fetch"
	"github.com/mirayfashion/admin-backend/pkg/httputil"
	"github.com/mirayfashion/admin-backend/pkg/logger"
	"github.com/mirayfashion/admin-backend/pkg/messaging"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithValidation("dashboard-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("dashboard-service", cfg.Server.Environment)
	log.Info().Msg("starting Dashboard Service")

	// Connect to database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Connect to RabbitMQ when configured; the activity log works without it
	var publisher activityservice.EventPublisher
	var rmq *messaging.RabbitMQ
	if cfg.RabbitMQ.Enabled() {
		rmq, err = messaging.New(&cfg.RabbitMQ, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
		}
		defer rmq.Close()

		p, err := messaging.NewPublisher(rmq, messaging.ExchangeActivityEvents, "dashboard-service", log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create event publisher")
		}
		publisher = p
	} else {
		log.Info().Msg("RabbitMQ disabled, activity events will not be published")
	}

	// Upstream store API
	fetcher := fetch.New(cfg.Upstream.Timeout, log)
	store := client.NewStoreClient(cfg.Upstream.BaseURL, cfg.Upstream.SampleLimit, fetcher, log)

	// Initialize services
	dashSvc := dashboardservice.NewDashboardService(store, log)
	activityRepo := activityrepo.NewActivityRepository(db)
	activitySvc := activityservice.NewActivityService(activityRepo, publisher, log)
	sessionMgr := superadmin.NewManager(&cfg.Session)

	// Initialize handlers
	dashHandler := dashboardhandler.NewDashboardHandler(dashSvc, log)
	exportHandler := dashboardhandler.NewExportHandler(dashSvc, log)
	actHandler := activityhandler.NewActivityHandler(activitySvc, log)
	adminHandler := superadmin.NewHandler(sessionMgr, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(httputil.RequestID)
	r.Use(httputil.Logger(log))
	r.Use(httputil.Recoverer(log))
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS for the admin frontend
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		health := map[string]interface{}{
			"status":   "healthy",
			"service":  "dashboard-service",
			"database": db.Health(r.Context()),
		}
		if rmq != nil {
			health["rabbitmq"] = rmq.Health()
		}
		httputil.JSON(w, http.StatusOK, health)
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Dashboard aggregates
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/overview", dashHandler.GetOverview)
			r.Get("/orders", dashHandler.GetOrdersSummary)
			r.Get("/catalog", dashHandler.GetCatalogSummary)
			r.Get("/carts", dashHandler.GetCartsSummary)
			r.Get("/marketing", dashHandler.GetMarketingSummary)
			r.Get("/tickets", dashHandler.GetTicketsSummary)
			r.Get("/orders/export", exportHandler.ExportOrders)
			r.Get("/orders/export.pdf", exportHandler.ExportOrdersPDF)
			r.Post("/barcode-label", exportHandler.RenderBarcodeLabel)
		})

		// Activity log
		r.Route("/activity", func(r chi.Router) {
			r.Get("/", actHandler.ListEntries)
			r.Post("/", actHandler.CreateEntry)

			// Purge is destructive and needs an unlocked superadmin session
			r.Group(func(r chi.Router) {
				r.Use(adminHandler.RequireSession)
				r.Delete("/", actHandler.PurgeEntries)
			})
		})

		// Superadmin unlock
		r.Post("/superadmin/unlock", adminHandler.Unlock)
	})

	// Create server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
