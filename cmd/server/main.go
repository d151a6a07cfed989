package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/subosito/gotenv"

	"paystubs/internal/domain/credentials"
	"paystubs/internal/domain/receipt"
	"paystubs/internal/platform/config"
	"paystubs/internal/platform/email"
	"paystubs/internal/platform/metrics"
	"paystubs/internal/transport/http/api"
	paystubhandler "paystubs/internal/transport/http/handlers/paystub"
	"paystubs/internal/transport/http/middleware"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = gotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	account, err := credentials.NewAccount(cfg.AuthUser, cfg.AuthPassword)
	if err != nil {
		log.Fatalf("account setup failed: %v", err)
	}

	mailer := email.New(cfg)
	composer := receipt.NewComposer(cfg.ImageDir)
	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/metricsz", func(w http.ResponseWriter, r *http.Request) {
		api.WriteJSON(w, http.StatusOK, collector.Snapshot())
	})

	handler := paystubhandler.NewHandler(account, composer, mailer, cfg.FromEmail, collector)
	handler.RegisterRoutes(router)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      corsHandler.Handler(router),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("paystub server listening on %s", cfg.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
