package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/ecommerce-realtime/backup"
	"github.com/junaidrashid-git/ecommerce-realtime/config"
	"github.com/junaidrashid-git/ecommerce-realtime/middleware"
	"github.com/junaidrashid-git/ecommerce-realtime/realtime"
	"github.com/junaidrashid-git/ecommerce-realtime/routes"
	cartservice "github.com/junaidrashid-git/ecommerce-realtime/services/cart"
	"github.com/junaidrashid-git/ecommerce-realtime/services/catalog"
	"github.com/junaidrashid-git/ecommerce-realtime/store"
	"github.com/junaidrashid-git/ecommerce-realtime/store/filestore"
	"github.com/junaidrashid-git/ecommerce-realtime/store/gormstore"
	"github.com/junaidrashid-git/ecommerce-realtime/store/mongostore"
)

func main() {
	log.Println("✅ Starting application...")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init storage; a failure here is fatal
	stores := initStores(ctx, cfg)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := stores.Close(closeCtx); err != nil {
			log.Printf("❌ Failed to close store: %v", err)
		}
	}()

	// One hub for the whole process, handed to both services
	hub := realtime.NewHub()
	metrics := middleware.NewMetrics()
	notifier := realtime.CountingPublisher{
		Next:  hub,
		Count: func(event string) { metrics.Events.WithLabelValues(event).Inc() },
	}

	catalogService := catalog.NewService(stores.Products, notifier)
	cartService := cartservice.NewService(stores.Carts, stores.Products, notifier)

	// Gin setup
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: !allowsAnyOrigin(cfg.CORSOrigins),
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, routes.Deps{
		Catalog: catalogService,
		Carts:   cartService,
		Hub:     hub,
		Metrics: metrics,
	})

	if cfg.StoreBackend == store.BackendFile && cfg.BackupDir != "" {
		retention := time.Duration(cfg.BackupRetentionDays) * 24 * time.Hour
		go backup.RunDaily(ctx, cfg.DataDir, cfg.BackupDir, retention, cfg.BackupHour, 0)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 Server running on port %s (%s store)...", cfg.Port, cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("🛑 Shutdown signal received")
	case err := <-errCh:
		log.Fatalf("❌ Failed to start server: %v", err)
	}

	hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Graceful shutdown error: %v", err)
	}
}

// initStores opens the backend chosen by STORE_BACKEND.
func initStores(ctx context.Context, cfg config.Config) *store.Stores {
	stores, err := openStores(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Storage connection failed: %v", err)
	}
	log.Printf("✅ Connected to %s store", cfg.StoreBackend)
	return stores
}

func openStores(ctx context.Context, cfg config.Config) (*store.Stores, error) {
	switch cfg.StoreBackend {
	case store.BackendFile:
		return filestore.Open(cfg.DataDir)
	case store.BackendMongo:
		return mongostore.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	case store.BackendPostgres:
		return gormstore.Open(cfg.PostgresDSN())
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
