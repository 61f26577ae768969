package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"aqua-backend/internal/archive"
	"aqua-backend/internal/auth"
	"aqua-backend/internal/cache"
	"aqua-backend/internal/config"
	"aqua-backend/internal/database"
	"aqua-backend/internal/db"
	"aqua-backend/internal/handlers"
	"aqua-backend/internal/health"
	h "aqua-backend/internal/http"
	"aqua-backend/internal/middleware"
	"aqua-backend/internal/monitoring"
	"aqua-backend/internal/repositories"
	"aqua-backend/internal/services"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	monitorPort := flag.Int("monitor-port", 9090, "Monitoring server port (0 disables)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Connect to PostgreSQL
	pool := db.Connect(cfg)
	defer pool.Close()

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(cfg); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (login will use bcrypt only)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run database migrations
	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Start monitoring server in background
	if *monitorPort != 0 {
		go monitoring.NewMonitoringServer(pool, *monitorPort).Start()
	}

	// Initialize JWT manager and health checker
	jwtManager := auth.NewJWTManager(cfg)
	healthChecker := health.NewHealthChecker(pool)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(pool)
	boatRepo := repositories.NewBoatRepository(pool)
	lotRepo := repositories.NewLotRepository(pool)
	settlementRepo := repositories.NewSettlementRepository(pool)

	// Initialize services
	userService := services.NewUserService(userRepo, jwtManager)
	boatService := services.NewBoatService(boatRepo)
	lotService := services.NewLotService(lotRepo, boatRepo)
	reportService := services.NewReportService(lotRepo, boatRepo, settlementRepo)
	settlementService := services.NewSettlementService(settlementRepo, boatRepo)

	// Wire the optional report archive (S3-compatible storage)
	if reportArchive, err := archive.New(ctx, cfg); err != nil {
		log.Printf("[Archive] Report archive disabled: %v", err)
	} else {
		reportService.SetArchiver(reportArchive)
		log.Println("[Archive] Weekly PDFs will be archived to bucket storage")
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	boatHandler := handlers.NewBoatHandler(boatService)
	lotHandler := handlers.NewLotHandler(lotService)
	reportHandler := handlers.NewReportHandler(reportService)
	settlementHandler := handlers.NewSettlementHandler(settlementService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	router := h.NewRouter(
		authHandler,
		boatHandler,
		lotHandler,
		reportHandler,
		settlementHandler,
		healthHandler,
		authMiddleware,
	)

	// Wrap with panic recovery and metrics middleware
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
