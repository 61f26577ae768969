package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"aqua-backend/internal/handlers"
	"aqua-backend/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	boatHandler *handlers.BoatHandler,
	lotHandler *handlers.LotHandler,
	reportHandler *handlers.ReportHandler,
	settlementHandler *handlers.SettlementHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public API routes - Authentication
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected API routes - Boats
	boatsAPI := r.PathPrefix("/api/boats").Subrouter()
	boatsAPI.Use(authMiddleware.Authenticate)
	boatsAPI.HandleFunc("", boatHandler.ListBoats).Methods("GET")
	boatsAPI.HandleFunc("", boatHandler.CreateBoat).Methods("POST")
	boatsAPI.HandleFunc("/{id}", boatHandler.GetBoat).Methods("GET")
	boatsAPI.HandleFunc("/{id}", boatHandler.UpdateBoat).Methods("PUT")
	boatsAPI.HandleFunc("/{id}", boatHandler.DeleteBoat).Methods("DELETE")
	boatsAPI.HandleFunc("/{id}/toggle-status", boatHandler.ToggleStatus).Methods("PATCH")

	// Protected API routes - Lots (append-only, no update or delete)
	lotsAPI := r.PathPrefix("/api/lots").Subrouter()
	lotsAPI.Use(authMiddleware.Authenticate)
	lotsAPI.HandleFunc("", lotHandler.ListLots).Methods("GET")
	lotsAPI.HandleFunc("", lotHandler.CreateLot).Methods("POST")
	lotsAPI.HandleFunc("/boat/{id}", lotHandler.ListLotsByBoat).Methods("GET")
	lotsAPI.HandleFunc("/{id}", lotHandler.GetLot).Methods("GET")

	// Protected API routes - Reports
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.Authenticate)
	reportsAPI.HandleFunc("/daily", reportHandler.GetDailySummary).Methods("GET")
	reportsAPI.HandleFunc("/daily/share", reportHandler.GetDailyShareMessage).Methods("GET")
	reportsAPI.HandleFunc("/daily/csv", reportHandler.GetDailyCSV).Methods("GET")
	reportsAPI.HandleFunc("/weekly", reportHandler.GetWeeklySummary).Methods("GET")
	reportsAPI.HandleFunc("/weekly/share", reportHandler.GetWeeklyShareMessage).Methods("GET")
	reportsAPI.HandleFunc("/weekly/pdf", reportHandler.GetWeeklyPDF).Methods("GET")

	// Protected API routes - Settlements
	settlementsAPI := r.PathPrefix("/api/settlements").Subrouter()
	settlementsAPI.Use(authMiddleware.Authenticate)
	settlementsAPI.HandleFunc("", settlementHandler.ListSettlements).Methods("GET")
	settlementsAPI.HandleFunc("", authMiddleware.RequireRole("admin", "auctioneer")(http.HandlerFunc(settlementHandler.CreateSettlement)).ServeHTTP).Methods("POST")

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
