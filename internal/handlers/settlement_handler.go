package handlers

import (
	"encoding/json"
	"net/http"

	"aqua-backend/internal/middleware"
	"aqua-backend/internal/models"
	"aqua-backend/internal/services"
	"aqua-backend/internal/timeutil"
	"aqua-backend/pkg/utils"
)

type SettlementHandler struct {
	Service *services.SettlementService
}

func NewSettlementHandler(s *services.SettlementService) *SettlementHandler {
	return &SettlementHandler{Service: s}
}

// CreateSettlement handles POST /api/settlements
func (h *SettlementHandler) CreateSettlement(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	settlement, err := h.Service.SettleWeek(r.Context(), &req, userID)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusCreated, settlement)
}

// ListSettlements handles GET /api/settlements?date=YYYY-MM-DD and
// returns the settlements of the week containing date.
func (h *SettlementHandler) ListSettlements(w http.ResponseWriter, r *http.Request) {
	date := timeutil.Now()
	if value := r.URL.Query().Get("date"); value != "" {
		parsed, err := timeutil.ParseInIST(timeutil.DateLayout, value)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "date must be in YYYY-MM-DD format")
			return
		}
		date = parsed
	}

	settlements, err := h.Service.ListWeek(r.Context(), date)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Ensure we return empty array instead of null
	if settlements == nil {
		settlements = []*models.Settlement{}
	}

	utils.JSON(w, http.StatusOK, settlements)
}
