package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"aqua-backend/internal/models"
	"aqua-backend/internal/services"

	"github.com/gorilla/mux"
)

type LotHandler struct {
	Service *services.LotService
}

func NewLotHandler(s *services.LotService) *LotHandler {
	return &LotHandler{Service: s}
}

func (h *LotHandler) CreateLot(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	lot, err := h.Service.CreateLot(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(lot)
}

func (h *LotHandler) GetLot(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	lot, err := h.Service.GetLot(r.Context(), id)
	if err != nil {
		http.Error(w, "Lot not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lot)
}

func (h *LotHandler) ListLots(w http.ResponseWriter, r *http.Request) {
	lots, err := h.Service.ListLots(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Ensure we return empty array instead of null
	if lots == nil {
		lots = []*models.Lot{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lots)
}

// ListLotsByBoat returns one boat's lot history, most recent first
func (h *LotHandler) ListLotsByBoat(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	lots, err := h.Service.ListLotsByBoat(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if lots == nil {
		lots = []*models.Lot{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lots)
}
