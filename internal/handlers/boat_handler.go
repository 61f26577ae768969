package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"aqua-backend/internal/models"
	"aqua-backend/internal/services"

	"github.com/gorilla/mux"
)

type BoatHandler struct {
	Service *services.BoatService
}

func NewBoatHandler(s *services.BoatService) *BoatHandler {
	return &BoatHandler{Service: s}
}

func (h *BoatHandler) CreateBoat(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBoatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	boat, err := h.Service.CreateBoat(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(boat)
}

func (h *BoatHandler) GetBoat(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	boat, err := h.Service.GetBoat(r.Context(), id)
	if err != nil {
		http.Error(w, "Boat not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(boat)
}

func (h *BoatHandler) ListBoats(w http.ResponseWriter, r *http.Request) {
	boats, err := h.Service.ListBoats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Ensure we return empty array instead of null
	if boats == nil {
		boats = []*models.Boat{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(boats)
}

func (h *BoatHandler) UpdateBoat(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	var req models.UpdateBoatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	boat, err := h.Service.UpdateBoat(r.Context(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if boat == nil {
		// Unknown id edits are no-ops
		http.Error(w, "Boat not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(boat)
}

func (h *BoatHandler) DeleteBoat(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	if err := h.Service.DeleteBoat(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BoatHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	boat, err := h.Service.ToggleStatus(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if boat == nil {
		http.Error(w, "Boat not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(boat)
}
