package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"aqua-backend/internal/services"
	"aqua-backend/internal/timeutil"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

// parseDateParam reads the optional date query parameter (YYYY-MM-DD)
// and defaults to today in IST.
func parseDateParam(r *http.Request) (time.Time, error) {
	value := r.URL.Query().Get("date")
	if value == "" {
		return timeutil.Now(), nil
	}
	return timeutil.ParseInIST(timeutil.DateLayout, value)
}

// GetDailySummary handles GET /api/reports/daily?date=YYYY-MM-DD
func (h *ReportHandler) GetDailySummary(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(r)
	if err != nil {
		http.Error(w, "date must be in YYYY-MM-DD format", http.StatusBadRequest)
		return
	}

	summary, err := h.Service.GetDailySummary(r.Context(), date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// GetDailyShareMessage handles GET /api/reports/daily/share?date=YYYY-MM-DD
func (h *ReportHandler) GetDailyShareMessage(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(r)
	if err != nil {
		http.Error(w, "date must be in YYYY-MM-DD format", http.StatusBadRequest)
		return
	}

	msg, err := h.Service.DailyShareMessage(r.Context(), date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}

// GetDailyCSV handles GET /api/reports/daily/csv?date=YYYY-MM-DD
func (h *ReportHandler) GetDailyCSV(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(r)
	if err != nil {
		http.Error(w, "date must be in YYYY-MM-DD format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	csvData, err := h.Service.DailyCSV(ctx, date)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to generate CSV: %v", err), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("daily_%s.csv", timeutil.FormatIST(date, timeutil.DateLayout))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.Write(csvData)
}

// GetWeeklySummary handles GET /api/reports/weekly?date=YYYY-MM-DD
// Any day inside the target week selects it.
func (h *ReportHandler) GetWeeklySummary(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(r)
	if err != nil {
		http.Error(w, "date must be in YYYY-MM-DD format", http.StatusBadRequest)
		return
	}

	summary, err := h.Service.GetWeeklySummary(r.Context(), date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// GetWeeklyShareMessage handles GET /api/reports/weekly/share?boat_id=N&date=YYYY-MM-DD
func (h *ReportHandler) GetWeeklyShareMessage(w http.ResponseWriter, r *http.Request) {
	boatID, err := strconv.Atoi(r.URL.Query().Get("boat_id"))
	if err != nil || boatID <= 0 {
		http.Error(w, "boat_id query parameter is required", http.StatusBadRequest)
		return
	}

	date, err := parseDateParam(r)
	if err != nil {
		http.Error(w, "date must be in YYYY-MM-DD format", http.StatusBadRequest)
		return
	}

	msg, err := h.Service.WeeklyBoatShareMessage(r.Context(), boatID, date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}

// GetWeeklyPDF handles GET /api/reports/weekly/pdf?date=YYYY-MM-DD
func (h *ReportHandler) GetWeeklyPDF(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(r)
	if err != nil {
		http.Error(w, "date must be in YYYY-MM-DD format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	pdfData, err := h.Service.WeeklyPDF(ctx, date)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to generate PDF: %v", err), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("settlement_%s.pdf", timeutil.FormatIST(timeutil.StartOfWeek(date), timeutil.DateLayout))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.Write(pdfData)
}
