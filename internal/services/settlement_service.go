package services

import (
	"context"
	"errors"
	"time"

	"aqua-backend/internal/metrics"
	"aqua-backend/internal/models"
	"aqua-backend/internal/timeutil"

	"github.com/jackc/pgx/v5"
)

// SettlementStore is the slice of the settlement repository the
// service needs
type SettlementStore interface {
	Create(ctx context.Context, s *models.Settlement) error
	ListByWeek(ctx context.Context, weekStart time.Time) ([]*models.Settlement, error)
	IsSettled(ctx context.Context, boatID int, weekStart time.Time) (bool, error)
}

// SettlementBoatStore is the boat lookup the settlement service needs
type SettlementBoatStore interface {
	Get(ctx context.Context, id int) (*models.Boat, error)
}

type SettlementService struct {
	Repo  SettlementStore
	Boats SettlementBoatStore
}

func NewSettlementService(repo SettlementStore, boats SettlementBoatStore) *SettlementService {
	return &SettlementService{Repo: repo, Boats: boats}
}

// SettleWeek marks a boat's week as paid. Any date inside the week is
// accepted and normalized to the week's Sunday start. Settling the
// same boat and week twice is idempotent.
func (s *SettlementService) SettleWeek(ctx context.Context, req *models.CreateSettlementRequest, settledByID int) (*models.Settlement, error) {
	if req.BoatID <= 0 {
		return nil, errors.New("boat is required")
	}

	date := timeutil.Now()
	if req.Date != "" {
		parsed, err := timeutil.ParseInIST(timeutil.DateLayout, req.Date)
		if err != nil {
			return nil, errors.New("date must be in YYYY-MM-DD format")
		}
		date = parsed
	}

	if _, err := s.Boats.Get(ctx, req.BoatID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("boat not found")
		}
		return nil, err
	}

	settlement := &models.Settlement{
		BoatID:      req.BoatID,
		WeekStart:   timeutil.StartOfWeek(date),
		SettledByID: settledByID,
	}

	if err := s.Repo.Create(ctx, settlement); err != nil {
		return nil, err
	}

	metrics.SettlementsTotal.Inc()
	return settlement, nil
}

// ListWeek returns the settlements recorded for the week containing
// date.
func (s *SettlementService) ListWeek(ctx context.Context, date time.Time) ([]*models.Settlement, error) {
	return s.Repo.ListByWeek(ctx, timeutil.StartOfWeek(date))
}

// IsSettled reports whether a boat's week containing date is paid.
func (s *SettlementService) IsSettled(ctx context.Context, boatID int, date time.Time) (bool, error) {
	return s.Repo.IsSettled(ctx, boatID, timeutil.StartOfWeek(date))
}
