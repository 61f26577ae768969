package services

import (
	"context"
	"errors"

	"aqua-backend/internal/cache"
	"aqua-backend/internal/ledger"
	"aqua-backend/internal/metrics"
	"aqua-backend/internal/models"
	"aqua-backend/internal/timeutil"

	"github.com/jackc/pgx/v5"
)

// LotStore is the slice of the lot repository the service needs
type LotStore interface {
	Create(ctx context.Context, l *models.Lot) error
	Get(ctx context.Context, id int) (*models.Lot, error)
	List(ctx context.Context) ([]*models.Lot, error)
	ListByBoat(ctx context.Context, boatID int) ([]*models.Lot, error)
}

// LotBoatStore is the boat lookup the lot service needs
type LotBoatStore interface {
	Get(ctx context.Context, id int) (*models.Boat, error)
}

type LotService struct {
	Repo  LotStore
	Boats LotBoatStore
}

func NewLotService(repo LotStore, boats LotBoatStore) *LotService {
	return &LotService{Repo: repo, Boats: boats}
}

// CreateLot records a catch lot. Boat, species, weight and price are
// required; malformed or out-of-range numbers are rejected outright
// rather than coerced to zero. The derived monetary fields are
// computed here once and stored; the timestamp is stamped server-side.
func (s *LotService) CreateLot(ctx context.Context, req *models.CreateLotRequest) (*models.Lot, error) {
	if req.BoatID <= 0 {
		return nil, errors.New("boat is required")
	}
	if req.Species == "" {
		return nil, errors.New("species is required")
	}
	if req.Weight <= 0 {
		return nil, errors.New("weight must be a positive number")
	}
	if req.PricePerUnit <= 0 {
		return nil, errors.New("price per unit must be a positive number")
	}

	rate := ledger.DefaultCommissionRate
	if req.CommissionRate != nil {
		rate = *req.CommissionRate
	}
	if rate < 0 || rate > 100 {
		return nil, errors.New("commission rate must be between 0 and 100")
	}

	if _, err := s.Boats.Get(ctx, req.BoatID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("boat not found")
		}
		return nil, err
	}

	total, commission, payable := ledger.ComputeAmounts(req.Weight, req.PricePerUnit, rate)

	lot := &models.Lot{
		BoatID:           req.BoatID,
		Species:          req.Species,
		Weight:           req.Weight,
		PricePerUnit:     req.PricePerUnit,
		CommissionRate:   rate,
		TotalAmount:      total,
		CommissionAmount: commission,
		PayableAmount:    payable,
		CreatedAt:        timeutil.Now(),
	}

	if err := s.Repo.Create(ctx, lot); err != nil {
		return nil, err
	}

	metrics.LotsCreatedTotal.Inc()
	cache.InvalidateDailySummaries(ctx)

	return lot, nil
}

func (s *LotService) GetLot(ctx context.Context, id int) (*models.Lot, error) {
	return s.Repo.Get(ctx, id)
}

// ListLots returns all lots most-recent-first. The ledger is
// append-only: there is no update or delete.
func (s *LotService) ListLots(ctx context.Context) ([]*models.Lot, error) {
	return s.Repo.List(ctx)
}

func (s *LotService) ListLotsByBoat(ctx context.Context, boatID int) ([]*models.Lot, error) {
	return s.Repo.ListByBoat(ctx, boatID)
}
