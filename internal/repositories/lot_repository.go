package repositories

import (
	"context"
	"time"

	"aqua-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

const lotColumns = `id, boat_id, species, weight, price_per_unit, commission_rate,
         total_amount, commission_amount, payable_amount, created_at`

type LotRepository struct {
	DB *pgxpool.Pool
}

func NewLotRepository(db *pgxpool.Pool) *LotRepository {
	return &LotRepository{DB: db}
}

func (r *LotRepository) Create(ctx context.Context, l *models.Lot) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO lots(boat_id, species, weight, price_per_unit, commission_rate,
                          total_amount, commission_amount, payable_amount, created_at)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
         RETURNING id`,
		l.BoatID, l.Species, l.Weight, l.PricePerUnit, l.CommissionRate,
		l.TotalAmount, l.CommissionAmount, l.PayableAmount, l.CreatedAt,
	).Scan(&l.ID)
}

func (r *LotRepository) Get(ctx context.Context, id int) (*models.Lot, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+lotColumns+` FROM lots WHERE id=$1`, id)

	var lot models.Lot
	err := row.Scan(&lot.ID, &lot.BoatID, &lot.Species, &lot.Weight, &lot.PricePerUnit,
		&lot.CommissionRate, &lot.TotalAmount, &lot.CommissionAmount, &lot.PayableAmount,
		&lot.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &lot, nil
}

// List returns all lots most-recent-first
func (r *LotRepository) List(ctx context.Context) ([]*models.Lot, error) {
	return r.query(ctx, `SELECT `+lotColumns+` FROM lots ORDER BY created_at DESC`)
}

func (r *LotRepository) ListByBoat(ctx context.Context, boatID int) ([]*models.Lot, error) {
	return r.query(ctx,
		`SELECT `+lotColumns+` FROM lots WHERE boat_id=$1 ORDER BY created_at DESC`, boatID)
}

// ListBetween returns lots created within [start, end] inclusive,
// oldest first, for report aggregation
func (r *LotRepository) ListBetween(ctx context.Context, start, end time.Time) ([]*models.Lot, error) {
	return r.query(ctx,
		`SELECT `+lotColumns+` FROM lots WHERE created_at >= $1 AND created_at <= $2
         ORDER BY created_at ASC`, start, end)
}

func (r *LotRepository) query(ctx context.Context, sql string, args ...interface{}) ([]*models.Lot, error) {
	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lots []*models.Lot
	for rows.Next() {
		var lot models.Lot
		err := rows.Scan(&lot.ID, &lot.BoatID, &lot.Species, &lot.Weight, &lot.PricePerUnit,
			&lot.CommissionRate, &lot.TotalAmount, &lot.CommissionAmount, &lot.PayableAmount,
			&lot.CreatedAt)
		if err != nil {
			return nil, err
		}
		lots = append(lots, &lot)
	}
	return lots, rows.Err()
}
