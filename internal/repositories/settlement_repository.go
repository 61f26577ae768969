package repositories

import (
	"context"
	"time"

	"aqua-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SettlementRepository struct {
	DB *pgxpool.Pool
}

func NewSettlementRepository(db *pgxpool.Pool) *SettlementRepository {
	return &SettlementRepository{DB: db}
}

// Create records a settlement. Settling the same boat and week twice
// is a no-op (unique constraint, conflict ignored).
func (r *SettlementRepository) Create(ctx context.Context, s *models.Settlement) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO settlements(boat_id, week_start, settled_by_id)
         VALUES($1, $2, $3)
         ON CONFLICT (boat_id, week_start) DO UPDATE SET boat_id = EXCLUDED.boat_id
         RETURNING id, created_at`,
		s.BoatID, s.WeekStart, s.SettledByID,
	).Scan(&s.ID, &s.CreatedAt)
}

// ListByWeek returns all settlements recorded for a week start date
func (r *SettlementRepository) ListByWeek(ctx context.Context, weekStart time.Time) ([]*models.Settlement, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, boat_id, week_start, settled_by_id, created_at
         FROM settlements WHERE week_start=$1 ORDER BY created_at ASC`, weekStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settlements []*models.Settlement
	for rows.Next() {
		var s models.Settlement
		err := rows.Scan(&s.ID, &s.BoatID, &s.WeekStart, &s.SettledByID, &s.CreatedAt)
		if err != nil {
			return nil, err
		}
		settlements = append(settlements, &s)
	}
	return settlements, rows.Err()
}

// IsSettled reports whether a boat's week has been marked paid
func (r *SettlementRepository) IsSettled(ctx context.Context, boatID int, weekStart time.Time) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM settlements WHERE boat_id=$1 AND week_start=$2)`,
		boatID, weekStart).Scan(&exists)
	return exists, err
}
