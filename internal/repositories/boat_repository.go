package repositories

import (
	"context"

	"aqua-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BoatRepository struct {
	DB *pgxpool.Pool
}

func NewBoatRepository(db *pgxpool.Pool) *BoatRepository {
	return &BoatRepository{DB: db}
}

func (r *BoatRepository) Create(ctx context.Context, b *models.Boat) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO boats(name, owner_name, phone, notes, status, image_url)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at, updated_at`,
		b.Name, b.OwnerName, b.Phone, b.Notes, b.Status, b.ImageURL,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BoatRepository) Get(ctx context.Context, id int) (*models.Boat, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, owner_name, phone, notes, status, image_url, created_at, updated_at
         FROM boats WHERE id=$1`, id)

	var boat models.Boat
	err := row.Scan(&boat.ID, &boat.Name, &boat.OwnerName, &boat.Phone, &boat.Notes,
		&boat.Status, &boat.ImageURL, &boat.CreatedAt, &boat.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &boat, nil
}

// List returns all boats most-recent-first
func (r *BoatRepository) List(ctx context.Context) ([]*models.Boat, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, owner_name, phone, notes, status, image_url, created_at, updated_at
         FROM boats ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var boats []*models.Boat
	for rows.Next() {
		var boat models.Boat
		err := rows.Scan(&boat.ID, &boat.Name, &boat.OwnerName, &boat.Phone, &boat.Notes,
			&boat.Status, &boat.ImageURL, &boat.CreatedAt, &boat.UpdatedAt)
		if err != nil {
			return nil, err
		}
		boats = append(boats, &boat)
	}
	return boats, rows.Err()
}

func (r *BoatRepository) Update(ctx context.Context, b *models.Boat) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE boats SET name=$1, owner_name=$2, phone=$3, notes=$4, status=$5, image_url=$6, updated_at=CURRENT_TIMESTAMP
         WHERE id=$7`,
		b.Name, b.OwnerName, b.Phone, b.Notes, b.Status, b.ImageURL, b.ID)
	return err
}

// Delete removes the boat only. Lots referencing it are left in place
// and resolve to the Unknown Boat sentinel in reports.
func (r *BoatRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM boats WHERE id=$1`, id)
	return err
}

// ToggleStatus flips a boat between active and maintenance
func (r *BoatRepository) ToggleStatus(ctx context.Context, id int) (*models.Boat, error) {
	_, err := r.DB.Exec(ctx,
		`UPDATE boats
         SET status = CASE WHEN status = 'active' THEN 'maintenance' ELSE 'active' END,
             updated_at = CURRENT_TIMESTAMP
         WHERE id=$1`, id)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}
