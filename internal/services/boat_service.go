package services

import (
	"context"
	"errors"

	"aqua-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

// BoatStore is the slice of the boat repository the service needs
type BoatStore interface {
	Create(ctx context.Context, b *models.Boat) error
	Get(ctx context.Context, id int) (*models.Boat, error)
	List(ctx context.Context) ([]*models.Boat, error)
	Update(ctx context.Context, b *models.Boat) error
	Delete(ctx context.Context, id int) error
	ToggleStatus(ctx context.Context, id int) (*models.Boat, error)
}

type BoatService struct {
	Repo BoatStore
}

func NewBoatService(repo BoatStore) *BoatService {
	return &BoatService{Repo: repo}
}

// CreateBoat registers a new boat with default status active.
// Name and owner name are required; nothing is written otherwise.
func (s *BoatService) CreateBoat(ctx context.Context, req *models.CreateBoatRequest) (*models.Boat, error) {
	if req.Name == "" || req.OwnerName == "" {
		return nil, errors.New("name and owner name are required")
	}

	boat := &models.Boat{
		Name:      req.Name,
		OwnerName: req.OwnerName,
		Phone:     req.Phone,
		Notes:     req.Notes,
		Status:    models.BoatStatusActive,
		ImageURL:  req.ImageURL,
	}

	if err := s.Repo.Create(ctx, boat); err != nil {
		return nil, err
	}

	return boat, nil
}

func (s *BoatService) GetBoat(ctx context.Context, id int) (*models.Boat, error) {
	return s.Repo.Get(ctx, id)
}

func (s *BoatService) ListBoats(ctx context.Context) ([]*models.Boat, error) {
	return s.Repo.List(ctx)
}

// UpdateBoat merges the provided fields into the boat. An unknown id
// is a no-op: (nil, nil) is returned and nothing is written.
func (s *BoatService) UpdateBoat(ctx context.Context, id int, req *models.UpdateBoatRequest) (*models.Boat, error) {
	boat, err := s.Repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, errors.New("name cannot be empty")
		}
		boat.Name = *req.Name
	}
	if req.OwnerName != nil {
		if *req.OwnerName == "" {
			return nil, errors.New("owner name cannot be empty")
		}
		boat.OwnerName = *req.OwnerName
	}
	if req.Phone != nil {
		boat.Phone = *req.Phone
	}
	if req.Notes != nil {
		boat.Notes = *req.Notes
	}
	if req.Status != nil {
		if *req.Status != models.BoatStatusActive && *req.Status != models.BoatStatusMaintenance {
			return nil, errors.New("status must be active or maintenance")
		}
		boat.Status = *req.Status
	}
	if req.ImageURL != nil {
		boat.ImageURL = *req.ImageURL
	}

	if err := s.Repo.Update(ctx, boat); err != nil {
		return nil, err
	}

	return s.Repo.Get(ctx, id)
}

// DeleteBoat removes the boat from the registry. Lots that reference
// it are untouched; reports show them under the Unknown Boat sentinel.
func (s *BoatService) DeleteBoat(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}

// ToggleStatus flips a boat between active and maintenance. Unknown
// id is a no-op returning (nil, nil).
func (s *BoatService) ToggleStatus(ctx context.Context, id int) (*models.Boat, error) {
	boat, err := s.Repo.ToggleStatus(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return boat, nil
}
