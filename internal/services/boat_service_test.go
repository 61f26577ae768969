package services

import (
	"context"
	"testing"

	"aqua-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBoatStore is an in-memory BoatStore for service tests
type fakeBoatStore struct {
	boats  map[int]*models.Boat
	nextID int
}

func newFakeBoatStore() *fakeBoatStore {
	return &fakeBoatStore{boats: make(map[int]*models.Boat), nextID: 1}
}

func (f *fakeBoatStore) Create(_ context.Context, b *models.Boat) error {
	b.ID = f.nextID
	f.nextID++
	clone := *b
	f.boats[b.ID] = &clone
	return nil
}

func (f *fakeBoatStore) Get(_ context.Context, id int) (*models.Boat, error) {
	b, ok := f.boats[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBoatStore) List(_ context.Context) ([]*models.Boat, error) {
	out := make([]*models.Boat, 0, len(f.boats))
	for _, b := range f.boats {
		clone := *b
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeBoatStore) Update(_ context.Context, b *models.Boat) error {
	if _, ok := f.boats[b.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *b
	f.boats[b.ID] = &clone
	return nil
}

func (f *fakeBoatStore) Delete(_ context.Context, id int) error {
	delete(f.boats, id)
	return nil
}

func (f *fakeBoatStore) ToggleStatus(_ context.Context, id int) (*models.Boat, error) {
	b, ok := f.boats[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if b.Status == models.BoatStatusActive {
		b.Status = models.BoatStatusMaintenance
	} else {
		b.Status = models.BoatStatusActive
	}
	clone := *b
	return &clone, nil
}

func strPtr(s string) *string { return &s }

func TestCreateBoatDefaultsToActive(t *testing.T) {
	svc := NewBoatService(newFakeBoatStore())

	boat, err := svc.CreateBoat(context.Background(), &models.CreateBoatRequest{
		Name:      "Sea Queen",
		OwnerName: "Ravi Kumar",
		Phone:     "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, boat.ID)
	assert.Equal(t, models.BoatStatusActive, boat.Status)
	assert.Equal(t, "Sea Queen", boat.Name)
}

func TestCreateBoatRequiresNameAndOwner(t *testing.T) {
	store := newFakeBoatStore()
	svc := NewBoatService(store)

	_, err := svc.CreateBoat(context.Background(), &models.CreateBoatRequest{OwnerName: "Ravi"})
	assert.Error(t, err)

	_, err = svc.CreateBoat(context.Background(), &models.CreateBoatRequest{Name: "Sea Queen"})
	assert.Error(t, err)

	// Nothing written on rejected input
	assert.Empty(t, store.boats)
}

func TestUpdateBoatPartialMerge(t *testing.T) {
	svc := NewBoatService(newFakeBoatStore())
	boat, err := svc.CreateBoat(context.Background(), &models.CreateBoatRequest{
		Name:      "Sea Queen",
		OwnerName: "Ravi Kumar",
		Phone:     "9876543210",
		Notes:     "blue hull",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateBoat(context.Background(), boat.ID, &models.UpdateBoatRequest{
		Phone: strPtr("9000000000"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	// Only the provided field changed
	assert.Equal(t, "9000000000", updated.Phone)
	assert.Equal(t, "Sea Queen", updated.Name)
	assert.Equal(t, "Ravi Kumar", updated.OwnerName)
	assert.Equal(t, "blue hull", updated.Notes)
}

func TestUpdateBoatUnknownIDIsNoOp(t *testing.T) {
	svc := NewBoatService(newFakeBoatStore())

	updated, err := svc.UpdateBoat(context.Background(), 42, &models.UpdateBoatRequest{
		Name: strPtr("Ghost"),
	})
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestUpdateBoatRejectsEmptyNameAndBadStatus(t *testing.T) {
	svc := NewBoatService(newFakeBoatStore())
	boat, err := svc.CreateBoat(context.Background(), &models.CreateBoatRequest{
		Name: "Sea Queen", OwnerName: "Ravi Kumar",
	})
	require.NoError(t, err)

	_, err = svc.UpdateBoat(context.Background(), boat.ID, &models.UpdateBoatRequest{Name: strPtr("")})
	assert.Error(t, err)

	_, err = svc.UpdateBoat(context.Background(), boat.ID, &models.UpdateBoatRequest{Status: strPtr("sunk")})
	assert.Error(t, err)
}

func TestToggleStatus(t *testing.T) {
	svc := NewBoatService(newFakeBoatStore())
	boat, err := svc.CreateBoat(context.Background(), &models.CreateBoatRequest{
		Name: "Sea Queen", OwnerName: "Ravi Kumar",
	})
	require.NoError(t, err)

	flipped, err := svc.ToggleStatus(context.Background(), boat.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BoatStatusMaintenance, flipped.Status)

	back, err := svc.ToggleStatus(context.Background(), boat.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BoatStatusActive, back.Status)
}

func TestToggleStatusUnknownIDIsNoOp(t *testing.T) {
	svc := NewBoatService(newFakeBoatStore())

	boat, err := svc.ToggleStatus(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, boat)
}
