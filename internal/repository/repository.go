package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hotelops/roomadmin/internal/domain"
)

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomTitleExists = errors.New("room title already exists")
)

// RoomRepository is the durable store for room records. Implementations must
// make each call atomic: a failed create/update leaves no partial row behind.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
	// Update replaces title, description and facilities and refreshes
	// updated_at to room.UpdatedAt. Image and PDF references are untouched.
	Update(ctx context.Context, room *domain.Room) error
	// SetPDF persists a new brochure file name without touching any other
	// column, updated_at included.
	SetPDF(ctx context.Context, id uuid.UUID, pdf string) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns up to limit rooms ordered by created_at with id as the
	// tie-break, skipping offset rows. The ordering is deterministic so
	// adjacent page fetches neither duplicate nor skip rows.
	List(ctx context.Context, offset, limit int) ([]*domain.Room, error)
	// TitleExists reports whether another room (excluding exclude, when not
	// uuid.Nil) already uses the given trimmed title.
	TitleExists(ctx context.Context, title string, exclude uuid.UUID) (bool, error)
}
