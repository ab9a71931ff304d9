package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/hotelops/roomadmin/internal/domain"
)

type RoomInteractor interface {
	ListRooms(ctx context.Context, page, pageSize int) (*RoomPage, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*domain.Room, error)
	CreateRoom(ctx context.Context, in CreateRoomInput) (*domain.Room, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, in UpdateRoomInput) (*domain.Room, error)
	DeleteRoom(ctx context.Context, id uuid.UUID) error

	// GenerateBrochure renders a PDF from the room's current stored fields
	// and persists the new reference. It is a deliberate second step after
	// create/update so a slow or failed render never invalidates a
	// successful field save.
	GenerateBrochure(ctx context.Context, id uuid.UUID) (*domain.Room, error)
}

type CreateRoomInput struct {
	Title       string
	Description string
	Facilities  []string
	Image       io.Reader
	ImageMIME   string
}

type UpdateRoomInput struct {
	Title       string
	Description string
	Facilities  []string
}

// RoomPage is one page of room summaries with adjacent-page hints. NextPage
// is set iff the following page holds at least one room, PrevPage iff Page
// is greater than one.
type RoomPage struct {
	Rooms    []*domain.Room
	Page     int
	PageSize int
	NextPage *int
	PrevPage *int
}
