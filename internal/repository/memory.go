package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/hotelops/roomadmin/internal/domain"
)

// InMemoryRoomRepository mirrors the postgres repository's semantics for
// tests and local runs without a database.
type InMemoryRoomRepository struct {
	mu    sync.RWMutex
	rooms map[uuid.UUID]*domain.Room
}

func NewInMemoryRoomRepository() *InMemoryRoomRepository {
	return &InMemoryRoomRepository{
		rooms: make(map[uuid.UUID]*domain.Room),
	}
}

func (r *InMemoryRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.rooms {
		if existing.Title == room.Title {
			return ErrRoomTitleExists
		}
	}

	r.rooms[room.ID] = copyRoom(room)
	return nil
}

func (r *InMemoryRoomRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}

	return copyRoom(room), nil
}

func (r *InMemoryRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rooms[room.ID]
	if !ok {
		return ErrRoomNotFound
	}

	for id, other := range r.rooms {
		if id != room.ID && other.Title == room.Title {
			return ErrRoomTitleExists
		}
	}

	existing.Title = room.Title
	existing.Description = room.Description
	existing.Facilities = append([]string(nil), room.Facilities...)
	existing.UpdatedAt = room.UpdatedAt
	return nil
}

func (r *InMemoryRoomRepository) SetPDF(ctx context.Context, id uuid.UUID, pdf string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[id]
	if !ok {
		return ErrRoomNotFound
	}

	room.PDF = pdf
	return nil
}

func (r *InMemoryRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[id]; !ok {
		return ErrRoomNotFound
	}

	delete(r.rooms, id)
	return nil
}

func (r *InMemoryRoomRepository) List(ctx context.Context, offset, limit int) ([]*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		all = append(all, room)
	}

	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return strings.Compare(all[i].ID.String(), all[j].ID.String()) < 0
	})

	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}

	result := make([]*domain.Room, 0, len(all))
	for _, room := range all {
		result = append(result, copyRoom(room))
	}
	return result, nil
}

func (r *InMemoryRoomRepository) TitleExists(ctx context.Context, title string, exclude uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, room := range r.rooms {
		if id != exclude && room.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func copyRoom(room *domain.Room) *domain.Room {
	c := *room
	c.Facilities = append([]string(nil), room.Facilities...)
	return &c
}
