package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hotelops/roomadmin/internal/domain"
	"github.com/hotelops/roomadmin/internal/pdf"
	"github.com/hotelops/roomadmin/internal/repository"
	"github.com/hotelops/roomadmin/internal/storage"
	"github.com/hotelops/roomadmin/lib/logger/sl"
)

// ErrRenderFailed marks a Document Renderer failure. The room's persisted
// state, its previous brochure included, is untouched when this is returned.
var ErrRenderFailed = errors.New("brochure render failed")

type RoomService struct {
	rooms    repository.RoomRepository
	assets   storage.AssetStore
	renderer pdf.Renderer
	log      *slog.Logger

	defaultPageSize int
	maxPageSize     int
}

func NewRoomService(rooms repository.RoomRepository, assets storage.AssetStore, renderer pdf.Renderer, log *slog.Logger, defaultPageSize, maxPageSize int) *RoomService {
	if log == nil {
		log = slog.Default()
	}
	if defaultPageSize < 1 {
		defaultPageSize = 20
	}
	if maxPageSize < defaultPageSize {
		maxPageSize = 100
	}
	return &RoomService{
		rooms:           rooms,
		assets:          assets,
		renderer:        renderer,
		log:             log,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// ListRooms returns the 1-based page of rooms. pageSize zero means the
// configured default. The repository is probed for one row beyond the page so
// NextPage reflects actual content, not a count taken in a separate query.
func (s *RoomService) ListRooms(ctx context.Context, page, pageSize int) (*RoomPage, error) {
	const op = "service.room.list"

	if page < 1 {
		return nil, domain.NewValidationError("page", "must be a positive integer")
	}
	if pageSize == 0 {
		pageSize = s.defaultPageSize
	}
	if pageSize < 1 {
		return nil, domain.NewValidationError("page_size", "must be a positive integer")
	}
	if pageSize > s.maxPageSize {
		return nil, domain.NewValidationError("page_size", fmt.Sprintf("must not exceed %d", s.maxPageSize))
	}

	offset := (page - 1) * pageSize
	rooms, err := s.rooms.List(ctx, offset, pageSize+1)
	if err != nil {
		s.log.Error("list rooms failed", slog.String("op", op), sl.Err(err))
		return nil, err
	}

	result := &RoomPage{
		Rooms:    rooms,
		Page:     page,
		PageSize: pageSize,
	}
	if len(rooms) > pageSize {
		result.Rooms = rooms[:pageSize]
		next := page + 1
		result.NextPage = &next
	}
	if page > 1 {
		prev := page - 1
		result.PrevPage = &prev
	}

	return result, nil
}

func (s *RoomService) GetRoom(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	return s.rooms.GetByID(ctx, id)
}

// CreateRoom validates input, stores the uploaded image and creates the
// record. No brochure is rendered here: the caller triggers generation as a
// separate follow-up once the create response lands.
func (s *RoomService) CreateRoom(ctx context.Context, in CreateRoomInput) (*domain.Room, error) {
	const op = "service.room.create"
	log := s.log.With(slog.String("op", op))

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.NewValidationError("title", "is required")
	}
	if in.Image == nil {
		return nil, domain.NewValidationError("image", "is required")
	}

	taken, err := s.rooms.TitleExists(ctx, title, uuid.Nil)
	if err != nil {
		log.Error("title lookup failed", sl.Err(err))
		return nil, err
	}
	if taken {
		return nil, domain.NewValidationError("title", "already exists")
	}

	imageName, err := s.assets.Save(ctx, storage.KindImage, title, in.ImageMIME, in.Image)
	if err != nil {
		log.Error("store image failed", sl.Err(err))
		return nil, err
	}

	room := domain.NewRoom(title, in.Description, in.Facilities, imageName)
	if err := s.rooms.Create(ctx, room); err != nil {
		s.cleanupAsset(storage.KindImage, imageName)
		if errors.Is(err, repository.ErrRoomTitleExists) {
			return nil, domain.NewValidationError("title", "already exists")
		}
		log.Error("create room failed", sl.Err(err))
		return nil, err
	}

	log.Info("room created", slog.String("room_id", room.ID.String()))
	return room, nil
}

// UpdateRoom replaces title, description and facilities. The image is fixed
// at creation and the brochure is only refreshed by an explicit
// GenerateBrochure call, so a stale PDF after an update is expected until the
// caller regenerates.
func (s *RoomService) UpdateRoom(ctx context.Context, id uuid.UUID, in UpdateRoomInput) (*domain.Room, error) {
	const op = "service.room.update"
	log := s.log.With(slog.String("op", op), slog.String("room_id", id.String()))

	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.NewValidationError("title", "is required")
	}

	taken, err := s.rooms.TitleExists(ctx, title, id)
	if err != nil {
		log.Error("title lookup failed", sl.Err(err))
		return nil, err
	}
	if taken {
		return nil, domain.NewValidationError("title", "already exists")
	}

	room.Title = title
	room.Description = strings.TrimSpace(in.Description)
	room.Facilities = domain.CleanFacilities(in.Facilities)
	room.UpdatedAt = time.Now().UTC()

	if err := s.rooms.Update(ctx, room); err != nil {
		if errors.Is(err, repository.ErrRoomTitleExists) {
			return nil, domain.NewValidationError("title", "already exists")
		}
		log.Error("update room failed", sl.Err(err))
		return nil, err
	}

	log.Info("room updated")
	return room, nil
}

// DeleteRoom removes the record and then releases its image and brochure
// files. Asset release is best-effort: the record delete is the transaction
// that matters, orphaned files only cost disk space. A repeated delete
// reports ErrRoomNotFound so retrying callers can read it as "already gone".
func (s *RoomService) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	const op = "service.room.delete"
	log := s.log.With(slog.String("op", op), slog.String("room_id", id.String()))

	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.rooms.Delete(ctx, id); err != nil {
		return err
	}

	if room.Image != "" {
		s.cleanupAsset(storage.KindImage, room.Image)
	}
	if room.PDF != "" {
		s.cleanupAsset(storage.KindPDF, room.PDF)
	}

	log.Info("room deleted")
	return nil
}

// GenerateBrochure reads the room's current stored fields, renders the PDF,
// stores the file and persists the new reference. The store is not written
// until rendering succeeds, so a failed render leaves the previous brochure
// reference intact. updated_at is not touched: generation is not a field
// edit.
func (s *RoomService) GenerateBrochure(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	const op = "service.room.generate_brochure"
	log := s.log.With(slog.String("op", op), slog.String("room_id", id.String()))

	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var imagePath string
	if room.Image != "" {
		imagePath, err = s.assets.Path(storage.KindImage, room.Image)
		if err != nil {
			log.Warn("image unavailable for brochure", sl.Err(err))
			imagePath = ""
		}
	}

	data, err := s.renderer.Render(ctx, pdf.Brochure{
		Title:       room.Title,
		Description: room.Description,
		Facilities:  room.Facilities,
		ImagePath:   imagePath,
		CreatedAt:   room.CreatedAt.Format(domain.DateDisplayFormat),
		Year:        time.Now().UTC().Year(),
	})
	if err != nil {
		log.Error("render failed", sl.Err(err))
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	pdfName, err := s.assets.Save(ctx, storage.KindPDF, room.Title, "application/pdf", bytes.NewReader(data))
	if err != nil {
		log.Error("store brochure failed", sl.Err(err))
		return nil, err
	}

	if err := s.rooms.SetPDF(ctx, id, pdfName); err != nil {
		s.cleanupAsset(storage.KindPDF, pdfName)
		return nil, err
	}

	if room.PDF != "" && room.PDF != pdfName {
		s.cleanupAsset(storage.KindPDF, room.PDF)
	}

	log.Info("brochure generated", slog.String("pdf", pdfName))
	room.PDF = pdfName
	return room, nil
}

func (s *RoomService) cleanupAsset(kind, name string) {
	// Separate context: cleanup should still run when the request's
	// context is already done.
	if err := s.assets.Delete(context.Background(), kind, name); err != nil {
		s.log.Warn("asset cleanup failed", slog.String("kind", kind), slog.String("name", name), sl.Err(err))
	}
}
