package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hotelops/roomadmin/internal/domain"
	"github.com/hotelops/roomadmin/internal/repository/model"
	"gorm.io/gorm"
)

type PostgresRoomRepository struct {
	db *gorm.DB
}

func NewPostgresRoomRepository(db *gorm.DB) *PostgresRoomRepository {
	return &PostgresRoomRepository{db: db}
}

func (r *PostgresRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if room == nil {
		return errors.New("room is nil")
	}

	roomModel := toModelRoom(room)

	if err := r.db.WithContext(ctx).Create(roomModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrRoomTitleExists
		}
		return err
	}
	return nil
}

func (r *PostgresRoomRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var room model.Room
	err := r.db.WithContext(ctx).
		Preload("Facilities", orderByPosition).
		First(&room, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	return toDomainRoom(&room), nil
}

func (r *PostgresRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if room == nil {
		return errors.New("room is nil")
	}

	roomModel := toModelRoom(room)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"title":       roomModel.Title,
			"description": roomModel.Description,
			"updated_at":  roomModel.UpdatedAt,
		}

		res := tx.Model(&model.Room{}).Where("id = ?", roomModel.ID).Updates(updates)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return ErrRoomTitleExists
			}
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRoomNotFound
		}

		if err := tx.Where("room_id = ?", roomModel.ID).Delete(&model.RoomFacility{}).Error; err != nil {
			return err
		}

		if len(roomModel.Facilities) > 0 {
			if err := tx.Create(&roomModel.Facilities).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *PostgresRoomRepository) SetPDF(ctx context.Context, id uuid.UUID, pdf string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Model(&model.Room{}).Where("id = ?", id).
		UpdateColumn("pdf", pdf)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func (r *PostgresRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Select("Facilities").Delete(&model.Room{ID: id})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func (r *PostgresRoomRepository) List(ctx context.Context, offset, limit int) ([]*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rooms []model.Room
	err := r.db.WithContext(ctx).
		Preload("Facilities", orderByPosition).
		Order("created_at, id").
		Offset(offset).
		Limit(limit).
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Room, 0, len(rooms))
	for i := range rooms {
		result = append(result, toDomainRoom(&rooms[i]))
	}

	return result, nil
}

func (r *PostgresRoomRepository) TitleExists(ctx context.Context, title string, exclude uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	q := r.db.WithContext(ctx).Model(&model.Room{}).Where("title = ?", title)
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

func toModelRoom(room *domain.Room) *model.Room {
	facilities := make([]model.RoomFacility, 0, len(room.Facilities))
	for i, name := range room.Facilities {
		facilities = append(facilities, model.RoomFacility{
			ID:       uuid.New(),
			RoomID:   room.ID,
			Name:     name,
			Position: i,
		})
	}

	return &model.Room{
		ID:          room.ID,
		Title:       room.Title,
		Description: room.Description,
		Image:       room.Image,
		PDF:         room.PDF,
		CreatedAt:   room.CreatedAt.UTC(),
		UpdatedAt:   room.UpdatedAt.UTC(),
		Facilities:  facilities,
	}
}

func toDomainRoom(room *model.Room) *domain.Room {
	facilities := make([]string, 0, len(room.Facilities))
	for i := range room.Facilities {
		facilities = append(facilities, room.Facilities[i].Name)
	}

	return &domain.Room{
		ID:          room.ID,
		Title:       room.Title,
		Description: room.Description,
		Facilities:  facilities,
		Image:       room.Image,
		PDF:         room.PDF,
		CreatedAt:   room.CreatedAt.UTC(),
		UpdatedAt:   room.UpdatedAt.UTC(),
	}
}
