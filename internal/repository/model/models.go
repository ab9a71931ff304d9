package model

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"size:255;uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	Image       string    `gorm:"size:512"`
	PDF         string    `gorm:"column:pdf;size:512"`
	CreatedAt   time.Time `gorm:"not null;index:idx_rooms_created_id,priority:1"`
	UpdatedAt   time.Time `gorm:"not null"`

	Facilities []RoomFacility `gorm:"constraint:OnDelete:CASCADE"`
}

// RoomFacility keeps one amenity tag per row. Position is the submitted
// display order, not an alphabetical one.
type RoomFacility struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoomID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Name     string    `gorm:"size:255;not null"`
	Position int       `gorm:"not null"`
}
